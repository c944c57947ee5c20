// Package tqec is the selection and boundary-validation engine behind the
// surface-code layout editor: a lattice of units laid over a drawing
// surface, the subset the user has selected, and the rules a set of
// boundary qubits must obey around that selection.
//
// Subpackages:
//
//	lattice/    — Unit, Marker, Lattice; selection snapshots, footprint,
//	              rectangularity, grid-line containment, boundary validation,
//	              connected components of the selection
//	stabilizer/ — plaquette stabilizers "X(0,2).X(2,2)": parse, classify,
//	              shift, ancilla placement
//	scenario/   — YAML scenario files evaluated with lattice and stabilizer
//
// Quick ASCII example (cell size 10, selection shaded):
//
//	(0,0)──(10,0)──(20,0)
//	  │ ░░░░ │ ░░░░ │
//	(0,10)─(10,10)─(20,10)
//	  │ ░░░░ │ ░░░░ │
//	(0,20)─(10,20)─(20,20)
//
// Markers at (0,0) and (20,20) occupy opposite corners of this 2×2
// selection, so BoundaryQubitsValid reports false.
//
// Rendering, input handling and persistence live in the front end; this
// module only consumes unit visibility and produces verdicts.
package tqec
