// Package scenario decodes YAML descriptions of a lattice selection with
// its boundary markers and plaquette stabilizers, and evaluates them with
// the lattice and stabilizer packages.
//
// A scenario file:
//
//	name: 2x2 patch, opposite corners
//	cell_size: 10
//	width: 40
//	height: 40
//	selected: [[0,0],[10,0],[0,10],[10,10]]
//	markers: [[0,0],[20,20]]
//	stabilizers: ["Z(0,0).Z(0,2).Z(2,0).Z(2,2)"]
//	expect:
//	  valid: false
//	  violation: main-diagonal
//
// Scenarios are read-only input; nothing is written back.
package scenario
