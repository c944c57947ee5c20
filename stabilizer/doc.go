// Package stabilizer parses and manipulates plaquette stabilizers written
// as Pauli terms on data-qubit coordinates, e.g. "Z(0,0).Z(0,2).Z(2,0).Z(2,2)"
// or "X(0,2).X(2,2)".
//
// What:
//
//   - Parse / String round-trip the dotted term notation.
//   - Kind classifies a stabilizer as X-type, Z-type or mixed.
//   - ParseShift / Shift translate every term by "(dx,dy)".
//   - Ancilla places the measurement qubit for weight-2 and weight-4 plaquettes.
//
// Errors:
//
//   - ErrEmpty: no terms.
//   - ErrBadTerm: a term is not of the form P(x,y).
//   - ErrBadShift: a shift is not of the form (dx,dy).
//   - ErrWeight: Ancilla on a stabilizer that is neither weight 2 nor 4.
package stabilizer
