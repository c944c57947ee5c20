// Package lattice overlays a rectangular lattice of units on a 2D surface,
// tracks which units are selected (visible), and validates that markers
// placed at unit corners form a consistent boundary around the selection.
//
// What:
//
//   - Lattice owns one Unit per (x,y) step of CellSize covering the surface.
//   - Selection is an immutable snapshot of the visible units with their
//     sorted distinct axes and bounding box.
//   - Rectangularity: the selection equals the Cartesian product of its
//     projected x and y coordinates.
//   - Boundary validation: markers are re-expressed relative to the
//     selection's bounding box and checked against the edge and corner rules.
//
// Why:
//
//   - Surface-code layouts: a patch of units must be a dense rectangle and
//     its boundary qubits must not anchor two opposite sides at once.
//
// Complexity:
//
//   - VisibleUnits, Contains:  O(W×H + M), Memory: O(W×H).
//   - Selection, Rectangular:  O(W×H + n log n)   (n = visible units).
//   - BoundaryQubitsValid:     O(W×H + n log n + M) (M = markers).
//   - ConnectedComponents:     O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - WithConnectivity: Conn4 (default) or Conn8 for ConnectedComponents.
//   - WithVisible: units selected at construction time.
//
// Errors:
//
//   - ErrBadCellSize: cell size is not positive.
//   - ErrBadExtent: surface width or height is negative.
//   - ErrNotAligned: coordinate is not a multiple of the cell size.
//   - ErrOutOfBounds: coordinate lies outside the lattice.
//   - ErrEmptySelection: footprint or boundary computed with nothing visible.
//
// Boundary rule violations are never errors: BoundaryQubitsValid returns
// false and CheckBoundary names the rule in BoundaryReport.Violation.
package lattice
