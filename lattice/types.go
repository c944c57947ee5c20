// Package lattice defines core types, options, and sentinel errors
// for the lattice package of github.com/giangiac/tqec.
package lattice

import (
	"fmt"
	"sync"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Coord is an absolute position on the surface.
type Coord struct {
	X, Y int
}

// Unit is a single lattice cell identified by its top-left corner.
// X and Y are multiples of the lattice cell size.
type Unit struct {
	X, Y    int  // Top-left corner on the surface
	Visible bool // Whether the unit is currently selected
}

// Marker is a boundary qubit placed at a unit corner.
//
// GlobalX/GlobalY are owned by the caller. The bounding-box coordinate is
// written by the boundary validator and stays undefined until then.
type Marker struct {
	GlobalX, GlobalY int

	bbX, bbY int
	hasBB    bool
}

// NewMarker returns a marker at the given absolute position.
func NewMarker(x, y int) *Marker {
	return &Marker{GlobalX: x, GlobalY: y}
}

// ApplyBoundingBoxCoordinates records the marker position relative to the
// selection's bounding box.
func (m *Marker) ApplyBoundingBoxCoordinates(bbX, bbY int) {
	m.bbX, m.bbY = bbX, bbY
	m.hasBB = true
}

// BoundingBox returns the bounding-box coordinate. ok is false if no
// validation has assigned one yet.
func (m *Marker) BoundingBox() (bbX, bbY int, ok bool) {
	return m.bbX, m.bbY, m.hasBB
}

func (m *Marker) String() string {
	if !m.hasBB {
		return fmt.Sprintf("marker(%d,%d)", m.GlobalX, m.GlobalY)
	}
	return fmt.Sprintf("marker(%d,%d bb=%d,%d)", m.GlobalX, m.GlobalY, m.bbX, m.bbY)
}

// Option configures a Lattice during construction.
type Option func(*Lattice)

// WithConnectivity sets the neighborhood used by ConnectedComponents.
// Panics on an unknown value.
func WithConnectivity(c Connectivity) Option {
	if c != Conn4 && c != Conn8 {
		panic("lattice: WithConnectivity(unknown)")
	}
	return func(l *Lattice) { l.conn = c }
}

// WithVisible marks the given unit corners visible at construction.
// Invalid coordinates make NewLattice fail with ErrNotAligned or ErrOutOfBounds.
func WithVisible(coords ...Coord) Option {
	cs := append([]Coord(nil), coords...)
	return func(l *Lattice) { l.initial = append(l.initial, cs...) }
}

// Lattice owns every Unit of a surface of extent Width×Height split into
// cells of CellSize. Units are stored densely in row-major order:
// units[row*Cols+col] is the unit at (col*CellSize, row*CellSize).
// Lattice is safe for concurrent use; mu guards the visibility flags.
type Lattice struct {
	CellSize      int
	Width, Height int // Surface extent
	Cols, Rows    int // Number of units along x and y

	mu      sync.RWMutex
	units   []Unit
	conn    Connectivity
	offsets [][2]int
	initial []Coord
}

// Violation names the boundary rule that rejected a marker set.
type Violation int

const (
	// ViolationNone means every rule passed.
	ViolationNone Violation = iota
	// ViolationNotRectangular means the selection is not a dense rectangle.
	ViolationNotRectangular
	// ViolationVerticalEdges means a marker height appears on both the left and right edge.
	ViolationVerticalEdges
	// ViolationHorizontalEdges means a marker column appears on both the top and bottom edge.
	ViolationHorizontalEdges
	// ViolationMainDiagonal means both the top-left and bottom-right corners are occupied.
	ViolationMainDiagonal
	// ViolationAntiDiagonal means both the top-right and bottom-left corners are occupied.
	ViolationAntiDiagonal
)

func (v Violation) String() string {
	switch v {
	case ViolationNone:
		return "none"
	case ViolationNotRectangular:
		return "not-rectangular"
	case ViolationVerticalEdges:
		return "vertical-edges"
	case ViolationHorizontalEdges:
		return "horizontal-edges"
	case ViolationMainDiagonal:
		return "main-diagonal"
	case ViolationAntiDiagonal:
		return "anti-diagonal"
	}
	return fmt.Sprintf("violation(%d)", int(v))
}

// BoundaryReport is the outcome of a boundary check.
// XLen and YLen are zero when the selection is not rectangular.
type BoundaryReport struct {
	Valid      bool
	Violation  Violation
	XLen, YLen int
}
