package lattice

import "errors"

var (
	// ErrBadCellSize indicates a non-positive cell size.
	ErrBadCellSize = errors.New("lattice: cell size must be > 0")
	// ErrBadExtent indicates a negative surface width or height.
	ErrBadExtent = errors.New("lattice: surface extent must be >= 0")
	// ErrNotAligned indicates a coordinate that is not a multiple of the cell size.
	ErrNotAligned = errors.New("lattice: coordinate not aligned to cell size")
	// ErrOutOfBounds indicates a coordinate outside the lattice.
	ErrOutOfBounds = errors.New("lattice: coordinate out of bounds")
	// ErrEmptySelection indicates a footprint or boundary computation with no
	// visible units. It is a precondition failure, not a validation result.
	ErrEmptySelection = errors.New("lattice: no visible units")
)
