package scenario

import "errors"

var (
	// ErrMissingCellSize indicates a scenario without a positive cell_size.
	ErrMissingCellSize = errors.New("scenario: cell_size must be > 0")
	// ErrBadPoint indicates a selected unit or marker that is not an [x, y] pair.
	ErrBadPoint = errors.New("scenario: point must be an [x, y] pair")
	// ErrUnexpected indicates an evaluation that disagrees with the scenario's expect block.
	ErrUnexpected = errors.New("scenario: result differs from expectation")
)
