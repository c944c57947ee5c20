package stabilizer

import "errors"

var (
	// ErrEmpty indicates a stabilizer string with no terms.
	ErrEmpty = errors.New("stabilizer: no terms")
	// ErrBadTerm indicates a term that is not of the form P(x,y).
	ErrBadTerm = errors.New("stabilizer: malformed term")
	// ErrBadShift indicates a shift that is not of the form (dx,dy).
	ErrBadShift = errors.New("stabilizer: malformed shift")
	// ErrWeight indicates an ancilla request for a stabilizer of weight other than 2 or 4.
	ErrWeight = errors.New("stabilizer: weight must be 2 or 4")
)
