package stabilizer

// Kind classifies a stabilizer by its Pauli letters.
type Kind int

const (
	// KindMixed means the terms do not share a single Pauli type.
	KindMixed Kind = iota
	// KindX means every term is x or X.
	KindX
	// KindZ means every term is z or Z.
	KindZ
)

func (k Kind) String() string {
	switch k {
	case KindX:
		return "X"
	case KindZ:
		return "Z"
	}
	return "mixed"
}

// Term is one Pauli operator acting on the data qubit at (X,Y).
// Pauli keeps the letter as written so String reproduces the input.
type Term struct {
	Pauli byte
	X, Y  int
}

// Stabilizer is an ordered product of Terms.
type Stabilizer struct {
	Terms []Term
}

// Coord is a qubit position in plaquette coordinates.
type Coord struct {
	X, Y int
}
