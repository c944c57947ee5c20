package stabilizer

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a stabilizer in dotted term notation, e.g. "X(0,2).X(2,2)".
// Whitespace around terms and numbers is ignored.
// Returns ErrEmpty for a blank string and ErrBadTerm for any malformed term.
// Complexity: O(len(s)).
func Parse(s string) (Stabilizer, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Stabilizer{}, ErrEmpty
	}
	parts := strings.Split(s, ".")
	st := Stabilizer{Terms: make([]Term, 0, len(parts))}
	for _, p := range parts {
		t, err := parseTerm(strings.TrimSpace(p))
		if err != nil {
			return Stabilizer{}, err
		}
		st.Terms = append(st.Terms, t)
	}
	return st, nil
}

func parseTerm(s string) (Term, error) {
	if len(s) < 2 || !isLetter(s[0]) {
		return Term{}, fmt.Errorf("%q: %w", s, ErrBadTerm)
	}
	x, y, ok := parsePair(s[1:])
	if !ok {
		return Term{}, fmt.Errorf("%q: %w", s, ErrBadTerm)
	}
	return Term{Pauli: s[0], X: x, Y: y}, nil
}

// parsePair reads "(a,b)".
func parsePair(s string) (a, b int, ok bool) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return 0, 0, false
	}
	fields := strings.Split(s[1:len(s)-1], ",")
	if len(fields) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(strings.TrimSpace(fields[0]))
	b, errB := strconv.Atoi(strings.TrimSpace(fields[1]))
	if errA != nil || errB != nil {
		return 0, 0, false
	}
	return a, b, true
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// ParseShift reads a translation written as "(dx,dy)".
func ParseShift(s string) (dx, dy int, err error) {
	dx, dy, ok := parsePair(s)
	if !ok {
		return 0, 0, fmt.Errorf("%q: %w", s, ErrBadShift)
	}
	return dx, dy, nil
}

// String renders the stabilizer in dotted term notation.
func (st Stabilizer) String() string {
	var b strings.Builder
	for i, t := range st.Terms {
		if i > 0 {
			b.WriteByte('.')
		}
		fmt.Fprintf(&b, "%c(%d,%d)", t.Pauli, t.X, t.Y)
	}
	return b.String()
}

// Weight is the number of terms.
func (st Stabilizer) Weight() int { return len(st.Terms) }

// Kind reports KindX if every term is x/X, KindZ if every term is z/Z,
// and KindMixed otherwise (including the empty stabilizer).
func (st Stabilizer) Kind() Kind {
	if len(st.Terms) == 0 {
		return KindMixed
	}
	allX, allZ := true, true
	for _, t := range st.Terms {
		allX = allX && (t.Pauli == 'x' || t.Pauli == 'X')
		allZ = allZ && (t.Pauli == 'z' || t.Pauli == 'Z')
	}
	switch {
	case allX:
		return KindX
	case allZ:
		return KindZ
	}
	return KindMixed
}

// Shift returns a copy of st with every term translated by (dx,dy).
func (st Stabilizer) Shift(dx, dy int) Stabilizer {
	out := Stabilizer{Terms: make([]Term, len(st.Terms))}
	for i, t := range st.Terms {
		out.Terms[i] = Term{Pauli: t.Pauli, X: t.X + dx, Y: t.Y + dy}
	}
	return out
}

// Qubits returns the data-qubit coordinates of the terms, in order.
func (st Stabilizer) Qubits() []Coord {
	out := make([]Coord, len(st.Terms))
	for i, t := range st.Terms {
		out[i] = Coord{X: t.X, Y: t.Y}
	}
	return out
}

// Ancilla places the measurement qubit of a weight-2 or weight-4 plaquette.
//
// The base position is the truncated mean of the term coordinates. A
// weight-2 vertical pair (equal x) is pushed outward along x: to -1 when the
// mean x is 0, otherwise to mean x + 1. A weight-2 horizontal pair (equal y)
// is pushed the same way along y. Any other plaquette keeps the mean.
// Returns ErrWeight for other weights.
func (st Stabilizer) Ancilla() (Coord, error) {
	n := len(st.Terms)
	if n != 2 && n != 4 {
		return Coord{}, fmt.Errorf("weight %d: %w", n, ErrWeight)
	}
	sumX, sumY := 0, 0
	for _, t := range st.Terms {
		sumX += t.X
		sumY += t.Y
	}
	c := Coord{X: sumX / n, Y: sumY / n}

	switch {
	case n == 2 && st.Terms[0].X == st.Terms[1].X:
		c.X = pushOut(c.X)
	case n == 2 && st.Terms[0].Y == st.Terms[1].Y:
		c.Y = pushOut(c.Y)
	}
	return c, nil
}

func pushOut(v int) int {
	if v == 0 {
		return -1
	}
	return v + 1
}
