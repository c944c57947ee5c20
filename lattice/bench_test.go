package lattice_test

import (
	"math/rand"
	"testing"

	"github.com/giangiac/tqec/lattice"
)

// benchLattice builds a 200×200-unit lattice with a centered 100×100
// rectangle selected and a ring of boundary markers around it.
func benchLattice(b *testing.B) (*lattice.Lattice, []*lattice.Marker) {
	b.Helper()
	const cell, n = 10, 200
	l, err := lattice.NewLattice(cell, cell*(n-1), cell*(n-1))
	if err != nil {
		b.Fatalf("setup NewLattice failed: %v", err)
	}
	for i := 50; i < 150; i++ {
		for j := 50; j < 150; j++ {
			if err := l.SetVisible(i*cell, j*cell, true); err != nil {
				b.Fatalf("setup SetVisible failed: %v", err)
			}
		}
	}
	var ms []*lattice.Marker
	for k := 50; k <= 150; k++ {
		ms = append(ms, lattice.NewMarker(50*cell, k*cell), lattice.NewMarker(k*cell, 50*cell))
	}
	return l, ms
}

// BenchmarkSelection measures snapshotting and sorting the selection.
func BenchmarkSelection(b *testing.B) {
	l, _ := benchLattice(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.Selection()
	}
}

// BenchmarkBoundaryQubitsValid measures a full validation pass.
func BenchmarkBoundaryQubitsValid(b *testing.B) {
	l, ms := benchLattice(b)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = l.BoundaryQubitsValid(ms)
	}
}

// BenchmarkConnectedComponents measures BFS over a random selection.
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 300
	l, err := lattice.NewLattice(1, n-1, n-1)
	if err != nil {
		b.Fatalf("setup NewLattice failed: %v", err)
	}
	rng := rand.New(rand.NewSource(42))
	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			if rng.Intn(2) == 0 {
				_ = l.SetVisible(x, y, true)
			}
		}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = l.ConnectedComponents()
	}
}
