package lattice_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giangiac/tqec/lattice"
)

func markers(xy ...[2]int) []*lattice.Marker {
	out := make([]*lattice.Marker, len(xy))
	for i, p := range xy {
		out[i] = lattice.NewMarker(p[0], p[1])
	}
	return out
}

// TestBoundaryQubitsValid_Empty verifies the only error of the validator.
func TestBoundaryQubitsValid_Empty(t *testing.T) {
	t.Parallel()

	l := newLattice(t)
	ok, err := l.BoundaryQubitsValid(markers([2]int{0, 0}))
	require.ErrorIs(t, err, lattice.ErrEmptySelection)
	require.False(t, ok)
}

// TestCheckBoundary_Rules runs every rule on the 2×2 square
// (xLen = yLen = 20).
func TestCheckBoundary_Rules(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		markers [][2]int
		want    lattice.Violation
	}{
		{"NoMarkers", nil, lattice.ViolationNone},
		{"Interior", [][2]int{{10, 10}}, lattice.ViolationNone},
		{"OneSideAndTop", [][2]int{{0, 0}, {10, 0}, {0, 10}}, lattice.ViolationNone},
		{"LeftRightSameHeight", [][2]int{{0, 10}, {20, 10}}, lattice.ViolationVerticalEdges},
		{"TopCorners", [][2]int{{0, 0}, {20, 0}}, lattice.ViolationVerticalEdges},
		{"LeftRightDifferentHeight", [][2]int{{0, 10}, {20, 0}}, lattice.ViolationNone},
		{"TopBottomSameColumn", [][2]int{{5, 0}, {5, 20}}, lattice.ViolationHorizontalEdges},
		// Both on the left edge: the vertical-edge rule passes, but (0,0)
		// and (0,20) share bbX=0 across the top and bottom edges.
		{"LeftEdgeEnds", [][2]int{{0, 0}, {0, 20}}, lattice.ViolationHorizontalEdges},
		{"MainDiagonal", [][2]int{{0, 0}, {20, 20}}, lattice.ViolationMainDiagonal},
		{"AntiDiagonal", [][2]int{{20, 0}, {0, 20}}, lattice.ViolationAntiDiagonal},
		// Rules 7 and 8 need exactly one marker per corner.
		{"DuplicatedCorner", [][2]int{{0, 0}, {0, 0}, {20, 20}}, lattice.ViolationNone},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			l := newLattice(t, square2x2...)
			rep, err := l.CheckBoundary(markers(tc.markers...))
			require.NoError(t, err)
			assert.Equal(t, tc.want, rep.Violation, "violation %s", rep.Violation)
			assert.Equal(t, tc.want == lattice.ViolationNone, rep.Valid)
			assert.Equal(t, 20, rep.XLen)
			assert.Equal(t, 20, rep.YLen)

			ok, err := l.BoundaryQubitsValid(markers(tc.markers...))
			require.NoError(t, err)
			assert.Equal(t, rep.Valid, ok)
		})
	}
}

// TestBoundaryQubitsValid_NotRectangular short-circuits before any marker
// is re-expressed in bounding-box coordinates.
func TestBoundaryQubitsValid_NotRectangular(t *testing.T) {
	t.Parallel()

	l := newLattice(t, lShape...)
	ms := markers([2]int{0, 0}, [2]int{20, 20})

	rep, err := l.CheckBoundary(ms)
	require.NoError(t, err)
	assert.False(t, rep.Valid)
	assert.Equal(t, lattice.ViolationNotRectangular, rep.Violation)
	for _, m := range ms {
		_, _, ok := m.BoundingBox()
		assert.False(t, ok, "%v must not carry bounding-box coordinates", m)
	}
}

// TestBoundaryQubitsValid_MutatesOnFailure checks that a rule violation
// still leaves bounding-box coordinates on every marker.
func TestBoundaryQubitsValid_MutatesOnFailure(t *testing.T) {
	t.Parallel()

	// 2×1 rectangle at (20,20)-(30,20): xLen = 20, yLen = 10.
	l := newLattice(t, lattice.Coord{X: 20, Y: 20}, lattice.Coord{X: 30, Y: 20})
	ms := markers([2]int{20, 20}, [2]int{40, 30}, [2]int{30, 20})

	ok, err := l.BoundaryQubitsValid(ms)
	require.NoError(t, err)
	assert.False(t, ok)

	want := [][2]int{{0, 0}, {20, 10}, {10, 0}}
	for i, m := range ms {
		bx, by, has := m.BoundingBox()
		require.True(t, has)
		assert.Equal(t, want[i], [2]int{bx, by})
	}
}

// TestBoundaryQubitsValid_NilMarkers skips nil entries.
func TestBoundaryQubitsValid_NilMarkers(t *testing.T) {
	t.Parallel()

	l := newLattice(t, square2x2...)
	ok, err := l.BoundaryQubitsValid([]*lattice.Marker{nil, lattice.NewMarker(10, 0), nil})
	require.NoError(t, err)
	assert.True(t, ok)
}

// TestBoundaryQubitsValid_Reuse revalidates the same markers after the
// selection moves; bounding-box coordinates follow the new origin.
func TestBoundaryQubitsValid_Reuse(t *testing.T) {
	t.Parallel()

	l := newLattice(t, square2x2...)
	m := lattice.NewMarker(20, 20)
	_, err := l.BoundaryQubitsValid([]*lattice.Marker{m})
	require.NoError(t, err)
	bx, by, _ := m.BoundingBox()
	assert.Equal(t, [2]int{20, 20}, [2]int{bx, by})

	l.ClearSelection()
	require.NoError(t, l.SetVisible(10, 10, true))
	_, err = l.BoundaryQubitsValid([]*lattice.Marker{m})
	require.NoError(t, err)
	bx, by, _ = m.BoundingBox()
	assert.Equal(t, [2]int{10, 10}, [2]int{bx, by})
}

// TestBoundingBoxCoordinates_Property checks bb = global - min for random
// rectangles and random markers.
func TestBoundingBoxCoordinates_Property(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	l, err := lattice.NewLattice(5, 50, 50)
	require.NoError(t, err)
	for iter := 0; iter < 200; iter++ {
		l.ClearSelection()
		x0, y0 := 5*rng.Intn(8), 5*rng.Intn(8)
		w, h := 1+rng.Intn(3), 1+rng.Intn(3)
		for i := 0; i < w; i++ {
			for j := 0; j < h; j++ {
				require.NoError(t, l.SetVisible(x0+5*i, y0+5*j, true))
			}
		}
		ms := make([]*lattice.Marker, 1+rng.Intn(6))
		for i := range ms {
			ms[i] = lattice.NewMarker(5*rng.Intn(11), 5*rng.Intn(11))
		}

		rep, err := l.CheckBoundary(ms)
		require.NoError(t, err)
		require.NotEqual(t, lattice.ViolationNotRectangular, rep.Violation)
		require.Equal(t, 5*w, rep.XLen)
		require.Equal(t, 5*h, rep.YLen)
		for _, m := range ms {
			bx, by, ok := m.BoundingBox()
			require.True(t, ok)
			require.Equal(t, m.GlobalX-x0, bx)
			require.Equal(t, m.GlobalY-y0, by)
		}
	}
}

// TestCheckBoundary_DiagLog verifies rejected checks are reported on the
// diag stream.
func TestCheckBoundary_DiagLog(t *testing.T) {
	var diag bytes.Buffer
	lattice.SetLogWriters(nil, &diag, nil)
	defer lattice.SetLogWriters(nil, nil, nil)

	l := newLattice(t, square2x2...)
	ok, err := l.BoundaryQubitsValid(markers([2]int{0, 0}, [2]int{20, 20}))
	require.NoError(t, err)
	require.False(t, ok)
	assert.Contains(t, diag.String(), "main-diagonal")
}

// TestViolation_String covers the names used in logs.
func TestViolation_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "none", lattice.ViolationNone.String())
	assert.Equal(t, "anti-diagonal", lattice.ViolationAntiDiagonal.String())
	assert.Equal(t, "violation(42)", lattice.Violation(42).String())
}
