package lattice

import "sort"

// Selection is an immutable snapshot of the visible units of a Lattice.
//
// XSorted and YSorted are computed together with Units under one read lock,
// so a Selection never pairs sorted axes with a newer visibility set.
// The Min/Max fields are meaningful only when Units is non-empty.
type Selection struct {
	CellSize int
	Units    []Unit // Visible units, row-major order
	XSorted  []int  // Distinct x of visible units, ascending
	YSorted  []int  // Distinct y of visible units, ascending

	MinX, MinY int
	MaxX, MaxY int
}

// Selection takes a snapshot of the current selection.
// Complexity: O(W×H + n log n), n = number of visible units.
func (l *Lattice) Selection() Selection {
	l.mu.RLock()
	units := l.visibleLocked()
	l.mu.RUnlock()
	return newSelection(l.CellSize, units)
}

func newSelection(cellSize int, units []Unit) Selection {
	s := Selection{CellSize: cellSize, Units: units}
	if len(units) == 0 {
		return s
	}
	xs := make(map[int]struct{}, len(units))
	ys := make(map[int]struct{}, len(units))
	s.MinX, s.MinY = units[0].X, units[0].Y
	s.MaxX, s.MaxY = units[0].X, units[0].Y
	for _, u := range units {
		xs[u.X] = struct{}{}
		ys[u.Y] = struct{}{}
		s.MinX, s.MaxX = min(s.MinX, u.X), max(s.MaxX, u.X)
		s.MinY, s.MaxY = min(s.MinY, u.Y), max(s.MaxY, u.Y)
	}
	s.XSorted = sortedKeys(xs)
	s.YSorted = sortedKeys(ys)
	return s
}

func sortedKeys(set map[int]struct{}) []int {
	out := make([]int, 0, len(set))
	for v := range set {
		out = append(out, v)
	}
	sort.Ints(out)
	return out
}

// Empty reports whether no unit is visible.
func (s Selection) Empty() bool { return len(s.Units) == 0 }

// Rectangular reports whether the visible units are exactly the Cartesian
// product of their projected x and y coordinates: a dense axis-aligned
// rectangle with no holes and no L-shapes. An empty selection is not
// rectangular.
// Complexity: O(1).
func (s Selection) Rectangular() bool {
	if s.Empty() {
		return false
	}
	return len(s.XSorted)*len(s.YSorted) == len(s.Units)
}

// FootprintWidth returns max(x) - min(x) + CellSize over the visible units.
func (s Selection) FootprintWidth() (int, error) {
	if s.Empty() {
		return 0, ErrEmptySelection
	}
	return s.MaxX - s.MinX + s.CellSize, nil
}

// FootprintHeight returns max(y) - min(y) + CellSize over the visible units.
func (s Selection) FootprintHeight() (int, error) {
	if s.Empty() {
		return 0, ErrEmptySelection
	}
	return s.MaxY - s.MinY + s.CellSize, nil
}

// XLen is the rectangle's extent along x in bounding-box coordinates.
func (s Selection) XLen() int { return len(s.XSorted) * s.CellSize }

// YLen is the rectangle's extent along y in bounding-box coordinates.
func (s Selection) YLen() int { return len(s.YSorted) * s.CellSize }

// Contains reports whether every marker lies on some grid line of the
// selection: GlobalX must equal u.X or u.X+CellSize and GlobalY must equal
// u.Y or u.Y+CellSize for some visible units u. This is grid-line
// membership, not bounding-box containment; see BoundsContain.
// Complexity: O(n + M).
func (s Selection) Contains(markers []*Marker) bool {
	xEdges := make(map[int]struct{}, 2*len(s.XSorted))
	yEdges := make(map[int]struct{}, 2*len(s.YSorted))
	for _, u := range s.Units {
		xEdges[u.X] = struct{}{}
		xEdges[u.X+s.CellSize] = struct{}{}
		yEdges[u.Y] = struct{}{}
		yEdges[u.Y+s.CellSize] = struct{}{}
	}
	for _, m := range markers {
		if m == nil {
			continue
		}
		_, okX := xEdges[m.GlobalX]
		_, okY := yEdges[m.GlobalY]
		if !okX || !okY {
			return false
		}
	}
	return true
}

// BoundsContain reports whether m lies inside the closed footprint
// rectangle [MinX, MaxX+CellSize]×[MinY, MaxY+CellSize].
func (s Selection) BoundsContain(m *Marker) bool {
	if s.Empty() || m == nil {
		return false
	}
	return m.GlobalX >= s.MinX && m.GlobalX <= s.MaxX+s.CellSize &&
		m.GlobalY >= s.MinY && m.GlobalY <= s.MaxY+s.CellSize
}

// FootprintWidth returns the width of the current selection's bounding box.
// Returns ErrEmptySelection when no unit is visible.
func (l *Lattice) FootprintWidth() (int, error) {
	return l.Selection().FootprintWidth()
}

// FootprintHeight returns the height of the current selection's bounding box.
// Returns ErrEmptySelection when no unit is visible.
func (l *Lattice) FootprintHeight() (int, error) {
	return l.Selection().FootprintHeight()
}

// SelectedUnitsRectangular reports whether the current selection is a
// dense rectangle of units.
func (l *Lattice) SelectedUnitsRectangular() bool {
	return l.Selection().Rectangular()
}

// Contains reports whether every marker lies on a grid line of the current
// selection. See Selection.Contains.
func (l *Lattice) Contains(markers []*Marker) bool {
	return l.Selection().Contains(markers)
}
