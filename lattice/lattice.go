package lattice

import "fmt"

// NewLattice builds a lattice with one hidden unit at every (x,y) where
// x = 0, cellSize, 2·cellSize, … ≤ width and likewise y ≤ height.
// Options are applied before the initial selection is validated.
// Returns ErrBadCellSize if cellSize ≤ 0, ErrBadExtent if width or height
// is negative, and ErrNotAligned/ErrOutOfBounds for bad WithVisible input.
// Complexity: O(W×H) time and memory.
func NewLattice(cellSize, width, height int, opts ...Option) (*Lattice, error) {
	if cellSize <= 0 {
		return nil, ErrBadCellSize
	}
	if width < 0 || height < 0 {
		return nil, ErrBadExtent
	}
	l := &Lattice{
		CellSize: cellSize,
		Width:    width,
		Height:   height,
		Cols:     width/cellSize + 1,
		Rows:     height/cellSize + 1,
		conn:     Conn4,
	}
	for _, opt := range opts {
		opt(l)
	}
	// Precompute neighbor offsets based on connectivity
	if l.conn == Conn8 {
		l.offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		l.offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	l.units = make([]Unit, l.Cols*l.Rows)
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			l.units[l.index(col, row)] = Unit{X: col * cellSize, Y: row * cellSize}
		}
	}
	for _, c := range l.initial {
		i, err := l.locate(c.X, c.Y)
		if err != nil {
			opsf("rejecting initial selection at (%d,%d): %v", c.X, c.Y, err)
			return nil, fmt.Errorf("initial selection: %w", err)
		}
		l.units[i].Visible = true
	}
	l.initial = nil

	return l, nil
}

// InBounds reports whether (x,y) is the corner of a unit of this lattice.
// Complexity: O(1).
func (l *Lattice) InBounds(x, y int) bool {
	_, err := l.locate(x, y)
	return err == nil
}

// Unit returns a copy of the unit whose top-left corner is (x,y).
func (l *Lattice) Unit(x, y int) (Unit, error) {
	i, err := l.locate(x, y)
	if err != nil {
		return Unit{}, err
	}
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.units[i], nil
}

// Units returns copies of all units in row-major order.
// Complexity: O(W×H).
func (l *Lattice) Units() []Unit {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]Unit, len(l.units))
	copy(out, l.units)
	return out
}

// SetVisible sets the visibility flag of the unit at (x,y).
// Complexity: O(1).
func (l *Lattice) SetVisible(x, y int, visible bool) error {
	i, err := l.locate(x, y)
	if err != nil {
		return err
	}
	l.mu.Lock()
	l.units[i].Visible = visible
	l.mu.Unlock()
	tracef("unit (%d,%d) visible=%t", x, y, visible)
	return nil
}

// Toggle flips the visibility of the unit at (x,y) and returns the new state.
// Complexity: O(1).
func (l *Lattice) Toggle(x, y int) (bool, error) {
	i, err := l.locate(x, y)
	if err != nil {
		return false, err
	}
	l.mu.Lock()
	l.units[i].Visible = !l.units[i].Visible
	v := l.units[i].Visible
	l.mu.Unlock()
	tracef("unit (%d,%d) toggled visible=%t", x, y, v)
	return v, nil
}

// ClearSelection hides every unit.
// Complexity: O(W×H).
func (l *Lattice) ClearSelection() {
	l.mu.Lock()
	for i := range l.units {
		l.units[i].Visible = false
	}
	l.mu.Unlock()
}

// VisibleUnits returns copies of the visible units in row-major order.
// Complexity: O(W×H).
func (l *Lattice) VisibleUnits() []Unit {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.visibleLocked()
}

func (l *Lattice) visibleLocked() []Unit {
	var out []Unit
	for _, u := range l.units {
		if u.Visible {
			out = append(out, u)
		}
	}
	return out
}

// locate maps an absolute unit corner to its storage index.
func (l *Lattice) locate(x, y int) (int, error) {
	if x%l.CellSize != 0 || y%l.CellSize != 0 {
		return -1, fmt.Errorf("(%d,%d) with cell size %d: %w", x, y, l.CellSize, ErrNotAligned)
	}
	col, row := x/l.CellSize, y/l.CellSize
	if !l.inGrid(col, row) {
		return -1, fmt.Errorf("(%d,%d): %w", x, y, ErrOutOfBounds)
	}
	return l.index(col, row), nil
}

// inGrid reports whether grid indices (col,row) are valid.
func (l *Lattice) inGrid(col, row int) bool {
	return col >= 0 && col < l.Cols && row >= 0 && row < l.Rows
}

// index maps grid indices (col,row) to a row-major index: row*Cols + col.
// Complexity: O(1).
func (l *Lattice) index(col, row int) int {
	return row*l.Cols + col
}

// gridCoordinate converts a row-major index back to grid indices (col,row).
// Complexity: O(1).
func (l *Lattice) gridCoordinate(idx int) (col, row int) {
	return idx % l.Cols, idx / l.Cols
}
