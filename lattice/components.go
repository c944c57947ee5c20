package lattice

// ConnectedComponents finds all contiguous islands of visible units
// according to the lattice connectivity (Conn4 unless WithConnectivity).
// Components appear in row-major order of their first unit; units within a
// component appear in BFS order. A rectangular selection always yields
// exactly one component; the converse does not hold (an L-shape is one
// component but not rectangular).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (l *Lattice) ConnectedComponents() [][]Unit {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make([]bool, len(l.units))
	var comps [][]Unit

	for i0, u0 := range l.units {
		if !u0.Visible || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		var comp []Unit

		for qi := 0; qi < len(queue); qi++ {
			i := queue[qi]
			comp = append(comp, l.units[i])
			col, row := l.gridCoordinate(i)
			for _, d := range l.offsets {
				nc, nr := col+d[0], row+d[1]
				if !l.inGrid(nc, nr) {
					continue
				}
				ni := l.index(nc, nr)
				if l.units[ni].Visible && !seen[ni] {
					seen[ni] = true
					queue = append(queue, ni)
				}
			}
		}
		comps = append(comps, comp)
	}
	return comps
}
