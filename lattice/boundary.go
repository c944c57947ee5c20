package lattice

// BoundaryQubitsValid reports whether markers form a consistent boundary
// around the current selection. It takes one Selection snapshot and
// delegates to Selection.CheckBoundary.
//
// Returns ErrEmptySelection when no unit is visible; every rule violation is
// a plain false.
func (l *Lattice) BoundaryQubitsValid(markers []*Marker) (bool, error) {
	rep, err := l.CheckBoundary(markers)
	if err != nil {
		return false, err
	}
	return rep.Valid, nil
}

// CheckBoundary runs the boundary rules against the current selection and
// reports which rule, if any, rejected the markers.
func (l *Lattice) CheckBoundary(markers []*Marker) (BoundaryReport, error) {
	return l.Selection().CheckBoundary(markers)
}

// CheckBoundary validates markers against this selection.
//
// Behavior:
//  1. ErrEmptySelection if no unit is visible.
//  2. Not rectangular → ViolationNotRectangular; markers are left untouched.
//  3. Every marker gets bb = global - (MinX, MinY). This happens before the
//     rules below, so markers carry bounding-box coordinates even on failure.
//  4. xLen = |XSorted|·CellSize, yLen = |YSorted|·CellSize.
//  5. A bbY shared by a marker on bbX==0 and one on bbX==xLen → ViolationVerticalEdges.
//  6. A bbX shared by a marker on bbY==0 and one on bbY==yLen → ViolationHorizontalEdges.
//  7. Exactly one marker at (0,0) and exactly one at (xLen,yLen) → ViolationMainDiagonal.
//  8. Exactly one marker at (xLen,0) and exactly one at (0,yLen) → ViolationAntiDiagonal.
//
// Nil entries in markers are skipped.
// Complexity: O(M) on top of the snapshot.
func (s Selection) CheckBoundary(markers []*Marker) (BoundaryReport, error) {
	if s.Empty() {
		return BoundaryReport{}, ErrEmptySelection
	}
	if !s.Rectangular() {
		diagf("boundary rejected: %d visible units over %d×%d axes",
			len(s.Units), len(s.XSorted), len(s.YSorted))
		return BoundaryReport{Violation: ViolationNotRectangular}, nil
	}

	live := make([]*Marker, 0, len(markers))
	for _, m := range markers {
		if m == nil {
			continue
		}
		m.ApplyBoundingBoxCoordinates(m.GlobalX-s.MinX, m.GlobalY-s.MinY)
		live = append(live, m)
	}

	xLen, yLen := s.XLen(), s.YLen()
	rep := BoundaryReport{XLen: xLen, YLen: yLen}
	rep.Violation = checkRules(live, xLen, yLen)
	rep.Valid = rep.Violation == ViolationNone
	if !rep.Valid {
		diagf("boundary rejected: %s (xLen=%d yLen=%d, %d markers)", rep.Violation, xLen, yLen, len(live))
	}
	return rep, nil
}

// checkRules applies the edge and corner rules to markers whose
// bounding-box coordinates are already assigned.
func checkRules(markers []*Marker, xLen, yLen int) Violation {
	left := make(map[int]struct{})
	right := make(map[int]struct{})
	top := make(map[int]struct{})
	bottom := make(map[int]struct{})
	for _, m := range markers {
		switch m.bbX {
		case 0:
			left[m.bbY] = struct{}{}
		case xLen:
			right[m.bbY] = struct{}{}
		}
		switch m.bbY {
		case 0:
			top[m.bbX] = struct{}{}
		case yLen:
			bottom[m.bbX] = struct{}{}
		}
	}
	if intersects(left, right) {
		return ViolationVerticalEdges
	}
	if intersects(top, bottom) {
		return ViolationHorizontalEdges
	}
	if countAt(markers, 0, 0) == 1 && countAt(markers, xLen, yLen) == 1 {
		return ViolationMainDiagonal
	}
	if countAt(markers, xLen, 0) == 1 && countAt(markers, 0, yLen) == 1 {
		return ViolationAntiDiagonal
	}
	return ViolationNone
}

func intersects(a, b map[int]struct{}) bool {
	if len(b) < len(a) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

// countAt counts markers whose bounding-box coordinate is (x,y).
func countAt(markers []*Marker, x, y int) int {
	n := 0
	for _, m := range markers {
		if m.bbX == x && m.bbY == y {
			n++
		}
	}
	return n
}
