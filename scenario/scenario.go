package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/giangiac/tqec/lattice"
	"github.com/giangiac/tqec/stabilizer"
)

// Scenario is the decoded form of a scenario file.
type Scenario struct {
	Name        string       `yaml:"name"`
	CellSize    int          `yaml:"cell_size"`
	Width       int          `yaml:"width"`
	Height      int          `yaml:"height"`
	Selected    [][]int      `yaml:"selected"`
	Markers     [][]int      `yaml:"markers"`
	Stabilizers []string     `yaml:"stabilizers"`
	Expect      *Expectation `yaml:"expect,omitempty"`
}

// Expectation is the outcome a scenario asserts about itself.
// Violation uses lattice.Violation names ("none", "main-diagonal", ...).
type Expectation struct {
	Valid     bool   `yaml:"valid"`
	Violation string `yaml:"violation"`
}

// Result is the evaluation of a scenario.
type Result struct {
	FootprintWidth  int
	FootprintHeight int
	Rectangular     bool
	Contains        bool
	Components      int
	Report          lattice.BoundaryReport
	Markers         []*lattice.Marker
	Ancillas        []stabilizer.Coord
}

// Load decodes and validates a scenario. Unknown keys are rejected.
func Load(r io.Reader) (*Scenario, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var s Scenario
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("scenario: decode: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile opens path and calls Load.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the shape of the scenario. Geometry errors (alignment,
// bounds) are left to lattice.NewLattice.
func (s *Scenario) Validate() error {
	if s.CellSize <= 0 {
		return ErrMissingCellSize
	}
	for i, p := range s.Selected {
		if len(p) != 2 {
			return fmt.Errorf("selected[%d] = %v: %w", i, p, ErrBadPoint)
		}
	}
	for i, p := range s.Markers {
		if len(p) != 2 {
			return fmt.Errorf("markers[%d] = %v: %w", i, p, ErrBadPoint)
		}
	}
	return nil
}

// Build creates the lattice with the selected units visible and fresh
// markers at the listed positions.
func (s *Scenario) Build() (*lattice.Lattice, []*lattice.Marker, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}
	coords := make([]lattice.Coord, len(s.Selected))
	for i, p := range s.Selected {
		coords[i] = lattice.Coord{X: p[0], Y: p[1]}
	}
	l, err := lattice.NewLattice(s.CellSize, s.Width, s.Height, lattice.WithVisible(coords...))
	if err != nil {
		return nil, nil, err
	}
	ms := make([]*lattice.Marker, len(s.Markers))
	for i, p := range s.Markers {
		ms[i] = lattice.NewMarker(p[0], p[1])
	}
	return l, ms, nil
}

// ParseStabilizers parses every stabilizer of the scenario.
func (s *Scenario) ParseStabilizers() ([]stabilizer.Stabilizer, error) {
	out := make([]stabilizer.Stabilizer, 0, len(s.Stabilizers))
	for i, raw := range s.Stabilizers {
		st, err := stabilizer.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("stabilizers[%d]: %w", i, err)
		}
		out = append(out, st)
	}
	return out, nil
}

// Evaluate builds the scenario and runs the selection queries and the
// boundary check. It fails with lattice.ErrEmptySelection when nothing is
// selected. Stabilizers of a weight without an ancilla rule contribute no
// entry to Result.Ancillas.
func Evaluate(s *Scenario) (Result, error) {
	l, ms, err := s.Build()
	if err != nil {
		return Result{}, err
	}
	stabs, err := s.ParseStabilizers()
	if err != nil {
		return Result{}, err
	}

	sel := l.Selection()
	var r Result
	if r.FootprintWidth, err = sel.FootprintWidth(); err != nil {
		return Result{}, err
	}
	if r.FootprintHeight, err = sel.FootprintHeight(); err != nil {
		return Result{}, err
	}
	r.Rectangular = sel.Rectangular()
	r.Contains = sel.Contains(ms)
	r.Components = len(l.ConnectedComponents())
	if r.Report, err = sel.CheckBoundary(ms); err != nil {
		return Result{}, err
	}
	r.Markers = ms

	for _, st := range stabs {
		a, err := st.Ancilla()
		if errors.Is(err, stabilizer.ErrWeight) {
			continue
		}
		if err != nil {
			return Result{}, err
		}
		r.Ancillas = append(r.Ancillas, a)
	}
	return r, nil
}

// Verify compares r with the scenario's expect block. A scenario without
// one always verifies.
func (s *Scenario) Verify(r Result) error {
	if s.Expect == nil {
		return nil
	}
	if r.Report.Valid != s.Expect.Valid {
		return fmt.Errorf("valid = %t, want %t: %w", r.Report.Valid, s.Expect.Valid, ErrUnexpected)
	}
	if s.Expect.Violation != "" && r.Report.Violation.String() != s.Expect.Violation {
		return fmt.Errorf("violation = %s, want %s: %w", r.Report.Violation, s.Expect.Violation, ErrUnexpected)
	}
	return nil
}
