// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"

	"github.com/wickedchicken/stroemung/boundary"
	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// Phase is the orchestrator state of a State.
type Phase int

const (
	// Idle is the state between ticks.
	Idle Phase = iota
	// Stepping is held for the duration of Tick.
	Stepping
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case Idle:
		return "idle"
	case Stepping:
		return "stepping"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// State is one simulation.
type State struct {
	geom   grid.Geometry
	layout *grid.Layout
	store  *field.Store
	params Params

	time  float64
	steps int
	phase Phase

	// per-tick buffers; scratch becomes store on commit
	scratch   *field.Store
	f, g, rhs *field.Field
}

// BuildScenario creates a State at rest on the named grid preset.
// Returns grid.ErrUnknownPreset, grid.ErrBadShape, grid.ErrBadSpacing,
// grid.ErrInvalidLayout or ErrOptionViolation.
func BuildScenario(preset string, geom grid.Geometry, opts ...Option) (*State, error) {
	params, err := newParams(DefaultParams(), opts)
	if err != nil {
		return nil, fmt.Errorf("BuildScenario(%q): %w", preset, err)
	}
	l, err := grid.Build(preset, geom, params.Inflow)
	if err != nil {
		return nil, fmt.Errorf("BuildScenario: %w", err)
	}
	store, err := field.NewStore(geom.IMax, geom.JMax)
	if err != nil {
		return nil, fmt.Errorf("BuildScenario: %w", err)
	}

	return newState(l, store, params), nil
}

// New creates a State at rest on a caller-built layout, which is copied and
// validated.
func New(l *grid.Layout, opts ...Option) (*State, error) {
	params, err := newParams(DefaultParams(), opts)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	if err = l.Validate(); err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}
	geom := l.Geometry()
	store, err := field.NewStore(geom.IMax, geom.JMax)
	if err != nil {
		return nil, fmt.Errorf("New: %w", err)
	}

	return newState(l.Clone(), store, params), nil
}

func newState(l *grid.Layout, store *field.Store, params Params) *State {
	geom := l.Geometry()
	nx, ny := geom.Dims()
	s := &State{geom: geom, layout: l, store: store, params: params, scratch: store.Clone()}
	s.f, _ = field.New(nx, ny)
	s.g, _ = field.New(nx, ny)
	s.rhs, _ = field.New(nx, ny)

	return s
}

// Geometry returns the grid geometry.
func (s *State) Geometry() grid.Geometry { return s.geom }

// Layout returns a copy of the cell map.
func (s *State) Layout() *grid.Layout { return s.layout.Clone() }

// Cell returns the cell at (i, j).
func (s *State) Cell(i, j int) (grid.Cell, error) { return s.layout.Cell(i, j) }

// IsFluid reports whether (i, j) is inside the padded extent and Fluid.
// Unlike Layout it does not copy the cell map.
func (s *State) IsFluid(i, j int) bool { return s.layout.IsFluid(i, j) }

// Params returns the parameters in effect.
func (s *State) Params() Params { return s.params }

// Time returns the simulated time.
func (s *State) Time() float64 { return s.time }

// Steps returns the number of committed ticks.
func (s *State) Steps() int { return s.steps }

// Phase reports Idle or Stepping.
func (s *State) Phase() Phase { return s.phase }

// Value returns U, V or P at (i, j) of the padded extent.
func (s *State) Value(k field.Kind, i, j int) (float64, error) { return s.store.Get(k, i, j) }

// Centre returns the cell-centred velocity and the pressure of (i, j).
// (i, j) must be an interior cell.
func (s *State) Centre(i, j int) (u, v, p float64, err error) {
	if i < 1 || i > s.geom.IMax || j < 1 || j > s.geom.JMax {
		return 0, 0, 0, fmt.Errorf("State.Centre(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	st := s.store
	u = (st.U.Get(i, j) + st.U.Get(i-1, j)) / 2
	v = (st.V.Get(i, j) + st.V.Get(i, j-1)) / 2

	return u, v, st.P.Get(i, j), nil
}

// PaintCell changes the type of (i, j). The edit is rejected with
// ErrRejectedEdit, and the State left unchanged, when it would put Fluid on
// opposite sides of a boundary cell or make a halo cell Fluid. When the new
// cell is not Fluid its faces and pressure are zeroed.
func (s *State) PaintCell(i, j int, c grid.Cell) error {
	if s.phase != Idle {
		return fmt.Errorf("PaintCell: %w", ErrTickInProgress)
	}
	if err := s.layout.Paint(i, j, c); err != nil {
		return err
	}
	if c.Type != grid.Fluid {
		boundary.ClearCell(s.store.U, s.store.V, i, j)
		s.store.P.Put(i, j, 0)
	}

	return nil
}
