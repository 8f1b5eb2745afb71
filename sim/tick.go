// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"

	"github.com/wickedchicken/stroemung/boundary"
	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/momentum"
	"github.com/wickedchicken/stroemung/pressure"
)

// StepReport describes one committed Tick.
type StepReport struct {
	Step       int     // 1-based index of the tick
	DelT       float64 // step size used
	Time       float64 // simulated time after the tick
	Iterations int     // SOR sweeps
	Residual   float64 // final SOR residual
	Converged  bool    // Residual < ε
}

// Err returns a wrapped ErrSorNonConvergent when the pressure solve hit its
// sweep cap, nil otherwise.
func (r StepReport) Err() error {
	if r.Converged {
		return nil
	}

	return fmt.Errorf("step %d: %d sweeps, residual %g: %w", r.Step, r.Iterations, r.Residual, ErrSorNonConvergent)
}

// StableTimeStep returns τ·min(Re/2·(1/δx² + 1/δy²)⁻¹, δx/max|U|, δy/max|V|).
// The maxima run over the whole padded extent; a zero maximum drops its term.
func StableTimeStep(geom grid.Geometry, reynolds, tau float64, u, v *field.Field) float64 {
	dx, dy := geom.DelX, geom.DelY
	bound := reynolds / 2 / (1/(dx*dx) + 1/(dy*dy))
	if umax := u.MaxAbs(); umax > 0 {
		bound = min(bound, dx/umax)
	}
	if vmax := v.MaxAbs(); vmax > 0 {
		bound = min(bound, dy/vmax)
	}

	return tau * bound
}

// Tick advances the simulation by one step.
//
// Returns ErrTickInProgress when called from inside a hook of a running
// Tick, ErrDegenerateGrid, grid.ErrInvalidLayout or ErrNonFinite. On any
// error the State is unchanged. A non-converged pressure solve is not an
// error; see StepReport.Err.
func (s *State) Tick() (StepReport, error) {
	if s.phase != Idle {
		return StepReport{}, fmt.Errorf("Tick: %w", ErrTickInProgress)
	}
	s.phase = Stepping
	defer func() { s.phase = Idle }()

	if err := s.layout.Validate(); err != nil {
		return StepReport{}, fmt.Errorf("Tick: %w", err)
	}
	if s.layout.FluidCount() == 0 {
		return StepReport{}, fmt.Errorf("Tick: %w", ErrDegenerateGrid)
	}

	l, p := s.layout, &s.params
	work := s.scratch
	if err := work.CopyFrom(s.store); err != nil {
		return StepReport{}, fmt.Errorf("Tick: %w", err)
	}

	boundary.Enforce(l, work.U, work.V)

	dt := p.FixedTimeStep
	if dt == 0 {
		dt = StableTimeStep(s.geom, p.Reynolds, p.Tau, work.U, work.V)
	}

	// F, G start as copies of U, V so faces outside the fluid are defined
	_ = s.f.CopyFrom(work.U)
	_ = s.g.CopyFrom(work.V)
	momentum.Predict(l, momentum.Params{Reynolds: p.Reynolds, GX: p.GX, GY: p.GY, Gamma: p.Gamma}, dt, work.U, work.V, s.f, s.g)
	boundary.EnforceMomentum(l, s.f, s.g, work.U, work.V)

	pressure.RHS(l, s.f, s.g, dt, s.rhs)
	res, err := pressure.Solve(l, work.P, s.rhs, p.solverOptions())
	if err != nil {
		return StepReport{}, fmt.Errorf("Tick: %w", err)
	}
	pressure.Project(l, s.f, s.g, work.P, dt, work.U, work.V, p.Outlet)

	if !work.IsFinite() {
		return StepReport{}, fmt.Errorf("Tick: step %d with dt=%g: %w", s.steps+1, dt, ErrNonFinite)
	}

	s.store, s.scratch = work, s.store
	s.time += dt
	s.steps++
	report := StepReport{
		Step:       s.steps,
		DelT:       dt,
		Time:       s.time,
		Iterations: res.Iterations,
		Residual:   res.Residual,
		Converged:  res.Converged,
	}
	if p.OnStep != nil {
		p.OnStep(report)
	}

	return report, nil
}
