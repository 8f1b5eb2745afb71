// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"
	"math"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/pressure"
)

// Defaults for Params.
const (
	DefaultReynolds      = 100.0
	DefaultOmega         = pressure.DefaultOmega
	DefaultEpsilon       = pressure.DefaultEpsilon
	DefaultMaxIterations = pressure.DefaultMaxIterations
	DefaultTau           = 0.9
	DefaultGamma         = 0.9
)

// Params carries every tunable of a State.
type Params struct {
	Reynolds float64 // Re > 0
	GX, GY   float64 // body force

	Omega         float64 // SOR relaxation, (0,2)
	Epsilon       float64 // SOR residual tolerance, > 0
	MaxIterations int     // SOR sweep cap, ≥ 1
	Ordering      pressure.Ordering
	Outlet        pressure.OutletMode

	Tau   float64 // time-step safety factor, (0,1)
	Gamma float64 // donor-cell blend, [0,1]

	// FixedTimeStep, if > 0, replaces the stability-bounded step.
	FixedTimeStep float64

	// Inflow shapes the inflow column of the channel-like presets.
	Inflow grid.Profile

	// OnSweep is forwarded to the pressure solver.
	OnSweep func(iter int, residual float64)

	// OnStep is called after every committed Tick.
	OnStep func(StepReport)

	// internal error recorded during option parsing
	err error
}

// Option configures a State. An invalid Option is recorded and surfaced as
// ErrOptionViolation by the constructor.
type Option func(*Params)

// DefaultParams returns Re = 100, no gravity, ω = 1.7, ε = 1e-3, 100 sweeps,
// τ = 0.9, γ = 0.9, an adaptive step and a uniform inflow of (1, 0).
func DefaultParams() Params {
	return Params{
		Reynolds:      DefaultReynolds,
		Omega:         DefaultOmega,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Ordering:      pressure.RowMajor,
		Outlet:        pressure.OutletDirichlet,
		Tau:           DefaultTau,
		Gamma:         DefaultGamma,
		Inflow:        grid.Constant(1, 0),
	}
}

func newParams(base Params, opts []Option) (Params, error) {
	p := base
	for _, opt := range opts {
		opt(&p)
	}
	if p.err != nil {
		return Params{}, p.err
	}
	if err := p.solverOptions().Validate(); err != nil {
		return Params{}, fmt.Errorf("%w: %w", ErrOptionViolation, err)
	}

	return p, nil
}

// solverOptions projects the SOR subset onto pressure.Options.
func (p *Params) solverOptions() pressure.Options {
	return pressure.Options{
		Omega:         p.Omega,
		Epsilon:       p.Epsilon,
		MaxIterations: p.MaxIterations,
		Ordering:      p.Ordering,
		Outlet:        p.Outlet,
		OnSweep:       p.OnSweep,
	}
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

// WithReynolds sets Re; it must be finite and > 0.
func WithReynolds(re float64) Option {
	return func(p *Params) {
		if !(re > 0) || !finite(re) {
			p.err = fmt.Errorf("%w: Reynolds must be finite and > 0 (%g)", ErrOptionViolation, re)
			return
		}
		p.Reynolds = re
	}
}

// WithGravity sets the body force (gx, gy).
func WithGravity(gx, gy float64) Option {
	return func(p *Params) {
		if !finite(gx) || !finite(gy) {
			p.err = fmt.Errorf("%w: gravity must be finite (%g,%g)", ErrOptionViolation, gx, gy)
			return
		}
		p.GX, p.GY = gx, gy
	}
}

// WithOmega sets the SOR relaxation factor.
func WithOmega(omega float64) Option {
	return func(p *Params) { p.Omega = omega }
}

// WithEpsilon sets the SOR residual tolerance.
func WithEpsilon(eps float64) Option {
	return func(p *Params) { p.Epsilon = eps }
}

// WithMaxIterations sets the SOR sweep cap.
func WithMaxIterations(n int) Option {
	return func(p *Params) { p.MaxIterations = n }
}

// WithOrdering selects the SOR sweep order.
func WithOrdering(o pressure.Ordering) Option {
	return func(p *Params) { p.Ordering = o }
}

// WithOutlet selects the pressure condition on Outflow cells.
func WithOutlet(m pressure.OutletMode) Option {
	return func(p *Params) { p.Outlet = m }
}

// WithTau sets the time-step safety factor, 0 < τ < 1.
func WithTau(tau float64) Option {
	return func(p *Params) {
		if !(tau > 0 && tau < 1) {
			p.err = fmt.Errorf("%w: Tau must be in (0,1) (%g)", ErrOptionViolation, tau)
			return
		}
		p.Tau = tau
	}
}

// WithGamma sets the donor-cell blend, 0 ≤ γ ≤ 1.
func WithGamma(gamma float64) Option {
	return func(p *Params) {
		if !(gamma >= 0 && gamma <= 1) {
			p.err = fmt.Errorf("%w: Gamma must be in [0,1] (%g)", ErrOptionViolation, gamma)
			return
		}
		p.Gamma = gamma
	}
}

// WithFixedTimeStep disables the governor and steps by dt.
//
//	dt > 0: fixed step
//	dt == 0: adaptive step (default)
//	dt < 0: invalid → ErrOptionViolation
func WithFixedTimeStep(dt float64) Option {
	return func(p *Params) {
		if !(dt >= 0) || !finite(dt) {
			p.err = fmt.Errorf("%w: FixedTimeStep must be finite and >= 0 (%g)", ErrOptionViolation, dt)
			return
		}
		p.FixedTimeStep = dt
	}
}

// WithInflow sets the inflow profile used by the presets.
func WithInflow(profile grid.Profile) Option {
	return func(p *Params) {
		if profile != nil {
			p.Inflow = profile
		}
	}
}

// WithOnSweep registers a per-sweep callback for the pressure solver.
func WithOnSweep(fn func(iter int, residual float64)) Option {
	return func(p *Params) { p.OnSweep = fn }
}

// WithOnStep registers a callback run after each committed Tick.
func WithOnStep(fn func(StepReport)) Option {
	return func(p *Params) { p.OnStep = fn }
}
