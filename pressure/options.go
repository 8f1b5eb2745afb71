// SPDX-License-Identifier: MIT

package pressure

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegenerateGrid indicates a layout without any Fluid cell.
	ErrDegenerateGrid = errors.New("pressure: no fluid cells")

	// ErrOptionViolation indicates an Options value outside its range.
	ErrOptionViolation = errors.New("pressure: invalid option supplied")
)

// Default SOR parameters.
const (
	DefaultOmega         = 1.7
	DefaultEpsilon       = 1e-3
	DefaultMaxIterations = 100
)

// Ordering selects the SOR sweep order.
type Ordering int

const (
	// RowMajor is the sequential Gauss–Seidel sweep.
	RowMajor Ordering = iota
	// RedBlack updates all cells with even i+j, then all with odd i+j.
	RedBlack
)

// String implements fmt.Stringer.
func (o Ordering) String() string {
	switch o {
	case RowMajor:
		return "row-major"
	case RedBlack:
		return "red-black"
	default:
		return fmt.Sprintf("Ordering(%d)", int(o))
	}
}

// OutletMode selects the pressure condition on Outflow cells.
type OutletMode int

const (
	// OutletDirichlet pins p = 0 on faces shared with Outflow cells.
	OutletDirichlet OutletMode = iota
	// OutletNeumann treats Outflow like a wall (zero normal gradient).
	OutletNeumann
)

// String implements fmt.Stringer.
func (m OutletMode) String() string {
	switch m {
	case OutletDirichlet:
		return "dirichlet"
	case OutletNeumann:
		return "neumann"
	default:
		return fmt.Sprintf("OutletMode(%d)", int(m))
	}
}

// Options tunes Solve and Project.
type Options struct {
	// Omega is the relaxation factor, 0 < Omega < 2.
	Omega float64

	// Epsilon is the RMS residual below which Solve stops, > 0.
	Epsilon float64

	// MaxIterations caps the number of sweeps, ≥ 1.
	MaxIterations int

	Ordering Ordering
	Outlet   OutletMode

	// OnSweep, if set, is called after every sweep with the 1-based sweep
	// number and the residual.
	OnSweep func(iter int, residual float64)
}

// DefaultOptions returns ω = 1.7, ε = 1e-3, 100 sweeps, row-major order and a
// Dirichlet outlet.
func DefaultOptions() Options {
	return Options{
		Omega:         DefaultOmega,
		Epsilon:       DefaultEpsilon,
		MaxIterations: DefaultMaxIterations,
		Ordering:      RowMajor,
		Outlet:        OutletDirichlet,
	}
}

// Validate returns ErrOptionViolation for out-of-range fields.
func (o Options) Validate() error {
	switch {
	case !(o.Omega > 0 && o.Omega < 2):
		return fmt.Errorf("%w: Omega must be in (0,2), got %g", ErrOptionViolation, o.Omega)
	case !(o.Epsilon > 0) || math.IsInf(o.Epsilon, 0):
		return fmt.Errorf("%w: Epsilon must be finite and > 0, got %g", ErrOptionViolation, o.Epsilon)
	case o.MaxIterations < 1:
		return fmt.Errorf("%w: MaxIterations must be >= 1, got %d", ErrOptionViolation, o.MaxIterations)
	case o.Ordering != RowMajor && o.Ordering != RedBlack:
		return fmt.Errorf("%w: unknown %v", ErrOptionViolation, o.Ordering)
	case o.Outlet != OutletDirichlet && o.Outlet != OutletNeumann:
		return fmt.Errorf("%w: unknown %v", ErrOptionViolation, o.Outlet)
	}

	return nil
}
