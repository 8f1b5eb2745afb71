// SPDX-License-Identifier: MIT

package sim

import (
	"errors"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/pressure"
)

// Error kinds shared with the lower layers, re-exported so callers only
// import sim.
var (
	ErrIndexOutOfBounds = field.ErrIndexOutOfBounds
	ErrRejectedEdit     = grid.ErrRejectedEdit
	ErrDegenerateGrid   = pressure.ErrDegenerateGrid
)

var (
	// ErrSorNonConvergent marks a step whose pressure solve hit the sweep cap.
	// It is diagnostic only; see StepReport.Err.
	ErrSorNonConvergent = errors.New("sim: pressure solve did not converge")

	// ErrNonFinite indicates a step produced NaN or Inf; the state was not changed.
	ErrNonFinite = errors.New("sim: non-finite values")

	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("sim: invalid option supplied")

	// ErrTickInProgress indicates a re-entrant call from inside a Tick hook.
	ErrTickInProgress = errors.New("sim: tick in progress")
)
