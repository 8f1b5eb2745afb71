// SPDX-License-Identifier: MIT

// Package sim runs a 2D incompressible flow on a MAC grid.
//
// A State owns one simulation: its Geometry, cell Layout, the U/V/P store,
// the clock and every tuning parameter. Nothing is global, so independent
// States (for example a parameter sweep) never interfere.
//
// One Tick performs, in order:
//
//  1. boundary enforcement on U, V;
//  2. the stable time step (or the fixed one, see WithFixedTimeStep);
//  3. the momentum predictor F, G;
//  4. boundary enforcement on F, G;
//  5. the SOR pressure solve;
//  6. the velocity correction;
//  7. time += δt.
//
// A Tick works on scratch buffers and commits only when every stage
// succeeded and the new fields are finite, so a failed Tick leaves the
// State exactly as it was. A State is not safe for concurrent use; callers
// serialise Tick, PaintCell and the readers.
//
// Errors:
//
//   - ErrIndexOutOfBounds: coordinates outside the padded extent.
//   - ErrRejectedEdit: PaintCell would break the layout invariants.
//   - ErrDegenerateGrid: no Fluid cell to solve for.
//   - ErrSorNonConvergent: via StepReport.Err, never returned by Tick.
//   - ErrNonFinite, ErrTickInProgress, ErrOptionViolation.
package sim
