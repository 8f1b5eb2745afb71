// SPDX-License-Identifier: MIT

// Package pressure solves the pressure-Poisson equation of the projection
// method and applies the resulting gradient to the provisional velocities.
//
// What:
//
//   - RHS:     (1/δt)·(∂F/∂x + ∂G/∂y) per Fluid cell.
//   - Solve:   in-place SOR sweeps until the RMS residual drops below ε or
//     the iteration cap is hit (reported in Result, not an error).
//   - Project: U = F − δt/δx·∂P/∂x, V = G − δt/δy·∂P/∂y.
//
// Boundary pressure:
//
//   - A non-Fluid neighbour contributes the Fluid cell's own current value
//     (homogeneous Neumann). The value is read when the neighbour is used,
//     so it always tracks the partially updated sweep.
//   - With OutletDirichlet (the default) an Outflow neighbour contributes the
//     negated own value, i.e. p = 0 on the outlet face, and faces between a
//     Fluid and an Outflow cell are projected too. OutletNeumann treats
//     Outflow like any other wall.
//
// Ordering:
//
//   - RowMajor: Gauss–Seidel order, i outer, j inner. Reproducible.
//   - RedBlack: checkerboard colouring; each colour is split across
//     goroutines. A different, equally valid fixed-point iteration.
//
// Errors:
//
//   - ErrDegenerateGrid: the layout has no Fluid cell.
//   - ErrOptionViolation: Options outside their documented ranges.
package pressure
