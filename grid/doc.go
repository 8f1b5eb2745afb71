// SPDX-License-Identifier: MIT

// Package grid describes where the fluid is: the immutable Geometry of a MAC
// grid and the per-cell Layout that classifies every cell of the padded
// extent as Fluid or as one of the boundary kinds.
//
// What:
//
//   - Geometry: interior cell counts (IMax, JMax) and spacings (DelX, DelY).
//   - CellType: Fluid, NoSlip, FreeSlip, Outflow, Inflow, Obstacle.
//   - Layout: the cell map with its adjacency invariant, checked edits
//     (Paint), validation and connected fluid regions.
//   - Presets: box, channel, obstacle, step and cavity layouts.
//
// Invariants:
//
//   - A non-Fluid cell never has Fluid cells on two opposite sides.
//   - Halo cells (i ∈ {0, IMax+1} or j ∈ {0, JMax+1}) are never Fluid.
//
// Paint enforces both before committing; a rejected edit leaves the Layout
// unchanged and returns ErrRejectedEdit.
//
// Complexity:
//
//   - Paint: O(1). Validate, FluidCount: O(nx·ny).
//   - FluidRegions: O(nx·ny) time and memory (BFS, 4-connectivity).
package grid
