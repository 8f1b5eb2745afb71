// SPDX-License-Identifier: MIT

// Package boundary writes the ghost and wall-face velocities of a MAC grid
// from its cell Layout.
//
// For a non-Fluid cell (i, j) the wetted sides are the neighbours that are
// Fluid. Each wetted side owns one normal face:
//
//	East  → U(i, j)     West  → U(i−1, j)
//	North → V(i, j)     South → V(i, j−1)
//
// and the faces of the cell parallel to that side are its tangential faces.
// Enforce runs four passes in a fixed order:
//
//  0. faces with no Fluid cell on either side are zeroed;
//  1. normal faces of walls and obstacles are 0, of Inflow cells the prescribed component;
//  2. normal faces of Outflow cells copy the next interior face;
//  3. tangential faces mirror the interior face across the wall:
//     NoSlip and Obstacle −x, FreeSlip and Outflow x, Inflow 2·v_in − x.
//
// A tangential face between two wetted cells of different types, such as
// the V face where a FreeSlip halo cell meets a NoSlip one, takes the rule of
// the cell visited last. Cells are visited in row-major order, larger i
// last and then larger j last, so the cell to the north or east wins.
//
// Pass 3 reads only faces with a Fluid cell on one side and writes only faces
// with non-Fluid cells on both sides, so Enforce is idempotent.
package boundary
