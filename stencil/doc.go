// SPDX-License-Identifier: MIT

// Package stencil holds the finite-difference kernels of the momentum
// equation. Every kernel is a pure function of a 3×3 Window centred on
// (i, j); none of them touch a field.Store.
//
// The convective terms use the donor-cell blend of the NaSt2D code in the
// same algebraic arrangement, so results match that code bit for bit:
//
//	∂(u²)/∂x ≈ ((u+u_E)² − (u_W+u)² + γ(|u+u_E|(u−u_E) − |u_W+u|(u_W−u))) / (4δx)
//
// γ = 0 is central differencing, γ = 1 is full upwinding.
package stencil
