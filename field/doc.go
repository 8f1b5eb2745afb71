// SPDX-License-Identifier: MIT

// Package field is the storage layer of the solver: dense scalar arrays laid
// over the padded (imax+2)×(jmax+2) extent of a MAC grid.
//
// What:
//
//   - Field: one row-major float64 array, i outer, j inner (offset = i*ny + j).
//   - Store: the three primary unknowns U (east faces), V (north faces) and
//     P (cell centres), addressed by the same (i, j) index space.
//   - Interior: a row-major iterator over (1..=imax, 1..=jmax).
//
// Safety:
//
//   - At/Set and Store.Get/Store.Set return ErrIndexOutOfBounds instead of
//     panicking.
//   - Get/Put are the solver fast path. They still check bounds and panic
//     with the same sentinel, because an out-of-range index there is a
//     programming error, never user input.
//
// Nothing in this package knows about boundaries: ghost cells keep whatever
// value was last written into them.
package field
