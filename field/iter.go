// SPDX-License-Identifier: MIT

package field

import "iter"

// Interior yields every interior cell (i, j), 1 ≤ i ≤ imax, 1 ≤ j ≤ jmax,
// with i in the outer loop. SOR sweeps depend on this order.
//
//	for i, j := range field.Interior(imax, jmax) { ... }
func Interior(imax, jmax int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for i := 1; i <= imax; i++ {
			for j := 1; j <= jmax; j++ {
				if !yield(i, j) {
					return
				}
			}
		}
	}
}
