// SPDX-License-Identifier: MIT

package stencil

import "github.com/wickedchicken/stroemung/field"

// Window is a 3×3 neighbourhood: w[a][b] = f(i+a−1, j+b−1).
// The first index runs along x, the second along y.
type Window [3][3]float64

// Gather copies the neighbourhood of (i, j) out of f.
// (i, j) must be an interior index; Gather panics otherwise.
func Gather(f *field.Field, i, j int) Window {
	var w Window
	for a := 0; a < 3; a++ {
		for b := 0; b < 3; b++ {
			w[a][b] = f.Get(i+a-1, j+b-1)
		}
	}

	return w
}

// Centre returns w[1][1].
func (w *Window) Centre() float64 { return w[1][1] }
