// SPDX-License-Identifier: MIT

package pressure_test

import (
	"testing"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/pressure"
)

// BenchmarkSolve runs 20 SOR sweeps on a 128×128 box in both orderings.
func BenchmarkSolve(b *testing.B) {
	geom, err := grid.NewGeometry(128, 128, 1.0/128, 1.0/128)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	l, err := grid.Build(grid.PresetBox, geom, nil)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	rhs, _ := field.New(geom.Dims())
	cosineRHS(l, rhs)

	for _, ord := range []pressure.Ordering{pressure.RowMajor, pressure.RedBlack} {
		b.Run(ord.String(), func(b *testing.B) {
			opts := pressure.DefaultOptions()
			opts.Ordering = ord
			opts.Epsilon = 1e-300
			opts.MaxIterations = 20
			p, _ := field.New(geom.Dims())
			b.ResetTimer()
			for n := 0; n < b.N; n++ {
				if _, err := pressure.Solve(l, p, rhs, opts); err != nil {
					b.Fatalf("Solve: %v", err)
				}
			}
		})
	}
}
