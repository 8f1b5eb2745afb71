// SPDX-License-Identifier: MIT

package momentum_test

import (
	"testing"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/momentum"
)

// BenchmarkPredict computes F and G on a 200×50 channel with an obstacle.
func BenchmarkPredict(b *testing.B) {
	geom, err := grid.NewGeometry(200, 50, 0.1, 0.1)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	l, err := grid.Build(grid.PresetObstacle, geom, nil)
	if err != nil {
		b.Fatalf("setup: %v", err)
	}
	u, _ := field.New(geom.Dims())
	v, _ := field.New(geom.Dims())
	f, _ := field.New(geom.Dims())
	g, _ := field.New(geom.Dims())
	u.Fill(1)
	v.Fill(0.1)
	p := momentum.Params{Reynolds: 100, Gamma: 0.9}
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		momentum.Predict(l, p, 0.01, u, v, f, g)
	}
}
