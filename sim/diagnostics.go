// SPDX-License-Identifier: MIT

package sim

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// KineticEnergy returns Σ ½(u²+v²)·δx·δy over Fluid cells, with u and v
// averaged to the cell centre.
func (s *State) KineticEnergy() float64 {
	var e float64
	s.eachFluid(func(i, j int, u, v float64) {
		e += 0.5 * (u*u + v*v) * s.geom.DelX * s.geom.DelY
	})

	return e
}

// MaxSpeed returns the largest cell-centred speed over Fluid cells.
func (s *State) MaxSpeed() float64 {
	var m float64
	s.eachFluid(func(i, j int, u, v float64) {
		m = max(m, math.Hypot(u, v))
	})

	return m
}

// Divergence returns the RMS over Fluid cells of
// (U(i,j)−U(i−1,j))/δx + (V(i,j)−V(i,j−1))/δy, or 0 without Fluid cells.
func (s *State) Divergence() float64 {
	st := s.store
	div := make([]float64, 0, s.layout.FluidCount())
	for i, j := range st.Cells() {
		if !s.layout.IsFluid(i, j) {
			continue
		}
		div = append(div, (st.U.Get(i, j)-st.U.Get(i-1, j))/s.geom.DelX+(st.V.Get(i, j)-st.V.Get(i, j-1))/s.geom.DelY)
	}
	if len(div) == 0 {
		return 0
	}

	return floats.Norm(div, 2) / math.Sqrt(float64(len(div)))
}

// FluidRegions returns the connected Fluid components of the layout.
func (s *State) FluidRegions() [][]grid.Coord { return s.layout.FluidRegions() }

func (s *State) eachFluid(fn func(i, j int, u, v float64)) {
	st := s.store
	for i, j := range field.Interior(s.geom.IMax, s.geom.JMax) {
		if !s.layout.IsFluid(i, j) {
			continue
		}
		fn(i, j, (st.U.Get(i, j)+st.U.Get(i-1, j))/2, (st.V.Get(i, j)+st.V.Get(i, j-1))/2)
	}
}
