// SPDX-License-Identifier: MIT

package pressure

import (
	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// Project corrects the provisional velocities with the pressure gradient:
//
//	U(i,j) = F(i,j) − δt/δx·(P(i+1,j) − P(i,j))
//	V(i,j) = G(i,j) − δt/δy·(P(i,j+1) − P(i,j))
//
// on every face between two Fluid cells. Under OutletDirichlet the faces
// between a Fluid and an Outflow cell are corrected as well, with the Outflow
// side pressure taken as the negated Fluid value.
//
// Time:   O(nx·ny).
// Memory: O(1); u and v are written in place.
func Project(l *grid.Layout, f, g, p *field.Field, dt float64, u, v *field.Field, outlet OutletMode) {
	geom := l.Geometry()
	nx, ny := geom.Dims()
	cx, cy := dt/geom.DelX, dt/geom.DelY
	out := func(i, j int) bool {
		return outlet == OutletDirichlet && i < nx && j < ny && l.At(i, j).Type == grid.Outflow
	}

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			here, east, north := l.IsFluid(i, j), l.IsFluid(i+1, j), l.IsFluid(i, j+1)
			switch {
			case here && east:
				u.Put(i, j, f.Get(i, j)-cx*(p.Get(i+1, j)-p.Get(i, j)))
			case here && out(i+1, j):
				u.Put(i, j, f.Get(i, j)-cx*(-2*p.Get(i, j)))
			case east && out(i, j):
				u.Put(i, j, f.Get(i, j)-cx*(2*p.Get(i+1, j)))
			}
			switch {
			case here && north:
				v.Put(i, j, g.Get(i, j)-cy*(p.Get(i, j+1)-p.Get(i, j)))
			case here && out(i, j+1):
				v.Put(i, j, g.Get(i, j)-cy*(-2*p.Get(i, j)))
			case north && out(i, j):
				v.Put(i, j, g.Get(i, j)-cy*(2*p.Get(i, j+1)))
			}
		}
	}
}
