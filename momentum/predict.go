// SPDX-License-Identifier: MIT

// Package momentum computes the provisional velocities F and G: one explicit
// Euler step of the momentum equation without the pressure gradient.
//
//	F = U + δt((1/Re)∇²U − ∂(u²)/∂x − ∂(uv)/∂y + gx)
//	G = V + δt((1/Re)∇²V − ∂(uv)/∂x − ∂(v²)/∂y + gy)
//
// Only faces between two Fluid cells are computed; boundary.EnforceMomentum
// fills the rest.
package momentum

import (
	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/stencil"
)

// Params are the physical and discretisation constants of one prediction.
type Params struct {
	Reynolds float64 // Re > 0
	GX, GY   float64 // body force
	Gamma    float64 // donor-cell blend, 0 central … 1 upwind
}

// Predict writes F and G for every interior Fluid–Fluid face of l.
// u, v, f and g must span l's padded extent. Other faces of f and g are left
// alone; run boundary.EnforceMomentum afterwards.
//
// Usage:
//
//	boundary.Enforce(l, u, v)
//	momentum.Predict(l, momentum.Params{Reynolds: 100, Gamma: 0.9}, dt, u, v, f, g)
//	boundary.EnforceMomentum(l, f, g, u, v)
//
// Time:   O(imax·jmax), each face gathering two 3×3 windows.
// Memory: O(1).
func Predict(l *grid.Layout, p Params, dt float64, u, v, f, g *field.Field) {
	geom := l.Geometry()
	dx, dy := geom.DelX, geom.DelY
	for i, j := range field.Interior(geom.IMax, geom.JMax) {
		fu, fv := l.FluidU(i, j), l.FluidV(i, j)
		if !fu && !fv {
			continue
		}
		uw := stencil.Gather(u, i, j)
		vw := stencil.Gather(v, i, j)
		if fu {
			f.Put(i, j, uw.Centre()+dt*(stencil.Laplacian(&uw, dx, dy)/p.Reynolds-
				stencil.Du2Dx(&uw, dx, p.Gamma)-stencil.DuvDy(&uw, &vw, dy, p.Gamma)+p.GX))
		}
		if fv {
			g.Put(i, j, vw.Centre()+dt*(stencil.Laplacian(&vw, dx, dy)/p.Reynolds-
				stencil.DuvDx(&uw, &vw, dx, p.Gamma)-stencil.Dv2Dy(&vw, dy, p.Gamma)+p.GY))
		}
	}
}
