// SPDX-License-Identifier: MIT

package boundary

import (
	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// Enforce fills every non-interior face of u and v from l.
// u and v must span l's padded extent. Faces between two Fluid cells are
// never written, and a second call changes nothing.
//
// Usage:
//
//	l, _ := grid.Build(grid.PresetChannel, geom, grid.Constant(1, 0))
//	u, _ := field.New(geom.Dims())
//	v, _ := field.New(geom.Dims())
//	boundary.Enforce(l, u, v) // U(0,j) = 1 on the inflow column
//
// Time:   O(nx·ny), four passes over the padded extent.
// Memory: O(1).
func Enforce(l *grid.Layout, u, v *field.Field) {
	nx, ny := l.Geometry().Dims()

	// pass 0: dry faces
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if !l.IsFluid(i, j) && !l.IsFluid(i+1, j) {
				u.Put(i, j, 0)
			}
			if !l.IsFluid(i, j) && !l.IsFluid(i, j+1) {
				v.Put(i, j, 0)
			}
		}
	}

	// passes 1 and 2: normal faces
	forEachWetted(l, func(i, j int, c grid.Cell, w grid.Side) {
		if c.Type == grid.Outflow {
			return
		}
		un, vn := 0.0, 0.0
		if c.Type == grid.Inflow {
			un, vn = c.Inflow.U, c.Inflow.V
		}
		setNormal(u, v, i, j, w, un, vn)
	})
	forEachWetted(l, func(i, j int, c grid.Cell, w grid.Side) {
		if c.Type != grid.Outflow {
			return
		}
		if w.Has(grid.East) {
			u.Put(i, j, u.Get(i+1, j))
		}
		if w.Has(grid.West) {
			u.Put(i-1, j, u.Get(i-2, j))
		}
		if w.Has(grid.North) {
			v.Put(i, j, v.Get(i, j+1))
		}
		if w.Has(grid.South) {
			v.Put(i, j-1, v.Get(i, j-2))
		}
	})

	// pass 3: tangential faces; on a face shared by two wetted cells the
	// later cell in (i, j) order wins
	forEachWetted(l, func(i, j int, c grid.Cell, w grid.Side) {
		if w.Has(grid.East) {
			mirrorV(v, i, j, i+1, w, c, c.Inflow.V)
		}
		if w.Has(grid.West) {
			mirrorV(v, i, j, i-1, w, c, c.Inflow.V)
		}
		if w.Has(grid.North) {
			mirrorU(u, i, j, j+1, w, c, c.Inflow.U)
		}
		if w.Has(grid.South) {
			mirrorU(u, i, j, j-1, w, c, c.Inflow.U)
		}
	})
}

// EnforceMomentum copies U into F and V into G on every face that does not
// lie between two Fluid cells, so the pressure right-hand side sees the
// enforced wall values.
// Time: O(nx·ny). Memory: O(1).
func EnforceMomentum(l *grid.Layout, f, g, u, v *field.Field) {
	nx, ny := l.Geometry().Dims()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if !l.FluidU(i, j) {
				f.Put(i, j, u.Get(i, j))
			}
			if !l.FluidV(i, j) {
				g.Put(i, j, v.Get(i, j))
			}
		}
	}
}

// ClearCell zeroes the four faces of (i, j) that lie inside the extent.
func ClearCell(u, v *field.Field, i, j int) {
	u.Put(i, j, 0)
	v.Put(i, j, 0)
	if i > 0 {
		u.Put(i-1, j, 0)
	}
	if j > 0 {
		v.Put(i, j-1, 0)
	}
}

// forEachWetted visits every non-Fluid cell with at least one Fluid neighbour.
func forEachWetted(l *grid.Layout, fn func(i, j int, c grid.Cell, w grid.Side)) {
	nx, ny := l.Geometry().Dims()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			c := l.At(i, j)
			if c.Type == grid.Fluid {
				continue
			}
			if w := l.Wetted(i, j); w != 0 {
				fn(i, j, c, w)
			}
		}
	}
}

func setNormal(u, v *field.Field, i, j int, w grid.Side, un, vn float64) {
	if w.Has(grid.East) {
		u.Put(i, j, un)
	}
	if w.Has(grid.West) {
		u.Put(i-1, j, un)
	}
	if w.Has(grid.North) {
		v.Put(i, j, vn)
	}
	if w.Has(grid.South) {
		v.Put(i, j-1, vn)
	}
}

// mirrorV writes the V faces of a cell wetted on its east or west side from
// column src.
func mirrorV(v *field.Field, i, j, src int, w grid.Side, c grid.Cell, vin float64) {
	if !w.Has(grid.North) {
		v.Put(i, j, reflect(c.Type, v.Get(src, j), vin))
	}
	if !w.Has(grid.South) && j > 0 {
		v.Put(i, j-1, reflect(c.Type, v.Get(src, j-1), vin))
	}
}

// mirrorU writes the U faces of a cell wetted on its north or south side from
// row src.
func mirrorU(u *field.Field, i, j, src int, w grid.Side, c grid.Cell, uin float64) {
	if !w.Has(grid.East) {
		u.Put(i, j, reflect(c.Type, u.Get(i, src), uin))
	}
	if !w.Has(grid.West) && i > 0 {
		u.Put(i-1, j, reflect(c.Type, u.Get(i-1, src), uin))
	}
}

// reflect maps the interior tangential value x onto the ghost face.
func reflect(t grid.CellType, x, in float64) float64 {
	switch t {
	case grid.NoSlip, grid.Obstacle:
		return -x
	case grid.FreeSlip, grid.Outflow:
		return x
	case grid.Inflow:
		return 2*in - x
	default:
		return x
	}
}
