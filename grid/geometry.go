// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"math"
)

// Geometry is the fixed shape of a simulation: IMax×JMax interior cells of
// size DelX×DelY, padded with one halo cell on every side.
type Geometry struct {
	IMax, JMax int     // interior cell counts
	DelX, DelY float64 // cell spacing
}

// NewGeometry validates and returns a Geometry.
// Returns ErrBadShape or ErrBadSpacing.
func NewGeometry(imax, jmax int, delx, dely float64) (Geometry, error) {
	g := Geometry{IMax: imax, JMax: jmax, DelX: delx, DelY: dely}
	if err := g.Validate(); err != nil {
		return Geometry{}, err
	}

	return g, nil
}

// Validate reports whether g is usable.
func (g Geometry) Validate() error {
	if g.IMax <= 0 || g.JMax <= 0 {
		return fmt.Errorf("Geometry(%d,%d): %w", g.IMax, g.JMax, ErrBadShape)
	}
	for _, h := range []float64{g.DelX, g.DelY} {
		if !(h > 0) || math.IsInf(h, 0) {
			return fmt.Errorf("Geometry(delx=%g,dely=%g): %w", g.DelX, g.DelY, ErrBadSpacing)
		}
	}

	return nil
}

// Dims returns the padded extent (IMax+2, JMax+2).
func (g Geometry) Dims() (nx, ny int) { return g.IMax + 2, g.JMax + 2 }

// Width returns the physical width of the interior, IMax·DelX.
func (g Geometry) Width() float64 { return float64(g.IMax) * g.DelX }

// Height returns the physical height of the interior, JMax·DelY.
func (g Geometry) Height() float64 { return float64(g.JMax) * g.DelY }

// IsHalo reports whether (i, j) lies on the outer ring of the padded extent.
func (g Geometry) IsHalo(i, j int) bool {
	return i == 0 || j == 0 || i == g.IMax+1 || j == g.JMax+1
}

// String implements fmt.Stringer.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d cells of %gx%g", g.IMax, g.JMax, g.DelX, g.DelY)
}
