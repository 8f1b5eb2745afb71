// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/sim"
)

// ErrImageSize indicates a destination image that does not match the grid.
var ErrImageSize = errors.New("render: image size does not match grid")

// Mode selects the quantity shown on Fluid cells.
type Mode int

const (
	// Speed colours by |(u, v)| at the cell centre.
	Speed Mode = iota
	// Pressure colours by P.
	Pressure
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case Speed:
		return "speed"
	case Pressure:
		return "pressure"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Next cycles Speed → Pressure → Speed.
func (m Mode) Next() Mode { return (m + 1) % 2 }

var cellColors = [...]color.RGBA{
	grid.Fluid:    {A: 0xff},
	grid.NoSlip:   {R: 0x80, G: 0x80, B: 0x80, A: 0xff},
	grid.FreeSlip: {R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff},
	grid.Outflow:  {R: 0x30, G: 0x60, B: 0x30, A: 0xff},
	grid.Inflow:   {R: 0x30, G: 0x30, B: 0x80, A: 0xff},
	grid.Obstacle: {R: 0x50, G: 0x40, B: 0x40, A: 0xff},
}

// CellColor returns the fixed colour of a boundary type.
func CellColor(t grid.CellType) color.RGBA {
	if !t.Valid() {
		return color.RGBA{R: 0xff, B: 0xff, A: 0xff}
	}
	return cellColors[t]
}

// Sci maps val in [lo, hi] onto four linear segments blue→cyan→green→
// yellow→red. Values outside the range are clamped; an empty range maps to
// the middle of the scale.
func Sci(val, lo, hi float64) color.RGBA {
	d := hi - lo
	if d <= 0 || math.IsNaN(d) {
		val = 0.5
	} else {
		val = (min(max(val, lo), hi) - lo) / d
	}
	val = min(val, 0.9999)
	const m = 0.25
	num := math.Floor(val / m)
	s := (val - num*m) / m

	var r, g, b float64
	switch num {
	case 0:
		g, b = s, 1
	case 1:
		g, b = 1, 1-s
	case 2:
		r, g = s, 1
	default:
		r, g = 1, 1-s
	}

	return color.RGBA{R: uint8(255 * r), G: uint8(255 * g), B: uint8(255 * b), A: 0xff}
}

// NewImage allocates an image of the padded extent of geom.
func NewImage(geom grid.Geometry) *image.RGBA {
	nx, ny := geom.Dims()
	return image.NewRGBA(image.Rect(0, 0, nx, ny))
}

// Draw paints st into dst, which must have the size returned by NewImage.
// It returns the value range the colour scale was stretched over.
func Draw(dst *image.RGBA, st *sim.State, mode Mode) (lo, hi float64, err error) {
	geom := st.Geometry()
	nx, ny := geom.Dims()
	if dst.Bounds().Dx() != nx || dst.Bounds().Dy() != ny {
		return 0, 0, fmt.Errorf("Draw: %v for %dx%d: %w", dst.Bounds().Size(), nx, ny, ErrImageSize)
	}

	vals := make([]float64, nx*ny)
	lo, hi = math.Inf(1), math.Inf(-1)
	for i := 1; i <= geom.IMax; i++ {
		for j := 1; j <= geom.JMax; j++ {
			if !st.IsFluid(i, j) {
				continue
			}
			u, v, p, err := st.Centre(i, j)
			if err != nil {
				return 0, 0, fmt.Errorf("Draw: %w", err)
			}
			x := p
			if mode == Speed {
				x = math.Hypot(u, v)
			}
			vals[i*ny+j] = x
			lo, hi = min(lo, x), max(hi, x)
		}
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 0
	}

	o := dst.Bounds().Min
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			cell, err := st.Cell(i, j)
			if err != nil {
				return 0, 0, fmt.Errorf("Draw: %w", err)
			}
			c := CellColor(cell.Type)
			if cell.Type == grid.Fluid {
				c = Sci(vals[i*ny+j], lo, hi)
			}
			dst.SetRGBA(o.X+i, o.Y+ny-1-j, c)
		}
	}

	return lo, hi, nil
}
