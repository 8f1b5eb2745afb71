// SPDX-License-Identifier: MIT

package render_test

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/render"
	"github.com/wickedchicken/stroemung/sim"
)

var (
	blue  = color.RGBA{B: 0xff, A: 0xff}
	green = color.RGBA{G: 0xff, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func TestSci(t *testing.T) {
	assert.Equal(t, blue, render.Sci(0, 0, 1))
	assert.Equal(t, blue, render.Sci(-3, 0, 1)) // clamped
	assert.Equal(t, green, render.Sci(0.5, 0, 1))
	assert.Equal(t, red, render.Sci(1, 0, 1))
	assert.Equal(t, red, render.Sci(7, 0, 1))
	assert.Equal(t, color.RGBA{G: 0xff, B: 0xff, A: 0xff}, render.Sci(0.25, 0, 1))
	assert.Equal(t, green, render.Sci(4, 4, 4)) // empty range
}

func TestModeNext(t *testing.T) {
	assert.Equal(t, render.Pressure, render.Speed.Next())
	assert.Equal(t, render.Speed, render.Pressure.Next())
	assert.Equal(t, "pressure", render.Pressure.String())
}

func boxWithFlow(t *testing.T) *sim.State {
	t.Helper()
	geom, err := grid.NewGeometry(2, 2, 1, 1)
	require.NoError(t, err)
	st, err := sim.BuildScenario(grid.PresetBox, geom)
	require.NoError(t, err)
	snap := st.Export()
	snap.U[1][1] = 2
	st, err = sim.Import(snap)
	require.NoError(t, err)

	return st
}

func TestDrawSpeed(t *testing.T) {
	st := boxWithFlow(t)
	img := render.NewImage(st.Geometry())
	lo, hi, err := render.Draw(img, st, render.Speed)
	require.NoError(t, err)
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 1.0, hi)

	assert.Equal(t, red, img.RGBAAt(1, 2))  // cell (1,1)
	assert.Equal(t, red, img.RGBAAt(2, 2))  // cell (2,1)
	assert.Equal(t, blue, img.RGBAAt(1, 1)) // cell (1,2)
	assert.Equal(t, render.CellColor(grid.NoSlip), img.RGBAAt(0, 0))
	assert.Equal(t, render.CellColor(grid.NoSlip), img.RGBAAt(3, 3))
}

func TestDrawPressureAndLid(t *testing.T) {
	geom, err := grid.NewGeometry(3, 2, 1, 1)
	require.NoError(t, err)
	st, err := sim.BuildScenario(grid.PresetCavity, geom)
	require.NoError(t, err)

	img := render.NewImage(geom)
	lo, hi, err := render.Draw(img, st, render.Pressure)
	require.NoError(t, err)
	assert.Zero(t, lo)
	assert.Zero(t, hi)
	assert.Equal(t, render.CellColor(grid.Inflow), img.RGBAAt(2, 0)) // lid
	assert.Equal(t, green, img.RGBAAt(2, 2))

	_, _, err = render.Draw(image.NewRGBA(image.Rect(0, 0, 4, 4)), st, render.Pressure)
	require.ErrorIs(t, err, render.ErrImageSize)
}

func TestDrawPaintedObstacle(t *testing.T) {
	geom, err := grid.NewGeometry(6, 6, 1, 1)
	require.NoError(t, err)
	st, err := sim.BuildScenario(grid.PresetCavity, geom)
	require.NoError(t, err)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		require.NoError(t, st.PaintCell(c[0], c[1], grid.Cell{Type: grid.Obstacle}))
	}
	_, err = st.Tick()
	require.NoError(t, err)

	img := render.NewImage(geom)
	_, _, err = render.Draw(img, st, render.Speed)
	require.NoError(t, err)
	_, ny := geom.Dims()
	assert.Equal(t, render.CellColor(grid.Obstacle), img.RGBAAt(2, ny-1-2))
	assert.NotEqual(t, render.CellColor(grid.Obstacle), img.RGBAAt(4, ny-1-4))

	// the painted block shows up without reading a copy of the layout
	assert.False(t, st.IsFluid(2, 2))
}
