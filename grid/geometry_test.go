// SPDX-License-Identifier: MIT

package grid_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wickedchicken/stroemung/grid"
)

func TestNewGeometry(t *testing.T) {
	g, err := grid.NewGeometry(100, 20, 0.1, 0.2)
	require.NoError(t, err)

	nx, ny := g.Dims()
	assert.Equal(t, 102, nx)
	assert.Equal(t, 22, ny)
	assert.InDelta(t, 10.0, g.Width(), 1e-12)
	assert.InDelta(t, 4.0, g.Height(), 1e-12)
	assert.Equal(t, "100x20 cells of 0.1x0.2", g.String())

	assert.True(t, g.IsHalo(0, 5))
	assert.True(t, g.IsHalo(5, 21))
	assert.False(t, g.IsHalo(1, 1))
}

func TestNewGeometryRejects(t *testing.T) {
	cases := []struct {
		name       string
		imax, jmax int
		dx, dy     float64
		want       error
	}{
		{"zero imax", 0, 4, 1, 1, grid.ErrBadShape},
		{"negative jmax", 4, -2, 1, 1, grid.ErrBadShape},
		{"zero delx", 4, 4, 0, 1, grid.ErrBadSpacing},
		{"nan dely", 4, 4, 1, math.NaN(), grid.ErrBadSpacing},
		{"inf delx", 4, 4, math.Inf(1), 1, grid.ErrBadSpacing},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.NewGeometry(tc.imax, tc.jmax, tc.dx, tc.dy)
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParseCellType(t *testing.T) {
	for name, want := range map[string]grid.CellType{
		"Fluid":    grid.Fluid,
		"wall":     grid.NoSlip,
		"no_slip":  grid.NoSlip,
		"slip":     grid.FreeSlip,
		" Inlet ":  grid.Inflow,
		"OUTLET":   grid.Outflow,
		"solid":    grid.Obstacle,
		"NoSlip":   grid.NoSlip,
		"freeslip": grid.FreeSlip,
	} {
		got, err := grid.ParseCellType(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := grid.ParseCellType("lava")
	require.ErrorIs(t, err, grid.ErrUnknownCellType)
}

func TestCellTypeString(t *testing.T) {
	assert.Equal(t, "Obstacle", grid.Obstacle.String())
	assert.Equal(t, "CellType(42)", grid.CellType(42).String())
	assert.False(t, grid.CellType(42).Valid())
	assert.Equal(t, "Inflow(1,0)", grid.InflowCell(1, 0).String())
	assert.Equal(t, "NoSlip", grid.Cell{Type: grid.NoSlip}.String())
}
