// SPDX-License-Identifier: MIT

package pressure_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/pressure"
)

func layout(t *testing.T, preset string, imax, jmax int, dx, dy float64) (*grid.Layout, func() *field.Field) {
	t.Helper()
	g, err := grid.NewGeometry(imax, jmax, dx, dy)
	require.NoError(t, err)
	l, err := grid.Build(preset, g, nil)
	require.NoError(t, err)

	nx, ny := g.Dims()
	return l, func() *field.Field {
		f, err := field.New(nx, ny)
		require.NoError(t, err)
		return f
	}
}

// cosineRHS has zero mean over the box, so the Neumann problem is solvable.
func cosineRHS(l *grid.Layout, rhs *field.Field) {
	g := l.Geometry()
	for i, j := range field.Interior(g.IMax, g.JMax) {
		x, y := (float64(i)-0.5)*g.DelX, (float64(j)-0.5)*g.DelY
		rhs.Put(i, j, math.Cos(math.Pi*x)*math.Cos(math.Pi*y))
	}
}

func TestSolveZeroRHSOneSweep(t *testing.T) {
	l, alloc := layout(t, grid.PresetObstacle, 20, 10, 0.1, 0.1)
	p, rhs := alloc(), alloc()

	res, err := pressure.Solve(l, p, rhs, pressure.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.Zero(t, res.Residual)
	assert.True(t, res.Converged)
	assert.Zero(t, p.MaxAbs())
}

func TestSolveResidualNonIncreasing(t *testing.T) {
	l, alloc := layout(t, grid.PresetBox, 8, 8, 0.125, 0.125)
	p, rhs := alloc(), alloc()
	cosineRHS(l, rhs)

	var history []float64
	opts := pressure.DefaultOptions()
	opts.Epsilon = 1e-14
	opts.OnSweep = func(iter int, r float64) {
		require.Equal(t, len(history)+1, iter)
		history = append(history, r)
	}

	res, err := pressure.Solve(l, p, rhs, opts)
	require.NoError(t, err)
	require.Len(t, history, res.Iterations)
	assert.False(t, res.Converged, "cap reached is reported, not an error")
	assert.Equal(t, opts.MaxIterations, res.Iterations)
	for k := 1; k < len(history); k++ {
		require.LessOrEqual(t, history[k], history[k-1], "sweep %d", k+1)
	}
	assert.Less(t, history[len(history)-1], 1e-3*history[0])

	again, err := pressure.Residual(l, p, rhs, opts.Outlet)
	require.NoError(t, err)
	assert.InDelta(t, res.Residual, again, 1e-15)
}

func TestSolveRedBlackMatchesGradient(t *testing.T) {
	l, alloc := layout(t, grid.PresetBox, 12, 8, 0.1, 0.125)
	rhs := alloc()
	cosineRHS(l, rhs)
	// remove the discrete mean so the Neumann problem is compatible
	var mean float64
	for i, j := range field.Interior(12, 8) {
		mean += rhs.Get(i, j) / 96
	}
	for i, j := range field.Interior(12, 8) {
		rhs.Put(i, j, rhs.Get(i, j)-mean)
	}

	solve := func(o pressure.Ordering) *field.Field {
		p := alloc()
		opts := pressure.DefaultOptions()
		opts.Ordering = o
		opts.Epsilon = 1e-10
		opts.MaxIterations = 5000
		res, err := pressure.Solve(l, p, rhs, opts)
		require.NoError(t, err)
		require.True(t, res.Converged, "%v: %+v", o, res)
		return p
	}
	a, b := solve(pressure.RowMajor), solve(pressure.RedBlack)
	for i, j := range field.Interior(12, 8) {
		require.InDelta(t, a.Get(i, j)-a.Get(1, 1), b.Get(i, j)-b.Get(1, 1), 1e-6, "(%d,%d)", i, j)
	}
}

func TestSolveDegenerateGrid(t *testing.T) {
	l, alloc := layout(t, grid.PresetBox, 2, 2, 1, 1)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		require.NoError(t, l.Paint(c[0], c[1], grid.Cell{Type: grid.Obstacle}))
	}
	p, rhs := alloc(), alloc()

	_, err := pressure.Solve(l, p, rhs, pressure.DefaultOptions())
	require.ErrorIs(t, err, pressure.ErrDegenerateGrid)

	_, err = pressure.Residual(l, p, rhs, pressure.OutletDirichlet)
	require.ErrorIs(t, err, pressure.ErrDegenerateGrid)
}

func TestOptionsValidate(t *testing.T) {
	require.NoError(t, pressure.DefaultOptions().Validate())

	for name, mutate := range map[string]func(*pressure.Options){
		"omega zero":  func(o *pressure.Options) { o.Omega = 0 },
		"omega two":   func(o *pressure.Options) { o.Omega = 2 },
		"epsilon":     func(o *pressure.Options) { o.Epsilon = -1 },
		"epsilon nan": func(o *pressure.Options) { o.Epsilon = math.NaN() },
		"iterations":  func(o *pressure.Options) { o.MaxIterations = 0 },
		"ordering":    func(o *pressure.Options) { o.Ordering = 7 },
		"outlet":      func(o *pressure.Options) { o.Outlet = -1 },
	} {
		o := pressure.DefaultOptions()
		mutate(&o)
		require.ErrorIs(t, o.Validate(), pressure.ErrOptionViolation, name)
	}
	assert.Equal(t, "red-black", pressure.RedBlack.String())
	assert.Equal(t, "neumann", pressure.OutletNeumann.String())
}

func TestSolvePublishesWallPressure(t *testing.T) {
	l, alloc := layout(t, grid.PresetChannel, 4, 3, 1, 1)
	p, rhs := alloc(), alloc()
	for i, j := range field.Interior(4, 3) {
		p.Put(i, j, float64(i+j))
	}
	opts := pressure.DefaultOptions()
	opts.MaxIterations = 1
	opts.Omega = 1e-9 // keep interior values practically unchanged

	_, err := pressure.Solve(l, p, rhs, opts)
	require.NoError(t, err)
	assert.InDelta(t, p.Get(1, 2), p.Get(0, 2), 1e-6, "inflow wall copies its neighbour")
	assert.InDelta(t, -p.Get(4, 2), p.Get(5, 2), 1e-6, "outlet mirrors to p = 0 on the face")
	assert.InDelta(t, p.Get(2, 3), p.Get(2, 4), 1e-6)
	assert.Zero(t, p.Get(0, 0), "dry corner untouched")
}
