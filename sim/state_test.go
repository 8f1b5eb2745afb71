// SPDX-License-Identifier: MIT

package sim_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/pressure"
	"github.com/wickedchicken/stroemung/sim"
)

func build(t *testing.T, preset string, imax, jmax int, opts ...sim.Option) *sim.State {
	t.Helper()
	geom, err := grid.NewGeometry(imax, jmax, 0.1, 0.1)
	require.NoError(t, err)
	st, err := sim.BuildScenario(preset, geom, opts...)
	require.NoError(t, err)

	return st
}

func TestBuildScenarioErrors(t *testing.T) {
	geom, err := grid.NewGeometry(10, 10, 0.1, 0.1)
	require.NoError(t, err)

	_, err = sim.BuildScenario("nope", geom)
	require.ErrorIs(t, err, grid.ErrUnknownPreset)

	_, err = sim.BuildScenario(grid.PresetBox, grid.Geometry{IMax: 3, JMax: 3})
	require.ErrorIs(t, err, grid.ErrBadSpacing)

	for name, opt := range map[string]sim.Option{
		"tau":        sim.WithTau(0),
		"tau one":    sim.WithTau(1),
		"gamma":      sim.WithGamma(1.5),
		"reynolds":   sim.WithReynolds(-1),
		"gravity":    sim.WithGravity(math.NaN(), 0),
		"dt":         sim.WithFixedTimeStep(-0.1),
		"omega":      sim.WithOmega(2.5),
		"iterations": sim.WithMaxIterations(0),
	} {
		_, err = sim.BuildScenario(grid.PresetBox, geom, opt)
		require.ErrorIs(t, err, sim.ErrOptionViolation, name)
	}

	_, err = sim.BuildScenario(grid.PresetBox, geom, sim.WithOmega(0))
	require.ErrorIs(t, err, pressure.ErrOptionViolation)
}

func TestBoxAtRestStaysAtRest(t *testing.T) {
	st := build(t, grid.PresetBox, 8, 8)
	for k := 0; k < 10; k++ {
		rep, err := st.Tick()
		require.NoError(t, err)
		require.NoError(t, rep.Err())
		// zero velocity: diffusive bound only
		require.InDelta(t, 0.9*100/2/(100+100), rep.DelT, 1e-15)
		require.Equal(t, 1, rep.Iterations)
	}
	assert.Zero(t, st.KineticEnergy())
	assert.Zero(t, st.Divergence())
}

func TestStableTimeStep(t *testing.T) {
	geom, err := grid.NewGeometry(4, 4, 0.5, 0.25)
	require.NoError(t, err)
	u, _ := field.New(6, 6)
	v, _ := field.New(6, 6)

	diffusive := 10.0 / 2 / (4 + 16)
	assert.InDelta(t, 0.5*diffusive, sim.StableTimeStep(geom, 10, 0.5, u, v), 1e-15)

	u.Put(5, 5, -20) // ghosts count too
	assert.InDelta(t, 0.5*0.5/20, sim.StableTimeStep(geom, 10, 0.5, u, v), 1e-15)

	v.Put(2, 2, 100)
	assert.InDelta(t, 0.5*0.25/100, sim.StableTimeStep(geom, 10, 0.5, u, v), 1e-15)
}

func TestFixedTimeStep(t *testing.T) {
	st := build(t, grid.PresetCavity, 10, 10, sim.WithFixedTimeStep(0.005))
	rep, err := st.Tick()
	require.NoError(t, err)
	assert.Equal(t, 0.005, rep.DelT)
}

// TestMassConservation checks every preset: after a converged tick the
// discrete divergence is below ε.
func TestMassConservation(t *testing.T) {
	for _, preset := range grid.Presets() {
		t.Run(preset, func(t *testing.T) {
			st := build(t, preset, 20, 10)
			converged := 0
			for k := 0; k < 30; k++ {
				rep, err := st.Tick()
				require.NoError(t, err)
				if rep.Converged {
					converged++
					require.Less(t, st.Divergence(), st.Params().Epsilon, "tick %d", rep.Step)
				}
			}
			assert.Positive(t, converged)
		})
	}
}

func TestNonConvergenceIsReported(t *testing.T) {
	st := build(t, grid.PresetChannel, 10, 10, sim.WithMaxIterations(1))
	rep, err := st.Tick()
	require.NoError(t, err)
	require.False(t, rep.Converged)
	require.Equal(t, 1, rep.Iterations)
	require.ErrorIs(t, rep.Err(), sim.ErrSorNonConvergent)
	require.Equal(t, 1, st.Steps(), "the tick still commits")
}

func TestPaintCellRejectedLeavesStateUnchanged(t *testing.T) {
	st := build(t, grid.PresetChannel, 10, 10)
	for k := 0; k < 3; k++ {
		_, err := st.Tick()
		require.NoError(t, err)
	}
	before := st.Export()

	// (5,5) has Fluid on all four sides
	err := st.PaintCell(5, 5, grid.Cell{Type: grid.NoSlip})
	require.ErrorIs(t, err, sim.ErrRejectedEdit)
	err = st.PaintCell(0, 5, grid.Cell{Type: grid.Fluid})
	require.ErrorIs(t, err, sim.ErrRejectedEdit)
	err = st.PaintCell(12, 0, grid.Cell{Type: grid.NoSlip})
	require.ErrorIs(t, err, sim.ErrIndexOutOfBounds)

	require.Equal(t, before, st.Export())
}

func TestPaintCellZeroesSolidFaces(t *testing.T) {
	st := build(t, grid.PresetCavity, 10, 10)
	for k := 0; k < 3; k++ {
		_, err := st.Tick()
		require.NoError(t, err)
	}
	// grown from the corner so every intermediate layout is valid
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		require.NoError(t, st.PaintCell(c[0], c[1], grid.Cell{Type: grid.Obstacle}))
	}
	for _, k := range []field.Kind{field.KindU, field.KindV, field.KindP} {
		x, err := st.Value(k, 1, 1)
		require.NoError(t, err)
		assert.Zero(t, x, "%v(1,1)", k)
	}
	c, err := st.Cell(2, 2)
	require.NoError(t, err)
	assert.Equal(t, grid.Obstacle, c.Type)
	assert.False(t, st.IsFluid(2, 2))
	assert.True(t, st.IsFluid(3, 3))
	assert.False(t, st.IsFluid(-1, 3))
	assert.False(t, st.IsFluid(3, 12))

	_, err = st.Tick()
	require.NoError(t, err)
	assert.Len(t, st.FluidRegions(), 1)
	assert.Equal(t, 96, st.Layout().FluidCount())
}

func TestTickFailureIsAtomic(t *testing.T) {
	st := build(t, grid.PresetCavity, 8, 8)
	_, err := st.Tick()
	require.NoError(t, err)
	before := st.Export()

	bad, err := sim.Import(before, sim.WithGravity(1e308, 0), sim.WithFixedTimeStep(10))
	require.NoError(t, err)
	snap := bad.Export()

	_, err = bad.Tick()
	require.ErrorIs(t, err, sim.ErrNonFinite)
	require.Equal(t, snap, bad.Export())
	require.Equal(t, sim.Idle, bad.Phase())
}

func TestDegenerateGrid(t *testing.T) {
	st := build(t, grid.PresetBox, 2, 2)
	for _, c := range [][2]int{{1, 1}, {2, 1}, {1, 2}, {2, 2}} {
		require.NoError(t, st.PaintCell(c[0], c[1], grid.Cell{Type: grid.Obstacle}))
	}
	before := st.Export()

	_, err := st.Tick()
	require.ErrorIs(t, err, sim.ErrDegenerateGrid)
	require.Equal(t, before, st.Export())
	assert.Zero(t, st.Steps())
}

func TestReentrantTickIsRejected(t *testing.T) {
	var st *sim.State
	var tickErr, paintErr error
	st = build(t, grid.PresetCavity, 6, 6, sim.WithOnSweep(func(iter int, _ float64) {
		if iter == 1 {
			_, tickErr = st.Tick()
			paintErr = st.PaintCell(1, 1, grid.Cell{Type: grid.NoSlip})
		}
	}))

	_, err := st.Tick()
	require.NoError(t, err)
	require.ErrorIs(t, tickErr, sim.ErrTickInProgress)
	require.ErrorIs(t, paintErr, sim.ErrTickInProgress)
	assert.Equal(t, 1, st.Steps())
}

func TestOnStepHook(t *testing.T) {
	var reports []sim.StepReport
	st := build(t, grid.PresetCavity, 6, 6, sim.WithOnStep(func(r sim.StepReport) { reports = append(reports, r) }))
	for k := 0; k < 3; k++ {
		rep, err := st.Tick()
		require.NoError(t, err)
		require.Equal(t, rep, reports[k])
	}
	assert.Equal(t, 3, reports[2].Step)
}

func TestDiagnostics(t *testing.T) {
	st := build(t, grid.PresetBox, 2, 2)
	snap := st.Export()
	snap.U[1][1] = 2 // face between (1,1) and (2,1)
	st, err := sim.Import(snap)
	require.NoError(t, err)

	assert.InDelta(t, 2*0.5*1*0.01, st.KineticEnergy(), 1e-15)
	assert.InDelta(t, 1.0, st.MaxSpeed(), 1e-15)
	assert.InDelta(t, math.Sqrt((400.0+400.0)/4), st.Divergence(), 1e-12)

	u, v, p, err := st.Centre(1, 1)
	require.NoError(t, err)
	assert.Equal(t, [3]float64{1, 0, 0}, [3]float64{u, v, p})
	_, _, _, err = st.Centre(0, 1)
	require.ErrorIs(t, err, sim.ErrIndexOutOfBounds)
}
