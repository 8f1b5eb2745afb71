// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/render"
	"github.com/wickedchicken/stroemung/sim"
)

// Game implements ebiten.Game around one sim.State.
type Game struct {
	build func() (*sim.State, error)
	state *sim.State
	scale int
	ticks int

	running bool
	mode    render.Mode
	brush   grid.Cell
	report  sim.StepReport
	status  string

	frame *image.RGBA
	img   *ebiten.Image
}

func newGame(build func() (*sim.State, error), scale, ticks int) (*Game, error) {
	g := &Game{build: build, scale: scale, ticks: ticks, brush: grid.Cell{Type: grid.NoSlip}}
	if err := g.reset(); err != nil {
		return nil, err
	}

	return g, nil
}

func (g *Game) reset() error {
	st, err := g.build()
	if err != nil {
		return err
	}
	g.state = st
	g.report = sim.StepReport{}
	g.status = ""
	g.frame = render.NewImage(st.Geometry())
	b := g.frame.Bounds()
	g.img = ebiten.NewImage(b.Dx(), b.Dy())

	return nil
}

func (g *Game) step() {
	for n := 0; n < g.ticks; n++ {
		rep, err := g.state.Tick()
		if err != nil {
			g.running = false
			g.status = err.Error()
			return
		}
		g.report = rep
	}
}

// cell maps a cursor position to grid indices; j grows upwards.
func (g *Game) cell(x, y int) (i, j int) {
	_, ny := g.state.Geometry().Dims()
	return x / g.scale, ny - 1 - y/g.scale
}

func (g *Game) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.running = !g.running
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		g.mode = g.mode.Next()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		if err := g.reset(); err != nil {
			return err
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyS) && !g.running:
		g.step()
	case inpututil.IsKeyJustPressed(ebiten.Key1):
		g.brush = grid.Cell{Type: grid.NoSlip}
	case inpututil.IsKeyJustPressed(ebiten.Key2):
		g.brush = grid.Cell{Type: grid.Fluid}
	case inpututil.IsKeyJustPressed(ebiten.Key3):
		g.brush = grid.Cell{Type: grid.Obstacle}
	}

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		i, j := g.cell(ebiten.CursorPosition())
		if c, err := g.state.Cell(i, j); err == nil && c != g.brush {
			if err = g.state.PaintCell(i, j, g.brush); err != nil {
				g.status = err.Error()
			} else {
				g.status = ""
			}
		}
	}

	if g.running {
		g.step()
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	lo, hi, err := render.Draw(g.frame, g.state, g.mode)
	if err != nil {
		g.status = err.Error()
		return
	}
	g.img.WritePixels(g.frame.Pix)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)

	ebitenutil.DebugPrint(screen, fmt.Sprintf("step %d  t=%.3f  dt=%.4f  sweeps %d\n%v [%.3g, %.3g]  brush %v  %.0f FPS\n%s",
		g.state.Steps(), g.state.Time(), g.report.DelT, g.report.Iterations,
		g.mode, lo, hi, g.brush, ebiten.ActualFPS(), g.status))
}

func (g *Game) Layout(_, _ int) (int, int) {
	nx, ny := g.state.Geometry().Dims()
	return nx * g.scale, ny * g.scale
}
