// SPDX-License-Identifier: MIT

// Command stroemung-view runs a simulation in a window.
//
//	space   run / pause
//	S       single step while paused
//	C       colour by speed or pressure
//	R       reset to the preset
//	1 2 3   brush: NoSlip, Fluid, Obstacle
//	mouse   paint the brush onto the grid
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/sim"
)

func main() {
	preset := flag.String("preset", grid.PresetObstacle, "scenario")
	xCells := flag.Int("x-cells", 100, "interior cells along x")
	yCells := flag.Int("y-cells", 40, "interior cells along y")
	xWidth := flag.Float64("x-cell-width", 0.1, "cell width")
	yHeight := flag.Float64("y-cell-height", 0.1, "cell height")
	reynolds := flag.Float64("reynolds", sim.DefaultReynolds, "Reynolds number")
	scale := flag.Int("scale", 8, "screen pixels per cell")
	ticks := flag.Int("ticks-per-frame", 1, "simulation ticks per frame")
	flag.Parse()

	geom, err := grid.NewGeometry(*xCells, *yCells, *xWidth, *yHeight)
	if err != nil {
		log.Fatal(err)
	}
	build := func() (*sim.State, error) {
		return sim.BuildScenario(*preset, geom, sim.WithReynolds(*reynolds))
	}
	g, err := newGame(build, *scale, max(*ticks, 1))
	if err != nil {
		log.Fatal(err)
	}

	nx, ny := geom.Dims()
	ebiten.SetWindowSize(nx**scale, ny**scale)
	ebiten.SetWindowTitle("stroemung - " + *preset)
	if err = ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
