// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/wickedchicken/stroemung/sim"
)

// residualFloor keeps exact zeros drawable on a log axis.
const residualFloor = 1e-16

// history records one point per tick.
type history struct {
	energy, residual plotter.XYs
	unconverged      int
}

func (h *history) add(rep sim.StepReport, energy float64) {
	x := float64(rep.Step)
	h.energy = append(h.energy, plotter.XY{X: x, Y: max(energy, residualFloor)})
	h.residual = append(h.residual, plotter.XY{X: x, Y: max(rep.Residual, residualFloor)})
	if !rep.Converged {
		h.unconverged++
	}
}

// save draws both series on a log scale; the format follows the extension.
func (h *history) save(path string) error {
	if len(h.energy) == 0 {
		return fmt.Errorf("plot %s: no steps recorded", path)
	}
	p := plot.New()
	p.Title.Text = "stroemung"
	p.X.Label.Text = "step"
	p.Y.Label.Text = "value"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())

	energy, err := plotter.NewLine(h.energy)
	if err != nil {
		return fmt.Errorf("plot energy: %w", err)
	}
	energy.Color = plotutil.Color(0)
	residual, err := plotter.NewLine(h.residual)
	if err != nil {
		return fmt.Errorf("plot residual: %w", err)
	}
	residual.Color = plotutil.Color(1)
	residual.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
	p.Add(energy, residual)
	p.Legend.Add("kinetic energy", energy)
	p.Legend.Add("SOR residual", residual)
	p.Legend.Top = true

	if err = p.Save(8*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("plot %s: %w", path, err)
	}

	return nil
}
