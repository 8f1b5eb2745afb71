// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"slices"
)

// Profile gives the inflow velocity at height y of a channel of height h.
type Profile func(y, h float64) Velocity

// Constant is a uniform inflow (u, v).
func Constant(u, v float64) Profile {
	return func(_, _ float64) Velocity { return Velocity{U: u, V: v} }
}

// Parabolic is a Poiseuille profile u = 4·umax·y(h−y)/h², v = 0.
func Parabolic(umax float64) Profile {
	return func(y, h float64) Velocity {
		return Velocity{U: 4 * umax * y * (h - y) / (h * h)}
	}
}

// Preset names accepted by Build.
const (
	PresetBox      = "box"
	PresetChannel  = "channel"
	PresetObstacle = "obstacle"
	PresetStep     = "step"
	PresetCavity   = "cavity"
)

type builder func(g Geometry, inflow Profile) (*Layout, error)

var presets = map[string]builder{
	PresetBox:      buildBox,
	PresetChannel:  buildChannel,
	PresetObstacle: buildObstacle,
	PresetStep:     buildStep,
	PresetCavity:   buildCavity,
}

// Presets lists the registered preset names in sorted order.
func Presets() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	slices.Sort(names)

	return names
}

// Build returns the named preset layout for g. A nil inflow defaults to
// Constant(1, 0). The result is validated before it is returned.
//
//   - box:      Fluid interior, NoSlip halo, fluid at rest.
//   - channel:  NoSlip top and bottom rows, Inflow column i=0, Outflow column i=IMax+1.
//   - obstacle: channel with a square Obstacle block in the first fifth.
//   - step:     channel with a backward-facing step filling the lower-left quarter.
//   - cavity:   box whose top halo row is a moving lid (Inflow, tangential).
//
// Returns ErrUnknownPreset, ErrBadShape for a geometry the preset cannot
// hold, or ErrInvalidLayout.
func Build(name string, g Geometry, inflow Profile) (*Layout, error) {
	b, ok := presets[name]
	if !ok {
		return nil, fmt.Errorf("Build(%q): %w", name, ErrUnknownPreset)
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if inflow == nil {
		inflow = Constant(1, 0)
	}
	l, err := b(g, inflow)
	if err != nil {
		return nil, fmt.Errorf("Build(%q): %w", name, err)
	}
	if err = l.Validate(); err != nil {
		return nil, fmt.Errorf("Build(%q): %w", name, err)
	}

	return l, nil
}

func buildBox(g Geometry, _ Profile) (*Layout, error) {
	return NewLayout(g)
}

func buildChannel(g Geometry, inflow Profile) (*Layout, error) {
	l, err := NewLayout(g)
	if err != nil {
		return nil, err
	}
	ny := g.JMax + 2
	h := g.Height()
	for j := 1; j <= g.JMax; j++ {
		y := (float64(j) - 0.5) * g.DelY
		vel := inflow(y, h)
		l.cells[0*ny+j] = InflowCell(vel.U, vel.V)
		l.cells[(g.IMax+1)*ny+j] = Cell{Type: Outflow}
	}

	return l, nil
}

func buildObstacle(g Geometry, inflow Profile) (*Layout, error) {
	side := max(2, g.JMax/5)
	i0 := g.IMax/5 + 1
	j0 := (g.JMax-side)/2 + 1
	if g.JMax < side+2 || g.IMax < i0+side {
		return nil, fmt.Errorf("obstacle of side %d needs at least %dx%d cells: %w", side, i0+side, side+2, ErrBadShape)
	}
	l, err := buildChannel(g, inflow)
	if err != nil {
		return nil, err
	}
	ny := g.JMax + 2
	for i := i0; i < i0+side; i++ {
		for j := j0; j < j0+side; j++ {
			l.cells[i*ny+j] = Cell{Type: Obstacle}
		}
	}

	return l, nil
}

func buildStep(g Geometry, inflow Profile) (*Layout, error) {
	if g.IMax < 4 || g.JMax < 2 {
		return nil, fmt.Errorf("step needs at least 4x2 cells: %w", ErrBadShape)
	}
	l, err := buildChannel(g, inflow)
	if err != nil {
		return nil, err
	}
	ny := g.JMax + 2
	for j := 1; j <= g.JMax/2; j++ {
		l.cells[0*ny+j] = Cell{Type: NoSlip}
		for i := 1; i <= g.IMax/4; i++ {
			l.cells[i*ny+j] = Cell{Type: Obstacle}
		}
	}

	return l, nil
}

func buildCavity(g Geometry, inflow Profile) (*Layout, error) {
	l, err := NewLayout(g)
	if err != nil {
		return nil, err
	}
	ny := g.JMax + 2
	lid := inflow(g.Height()/2, g.Height())
	for i := 1; i <= g.IMax; i++ {
		l.cells[i*ny+g.JMax+1] = InflowCell(lid.U, lid.V)
	}

	return l, nil
}
