// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// CellType classifies one cell of the padded extent.
type CellType uint8

const (
	// Fluid cells carry unknowns of the flow.
	Fluid CellType = iota
	// NoSlip walls hold both velocity components at zero on the wall.
	NoSlip
	// FreeSlip walls hold the normal component at zero and mirror the tangential one.
	FreeSlip
	// Outflow cells extrapolate the adjacent interior velocity.
	Outflow
	// Inflow cells prescribe both velocity components.
	Inflow
	// Obstacle cells are solid interior blocks with no-slip wetted faces.
	Obstacle
)

var cellTypeNames = [...]string{
	Fluid:    "Fluid",
	NoSlip:   "NoSlip",
	FreeSlip: "FreeSlip",
	Outflow:  "Outflow",
	Inflow:   "Inflow",
	Obstacle: "Obstacle",
}

// String returns the canonical name.
func (t CellType) String() string {
	if int(t) < len(cellTypeNames) {
		return cellTypeNames[t]
	}

	return fmt.Sprintf("CellType(%d)", uint8(t))
}

// Valid reports whether t is one of the declared kinds.
func (t CellType) Valid() bool { return int(t) < len(cellTypeNames) }

// IsBoundary reports whether t is anything other than Fluid.
func (t CellType) IsBoundary() bool { return t != Fluid }

// cellTypeAliases maps lower-case names, canonical ones included.
var cellTypeAliases = map[string]CellType{
	"fluid":             Fluid,
	"water":             Fluid,
	"noslip":            NoSlip,
	"no_slip":           NoSlip,
	"wall":              NoSlip,
	"freeslip":          FreeSlip,
	"free_slip":         FreeSlip,
	"slip":              FreeSlip,
	"outflow":           Outflow,
	"outlet":            Outflow,
	"exit":              Outflow,
	"inflow":            Inflow,
	"inlet":             Inflow,
	"obstacle":          Obstacle,
	"obstacle_interior": Obstacle,
	"obstacleinterior":  Obstacle,
	"solid":             Obstacle,
}

// ParseCellType resolves a case-insensitive name or alias.
// Returns ErrUnknownCellType for anything else.
func ParseCellType(name string) (CellType, error) {
	if t, ok := cellTypeAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return t, nil
	}

	return Fluid, fmt.Errorf("ParseCellType(%q): %w", name, ErrUnknownCellType)
}

// Velocity is a prescribed (u, v) pair.
type Velocity struct {
	U, V float64
}

// Cell is one entry of a Layout. Inflow is only meaningful when Type == Inflow.
type Cell struct {
	Type   CellType
	Inflow Velocity
}

// InflowCell returns an Inflow cell with the given velocity.
func InflowCell(u, v float64) Cell {
	return Cell{Type: Inflow, Inflow: Velocity{U: u, V: v}}
}

// String implements fmt.Stringer.
func (c Cell) String() string {
	if c.Type == Inflow {
		return fmt.Sprintf("Inflow(%g,%g)", c.Inflow.U, c.Inflow.V)
	}

	return c.Type.String()
}
