// SPDX-License-Identifier: MIT

package grid

import (
	"fmt"
	"strings"
)

// Side is a bitmask of the four orthogonal neighbours of a cell.
type Side uint8

const (
	North Side = 1 << iota // (i, j+1)
	East                   // (i+1, j)
	South                  // (i, j-1)
	West                   // (i-1, j)
)

// Has reports whether every bit of o is set in s.
func (s Side) Has(o Side) bool { return s&o == o }

// String lists the set sides, e.g. "N|E".
func (s Side) String() string {
	if s == 0 {
		return "-"
	}
	var parts []string
	for _, p := range []struct {
		side Side
		name string
	}{{North, "N"}, {East, "E"}, {South, "S"}, {West, "W"}} {
		if s.Has(p.side) {
			parts = append(parts, p.name)
		}
	}

	return strings.Join(parts, "|")
}

// Layout is the cell map over the padded extent of a Geometry.
// Storage is row-major with i outer, like field.Field.
type Layout struct {
	geom  Geometry
	cells []Cell
}

// NewLayout returns a closed box: Fluid interior, NoSlip halo.
func NewLayout(g Geometry) (*Layout, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	nx, ny := g.Dims()
	l := &Layout{geom: g, cells: make([]Cell, nx*ny)}
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if g.IsHalo(i, j) {
				l.cells[i*ny+j] = Cell{Type: NoSlip}
			}
		}
	}

	return l, nil
}

// FromRows builds a Layout from rows indexed [i][j] and validates it.
// Returns ErrBadShape when the rows do not match g's padded extent.
func FromRows(g Geometry, rows [][]Cell) (*Layout, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	nx, ny := g.Dims()
	if len(rows) != nx {
		return nil, fmt.Errorf("FromRows: %d rows, want %d: %w", len(rows), nx, ErrBadShape)
	}
	l := &Layout{geom: g, cells: make([]Cell, nx*ny)}
	for i, row := range rows {
		if len(row) != ny {
			return nil, fmt.Errorf("FromRows: row %d has %d cells, want %d: %w", i, len(row), ny, ErrBadShape)
		}
		copy(l.cells[i*ny:], row)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}

	return l, nil
}

// Geometry returns the geometry the layout was built for.
func (l *Layout) Geometry() Geometry { return l.geom }

func (l *Layout) inBounds(i, j int) bool {
	nx, ny := l.geom.Dims()
	return i >= 0 && i < nx && j >= 0 && j < ny
}

// Cell returns the cell at (i, j) or a wrapped ErrIndexOutOfBounds.
func (l *Layout) Cell(i, j int) (Cell, error) {
	if !l.inBounds(i, j) {
		return Cell{}, fmt.Errorf("Layout.Cell(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}

	return l.cells[i*(l.geom.JMax+2)+j], nil
}

// At is the unchecked-by-contract accessor used by the solver packages.
// Panics with a wrapped ErrIndexOutOfBounds on a bad index.
func (l *Layout) At(i, j int) Cell {
	if !l.inBounds(i, j) {
		panic(fmt.Errorf("Layout.At(%d,%d): %w", i, j, ErrIndexOutOfBounds))
	}

	return l.cells[i*(l.geom.JMax+2)+j]
}

// IsFluid reports whether (i, j) is a Fluid cell. Out-of-extent is not Fluid.
func (l *Layout) IsFluid(i, j int) bool {
	return l.inBounds(i, j) && l.cells[i*(l.geom.JMax+2)+j].Type == Fluid
}

// FluidU reports whether the U face east of (i, j) lies between two Fluid cells.
func (l *Layout) FluidU(i, j int) bool { return l.IsFluid(i, j) && l.IsFluid(i+1, j) }

// FluidV reports whether the V face north of (i, j) lies between two Fluid cells.
func (l *Layout) FluidV(i, j int) bool { return l.IsFluid(i, j) && l.IsFluid(i, j+1) }

// Wetted returns the sides of (i, j) that border a Fluid cell.
func (l *Layout) Wetted(i, j int) Side {
	var s Side
	if l.IsFluid(i, j+1) {
		s |= North
	}
	if l.IsFluid(i+1, j) {
		s |= East
	}
	if l.IsFluid(i, j-1) {
		s |= South
	}
	if l.IsFluid(i-1, j) {
		s |= West
	}

	return s
}

// checkCell tests the invariants at a single cell.
func (l *Layout) checkCell(i, j int) error {
	if !l.inBounds(i, j) {
		return nil
	}
	c := l.cells[i*(l.geom.JMax+2)+j]
	if !c.Type.Valid() {
		return fmt.Errorf("cell (%d,%d) has %v: %w", i, j, c.Type, ErrInvalidLayout)
	}
	if c.Type == Fluid {
		if l.geom.IsHalo(i, j) {
			return fmt.Errorf("halo cell (%d,%d) is Fluid: %w", i, j, ErrInvalidLayout)
		}
		return nil
	}
	w := l.Wetted(i, j)
	if w.Has(North|South) || w.Has(East|West) {
		return fmt.Errorf("%v cell (%d,%d) has Fluid on opposite sides (%v): %w", c.Type, i, j, w, ErrInvalidLayout)
	}

	return nil
}

// Validate checks every cell. The first violation is returned wrapped in
// ErrInvalidLayout with its coordinates.
// Complexity: O(nx·ny).
func (l *Layout) Validate() error {
	nx, ny := l.geom.Dims()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			if err := l.checkCell(i, j); err != nil {
				return err
			}
		}
	}

	return nil
}

// Paint sets (i, j) to c if the result still satisfies the invariants.
// The cell and its four neighbours are re-checked; on violation the old cell
// is restored and the error wraps both ErrRejectedEdit and ErrInvalidLayout.
// Complexity: O(1).
func (l *Layout) Paint(i, j int, c Cell) error {
	if !l.inBounds(i, j) {
		return fmt.Errorf("Layout.Paint(%d,%d): %w", i, j, ErrIndexOutOfBounds)
	}
	if !c.Type.Valid() {
		return fmt.Errorf("Layout.Paint(%d,%d) %v: %w", i, j, c.Type, ErrRejectedEdit)
	}
	k := i*(l.geom.JMax+2) + j
	old := l.cells[k]
	l.cells[k] = c
	for _, d := range [5][2]int{{0, 0}, {0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		if err := l.checkCell(i+d[0], j+d[1]); err != nil {
			l.cells[k] = old
			return fmt.Errorf("Layout.Paint(%d,%d) %v: %w: %w", i, j, c, ErrRejectedEdit, err)
		}
	}

	return nil
}

// FluidCount returns the number of Fluid cells.
func (l *Layout) FluidCount() int {
	n := 0
	for _, c := range l.cells {
		if c.Type == Fluid {
			n++
		}
	}

	return n
}

// Clone returns a deep copy.
func (l *Layout) Clone() *Layout {
	cells := make([]Cell, len(l.cells))
	copy(cells, l.cells)

	return &Layout{geom: l.geom, cells: cells}
}

// Equal reports whether both layouts share a geometry and every cell.
func (l *Layout) Equal(o *Layout) bool {
	if l.geom != o.geom {
		return false
	}
	for k := range l.cells {
		if l.cells[k] != o.cells[k] {
			return false
		}
	}

	return true
}

// Rows returns a copy of the cells as rows indexed [i][j].
func (l *Layout) Rows() [][]Cell {
	nx, ny := l.geom.Dims()
	rows := make([][]Cell, nx)
	for i := range rows {
		rows[i] = make([]Cell, ny)
		copy(rows[i], l.cells[i*ny:(i+1)*ny])
	}

	return rows
}

var cellGlyphs = [...]byte{Fluid: '.', NoSlip: '#', FreeSlip: '=', Outflow: '>', Inflow: '<', Obstacle: 'X'}

// String draws the layout with j increasing upwards, one glyph per cell:
// '.' Fluid, '#' NoSlip, '=' FreeSlip, '>' Outflow, '<' Inflow, 'X' Obstacle.
func (l *Layout) String() string {
	nx, ny := l.geom.Dims()
	var b strings.Builder
	for j := ny - 1; j >= 0; j-- {
		for i := 0; i < nx; i++ {
			t := l.cells[i*ny+j].Type
			if t.Valid() {
				b.WriteByte(cellGlyphs[t])
			} else {
				b.WriteByte('?')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
