// SPDX-License-Identifier: MIT

package interchange

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/sim"
)

// nast2dFluid is the C_F bit of a NaSt2D flag word.
const nast2dFluid = 0x0010

// maxNaSt2DCells bounds the padded extent accepted from a header.
const maxNaSt2DCells = 1 << 24

// ReadNaSt2D reads a binary .out file written by NaSt2D: two int32 sizes
// imax, jmax; the U, V, P and temperature arrays as float64 over the padded
// extent with i outer; then one int32 flag word per cell. Little-endian.
//
// NaSt2D records only whether a cell is fluid. Boundary cells are mapped the
// way its channel presets are built: the left wall becomes Inflow with the
// ghost velocity, the right wall Outflow, and everything else NoSlip.
// Temperature is discarded.
//
// Returns ErrFormat on short or inconsistent input.
func ReadNaSt2D(r io.Reader, delx, dely float64) (sim.Snapshot, error) {
	var hdr [2]int32
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return sim.Snapshot{}, fmt.Errorf("ReadNaSt2D header: %w: %w", ErrFormat, err)
	}
	imax, jmax := int(hdr[0]), int(hdr[1])
	if imax < 1 || jmax < 1 || (imax+2)*(jmax+2) > maxNaSt2DCells {
		return sim.Snapshot{}, fmt.Errorf("ReadNaSt2D: %dx%d cells: %w", imax, jmax, ErrFormat)
	}
	geom, err := grid.NewGeometry(imax, jmax, delx, dely)
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("ReadNaSt2D: %w", err)
	}
	nx, ny := geom.Dims()

	var arrays [4][][]float64
	for k, name := range [4]string{"U", "V", "P", "T"} {
		if arrays[k], err = readRows[float64](r, nx, ny); err != nil {
			return sim.Snapshot{}, fmt.Errorf("ReadNaSt2D %s: %w: %w", name, ErrFormat, err)
		}
	}
	flags, err := readRows[int32](r, nx, ny)
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("ReadNaSt2D flags: %w: %w", ErrFormat, err)
	}

	u, v := arrays[0], arrays[1]
	cells := make([][]grid.Cell, nx)
	for i := range cells {
		cells[i] = make([]grid.Cell, ny)
		for j := range cells[i] {
			switch {
			case flags[i][j]&nast2dFluid != 0:
				cells[i][j] = grid.Cell{Type: grid.Fluid}
			case j < 1 || j > jmax:
				cells[i][j] = grid.Cell{Type: grid.NoSlip}
			case i == 0:
				cells[i][j] = grid.InflowCell(u[i][j], v[i][j])
			case i == nx-1:
				cells[i][j] = grid.Cell{Type: grid.Outflow}
			default:
				cells[i][j] = grid.Cell{Type: grid.NoSlip}
			}
		}
	}

	return sim.Snapshot{Geometry: geom, U: u, V: v, P: arrays[2], Cells: cells}, nil
}

func readRows[T float64 | int32](r io.Reader, nx, ny int) ([][]T, error) {
	flat := make([]T, nx*ny)
	if err := binary.Read(r, binary.LittleEndian, flat); err != nil {
		return nil, err
	}
	rows := make([][]T, nx)
	for i := range rows {
		rows[i] = flat[i*ny : (i+1)*ny : (i+1)*ny]
	}

	return rows, nil
}
