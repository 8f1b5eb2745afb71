// SPDX-License-Identifier: MIT

package interchange_test

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/interchange"
	"github.com/wickedchicken/stroemung/sim"
)

// nast2dFile writes a channel the way NaSt2D lays out its output: U holds
// the inflow on the left ghost column and every interior cell is fluid.
func nast2dFile(t *testing.T, imax, jmax int, flag func(i, j int) int32) []byte {
	t.Helper()
	nx, ny := imax+2, jmax+2
	var buf bytes.Buffer
	w := func(v any) { require.NoError(t, binary.Write(&buf, binary.LittleEndian, v)) }

	w([2]int32{int32(imax), int32(jmax)})
	for k := 0; k < 4; k++ {
		arr := make([]float64, nx*ny)
		for i := 0; i < nx; i++ {
			for j := 1; j <= jmax; j++ {
				switch k {
				case 0: // U
					arr[i*ny+j] = 1
				case 2: // P
					arr[i*ny+j] = float64(imax - i)
				case 3: // T
					arr[i*ny+j] = 300
				}
			}
		}
		w(arr)
	}
	flags := make([]int32, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			flags[i*ny+j] = flag(i, j)
		}
	}
	w(flags)

	return buf.Bytes()
}

func channelFlags(imax, jmax int) func(i, j int) int32 {
	return func(i, j int) int32 {
		if i >= 1 && i <= imax && j >= 1 && j <= jmax {
			return 0x0010 | 0x0001 // fluid plus neighbour bits
		}
		return 0x0002
	}
}

func TestReadNaSt2D(t *testing.T) {
	raw := nast2dFile(t, 4, 3, channelFlags(4, 3))
	snap, err := interchange.ReadNaSt2D(bytes.NewReader(raw), 0.1, 0.2)
	require.NoError(t, err)

	assert.Equal(t, grid.Geometry{IMax: 4, JMax: 3, DelX: 0.1, DelY: 0.2}, snap.Geometry)
	l, err := grid.FromRows(snap.Geometry, snap.Cells)
	require.NoError(t, err)
	assert.Equal(t, ""+
		"######\n"+
		"<....>\n"+
		"<....>\n"+
		"<....>\n"+
		"######\n", l.String())
	assert.Equal(t, grid.InflowCell(1, 0), snap.Cells[0][2])
	assert.Equal(t, grid.Cell{Type: grid.Outflow}, snap.Cells[5][3])
	assert.Equal(t, grid.Cell{Type: grid.NoSlip}, snap.Cells[0][0])
	assert.Equal(t, grid.Cell{Type: grid.NoSlip}, snap.Cells[2][4])
	assert.Equal(t, 12, l.FluidCount())
	assert.Equal(t, 3.0, snap.P[1][1])

	st, err := sim.Import(snap)
	require.NoError(t, err)
	_, err = st.Tick()
	require.NoError(t, err)
}

func TestReadNaSt2DInteriorObstacle(t *testing.T) {
	base := channelFlags(6, 4)
	raw := nast2dFile(t, 6, 4, func(i, j int) int32 {
		if (i == 3 || i == 4) && j <= 2 {
			return 0
		}
		return base(i, j)
	})
	snap, err := interchange.ReadNaSt2D(bytes.NewReader(raw), 1, 1)
	require.NoError(t, err)
	assert.Equal(t, grid.Cell{Type: grid.NoSlip}, snap.Cells[3][1])
	assert.Equal(t, grid.Cell{Type: grid.NoSlip}, snap.Cells[3][2])
	assert.Equal(t, grid.Cell{Type: grid.Fluid}, snap.Cells[3][3])

	l, err := grid.FromRows(snap.Geometry, snap.Cells)
	require.NoError(t, err)
	assert.Equal(t, 20, l.FluidCount())
}

func TestReadNaSt2DRejects(t *testing.T) {
	raw := nast2dFile(t, 4, 3, channelFlags(4, 3))

	for _, n := range []int{0, 5, 8, 100, len(raw) - 1} {
		_, err := interchange.ReadNaSt2D(bytes.NewReader(raw[:n]), 1, 1)
		assert.ErrorIs(t, err, interchange.ErrFormat, "truncated at %d", n)
	}

	var hdr bytes.Buffer
	require.NoError(t, binary.Write(&hdr, binary.LittleEndian, [2]int32{0, 3}))
	_, err := interchange.ReadNaSt2D(&hdr, 1, 1)
	assert.ErrorIs(t, err, interchange.ErrFormat)

	hdr.Reset()
	require.NoError(t, binary.Write(&hdr, binary.LittleEndian, [2]int32{1 << 20, 1 << 20}))
	_, err = interchange.ReadNaSt2D(&hdr, 1, 1)
	assert.ErrorIs(t, err, interchange.ErrFormat)

	_, err = interchange.ReadNaSt2D(bytes.NewReader(raw), -1, 1)
	assert.ErrorIs(t, err, grid.ErrBadSpacing)
}
