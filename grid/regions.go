// SPDX-License-Identifier: MIT

package grid

// Coord addresses one cell of the padded extent.
type Coord struct {
	I, J int
}

var conn4 = [4][2]int{{0, 1}, {1, 0}, {0, -1}, {-1, 0}}

// FluidRegions returns the 4-connected components of Fluid cells. Components
// are listed in order of their first cell in row-major order; cells within a
// component are in BFS order from that cell.
//
// A layout where a painted wall splits the domain yields more than one region;
// a region without Inflow or Outflow contact is a closed pocket.
//
// Time:   O(nx·ny·4).
// Memory: O(nx·ny).
func (l *Layout) FluidRegions() [][]Coord {
	nx, ny := l.geom.Dims()
	seen := make([]bool, nx*ny)
	var comps [][]Coord

	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			k0 := i*ny + j
			if seen[k0] || l.cells[k0].Type != Fluid {
				continue
			}
			queue := []Coord{{i, j}}
			seen[k0] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range conn4 {
					vi, vj := u.I+d[0], u.J+d[1]
					if !l.IsFluid(vi, vj) {
						continue
					}
					if k := vi*ny + vj; !seen[k] {
						seen[k] = true
						queue = append(queue, Coord{vi, vj})
					}
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}
