// SPDX-License-Identifier: MIT

package pressure

import (
	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// link says where a Fluid cell takes one neighbour pressure from.
type link uint8

const (
	linkFluid  link = iota // the neighbour's own P
	linkMirror             // the cell's own P (Neumann)
	linkOutlet             // minus the cell's own P (p = 0 on the face)
)

// node is one Fluid cell with its four neighbour links, in E, W, N, S order.
type node struct {
	i, j  int
	links [4]link
}

// plan lists the Fluid cells of a layout in row-major order.
type plan struct {
	nodes []node
	rows  [][2]int // [first, end) node ranges sharing one i, for RedBlack
}

func linkTo(l *grid.Layout, ni, nj int, outlet OutletMode) link {
	if l.IsFluid(ni, nj) {
		return linkFluid
	}
	if outlet == OutletDirichlet && l.At(ni, nj).Type == grid.Outflow {
		return linkOutlet
	}

	return linkMirror
}

func newPlan(l *grid.Layout, outlet OutletMode) *plan {
	g := l.Geometry()
	p := &plan{}
	for i, j := range field.Interior(g.IMax, g.JMax) {
		if !l.IsFluid(i, j) {
			continue
		}
		if n := len(p.rows); n == 0 || p.nodes[p.rows[n-1][0]].i != i {
			p.rows = append(p.rows, [2]int{len(p.nodes), len(p.nodes)})
		}
		p.nodes = append(p.nodes, node{i: i, j: j, links: [4]link{
			linkTo(l, i+1, j, outlet),
			linkTo(l, i-1, j, outlet),
			linkTo(l, i, j+1, outlet),
			linkTo(l, i, j-1, outlet),
		}})
		p.rows[len(p.rows)-1][1] = len(p.nodes)
	}

	return p
}

// neighbours returns (pe, pw, pn, ps) for nd given its current value own.
func (nd *node) neighbours(p *field.Field, own float64) (pe, pw, pn, ps float64) {
	at := func(k int, ni, nj int) float64 {
		switch nd.links[k] {
		case linkFluid:
			return p.Get(ni, nj)
		case linkOutlet:
			return -own
		default:
			return own
		}
	}

	return at(0, nd.i+1, nd.j), at(1, nd.i-1, nd.j), at(2, nd.i, nd.j+1), at(3, nd.i, nd.j-1)
}
