// SPDX-License-Identifier: MIT

package pressure

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// Result reports the outcome of Solve.
type Result struct {
	Iterations int     // sweeps performed
	Residual   float64 // RMS residual after the last sweep
	Converged  bool    // Residual < Epsilon
}

// RHS writes (1/δt)((F(i,j)−F(i−1,j))/δx + (G(i,j)−G(i,j−1))/δy) for every
// Fluid cell of l into rhs. Other entries of rhs are left alone.
// Time: O(imax·jmax). Memory: O(1).
func RHS(l *grid.Layout, f, g *field.Field, dt float64, rhs *field.Field) {
	geom := l.Geometry()
	for i, j := range field.Interior(geom.IMax, geom.JMax) {
		if !l.IsFluid(i, j) {
			continue
		}
		rhs.Put(i, j, ((f.Get(i, j)-f.Get(i-1, j))/geom.DelX+(g.Get(i, j)-g.Get(i, j-1))/geom.DelY)/dt)
	}
}

// Solve relaxes p in place towards ∇²p = rhs over the Fluid cells of l.
// Hitting MaxIterations is not an error; check Result.Converged.
// On return the halo and obstacle cells next to Fluid hold the mean of their
// wetted neighbours, negated for Outflow cells under OutletDirichlet.
//
// Returns ErrDegenerateGrid or ErrOptionViolation; p is untouched then.
//
// Usage:
//
//	RHS(l, f, g, dt, rhs)
//	res, err := Solve(l, p, rhs, DefaultOptions())
//	if err != nil {
//		return err
//	}
//	if !res.Converged {
//		log.Printf("SOR stopped at %d sweeps, residual %g", res.Iterations, res.Residual)
//	}
//
// Time:   O(MaxIterations·imax·jmax); RedBlack splits each sweep across rows.
// Memory: O(imax·jmax) for the cell plan and the residual buffer.
func Solve(l *grid.Layout, p, rhs *field.Field, opts Options) (Result, error) {
	if err := opts.Validate(); err != nil {
		return Result{}, err
	}
	pl := newPlan(l, opts.Outlet)
	if len(pl.nodes) == 0 {
		return Result{}, fmt.Errorf("Solve: %w", ErrDegenerateGrid)
	}

	geom := l.Geometry()
	s := sweeper{
		p:    p,
		rhs:  rhs,
		rdx2: 1 / (geom.DelX * geom.DelX),
		rdy2: 1 / (geom.DelY * geom.DelY),
		om:   opts.Omega,
	}
	s.coef = s.om / (2*s.rdx2 + 2*s.rdy2)
	buf := make([]float64, len(pl.nodes))

	var res Result
	for res.Iterations < opts.MaxIterations {
		switch opts.Ordering {
		case RedBlack:
			s.colour(pl, 0)
			s.colour(pl, 1)
		default:
			for k := range pl.nodes {
				s.relax(&pl.nodes[k])
			}
		}
		res.Iterations++
		res.Residual = s.residual(pl, buf)
		if opts.OnSweep != nil {
			opts.OnSweep(res.Iterations, res.Residual)
		}
		if res.Residual < opts.Epsilon {
			res.Converged = true
			break
		}
	}
	publishGhosts(l, p, opts.Outlet)

	return res, nil
}

// Residual returns the RMS of ∇²p − rhs over the Fluid cells of l, using the
// same boundary substitution as Solve.
// Returns ErrDegenerateGrid when l has no Fluid cell.
// Time: O(imax·jmax). Memory: O(imax·jmax).
func Residual(l *grid.Layout, p, rhs *field.Field, outlet OutletMode) (float64, error) {
	pl := newPlan(l, outlet)
	if len(pl.nodes) == 0 {
		return 0, fmt.Errorf("Residual: %w", ErrDegenerateGrid)
	}
	geom := l.Geometry()
	s := sweeper{p: p, rhs: rhs, rdx2: 1 / (geom.DelX * geom.DelX), rdy2: 1 / (geom.DelY * geom.DelY)}

	return s.residual(pl, make([]float64, len(pl.nodes))), nil
}

type sweeper struct {
	p, rhs     *field.Field
	rdx2, rdy2 float64
	om, coef   float64
}

func (s *sweeper) relax(nd *node) {
	own := s.p.Get(nd.i, nd.j)
	pe, pw, pn, ps := nd.neighbours(s.p, own)
	s.p.Put(nd.i, nd.j, (1-s.om)*own+s.coef*((pe+pw)*s.rdx2+(pn+ps)*s.rdy2-s.rhs.Get(nd.i, nd.j)))
}

// colour relaxes every node with (i+j)%2 == c. Nodes of one colour only read
// nodes of the other, so rows run concurrently.
func (s *sweeper) colour(pl *plan, c int) {
	parallelRange(0, len(pl.rows), func(r int) {
		for k := pl.rows[r][0]; k < pl.rows[r][1]; k++ {
			if nd := &pl.nodes[k]; (nd.i+nd.j)%2 == c {
				s.relax(nd)
			}
		}
	})
}

func (s *sweeper) residual(pl *plan, buf []float64) float64 {
	for k := range pl.nodes {
		nd := &pl.nodes[k]
		own := s.p.Get(nd.i, nd.j)
		pe, pw, pn, ps := nd.neighbours(s.p, own)
		buf[k] = (pe-2*own+pw)*s.rdx2 + (pn-2*own+ps)*s.rdy2 - s.rhs.Get(nd.i, nd.j)
	}

	return floats.Norm(buf, 2) / math.Sqrt(float64(len(buf)))
}

// publishGhosts writes display values into wetted non-Fluid cells. The sweep
// never reads them.
func publishGhosts(l *grid.Layout, p *field.Field, outlet OutletMode) {
	nx, ny := l.Geometry().Dims()
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			w := l.Wetted(i, j)
			if w == 0 || l.IsFluid(i, j) {
				continue
			}
			var sum float64
			var n int
			for _, nb := range []struct {
				side   grid.Side
				ni, nj int
			}{{grid.East, i + 1, j}, {grid.West, i - 1, j}, {grid.North, i, j + 1}, {grid.South, i, j - 1}} {
				if w.Has(nb.side) {
					sum += p.Get(nb.ni, nb.nj)
					n++
				}
			}
			mean := sum / float64(n)
			if outlet == OutletDirichlet && l.At(i, j).Type == grid.Outflow {
				mean = -mean
			}
			p.Put(i, j, mean)
		}
	}
}
