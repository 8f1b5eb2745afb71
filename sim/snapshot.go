// SPDX-License-Identifier: MIT

package sim

import (
	"fmt"

	"github.com/wickedchicken/stroemung/field"
	"github.com/wickedchicken/stroemung/grid"
)

// Metadata is the non-field part of a Snapshot.
type Metadata struct {
	Time     float64
	Step     int
	Reynolds float64
	GX, GY   float64
}

// Snapshot is a self-contained copy of a State. All arrays are indexed
// [i][j] over the padded extent.
type Snapshot struct {
	Geometry grid.Geometry
	U, V, P  [][]float64
	Cells    [][]grid.Cell
	Meta     Metadata
}

// Export copies the fields, layout and clock into a Snapshot.
func (s *State) Export() Snapshot {
	return Snapshot{
		Geometry: s.geom,
		U:        s.store.U.Rows(),
		V:        s.store.V.Rows(),
		P:        s.store.P.Rows(),
		Cells:    s.layout.Rows(),
		Meta: Metadata{
			Time:     s.time,
			Step:     s.steps,
			Reynolds: s.params.Reynolds,
			GX:       s.params.GX,
			GY:       s.params.GY,
		},
	}
}

// Import rebuilds a State from a Snapshot. Reynolds number and gravity come
// from the metadata unless opts override them; a zero Reynolds number falls
// back to DefaultReynolds.
//
// Returns grid.ErrBadShape, grid.ErrBadSpacing, field.ErrShapeMismatch,
// grid.ErrInvalidLayout, ErrNonFinite or ErrOptionViolation.
func Import(snap Snapshot, opts ...Option) (*State, error) {
	base := DefaultParams()
	if snap.Meta.Reynolds != 0 {
		base.Reynolds = snap.Meta.Reynolds
	}
	base.GX, base.GY = snap.Meta.GX, snap.Meta.GY
	params, err := newParams(base, append([]Option{WithReynolds(base.Reynolds), WithGravity(base.GX, base.GY)}, opts...))
	if err != nil {
		return nil, fmt.Errorf("Import: %w", err)
	}

	l, err := grid.FromRows(snap.Geometry, snap.Cells)
	if err != nil {
		return nil, fmt.Errorf("Import: %w", err)
	}
	nx, ny := snap.Geometry.Dims()
	var fs [3]*field.Field
	for k, rows := range [3][][]float64{snap.U, snap.V, snap.P} {
		if fs[k], err = field.FromRows(rows); err != nil {
			return nil, fmt.Errorf("Import %v: %w", field.Kind(k), err)
		}
		if gx, gy := fs[k].Dims(); gx != nx || gy != ny {
			return nil, fmt.Errorf("Import %v: %dx%d, want %dx%d: %w", field.Kind(k), gx, gy, nx, ny, field.ErrShapeMismatch)
		}
	}
	store, err := field.NewStoreFrom(fs[0], fs[1], fs[2])
	if err != nil {
		return nil, fmt.Errorf("Import: %w", err)
	}
	if !store.IsFinite() {
		return nil, fmt.Errorf("Import: %w", ErrNonFinite)
	}

	s := newState(l, store, params)
	s.time, s.steps = snap.Meta.Time, snap.Meta.Step

	return s, nil
}
