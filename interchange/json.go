// SPDX-License-Identifier: MIT

package interchange

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/wickedchicken/stroemung/grid"
	"github.com/wickedchicken/stroemung/sim"
)

const arrayVersion = 1

// ndarray is the flattened 2D array object.
type ndarray[T any] struct {
	V    int    `json:"v"`
	Dim  [2]int `json:"dim"`
	Data []T    `json:"data"`
}

func flatten[T any](rows [][]T) ndarray[T] {
	a := ndarray[T]{V: arrayVersion}
	if len(rows) > 0 {
		a.Dim = [2]int{len(rows), len(rows[0])}
	}
	a.Data = make([]T, 0, a.Dim[0]*a.Dim[1])
	for _, r := range rows {
		a.Data = append(a.Data, r...)
	}

	return a
}

// unflatten checks the header against the expected shape and splits the data.
func (a ndarray[T]) unflatten(name string, nx, ny int) ([][]T, error) {
	switch {
	case a.V != arrayVersion:
		return nil, fmt.Errorf("%s: array version %d: %w", name, a.V, ErrFormat)
	case a.Dim != [2]int{nx, ny}:
		return nil, fmt.Errorf("%s: dim %v, size is [%d %d]: %w", name, a.Dim, nx, ny, ErrFormat)
	case len(a.Data) != nx*ny:
		return nil, fmt.Errorf("%s: %d values for %dx%d: %w", name, len(a.Data), nx, ny, ErrFormat)
	}
	rows := make([][]T, nx)
	for i := range rows {
		rows[i] = a.Data[i*ny : (i+1)*ny : (i+1)*ny]
	}

	return rows, nil
}

// document is the top-level JSON object.
type document struct {
	Size     [2]int              `json:"size"`
	DelX     *float64            `json:"delx,omitempty"`
	DelY     *float64            `json:"dely,omitempty"`
	Time     float64             `json:"time"`
	Step     int                 `json:"step"`
	Reynolds float64             `json:"reynolds,omitempty"`
	Gravity  [2]float64          `json:"gravity"`
	U        ndarray[float64]    `json:"u"`
	V        ndarray[float64]    `json:"v"`
	Pressure ndarray[float64]    `json:"pressure"`
	CellType ndarray[cellRecord] `json:"cell_type"`
}

// cellRecord is the JSON form of a grid.Cell.
type cellRecord grid.Cell

type inflowRecord struct {
	Inflow struct {
		Velocity [2]float64 `json:"velocity"`
	} `json:"Inflow"`
}

func (c cellRecord) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case grid.Fluid:
		return []byte(`"Fluid"`), nil
	case grid.Inflow:
		var in inflowRecord
		in.Inflow.Velocity = [2]float64{c.Inflow.U, c.Inflow.V}
		return json.Marshal(map[string]inflowRecord{"Boundary": in})
	default:
		if !c.Type.Valid() {
			return nil, fmt.Errorf("cell %v: %w", c.Type, grid.ErrUnknownCellType)
		}
		return json.Marshal(map[string]string{"Boundary": c.Type.String()})
	}
}

func (c *cellRecord) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var name string
		if err := json.Unmarshal(b, &name); err != nil {
			return err
		}
		if name != "Fluid" {
			return fmt.Errorf("cell %q: %w", name, ErrFormat)
		}
		*c = cellRecord{Type: grid.Fluid}
		return nil
	}

	var outer struct {
		Boundary json.RawMessage `json:"Boundary"`
	}
	if err := json.Unmarshal(b, &outer); err != nil {
		return err
	}
	inner := bytes.TrimSpace(outer.Boundary)
	if len(inner) == 0 {
		return fmt.Errorf("cell %s: %w", b, ErrFormat)
	}
	if inner[0] == '{' {
		var in inflowRecord
		if err := json.Unmarshal(inner, &in); err != nil {
			return err
		}
		v := in.Inflow.Velocity
		*c = cellRecord(grid.InflowCell(v[0], v[1]))
		return nil
	}

	var name string
	if err := json.Unmarshal(inner, &name); err != nil {
		return err
	}
	t, err := grid.ParseCellType(name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFormat, err)
	}
	if t == grid.Fluid || t == grid.Inflow {
		return fmt.Errorf("boundary cell %q: %w", name, ErrFormat)
	}
	*c = cellRecord{Type: t}

	return nil
}

// Encode writes snap as indented JSON.
func Encode(w io.Writer, snap sim.Snapshot) error {
	cells := make([][]cellRecord, len(snap.Cells))
	for i, r := range snap.Cells {
		cells[i] = make([]cellRecord, len(r))
		for j, c := range r {
			cells[i][j] = cellRecord(c)
		}
	}
	nx, ny := snap.Geometry.Dims()
	delx, dely := snap.Geometry.DelX, snap.Geometry.DelY
	doc := document{
		Size:     [2]int{nx, ny},
		DelX:     &delx,
		DelY:     &dely,
		Time:     snap.Meta.Time,
		Step:     snap.Meta.Step,
		Reynolds: snap.Meta.Reynolds,
		Gravity:  [2]float64{snap.Meta.GX, snap.Meta.GY},
		U:        flatten(snap.U),
		V:        flatten(snap.V),
		Pressure: flatten(snap.P),
		CellType: flatten(cells),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("Encode: %w", err)
	}

	return nil
}

// Decode reads a JSON snapshot. Files without "delx"/"dely" take the given
// spacing; values in the file win otherwise. The result is checked for shape
// only: sim.Import validates the layout and the values.
//
// Returns ErrFormat or grid.ErrBadShape / grid.ErrBadSpacing.
func Decode(r io.Reader, delx, dely float64) (sim.Snapshot, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return sim.Snapshot{}, fmt.Errorf("Decode: %w: %w", ErrFormat, err)
	}
	if doc.DelX != nil {
		delx = *doc.DelX
	}
	if doc.DelY != nil {
		dely = *doc.DelY
	}
	nx, ny := doc.Size[0], doc.Size[1]
	geom, err := grid.NewGeometry(nx-2, ny-2, delx, dely)
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("Decode: size %v: %w", doc.Size, err)
	}

	snap := sim.Snapshot{
		Geometry: geom,
		Meta: sim.Metadata{
			Time:     doc.Time,
			Step:     doc.Step,
			Reynolds: doc.Reynolds,
			GX:       doc.Gravity[0],
			GY:       doc.Gravity[1],
		},
	}
	if snap.U, err = doc.U.unflatten("u", nx, ny); err != nil {
		return sim.Snapshot{}, fmt.Errorf("Decode: %w", err)
	}
	if snap.V, err = doc.V.unflatten("v", nx, ny); err != nil {
		return sim.Snapshot{}, fmt.Errorf("Decode: %w", err)
	}
	if snap.P, err = doc.Pressure.unflatten("pressure", nx, ny); err != nil {
		return sim.Snapshot{}, fmt.Errorf("Decode: %w", err)
	}
	cells, err := doc.CellType.unflatten("cell_type", nx, ny)
	if err != nil {
		return sim.Snapshot{}, fmt.Errorf("Decode: %w", err)
	}
	snap.Cells = make([][]grid.Cell, nx)
	for i, r := range cells {
		snap.Cells[i] = make([]grid.Cell, ny)
		for j, c := range r {
			snap.Cells[i][j] = grid.Cell(c)
		}
	}

	return snap, nil
}
