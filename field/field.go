// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Field is a dense nx×ny array of float64 values.
//   - nx, ny hold the padded extent (imax+2, jmax+2).
//   - data is a flat buffer of length nx*ny, offset = i*ny + j.
type Field struct {
	nx, ny int       // padded extent
	data   []float64 // row-major storage, len == nx*ny
}

var _ fmt.Stringer = (*Field)(nil)

// New creates a zero-filled nx×ny field.
// Returns ErrBadShape when either dimension is non-positive.
// Complexity: O(nx*ny).
func New(nx, ny int) (*Field, error) {
	if nx <= 0 || ny <= 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", nx, ny, ErrBadShape)
	}

	return &Field{nx: nx, ny: ny, data: make([]float64, nx*ny)}, nil
}

// Dims returns the padded extent (nx, ny).
func (f *Field) Dims() (nx, ny int) { return f.nx, f.ny }

// InBounds reports whether (i, j) addresses a stored element.
func (f *Field) InBounds(i, j int) bool {
	return i >= 0 && i < f.nx && j >= 0 && j < f.ny
}

// At returns the value at (i, j) or a wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func (f *Field) At(i, j int) (float64, error) {
	if !f.InBounds(i, j) {
		return 0, fieldErrorf(ctxAt, i, j, ErrIndexOutOfBounds)
	}

	return f.data[i*f.ny+j], nil
}

// Set writes v at (i, j) or returns a wrapped ErrIndexOutOfBounds.
// Complexity: O(1).
func (f *Field) Set(i, j int, v float64) error {
	if !f.InBounds(i, j) {
		return fieldErrorf(ctxSet, i, j, ErrIndexOutOfBounds)
	}
	f.data[i*f.ny+j] = v

	return nil
}

// Get is the solver fast path for At. Callers guarantee (i, j) is in range;
// a violation panics with a wrapped ErrIndexOutOfBounds.
func (f *Field) Get(i, j int) float64 {
	if !f.InBounds(i, j) {
		panic(fieldErrorf(ctxGet, i, j, ErrIndexOutOfBounds))
	}

	return f.data[i*f.ny+j]
}

// Put is the solver fast path for Set, with the same contract as Get.
func (f *Field) Put(i, j int, v float64) {
	if !f.InBounds(i, j) {
		panic(fieldErrorf(ctxPut, i, j, ErrIndexOutOfBounds))
	}
	f.data[i*f.ny+j] = v
}

// Fill assigns v to every element, ghost cells included.
func (f *Field) Fill(v float64) {
	for k := range f.data {
		f.data[k] = v
	}
}

// Clone returns a deep copy.
// Complexity: O(nx*ny).
func (f *Field) Clone() *Field {
	data := make([]float64, len(f.data))
	copy(data, f.data)

	return &Field{nx: f.nx, ny: f.ny, data: data}
}

// CopyFrom overwrites f with the contents of src.
// Returns ErrShapeMismatch when the extents differ.
func (f *Field) CopyFrom(src *Field) error {
	if err := SameShape(f, src); err != nil {
		return err
	}
	copy(f.data, src.data)

	return nil
}

// Equal reports whether f and o have the same extent and bit-identical values.
func (f *Field) Equal(o *Field) bool {
	if f.nx != o.nx || f.ny != o.ny {
		return false
	}
	for k := range f.data {
		if math.Float64bits(f.data[k]) != math.Float64bits(o.data[k]) {
			return false
		}
	}

	return true
}

// MaxAbs returns max |f(i,j)| over the whole padded extent.
// Complexity: O(nx*ny).
func (f *Field) MaxAbs() float64 {
	return math.Max(math.Abs(floats.Max(f.data)), math.Abs(floats.Min(f.data)))
}

// IsFinite reports whether every element is neither NaN nor ±Inf.
func (f *Field) IsFinite() bool {
	for _, v := range f.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// Rows returns a copy of the data as rows indexed [i][j].
func (f *Field) Rows() [][]float64 {
	rows := make([][]float64, f.nx)
	for i := 0; i < f.nx; i++ {
		rows[i] = make([]float64, f.ny)
		copy(rows[i], f.data[i*f.ny:(i+1)*f.ny])
	}

	return rows
}

// FromRows builds a Field from rows indexed [i][j].
// Returns ErrBadShape for empty input and ErrShapeMismatch for ragged rows.
func FromRows(rows [][]float64) (*Field, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("FromRows: %w", ErrBadShape)
	}
	nx, ny := len(rows), len(rows[0])
	f := &Field{nx: nx, ny: ny, data: make([]float64, nx*ny)}
	for i, row := range rows {
		if len(row) != ny {
			return nil, fmt.Errorf("FromRows: row %d has %d values, want %d: %w", i, len(row), ny, ErrShapeMismatch)
		}
		copy(f.data[i*ny:], row)
	}

	return f, nil
}

// SameShape returns ErrShapeMismatch unless every field shares the first one's extent.
func SameShape(first *Field, rest ...*Field) error {
	for _, o := range rest {
		if o.nx != first.nx || o.ny != first.ny {
			return fmt.Errorf("SameShape: %dx%d vs %dx%d: %w", first.nx, first.ny, o.nx, o.ny, ErrShapeMismatch)
		}
	}

	return nil
}

// String renders one bracketed line per i.
func (f *Field) String() string {
	var b strings.Builder
	for i := 0; i < f.nx; i++ {
		b.WriteString("[")
		for j := 0; j < f.ny; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			fmt.Fprintf(&b, "%g", f.data[i*f.ny+j])
		}
		b.WriteString("]\n")
	}

	return b.String()
}
