// SPDX-License-Identifier: MIT

package field

import (
	"fmt"
	"iter"
)

// Kind selects one of the three primary arrays of a Store.
type Kind int

const (
	// KindU is horizontal velocity, stored on east cell faces.
	KindU Kind = iota
	// KindV is vertical velocity, stored on north cell faces.
	KindV
	// KindP is pressure, stored at cell centres.
	KindP
)

// String returns the conventional single-letter name.
func (k Kind) String() string {
	switch k {
	case KindU:
		return "U"
	case KindV:
		return "V"
	case KindP:
		return "P"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Store owns U, V and P for one simulation. All three share the padded
// extent (imax+2)×(jmax+2).
type Store struct {
	imax, jmax int
	U, V, P    *Field
}

// NewStore allocates zeroed U, V and P for an imax×jmax interior.
// Returns ErrBadShape when imax or jmax is non-positive.
func NewStore(imax, jmax int) (*Store, error) {
	if imax <= 0 || jmax <= 0 {
		return nil, fmt.Errorf("NewStore(%d,%d): %w", imax, jmax, ErrBadShape)
	}
	nx, ny := imax+2, jmax+2
	s := &Store{imax: imax, jmax: jmax}
	s.U, _ = New(nx, ny)
	s.V, _ = New(nx, ny)
	s.P, _ = New(nx, ny)

	return s, nil
}

// NewStoreFrom wraps existing fields; they must share one extent of at least 3×3.
func NewStoreFrom(u, v, p *Field) (*Store, error) {
	if err := SameShape(u, v, p); err != nil {
		return nil, err
	}
	nx, ny := u.Dims()
	if nx < 3 || ny < 3 {
		return nil, fmt.Errorf("NewStoreFrom(%dx%d): %w", nx, ny, ErrBadShape)
	}

	return &Store{imax: nx - 2, jmax: ny - 2, U: u, V: v, P: p}, nil
}

// Size returns the interior cell counts (imax, jmax).
func (s *Store) Size() (imax, jmax int) { return s.imax, s.jmax }

// Field returns the array selected by k, or nil for an unknown kind.
func (s *Store) Field(k Kind) *Field {
	switch k {
	case KindU:
		return s.U
	case KindV:
		return s.V
	case KindP:
		return s.P
	default:
		return nil
	}
}

// Get reads field k at (i, j).
func (s *Store) Get(k Kind, i, j int) (float64, error) {
	f := s.Field(k)
	if f == nil {
		return 0, fmt.Errorf("Store.Get(%v): %w", k, ErrIndexOutOfBounds)
	}
	v, err := f.At(i, j)
	if err != nil {
		return 0, fmt.Errorf("Store.Get(%v): %w", k, err)
	}

	return v, nil
}

// Set writes field k at (i, j).
func (s *Store) Set(k Kind, i, j int, v float64) error {
	f := s.Field(k)
	if f == nil {
		return fmt.Errorf("Store.Set(%v): %w", k, ErrIndexOutOfBounds)
	}
	if err := f.Set(i, j, v); err != nil {
		return fmt.Errorf("Store.Set(%v): %w", k, err)
	}

	return nil
}

// Cells iterates the interior cells of s in row-major order.
func (s *Store) Cells() iter.Seq2[int, int] {
	return Interior(s.imax, s.jmax)
}

// Clone deep-copies all three arrays.
func (s *Store) Clone() *Store {
	return &Store{imax: s.imax, jmax: s.jmax, U: s.U.Clone(), V: s.V.Clone(), P: s.P.Clone()}
}

// CopyFrom overwrites s with src. Extents must match.
func (s *Store) CopyFrom(src *Store) error {
	if err := s.U.CopyFrom(src.U); err != nil {
		return err
	}
	if err := s.V.CopyFrom(src.V); err != nil {
		return err
	}

	return s.P.CopyFrom(src.P)
}

// Equal reports bit-identical contents.
func (s *Store) Equal(o *Store) bool {
	return s.U.Equal(o.U) && s.V.Equal(o.V) && s.P.Equal(o.P)
}

// IsFinite reports whether U, V and P hold only finite values.
func (s *Store) IsFinite() bool {
	return s.U.IsFinite() && s.V.IsFinite() && s.P.IsFinite()
}
