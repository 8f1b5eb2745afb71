// SPDX-License-Identifier: MIT

package grid

import (
	"errors"

	"github.com/wickedchicken/stroemung/field"
)

var (
	// ErrBadShape indicates non-positive interior cell counts.
	ErrBadShape = errors.New("grid: imax and jmax must be > 0")

	// ErrBadSpacing indicates a non-positive or non-finite cell spacing.
	ErrBadSpacing = errors.New("grid: delx and dely must be finite and > 0")

	// ErrIndexOutOfBounds is shared with the field store so callers match a single kind.
	ErrIndexOutOfBounds = field.ErrIndexOutOfBounds

	// ErrInvalidLayout indicates a cell map that breaks the adjacency invariant.
	ErrInvalidLayout = errors.New("grid: invalid layout")

	// ErrRejectedEdit indicates Paint refused an edit; the layout is unchanged.
	ErrRejectedEdit = errors.New("grid: rejected edit")

	// ErrUnknownPreset indicates an unregistered preset name.
	ErrUnknownPreset = errors.New("grid: unknown preset")

	// ErrUnknownCellType indicates a name ParseCellType does not recognise.
	ErrUnknownCellType = errors.New("grid: unknown cell type")
)
