// SPDX-License-Identifier: MIT

package field

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfBounds indicates (i, j) lies outside the padded extent.
	ErrIndexOutOfBounds = errors.New("field: index out of bounds")

	// ErrBadShape indicates non-positive field dimensions.
	ErrBadShape = errors.New("field: dimensions must be > 0")

	// ErrShapeMismatch indicates two fields (or a field and a row set) disagree on extent.
	ErrShapeMismatch = errors.New("field: shape mismatch")
)

// Method tags used in error wrappers.
const (
	ctxAt  = "At"
	ctxSet = "Set"
	ctxGet = "Get"
	ctxPut = "Put"
)

// fieldErrorf attaches the method and coordinates to a sentinel.
func fieldErrorf(method string, i, j int, err error) error {
	return fmt.Errorf("Field.%s(%d,%d): %w", method, i, j, err)
}
