// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set. All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is.
package matrix

import "errors"

var (
	// ErrBadShape is returned when requested shape is invalid: a negative
	// dimension or a name count that differs from it (NewDense), or a
	// dimension <= 0 (FromSparse).
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNonTernaryValue indicates an entry outside {-1,0,1} in a ternary matrix,
	// or outside {0,1} in a binary matrix.
	ErrNonTernaryValue = errors.New("matrix: entry out of {-1,0,1} domain")

	// ErrNilMatrix indicates a nil Matrix receiver or argument was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)
