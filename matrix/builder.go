// SPDX-License-Identifier: MIT
package matrix

import "fmt"

// SparseEntry is one nonzero entry of a sparse row-major characteristic
// matrix, matching spec.md §6's external input shape.
type SparseEntry struct {
	Row, Col int
	Value    int8
}

// FromSparse builds a Dense matrix from a sparse entry list. rowNames/
// colNames default to "r<i>"/"c<j>" when nil, matching the builder package's
// deterministic-default-ID convention.
func FromSparse(numRows, numCols int, entries []SparseEntry, ternary bool, rowNames, colNames []string) (*Dense, error) {
	if numRows <= 0 || numCols <= 0 {
		return nil, ErrBadShape
	}
	if rowNames == nil {
		rowNames = defaultNames("r", numRows)
	}
	if colNames == nil {
		colNames = defaultNames("c", numCols)
	}

	m, err := NewDense(numRows, numCols, ternary, rowNames, colNames)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if e.Row < 0 || e.Row >= numRows || e.Col < 0 || e.Col >= numCols {
			return nil, fmt.Errorf("matrix: FromSparse: entry (%d,%d): %w", e.Row, e.Col, ErrOutOfRange)
		}
		if err := m.Set(e.Row, e.Col, e.Value); err != nil {
			return nil, fmt.Errorf("matrix: FromSparse: entry (%d,%d)=%d: %w", e.Row, e.Col, e.Value, err)
		}
	}

	return m, nil
}

func defaultNames(prefix string, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = fmt.Sprintf("%s%d", prefix, i)
	}

	return out
}
