// SPDX-License-Identifier: MIT
// Package matrix provides a dense, row-major representation of a 0/1 or
// {-1,0,1} characteristic matrix, plus the permutation and pivot primitives
// Seymour's decomposition needs: row/column swaps, binary/ternary pivoting,
// and submatrix extraction.
package matrix

import "fmt"

// Dense is a row-major matrix of small signed entries. r is rows, c is
// columns; data holds r*c elements in row-major order.
type Dense struct {
	r, c     int
	ternary  bool // true ⇒ entries in {-1,0,1}; false ⇒ entries in {0,1}
	data     []int8
	rowNames []string
	colNames []string
}

// NewDense creates an r×c Dense matrix initialized to zeros, with row/column
// element names (stable identifiers, independent of later permutation). Zero
// rows or zero columns are permitted: series-parallel reduction (S5) shrinks
// a matrix one element at a time and must be able to represent the terminal
// 0x0 matroid, and the intermediate Nx0/0xN states along the way.
func NewDense(rows, cols int, ternary bool, rowNames, colNames []string) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if len(rowNames) != rows || len(colNames) != cols {
		return nil, fmt.Errorf("matrix: NewDense: %w: got %d row names, %d col names for a %dx%d matrix",
			ErrBadShape, len(rowNames), len(colNames), rows, cols)
	}

	rn := make([]string, rows)
	copy(rn, rowNames)
	cn := make([]string, cols)
	copy(cn, colNames)

	return &Dense{
		r: rows, c: cols, ternary: ternary,
		data:     make([]int8, rows*cols),
		rowNames: rn,
		colNames: cn,
	}, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// IsTernary reports whether this matrix's domain is {-1,0,1} (true) or
// {0,1} (false).
func (m *Dense) IsTernary() bool { return m.ternary }

// RowName returns the stable element name of row i.
func (m *Dense) RowName(i int) string { return m.rowNames[i] }

// ColName returns the stable element name of column j.
func (m *Dense) ColName(j int) string { return m.colNames[j] }

func (m *Dense) index(i, j int) (int, error) {
	if i < 0 || i >= m.r || j < 0 || j >= m.c {
		return 0, fmt.Errorf("matrix: (%d,%d): %w", i, j, ErrOutOfRange)
	}

	return i*m.c + j, nil
}

// At retrieves the entry at (i,j).
func (m *Dense) At(i, j int) (int8, error) {
	idx, err := m.index(i, j)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (i,j). v must lie in the matrix's declared domain.
func (m *Dense) Set(i, j int, v int8) error {
	if m.ternary {
		if v < -1 || v > 1 {
			return fmt.Errorf("matrix: Set(%d,%d,%d): %w", i, j, v, ErrNonTernaryValue)
		}
	} else if v < 0 || v > 1 {
		return fmt.Errorf("matrix: Set(%d,%d,%d): %w", i, j, v, ErrNonTernaryValue)
	}
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy.
func (m *Dense) Clone() *Dense {
	cp := &Dense{
		r: m.r, c: m.c, ternary: m.ternary,
		data:     make([]int8, len(m.data)),
		rowNames: make([]string, len(m.rowNames)),
		colNames: make([]string, len(m.colNames)),
	}
	copy(cp.data, m.data)
	copy(cp.rowNames, m.rowNames)
	copy(cp.colNames, m.colNames)

	return cp
}

// String renders the matrix for debug tracing, mirroring the original
// CMRchrmatPrintDense debug dump gated behind CMR_DEBUG.
func (m *Dense) String() string {
	out := make([]byte, 0, m.r*(m.c+1))
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			v, _ := m.At(i, j)
			switch v {
			case 0:
				out = append(out, '0')
			case 1:
				out = append(out, '1')
			default:
				out = append(out, '-', '1')
			}
			if j < m.c-1 {
				out = append(out, ' ')
			}
		}
		out = append(out, '\n')
	}

	return string(out)
}
