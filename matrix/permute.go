// SPDX-License-Identifier: MIT
package matrix

// SwapRows exchanges rows i and j (and their names), in place.
// Complexity: O(cols).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return ErrOutOfRange
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.c; k++ {
		ii, _ := m.index(i, k)
		jj, _ := m.index(j, k)
		m.data[ii], m.data[jj] = m.data[jj], m.data[ii]
	}
	m.rowNames[i], m.rowNames[j] = m.rowNames[j], m.rowNames[i]

	return nil
}

// SwapCols exchanges columns i and j (and their names), in place.
// Complexity: O(rows).
func (m *Dense) SwapCols(i, j int) error {
	if i < 0 || i >= m.c || j < 0 || j >= m.c {
		return ErrOutOfRange
	}
	if i == j {
		return nil
	}
	for k := 0; k < m.r; k++ {
		ii, _ := m.index(k, i)
		jj, _ := m.index(k, j)
		m.data[ii], m.data[jj] = m.data[jj], m.data[ii]
	}
	m.colNames[i], m.colNames[j] = m.colNames[j], m.colNames[i]

	return nil
}

// Pivot performs a binary/ternary matroid pivot on the nonzero entry (r,c):
// for every other row i with a nonzero in column c, and every other column j
// with a nonzero in row r, update entry(i,j) -= entry(i,c)*entry(r,j)/entry(r,c),
// taken modulo 2 (binary) or modulo 3 mapped back to {-1,0,1} (ternary). This
// is the matrix-reduction counterpart of the matroid pivot operation in
// spec.md's GLOSSARY.
func (m *Dense) Pivot(r, c int) error {
	piv, err := m.At(r, c)
	if err != nil {
		return err
	}
	if piv == 0 {
		return ErrNonTernaryValue
	}

	for i := 0; i < m.r; i++ {
		if i == r {
			continue
		}
		aic, _ := m.At(i, c)
		if aic == 0 {
			continue
		}
		for j := 0; j < m.c; j++ {
			if j == c {
				continue
			}
			aij, _ := m.At(i, j)
			arj, _ := m.At(r, j)
			updated := m.reduce(aij - aic*arj*m.invert(piv))
			_ = m.rawSet(i, j, updated)
		}
	}
	// the pivot row/column fold per the standard binary/ternary pivot rule:
	// column c becomes the unit vector e_r, row r is unchanged elsewhere.
	for i := 0; i < m.r; i++ {
		if i == r {
			continue
		}
		_ = m.rawSet(i, c, 0)
	}
	for j := 0; j < m.c; j++ {
		if j == c {
			continue
		}
		arj, _ := m.At(r, j)
		_ = m.rawSet(r, j, m.reduce(-arj*m.invert(piv)))
	}

	return nil
}

// invert returns the multiplicative inverse of a nonzero entry in GF(2)/GF(3)
// as represented in {-1,0,1}: 1⁻¹=1, (-1)⁻¹=-1 (mod 3).
func (m *Dense) invert(v int8) int8 { return v }

// reduce folds an arithmetic result back into the matrix's declared domain.
func (m *Dense) reduce(v int8) int8 {
	if !m.ternary {
		// GF(2): reduce modulo 2.
		if ((v % 2) + 2) % 2 == 1 {
			return 1
		}

		return 0
	}
	// GF(3), represented symmetrically as {-1,0,1}.
	r := ((v % 3) + 3) % 3
	if r == 2 {
		return -1
	}

	return r
}

// rawSet bypasses the domain-validating Set and is used only by Pivot, whose
// arithmetic is already reduced into the declared domain.
func (m *Dense) rawSet(i, j int, v int8) error {
	idx, err := m.index(i, j)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Submatrix extracts the rows/cols index sets (in the given order) into a
// fresh Dense, preserving element names.
func (m *Dense) Submatrix(rows, cols []int) (*Dense, error) {
	rn := make([]string, len(rows))
	for k, i := range rows {
		if i < 0 || i >= m.r {
			return nil, ErrOutOfRange
		}
		rn[k] = m.rowNames[i]
	}
	cn := make([]string, len(cols))
	for k, j := range cols {
		if j < 0 || j >= m.c {
			return nil, ErrOutOfRange
		}
		cn[k] = m.colNames[j]
	}

	out, err := NewDense(len(rows), len(cols), m.ternary, rn, cn)
	if err != nil {
		return nil, err
	}
	for k, i := range rows {
		for l, j := range cols {
			v, _ := m.At(i, j)
			_ = out.rawSet(k, l, v)
		}
	}

	return out, nil
}
