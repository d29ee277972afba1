package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cmr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromSparse_Identity3x3(t *testing.T) {
	entries := []matrix.SparseEntry{{0, 0, 1}, {1, 1, 1}, {2, 2, 1}}
	m, err := matrix.FromSparse(3, 3, entries, false, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 3, m.Cols())
	v, err := m.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(1), v)
	v, err = m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, int8(0), v)
}

func TestFromSparse_RejectsOutOfDomain(t *testing.T) {
	entries := []matrix.SparseEntry{{0, 0, 2}}
	_, err := matrix.FromSparse(2, 2, entries, false, nil, nil)
	assert.ErrorIs(t, err, matrix.ErrNonTernaryValue)
}

func TestSwapRowsPreservesNames(t *testing.T) {
	m, err := matrix.FromSparse(2, 2, []matrix.SparseEntry{{0, 0, 1}, {1, 1, 1}}, false,
		[]string{"r0", "r1"}, []string{"c0", "c1"})
	require.NoError(t, err)
	require.NoError(t, m.SwapRows(0, 1))
	assert.Equal(t, "r1", m.RowName(0))
	v, _ := m.At(0, 0)
	assert.Equal(t, int8(0), v)
	v, _ = m.At(0, 1)
	assert.Equal(t, int8(1), v)
}

func TestPivot_BinaryPivotIsInvolutionOnUnitVector(t *testing.T) {
	// Pivoting on an isolated 1 surrounded by zeros leaves the matrix fixed.
	m, err := matrix.FromSparse(2, 2, []matrix.SparseEntry{{0, 0, 1}}, false, nil, nil)
	require.NoError(t, err)
	require.NoError(t, m.Pivot(0, 0))
	v, _ := m.At(0, 0)
	assert.Equal(t, int8(1), v)
	v, _ = m.At(1, 1)
	assert.Equal(t, int8(0), v)
}

func TestSubmatrix_ToZeroDimensions(t *testing.T) {
	m, err := matrix.FromSparse(1, 2, []matrix.SparseEntry{{0, 0, 1}}, false, nil, nil)
	require.NoError(t, err)
	sub, err := m.Submatrix(nil, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 0, sub.Rows())
	assert.Equal(t, 2, sub.Cols())
}

func TestSubmatrix(t *testing.T) {
	m, err := matrix.FromSparse(3, 3, []matrix.SparseEntry{{0, 0, 1}, {1, 1, 1}, {2, 2, 1}}, false, nil, nil)
	require.NoError(t, err)
	sub, err := m.Submatrix([]int{0, 2}, []int{0, 2})
	require.NoError(t, err)
	assert.Equal(t, 2, sub.Rows())
	v, _ := sub.At(1, 1)
	assert.Equal(t, int8(1), v)
}
