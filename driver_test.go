package decomposition_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/cmr/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmr"
)

func identity3x3(t *testing.T) *matrix.Dense {
	t.Helper()
	entries := []matrix.SparseEntry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}, {Row: 2, Col: 2, Value: 1}}
	m, err := matrix.FromSparse(3, 3, entries, false, nil, nil)
	require.NoError(t, err)

	return m
}

// k4Incidence builds K4's edge-vertex incidence matrix: 4 rows (vertices),
// 6 columns (edges), exactly two 1s per column (spec.md §8 scenario 2).
func k4Incidence(t *testing.T) *matrix.Dense {
	t.Helper()
	edges := [][2]int{{0, 1}, {0, 2}, {0, 3}, {1, 2}, {1, 3}, {2, 3}}
	entries := make([]matrix.SparseEntry, 0, len(edges)*2)
	for col, e := range edges {
		entries = append(entries,
			matrix.SparseEntry{Row: e[0], Col: col, Value: 1},
			matrix.SparseEntry{Row: e[1], Col: col, Value: 1},
		)
	}
	m, err := matrix.FromSparse(4, 6, entries, false, nil, nil)
	require.NoError(t, err)

	return m
}

// r10Circulant builds the standard 5x5 circulant representation of R10:
// row i, column j holds pattern[(j-i) mod 5] with pattern = 1,1,0,0,1.
func r10Circulant(t *testing.T) *matrix.Dense {
	t.Helper()
	pattern := [5]int8{1, 1, 0, 0, 1}
	entries := make([]matrix.SparseEntry, 0, 25)
	for i := 0; i < 5; i++ {
		for j := 0; j < 5; j++ {
			v := pattern[((j-i)%5+5)%5]
			if v != 0 {
				entries = append(entries, matrix.SparseEntry{Row: i, Col: j, Value: v})
			}
		}
	}
	m, err := matrix.FromSparse(5, 5, entries, false, nil, nil)
	require.NoError(t, err)

	return m
}

// fanoF7 builds the Fano plane's binary 3x7 representation (spec.md §8
// scenario 4): rows 1110100 / 1101010 / 1011001.
func fanoF7(t *testing.T) *matrix.Dense {
	t.Helper()
	rows := []string{"1110100", "1101010", "1011001"}
	entries := make([]matrix.SparseEntry, 0, 12)
	for i, row := range rows {
		for j, ch := range row {
			if ch == '1' {
				entries = append(entries, matrix.SparseEntry{Row: i, Col: j, Value: 1})
			}
		}
	}
	m, err := matrix.FromSparse(3, 7, entries, false, nil, nil)
	require.NoError(t, err)

	return m
}

func TestDecomposition_Identity3x3IsSeriesParallel(t *testing.T) {
	m := identity3x3(t)
	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, minor, err := decomposition.Test(m, params, stats, 2*time.Second)
	require.NoError(t, err)
	assert.True(t, isRegular)
	assert.Equal(t, decomposition.TypeSeriesParallel, root.Type)
	assert.Nil(t, minor)
}

func TestDecomposition_K4IncidenceIsGraphic(t *testing.T) {
	m := k4Incidence(t)
	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, _, err := decomposition.Test(m, params, stats, 2*time.Second)
	require.NoError(t, err)
	assert.True(t, isRegular)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, decomposition.TypeGraphic, root.Type)
}

func TestDecomposition_R10CirculantIsR10(t *testing.T) {
	m := r10Circulant(t)
	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, _, err := decomposition.Test(m, params, stats, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, isRegular)
	assert.True(t, root.IsLeaf())
	assert.Equal(t, decomposition.TypeR10, root.Type)
}

func TestDecomposition_FanoF7IsIrregular(t *testing.T) {
	m := fanoF7(t)
	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, minor, err := decomposition.Test(m, params, stats, 5*time.Second)
	require.NoError(t, err)
	assert.False(t, isRegular)
	assert.NotNil(t, minor)
	_ = root
}

func TestDecomposition_BlockDiagonalIsOneSum(t *testing.T) {
	// Block-diagonal of scenarios 2 (K4 incidence, disjoint element names)
	// and 3 (R10 circulant): spec.md §8 scenario 5.
	k4 := k4Incidence(t)
	r10 := r10Circulant(t)

	rows, cols := k4.Rows()+r10.Rows(), k4.Cols()+r10.Cols()
	entries := make([]matrix.SparseEntry, 0)
	for i := 0; i < k4.Rows(); i++ {
		for j := 0; j < k4.Cols(); j++ {
			v, _ := k4.At(i, j)
			if v != 0 {
				entries = append(entries, matrix.SparseEntry{Row: i, Col: j, Value: v})
			}
		}
	}
	for i := 0; i < r10.Rows(); i++ {
		for j := 0; j < r10.Cols(); j++ {
			v, _ := r10.At(i, j)
			if v != 0 {
				entries = append(entries, matrix.SparseEntry{Row: k4.Rows() + i, Col: k4.Cols() + j, Value: v})
			}
		}
	}

	m, err := matrix.FromSparse(rows, cols, entries, false, nil, nil)
	require.NoError(t, err)

	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, _, err := decomposition.Test(m, params, stats, 5*time.Second)
	require.NoError(t, err)
	assert.True(t, isRegular)
	assert.Equal(t, decomposition.TypeOneSum, root.Type)
	assert.Len(t, root.Children, 2)
}

func TestDecomposition_Idempotent_CompleteDecomposition(t *testing.T) {
	m := k4Incidence(t)
	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	_, root, _, err := decomposition.Test(m, params, stats, 2*time.Second)
	require.NoError(t, err)
	require.Equal(t, decomposition.TagRegular, root.Regularity)

	err = decomposition.CompleteDecomposition(root, params, stats, 2*time.Second)
	require.NoError(t, err)
	assert.Equal(t, decomposition.TagRegular, root.Regularity)
	assert.Equal(t, decomposition.TypeGraphic, root.Type)
}

func TestDecomposition_ZeroRowMatrixIsSeriesParallel(t *testing.T) {
	m, err := matrix.NewDense(0, 3, false, nil, []string{"c0", "c1", "c2"})
	require.NoError(t, err)

	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, minor, err := decomposition.Test(m, params, stats, 2*time.Second)
	require.NoError(t, err)
	assert.True(t, isRegular)
	assert.Equal(t, decomposition.TypeSeriesParallel, root.Type)
	assert.Nil(t, minor)
}

func TestDecomposition_ZeroColumnMatrixIsSeriesParallel(t *testing.T) {
	m, err := matrix.NewDense(3, 0, false, []string{"r0", "r1", "r2"}, nil)
	require.NoError(t, err)

	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	stats := decomposition.NewStats()

	isRegular, root, minor, err := decomposition.Test(m, params, stats, 2*time.Second)
	require.NoError(t, err)
	assert.True(t, isRegular)
	assert.Equal(t, decomposition.TypeSeriesParallel, root.Type)
	assert.Nil(t, minor)
}

func TestDecomposition_EarlyExitEquivalence(t *testing.T) {
	m := fanoF7(t)
	stats1 := decomposition.NewStats()
	earlyParams := decomposition.NewParams(decomposition.WithCompleteTree(false))
	isRegularEarly, _, _, err := decomposition.Test(m, earlyParams, stats1, 5*time.Second)
	require.NoError(t, err)

	stats2 := decomposition.NewStats()
	fullParams := decomposition.NewParams(decomposition.WithCompleteTree(true))
	isRegularFull, _, _, err := decomposition.Test(m, fullParams, stats2, 5*time.Second)
	require.NoError(t, err)

	assert.Equal(t, isRegularEarly, isRegularFull)
	assert.False(t, isRegularFull)
}
