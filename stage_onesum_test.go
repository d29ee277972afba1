package decomposition

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmr/matrix"
)

func newTestTask(t *testing.T, m *matrix.Dense) (*Task, *Queue) {
	t.Helper()
	n := NewRootNode(m, m.IsTernary())
	q := NewQueue()
	task := newTask(n, NewParams(), NewStats(), time.Now(), 0)

	return task, q
}

func TestStageOneSum_BlockDiagonalSplitsIntoTwoChildren(t *testing.T) {
	entries := []matrix.SparseEntry{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1}, {Row: 1, Col: 0, Value: 1},
		{Row: 2, Col: 2, Value: 1}, {Row: 2, Col: 3, Value: 1}, {Row: 3, Col: 2, Value: 1},
	}
	m, err := matrix.FromSparse(4, 4, entries, false, nil, nil)
	require.NoError(t, err)

	task, q := newTestTask(t, m)
	require.NoError(t, stageOneSum(task, q))

	assert.Equal(t, TypeOneSum, task.Node.Type)
	assert.Len(t, task.Node.Children, 2)
	assert.False(t, q.Empty())
}

func TestStageOneSum_SingletonBlocksAreLeftForSeriesParallel(t *testing.T) {
	entries := []matrix.SparseEntry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}, {Row: 2, Col: 2, Value: 1}}
	m, err := matrix.FromSparse(3, 3, entries, false, nil, nil)
	require.NoError(t, err)

	task, q := newTestTask(t, m)
	require.NoError(t, stageOneSum(task, q))

	assert.Equal(t, TypeUnknown, task.Node.Type)
	assert.True(t, task.Node.TestedTwoConnected)
	assert.Empty(t, task.Node.Children)
	popped, ok := q.Pop()
	require.True(t, ok)
	assert.Same(t, task.Node, popped.Node)
}

func TestStageOneSum_FullyConnectedMatrixIsNotSplit(t *testing.T) {
	m, err := matrix.FromSparse(2, 2, []matrix.SparseEntry{
		{Row: 0, Col: 0, Value: 1}, {Row: 0, Col: 1, Value: 1},
		{Row: 1, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1},
	}, false, nil, nil)
	require.NoError(t, err)

	task, q := newTestTask(t, m)
	require.NoError(t, stageOneSum(task, q))

	assert.True(t, task.Node.TestedTwoConnected)
	assert.Empty(t, task.Node.Children)
	_, ok := q.Pop()
	assert.True(t, ok)
}
