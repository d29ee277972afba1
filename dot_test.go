package decomposition_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cmr"
	"github.com/katalvlaran/cmr/matrix"
)

func TestDOT_RendersParentChildEdges(t *testing.T) {
	m, err := matrix.FromSparse(2, 2, []matrix.SparseEntry{{Row: 0, Col: 0, Value: 1}, {Row: 1, Col: 1, Value: 1}}, false, nil, nil)
	require.NoError(t, err)

	params := decomposition.NewParams(decomposition.WithCompleteTree(true))
	_, root, _, err := decomposition.Test(m, params, decomposition.NewStats(), 0)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, root.DOT(&buf))

	out := buf.String()
	assert.Contains(t, out, "digraph decomposition {")
	assert.Contains(t, out, root.ID)
}
