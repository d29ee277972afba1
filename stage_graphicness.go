package decomposition

import (
	"github.com/katalvlaran/cmr/core"
	"github.com/katalvlaran/cmr/matrix"
)

// stageDirectGraphicness is S2: try to realise the matrix as the incidence
// matrix of a graph. The recognised shapes are exactly the two classical
// (reduced) incidence-matrix patterns: a binary column with exactly two 1s
// names an undirected edge between its two rows; a ternary column with
// exactly one +1 and one -1 names a signed arc between its two rows,
// collapsed to an undirected edge for the witness graph. Any column outside
// those shapes refutes the direct test (a sound but intentionally
// incomplete recognizer, consistent with spec.md's "specified only by
// their contracts" framing for full subroutine generality).
//
// Realised -> Graphicness = regular, Type = graphic, node finalised (no
// re-push). Refuted -> Graphicness = irregular, re-pushed so the dispatcher
// falls through to S3.
func stageDirectGraphicness(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameDirectGraphicness); err != nil {
		return err
	}

	n := t.Node
	if _, ok := incidenceWitness(n.Matrix, false); ok {
		n.Graphicness = TagRegular
		n.Type = TypeGraphic

		return nil
	}

	n.Graphicness = TagIrregular
	q.Push(t)

	return nil
}

// stageDirectCographicness is S3, the dual of S2: it runs the same pattern
// test against the transpose (rows become edges, columns become vertices).
func stageDirectCographicness(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameDirectCographicness); err != nil {
		return err
	}

	n := t.Node
	if _, ok := incidenceWitness(n.Matrix, true); ok {
		n.Cographicness = TagRegular
		n.Type = TypeCographic

		return nil
	}

	n.Cographicness = TagIrregular
	q.Push(t)

	return nil
}

// incidenceWitness attempts to build the witness graph for m (or m's
// transpose, when transposed is true): "edges" run along one axis, each
// contributing exactly one graph edge between the two "vertex" indices it
// touches, following the shapes documented on stageDirectGraphicness.
func incidenceWitness(m *matrix.Dense, transposed bool) (*core.Graph, bool) {
	numEdges, numVertices := m.Cols(), m.Rows()
	vertexName := func(i int) string { return m.RowName(i) }
	entryAt := func(edge, vertex int) (int8, error) { return m.At(vertex, edge) }
	if transposed {
		numEdges, numVertices = m.Rows(), m.Cols()
		vertexName = func(i int) string { return m.ColName(i) }
		entryAt = func(edge, vertex int) (int8, error) { return m.At(edge, vertex) }
	}

	g := core.NewGraph(core.WithLoops())
	for v := 0; v < numVertices; v++ {
		if err := g.AddVertex(vertexName(v)); err != nil {
			return nil, false
		}
	}

	for e := 0; e < numEdges; e++ {
		var plus, minus []int
		for v := 0; v < numVertices; v++ {
			val, err := entryAt(e, v)
			if err != nil {
				return nil, false
			}
			switch {
			case val == 1:
				plus = append(plus, v)
			case val == -1:
				minus = append(minus, v)
			}
		}

		switch {
		case m.IsTernary() && len(plus) == 1 && len(minus) == 1:
			if _, err := g.AddEdge(vertexName(plus[0]), vertexName(minus[0])); err != nil {
				return nil, false
			}
		case !m.IsTernary() && len(plus) == 2 && len(minus) == 0:
			if _, err := g.AddEdge(vertexName(plus[0]), vertexName(plus[1])); err != nil {
				return nil, false
			}
		default:
			// Neither recognised shape: this direct test refutes the column
			// (or row), and thus the whole matrix.
			return nil, false
		}
	}

	return g, true
}
