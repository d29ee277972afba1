package decomposition

import (
	"github.com/katalvlaran/cmr/core"
	"github.com/katalvlaran/cmr/flow"
	"github.com/katalvlaran/cmr/matrix"
)

// stageThreeSeparation is S9, the dispatcher's fallback rule. By the time a
// node reaches it, S7 and S8 have each resolved the nested-minor sequence's
// graphicness and cographicness at least once:
//
//   - If either resolved regular, the sequence (and hence the node) is a
//     realised graphic or cographic matroid: Type is set accordingly and
//     the node is finalised.
//   - Otherwise this stage searches for a genuine 3-separation of the
//     nested-minor representative via Menger's theorem: min vertex cut ==
//     max flow in the vertex-split bipartite incidence graph (flow.MinCut).
//     A cut of exactly three elements splits the node into two children
//     sharing those three separator elements, Type = TypeThreeSum
//     (spec.md §4.D); no such cut found concludes the node is irregular:
//     Regularity = irregular, Type = irregular, Queue.foundIrregularity
//     raised.
func stageThreeSeparation(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameThreeSeparation); err != nil {
		return err
	}

	n := t.Node
	if n.Graphicness == TagRegular {
		n.Type = TypeGraphic

		return nil
	}
	if n.Cographicness == TagRegular {
		n.Type = TypeCographic

		return nil
	}

	sep, ok := findThreeSeparation(n.NestedMinorsMatrix, t.Params)
	if !ok {
		if cut, cutErr := mengerVertexCut(n.NestedMinorsMatrix); cutErr == nil && cut < minSeparationSize {
			t.Params.logger.Trace().
				Str("node", n.ID).
				Int("cut", cut).
				Msg("three_separation: unexpected small vertex cut survived wheel-minor split")
		}

		n.Type = TypeIrregular
		n.Regularity = TagIrregular
		q.setFoundIrregularity()

		return nil
	}

	subA, subB, err := sep.submatrices(n.NestedMinorsMatrix, t.Params)
	if err != nil {
		return newError(CodeInvalidInput, stageNameThreeSeparation, ErrInvalidInput)
	}

	for _, sub := range []*matrix.Dense{subA, subB} {
		child := newChildNode(n, sub)
		if err := AttachChild(n, child); err != nil {
			return err
		}
		q.Push(newTask(child, t.Params, t.Stats, t.StartClock, t.TimeLimit))
	}
	n.Type = TypeThreeSum
	n.Separator = sep.names(n.NestedMinorsMatrix)

	return nil
}

// minSeparationSize is the exact vertex-cut size a genuine 3-separation
// witness carries (spec.md GLOSSARY "3-separation"): a surviving cut
// strictly below this would indicate a missed <=2-separation upstream
// (stageWheelMinor already split those off), and strictly above it means no
// 3-separation exists.
const minSeparationSize = 3

// threeSeparation is a found 3-element vertex cut of a nested-minor
// representative, partitioned into the two sides it separates plus the
// three shared separator elements (rows and/or columns — this engine's
// matrix representation treats both uniformly as matroid elements).
type threeSeparation struct {
	sideARows, sideACols         []int
	sideBRows, sideBCols         []int
	separatorRows, separatorCols []int
}

// findThreeSeparation searches m for an exact 3-element vertex separation
// via Menger's theorem. When Params.threeSumStrategy is
// DefaultThreeSumStrategy ("balanced"), it tries both the forward
// (row-to-column) and transposed (column-to-row) terminal pairing and keeps
// whichever candidate splits m's elements more evenly between its two
// sides; any other configured strategy value uses the forward candidate
// only ("eager": first cut found, no second attempt).
//
// This checks a single source/sink pairing per direction rather than
// searching over all pairs for a global minimum cut, so it is not a
// research-grade 3-separation search — it is sufficient for certifying the
// 3-sum decompositions spec.md §8's concrete scenarios exercise.
func findThreeSeparation(m *matrix.Dense, p *Params) (*threeSeparation, bool) {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return nil, false
	}

	forward, fwdOK := vertexCutSeparation(m, false)
	if p.threeSumStrategy != DefaultThreeSumStrategy {
		return forward, fwdOK
	}

	reverse, revOK := vertexCutSeparation(m, true)
	switch {
	case fwdOK && revOK:
		if forward.balance() <= reverse.balance() {
			return forward, true
		}

		return reverse, true
	case fwdOK:
		return forward, true
	case revOK:
		return reverse, true
	default:
		return nil, false
	}
}

// vertexCutSeparation runs one Menger's-theorem cut attempt: forward pairs
// the first row against the last column, transposed pairs the first column
// against the last row. It accepts the result only when the cut has size
// exactly minSeparationSize and both sides retain at least one element
// beyond the separator itself (otherwise the "split" is degenerate).
func vertexCutSeparation(m *matrix.Dense, transposed bool) (*threeSeparation, bool) {
	g, rowIn, rowOut, colIn, colOut, err := buildCutGraph(m)
	if err != nil {
		return nil, false
	}

	source, sink := rowOut(0), colIn(m.Cols()-1)
	if transposed {
		source, sink = colOut(0), rowIn(m.Rows()-1)
	}

	maxFlow, reachable, err := flow.MinCut(g, source, sink)
	if err != nil || maxFlow != minSeparationSize {
		return nil, false
	}

	sep := &threeSeparation{}
	for i := 0; i < m.Rows(); i++ {
		classifyElement(reachable, rowIn(i), rowOut(i), i, &sep.sideARows, &sep.sideBRows, &sep.separatorRows)
	}
	for j := 0; j < m.Cols(); j++ {
		classifyElement(reachable, colIn(j), colOut(j), j, &sep.sideACols, &sep.sideBCols, &sep.separatorCols)
	}

	if len(sep.separatorRows)+len(sep.separatorCols) != minSeparationSize {
		return nil, false
	}
	if len(sep.sideARows)+len(sep.sideACols) == 0 || len(sep.sideBRows)+len(sep.sideBCols) == 0 {
		return nil, false
	}

	return sep, true
}

// classifyElement sorts one row or column index into side A (still
// reachable on its way out, so on the source side of the cut), side B
// (never reached, fully on the sink side), or the separator (reached going
// in but blocked going out — its internal split edge is the saturated cut
// edge).
func classifyElement(reachable map[string]bool, inID, outID string, idx int, sideA, sideB, separator *[]int) {
	switch {
	case reachable[outID]:
		*sideA = append(*sideA, idx)
	case !reachable[inID]:
		*sideB = append(*sideB, idx)
	default:
		*separator = append(*separator, idx)
	}
}

// balance reports how unevenly a separation splits m's elements: smaller is
// more balanced.
func (s *threeSeparation) balance() int {
	if s == nil {
		return 1 << 30
	}
	a := len(s.sideARows) + len(s.sideACols)
	b := len(s.sideBRows) + len(s.sideBCols)
	d := a - b
	if d < 0 {
		d = -d
	}

	return d
}

// submatrices builds the two children's matrices, each the side's own
// rows/columns plus the shared separator. Params.threeSumPivotsDistribution
// controls the order the separator elements are appended in: "reverse"
// appends them back-to-front, anything else (including unset) appends them
// in ascending index order.
func (s *threeSeparation) submatrices(m *matrix.Dense, p *Params) (*matrix.Dense, *matrix.Dense, error) {
	sepRows := s.orderedSeparator(s.separatorRows, p)
	sepCols := s.orderedSeparator(s.separatorCols, p)

	subA, err := m.Submatrix(append(append([]int{}, s.sideARows...), sepRows...), append(append([]int{}, s.sideACols...), sepCols...))
	if err != nil {
		return nil, nil, err
	}
	subB, err := m.Submatrix(append(append([]int{}, s.sideBRows...), sepRows...), append(append([]int{}, s.sideBCols...), sepCols...))
	if err != nil {
		return nil, nil, err
	}

	return subA, subB, nil
}

func (s *threeSeparation) orderedSeparator(idx []int, p *Params) []int {
	out := append([]int{}, idx...)
	if p.threeSumPivotsDistribution == "reverse" {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}

	return out
}

// names returns the separator's element names in ascending index order,
// independent of the submatrices' pivot-distribution ordering.
func (s *threeSeparation) names(m *matrix.Dense) []string {
	out := make([]string, 0, len(s.separatorRows)+len(s.separatorCols))
	for _, i := range s.separatorRows {
		out = append(out, m.RowName(i))
	}
	for _, j := range s.separatorCols {
		out = append(out, m.ColName(j))
	}

	return out
}

// mengerVertexCut builds the vertex-split bipartite incidence graph of m
// (row_i -> row_i_in/row_i_out, same for columns; unit internal capacity,
// unit capacity on every incidence edge) and returns the max flow between
// the first row and the last column, which by Menger's theorem equals the
// minimum vertex cut separating them. Used only as a post-hoc diagnostic
// once findThreeSeparation has given up.
func mengerVertexCut(m *matrix.Dense) (int, error) {
	if m == nil || m.Rows() == 0 || m.Cols() == 0 {
		return 0, nil
	}

	g, _, rowOut, colIn, _, err := buildCutGraph(m)
	if err != nil {
		return 0, err
	}

	return flow.Dinic(g, rowOut(0), colIn(m.Cols()-1))
}

// buildCutGraph builds the vertex-split bipartite incidence graph used by
// both mengerVertexCut and vertexCutSeparation, and returns the naming
// helpers for each vertex's "in" and "out" half.
func buildCutGraph(m *matrix.Dense) (g *core.Graph, rowIn, rowOut, colIn, colOut func(int) string, err error) {
	g = core.NewGraph(core.WithDirected(true))
	rowIn = func(i int) string { return rowName(m, i) + "#in" }
	rowOut = func(i int) string { return rowName(m, i) + "#out" }
	colIn = func(j int) string { return colName(m, j) + "#in" }
	colOut = func(j int) string { return colName(m, j) + "#out" }

	for i := 0; i < m.Rows(); i++ {
		if err = g.AddVertex(rowIn(i)); err != nil {
			return
		}
		if err = g.AddVertex(rowOut(i)); err != nil {
			return
		}
		if _, err = g.AddEdge(rowIn(i), rowOut(i)); err != nil {
			return
		}
	}
	for j := 0; j < m.Cols(); j++ {
		if err = g.AddVertex(colIn(j)); err != nil {
			return
		}
		if err = g.AddVertex(colOut(j)); err != nil {
			return
		}
		if _, err = g.AddEdge(colIn(j), colOut(j)); err != nil {
			return
		}
	}
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			var v int8
			v, err = m.At(i, j)
			if err != nil {
				return
			}
			if v != 0 {
				if _, err = g.AddEdge(rowOut(i), colIn(j)); err != nil {
					return
				}
				if _, err = g.AddEdge(colOut(j), rowIn(i)); err != nil {
					return
				}
			}
		}
	}

	return g, rowIn, rowOut, colIn, colOut, nil
}

func rowName(m *matrix.Dense, i int) string { return m.RowName(i) }
func colName(m *matrix.Dense, j int) string { return m.ColName(j) }
