package decomposition

import "time"

// Stage name constants, used both as Stats keys and as zerolog trace
// fields — the Go-native equivalent of original_source/'s
// CMRdbgMsg(4, "Testing for being R_10.\n")-style per-stage trace lines.
const (
	stageNameOneSum                = "one_sum"
	stageNameDirectGraphicness     = "direct_graphicness"
	stageNameDirectCographicness   = "direct_cographicness"
	stageNameR10                   = "r10"
	stageNameSeriesParallel        = "series_parallel"
	stageNameWheelMinor            = "wheel_minor"
	stageNameSequenceGraphicness   = "sequence_graphicness"
	stageNameSequenceCographicness = "sequence_cographicness"
	stageNameThreeSeparation       = "three_separation"
)

// stageFunc is the common signature every stage contract implements
// (spec.md §4.D): it receives the task and the shared queue, and returns a
// typed error, or nil on success. Side effects are scoped to task.Node and
// to queue (pushing child tasks).
type stageFunc func(t *Task, q *Queue) error

// smallDimensions reports whether the node's matrix is small enough for the
// direct graphicness/cographicness guard (dispatcher rules 2 and 3).
func smallDimensions(n *Node) bool {
	return n.Matrix.Rows() <= 3 || n.Matrix.Cols() <= 3
}

// selectStage implements the first-matching-rule decision table (spec.md
// §4.C): this ordering is part of the contract.
func selectStage(n *Node, p *Params) (string, stageFunc) {
	switch {
	case !n.TestedTwoConnected:
		return stageNameOneSum, stageOneSum
	case n.Graphicness == TagUnset && (p.directGraphicness || smallDimensions(n)):
		return stageNameDirectGraphicness, stageDirectGraphicness
	case n.Cographicness == TagUnset && (p.directGraphicness || smallDimensions(n)):
		return stageNameDirectCographicness, stageDirectCographicness
	case !n.TestedR10:
		return stageNameR10, stageR10Test
	case !n.TestedSeriesParallel:
		return stageNameSeriesParallel, stageSeriesParallel
	case n.DenseMatrix != nil:
		return stageNameWheelMinor, stageWheelMinor
	case n.NestedMinorsMatrix != nil && n.NestedMinorsLastGraphic == sentinelIndex:
		return stageNameSequenceGraphicness, stageSequenceGraphicness
	case n.NestedMinorsMatrix != nil && n.NestedMinorsLastCographic == sentinelIndex:
		return stageNameSequenceCographicness, stageSequenceCographicness
	default:
		return stageNameThreeSeparation, stageThreeSeparation
	}
}

// dispatch pops no tasks itself; it runs exactly one stage on t's node,
// timing and logging it, and accumulating Stats (spec.md §4.D: "All stages
// must set stats.<stage>_count += 1 and add elapsed clock to
// stats.<stage>_time").
func dispatch(t *Task, q *Queue) error {
	name, fn := selectStage(t.Node, t.Params)

	t.Params.logger.Trace().
		Str("stage", name).
		Str("node", t.Node.ID).
		Int("rows", t.Node.Matrix.Rows()).
		Int("cols", t.Node.Matrix.Cols()).
		Msg("dispatch")

	start := time.Now()
	err := fn(t, q)
	t.Stats.record(name, time.Since(start))

	return err
}
