package decomposition

// stageSequenceGraphicness is S7: walks the nested-minor sequence from the
// last known graphic index forward, fixing NestedMinorsLastGraphic at the
// smallest index whose minor is not graphic; if every minor is graphic,
// Graphicness is set regular. Always re-pushes so the dispatcher falls
// through to S8.
//
// This module's nested-minor sequence (built by stageWheelMinor) is always
// a single representative matrix, so the "walk" degenerates to one test.
func stageSequenceGraphicness(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameSequenceGraphicness); err != nil {
		return err
	}

	n := t.Node
	if _, ok := incidenceWitness(n.NestedMinorsMatrix, false); ok {
		n.Graphicness = TagRegular
		n.NestedMinorsLastGraphic = 1
	} else {
		n.NestedMinorsLastGraphic = 0
	}
	q.Push(t)

	return nil
}

// stageSequenceCographicness is S8, the dual of S7.
func stageSequenceCographicness(t *Task, q *Queue) error {
	if err := t.checkTimeLimit(stageNameSequenceCographicness); err != nil {
		return err
	}

	n := t.Node
	if _, ok := incidenceWitness(n.NestedMinorsMatrix, true); ok {
		n.Cographicness = TagRegular
		n.NestedMinorsLastCographic = 1
	} else {
		n.NestedMinorsLastCographic = 0
	}
	q.Push(t)

	return nil
}
