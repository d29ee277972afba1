package decomposition

import "time"

// Task is one unit of work bound to a node: a reference to the node, the
// driver parameters, mutable statistics, a shared start-clock and time
// budget, and a next-in-queue link (spec.md §3, component B). A Task is in
// at most one Queue at a time.
type Task struct {
	Node       *Node
	Params     *Params
	Stats      *Stats
	StartClock time.Time
	TimeLimit  time.Duration

	next *Task
}

// newTask allocates a Task for node, sharing the clock/budget/stats/params
// of the task that produced it (or supplied fresh by the driver for the
// root).
func newTask(node *Node, params *Params, stats *Stats, startClock time.Time, timeLimit time.Duration) *Task {
	return &Task{
		Node:       node,
		Params:     params,
		Stats:      stats,
		StartClock: startClock,
		TimeLimit:  timeLimit,
	}
}

// elapsed returns the time since StartClock.
func (t *Task) elapsed() time.Duration { return time.Since(t.StartClock) }

// checkTimeLimit implements the cooperative polling contract (spec.md §5):
// every stage must check elapsed against TimeLimit at entry and after each
// inner loop that isn't O(rows+cols). TimeLimit<=0 means unlimited.
func (t *Task) checkTimeLimit(op string) error {
	if t.TimeLimit <= 0 {
		return nil
	}
	if t.elapsed() > t.TimeLimit {
		return newError(CodeTimeLimit, op, ErrTimeLimit)
	}

	return nil
}
