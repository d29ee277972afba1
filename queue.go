package decomposition

// Queue is a singly-linked LIFO of tasks plus a shared foundIrregularity
// flag (spec.md §3, component B). The queue owns its tasks until popped;
// the popper owns the task until the stage returns. LIFO yields depth-first
// tree construction: sibling tasks are processed in reverse push order.
type Queue struct {
	head              *Task
	foundIrregularity bool
}

// NewQueue returns an empty, ready-to-use Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push makes task the new head in O(1).
func (q *Queue) Push(task *Task) {
	task.next = q.head
	q.head = task
}

// Pop removes and returns the head task. Unlike the spec's "undefined on
// empty", Go callers get (nil, false) — a checkable result.
func (q *Queue) Pop() (*Task, bool) {
	if q.head == nil {
		return nil, false
	}
	t := q.head
	q.head = t.next
	t.next = nil

	return t, true
}

// Empty reports whether the queue has no pending tasks.
func (q *Queue) Empty() bool { return q.head == nil }

// FoundIrregularity reports whether any stage has set the shared
// irregularity flag.
func (q *Queue) FoundIrregularity() bool { return q.foundIrregularity }

// setFoundIrregularity raises the shared flag. Monotone: never cleared.
func (q *Queue) setFoundIrregularity() { q.foundIrregularity = true }
