package decomposition

import (
	"time"

	"github.com/katalvlaran/cmr/matrix"
)

// Test creates a fresh root from m, pumps the queue, finalises, and reports
// whether the matroid is regular (spec.md §4.F). When m is not regular, the
// returned minor is the matrix of the first irregular leaf encountered in a
// depth-first walk — the forbidden-minor certificate. The full
// decomposition tree is always returned so the caller can inspect or
// discard it; there is no separate "tree requested" flag, since a Go
// *Node is cheap to ignore.
//
// timeLimit<=0 means unlimited, following spec.md §6.
func Test(m *matrix.Dense, params *Params, stats *Stats, timeLimit time.Duration) (isRegular bool, root *Node, minor *matrix.Dense, err error) {
	if params == nil {
		params = NewParams()
	}

	start := time.Now()
	root = NewRootNode(m, m.IsTernary())
	queue := NewQueue()
	queue.Push(newTask(root, params, stats, start, timeLimit))

	pumpErr := pump(queue, params)
	stats.recordTotal(time.Since(start))
	if pumpErr != nil {
		return false, root, nil, pumpErr
	}

	Finalize(root)
	isRegular = root.Regularity == TagRegular
	if !isRegular {
		if leaf := findFirstIrregularLeaf(root); leaf != nil {
			minor = leaf.Matrix
		}
	}

	return isRegular, root, minor, nil
}

// CompleteDecomposition re-runs the pump loop on an existing sub-root: it
// frees the sub-root's existing children and resets its Type to unknown
// (pipeline flags are left as-is, so already-resolved stages are not
// repeated), pushes one task for it, and finalises from the true root —
// climbed via Node.Root, regardless of which subtree was handed in
// (original_source/'s root-climb requirement) — so attributes propagate
// upward to ancestors without disturbing them otherwise.
func CompleteDecomposition(subRoot *Node, params *Params, stats *Stats, timeLimit time.Duration) error {
	if params == nil {
		params = NewParams()
	}

	subRoot.Children = nil
	subRoot.Type = TypeUnknown

	start := time.Now()
	queue := NewQueue()
	queue.Push(newTask(subRoot, params, stats, start, timeLimit))

	err := pump(queue, params)
	stats.recordTotal(time.Since(start))
	if err != nil {
		return err
	}

	Finalize(subRoot.Root())

	return nil
}

// pump runs the driver loop: pop a task, dispatch exactly one stage, repeat
// while the queue is non-empty and (params.completeTree OR
// !queue.foundIrregularity) — spec.md §4.F.
func pump(q *Queue, params *Params) error {
	for !q.Empty() {
		if !params.completeTree && q.FoundIrregularity() {
			break
		}
		task, ok := q.Pop()
		if !ok {
			break
		}
		if err := dispatch(task, q); err != nil {
			return err
		}
	}

	return nil
}

// findFirstIrregularLeaf walks the tree depth-first (children in push
// order) for the first leaf whose Type is irregular.
func findFirstIrregularLeaf(n *Node) *Node {
	if n.IsLeaf() {
		if n.Type == TypeIrregular {
			return n
		}

		return nil
	}
	for _, child := range n.Children {
		if leaf := findFirstIrregularLeaf(child); leaf != nil {
			return leaf
		}
	}

	return nil
}
