// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted distances and parent links.
//
// The decomposition engine's wheel-minor stage (S6) drives this BFS over a
// bipartite row/column reachability graph and uses only which vertices were
// reached: an unreached row or column certifies a ≤2-separation, full reach
// promotes the whole kernel. S6 does not reconstruct or walk a path.
package bfs

import "errors"

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start ID is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")
)

// Result holds the outcome of a BFS traversal: the order vertices were
// visited in, their distance from the set of start vertices, and the
// predecessor each vertex was reached from (absent for start vertices).
type Result struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}
