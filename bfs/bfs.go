package bfs

import (
	"github.com/katalvlaran/cmr/core"
)

// queueItem pairs a vertex ID with its BFS depth and the ID it was reached from.
type queueItem struct {
	id     string
	depth  int
	parent string
}

// walker encapsulates mutable BFS state, mirroring the lvlath bfs walker.
type walker struct {
	graph   *core.Graph
	queue   []queueItem
	visited map[string]bool
	res     *Result
}

// MultiSource runs BFS from every vertex in starts simultaneously (depth 0
// for all of them), which is exactly the "grow from the block's rows/
// columns at once" shape the wheel-minor search needs: a single BFS whose
// frontier begins at every row (or column) of the all-ones block.
//
// Complexity: O(V+E).
func MultiSource(g *core.Graph, starts []string) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, s := range starts {
		if !g.HasVertex(s) {
			return nil, ErrStartVertexNotFound
		}
	}

	n := g.VertexCount()
	w := &walker{
		graph:   g,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &Result{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	for _, s := range starts {
		w.enqueue(s, 0, "")
	}

	return w.res, w.loop()
}

func (w *walker) enqueue(id string, depth int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = depth
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: depth, parent: parent})
}

func (w *walker) loop() error {
	for len(w.queue) > 0 {
		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)

		nbrs, err := w.graph.NeighborIDs(item.id)
		if err != nil {
			return err
		}
		for _, nbr := range nbrs {
			if !w.visited[nbr] {
				w.enqueue(nbr, item.depth+1, item.id)
			}
		}
	}

	return nil
}

// PathTo reconstructs the start→dest path (inclusive), or ok=false if dest
// was never reached.
func (r *Result) PathTo(dest string) (path []string, ok bool) {
	if _, reached := r.Depth[dest]; !reached {
		return nil, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		prev, hasParent := r.Parent[cur]
		if !hasParent {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
