package flow

import "github.com/katalvlaran/cmr/core"

// Dinic computes the maximum flow from source to sink in the directed,
// unit-capacity graph g using Dinic's algorithm (level graph + blocking
// flow). Unlike lvlath/flow's general-purpose Dinic, this variant is
// specialised to unit capacities: that is exactly the shape of a
// vertex-split connectivity graph, where min-cut == min vertex cut
// (Menger's theorem), which is all the three-separation stage needs.
//
// Complexity: O(E*sqrt(V)) on unit-capacity networks.
func Dinic(g *core.Graph, source, sink string) (maxFlow int, err error) {
	maxFlow, _, err = maxFlowResidual(g, source, sink)

	return maxFlow, err
}

// MinCut computes the maximum flow from source to sink and the source side
// of a corresponding minimum cut: the set of vertices still reachable from
// source in the residual graph once no augmenting path remains. By the
// max-flow min-cut theorem, every edge crossing from a reachable vertex to
// an unreachable one is saturated, and the total capacity of those crossing
// edges equals maxFlow — the caller decides what a crossing edge means for
// its own graph shape (e.g. a vertex-split network's internal edges
// identify the cut vertices).
func MinCut(g *core.Graph, source, sink string) (maxFlow int, reachable map[string]bool, err error) {
	maxFlow, cap, err := maxFlowResidual(g, source, sink)
	if err != nil {
		return 0, nil, err
	}

	return maxFlow, bfsReachable(cap, source), nil
}

func maxFlowResidual(g *core.Graph, source, sink string) (maxFlow int, cap map[string]map[string]int, err error) {
	if !g.HasVertex(source) {
		return 0, nil, ErrSourceNotFound
	}
	if !g.HasVertex(sink) {
		return 0, nil, ErrSinkNotFound
	}

	cap = make(map[string]map[string]int)
	for _, v := range g.Vertices() {
		cap[v] = make(map[string]int)
	}
	for _, e := range g.Edges() {
		cap[e.From][e.To] += 1
		if cap[e.To][e.From] == 0 {
			cap[e.To][e.From] += 0 // ensure the reverse residual edge exists
		}
	}

	for {
		level := bfsLevels(g, cap, source)
		if level[sink] < 0 {
			break
		}
		iter := make(map[string]int)
		for {
			pushed := dfsBlock(g, cap, level, iter, source, sink, 1<<30)
			if pushed == 0 {
				break
			}
			maxFlow += pushed
		}
	}

	return maxFlow, cap, nil
}

// bfsReachable returns the set of vertices reachable from source using only
// edges with positive residual capacity — the source side of a minimum cut
// once cap reflects a converged max-flow computation.
func bfsReachable(cap map[string]map[string]int, source string) map[string]bool {
	reached := map[string]bool{source: true}
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range cap[u] {
			if c > 0 && !reached[v] {
				reached[v] = true
				queue = append(queue, v)
			}
		}
	}

	return reached
}

func bfsLevels(g *core.Graph, cap map[string]map[string]int, source string) map[string]int {
	level := make(map[string]int)
	for _, v := range g.Vertices() {
		level[v] = -1
	}
	level[source] = 0
	queue := []string{source}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for v, c := range cap[u] {
			if c > 0 && level[v] < 0 {
				level[v] = level[u] + 1
				queue = append(queue, v)
			}
		}
	}

	return level
}

func dfsBlock(g *core.Graph, cap map[string]map[string]int, level map[string]int, iter map[string]int, u, sink string, pushed int) int {
	if u == sink {
		return pushed
	}
	neighbors := neighborsOf(cap, u)
	for ; iter[u] < len(neighbors); iter[u]++ {
		v := neighbors[iter[u]]
		if cap[u][v] > 0 && level[v] == level[u]+1 {
			limit := pushed
			if cap[u][v] < limit {
				limit = cap[u][v]
			}
			d := dfsBlock(g, cap, level, iter, v, sink, limit)
			if d > 0 {
				cap[u][v] -= d
				cap[v][u] += d

				return d
			}
		}
	}

	return 0
}

func neighborsOf(cap map[string]map[string]int, u string) []string {
	out := make([]string, 0, len(cap[u]))
	for v := range cap[u] {
		out = append(out, v)
	}

	return out
}
