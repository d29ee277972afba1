package core

import (
	"fmt"
)

// EdgeOption overrides per-edge behaviour.
type EdgeOption func(*Edge)

// WithEdgeDirected overrides the graph's default directedness for one edge.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// AddEdge connects from→to, returning the new edge's ID.
// Complexity: O(1).
func (g *Graph) AddEdge(from, to string, opts ...EdgeOption) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[from]; !ok {
		return "", fmt.Errorf("core: AddEdge: %w: %q", ErrVertexNotFound, from)
	}
	if _, ok := g.vertices[to]; !ok {
		return "", fmt.Errorf("core: AddEdge: %w: %q", ErrVertexNotFound, to)
	}
	if from == to && !g.allowLoops {
		return "", ErrLoopNotAllowed
	}

	e := &Edge{
		ID:       fmt.Sprintf("e%d", g.nextEdgeID),
		From:     from,
		To:       to,
		Directed: g.directed,
	}
	for _, opt := range opts {
		opt(e)
	}
	g.nextEdgeID++
	g.edges[e.ID] = e
	g.ensureAdj(from, to)
	g.adjacency[from][to][e.ID] = struct{}{}
	if !e.Directed {
		g.ensureAdj(to, from)
		g.adjacency[to][from][e.ID] = struct{}{}
	}

	return e.ID, nil
}

func (g *Graph) ensureAdj(from, to string) {
	if g.adjacency[from] == nil {
		g.adjacency[from] = make(map[string]map[string]struct{})
	}
	if g.adjacency[from][to] == nil {
		g.adjacency[from][to] = make(map[string]struct{})
	}
}

// Edges returns all edges.
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}

	return out
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}
