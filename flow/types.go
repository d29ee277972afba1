// Package flow provides a small max-flow primitive used by the
// three-separation stage to search for a genuine 3-element vertex
// separator via Menger's theorem (min vertex cut == max flow in the
// vertex-split incidence graph) and to cross-check that no smaller cut
// survives a candidate nested-minor split — the bipartite-connectivity
// analogue of the flow packages the wider pack (katalvlaran/lvlath) ships
// for network problems.
package flow

import "errors"

// ErrSourceNotFound is returned when the specified source vertex is missing.
var ErrSourceNotFound = errors.New("flow: source vertex not found")

// ErrSinkNotFound is returned when the specified sink vertex is missing.
var ErrSinkNotFound = errors.New("flow: sink vertex not found")
