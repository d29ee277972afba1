// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/cmr/core"
)

// Complete builds the complete simple graph K_n directly into g: vertices
// v0..v(n-1), and every unordered pair {i,j}, i<j, joined exactly once.
func Complete(g *core.Graph, n int) error {
	if n < minCompleteNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodComplete, ids[i], err)
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodComplete, ids[i], ids[j], err)
			}
		}
	}

	return nil
}
