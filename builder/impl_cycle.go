// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/cmr/core"
)

// Cycle builds the simple cycle C_n directly into g: vertices v0..v(n-1)
// joined v0-v1-...-v(n-1)-v0.
func Cycle(g *core.Graph, n int) error {
	if n < minCycleNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}

	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = vertexID(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodCycle, ids[i], err)
		}
	}

	for i := 0; i < n; i++ {
		j := (i + 1) % n
		if _, err := g.AddEdge(ids[i], ids[j]); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodCycle, ids[i], ids[j], err)
		}
	}

	return nil
}
