// SPDX-License-Identifier: MIT
package builder

import (
	"fmt"

	"github.com/katalvlaran/cmr/core"
)

// Wheel builds the wheel W_n = C_(n-1) + "Center" directly into g: an outer
// rim cycle of size (n-1), plus a hub vertex spoked to every rim vertex.
// W_4 is the graph of the W3 wheel minor that seeds the nested-minor
// sequence; the decomposition stages do not call this constructor.
func Wheel(g *core.Graph, n int) error {
	if n < minWheelNodes {
		return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
	}

	if err := Cycle(g, n-1); err != nil {
		return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
	}

	if err := g.AddVertex(centerVertexID); err != nil {
		return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
	}

	for i := 0; i < n-1; i++ {
		rim := vertexID(i)
		if _, err := g.AddEdge(centerVertexID, rim); err != nil {
			return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodWheel, centerVertexID, rim, err)
		}
	}

	return nil
}
