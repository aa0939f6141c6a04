package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodWheel    = "Wheel"
	minWheelNodes  = 4 // outer ring Cycle(n-1) needs n-1 >= 3
	centerVertexID = "Center"
)

// Wheel returns a Constructor that builds W_n = C_{n-1} plus a hub vertex
// "Center" connected by a spoke to every ring vertex, spokes emitted in
// ascending ring index after the ring edges.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: base cycle C_%d: %w", methodWheel, n-1, err)
		}

		if _, err := g.AddVertex(centerVertexID); err != nil {
			return fmt.Errorf("%s: AddVertex(%s): %w", methodWheel, centerVertexID, err)
		}

		for i := 0; i < n-1; i++ {
			rim := cfg.idFn(i)
			if _, err := g.AddEdge(centerVertexID, rim); err != nil {
				return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodWheel, centerVertexID, rim, err)
			}
		}

		return nil
	}
}
