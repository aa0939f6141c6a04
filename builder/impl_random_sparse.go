package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
)

// RandomSparse returns a Constructor that samples an Erdos-Renyi-like
// graph over n vertices: every unordered pair {i,j}, i<j, is included
// independently with probability p. Pairs are visited in ascending
// (i,j) order for reproducibility given a fixed RNG stream. p==0 and
// p==1 are decided without consulting the RNG; any p strictly between
// requires cfg.rng (set via WithSeed/WithRand).
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if cfg.rng == nil && p > 0.0 && p < 1.0 {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		for i := 0; i < n; i++ {
			if _, err := g.AddVertex(cfg.idFn(i)); err != nil {
				return fmt.Errorf("%s: AddVertex: %w", methodRandomSparse, err)
			}
		}

		for i := 0; i < n; i++ {
			u := cfg.idFn(i)
			for j := i + 1; j < n; j++ {
				include := false
				switch {
				case p <= 0.0:
					include = false
				case p >= 1.0:
					include = true
				default:
					include = cfg.rng.Float64() < p
				}
				if !include {
					continue
				}
				v := cfg.idFn(j)
				if _, err := g.AddEdge(u, v); err != nil {
					return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodRandomSparse, u, v, err)
				}
			}
		}

		return nil
	}
}
