package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
	gridIDFmt  = "%d,%d"
)

// Grid returns a Constructor that builds a rows x cols orthogonal grid
// with 4-neighborhood adjacency. Vertex labels use the fixed "r,c" scheme
// (row-major), a deliberate exception to cfg.idFn so coordinates stay
// legible in dumps. Vertices are added row-major; each cell then emits
// an edge to its right neighbor, then its bottom neighbor, if present.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be >= %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := fmt.Sprintf(gridIDFmt, r, c)
				if _, err := g.AddVertex(id); err != nil {
					return fmt.Errorf("%s: AddVertex(%s): %w", methodGrid, id, err)
				}
			}
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := fmt.Sprintf(gridIDFmt, r, c)

				if c+1 < cols {
					v := fmt.Sprintf(gridIDFmt, r, c+1)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
				if r+1 < rows {
					v := fmt.Sprintf(gridIDFmt, r+1, c)
					if _, err := g.AddEdge(u, v); err != nil {
						return fmt.Errorf("%s: AddEdge(%s-%s): %w", methodGrid, u, v, err)
					}
				}
			}
		}

		return nil
	}
}
