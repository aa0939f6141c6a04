package builder

import (
	"fmt"

	"github.com/katalvlaran/lvlath/core"
)

// Constructor applies a deterministic mutation to a core.Graph using the
// resolved builderConfig. Constructors must validate parameters early,
// return sentinel errors (never panic), and emit edges in a stable,
// documented order, since that order becomes the ZDD variable order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves a builderConfig from
// opts, and applies cons in order. The first constructor error is
// returned immediately; no partial cleanup is attempted.
func BuildGraph(opts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d", i)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}
