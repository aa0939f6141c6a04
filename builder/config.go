package builder

import "math/rand"

// BuilderOption customizes the builderConfig used by a Constructor.
type BuilderOption func(cfg *builderConfig)

// builderConfig holds the resolved, per-call configuration shared by all
// constructors in one BuildGraph invocation.
type builderConfig struct {
	rng  *rand.Rand // optional RNG; nil means deterministic-only constructors may run
	idFn IDFn       // index -> vertex label
}

// newBuilderConfig returns a builderConfig seeded with defaults, then
// applies each BuilderOption in order; later options override earlier ones.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:  nil,
		idFn: DefaultIDFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithIDScheme injects a custom IDFn. A nil idFn is a no-op.
func WithIDScheme(idFn IDFn) BuilderOption {
	return func(cfg *builderConfig) {
		if idFn != nil {
			cfg.idFn = idFn
		}
	}
}

// WithRand sets an explicit RNG source. A nil rng is a no-op.
func WithRand(rng *rand.Rand) BuilderOption {
	return func(cfg *builderConfig) {
		if rng != nil {
			cfg.rng = rng
		}
	}
}

// WithSeed seeds a fresh RNG for reproducible RandomSparse sampling.
func WithSeed(seed int64) BuilderOption {
	return func(cfg *builderConfig) {
		cfg.rng = rand.New(rand.NewSource(seed))
	}
}
