package zdd

// Option configures a Build call.
type Option func(cfg *buildConfig)

// ProgressFunc is invoked once per internal node created, in creation
// order, the hook point the CLI's --show flag attaches to for
// progress diagnostics (spec.md §6 CLI surface).
type ProgressFunc func(nodesCreated int)

type buildConfig struct {
	progress ProgressFunc
}

func newBuildConfig(opts ...Option) buildConfig {
	cfg := buildConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithProgress registers fn to be called after every node creation
// during Build. A nil fn disables progress reporting (the default).
func WithProgress(fn ProgressFunc) Option {
	return func(cfg *buildConfig) {
		cfg.progress = fn
	}
}
