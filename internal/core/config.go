package core

// defaultMaxDepth bounds recursion into nested structs. Beyond the bound,
// fields are left at their zero values.
const defaultMaxDepth = 8

// Config holds the resolved settings for a single fill operation.
// Zero-value Config is not usable directly; build one with NewConfig.
type Config struct {
	collectionsEmpty bool
	deterministic    bool
	sentinelBase     uint64
	maxDepth         int
}

// Option configures a fill operation.
type Option func(*Config)

// NewConfig resolves options into a Config with defaults applied.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		collectionsEmpty: false,
		deterministic:    false,
		sentinelBase:     1,
		maxDepth:         defaultMaxDepth,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// CollectionsEmpty makes slice fields fill as empty (but non-nil) containers
// instead of the default singleton-with-placeholder-element policy.
func CollectionsEmpty() Option {
	return func(cfg *Config) {
		cfg.collectionsEmpty = true
	}
}

// Deterministic pins sentinel values to a per-call counter starting at the
// sentinel base, so repeated calls produce field-for-field equal instances.
// Without this option, sentinel values come from a process-wide counter and
// are unique across calls.
func Deterministic() Option {
	return func(cfg *Config) {
		cfg.deterministic = true
	}
}

// SentinelBase sets the first value the per-call sentinel counter yields.
// Only meaningful together with Deterministic.
func SentinelBase(base uint64) Option {
	return func(cfg *Config) {
		cfg.sentinelBase = base
	}
}

// MaxDepth caps recursion into nested struct, pointer, and element types.
// Values below 1 are ignored.
func MaxDepth(depth int) Option {
	return func(cfg *Config) {
		if depth >= 1 {
			cfg.maxDepth = depth
		}
	}
}
