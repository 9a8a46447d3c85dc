package core

import "sync/atomic"

// unexported variables.
var (
	//nolint:gochecknoglobals // Process-wide counter backing unique placeholder values
	sentinelCounter atomic.Uint64
)

// NextSentinel returns the next value from the process-wide sentinel counter.
// Each call yields a distinct value, making sentinel-filled fields
// distinguishable across instances. Generated code uses this for fields
// tagged `defaulttest:"unique"`.
func NextSentinel() uint64 {
	return sentinelCounter.Add(1)
}

// sentinelSource yields sentinel values for one fill operation.
// A deterministic source counts locally from the configured base;
// otherwise values come from the process-wide counter.
type sentinelSource struct {
	local  uint64
	pinned bool
}

// newSentinelSource builds the sentinel source for one fill operation.
func newSentinelSource(cfg Config) *sentinelSource {
	if cfg.deterministic {
		return &sentinelSource{local: cfg.sentinelBase, pinned: true}
	}

	return &sentinelSource{}
}

// next yields the next sentinel value.
func (s *sentinelSource) next() uint64 {
	if s.pinned {
		value := s.local
		s.local++

		return value
	}

	return NextSentinel()
}
