// Package sentinels demonstrates the tag hooks: `defaulttest:"unique"`
// draws a fresh sentinel per instance, and `defaulttest:"-"` skips a
// field entirely.
package sentinels

// Event is derived; its generated method draws sentinels at call time.
type Event struct {
	ID      uint64 `defaulttest:"unique"`
	TraceID int64  `defaulttest:"unique"`
	Name    string
	Secret  string `defaulttest:"-"`
}

// Span is filled reflectively; it honors Deterministic and SentinelBase.
type Span struct {
	ID   uint64 `defaulttest:"unique"`
	Name string
}
