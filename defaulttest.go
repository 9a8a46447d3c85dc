// Package defaulttest provides test-oriented default values for Go types.
//
// Tests often need to construct mock instances of structs:
//
//	type User struct {
//		ID     int
//		Name   string
//		Email  string
//		Active bool
//	}
//
// Defining a production Default for that is tempting, but tests frequently
// need mock values that should never appear in production code, and sometimes
// need values for types that have no sensible default at all. This package
// provides Defaulter, a capability types implement to supply default
// instances with mock values, and Make, which dispatches to an
// implementation or fills the type reflectively. Tests construct a base
// instance and override the fields they care about:
//
//	user := defaulttest.Make[User]()
//	user.ID = 99
//
// This keeps tests stable: adding a field to a struct no longer ripples
// through every test that constructs one.
//
// Implementations can be written by hand, derived reflectively by Make, or
// generated at build time with the defgen tool in this module.
//
// This is the public API entry point. Implementation lives in internal/core.
package defaulttest

import (
	"github.com/toejough/defaulttest/internal/core"
)

// Defaulter is the test-default capability: one method producing a fresh,
// fully populated instance of the implementing type using values meant only
// for test contexts. Implementations must not fail or block, must not share
// state between returned instances, and by convention are deterministic
// within a process.
type Defaulter[T any] = core.Defaulter[T]

// Option configures how Make and Fill populate values.
type Option = core.Option

// CollectionsEmpty makes slice fields fill as empty non-nil containers
// instead of the default singleton-with-placeholder policy.
func CollectionsEmpty() Option {
	return core.CollectionsEmpty()
}

// Deterministic pins sentinel values to a per-call counter so repeated calls
// yield field-for-field equal instances.
func Deterministic() Option {
	return core.Deterministic()
}

// Fill populates the struct dst points at, following the same policy as
// Make. It errors only on nil or non-pointer input.
func Fill(dst any, opts ...Option) error {
	//nolint:wrapcheck // Thin re-export; core errors are this package's errors
	return core.Fill(dst, opts...)
}

// Make returns a test instance of T. If T implements Defaulter, that
// implementation wins; otherwise string fields get their own field name,
// other fields get their zero value, nested structs recurse, slices get one
// placeholder element, and maps come back empty but non-nil.
func Make[T any](opts ...Option) T {
	return core.Make[T](opts...)
}

// MakeWith returns a test instance of T with the override applied: structural
// override construction in one expression. Fields the override does not touch
// keep the produced instance's values.
func MakeWith[T any](override func(*T), opts ...Option) T {
	value := core.Make[T](opts...)

	if override != nil {
		override(&value)
	}

	return value
}

// MaxDepth caps recursion into nested struct, pointer, and element types.
func MaxDepth(depth int) Option {
	return core.MaxDepth(depth)
}

// NextSentinel returns the next value from the process-wide sentinel counter.
// Generated code uses this for fields tagged `defaulttest:"unique"`.
func NextSentinel() uint64 {
	return core.NextSentinel()
}

// Ptr returns a pointer to v. A convenience for populating pointer fields in
// override literals and generated code.
func Ptr[T any](v T) *T {
	return &v
}

// SentinelBase sets the first value the per-call sentinel counter yields.
// Only meaningful together with Deterministic.
func SentinelBase(base uint64) Option {
	return core.SentinelBase(base)
}
