// Package core implements the test-default fill engine.
// It produces fully populated instances of arbitrary types using values meant
// for test contexts: string fields carry their own field name, everything else
// carries its zero value unless a per-field tag or a hand-written TestDefault
// method says otherwise.
package core

import (
	"errors"
	"fmt"
	"reflect"
)

// tagName is the struct tag key the engine honors.
// `defaulttest:"-"` leaves a field at its zero value.
// `defaulttest:"unique"` fills an integer field with a sentinel value.
const tagName = "defaulttest"

// Defaulter is the test-default capability. Types opt in by declaring a
// TestDefault method returning a fresh, fully populated instance of
// themselves. Implementations must not fail, block, or share state between
// returned instances.
//
// The engine makes no attempt to satisfy type-internal invariants: an
// email-shaped string field gets its field name, not an address. Types with
// such invariants should implement Defaulter by hand.
//
// Hand-written implementations must not call Make on their own type; the
// dispatch would loop.
type Defaulter[T any] interface {
	TestDefault() T
}

// Make returns a test instance of T.
//
// If T (or *T) implements Defaulter, that implementation wins. Otherwise the
// reflective fill engine builds one: string fields get their own field name,
// numeric and bool fields stay zero (for iota-style variant types that means
// the first declared variant), nested structs recurse, pointers are allocated
// and filled, slices get one placeholder element, maps come back empty but
// non-nil. Channels, funcs, and interface fields are left nil.
func Make[T any](opts ...Option) T {
	var value T

	if defaulter, ok := any(value).(Defaulter[T]); ok {
		return defaulter.TestDefault()
	}

	if defaulter, ok := any(&value).(Defaulter[T]); ok {
		return defaulter.TestDefault()
	}

	filler := newFiller(NewConfig(opts...))

	target := reflect.ValueOf(&value).Elem()
	filler.fill(target, target.Type().Name(), 0)

	return value
}

// Fill populates the value dst points at, following the same policy as Make.
// It errors only on nil or non-pointer input; the fill itself cannot fail.
func Fill(dst any, opts ...Option) error {
	if dst == nil {
		return errNilTarget
	}

	pointer := reflect.ValueOf(dst)
	if pointer.Kind() != reflect.Pointer || pointer.IsNil() {
		return fmt.Errorf("%w: got %T", errNotPointer, dst)
	}

	target := pointer.Elem()

	if fromMethod, ok := defaulterFor(target.Type()); ok {
		target.Set(fromMethod)

		return nil
	}

	filler := newFiller(NewConfig(opts...))
	filler.fill(target, target.Type().Name(), 0)

	return nil
}

// unexported variables.
var (
	errNilTarget  = errors.New("fill target is nil")
	errNotPointer = errors.New("fill target must be a non-nil pointer")
)

// filler carries the state of one fill operation.
type filler struct {
	cfg       Config
	sentinels *sentinelSource
	// visiting tracks struct types on the current recursion path so that
	// self-referential pointer chains terminate with a nil pointer.
	visiting map[reflect.Type]bool
}

// newFiller builds a filler for one fill operation.
func newFiller(cfg Config) *filler {
	return &filler{
		cfg:       cfg,
		sentinels: newSentinelSource(cfg),
		visiting:  make(map[reflect.Type]bool),
	}
}

// fill populates value according to the placeholder policy. The name is the
// field name at this position (or the type name at the top level) and becomes
// the content of string values.
//
//nolint:cyclop // Kind-switch dispatcher; complexity is inherent
func (f *filler) fill(value reflect.Value, name string, depth int) {
	if !value.CanSet() || depth > f.cfg.maxDepth {
		return
	}

	if fromMethod, ok := defaulterFor(value.Type()); ok {
		value.Set(fromMethod)

		return
	}

	switch value.Kind() {
	case reflect.String:
		value.SetString(name)
	case reflect.Struct:
		f.fillStruct(value, depth)
	case reflect.Pointer:
		f.fillPointer(value, name, depth)
	case reflect.Slice:
		f.fillSlice(value, name, depth)
	case reflect.Array:
		for i := range value.Len() {
			f.fill(value.Index(i), name, depth+1)
		}
	case reflect.Map:
		// Empty but non-nil: there is no self-describing key policy.
		value.Set(reflect.MakeMap(value.Type()))
	default:
		// Bools, numerics, channels, funcs, and interfaces keep their
		// zero values. For iota-style variant types the zero value is
		// the first declared variant.
	}
}

// fillStruct populates every settable field of a struct value.
func (f *filler) fillStruct(value reflect.Value, depth int) {
	structType := value.Type()

	f.visiting[structType] = true
	defer delete(f.visiting, structType)

	for i := range structType.NumField() {
		field := structType.Field(i)
		fieldValue := value.Field(i)

		switch field.Tag.Get(tagName) {
		case "-":
			continue
		case "unique":
			if setSentinel(fieldValue, f.sentinels) {
				continue
			}
		}

		f.fill(fieldValue, field.Name, depth+1)
	}
}

// fillPointer allocates and fills the pointed-at value, leaving the pointer
// nil when the target struct type is already on the recursion path.
func (f *filler) fillPointer(value reflect.Value, name string, depth int) {
	elemType := value.Type().Elem()
	if f.visiting[elemType] {
		return
	}

	value.Set(reflect.New(elemType))
	f.fill(value.Elem(), name, depth+1)
}

// fillSlice builds either a singleton slice holding one filled element or,
// under CollectionsEmpty, an empty non-nil slice.
func (f *filler) fillSlice(value reflect.Value, name string, depth int) {
	if f.cfg.collectionsEmpty {
		value.Set(reflect.MakeSlice(value.Type(), 0, 0))

		return
	}

	singleton := reflect.MakeSlice(value.Type(), 1, 1)
	f.fill(singleton.Index(0), name, depth+1)
	value.Set(singleton)
}

// defaulterFor reports whether want declares a TestDefault method (on the
// value or its pointer type) returning want, and calls it on a zero receiver
// if so. This is how the engine dispatches to hand-written or generated
// implementations for nested fields, where the generic assertion in Make
// cannot reach.
func defaulterFor(want reflect.Type) (reflect.Value, bool) {
	if result, ok := callTestDefault(want, want); ok {
		return result, true
	}

	if want.Kind() == reflect.Pointer {
		return reflect.Value{}, false
	}

	return callTestDefault(reflect.PointerTo(want), want)
}

// callTestDefault looks up TestDefault on the receiver type and invokes it on
// a freshly allocated zero receiver when the signature matches
// `func () want`.
func callTestDefault(receiver, want reflect.Type) (reflect.Value, bool) {
	method, ok := receiver.MethodByName("TestDefault")
	if !ok {
		return reflect.Value{}, false
	}

	methodType := method.Func.Type()
	if methodType.NumIn() != 1 || methodType.NumOut() != 1 || methodType.Out(0) != want {
		return reflect.Value{}, false
	}

	zero := reflect.New(want)

	receiverValue := zero.Elem()
	if receiver.Kind() == reflect.Pointer && want.Kind() != reflect.Pointer {
		receiverValue = zero
	}

	return method.Func.Call([]reflect.Value{receiverValue})[0], true
}

// setSentinel fills an integer-kinded field with the next sentinel value.
// It reports false for non-integer fields, and for fields too narrow to hold
// the current counter value, so they fall through to the ordinary policy
// instead of silently truncating.
func setSentinel(value reflect.Value, sentinels *sentinelSource) bool {
	//nolint:exhaustive // Only integer kinds can carry a sentinel
	switch value.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		next := int64(sentinels.next()) //nolint:gosec // Overflow is checked below

		if value.OverflowInt(next) {
			return false
		}

		value.SetInt(next)

		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		next := sentinels.next()
		if value.OverflowUint(next) {
			return false
		}

		value.SetUint(next)

		return true
	default:
		return false
	}
}
