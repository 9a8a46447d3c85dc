// Package generate renders TestDefault method source for a detected struct.
package generate

import (
	"errors"
	"fmt"
	"go/format"
	"slices"
	"sort"
	"strings"

	"github.com/dave/dst"

	astutil "github.com/toejough/defaulttest/defgen/run/0_util"
	detect "github.com/toejough/defaulttest/defgen/run/3_detect"
)

// runtimeImportPath is the import path of the runtime package generated code
// leans on for non-literal field values.
const runtimeImportPath = "github.com/toejough/defaulttest"

// Options carries the knobs that shape generated code.
type Options struct {
	PkgName          string
	EmptyCollections bool
}

// Code renders the generated file source for the struct's TestDefault method.
// The fill policy matches the reflective engine: string fields get their own
// field names, numerics and bools get zero literals, nested types delegate to
// the runtime Make, slices get a singleton element (or an empty literal under
// EmptyCollections), and maps get empty literals. Fields the policy cannot
// fill (channels, funcs, interfaces, self-references) are omitted from the
// composite literal and stay zero.
func Code(details detect.StructWithDetails, opts Options) (string, error) {
	renderer := &methodRenderer{details: details, opts: opts}

	entries := renderer.fieldEntries()

	imports, err := renderer.importBlock()
	if err != nil {
		return "", err
	}

	var buf strings.Builder

	buf.WriteString("// Code generated by defgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", packageClause(opts.PkgName))
	buf.WriteString(imports)

	fmt.Fprintf(&buf, "// TestDefault returns a %s populated with test placeholder values:\n", details.TypeName)
	buf.WriteString("// string fields carry their own field names, other fields carry\n")
	buf.WriteString("// type-appropriate defaults.\n")
	fmt.Fprintf(&buf, "func (%s) TestDefault() %s {\n", details.TypeName, details.TypeName)
	fmt.Fprintf(&buf, "\treturn %s{\n", details.TypeName)

	for _, entry := range entries {
		fmt.Fprintf(&buf, "\t\t%s: %s,\n", entry.key, entry.value)
	}

	buf.WriteString("\t}\n}\n")

	formatted, err := format.Source([]byte(buf.String()))
	if err != nil {
		return "", fmt.Errorf("generated code does not format: %w", err)
	}

	return string(formatted), nil
}

// fieldEntry is one key/value pair of the generated composite literal.
type fieldEntry struct {
	key   string
	value string
}

// methodRenderer accumulates the runtime-import flag and qualifier usage
// while rendering field values.
type methodRenderer struct {
	details detect.StructWithDetails
	opts    Options

	usesRuntime bool
	qualifiers  []string
}

// fieldEntries renders the composite literal entries for every fillable field.
func (r *methodRenderer) fieldEntries() []fieldEntry {
	entries := make([]fieldEntry, 0, len(r.details.Fields))

	for _, field := range r.details.Fields {
		if field.Tag == "-" {
			continue
		}

		value, ok := r.valueFor(field)
		if !ok {
			continue
		}

		entries = append(entries, fieldEntry{key: field.Name, value: value})
	}

	return entries
}

// importBlock renders the import declaration for the generated file.
func (r *methodRenderer) importBlock() (string, error) {
	paths := make([]string, 0, len(r.qualifiers)+1)

	if r.usesRuntime {
		paths = append(paths, runtimeImportPath)
	}

	for _, qualifier := range r.qualifiers {
		path, ok := detect.ImportPathForQualifier(r.details.SourceImports, qualifier)
		if !ok {
			return "", fmt.Errorf("%w: %s", errUnknownQualifier, qualifier)
		}

		paths = append(paths, path)
	}

	if len(paths) == 0 {
		return "", nil
	}

	sort.Strings(paths)

	var buf strings.Builder

	buf.WriteString("import (\n")

	for _, path := range paths {
		fmt.Fprintf(&buf, "\t%q\n", path)
	}

	buf.WriteString(")\n\n")

	return buf.String(), nil
}

// valueFor renders the literal value for one field, reporting false when the
// field should be omitted and left at its zero value.
//
//nolint:cyclop // Type-switch dispatcher over field type shapes; complexity is inherent
func (r *methodRenderer) valueFor(field detect.Field) (string, bool) {
	if field.Tag == "unique" {
		if value, ok := r.sentinelValue(field.Type); ok {
			return value, true
		}
	}

	switch typed := field.Type.(type) {
	case *dst.Ident:
		return r.identValue(typed.Name, field.Name)
	case *dst.SelectorExpr:
		return r.makeValue(field.Type)
	case *dst.StarExpr:
		return r.pointerValue(typed, field.Name)
	case *dst.ArrayType:
		if typed.Len == nil {
			return r.sliceValue(typed, field.Name)
		}

		// Sized arrays stay zero: the generator is syntactic and cannot
		// name a placeholder for every element position.
		return "", false
	case *dst.MapType:
		if mentionsType(typed.Key, r.details.TypeName) || mentionsType(typed.Value, r.details.TypeName) {
			return "", false
		}

		return astutil.StringifyExpr(typed) + "{}", true
	default:
		// Channels, funcs, interface literals, and anonymous structs
		// stay zero.
		return "", false
	}
}

// identValue renders the value for a field with a plain identifier type.
func (r *methodRenderer) identValue(typeName, fieldName string) (string, bool) {
	switch {
	case typeName == "string":
		return fmt.Sprintf("%q", fieldName), true
	case typeName == "bool":
		return "false", true
	case numericBuiltins[typeName]:
		return "0", true
	case typeName == "error" || typeName == "any":
		return "", false
	case typeName == r.details.TypeName:
		// Self-referential fields stay zero; deriving them would loop.
		return "", false
	default:
		r.usesRuntime = true

		return fmt.Sprintf("defaulttest.Make[%s]()", typeName), true
	}
}

// makeValue renders a runtime Make call for the given type expression.
func (r *methodRenderer) makeValue(expr dst.Expr) (string, bool) {
	if mentionsType(expr, r.details.TypeName) {
		return "", false
	}

	r.usesRuntime = true
	r.noteQualifiers(expr)

	return fmt.Sprintf("defaulttest.Make[%s]()", astutil.StringifyExpr(expr)), true
}

// noteQualifiers records package qualifiers used by a rendered expression.
func (r *methodRenderer) noteQualifiers(expr dst.Expr) {
	for _, qualifier := range astutil.Qualifiers(expr) {
		if !slices.Contains(r.qualifiers, qualifier) {
			r.qualifiers = append(r.qualifiers, qualifier)
		}
	}
}

// pointerValue renders the value for a pointer-typed field.
func (r *methodRenderer) pointerValue(star *dst.StarExpr, fieldName string) (string, bool) {
	if mentionsType(star.X, r.details.TypeName) {
		return "", false
	}

	if ident, ok := star.X.(*dst.Ident); ok {
		switch {
		case ident.Name == "string":
			r.usesRuntime = true

			return fmt.Sprintf("defaulttest.Ptr(%q)", fieldName), true
		case ident.Name == "bool":
			r.usesRuntime = true

			return "defaulttest.Ptr(false)", true
		case ident.Name == "int":
			r.usesRuntime = true

			return "defaulttest.Ptr(0)", true
		case numericBuiltins[ident.Name]:
			r.usesRuntime = true

			return fmt.Sprintf("defaulttest.Ptr(%s(0))", ident.Name), true
		}
	}

	inner, ok := r.makeValue(star.X)
	if !ok {
		return "", false
	}

	return fmt.Sprintf("defaulttest.Ptr(%s)", inner), true
}

// sentinelValue renders a unique-sentinel value for integer-typed fields.
func (r *methodRenderer) sentinelValue(expr dst.Expr) (string, bool) {
	ident, ok := expr.(*dst.Ident)
	if !ok || !integerBuiltins[ident.Name] {
		return "", false
	}

	r.usesRuntime = true

	return fmt.Sprintf("%s(defaulttest.NextSentinel())", ident.Name), true
}

// sliceValue renders the value for a slice-typed field.
func (r *methodRenderer) sliceValue(slice *dst.ArrayType, fieldName string) (string, bool) {
	elemString := astutil.StringifyExpr(slice.Elt)

	if mentionsType(slice.Elt, r.details.TypeName) {
		return "[]" + elemString + "{}", true
	}

	if ident, ok := slice.Elt.(*dst.Ident); ok && ident.Name == "byte" {
		if r.opts.EmptyCollections {
			return "[]byte{}", true
		}

		return fmt.Sprintf("[]byte(%q)", fieldName), true
	}

	if r.opts.EmptyCollections {
		r.noteQualifiers(slice.Elt)

		return "[]" + elemString + "{}", true
	}

	element, ok := r.sliceElementValue(slice.Elt, fieldName)
	if !ok {
		return "[]" + elemString + "{}", true
	}

	return fmt.Sprintf("[]%s{%s}", elemString, element), true
}

// sliceElementValue renders the single placeholder element of a singleton
// slice.
func (r *methodRenderer) sliceElementValue(elem dst.Expr, fieldName string) (string, bool) {
	if ident, ok := elem.(*dst.Ident); ok {
		switch {
		case ident.Name == "string":
			return fmt.Sprintf("%q", fieldName), true
		case ident.Name == "bool":
			return "false", true
		case numericBuiltins[ident.Name]:
			return "0", true
		case ident.Name == "error" || ident.Name == "any":
			return "", false
		}
	}

	return r.makeValue(elem)
}

// unexported variables.
var (
	errUnknownQualifier = errors.New("cannot resolve import for package qualifier")

	//nolint:gochecknoglobals // Lookup table for builtin numeric type names
	numericBuiltins = map[string]bool{
		"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
		"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
		"uintptr": true, "byte": true, "rune": true,
		"float32": true, "float64": true, "complex64": true, "complex128": true,
	}

	//nolint:gochecknoglobals // Lookup table for builtin integer type names
	integerBuiltins = map[string]bool{
		"int": true, "int8": true, "int16": true, "int32": true, "int64": true,
		"uint": true, "uint8": true, "uint16": true, "uint32": true, "uint64": true,
		"uintptr": true, "byte": true, "rune": true,
	}
)

// mentionsType reports whether the type expression references the given type
// name anywhere. Used to keep generated code from recursing into itself.
func mentionsType(expr dst.Expr, typeName string) bool {
	switch typed := expr.(type) {
	case *dst.Ident:
		return typed.Name == typeName
	case *dst.StarExpr:
		return mentionsType(typed.X, typeName)
	case *dst.ArrayType:
		return mentionsType(typed.Elt, typeName)
	case *dst.MapType:
		return mentionsType(typed.Key, typeName) || mentionsType(typed.Value, typeName)
	case *dst.ChanType:
		return mentionsType(typed.Value, typeName)
	case *dst.ParenExpr:
		return mentionsType(typed.X, typeName)
	case *dst.IndexExpr:
		return mentionsType(typed.X, typeName) || mentionsType(typed.Index, typeName)
	default:
		return false
	}
}

// packageClause strips a trailing _test suffix: the generated method must
// live in the package proper even when the directive sits in a test file.
func packageClause(pkgName string) string {
	return strings.TrimSuffix(pkgName, "_test")
}
