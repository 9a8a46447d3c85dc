// Package detect finds struct declarations and extracts their field lists.
package detect

import (
	"errors"
	"fmt"
	"go/token"
	"reflect"
	"strings"

	"github.com/dave/dst"
)

// Field holds one declared struct field, expanded so that multi-name
// declarations like "Name, Email string" yield one Field per name.
type Field struct {
	Name     string
	Type     dst.Expr
	Tag      string // value of the defaulttest tag key, "" when absent
	Embedded bool
}

// PackageLoader defines an interface for loading Go packages.
type PackageLoader interface {
	Load(importPath string) ([]*dst.File, *token.FileSet, error)
}

// StructWithDetails holds the detected struct type information needed for
// derivation.
type StructWithDetails struct {
	TypeName      string
	Fields        []Field
	SourceImports []*dst.ImportSpec // imports from the file containing the struct
}

// Struct finds the named struct type declaration in the given files and
// returns its ordered field list.
func Struct(astFiles []*dst.File, structName string) (StructWithDetails, error) {
	// A qualified name like "pkg.User" can never match a local declaration,
	// and Go cannot attach a method to another package's type anyway.
	if strings.Contains(structName, ".") {
		return StructWithDetails{}, fmt.Errorf("%w: %s", errForeignStruct, structName)
	}

	for _, file := range astFiles {
		structType, found := findStructInFile(file, structName)
		if !found {
			continue
		}

		details := StructWithDetails{
			TypeName:      structName,
			Fields:        expandFields(structType),
			SourceImports: file.Imports,
		}

		return details, nil
	}

	return StructWithDetails{}, fmt.Errorf("%w: %s", errStructNotFound, structName)
}

// ImportPathForQualifier resolves a package qualifier (as written in a field
// type like "time.Time") to its import path, using the imports of the file
// that declared the struct.
func ImportPathForQualifier(imports []*dst.ImportSpec, qualifier string) (string, bool) {
	for _, imp := range imports {
		path := strings.Trim(imp.Path.Value, `"`)

		if imp.Name != nil {
			if imp.Name.Name == qualifier {
				return path, true
			}

			continue
		}

		if lastPathElement(path) == qualifier {
			return path, true
		}
	}

	return "", false
}

// unexported variables.
var (
	errForeignStruct  = errors.New("derivation target must be a type declared in the calling package")
	errStructNotFound = errors.New("struct type not found")
)

// expandFields flattens a struct's field list into one Field per declared
// name. Embedded fields get their type's local name.
func expandFields(structType *dst.StructType) []Field {
	if structType.Fields == nil {
		return nil
	}

	fields := make([]Field, 0, len(structType.Fields.List))

	for _, field := range structType.Fields.List {
		tag := tagValue(field.Tag)

		if len(field.Names) == 0 {
			name, ok := embeddedFieldName(field.Type)
			if !ok {
				continue
			}

			fields = append(fields, Field{Name: name, Type: field.Type, Tag: tag, Embedded: true})

			continue
		}

		for _, name := range field.Names {
			fields = append(fields, Field{Name: name.Name, Type: field.Type, Tag: tag, Embedded: false})
		}
	}

	return fields
}

// embeddedFieldName resolves the implicit field name of an embedded type.
func embeddedFieldName(expr dst.Expr) (string, bool) {
	switch typed := expr.(type) {
	case *dst.Ident:
		return typed.Name, true
	case *dst.SelectorExpr:
		return typed.Sel.Name, true
	case *dst.StarExpr:
		return embeddedFieldName(typed.X)
	default:
		return "", false
	}
}

// findStructInFile scans one file's declarations for the named struct type.
func findStructInFile(file *dst.File, structName string) (*dst.StructType, bool) {
	for _, decl := range file.Decls {
		genDecl, ok := decl.(*dst.GenDecl)
		if !ok || genDecl.Tok != token.TYPE {
			continue
		}

		for _, spec := range genDecl.Specs {
			typeSpec, ok := spec.(*dst.TypeSpec)
			if !ok || typeSpec.Name.Name != structName {
				continue
			}

			structType, ok := typeSpec.Type.(*dst.StructType)
			if !ok {
				continue
			}

			return structType, true
		}
	}

	return nil, false
}

// lastPathElement returns the final element of an import path.
func lastPathElement(path string) string {
	if idx := strings.LastIndex(path, "/"); idx >= 0 {
		return path[idx+1:]
	}

	return path
}

// tagValue extracts the defaulttest key from a raw struct tag literal.
func tagValue(tag *dst.BasicLit) string {
	if tag == nil {
		return ""
	}

	return reflect.StructTag(strings.Trim(tag.Value, "`")).Get("defaulttest")
}
