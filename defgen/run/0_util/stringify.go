// Package astutil provides shared utilities for rendering DST type expressions.
package astutil

import (
	"fmt"
	"strings"

	"github.com/dave/dst"
)

// StringifyExpr converts a DST type expression to its source representation.
//
//nolint:cyclop // Type-switch dispatcher handling all DST expression types; complexity is inherent
func StringifyExpr(expr dst.Expr) string {
	if expr == nil {
		return ""
	}

	switch typedExpr := expr.(type) {
	case *dst.Ident:
		return typedExpr.Name
	case *dst.BasicLit:
		return typedExpr.Value
	case *dst.SelectorExpr:
		return StringifyExpr(typedExpr.X) + "." + typedExpr.Sel.Name
	case *dst.StarExpr:
		return "*" + StringifyExpr(typedExpr.X)
	case *dst.ArrayType:
		if typedExpr.Len != nil {
			return "[" + StringifyExpr(typedExpr.Len) + "]" + StringifyExpr(typedExpr.Elt)
		}

		return "[]" + StringifyExpr(typedExpr.Elt)
	case *dst.MapType:
		return "map[" + StringifyExpr(typedExpr.Key) + "]" + StringifyExpr(typedExpr.Value)
	case *dst.ChanType:
		switch typedExpr.Dir {
		case dst.SEND:
			return "chan<- " + StringifyExpr(typedExpr.Value)
		case dst.RECV:
			return "<-chan " + StringifyExpr(typedExpr.Value)
		default:
			return "chan " + StringifyExpr(typedExpr.Value)
		}
	case *dst.IndexExpr:
		return StringifyExpr(typedExpr.X) + "[" + StringifyExpr(typedExpr.Index) + "]"
	case *dst.IndexListExpr:
		indices := make([]string, len(typedExpr.Indices))
		for i, idx := range typedExpr.Indices {
			indices[i] = StringifyExpr(idx)
		}

		return StringifyExpr(typedExpr.X) + "[" + strings.Join(indices, ", ") + "]"
	case *dst.ParenExpr:
		return "(" + StringifyExpr(typedExpr.X) + ")"
	default:
		return fmt.Sprintf("%T", expr)
	}
}

// Qualifiers collects the package qualifiers (the "time" in "time.Time")
// referenced anywhere in a type expression, in first-seen order.
func Qualifiers(expr dst.Expr) []string {
	var found []string

	seen := make(map[string]bool)

	var walk func(dst.Expr)

	walk = func(e dst.Expr) {
		switch typed := e.(type) {
		case *dst.SelectorExpr:
			if ident, ok := typed.X.(*dst.Ident); ok && !seen[ident.Name] {
				seen[ident.Name] = true
				found = append(found, ident.Name)
			}
		case *dst.StarExpr:
			walk(typed.X)
		case *dst.ArrayType:
			walk(typed.Elt)
		case *dst.MapType:
			walk(typed.Key)
			walk(typed.Value)
		case *dst.ChanType:
			walk(typed.Value)
		case *dst.ParenExpr:
			walk(typed.X)
		case *dst.IndexExpr:
			walk(typed.X)
			walk(typed.Index)
		case *dst.IndexListExpr:
			walk(typed.X)

			for _, idx := range typed.Indices {
				walk(idx)
			}
		}
	}

	walk(expr)

	return found
}
