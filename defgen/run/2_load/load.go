// Package load parses Go packages into DST form for derivation.
package load

import (
	"errors"
	"fmt"
	"go/build"
	"go/token"
	"os"
	"path/filepath"
	"strings"

	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
)

// PackageDST loads a package by import path and returns its DST files and FileSet.
// This is the shared implementation used by all PackageLoader implementations.
// Uses fast DST parsing with no type checking for better performance.
func PackageDST(importPath string) ([]*dst.File, *token.FileSet, error) {
	var dir string

	if importPath == "." {
		var err error

		dir, err = os.Getwd()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get working directory: %w", err)
		}
	} else {
		srcDir, _ := os.Getwd()

		pkg, err := build.Import(importPath, srcDir, build.FindOnly)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to find package %q: %w", importPath, err)
		}

		dir = pkg.Dir
	}

	return DirDST(dir)
}

// DirDST parses every .go file in dir, test files included, and returns the
// DST files and FileSet. Derivation targets commonly live next to the test
// files holding their go:generate directives, so test files always count.
func DirDST(dir string) ([]*dst.File, *token.FileSet, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	goFiles := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".go") {
			continue
		}

		goFiles = append(goFiles, filepath.Join(dir, entry.Name()))
	}

	if len(goFiles) == 0 {
		return nil, nil, fmt.Errorf("%w: no .go files in %s", errNoPackagesFound, dir)
	}

	fset := token.NewFileSet()
	dec := decorator.NewDecorator(fset)

	allFiles := make([]*dst.File, 0, len(goFiles))

	for _, goFile := range goFiles {
		dstFile, err := dec.ParseFile(goFile, nil, 0)
		if err != nil {
			// Skip files with parse errors
			continue
		}

		allFiles = append(allFiles, dstFile)
	}

	if len(allFiles) == 0 {
		return nil, nil, fmt.Errorf(
			"%w: failed to parse any .go files in %s",
			errNoPackagesFound,
			dir,
		)
	}

	return allFiles, fset, nil
}

// unexported variables.
var (
	errNoPackagesFound = errors.New("no packages found")
)
