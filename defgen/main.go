// defaulttest/defgen is a tool to derive TestDefault methods for Go structs.
// To use it, install it with `go install github.com/toejough/defaulttest/defgen@latest`
// and in your test files, add a `//go:generate defgen <struct>` comment to derive a
// TestDefault method for the specified struct. The generated method fills string fields
// with their own field names and other fields with type-appropriate defaults. The
// generated code is placed in a file named generated_<struct>TestDefault_test.go, in the
// same package as the test file containing the `//go:generate` comment.
package main

import (
	"fmt"
	"go/token"
	"os"

	"github.com/dave/dst"
	"github.com/toejough/defaulttest/defgen/run"
	load "github.com/toejough/defaulttest/defgen/run/2_load"
)

// main is the entry point of the defgen tool.
func main() {
	if os.Args == nil {
		return
	}

	err := run.Run(os.Args, os.Getenv, &realFileSystem{}, &realPackageLoader{}, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// realFileSystem implements FileSystem using os package.
type realFileSystem struct{}

// WriteFile writes data to the file named by name.
func (fs *realFileSystem) WriteFile(name string, data []byte, perm os.FileMode) error {
	err := os.WriteFile(name, data, perm)
	if err != nil {
		return fmt.Errorf("failed to write file %s: %w", name, err)
	}

	return nil
}

// realPackageLoader implements PackageLoader using direct DST parsing.
type realPackageLoader struct{}

// Load loads a package by import path and returns its DST files and FileSet.
// Uses the shared load.PackageDST function for direct DST parsing with no type checking.
func (pl *realPackageLoader) Load(importPath string) ([]*dst.File, *token.FileSet, error) {
	files, fset, err := load.PackageDST(importPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load package %q: %w", importPath, err)
	}

	return files, fset, nil
}
