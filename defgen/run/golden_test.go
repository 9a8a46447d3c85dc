package run_test

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akedrou/textdiff"
	"github.com/dave/dst"
	"github.com/dave/dst/decorator"
	"golang.org/x/tools/go/packages"

	"github.com/toejough/defaulttest/defgen/run"
)

type uatTestCase struct {
	dir           string // UAT directory, relative to the UAT root
	directiveFile string // file carrying the go:generate directive
	generatedFile string
	args          []string
}

func getUATTestCases() []uatTestCase {
	return []uatTestCase{
		{
			dir:           "02-derived-struct",
			directiveFile: "profile_test.go",
			generatedFile: "generated_ProfileTestDefault_test.go",
			args:          []string{"defgen", "Profile"},
		},
		{
			dir:           "03-nested-structs",
			directiveFile: "nested_test.go",
			generatedFile: "generated_OrderTestDefault_test.go",
			args:          []string{"defgen", "Order"},
		},
		{
			dir:           "04-collections",
			directiveFile: "collections_test.go",
			generatedFile: "generated_InventoryTestDefault_test.go",
			args:          []string{"defgen", "Inventory"},
		},
		{
			dir:           "05-variants",
			directiveFile: "variants_test.go",
			generatedFile: "generated_TicketTestDefault_test.go",
			args:          []string{"defgen", "Ticket"},
		},
		{
			dir:           "06-unique-sentinels",
			directiveFile: "sentinels_test.go",
			generatedFile: "generated_EventTestDefault_test.go",
			args:          []string{"defgen", "Event"},
		},
	}
}

// TestUATConsistency ensures that the generated files in the UAT directory
// are exactly what the current generator code produces.
// This serves two purposes:
// 1. It provides high code coverage for the generator logic (since we call Run directly).
// 2. It ensures the UAT examples are always up-to-date.
func TestUATConsistency(t *testing.T) {
	t.Parallel()

	uatRoot, err := filepath.Abs("../../UAT")
	if err != nil {
		t.Fatalf("failed to get absolute path for UAT directory: %v", err)
	}

	for _, testCase := range getUATTestCases() {
		verifyUATFile(t, uatRoot, testCase)
	}
}

func verifyUATFile(t *testing.T, uatRoot string, testCase uatTestCase) {
	t.Helper()
	t.Run(testCase.generatedFile, func(t *testing.T) {
		t.Parallel()

		dir := filepath.Join(uatRoot, testCase.dir)
		loader := &dirPackageLoader{dir: dir}

		pkgName, err := loader.packageName()
		if err != nil {
			t.Fatalf("failed to resolve package name for %s: %v", testCase.dir, err)
		}

		getEnv := func(key string) string {
			switch key {
			case "GOPACKAGE":
				return pkgName
			case "GOFILE":
				return testCase.directiveFile
			default:
				return ""
			}
		}

		fileSystem := &verifyingFileSystem{t: t, dir: dir, wantName: testCase.generatedFile}

		err = run.Run(testCase.args, getEnv, fileSystem, loader, &strings.Builder{})
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}

		if !fileSystem.wrote {
			t.Error("Run wrote no file")
		}
	})
}

// unexported variables.
var (
	errNoPackagesFound = errors.New("no packages found")
)

// dirPackageLoader implements run.PackageLoader using golang.org/x/tools/go/packages.
// Duplicated here for testing purposes to avoid importing main.
type dirPackageLoader struct {
	dir string
}

// Load loads the package rooted at the configured directory, ignoring the
// import path, and returns its DST files and FileSet.
func (pl *dirPackageLoader) Load(string) ([]*dst.File, *token.FileSet, error) {
	pkg, err := pl.load()
	if err != nil {
		return nil, nil, err
	}

	dec := decorator.NewDecorator(pkg.Fset)

	files := make([]*dst.File, 0, len(pkg.Syntax))

	for _, astFile := range pkg.Syntax {
		dstFile, err := dec.DecorateFile(astFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to decorate file: %w", err)
		}

		files = append(files, dstFile)
	}

	return files, pkg.Fset, nil
}

// load runs the x/tools package loader over the configured directory.
func (pl *dirPackageLoader) load() (*packages.Package, error) {
	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles | packages.NeedSyntax,
		Dir:  pl.dir,
	}

	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", pl.dir, err)
	}

	if len(pkgs) == 0 {
		return nil, fmt.Errorf("%w: %s", errNoPackagesFound, pl.dir)
	}

	return pkgs[0], nil
}

// packageName resolves the package name of the configured directory.
func (pl *dirPackageLoader) packageName() (string, error) {
	pkg, err := pl.load()
	if err != nil {
		return "", err
	}

	return pkg.Name, nil
}

// verifyingFileSystem compares writes against the files already on disk
// instead of writing anything.
type verifyingFileSystem struct {
	t        *testing.T
	dir      string
	wantName string
	wrote    bool
}

// WriteFile verifies name and content against the checked-in generated file.
func (fs *verifyingFileSystem) WriteFile(name string, data []byte, _ os.FileMode) error {
	fs.t.Helper()
	fs.wrote = true

	if name != fs.wantName {
		fs.t.Errorf("generated file name drifted: want %s, got %s", fs.wantName, name)
	}

	want, err := os.ReadFile(filepath.Join(fs.dir, fs.wantName))
	if err != nil {
		return fmt.Errorf("failed to read checked-in file: %w", err)
	}

	if !bytes.Equal(want, data) {
		fs.t.Errorf(
			"generated output drifted for %s:\n%s",
			name,
			textdiff.Unified(name+" (checked in)", name+" (generated)", string(want), string(data)),
		)
	}

	return nil
}
