//go:build targ

package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/akedrou/textdiff"
	"github.com/toejough/targ"
	"github.com/toejough/targ/sh"
)

// Build builds the local defgen binary.
func Build() error {
	fmt.Println("Building defgen...")

	if err := os.MkdirAll("bin", 0o755); err != nil {
		return fmt.Errorf("failed to create bin directory: %w", err)
	}

	return sh.Run("go", "build", "-o", "bin/defgen", "./defgen")
}

// Check runs all checks on the code, in order of correctness.
func Check() error {
	fmt.Println("Checking...")

	return targ.Deps(
		Tidy,           // clean up the module dependencies
		CheckGenerated, // stale generated files invalidate everything downstream
		Test,           // does our code work?
		Lint,
	)
}

// CheckGenerated verifies the checked-in generated UAT files match what the
// current generator produces.
func CheckGenerated() error {
	fmt.Println("Checking generated files...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	generated, err := filepath.Glob("UAT/*/generated_*_test.go")
	if err != nil {
		return fmt.Errorf("failed to find generated files: %w", err)
	}

	before := make(map[string]string, len(generated))

	for _, file := range generated {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}

		before[file] = string(content)
	}

	if err := Generate(); err != nil {
		return err
	}

	var drifted []string

	for file, want := range before {
		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to re-read %s: %w", file, err)
		}

		if string(content) != want {
			drifted = append(drifted, file)

			fmt.Print(textdiff.Unified(file+" (checked in)", file+" (regenerated)", want, string(content)))
		}
	}

	if len(drifted) > 0 {
		return fmt.Errorf("%w: %s", errGeneratedDrift, strings.Join(drifted, ", "))
	}

	fmt.Printf("All generated files are current (%d files checked).\n", len(generated))

	return nil
}

// Generate runs go generate on all packages using the locally-built defgen binary.
func Generate() error {
	fmt.Println("Generating...")

	if err := targ.Deps(Build); err != nil {
		return err
	}

	// Get current PATH and prepend our bin directory
	currentPath := os.Getenv("PATH")

	binDir, err := filepath.Abs("bin")
	if err != nil {
		return fmt.Errorf("failed to get absolute path for bin: %w", err)
	}

	newPath := binDir + string(filepath.ListSeparator) + currentPath

	// Run go generate with modified PATH
	cmd := exec.Command("go", "generate", "./...")
	cmd.Env = append(os.Environ(), "PATH="+newPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}

// Lint lints the codebase.
func Lint() error {
	fmt.Println("Linting...")
	return sh.Run("golangci-lint", "run", "-c", "dev/golangci.toml")
}

// LintForFail lints the codebase purely to find out whether anything fails.
func LintForFail() error {
	fmt.Println("Linting to check for overall pass/fail...")

	return sh.Run(
		"golangci-lint", "run",
		"-c", "dev/golangci.toml",
		"--fix=false",
		"--max-issues-per-linter=1",
		"--max-same-issues=1",
		"--allow-parallel-runners",
	)
}

// Mutate runs the mutation tests.
func Mutate() error {
	fmt.Println("Running mutation tests...")

	if err := targ.Deps(TestForFail); err != nil {
		return err
	}

	return sh.Run(
		"go",
		"test",
		"-timeout=6000s",
		"-tags=mutation",
		"-ooze.v",
		".",
		"-run=TestMutation",
	)
}

// Test runs the unit tests.
func Test() error {
	fmt.Println("Running unit tests...")

	// Use -count=1 to disable caching so coverage is regenerated
	return sh.Run(
		"go",
		"test",
		"-timeout=2m",
		"-race",
		"-count=1",
		"-coverprofile=coverage.out",
		"-coverpkg=./defgen/...,./internal/...,.",
		"-cover",
		"./...",
	)
}

// TestForFail runs the unit tests purely to find out whether any fail.
func TestForFail() error {
	fmt.Println("Running unit tests for overall pass/fail...")

	return sh.Run(
		"go",
		"test",
		"-timeout=10s",
		"./...",
		"-failfast",
	)
}

// Tidy tidies up go.mod.
func Tidy() error {
	fmt.Println("Tidying go.mod...")
	return sh.Run("go", "mod", "tidy")
}

// unexported variables.
var (
	errGeneratedDrift = errors.New("generated files drifted")
)
