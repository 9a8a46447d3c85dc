// Package output names and writes the generated derivation file.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/toejough/go-reorder"
)

// generatedFilePermissions keeps generated files owner-writable only.
const generatedFilePermissions = 0o600

// Writer abstracts the file write so tests can capture output in memory.
type Writer interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// WriteGeneratedCode reorders the rendered source per project convention and
// writes it next to the directive, reporting progress on out.
func WriteGeneratedCode(
	code string, baseName string, pkgName string, getEnv func(string) string, fileWriter Writer, out io.Writer,
) error {
	filename := generatedFileName(baseName, pkgName, getEnv("GOFILE"))

	reordered, err := reorder.Source(code)
	if err != nil {
		// Reordering is cosmetic; keep the rendered source and say so.
		_, _ = fmt.Fprintf(out, "Warning: failed to reorder %s: %v\n", filename, err)

		reordered = code
	}

	err = fileWriter.WriteFile(filename, []byte(reordered), generatedFilePermissions)
	if err != nil {
		return fmt.Errorf("error writing %s: %w", filename, err)
	}

	_, _ = fmt.Fprintf(out, "%s written successfully.\n", filename)

	return nil
}

// generatedFileName computes the output file name. A directive that runs from
// a test file or a _test package yields a _test.go file, so the generated
// method exists only in test builds; that covers both blackbox (package
// xxx_test) and whitebox (package xxx in xxx_test.go) placements.
func generatedFileName(baseName, pkgName, goFile string) string {
	base := strings.TrimSuffix(baseName, ".go")

	testContext := strings.HasSuffix(pkgName, "_test") || strings.HasSuffix(goFile, "_test.go")
	if testContext && !strings.HasSuffix(base, "_test") {
		base += "_test"
	}

	return "generated_" + base + ".go"
}
