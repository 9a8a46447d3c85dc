//nolint:testpackage // Tests internal writing helpers
package output

import (
	"os"
	"strings"
	"testing"
)

// recordingWriter records the single file written.
type recordingWriter struct {
	name string
	data []byte
	perm os.FileMode
}

// WriteFile records the write instead of touching disk.
func (w *recordingWriter) WriteFile(name string, data []byte, perm os.FileMode) error {
	w.name = name
	w.data = data
	w.perm = perm

	return nil
}

const sampleCode = `// Code generated by defgen. DO NOT EDIT.

package sample

// TestDefault returns a User populated with test placeholder values.
func (User) TestDefault() User {
	return User{}
}
`

func noEnv(string) string { return "" }

func testFileEnv(key string) string {
	if key == "GOFILE" {
		return "user_test.go"
	}

	return ""
}

func TestWriteGeneratedCode_PlainFile(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}

	err := WriteGeneratedCode(sampleCode, "UserTestDefault", "sample", noEnv, writer, &strings.Builder{})
	if err != nil {
		t.Fatalf("WriteGeneratedCode failed: %v", err)
	}

	if writer.name != "generated_UserTestDefault.go" {
		t.Errorf("unexpected file name %q", writer.name)
	}

	if writer.perm != 0o600 {
		t.Errorf("unexpected permissions %v", writer.perm)
	}
}

func TestWriteGeneratedCode_TestPackageSuffix(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}

	err := WriteGeneratedCode(sampleCode, "UserTestDefault", "sample_test", noEnv, writer, &strings.Builder{})
	if err != nil {
		t.Fatalf("WriteGeneratedCode failed: %v", err)
	}

	if writer.name != "generated_UserTestDefault_test.go" {
		t.Errorf("unexpected file name %q", writer.name)
	}
}

func TestWriteGeneratedCode_TestSourceFileSuffix(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}

	err := WriteGeneratedCode(sampleCode, "UserTestDefault", "sample", testFileEnv, writer, &strings.Builder{})
	if err != nil {
		t.Fatalf("WriteGeneratedCode failed: %v", err)
	}

	if writer.name != "generated_UserTestDefault_test.go" {
		t.Errorf("unexpected file name %q", writer.name)
	}
}

func TestWriteGeneratedCode_ReportsProgress(t *testing.T) {
	t.Parallel()

	var progress strings.Builder

	err := WriteGeneratedCode(sampleCode, "UserTestDefault", "sample", noEnv, &recordingWriter{}, &progress)
	if err != nil {
		t.Fatalf("WriteGeneratedCode failed: %v", err)
	}

	if !strings.Contains(progress.String(), "generated_UserTestDefault.go written successfully.") {
		t.Errorf("unexpected progress output %q", progress.String())
	}
}

func TestWriteGeneratedCode_DoesNotDoubleTestSuffix(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}

	err := WriteGeneratedCode(sampleCode, "UserTestDefault_test", "sample_test", noEnv, writer, &strings.Builder{})
	if err != nil {
		t.Fatalf("WriteGeneratedCode failed: %v", err)
	}

	if writer.name != "generated_UserTestDefault_test.go" {
		t.Errorf("unexpected file name %q", writer.name)
	}
}

func TestWriteGeneratedCode_UnparsableCodeStillWrites(t *testing.T) {
	t.Parallel()

	writer := &recordingWriter{}

	var progress strings.Builder

	// Reordering fails on unparsable input; the original code is written.
	err := WriteGeneratedCode("not go code", "UserTestDefault", "sample", noEnv, writer, &progress)
	if err != nil {
		t.Fatalf("WriteGeneratedCode failed: %v", err)
	}

	if string(writer.data) != "not go code" {
		t.Errorf("expected original code to be written, got %q", writer.data)
	}

	if !strings.Contains(progress.String(), "Warning: failed to reorder") {
		t.Errorf("expected a reorder warning, got %q", progress.String())
	}
}
