// Package run implements the main logic for the defgen tool in a testable way.
package run

import (
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"

	detect "github.com/toejough/defaulttest/defgen/run/3_detect"
	generate "github.com/toejough/defaulttest/defgen/run/5_generate"
	output "github.com/toejough/defaulttest/defgen/run/6_output"
)

// Interfaces - Public

// FileSystem interface for mocking.
type FileSystem interface {
	WriteFile(name string, data []byte, perm os.FileMode) error
}

// PackageLoader defines an interface for loading Go packages.
type PackageLoader = detect.PackageLoader

// Structs - Private

// cliArgs defines the command-line arguments for the generator.
type cliArgs struct {
	Struct           string `arg:"positional,required"    help:"struct name to derive a TestDefault method for"`
	Name             string `arg:"--name"                 help:"base name for the generated file (defaults to <Struct>TestDefault)"`
	EmptyCollections bool   `arg:"--empty-collections"    help:"fill slice fields with empty literals instead of singletons"`
}

// generatorInfo holds information gathered for generation.
type generatorInfo struct {
	pkgName, structName, baseName string
	emptyCollections              bool
}

// Functions - Public

// Run executes the defgen tool logic. It takes command-line arguments, an environment variable getter, a FileSystem
// interface for file operations, a PackageLoader for package operations, and an output writer for progress messages.
// It returns an error if any step fails. On success, it generates a Go source file containing a TestDefault method
// for the specified struct, in the calling package.
func Run(args []string, getEnv func(string) string, fileSys FileSystem, pkgLoader PackageLoader, out io.Writer) error {
	info, err := getGeneratorCallInfo(args, getEnv)
	if err != nil {
		return err
	}

	astFiles, _, err := pkgLoader.Load(".")
	if err != nil {
		return err
	}

	details, err := detect.Struct(astFiles, info.structName)
	if err != nil {
		return err
	}

	code, err := generate.Code(details, generate.Options{
		PkgName:          info.pkgName,
		EmptyCollections: info.emptyCollections,
	})
	if err != nil {
		return err
	}

	return output.WriteGeneratedCode(code, info.baseName, info.pkgName, getEnv, fileSys, out)
}

// Functions - Private

// getGeneratorCallInfo returns basic information about the current call to the generator.
func getGeneratorCallInfo(args []string, getEnv func(string) string) (generatorInfo, error) {
	pkgName := getEnv("GOPACKAGE")

	parsed, err := parseArgs(args)
	if err != nil {
		return generatorInfo{}, err
	}

	baseName := parsed.Name

	// set base name if not provided
	if baseName == "" {
		baseName = parsed.Struct + "TestDefault" // default generated file base name
	}

	return generatorInfo{
		pkgName:          pkgName,
		structName:       parsed.Struct,
		baseName:         baseName,
		emptyCollections: parsed.EmptyCollections,
	}, nil
}

// parseArgs parses command-line arguments into cliArgs.
func parseArgs(args []string) (cliArgs, error) {
	var parsed cliArgs

	parser, err := arg.NewParser(arg.Config{}, &parsed)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to create argument parser: %w", err)
	}

	var cmdArgs []string
	if len(args) > 1 {
		cmdArgs = args[1:]
	}

	err = parser.Parse(cmdArgs)
	if err != nil {
		return cliArgs{}, fmt.Errorf("failed to parse arguments: %w", err)
	}

	return parsed, nil
}
