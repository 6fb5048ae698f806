package regnfa

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/compiler"
	"github.com/KromDaniel/regnfa/internal/parser"
)

// Options configures Go code generation for a pattern.
type Options struct {
	// Pattern is the regular expression to compile
	Pattern string

	// Name is the generated type name (e.g., "Greeting" generates "Greeting" and "CompiledGreeting")
	Name string

	// OutputFile is the path where generated code will be written
	OutputFile string

	// Package is the Go package name for the generated code
	Package string

	// Verbose logs generation decisions to stderr
	Verbose bool
}

// Validate checks if the options are valid.
// An empty pattern is valid and matches only the empty string.
func (o Options) Validate() error {
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if o.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	return nil
}

// Generate writes a standalone Go matcher for opts.Pattern to opts.OutputFile.
func Generate(opts Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	n, err := parser.Parse(opts.Pattern)
	if err != nil {
		return fmt.Errorf("failed to parse pattern: %w", err)
	}

	c := compiler.New(compiler.Config{
		Pattern:    opts.Pattern,
		Name:       opts.Name,
		OutputFile: opts.OutputFile,
		Package:    opts.Package,
		NFA:        n,
		Verbose:    opts.Verbose,
	})

	if err := c.Generate(); err != nil {
		return fmt.Errorf("failed to generate code: %w", err)
	}
	return nil
}
