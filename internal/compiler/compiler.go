// Package compiler generates standalone Go matchers from compiled automata.
package compiler

import (
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/codegen"
	"github.com/KromDaniel/regnfa/internal/nfa"
	"github.com/dave/jennifer/jen"
)

// Config holds the configuration for code generation.
type Config struct {
	Pattern    string
	Name       string
	OutputFile string
	Package    string
	NFA        *nfa.NFA
	Verbose    bool // Enable verbose logging of generation decisions
}

// Compiler generates Go code for one automaton.
type Compiler struct {
	config Config
	file   *jen.File
	logger *Logger
	built  bool
}

// New creates a new compiler instance.
func New(config Config) *Compiler {
	return &Compiler{
		config: config,
		file:   jen.NewFile(config.Package),
		logger: NewLogger(config.Verbose),
	}
}

// Logger returns the compiler's verbose logger.
func (c *Compiler) Logger() *Logger {
	return c.logger
}

// method returns a jen.Statement for declaring a method on the generated struct.
func (c *Compiler) method(name string) *jen.Statement {
	return c.file.Func().
		Params(jen.Id(c.config.Name)).
		Id(name)
}

func (c *Compiler) build() error {
	if c.built {
		return nil
	}
	if c.config.NFA == nil {
		return fmt.Errorf("no automaton to generate from")
	}
	if c.config.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !codegen.IsExportedIdent(c.config.Name) {
		return fmt.Errorf("name %q is not an exported Go identifier", c.config.Name)
	}

	c.logger.Section("Pattern Analysis")
	c.logger.Log("Pattern: %s", c.config.Pattern)
	c.logger.Log("NFA states: %d", c.config.NFA.Len())
	c.logger.Log("Epsilon sources: %d", len(c.config.NFA.Sources()))

	c.file.HeaderComment(fmt.Sprintf("Code generated by regnfa for pattern %q. DO NOT EDIT.", c.config.Pattern))

	c.file.Type().Id(c.config.Name).Struct()
	c.file.Line()

	// Generate convenience variable for direct usage
	c.file.Var().Id(fmt.Sprintf("Compiled%s", c.config.Name)).Op("=").Id(c.config.Name).Values()
	c.file.Line()

	c.logger.Section("Code Generation")
	gen := NewThompsonGenerator(c)

	c.method("MatchString").
		Params(jen.Id(codegen.InputName).String()).
		Params(jen.Bool()).
		Block(gen.GenerateMatchFunction()...)

	c.method("MatchBytes").
		Params(jen.Id(codegen.InputName).Index().Byte()).
		Params(jen.Bool()).
		Block(gen.GenerateMatchFunction()...)

	c.built = true
	return nil
}

// Render writes the generated, gofmt-ed source to w.
func (c *Compiler) Render(w io.Writer) error {
	if err := c.build(); err != nil {
		return err
	}
	if err := c.file.Render(w); err != nil {
		return fmt.Errorf("failed to render file: %w", err)
	}
	return nil
}

// Generate generates the Go code and writes it to the output file.
func (c *Compiler) Generate() error {
	if c.config.OutputFile == "" {
		return fmt.Errorf("output file cannot be empty")
	}
	if err := c.build(); err != nil {
		return err
	}
	if err := c.file.Save(c.config.OutputFile); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	c.logger.Log("Wrote %s", c.config.OutputFile)
	return nil
}
