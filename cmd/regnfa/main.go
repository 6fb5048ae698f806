// Command regnfa compiles a pattern, runs match checks against it, writes the
// automaton as a Graphviz graph and optionally generates a Go matcher.
//
// Usage:
//
//	regnfa -pattern 'a(bc*|de)fg' -match abfg -match adefg
//	regnfa -checks suite.yaml -dot graph.dot
//	regnfa -pattern 'hel*o' -gen hello.go -name Hello -package hello
//	regnfa -pattern 'hi*j' -lines input.txt
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/regnfa/internal/compiler"
	"github.com/KromDaniel/regnfa/pkg/regnfa"
	"github.com/KromDaniel/regnfa/stream"
)

const defaultPattern = "(a(bc*|de)fg)|(hi*j)"

// arrayFlags collects a repeatable string flag.
type arrayFlags []string

func (a *arrayFlags) String() string {
	return strings.Join(*a, ", ")
}

func (a *arrayFlags) Set(value string) error {
	*a = append(*a, value)
	return nil
}

type matcherFunc func([]byte) bool

func (f matcherFunc) Match(b []byte) bool {
	return f(b)
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("regnfa", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		pattern    = fs.String("pattern", defaultPattern, "regular expression to compile")
		dotFile    = fs.String("dot", "graph.dot", "write the automaton as a Graphviz graph to this file (empty to skip)")
		checksFile = fs.String("checks", "", "YAML file with match checks")
		linesFile  = fs.String("lines", "", "print the lines of this file ('-' for stdin) the pattern matches")
		prefix     = fs.Bool("prefix", false, "accept as soon as any non-empty prefix matches")
		genFile    = fs.String("gen", "", "generate a Go matcher into this file")
		name       = fs.String("name", "Pattern", "type name for generated code")
		pkg        = fs.String("package", "main", "package name for generated code")
		verbose    = fs.Bool("v", false, "verbose output")
		inputs     arrayFlags
	)
	fs.Var(&inputs, "match", "input to match (repeatable)")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := compiler.NewLogger(*verbose)
	logger.SetOutput(stderr)

	var checks []check
	patternSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "pattern" {
			patternSet = true
		}
	})

	if *checksFile != "" {
		s, err := loadSuite(*checksFile)
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		if s.Pattern != "" && !patternSet {
			*pattern = s.Pattern
		}
		checks = s.Checks
	} else if !patternSet && len(inputs) == 0 {
		checks = defaultChecks
	}

	re, err := regnfa.Compile(*pattern)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}

	logger.Section("Pattern Analysis")
	logger.Log("Pattern: %s", re)
	if res, err := regnfa.Analyze(*pattern); err == nil {
		logger.Log("NFA states: %d", res.States)
		logger.Log("Character states: %d", res.CharStates)
		logger.Log("Epsilon edges: %d", res.EpsilonEdges)
		logger.Log("Features: %s", strings.Join(res.FeatureLabels, ", "))
	}

	match := re.MatchString
	lineMatcher := stream.Matcher(re)
	if *prefix {
		match = re.MatchPrefixString
		lineMatcher = matcherFunc(re.MatchPrefix)
	}

	for _, input := range inputs {
		fmt.Fprintf(stdout, "%q: %v\n", input, match(input))
	}

	failed := 0
	for _, c := range checks {
		got := match(c.Input)
		if got != c.Want {
			failed++
			fmt.Fprintf(stderr, "check failed: matches(%q) = %v, want %v\n", c.Input, got, c.Want)
			continue
		}
		logger.Log("check passed: matches(%q) = %v", c.Input, got)
	}
	if len(checks) > 0 {
		fmt.Fprintf(stdout, "%d/%d checks passed\n", len(checks)-failed, len(checks))
	}

	if *linesFile != "" {
		if err := filterLines(*linesFile, lineMatcher, stdout); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if *dotFile != "" {
		if err := re.WriteDotFile(*dotFile); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
		logger.Log("Wrote %s", *dotFile)
	}

	if *genFile != "" {
		err := regnfa.Generate(regnfa.Options{
			Pattern:    *pattern,
			Name:       *name,
			OutputFile: *genFile,
			Package:    *pkg,
			Verbose:    *verbose,
		})
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return 1
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

func filterLines(path string, m stream.Matcher, w io.Writer) error {
	var src io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open lines: %w", err)
		}
		defer f.Close()
		src = f
	}
	if _, err := io.Copy(w, stream.MatchLines(src, m)); err != nil {
		return fmt.Errorf("failed to filter lines: %w", err)
	}
	return nil
}
