// Package dot renders a compiled automaton as a Graphviz digraph.
package dot

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/KromDaniel/regnfa/internal/nfa"
)

// Graph is the read-only view of an automaton the exporter needs.
// *nfa.NFA satisfies it.
type Graph interface {
	Len() int
	State(i int) nfa.State
	Epsilon(i int) []int
	Sources() []int
}

var labelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// Write emits one node per state, a black edge per consuming transition and
// a red edge per epsilon transition.
func Write(w io.Writer, g Graph) error {
	bw := bufio.NewWriter(w)

	fmt.Fprint(bw, "digraph NFA {\n")
	fmt.Fprint(bw, "  rankdir=LR;\n")

	for i := 0; i < g.Len(); i++ {
		fmt.Fprintf(bw, "  N%d[label=\"%s\"; weight=%d];\n", i, labelEscaper.Replace(g.State(i).String()), i+1)
	}

	for i := 0; i < g.Len(); i++ {
		if g.State(i).Kind == nfa.Char {
			fmt.Fprintf(bw, "  N%d -> N%d;\n", i, i+1)
		}
	}

	for _, src := range g.Sources() {
		for _, dst := range g.Epsilon(src) {
			fmt.Fprintf(bw, "  N%d -> N%d [color=\"red\"];\n", src, dst)
		}
	}

	fmt.Fprint(bw, "}\n")
	return bw.Flush()
}

// WriteFile writes the digraph to path, truncating any existing file.
func WriteFile(path string, g Graph) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create dot file: %w", err)
	}
	if err := Write(f, g); err != nil {
		f.Close()
		return fmt.Errorf("failed to write dot file: %w", err)
	}
	return f.Close()
}
