package regnfa

import (
	"github.com/KromDaniel/regnfa/internal/nfa"
	"github.com/KromDaniel/regnfa/internal/parser"
	"golang.org/x/exp/slices"
)

// AnalysisResult describes the automaton compiled from a pattern.
type AnalysisResult struct {
	States       int
	CharStates   int
	EpsilonEdges int

	// FeatureLabels names the grammar features the pattern uses, sorted
	// alphabetically: "Alternation", "Groups", "Literal", "Star".
	FeatureLabels []string
}

// Analyze compiles pattern and reports on its automaton.
//
// Example:
//
//	result, err := regnfa.Analyze("a(b|c)*")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.FeatureLabels) // [Alternation Groups Literal Star]
func Analyze(pattern string) (*AnalysisResult, error) {
	n, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}

	result := &AnalysisResult{States: n.Len()}
	features := map[string]bool{}

	for _, src := range n.Sources() {
		result.EpsilonEdges += len(n.Epsilon(src))
	}

	// Skip the implicit outer group and the terminal state.
	for i := 1; i < n.Len()-2; i++ {
		switch n.State(i).Kind {
		case nfa.Char:
			result.CharStates++
			features["Literal"] = true
		case nfa.LParen:
			features["Groups"] = true
		case nfa.Pipe:
			features["Alternation"] = true
		case nfa.Star:
			features["Star"] = true
		}
	}

	for label := range features {
		result.FeatureLabels = append(result.FeatureLabels, label)
	}
	slices.Sort(result.FeatureLabels)
	return result, nil
}
