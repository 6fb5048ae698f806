package compiler

import (
	"fmt"

	"github.com/KromDaniel/regnfa/internal/codegen"
	"github.com/KromDaniel/regnfa/internal/nfa"
	"github.com/dave/jennifer/jen"
)

// ThompsonGenerator generates subset simulation code for an automaton.
// All reachable states are tracked at once as a bitset of words, so the
// generated matcher runs in O(n*m) time, n = input length, m = states.
type ThompsonGenerator struct {
	compiler     *Compiler
	nfa          *nfa.NFA
	words        int
	startClosure []uint64
	successors   map[int][]uint64 // Closure after consuming the byte of each Char state
	charStates   []int            // States that consume characters, ascending
}

// NewThompsonGenerator creates a new Thompson generator and precomputes closures.
func NewThompsonGenerator(c *Compiler) *ThompsonGenerator {
	n := c.config.NFA
	gen := &ThompsonGenerator{
		compiler:   c,
		nfa:        n,
		words:      codegen.WordCount(n.Len()),
		successors: make(map[int][]uint64),
	}

	gen.startClosure = gen.bitset(n.Closure(nfa.NewSet(n.Start())))

	for i := 0; i < n.Len(); i++ {
		if n.State(i).Kind != nfa.Char {
			continue
		}
		gen.charStates = append(gen.charStates, i)
		gen.successors[i] = gen.bitset(n.Closure(nfa.NewSet(i + 1)))
	}

	c.logger.Log("State set width: %d word(s)", gen.words)
	c.logger.Log("Character states: %d", len(gen.charStates))
	return gen
}

func (g *ThompsonGenerator) bitset(set nfa.Set) []uint64 {
	words := make([]uint64, g.words)
	for _, i := range set.Sorted() {
		w, mask := codegen.Bit(i)
		words[w] |= mask
	}
	return words
}

func (g *ThompsonGenerator) setType() *jen.Statement {
	return jen.Index(jen.Lit(g.words)).Uint64()
}

func (g *ThompsonGenerator) setLiteral(words []uint64) *jen.Statement {
	values := make([]jen.Code, len(words))
	for i, w := range words {
		values[i] = jen.Lit(w)
	}
	return g.setType().Values(values...)
}

// GenerateMatchFunction generates the body of a full-input match function.
func (g *ThompsonGenerator) GenerateMatchFunction() []jen.Code {
	successWord, successMask := codegen.Bit(g.nfa.SuccessIndex())
	accept := jen.Id(codegen.CurrentName).Index(jen.Lit(successWord)).Op("&").Lit(successMask).Op("!=").Lit(uint64(0))

	code := []jen.Code{
		jen.Id(codegen.InputLenName).Op(":=").Len(jen.Id(codegen.InputName)),
		jen.Line(),
		jen.Comment("Epsilon closure of the start state"),
		jen.Id(codegen.StartClosureName).Op(":=").Add(g.setLiteral(g.startClosure)),
		jen.Id(codegen.CurrentName).Op(":=").Id(codegen.StartClosureName),
	}

	if len(g.charStates) == 0 {
		code = append(code,
			jen.If(jen.Id(codegen.InputLenName).Op(">").Lit(0)).Block(
				jen.Return(jen.False()),
			),
			jen.Return(accept),
		)
		return code
	}

	code = append(code,
		jen.Var().Id(codegen.NextName).Add(g.setType()),
		jen.Line(),
		jen.For(
			jen.Id(codegen.OffsetName).Op(":=").Lit(0),
			jen.Id(codegen.OffsetName).Op("<").Id(codegen.InputLenName),
			jen.Id(codegen.OffsetName).Op("++"),
		).Block(g.generateTransitionBlock()...),
		jen.Line(),
		jen.Comment("Accept only if Success is reachable once the input is exhausted"),
		jen.Return(accept),
	)
	return code
}

// generateTransitionBlock generates the per-byte step.
func (g *ThompsonGenerator) generateTransitionBlock() []jen.Code {
	block := []jen.Code{
		jen.Id(codegen.ByteName).Op(":=").Id(codegen.InputName).Index(jen.Id(codegen.OffsetName)),
		jen.Id(codegen.NextName).Op("=").Add(g.setType()).Values(),
		jen.Line(),
	}

	for _, idx := range g.charStates {
		block = append(block, g.generateStateTransition(idx)...)
	}

	block = append(block,
		jen.Line(),
		jen.Id(codegen.CurrentName).Op("=").Id(codegen.NextName),
		jen.Comment("Check for dead end"),
		jen.If(jen.Id(codegen.CurrentName).Op("==").Parens(g.setType().Values())).Block(
			jen.Return(jen.False()),
		),
	)
	return block
}

// generateStateTransition generates the consuming move of one Char state.
func (g *ThompsonGenerator) generateStateTransition(idx int) []jen.Code {
	w, mask := codegen.Bit(idx)
	char := g.nfa.State(idx).Char

	var updates []jen.Code
	for i, word := range g.successors[idx] {
		if word == 0 {
			continue
		}
		updates = append(updates, jen.Id(codegen.NextName).Index(jen.Lit(i)).Op("|=").Lit(word))
	}

	return []jen.Code{
		jen.Comment(fmt.Sprintf("%s consumes %q", codegen.StateName(idx), []byte{char})),
		jen.If(
			jen.Id(codegen.CurrentName).Index(jen.Lit(w)).Op("&").Lit(mask).Op("!=").Lit(uint64(0)).
				Op("&&").Id(codegen.ByteName).Op("==").Lit(char),
		).Block(updates...),
	}
}
