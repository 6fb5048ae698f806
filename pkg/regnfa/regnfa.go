// Package regnfa compiles a small regular expression grammar into a
// position-indexed NFA and matches input against it without backtracking.
//
// The grammar has literal bytes, concatenation, alternation (|), grouping
// and the postfix star. Matching is byte-wise.
package regnfa

import (
	"fmt"
	"io"

	"github.com/KromDaniel/regnfa/internal/dot"
	"github.com/KromDaniel/regnfa/internal/nfa"
	"github.com/KromDaniel/regnfa/internal/parser"
)

// SyntaxError is returned by Compile for patterns that cannot be compiled.
type SyntaxError = parser.Error

// Codes carried by SyntaxError, usable with errors.Is.
var (
	ErrUnmatchedRightParen       = parser.ErrUnmatchedRightParen
	ErrUnmatchedLeftParen        = parser.ErrUnmatchedLeftParen
	ErrMissingAlternationOperand = parser.ErrMissingAlternationOperand
)

// Regex is a compiled pattern. It is safe for concurrent use.
type Regex struct {
	pattern string
	nfa     *nfa.NFA
}

// Compile parses pattern into a Regex.
func Compile(pattern string) (*Regex, error) {
	n, err := parser.Parse(pattern)
	if err != nil {
		return nil, err
	}
	return &Regex{pattern: pattern, nfa: n}, nil
}

// MustCompile is like Compile but panics if the pattern cannot be compiled.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("regnfa: Compile(%q): %v", pattern, err))
	}
	return re
}

// MatchString reports whether the whole of s is accepted.
func (re *Regex) MatchString(s string) bool {
	return re.nfa.MatchString(s)
}

// Match reports whether the whole of b is accepted.
func (re *Regex) Match(b []byte) bool {
	return re.nfa.Match(b)
}

// MatchReader reports whether everything read from r is accepted.
// Reading stops early once no match is possible.
func (re *Regex) MatchReader(r io.ByteReader) (bool, error) {
	return re.nfa.MatchReader(r)
}

// MatchPrefixString reports whether some non-empty prefix of s is accepted.
func (re *Regex) MatchPrefixString(s string) bool {
	return re.nfa.MatchPrefixString(s)
}

// MatchPrefix reports whether some non-empty prefix of b is accepted.
func (re *Regex) MatchPrefix(b []byte) bool {
	return re.nfa.MatchPrefix(b)
}

// WriteDot writes the automaton as a Graphviz digraph.
func (re *Regex) WriteDot(w io.Writer) error {
	return dot.Write(w, re.nfa)
}

// WriteDotFile writes the Graphviz digraph to path, truncating any existing file.
func (re *Regex) WriteDotFile(path string) error {
	return dot.WriteFile(path, re.nfa)
}

// NumStates returns the number of automaton states, including the terminal one.
func (re *Regex) NumStates() int {
	return re.nfa.Len()
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}
