// Package nfa holds the position-indexed automaton and its subset simulator.
//
// Each state corresponds to one byte of the augmented pattern '(' + pattern + ')',
// followed by a single Success state. The index of a state is its program counter.
package nfa

// Kind identifies what a State does.
type Kind uint8

const (
	// Char matches exactly one input byte.
	Char Kind = iota
	// LParen opens a group.
	LParen
	// RParen closes a group.
	RParen
	// Star marks postfix zero-or-more repetition of the preceding element.
	Star
	// Pipe marks an alternation between the branches of the enclosing group.
	Pipe
	// Success is the terminal state appended after the augmented pattern.
	Success
)

// State is one position of the automaton.
// Char is only meaningful when Kind is Char.
type State struct {
	Kind Kind
	Char byte
}

// StateFor classifies a pattern byte.
func StateFor(b byte) State {
	switch b {
	case '(':
		return State{Kind: LParen}
	case ')':
		return State{Kind: RParen}
	case '*':
		return State{Kind: Star}
	case '|':
		return State{Kind: Pipe}
	default:
		return State{Kind: Char, Char: b}
	}
}

// Consumes reports whether the state moves to the next position on byte c.
func (s State) Consumes(c byte) bool {
	return s.Kind == Char && s.Char == c
}

// String returns the display glyph of the state.
func (s State) String() string {
	switch s.Kind {
	case Char:
		return string([]byte{s.Char})
	case LParen:
		return "("
	case RParen:
		return ")"
	case Star:
		return "*"
	case Pipe:
		return "|"
	case Success:
		return "end"
	default:
		return "?"
	}
}
