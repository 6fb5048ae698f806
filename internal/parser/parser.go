// Package parser compiles a pattern into an NFA in one left-to-right scan.
//
// The pattern is wrapped in an implicit outer group, so position p of the
// automaton is byte p-1 of the pattern. Groups and alternations are resolved
// with a stack of marker positions instead of sub-automata.
package parser

import (
	"github.com/KromDaniel/regnfa/internal/nfa"
)

type markerKind uint8

const (
	lparenMarker markerKind = iota
	pipeMarker
)

type marker struct {
	kind     markerKind
	position int
}

// builder accumulates one compilation. It is discarded after Parse.
type builder struct {
	pattern string
	states  []nfa.State
	eps     map[int][]int
	stack   []marker
	last    int // position of the synthetic closing paren
}

// Parse compiles pattern. On error no NFA is returned.
func Parse(pattern string) (*nfa.NFA, error) {
	b := &builder{
		pattern: pattern,
		states:  make([]nfa.State, 0, len(pattern)+3),
		eps:     make(map[int][]int),
		last:    len(pattern) + 1,
	}

	for p := 0; p <= b.last; p++ {
		if err := b.add(p, b.byteAt(p)); err != nil {
			return nil, err
		}
	}

	// Guard only: closeGroup already rejects a user '(' reached by the
	// synthetic ')', so no marker survives a completed scan.
	if len(b.stack) > 0 {
		return nil, b.errorAt(ErrUnmatchedLeftParen, b.stack[len(b.stack)-1].position)
	}

	b.states = append(b.states, nfa.State{Kind: nfa.Success})
	return nfa.New(b.states, b.eps), nil
}

// byteAt returns the byte of the augmented pattern at position p.
func (b *builder) byteAt(p int) byte {
	switch p {
	case 0:
		return '('
	case b.last:
		return ')'
	default:
		return b.pattern[p-1]
	}
}

func (b *builder) link(from, to int) {
	b.eps[from] = append(b.eps[from], to)
}

func (b *builder) push(kind markerKind, position int) {
	b.stack = append(b.stack, marker{kind: kind, position: position})
}

func (b *builder) pop() (marker, bool) {
	if len(b.stack) == 0 {
		return marker{}, false
	}
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]
	return top, true
}

func (b *builder) add(p int, ch byte) error {
	state := nfa.StateFor(ch)

	switch state.Kind {
	case nfa.Star:
		// zero or more: re-enter, loop back, skip
		b.link(p-1, p)
		b.link(p, p-1)
		b.link(p, p+1)
	case nfa.LParen:
		b.push(lparenMarker, p)
		b.link(p, p+1)
	case nfa.Pipe:
		b.push(pipeMarker, p)
	case nfa.RParen:
		if err := b.closeGroup(p); err != nil {
			return err
		}
		b.link(p, p+1)
	}

	b.states = append(b.states, state)
	return nil
}

// closeGroup resolves every alternation of the group ending at p.
func (b *builder) closeGroup(p int) error {
	var pipes []int
	for {
		top, ok := b.pop()
		if !ok {
			return b.errorAt(ErrUnmatchedRightParen, p)
		}

		if top.kind == pipeMarker {
			b.link(top.position, p)
			pipes = append(pipes, top.position)
			continue
		}

		// The outer group may only be closed by the synthetic paren, and
		// the synthetic paren may only close the outer group.
		if top.position == 0 && p != b.last {
			return b.errorAt(ErrUnmatchedRightParen, p)
		}
		if top.position != 0 && p == b.last {
			return b.errorAt(ErrUnmatchedLeftParen, top.position)
		}

		for _, q := range pipes {
			if !b.validOperand(q + 1) {
				return b.errorAt(ErrMissingAlternationOperand, q+1)
			}
			b.link(top.position, q+1)
		}
		return nil
	}
}

// validOperand reports whether the token at position p may start a branch.
// p may be the closing paren being processed, which is not yet in b.states.
func (b *builder) validOperand(p int) bool {
	if p >= len(b.states) {
		return false
	}
	switch b.states[p].Kind {
	case nfa.LParen, nfa.Char:
		return true
	default:
		return false
	}
}

// errorAt converts an automaton position into a pattern offset.
func (b *builder) errorAt(code error, p int) *Error {
	pos := p - 1
	if pos < 0 {
		pos = 0
	}
	if pos > len(b.pattern) {
		pos = len(b.pattern)
	}
	return &Error{Code: code, Pos: pos, Pattern: b.pattern}
}
