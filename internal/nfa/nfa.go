package nfa

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// NFA is a compiled automaton. It is never modified after New returns,
// so a single NFA may be matched from many goroutines at once.
type NFA struct {
	states []State
	eps    map[int][]int
}

// New takes ownership of states and eps. The last state must be Success.
func New(states []State, eps map[int][]int) *NFA {
	if eps == nil {
		eps = map[int][]int{}
	}
	return &NFA{states: states, eps: eps}
}

// Len returns the number of states, including Success.
func (n *NFA) Len() int {
	return len(n.states)
}

// State returns the state at index i.
func (n *NFA) State(i int) State {
	return n.states[i]
}

// Epsilon returns the epsilon destinations of state i in insertion order.
// The returned slice must not be modified.
func (n *NFA) Epsilon(i int) []int {
	return n.eps[i]
}

// Sources returns, in ascending order, every state with at least one epsilon edge.
func (n *NFA) Sources() []int {
	src := maps.Keys(n.eps)
	slices.Sort(src)
	return src
}

// Start is the index of the outer opening group.
func (n *NFA) Start() int {
	return 0
}

// SuccessIndex is the index of the terminal state.
func (n *NFA) SuccessIndex() int {
	return len(n.states) - 1
}

// Closure returns the epsilon-closure of set. The argument is left untouched.
// The graph is cyclic around Star states, so the walk uses an explicit stack.
func (n *NFA) Closure(set Set) Set {
	reachable := set.Clone()
	stack := set.Sorted()
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, next := range n.eps[current] {
			if reachable.Contains(next) {
				continue
			}
			reachable.Insert(next)
			stack = append(stack, next)
		}
	}
	return reachable
}

// Step consumes c from every state in reachable and returns the closure of the result.
func (n *NFA) Step(reachable Set, c byte) Set {
	advance := Set{}
	for i := range reachable {
		if n.states[i].Consumes(c) {
			advance.Insert(i + 1)
		}
	}
	return n.Closure(advance)
}

// Accepts reports whether reachable holds the Success state.
func (n *NFA) Accepts(reachable Set) bool {
	return reachable.Contains(n.SuccessIndex())
}
