package nfa

import "io"

type input interface {
	~string | ~[]byte
}

// MatchString reports whether the whole of text is accepted.
func (n *NFA) MatchString(text string) bool {
	return match(n, text)
}

// Match reports whether the whole of text is accepted.
func (n *NFA) Match(text []byte) bool {
	return match(n, text)
}

// MatchPrefixString reports whether some non-empty prefix of text is accepted.
// The scan stops at the first byte after which Success is reachable.
func (n *NFA) MatchPrefixString(text string) bool {
	return matchPrefix(n, text)
}

// MatchPrefix is MatchPrefixString for byte slices.
func (n *NFA) MatchPrefix(text []byte) bool {
	return matchPrefix(n, text)
}

// MatchReader reports whether everything r yields is accepted.
// It stops reading as soon as no state is reachable, so r may be left unconsumed.
func (n *NFA) MatchReader(r io.ByteReader) (bool, error) {
	reachable := n.Closure(NewSet(n.Start()))
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return n.Accepts(reachable), nil
		}
		if err != nil {
			return false, err
		}
		reachable = n.Step(reachable, c)
		if reachable.Len() == 0 {
			return false, nil
		}
	}
}

func match[T input](n *NFA, text T) bool {
	reachable := n.Closure(NewSet(n.Start()))
	for i := 0; i < len(text); i++ {
		reachable = n.Step(reachable, text[i])
		if reachable.Len() == 0 {
			return false
		}
	}
	return n.Accepts(reachable)
}

func matchPrefix[T input](n *NFA, text T) bool {
	reachable := n.Closure(NewSet(n.Start()))
	for i := 0; i < len(text); i++ {
		reachable = n.Step(reachable, text[i])
		if n.Accepts(reachable) {
			return true
		}
	}
	return false
}
