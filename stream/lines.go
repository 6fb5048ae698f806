// Package stream applies compiled patterns to line-oriented input.
package stream

import (
	"bufio"
	"bytes"
	"io"
)

// Matcher is satisfied by *regnfa.Regex.
type Matcher interface {
	Match(b []byte) bool
}

// LineFilter returns an io.Reader that only outputs lines matching the predicate.
// Lines are delimited by '\n'. The newline character is included in the line
// passed to the predicate and in the output.
//
// Example - keep only lines containing "ERROR":
//
//	r := stream.LineFilter(input, func(line []byte) bool {
//	    return bytes.Contains(line, []byte("ERROR"))
//	})
//	io.Copy(os.Stdout, r)
func LineFilter(r io.Reader, pred func(line []byte) bool) io.Reader {
	return &lineFilterReader{
		source: bufio.NewReaderSize(r, 4096),
		pred:   pred,
	}
}

// MatchLines returns an io.Reader that only outputs lines m accepts in full.
// The trailing "\n" or "\r\n" is not part of what m sees, but is kept in the output.
func MatchLines(r io.Reader, m Matcher) io.Reader {
	return LineFilter(r, func(line []byte) bool {
		return m.Match(trimEOL(line))
	})
}

func trimEOL(line []byte) []byte {
	line = bytes.TrimSuffix(line, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r"))
}

// lineFilterReader implements io.Reader for LineFilter.
type lineFilterReader struct {
	source *bufio.Reader
	pred   func(line []byte) bool

	// Line that passed the filter and is not fully read yet
	pending []byte
	err     error
}

func (r *lineFilterReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		line, err := r.source.ReadBytes('\n')
		if len(line) > 0 && r.pred(line) {
			r.pending = line
		}
		if err != nil {
			r.err = err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}
