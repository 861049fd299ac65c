package core

import (
	"strings"
	"unicode"
)

// argStream makes a slice of raw string tokens available as a stream with
// single-token lookahead.
type argStream struct {
	args  []string
	index int
}

func newArgStream(args []string) *argStream {
	return &argStream{args: args}
}

// hasNext returns true if the stream contains at least one more token.
func (stream *argStream) hasNext() bool {
	return stream.index < len(stream.args)
}

// next consumes and returns the next token. Calling next on an exhausted
// stream is a contract violation: callers must guard with hasNext.
func (stream *argStream) next() string {
	if !stream.hasNext() {
		panic("argyle: next() called on an exhausted argument stream")
	}
	stream.index++
	return stream.args[stream.index-1]
}

// peek returns the next token without consuming it.
func (stream *argStream) peek() string {
	if !stream.hasNext() {
		panic("argyle: peek() called on an exhausted argument stream")
	}
	return stream.args[stream.index]
}

// hasNextValue reports whether the next token should be consumed as an
// option value rather than treated as a new option. A token is a value if
// it does not begin with a dash, if it is a bare dash, or if the dash is
// followed by a digit. The last rule lets negative numbers read as
// values instead of short-option clusters.
func (stream *argStream) hasNextValue() bool {
	if !stream.hasNext() {
		return false
	}
	arg := stream.peek()
	if !strings.HasPrefix(arg, "-") {
		return true
	}
	if arg == "-" {
		return true
	}
	return unicode.IsDigit([]rune(arg)[1])
}
