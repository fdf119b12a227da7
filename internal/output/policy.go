package output

import (
	"unicode/utf8"

	"github.com/clekey/clekeyOVR/internal/input"
)

// Policy types single-character ASCII commits as key presses and hands
// everything else to the wrapped sink.
type Policy struct {
	input.Sink
	keys Keystroker
}

// NewPolicy wraps sink.
func NewPolicy(sink input.Sink, keys Keystroker) *Policy {
	return &Policy{Sink: sink, keys: keys}
}

// Commit implements input.Sink.
func (p *Policy) Commit(text string) error {
	if r, size := utf8.DecodeRuneInString(text); size == len(text) && isLiteralKey(r) {
		return p.keys.TypeRune(r)
	}
	return p.Sink.Commit(text)
}
