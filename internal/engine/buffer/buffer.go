package buffer

import (
	"unicode/utf8"
)

// continuation reports whether b is a UTF-8 continuation byte (10xxxxxx).
func continuation(b byte) bool {
	return b&0xC0 == 0x80
}

// Buffer is a codepoint-granular UTF-8 byte buffer.
type Buffer struct {
	data []byte
}

// New creates a new empty buffer.
func New() *Buffer {
	return &Buffer{}
}

// FromString creates a buffer with initial content.
// It panics if s is not valid UTF-8.
func FromString(s string) *Buffer {
	b := New()
	b.AppendString(s)
	return b
}

// Len returns the length of the buffer in bytes.
func (b *Buffer) Len() int {
	return len(b.data)
}

// IsEmpty returns true if the buffer holds no text.
func (b *Buffer) IsEmpty() bool {
	return len(b.data) == 0
}

// String returns the buffer content.
func (b *Buffer) String() string {
	return string(b.data)
}

// Bytes returns a copy of the buffer content.
func (b *Buffer) Bytes() []byte {
	out := make([]byte, len(b.data))
	copy(out, b.data)
	return out
}

// RuneCount returns the number of codepoints in the buffer.
func (b *Buffer) RuneCount() int {
	return utf8.RuneCount(b.data)
}

// Append encodes r and appends it.
// Encoded length follows the standard ranges: below 0x80 one byte, below
// 0x800 two, below 0x10000 three, up to 0x10FFFF four.
func (b *Buffer) Append(r rune) {
	if !utf8.ValidRune(r) {
		corrupt("append", -1, ErrInvalidCodepoint)
	}
	b.data = utf8.AppendRune(b.data, r)
}

// AppendString appends s, which must be valid UTF-8.
func (b *Buffer) AppendString(s string) {
	if !utf8.ValidString(s) {
		corrupt("append", -1, ErrMalformedUTF8)
	}
	b.data = append(b.data, s...)
}

// lastStart returns the offset where the final codepoint begins, along with
// the decoded codepoint. The buffer must not be empty.
func (b *Buffer) lastStart(op string) (int, rune) {
	start := len(b.data) - 1
	for start > 0 && continuation(b.data[start]) {
		start--
	}

	r, size := utf8.DecodeRune(b.data[start:])
	if r == utf8.RuneError && size <= 1 {
		corrupt(op, start, ErrMalformedUTF8)
	}
	if start+size != len(b.data) {
		corrupt(op, start+size, ErrMalformedUTF8)
	}
	return start, r
}

// Last returns the final codepoint without mutating the buffer.
// Returns false if the buffer is empty.
func (b *Buffer) Last() (rune, bool) {
	if len(b.data) == 0 {
		return 0, false
	}
	_, r := b.lastStart("last")
	return r, true
}

// RemoveLast drops the final codepoint.
// Returns false if the buffer was already empty.
func (b *Buffer) RemoveLast() bool {
	if len(b.data) == 0 {
		return false
	}
	start, _ := b.lastStart("remove")
	b.data = b.data[:start]
	return true
}

// ReplaceLast decodes the final codepoint, truncates it and appends
// transform's result in its place. Empty buffers are left untouched.
// Returns true if the codepoint changed.
func (b *Buffer) ReplaceLast(transform func(rune) rune) bool {
	if len(b.data) == 0 {
		return false
	}
	start, r := b.lastStart("replace")
	next := transform(r)
	if !utf8.ValidRune(next) {
		corrupt("replace", start, ErrInvalidCodepoint)
	}
	b.data = utf8.AppendRune(b.data[:start], next)
	return next != r
}

// Take returns the buffer content and empties the buffer.
func (b *Buffer) Take() string {
	s := string(b.data)
	b.data = b.data[:0]
	return s
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.data = b.data[:0]
}
