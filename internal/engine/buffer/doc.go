// Package buffer provides the composition buffer used by input planes.
//
// A Buffer holds UTF-8 text that has been composed on the keyboard but not
// yet committed. Every mutation is codepoint aligned:
//
//   - Append and AppendString add whole codepoints or vetted strings
//   - RemoveLast drops the final codepoint
//   - ReplaceLast substitutes the final codepoint through a transform
//   - Take drains the buffer for delivery to a commit sink
//
// Only table strings and validated transform outputs ever reach the buffer,
// so malformed UTF-8 is a programming error. Operations that find or would
// produce malformed content panic with a *CorruptionError.
//
// Basic usage:
//
//	buf := buffer.New()
//	buf.AppendString("は")
//	buf.ReplaceLast(func(r rune) rune { return r + 1 }) // "ば"
//	text := buf.Take()                                  // "ば", buffer empty
//
// A Buffer is not safe for concurrent use. It is owned by a single plane and
// mutated from the keyboard tick only.
package buffer
