// Package plane implements the keyboard's input planes.
//
// A plane is one selectable input mode (Japanese, English, Signs) with its
// own 8x8 character table and composition buffer. The keyboard resolves a
// two-hand gesture into a Cell and hands it to the active plane, which
// mutates its buffer and answers with an Action telling the keyboard what
// to do next.
//
// # Layout
//
// Every plane shares the navigation cells in the lower right corner:
//
//	(5,6) close / convert      (5,7) newline / commit
//	(6,6) backspace            (6,7) space
//	(7,6) sign plane toggle    (7,7) next plane
//
// All other cells are literal characters unless a plane says otherwise.
//
// # Buffered and direct planes
//
// Buffered planes accumulate text until the user commits it. Direct planes
// (English and Signs built with WithDirect) commit every literal cell
// immediately.
package plane
