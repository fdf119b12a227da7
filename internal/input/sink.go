package input

// Sink receives the keyboard's output.
type Sink interface {
	// Commit delivers flushed text. It is never called with "".
	Commit(text string) error

	// Backspace asks for one backspace keystroke outside the keyboard.
	Backspace() error

	// NewLine asks for one newline keystroke outside the keyboard.
	NewLine() error
}
