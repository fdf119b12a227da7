package output

// Key is a named keystroke.
type Key uint8

const (
	// KeyBackspace deletes one character in the focused application.
	KeyBackspace Key = iota
	// KeyEnter inserts a newline.
	KeyEnter
	// KeyPaste pastes the clipboard.
	KeyPaste
)

// String returns the key name.
func (k Key) String() string {
	switch k {
	case KeyBackspace:
		return "backspace"
	case KeyEnter:
		return "enter"
	case KeyPaste:
		return "paste"
	default:
		return "unknown"
	}
}

// Keystroker injects keystrokes into the focused application.
type Keystroker interface {
	// TypeRune types one character.
	TypeRune(r rune) error

	// Press sends one named key.
	Press(k Key) error
}

// isLiteralKey reports whether r can be typed as a plain key press.
func isLiteralKey(r rune) bool {
	return r >= '0' && r <= '9' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}
