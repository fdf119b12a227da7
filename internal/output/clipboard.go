package output

import (
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/clekey/clekeyOVR/internal/input"
)

// Clipboard copies flushed text to the system clipboard. With paste
// enabled it also presses the paste shortcut after each copy.
type Clipboard struct {
	write func(string) error
	keys  Keystroker
	paste bool
}

var _ input.Sink = (*Clipboard)(nil)

// NewClipboard creates a clipboard sink sending keystrokes to keys.
func NewClipboard(keys Keystroker, paste bool) (*Clipboard, error) {
	if clipboard.Unsupported {
		return nil, ErrClipboardUnsupported
	}
	return newClipboard(clipboard.WriteAll, keys, paste), nil
}

func newClipboard(write func(string) error, keys Keystroker, paste bool) *Clipboard {
	return &Clipboard{write: write, keys: keys, paste: paste}
}

// Commit copies text, then pastes it if enabled.
func (c *Clipboard) Commit(text string) error {
	if err := c.write(text); err != nil {
		return fmt.Errorf("copy to clipboard: %w", err)
	}
	if c.paste {
		return c.keys.Press(KeyPaste)
	}
	return nil
}

func (c *Clipboard) Backspace() error { return c.keys.Press(KeyBackspace) }

func (c *Clipboard) NewLine() error { return c.keys.Press(KeyEnter) }
