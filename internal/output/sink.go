package output

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/clekey/clekeyOVR/internal/input"
)

var (
	// ErrUnknownMode is returned for an unsupported output mode.
	ErrUnknownMode = errors.New("unknown output mode")

	// ErrClipboardUnsupported is returned when the platform has no clipboard.
	ErrClipboardUnsupported = errors.New("clipboard not supported on this platform")
)

// Output modes.
const (
	ModeLog       = "log"
	ModeClipboard = "clipboard"
)

// Options configures New.
type Options struct {
	// Mode selects the sink: ModeLog or ModeClipboard.
	Mode string

	// Paste presses the paste shortcut after each clipboard copy.
	Paste bool

	// LiteralKeystrokes types single ASCII letters and digits directly.
	LiteralKeystrokes bool

	// Keys injects keystrokes. Nil logs them.
	Keys Keystroker

	Logger *slog.Logger
}

// New builds the sink described by opts.
func New(opts Options) (input.Sink, error) {
	keys := opts.Keys
	if keys == nil {
		keys = NewLog(opts.Logger)
	}

	var sink input.Sink
	switch opts.Mode {
	case ModeLog, "":
		sink = NewLog(opts.Logger)
	case ModeClipboard:
		c, err := NewClipboard(keys, opts.Paste)
		if err != nil {
			return nil, err
		}
		sink = c
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMode, opts.Mode)
	}

	if opts.LiteralKeystrokes {
		sink = NewPolicy(sink, keys)
	}
	return sink, nil
}
