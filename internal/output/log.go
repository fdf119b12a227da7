package output

import (
	"log/slog"

	"github.com/clekey/clekeyOVR/internal/input"
)

// Log is a sink and keystroker that only logs.
type Log struct {
	logger *slog.Logger
}

var (
	_ input.Sink = (*Log)(nil)
	_ Keystroker = (*Log)(nil)
)

// NewLog creates a logging sink. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger.With("component", "output")}
}

func (l *Log) Commit(text string) error {
	l.logger.Info("commit", "text", text)
	return nil
}

func (l *Log) Backspace() error { return l.Press(KeyBackspace) }

func (l *Log) NewLine() error { return l.Press(KeyEnter) }

func (l *Log) TypeRune(r rune) error {
	l.logger.Info("enter char", "char", string(r))
	return nil
}

func (l *Log) Press(k Key) error {
	l.logger.Info("key", "key", k.String())
	return nil
}
