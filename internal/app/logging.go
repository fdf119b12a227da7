package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	clog "github.com/charmbracelet/log"

	"github.com/clekey/clekeyOVR/internal/config"
)

// Log formats.
const (
	FormatText   = "text"
	FormatJSON   = "json"
	FormatLogfmt = "logfmt"
)

// Logging owns the process logger. The slog API is used throughout the
// module; charmbracelet/log formats the records.
type Logging struct {
	level  *slog.LevelVar
	logger *slog.Logger
	file   *os.File
}

// NewLogging builds a logger from cfg. Output goes to cfg.File when set,
// otherwise to w.
func NewLogging(cfg config.LoggingConfig, w io.Writer) (*Logging, error) {
	level, err := clog.ParseLevel(cfg.Level)
	if err != nil {
		return nil, NewOperationError("parse log level", cfg.Level, err)
	}
	formatter, err := parseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	l := &Logging{level: new(slog.LevelVar)}
	l.level.Set(slog.Level(level))
	if cfg.File != "" {
		f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, NewOperationError("open log file", cfg.File, err)
		}
		l.file = f
		w = f
	}

	handler := clog.NewWithOptions(w, clog.Options{
		Level:           clog.DebugLevel,
		Formatter:       formatter,
		ReportTimestamp: cfg.Timestamps,
		Prefix:          "clekey",
	})
	l.logger = slog.New(levelHandler{level: l.level, Handler: handler})
	return l, nil
}

// levelHandler filters records against a shared level so that loggers
// derived with With follow SetLevel.
type levelHandler struct {
	level *slog.LevelVar
	slog.Handler
}

func (h levelHandler) Enabled(ctx context.Context, lv slog.Level) bool {
	return lv >= h.level.Level() && h.Handler.Enabled(ctx, lv)
}

func (h levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return levelHandler{level: h.level, Handler: h.Handler.WithAttrs(attrs)}
}

func (h levelHandler) WithGroup(name string) slog.Handler {
	return levelHandler{level: h.level, Handler: h.Handler.WithGroup(name)}
}

func parseFormat(format string) (clog.Formatter, error) {
	switch format {
	case FormatText, "":
		return clog.TextFormatter, nil
	case FormatJSON:
		return clog.JSONFormatter, nil
	case FormatLogfmt:
		return clog.LogfmtFormatter, nil
	default:
		return 0, NewOperationError("parse log format", format, fmt.Errorf("want %s, %s or %s", FormatText, FormatJSON, FormatLogfmt))
	}
}

// Logger returns the slog logger.
func (l *Logging) Logger() *slog.Logger {
	return l.logger
}

// SetLevel changes the level of every logger derived from this one.
func (l *Logging) SetLevel(level string) error {
	lv, err := clog.ParseLevel(level)
	if err != nil {
		return NewOperationError("parse log level", level, err)
	}
	l.level.Set(slog.Level(lv))
	return nil
}

// Level returns the current level.
func (l *Logging) Level() slog.Level {
	return l.level.Level()
}

// Close closes the log file, if any.
func (l *Logging) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}
