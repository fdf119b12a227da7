package config

import (
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// UI modes.
const (
	UIModeTwoRing = "two-ring"
	UIModeOneRing = "one-ring"
)

// Config is the complete keyboard configuration.
type Config struct {
	Input   InputConfig   `toml:"input" yaml:"input"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
	Haptics HapticsConfig `toml:"haptics" yaml:"haptics"`
	Logging LoggingConfig `toml:"logging" yaml:"logging"`
	UI      UIConfig      `toml:"ui" yaml:"ui"`
}

// InputConfig configures the frame loop and planes.
type InputConfig struct {
	// FPS is the frame rate of the input loop.
	FPS float64 `toml:"fps" yaml:"fps"`

	// Planes lists the main planes in cycling order.
	Planes []string `toml:"planes" yaml:"planes"`

	// AlwaysUseBuffer makes English and Signs compose before committing.
	// When false, their letters are committed one at a time.
	AlwaysUseBuffer bool `toml:"always_use_buffer" yaml:"always_use_buffer"`
}

// OutputConfig configures where committed text goes.
type OutputConfig struct {
	// Mode is "clipboard" or "log".
	Mode string `toml:"mode" yaml:"mode"`

	// AlwaysEnterPaste presses the paste shortcut after every copy.
	AlwaysEnterPaste bool `toml:"always_enter_paste" yaml:"always_enter_paste"`

	// LiteralKeystrokes types single ASCII letters and digits directly.
	LiteralKeystrokes bool `toml:"literal_keystrokes" yaml:"literal_keystrokes"`
}

// HapticsConfig shapes the pulse played on selection changes.
type HapticsConfig struct {
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Duration is in seconds.
	Duration  float64 `toml:"duration" yaml:"duration"`
	Frequency float64 `toml:"frequency" yaml:"frequency"`
	Amplitude float64 `toml:"amplitude" yaml:"amplitude"`
}

// PulseDuration returns Duration as a time.Duration.
func (h HapticsConfig) PulseDuration() time.Duration {
	return time.Duration(h.Duration * float64(time.Second))
}

// LoggingConfig configures the logger.
type LoggingConfig struct {
	// Level is debug, info, warn or error.
	Level string `toml:"level" yaml:"level"`

	// Format is text, json or logfmt.
	Format string `toml:"format" yaml:"format"`

	// Timestamps adds the time to each line.
	Timestamps bool `toml:"timestamps" yaml:"timestamps"`

	// File is an optional log file; empty logs to stderr.
	File string `toml:"file" yaml:"file"`
}

// UIConfig configures the simulator's rendering.
type UIConfig struct {
	// Mode is "two-ring" or "one-ring".
	Mode   string       `toml:"mode" yaml:"mode"`
	Colors ColorsConfig `toml:"colors" yaml:"colors"`
}

// ColorsConfig holds "#rrggbb" colours.
type ColorsConfig struct {
	Background       string `toml:"background" yaml:"background"`
	Center           string `toml:"center" yaml:"center"`
	Text             string `toml:"text" yaml:"text"`
	Dimmed           string `toml:"dimmed" yaml:"dimmed"`
	Selected         string `toml:"selected" yaml:"selected"`
	Highlight        string `toml:"highlight" yaml:"highlight"`
	Buffer           string `toml:"buffer" yaml:"buffer"`
	BufferBackground string `toml:"buffer_background" yaml:"buffer_background"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Input: InputConfig{
			FPS:             72,
			Planes:          []string{"japanese", "english"},
			AlwaysUseBuffer: true,
		},
		Output: OutputConfig{
			Mode:              "clipboard",
			LiteralKeystrokes: true,
		},
		Haptics: HapticsConfig{
			Enabled:   true,
			Duration:  0.05,
			Frequency: 1.0,
			Amplitude: 0.5,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "text",
			Timestamps: true,
		},
		UI: UIConfig{
			Mode: UIModeTwoRing,
			Colors: ColorsConfig{
				Background:       "#afafaf",
				Center:           "#d4d4d4",
				Text:             "#000000",
				Dimmed:           "#808080",
				Selected:         "#000000",
				Highlight:        "#ff0000",
				Buffer:           "#ff0000",
				BufferBackground: "#3058bf",
			},
		},
	}
}

// Clone returns a deep copy.
func (c *Config) Clone() *Config {
	out := *c
	out.Input.Planes = slices.Clone(c.Input.Planes)
	return &out
}

// FrameInterval returns the time between frames.
func (c *Config) FrameInterval() time.Duration {
	return time.Duration(float64(time.Second) / c.Input.FPS)
}

var (
	mainPlanes  = []string{"japanese", "english"}
	outputModes = []string{"clipboard", "log"}
	logLevels   = []string{"debug", "info", "warn", "error"}
	logFormats  = []string{"text", "json", "logfmt"}
	uiModes     = []string{UIModeTwoRing, UIModeOneRing}
	maxFPS      = 1000.0
)

// Validate checks every setting and returns all failures at once.
func (c *Config) Validate() error {
	var errs ValidationErrors
	fail := func(path, msg string, value any) {
		errs = append(errs, &ValidationError{Path: path, Message: msg, Value: value})
	}
	oneOf := func(path, value string, allowed []string) {
		if !slices.Contains(allowed, value) {
			fail(path, fmt.Sprintf("must be one of %v", allowed), value)
		}
	}

	if c.Input.FPS <= 0 || c.Input.FPS > maxFPS {
		fail("input.fps", fmt.Sprintf("must be in (0, %g]", maxFPS), c.Input.FPS)
	}
	if len(c.Input.Planes) == 0 {
		fail("input.planes", "must not be empty", c.Input.Planes)
	}
	seen := make(map[string]bool)
	for _, p := range c.Input.Planes {
		oneOf("input.planes", p, mainPlanes)
		if seen[p] {
			fail("input.planes", "duplicate plane", p)
		}
		seen[p] = true
	}

	oneOf("output.mode", c.Output.Mode, outputModes)

	if c.Haptics.Duration < 0 {
		fail("haptics.duration", "must not be negative", c.Haptics.Duration)
	}
	if c.Haptics.Frequency < 0 {
		fail("haptics.frequency", "must not be negative", c.Haptics.Frequency)
	}
	if c.Haptics.Amplitude < 0 || c.Haptics.Amplitude > 1 {
		fail("haptics.amplitude", "must be in [0, 1]", c.Haptics.Amplitude)
	}

	oneOf("logging.level", c.Logging.Level, logLevels)
	oneOf("logging.format", c.Logging.Format, logFormats)
	oneOf("ui.mode", c.UI.Mode, uiModes)

	colors := c.UI.Colors.all()
	for _, key := range slices.Sorted(maps.Keys(colors)) {
		if _, err := colorful.Hex(colors[key]); err != nil {
			fail("ui.colors."+key, "must be a #rrggbb colour", colors[key])
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

// all returns the colours keyed by setting name.
func (c ColorsConfig) all() map[string]string {
	return map[string]string{
		"background":        c.Background,
		"center":            c.Center,
		"text":              c.Text,
		"dimmed":            c.Dimmed,
		"selected":          c.Selected,
		"highlight":         c.Highlight,
		"buffer":            c.Buffer,
		"buffer_background": c.BufferBackground,
	}
}

// EnvPrefix is the prefix of environment overrides.
const EnvPrefix = "CLEKEY_"

// EnvConfigPath names the variable holding the config file path.
const EnvConfigPath = EnvPrefix + "CONFIG"

// DefaultPath returns the per-user config file path.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "clekey", "config.toml"), nil
}

// ResolvePath picks the config file: explicit, then $CLEKEY_CONFIG, then
// DefaultPath.
func ResolvePath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	return DefaultPath()
}
