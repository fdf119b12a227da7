package app

import (
	"log/slog"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/input"
	"github.com/clekey/clekeyOVR/internal/input/plane"
	"github.com/clekey/clekeyOVR/internal/output"
)

// BuildManager creates the keyboard described by the input and haptics
// sections of cfg.
func BuildManager(cfg *config.Config, logger *slog.Logger) (*input.Manager, error) {
	opts := []plane.Option{plane.WithDirect(!cfg.Input.AlwaysUseBuffer)}

	mains := make([]plane.Plane, 0, len(cfg.Input.Planes))
	for _, name := range cfg.Input.Planes {
		p, err := plane.New(name, opts...)
		if err != nil {
			return nil, NewOperationError("build plane", name, err)
		}
		mains = append(mains, p)
	}

	return input.NewManager(mains, plane.NewSigns(opts...),
		input.WithLogger(logger.With("component", "keyboard")),
		input.WithHaptics(cfg.Haptics.Enabled, PulseOf(cfg.Haptics)),
	)
}

// BuildSink creates the commit sink described by the output section of cfg.
func BuildSink(cfg *config.Config, keys output.Keystroker, logger *slog.Logger) (input.Sink, error) {
	sink, err := output.New(output.Options{
		Mode:              cfg.Output.Mode,
		Paste:             cfg.Output.AlwaysEnterPaste,
		LiteralKeystrokes: cfg.Output.LiteralKeystrokes,
		Keys:              keys,
		Logger:            logger,
	})
	if err != nil {
		return nil, NewOperationError("build sink", cfg.Output.Mode, err)
	}
	return sink, nil
}

// PulseOf converts the haptics section to a pulse.
func PulseOf(h config.HapticsConfig) input.Pulse {
	return input.Pulse{
		Duration:  h.PulseDuration(),
		Frequency: h.Frequency,
		Amplitude: h.Amplitude,
	}
}
