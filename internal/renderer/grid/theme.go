package grid

import (
	"fmt"

	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/renderer/backend"
)

// Theme holds the resolved UI colours.
type Theme struct {
	Background       backend.Color
	Center           backend.Color
	Text             backend.Color
	Dimmed           backend.Color
	Selected         backend.Color
	Highlight        backend.Color
	Buffer           backend.Color
	BufferBackground backend.Color
}

// ThemeFromConfig parses the configured "#rrggbb" colours.
func ThemeFromConfig(c config.ColorsConfig) (Theme, error) {
	var t Theme
	fields := []struct {
		name string
		hex  string
		dst  *backend.Color
	}{
		{"background", c.Background, &t.Background},
		{"center", c.Center, &t.Center},
		{"text", c.Text, &t.Text},
		{"dimmed", c.Dimmed, &t.Dimmed},
		{"selected", c.Selected, &t.Selected},
		{"highlight", c.Highlight, &t.Highlight},
		{"buffer", c.Buffer, &t.Buffer},
		{"buffer_background", c.BufferBackground, &t.BufferBackground},
	}
	for _, f := range fields {
		col, err := backend.ColorFromHex(f.hex)
		if err != nil {
			return Theme{}, fmt.Errorf("colour %s: %w", f.name, err)
		}
		*f.dst = col
	}
	return t, nil
}

func (t Theme) cell() backend.Style {
	return backend.DefaultStyle().WithForeground(t.Text).WithBackground(t.Background)
}

func (t Theme) dimmed() backend.Style {
	return t.cell().WithForeground(t.Dimmed)
}

// preview marks the row or column one hand points at.
func (t Theme) preview() backend.Style {
	return t.cell().WithBackground(t.Center)
}

func (t Theme) selected() backend.Style {
	return t.cell().WithForeground(t.Selected).WithBackground(t.Highlight).Bold()
}

func (t Theme) buffer() backend.Style {
	return backend.DefaultStyle().WithForeground(t.Buffer).WithBackground(t.BufferBackground)
}

func (t Theme) alert() backend.Style {
	return backend.DefaultStyle().WithForeground(t.Highlight).Bold()
}

// status blends the centre colour towards the background while idle.
func (t Theme) status(visible bool) backend.Style {
	bg := t.Center
	if !visible {
		bg = t.Center.Blend(t.Background, 0.5)
	}
	return backend.DefaultStyle().WithForeground(t.Text).WithBackground(bg).Bold()
}
