// Package grid draws the keyboard as a text table on a terminal backend.
//
// The left stick picks a row and the right stick picks a column. In
// one-ring mode only the ring for the hand currently choosing is drawn.
package grid

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/clekey/clekeyOVR/internal/app"
	"github.com/clekey/clekeyOVR/internal/config"
	"github.com/clekey/clekeyOVR/internal/device/sim"
	"github.com/clekey/clekeyOVR/internal/input"
	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
	"github.com/clekey/clekeyOVR/internal/renderer/backend"
)

// Layout.
const (
	cellWidth  = 6
	tableLeft  = 1
	statusRow  = 0
	tableTop   = 2
	bufferRow  = tableTop + plane.GridSize + 1
	messageRow = bufferRow + 1
	handsRow   = messageRow + 1
	helpRow    = handsRow + 2
)

const helpText = "wedcxzaq/iol.,mju aim  s/k centre  f/h click  Esc close  Tab suspend  ^C quit"

// PulseSource reports the most recent haptic pulse.
type PulseSource interface {
	LastPulse() (sim.PulseRecord, bool)
}

// Renderer implements app.Renderer and app.UIConfigurable.
type Renderer struct {
	mu      sync.Mutex
	b       backend.Backend
	theme   Theme
	oneRing bool
	pulses  PulseSource
}

var (
	_ app.Renderer       = (*Renderer)(nil)
	_ app.UIConfigurable = (*Renderer)(nil)
)

// New creates a renderer drawing on b.
func New(b backend.Backend, ui config.UIConfig) (*Renderer, error) {
	r := &Renderer{b: b}
	if err := r.ApplyUI(ui); err != nil {
		return nil, err
	}
	return r, nil
}

// ApplyUI switches the theme and ring mode. An invalid colour leaves the
// current settings in place.
func (r *Renderer) ApplyUI(ui config.UIConfig) error {
	theme, err := ThemeFromConfig(ui.Colors)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.theme = theme
	r.oneRing = ui.Mode == config.UIModeOneRing
	return nil
}

// SetPulseSource shows the last haptic pulse next to the hands.
func (r *Renderer) SetPulseSource(p PulseSource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pulses = p
}

// Render draws f and shows it.
func (r *Renderer) Render(f app.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.b.Clear()
	r.drawStatus(f)

	switch f.Status {
	case app.Waiting:
		r.text(tableLeft, tableTop, "press Esc to open the keyboard", r.theme.dimmed())
	default:
		if r.oneRing {
			r.drawRing(f.View, f.Status == app.Suspending)
		} else {
			r.drawTable(f.View, f.Status == app.Suspending)
		}
		r.drawBuffer(f.View.Buffer)
		r.drawHands(f.View)
	}

	r.drawMessage(f)
	r.text(tableLeft, helpRow, helpText, r.theme.dimmed())
	r.b.Show()
	return nil
}

func (r *Renderer) drawStatus(f app.Frame) {
	w, _ := r.b.Size()
	style := r.theme.status(f.Status.Visible())
	r.b.Fill(backend.RectFromSize(statusRow, 0, 1, w), backend.Cell{Rune: ' ', Width: 1, Style: style})

	parts := []string{strings.ToUpper(f.Status.String())}
	if f.Status.Visible() {
		name := f.View.Plane
		if f.View.Sign {
			name += "+" + plane.NameSigns
		}
		parts = append(parts, name)
	}
	if f.Session != "" {
		parts = append(parts, "session "+shortSession(f.Session))
	}
	parts = append(parts, fmt.Sprintf("%.0f fps", f.FPS))

	r.text(1, statusRow, strings.Join(parts, "  "), style)
}

func shortSession(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// drawTable draws the full 8x8 table.
func (r *Renderer) drawTable(v input.View, suspended bool) {
	for row := range plane.GridSize {
		for col := range plane.GridSize {
			c := plane.CellAt(row, col)
			r.cell(tableLeft+col*cellWidth, tableTop+row, v.Table.At(c), r.cellStyle(v, row, col, suspended))
		}
	}
}

// drawRing draws one line of eight choices. Until the left hand picks a
// row, each entry is the first label of its row.
func (r *Renderer) drawRing(v input.View, suspended bool) {
	row := v.Hands[hand.Left].Selection
	for i := range plane.GridSize {
		x := tableLeft + i*cellWidth
		if row == hand.NoSelection {
			r.cell(x, tableTop, v.Table.At(plane.CellAt(i, 0)), r.theme.cell())
			continue
		}
		r.cell(x, tableTop, v.Table.At(plane.CellAt(row, i)), r.cellStyle(v, row, i, suspended))
	}
}

func (r *Renderer) cellStyle(v input.View, row, col int, suspended bool) backend.Style {
	if suspended {
		return r.theme.dimmed()
	}

	left, right := v.Hands[hand.Left].Selection, v.Hands[hand.Right].Selection
	inRow := left != hand.NoSelection && row == left
	inCol := right != hand.NoSelection && col == right

	switch {
	case inRow && inCol:
		return r.theme.selected()
	case inRow && right == hand.NoSelection, inCol && left == hand.NoSelection:
		return r.theme.preview()
	case left == hand.NoSelection && right == hand.NoSelection:
		return r.theme.cell()
	default:
		return r.theme.dimmed()
	}
}

func (r *Renderer) drawBuffer(buf string) {
	x := r.text(tableLeft, bufferRow, "buffer ", r.theme.cell())
	style := r.theme.buffer()
	w := max(backend.StringWidth(buf), 1)
	r.b.Fill(backend.RectFromSize(bufferRow, x, 1, w+2), backend.Cell{Rune: ' ', Width: 1, Style: style})
	r.text(x+1, bufferRow, buf, style)
}

func (r *Renderer) drawMessage(f app.Frame) {
	switch {
	case f.Err != nil:
		r.text(tableLeft, messageRow, "error: "+f.Err.Error(), r.theme.alert())
	case f.LastCommit != "":
		r.text(tableLeft, messageRow, "sent "+strconv.Quote(f.LastCommit), r.theme.cell())
	}
}

func (r *Renderer) drawHands(v input.View) {
	var parts []string
	for _, side := range hand.Sides {
		h := v.Hands[side]
		sel := "-"
		if h.Selection != hand.NoSelection {
			sel = strconv.Itoa(h.Selection)
		}
		if h.Clicking {
			sel += "*"
		}
		parts = append(parts, side.String()+" "+sel)
	}
	if r.pulses != nil {
		if p, ok := r.pulses.LastPulse(); ok {
			parts = append(parts, "pulse "+p.Side.String()+" "+p.Pulse.Duration.String())
		}
	}
	r.text(tableLeft, handsRow, strings.Join(parts, "  "), r.theme.dimmed())
}

// cell draws a label padded to cellWidth, clipping labels that do not fit.
func (r *Renderer) cell(x, y int, label string, style backend.Style) {
	r.b.Fill(backend.RectFromSize(y, x, 1, cellWidth), backend.Cell{Rune: ' ', Width: 1, Style: style})
	r.clipped(x+1, y, label, x+cellWidth, style)
}

// text draws s from x and returns the column after it.
func (r *Renderer) text(x, y int, s string, style backend.Style) int {
	w, _ := r.b.Size()
	return r.clipped(x, y, s, w, style)
}

func (r *Renderer) clipped(x, y int, s string, limit int, style backend.Style) int {
	for _, c := range backend.CellsFromString(s, style) {
		cw := max(c.Width, 1)
		if x+cw > limit {
			break
		}
		r.b.SetCell(x, y, c)
		x += cw
	}
	return x
}
