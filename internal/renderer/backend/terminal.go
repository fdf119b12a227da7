package backend

import (
	"sync"

	"github.com/gdamore/tcell/v2"
)

var (
	fromTcellKey = map[tcell.Key]Key{
		tcell.KeyRune:       KeyRune,
		tcell.KeyEscape:     KeyEscape,
		tcell.KeyEnter:      KeyEnter,
		tcell.KeyTab:        KeyTab,
		tcell.KeyBackspace:  KeyBackspace,
		tcell.KeyBackspace2: KeyBackspace,
		tcell.KeyCtrlC:      KeyCtrlC,
	}
	toTcellKey = map[Key]tcell.Key{
		KeyRune:      tcell.KeyRune,
		KeyEscape:    tcell.KeyEscape,
		KeyEnter:     tcell.KeyEnter,
		KeyTab:       tcell.KeyTab,
		KeyBackspace: tcell.KeyBackspace2,
		KeyCtrlC:     tcell.KeyCtrlC,
	}
)

// attrPairs maps our attributes onto tcell's.
var attrPairs = []struct {
	ours Attribute
	tc   tcell.AttrMask
}{
	{AttrBold, tcell.AttrBold},
	{AttrDim, tcell.AttrDim},
	{AttrUnderline, tcell.AttrUnderline},
	{AttrReverse, tcell.AttrReverse},
}

// Terminal draws on a tcell screen. Drawing calls are serialized; PollEvent
// runs unlocked on its own goroutine.
type Terminal struct {
	mu     sync.Mutex
	screen tcell.Screen
}

var _ Backend = (*Terminal)(nil)

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalFromScreen(screen), nil
}

// NewTerminalFromScreen wraps screen, such as tcell.NewSimulationScreen.
func NewTerminalFromScreen(screen tcell.Screen) *Terminal {
	return &Terminal{screen: screen}
}

func (t *Terminal) locked(fn func(s tcell.Screen)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	fn(t.screen)
}

func (t *Terminal) Init() error {
	var err error
	t.locked(func(s tcell.Screen) {
		if err = s.Init(); err == nil {
			s.HideCursor()
			s.Clear()
		}
	})
	return err
}

func (t *Terminal) Shutdown() { t.locked(tcell.Screen.Fini) }

func (t *Terminal) Clear() { t.locked(tcell.Screen.Clear) }

func (t *Terminal) Show() { t.locked(tcell.Screen.Show) }

func (t *Terminal) Size() (w, h int) {
	t.locked(func(s tcell.Screen) { w, h = s.Size() })
	return w, h
}

func (t *Terminal) SetCell(x, y int, cell Cell) {
	t.locked(func(s tcell.Screen) {
		s.SetContent(x, y, cell.Rune, cell.Combining, tcellStyle(cell.Style))
	})
}

func (t *Terminal) GetCell(x, y int) Cell {
	var c Cell
	t.locked(func(s tcell.Screen) {
		r, comb, style, w := s.GetContent(x, y) //nolint:staticcheck // GetContent is the cell accessor
		c = Cell{Rune: r, Combining: comb, Width: w, Style: styleOf(style)}
	})
	return c
}

func (t *Terminal) Fill(rect Rect, cell Cell) {
	style := tcellStyle(cell.Style)
	t.locked(func(s tcell.Screen) {
		w, h := s.Size()
		for y := max(rect.Top, 0); y < min(rect.Bottom, h); y++ {
			for x := max(rect.Left, 0); x < min(rect.Right, w); x++ {
				s.SetContent(x, y, cell.Rune, nil, style)
			}
		}
	})
}

// PollEvent skips events the simulator has no use for. A resize also
// resynchronizes the screen.
func (t *Terminal) PollEvent() Event {
	for {
		var out Event
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return Event{Type: EventNone}
		case *tcell.EventKey:
			key, ok := fromTcellKey[ev.Key()]
			if !ok {
				key = KeyOther
			}
			out = Event{Type: EventKey, Key: key, Rune: ev.Rune()}
		case *tcell.EventResize:
			t.locked(tcell.Screen.Sync)
			w, h := ev.Size()
			out = Event{Type: EventResize, Width: w, Height: h}
		case *tcell.EventInterrupt:
			out = Event{Type: EventInterrupt}
		default:
			continue
		}
		return out
	}
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventKey:
		key, ok := toTcellKey[event.Key]
		if !ok {
			return
		}
		ev = tcell.NewEventKey(key, event.Rune, tcell.ModNone)
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(nil)
	default:
		return
	}
	_ = t.screen.PostEvent(ev) // dropped when tcell's queue is full
}

func tcellStyle(s Style) tcell.Style {
	var attrs tcell.AttrMask
	for _, p := range attrPairs {
		if s.Attributes.Has(p.ours) {
			attrs |= p.tc
		}
	}
	return tcell.StyleDefault.
		Foreground(tcellColor(s.Foreground)).
		Background(tcellColor(s.Background)).
		Attributes(attrs)
}

func styleOf(ts tcell.Style) Style {
	fg, bg, attrs := ts.Decompose()
	s := Style{Foreground: colorOf(fg), Background: colorOf(bg)}
	for _, p := range attrPairs {
		if attrs&p.tc != 0 {
			s.Attributes |= p.ours
		}
	}
	return s
}

func tcellColor(c Color) tcell.Color {
	if c.Default {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func colorOf(tc tcell.Color) Color {
	if tc == tcell.ColorDefault {
		return ColorDefault
	}
	r, g, b := tc.RGB()
	return ColorFromRGB(uint8(r), uint8(g), uint8(b))
}
