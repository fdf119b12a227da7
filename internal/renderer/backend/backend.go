// Package backend provides the terminal abstraction the simulator draws on.
package backend

import "sync"

// EventType says which fields of an Event are set.
type EventType uint8

const (
	EventNone EventType = iota
	// EventKey sets Key, and Rune for KeyRune.
	EventKey
	// EventResize sets Width and Height.
	EventResize
	// EventInterrupt is a synthetic wake-up posted with PostEvent.
	EventInterrupt
)

// Event is one input event from the screen.
type Event struct {
	Type EventType
	Key  Key
	Rune rune

	Width, Height int
}

// Key is a key the simulator distinguishes. Every other key arrives as
// KeyOther.
type Key uint8

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyCtrlC
	KeyOther
)

// Backend is a cell grid plus an event source.
type Backend interface {
	// Init must be called before anything else.
	Init() error

	// Shutdown restores the terminal. PollEvent returns EventNone afterwards.
	Shutdown()

	Size() (width, height int)

	// SetCell ignores positions off screen; GetCell returns an empty cell
	// for them.
	SetCell(x, y int, cell Cell)
	GetCell(x, y int) Cell

	Fill(rect Rect, cell Cell)
	Clear()

	// Show flushes drawn cells to the display.
	Show()

	// PollEvent blocks until the next event.
	PollEvent() Event

	// PostEvent queues a synthetic event without blocking.
	PostEvent(event Event)
}

// NullBackend keeps cells in memory. It is used by tests and by renderers
// that draw nowhere.
type NullBackend struct {
	w, h  int
	grid  [][]Cell
	shows int

	queue   chan Event
	stopped chan struct{}
	stop    sync.Once
}

// NewNullBackend creates a w by h grid.
func NewNullBackend(w, h int) *NullBackend {
	return &NullBackend{
		w:       w,
		h:       h,
		queue:   make(chan Event, 100),
		stopped: make(chan struct{}),
	}
}

func (b *NullBackend) Init() error {
	b.reset()
	return nil
}

func (b *NullBackend) reset() {
	b.grid = make([][]Cell, b.h)
	for y := range b.grid {
		row := make([]Cell, b.w)
		for x := range row {
			row[x] = EmptyCell()
		}
		b.grid[y] = row
	}
}

func (b *NullBackend) Shutdown() {
	b.stop.Do(func() { close(b.stopped) })
}

func (b *NullBackend) Size() (int, int) { return b.w, b.h }

func (b *NullBackend) inside(x, y int) bool {
	return y >= 0 && y < len(b.grid) && x >= 0 && x < len(b.grid[y])
}

func (b *NullBackend) SetCell(x, y int, cell Cell) {
	if b.inside(x, y) {
		b.grid[y][x] = cell
	}
}

func (b *NullBackend) GetCell(x, y int) Cell {
	if !b.inside(x, y) {
		return EmptyCell()
	}
	return b.grid[y][x]
}

func (b *NullBackend) Fill(rect Rect, cell Cell) {
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			b.SetCell(x, y, cell)
		}
	}
}

func (b *NullBackend) Clear() {
	b.Fill(Rect{Bottom: b.h, Right: b.w}, EmptyCell())
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) PollEvent() Event {
	select {
	case ev := <-b.queue:
		return ev
	case <-b.stopped:
		return Event{Type: EventNone}
	}
}

// PostEvent drops the event when the queue is full.
func (b *NullBackend) PostEvent(event Event) {
	select {
	case b.queue <- event:
	default:
	}
}

// Shows returns how many frames were shown.
func (b *NullBackend) Shows() int {
	return b.shows
}

// Line returns row y as text, skipping the padding after wide cells.
func (b *NullBackend) Line(y int) string {
	if y < 0 || y >= len(b.grid) {
		return ""
	}
	var out []rune
	row := b.grid[y]
	for x := 0; x < len(row); {
		out = append(out, []rune(row[x].String())...)
		x += max(row[x].Width, 1)
	}
	return string(out)
}

// Resize changes the grid size, clears it and posts an EventResize.
func (b *NullBackend) Resize(w, h int) {
	b.w, b.h = w, h
	b.reset()
	b.PostEvent(Event{Type: EventResize, Width: w, Height: h})
}
