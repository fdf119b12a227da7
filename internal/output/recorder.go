package output

import (
	"sync"

	"github.com/clekey/clekeyOVR/internal/input"
)

// EventKind classifies a recorded event.
type EventKind uint8

const (
	EventCommit EventKind = iota
	EventRune
	EventKey
)

// Event is one request received by a Recorder.
type Event struct {
	Kind EventKind
	Text string
	Key  Key
}

// Recorder keeps every request. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	limit  int
}

var (
	_ input.Sink = (*Recorder)(nil)
	_ Keystroker = (*Recorder)(nil)
)

// NewRecorder creates a recorder keeping at most limit events.
// A limit of 0 keeps everything.
func NewRecorder(limit int) *Recorder {
	return &Recorder{limit: limit}
}

func (r *Recorder) add(e Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	if r.limit > 0 && len(r.events) > r.limit {
		r.events = r.events[len(r.events)-r.limit:]
	}
	return nil
}

func (r *Recorder) Commit(text string) error {
	return r.add(Event{Kind: EventCommit, Text: text})
}

func (r *Recorder) Backspace() error { return r.Press(KeyBackspace) }

func (r *Recorder) NewLine() error { return r.Press(KeyEnter) }

func (r *Recorder) TypeRune(c rune) error {
	return r.add(Event{Kind: EventRune, Text: string(c)})
}

func (r *Recorder) Press(k Key) error {
	return r.add(Event{Kind: EventKey, Key: k})
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Last returns the most recent event.
func (r *Recorder) Last() (Event, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.events) == 0 {
		return Event{}, false
	}
	return r.events[len(r.events)-1], true
}
