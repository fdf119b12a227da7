package app

// Status is the session state of the keyboard.
type Status uint8

const (
	// Waiting hides the keyboard until the Close button is pressed.
	Waiting Status = iota
	// Inputting ticks the keyboard every frame.
	Inputting
	// Suspending ignores input while the Suspend button is held.
	Suspending
)

func (s Status) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Inputting:
		return "inputting"
	case Suspending:
		return "suspending"
	default:
		return "unknown"
	}
}

// Visible returns true if the keyboard is drawn in this status.
func (s Status) Visible() bool {
	return s != Waiting
}
