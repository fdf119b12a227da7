package hand

// State is one hand's interpreted input, refreshed once per tick.
type State struct {
	// Stick is the raw stick position from the last update.
	Stick Vec2

	// Selection is the quantized direction, or NoSelection.
	Selection int

	// Clicking is the trigger sample from the last update.
	Clicking bool

	// ClickingOld is the trigger sample from the update before that.
	ClickingOld bool

	selectionOld int
}

// NewState returns a hand with no selection and the trigger released.
func NewState() State {
	return State{Selection: NoSelection, selectionOld: NoSelection}
}

// Update refreshes the hand from a device sample.
func (s *State) Update(stick Vec2, clicking bool) {
	s.Stick = stick
	s.selectionOld = s.Selection
	s.Selection = Quantize(stick, s.Selection)

	s.ClickingOld = s.Clicking
	s.Clicking = clicking
}

// ClickStarted returns true on the tick the trigger was pressed.
func (s State) ClickStarted() bool {
	return s.Clicking && !s.ClickingOld
}

// SelectionChanged returns true if the last update changed the selection.
func (s State) SelectionChanged() bool {
	return s.Selection != s.selectionOld
}

// Selecting returns true if the hand points at a sector.
func (s State) Selecting() bool {
	return s.Selection != NoSelection
}
