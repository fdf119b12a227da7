package hand

// Edge detects rising and falling transitions of a boolean input sampled
// once per tick.
type Edge struct {
	current  bool
	previous bool
}

// Update records this tick's sample and reports whether it is a press.
func (e *Edge) Update(down bool) bool {
	e.previous = e.current
	e.current = down
	return e.Started()
}

// Down returns the current sample.
func (e Edge) Down() bool {
	return e.current
}

// Started returns true on the tick the input went from up to down.
func (e Edge) Started() bool {
	return e.current && !e.previous
}

// Stopped returns true on the tick the input went from down to up.
func (e Edge) Stopped() bool {
	return !e.current && e.previous
}
