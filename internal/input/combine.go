package input

import (
	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
)

// Combine returns the committed cell for this tick.
// A cell is committed when either trigger was just pressed and both hands
// point at a sector. The left hand gives the row, the right the column.
func Combine(left, right hand.State) (plane.Cell, bool) {
	if !left.ClickStarted() && !right.ClickStarted() {
		return 0, false
	}
	if !left.Selecting() || !right.Selecting() {
		return 0, false
	}
	return plane.CellAt(left.Selection, right.Selection), true
}
