package input

import (
	"github.com/clekey/clekeyOVR/internal/input/hand"
	"github.com/clekey/clekeyOVR/internal/input/plane"
)

// HandView is the renderable part of one hand's state.
type HandView struct {
	Stick     hand.Vec2
	Selection int
	Clicking  bool

	// OtherUndecided is true if the other hand points at no sector, so
	// only this hand's row or column can be previewed.
	OtherUndecided bool
}

// View is a snapshot of the keyboard for renderers.
type View struct {
	Plane  string
	Sign   bool
	Table  plane.Table
	Buffer string
	Hands  [len(hand.Sides)]HandView
}

// Cell returns the cell both hands point at, if any.
func (v View) Cell() (plane.Cell, bool) {
	l, r := v.Hands[hand.Left].Selection, v.Hands[hand.Right].Selection
	if l == hand.NoSelection || r == hand.NoSelection {
		return 0, false
	}
	return plane.CellAt(l, r), true
}

// View returns a snapshot of the current state.
func (m *Manager) View() View {
	v := View{
		Plane:  m.active.Name(),
		Sign:   m.SignActive(),
		Table:  m.active.Table(),
		Buffer: m.active.Buffer(),
	}
	for _, side := range hand.Sides {
		h := m.hands[side]
		v.Hands[side] = HandView{
			Stick:          h.Stick,
			Selection:      h.Selection,
			Clicking:       h.Clicking,
			OtherUndecided: !m.hands[side.Opposite()].Selecting(),
		}
	}
	return v
}
