package plane

import "github.com/clekey/clekeyOVR/internal/engine/buffer"

// base holds the table and buffer owned by each plane.
type base struct {
	table Table
	buf   *buffer.Buffer
}

func newBase(table Table) base {
	return base{table: table, buf: buffer.New()}
}

func (b *base) Table() Table {
	return b.table
}

func (b *base) Buffer() string {
	return b.buf.String()
}

func (b *base) TakeBuffer() string {
	return b.buf.Take()
}

func (b *base) OnHardInput(button HardButton) Action {
	switch button {
	case ButtonClose:
		return CloseKeyboard
	default:
		return Nop
	}
}

// navigate handles the shared navigation cells for a buffered plane.
// Returns false if c is not a navigation cell.
func (b *base) navigate(c Cell) (Action, bool) {
	switch c {
	case CellClose:
		if b.buf.IsEmpty() {
			return CloseKeyboard, true
		}
		// Conversion is not implemented; the cell is inert while composing.
		return Nop, true
	case CellReturn:
		if b.buf.IsEmpty() {
			return NewLine, true
		}
		return FlushBuffer, true
	case CellBackspace:
		if !b.buf.RemoveLast() {
			return RemoveLastChar, true
		}
		return Nop, true
	case CellSpace:
		b.buf.Append(' ')
		return Nop, true
	case CellSigns:
		return MoveToSignPlane, true
	case CellNextPlane:
		return MoveToNextPlane, true
	default:
		return Nop, false
	}
}

// navigateDirect handles the shared navigation cells for a direct plane.
func (b *base) navigateDirect(c Cell) (Action, bool) {
	switch c {
	case CellClose:
		return CloseKeyboard, true
	case CellReturn:
		return NewLine, true
	case CellBackspace:
		return RemoveLastChar, true
	case CellSpace:
		b.buf.Reset()
		b.buf.Append(' ')
		return FlushBuffer, true
	case CellSigns:
		return MoveToSignPlane, true
	case CellNextPlane:
		return MoveToNextPlane, true
	default:
		return Nop, false
	}
}

// literal enters the label at c. Blank cells are inert.
func (b *base) literal(c Cell, direct bool) Action {
	label := b.table[c]
	if label == "" {
		return Nop
	}
	if direct {
		b.buf.Reset()
		b.buf.AppendString(label)
		return FlushBuffer
	}
	b.buf.AppendString(label)
	return Nop
}
