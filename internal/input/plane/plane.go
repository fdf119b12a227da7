package plane

import (
	"errors"
	"fmt"
)

// GridSize is the number of rows and columns in a table.
const GridSize = 8

// CellCount is the number of cells in a table.
const CellCount = GridSize * GridSize

// ErrUnknownPlane is returned when a plane name is not registered.
var ErrUnknownPlane = errors.New("unknown plane")

// Cell addresses one table position as row*8 + col.
type Cell uint8

// CellAt returns the cell at row, col.
// It panics if either coordinate is outside 0..7.
func CellAt(row, col int) Cell {
	if row < 0 || row >= GridSize || col < 0 || col >= GridSize {
		panic(fmt.Sprintf("plane: cell (%d,%d) out of range", row, col))
	}
	return Cell(row*GridSize + col)
}

// Row returns the cell's row.
func (c Cell) Row() int { return int(c) / GridSize }

// Col returns the cell's column.
func (c Cell) Col() int { return int(c) % GridSize }

// String returns the cell as "(row,col)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row(), c.Col())
}

// Navigation cells shared by every plane.
var (
	CellClose     = CellAt(5, 6)
	CellReturn    = CellAt(5, 7)
	CellBackspace = CellAt(6, 6)
	CellSpace     = CellAt(6, 7)
	CellSigns     = CellAt(7, 6)
	CellNextPlane = CellAt(7, 7)
)

// Table holds the label of every cell.
type Table [CellCount]string

// At returns the label at c.
func (t *Table) At(c Cell) string {
	return t[c]
}

// Action tells the keyboard what to do after a plane handled input.
type Action uint8

const (
	// Nop does nothing.
	Nop Action = iota
	// MoveToNextPlane cycles to the next main plane.
	MoveToNextPlane
	// MoveToSignPlane swaps the active plane with the sign plane slot.
	MoveToSignPlane
	// FlushBuffer commits the buffer.
	FlushBuffer
	// RemoveLastChar asks for a backspace keystroke outside the keyboard.
	RemoveLastChar
	// CloseKeyboard ends the keyboard session.
	CloseKeyboard
	// NewLine asks for a newline keystroke outside the keyboard.
	NewLine
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case Nop:
		return "nop"
	case MoveToNextPlane:
		return "next-plane"
	case MoveToSignPlane:
		return "sign-plane"
	case FlushBuffer:
		return "flush"
	case RemoveLastChar:
		return "remove-last-char"
	case CloseKeyboard:
		return "close"
	case NewLine:
		return "newline"
	default:
		return "unknown"
	}
}

// Flushes returns true if the keyboard commits the buffer before applying a.
func (a Action) Flushes() bool {
	switch a {
	case MoveToNextPlane, MoveToSignPlane, FlushBuffer, CloseKeyboard, NewLine:
		return true
	default:
		return false
	}
}

// HardButton identifies a physical controller button outside the sticks.
type HardButton uint8

const (
	// ButtonClose closes the keyboard. It also opens it when hidden.
	ButtonClose HardButton = iota
	// ButtonSuspend suspends input while held. It is handled by the
	// session and never delivered to planes.
	ButtonSuspend
)

// HardButtons lists the buttons delivered to OnHardInput.
var HardButtons = [...]HardButton{ButtonClose}

// String returns a human-readable button name.
func (b HardButton) String() string {
	switch b {
	case ButtonClose:
		return "close"
	case ButtonSuspend:
		return "suspend"
	default:
		return "unknown"
	}
}

// Plane is one input mode with its own table and buffer.
type Plane interface {
	// Name returns the unique plane identifier (e.g., "japanese").
	Name() string

	// OnInput handles a committed cell.
	OnInput(c Cell) Action

	// OnHardInput handles a hard button press.
	OnHardInput(b HardButton) Action

	// Table returns a copy of the current labels.
	Table() Table

	// Buffer returns the composed, not yet committed text.
	Buffer() string

	// TakeBuffer returns the buffer content and empties it.
	TakeBuffer() string
}

// Standard plane names.
const (
	NameJapanese = "japanese"
	NameEnglish  = "english"
	NameSigns    = "signs"
)

// Option configures a plane at construction.
type Option func(*options)

type options struct {
	direct bool
}

// WithDirect makes literal cells commit immediately. Japanese ignores it.
func WithDirect(direct bool) Option {
	return func(o *options) {
		o.direct = direct
	}
}

// New creates a plane by name.
func New(name string, opts ...Option) (Plane, error) {
	switch name {
	case NameJapanese:
		return NewJapanese(), nil
	case NameEnglish:
		return NewEnglish(opts...), nil
	case NameSigns:
		return NewSigns(opts...), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlane, name)
	}
}

// Names returns the names accepted by New.
func Names() []string {
	return []string{NameJapanese, NameEnglish, NameSigns}
}
