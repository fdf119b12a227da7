package plane

var signsTable = Table{
	"(", "[", "{", "<", "/", ";", "-", "_",
	")", "]", "}", ">", "\\", ":", "+", "=",
	"“", ".", "?", "1", "2", "3", "4", "5",
	"‘", ",", "!", "6", "7", "8", "9", "0",
	"&", "*", "¥", "^", "%", "", "", "",
	"~", "`", "@", "$", "|", "", CloseLabel, ReturnIcon,
	"", "", "", "", "", "", BackspaceIcon, SpaceIcon,
	"", "", "", "", "", "", SignsIcon, NextPlaneIcon,
}

// Signs is the punctuation and digit plane reached through the sign toggle.
type Signs struct {
	base
	direct bool
}

// NewSigns creates a Signs plane.
func NewSigns(opts ...Option) *Signs {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &Signs{base: newBase(signsTable), direct: o.direct}
}

// Name returns "signs".
func (p *Signs) Name() string { return NameSigns }

// Direct returns true if literal cells commit immediately.
func (p *Signs) Direct() bool { return p.direct }

// OnInput handles a committed cell.
func (p *Signs) OnInput(c Cell) Action {
	if p.direct {
		if action, ok := p.navigateDirect(c); ok {
			return action
		}
	} else if action, ok := p.navigate(c); ok {
		return action
	}
	if !signsLiteral(c) {
		return Nop
	}
	return p.literal(c, p.direct)
}

// signsLiteral reports whether c enters its label: rows 0-3 always, rows
// 4-5 left of column 5. Rows 6-7 are reserved for navigation.
func signsLiteral(c Cell) bool {
	switch row := c.Row(); {
	case row < 4:
		return true
	case row < 6:
		return c.Col() < 5
	default:
		return false
	}
}
