package plane

var englishTable = Table{
	"a", "A", "b", "B", "c", "C", "d", "D",
	"e", "E", "f", "F", "g", "G", "h", "H",
	"i", "I", "j", "J", "k", "K", "l", "L",
	"m", "M", "n", "N", "o", "O", "p", "P",
	"q", "Q", "r", "R", "s", "S", "?", "!",
	"t", "T", "u", "U", "v", "V", CloseLabel, ReturnIcon,
	"w", "W", "x", "X", "y", "Y", BackspaceIcon, SpaceIcon,
	"z", "Z", "\"", ".", "'", ",", SignsIcon, NextPlaneIcon,
}

// English is a Latin letter plane.
type English struct {
	base
	direct bool
}

// NewEnglish creates an English plane.
func NewEnglish(opts ...Option) *English {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &English{base: newBase(englishTable), direct: o.direct}
}

// Name returns "english".
func (p *English) Name() string { return NameEnglish }

// Direct returns true if literal cells commit immediately.
func (p *English) Direct() bool { return p.direct }

// OnInput handles a committed cell.
func (p *English) OnInput(c Cell) Action {
	if p.direct {
		if action, ok := p.navigateDirect(c); ok {
			return action
		}
	} else if action, ok := p.navigate(c); ok {
		return action
	}
	return p.literal(c, p.direct)
}
