package plane

// Composition cells of the Japanese plane.
var (
	CellSmallKana  = CellAt(4, 5)
	CellDakuten    = CellAt(4, 6)
	CellHandakuten = CellAt(4, 7)
	cellJapanBlank = CellAt(5, 5)
)

// Labels of the Japanese commit pair.
const (
	JapaneseCloseLabel   = "閉じる"
	JapaneseConvertLabel = "変換"
	JapaneseCommitLabel  = "確定"
)

var japaneseTable = Table{
	"あ", "い", "う", "え", "お", "や", "ゆ", "よ",
	"か", "き", "く", "け", "こ", "わ", "を", "ん",
	"さ", "し", "す", "せ", "そ", "「", "。", "?",
	"た", "ち", "つ", "て", "と", "」", "、", "!",
	"な", "に", "ぬ", "ね", "の", "小", DakutenIcon, HandakutenIcon,
	"は", "ひ", "ふ", "へ", "ほ", "", JapaneseCloseLabel, ReturnIcon,
	"ま", "み", "む", "め", "も", "ー", BackspaceIcon, SpaceIcon,
	"ら", "り", "る", "れ", "ろ", "〜", SignsIcon, NextPlaneIcon,
}

// Japanese is a buffered hiragana plane with diacritic composition.
type Japanese struct {
	base
}

// NewJapanese creates a Japanese plane.
func NewJapanese() *Japanese {
	return &Japanese{base: newBase(japaneseTable)}
}

// Name returns "japanese".
func (p *Japanese) Name() string { return NameJapanese }

// OnInput handles a committed cell.
func (p *Japanese) OnInput(c Cell) Action {
	action := p.input(c)
	p.relabel()
	return action
}

func (p *Japanese) input(c Cell) Action {
	switch c {
	case CellSmallKana:
		p.buf.ReplaceLast(ToggleSmall)
		return Nop
	case CellDakuten:
		p.buf.ReplaceLast(ToggleDakuten)
		return Nop
	case CellHandakuten:
		p.buf.ReplaceLast(ToggleHandakuten)
		return Nop
	case cellJapanBlank:
		return Nop
	}

	if action, ok := p.navigate(c); ok {
		return action
	}
	return p.literal(c, false)
}

// TakeBuffer returns the buffer content and empties it.
func (p *Japanese) TakeBuffer() string {
	s := p.base.TakeBuffer()
	p.relabel()
	return s
}

// relabel updates the commit pair from buffer emptiness.
func (p *Japanese) relabel() {
	if p.buf.IsEmpty() {
		p.table[CellClose] = JapaneseCloseLabel
		p.table[CellReturn] = ReturnIcon
	} else {
		p.table[CellClose] = JapaneseConvertLabel
		p.table[CellReturn] = JapaneseCommitLabel
	}
}
