package plane

// Navigation cell labels.
const (
	BackspaceIcon = "⌫"
	SpaceIcon     = "␣"
	NextPlaneIcon = "\U0001F310" // 🌐
	SignsIcon     = "#+="
	ReturnIcon    = "⏎"
	CloseLabel    = "Close"

	// Dotted square followed by the combining voiced marks.
	DakutenIcon    = "\u2B1A\u3099"
	HandakutenIcon = "\u2B1A\u309A"
)
