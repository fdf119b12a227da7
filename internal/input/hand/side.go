package hand

// Side identifies a controller.
type Side uint8

const (
	// Left is the left-hand controller. It selects grid rows.
	Left Side = iota
	// Right is the right-hand controller. It selects grid columns.
	Right
)

// Sides lists both controllers in tick order.
var Sides = [...]Side{Left, Right}

// String returns a human-readable side name.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other controller.
func (s Side) Opposite() Side {
	if s == Left {
		return Right
	}
	return Left
}
