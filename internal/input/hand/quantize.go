package hand

import "math"

// NoSelection is reported when the stick is not pushed to the outer ring.
const NoSelection = -1

// Sectors is the number of compass sectors a stick resolves to.
const Sectors = 8

// Stick magnitude thresholds. A disengaged stick must cross EnterThreshold
// to select; an engaged stick keeps its selection until it drops below
// HoldThreshold.
const (
	EnterThreshold = 0.8
	HoldThreshold  = 0.75
)

const (
	enterSquared = EnterThreshold * EnterThreshold
	holdSquared  = HoldThreshold * HoldThreshold
)

// Vec2 is a stick position in [-1,1]².
type Vec2 struct {
	X, Y float64
}

// LengthSquared returns the squared magnitude.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// IsZero returns true for a centred stick.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Sector returns the compass sector of v: 0 is up, 2 is right, 4 is down,
// 6 is left.
func Sector(v Vec2) int {
	angle := int(math.Round(-math.Atan2(v.Y, v.X) / (math.Pi / 4)))
	return ((angle+2)%Sectors + Sectors) % Sectors
}

// Quantize maps a stick position to a selection given the previous one.
func Quantize(v Vec2, previous int) int {
	lenSq := v.LengthSquared()
	switch {
	case lenSq >= enterSquared:
		return Sector(v)
	case lenSq >= holdSquared && previous != NoSelection:
		return Sector(v)
	default:
		return NoSelection
	}
}
