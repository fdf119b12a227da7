// Package input turns two analog sticks into committed text.
//
// The keyboard is an 8x8 grid. The left stick picks the row and the right
// stick picks the column: each stick direction is quantized into one of
// eight compass sectors (see package hand). A cell is committed on the tick
// either trigger is pressed while both sticks point at a sector.
//
// # Components
//
//   - Combine: joins two hand states into a committed cell
//   - Manager: owns the planes and hand states, and runs one tick at a time
//   - Device: the controller the Manager reads every tick
//   - Sink: receives flushed text and keystroke requests
//   - View: read-only snapshot for renderers
//
// # Planes
//
// The Manager cycles through an ordered list of main planes (Japanese and
// English by default) and keeps one sign plane slot. The sign toggle swaps
// the active plane with that slot, so toggling twice restores the plane
// that was active before. Cycling to the next main plane resets the slot
// to the sign plane.
//
// # Usage
//
//	m, err := input.NewManager(
//	    []plane.Plane{plane.NewJapanese(), plane.NewEnglish()},
//	    plane.NewSigns(),
//	    input.WithLogger(logger),
//	)
//	if err != nil {
//	    return err
//	}
//
//	// Once per frame
//	res, err := m.Tick(device, sink)
//	if res.Closed {
//	    // hide the keyboard
//	}
//
// Tick is not safe for concurrent use. Call it from the frame loop only.
package input
