// Package hand interprets one controller's raw input.
//
// Each hand contributes an analog stick and a click trigger. The stick is
// quantized into one of eight compass sectors (0 is up, increasing
// clockwise) with hysteresis on the stick magnitude, so the selection does
// not flicker at the outer ring boundary. The trigger is passed through an
// edge detector so a press fires exactly once regardless of polling rate.
package hand
