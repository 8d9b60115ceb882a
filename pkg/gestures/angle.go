package gestures

import (
	"math"

	"github.com/go-drift/knob/pkg/graphics"
)

// PointerAngle returns the angle of the pointer around center, in radians,
// with 0 pointing up and positive values running clockwise.
//
// The result is atan2 of the pointer relative to center plus π/2 and is
// deliberately not renormalized into (-π, π]; its range is (-π/2, 3π/2].
// AngleDelta performs its own wraparound correction, so consumers that
// only ever difference consecutive angles never observe the skew.
//
// A pointer exactly at center yields atan2(0, 0) + π/2 = π/2: arbitrary
// but deterministic, never an error.
func PointerAngle(center, pointer graphics.Offset) float64 {
	return math.Atan2(pointer.Y-center.Y, pointer.X-center.X) + math.Pi/2
}

// AngleDelta returns the signed shortest angular path from prev to next,
// in [-π, π]. Both inputs may come straight from PointerAngle; crossing
// the discontinuity in either direction is corrected here.
func AngleDelta(prev, next float64) float64 {
	delta := next - prev
	if delta < 0 {
		delta += 2 * math.Pi
	}
	if delta > math.Pi {
		delta -= 2 * math.Pi
	}
	return delta
}
