// Package knob implements the value and drag-session core of a rotary
// input control.
//
// A knob's externally visible value is measured in turns (1.0 is one
// full revolution) and is always the result of Transform: sanitized,
// optionally quantized to a whole number of divisions per turn, and
// clamped to the configured range. During a drag the DragController
// keeps a separate unclamped accumulator, so the knob resumes tracking
// the pointer naturally after the value has pinned at a bound.
package knob

import "math"

// NoMin and NoMax are the canonical "unbounded" range endpoints.
// Transform treats any non-finite bound (including NaN) as unbounded.
var (
	NoMin = math.Inf(-1)
	NoMax = math.Inf(1)
)

// Transform sanitizes a raw candidate value against a knob configuration.
//
// The steps run in this exact order:
//  1. a non-finite raw value is replaced with 0
//  2. with divisions >= 2, raw snaps to the nearest multiple of 1/divisions
//  3. raw is clamped to max, then
//  4. clamped to min
//
// Quantizing before clamping means a bound that is not itself a multiple
// of 1/divisions is not a fixed point: re-applying Transform to a value
// sitting on such a bound moves it off again. That ordering is part of
// the contract; see the boundary test before changing it.
//
// Transform is total: every float64 input, NaN and infinities included,
// maps to a well-defined result.
func Transform(raw, min, max float64, divisions int) float64 {
	if !isFinite(raw) {
		raw = 0
	}
	if divisions >= 2 {
		d := float64(divisions)
		raw = math.Round(raw*d) / d
	}
	if isFinite(max) && raw > max {
		raw = max
	}
	if isFinite(min) && raw < min {
		raw = min
	}
	return raw
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
