package knob

import "math"

// State is the per-knob value record: the current value plus the range
// and quantization configuration that every assignment is checked
// against.
//
// All mutation goes through the setters, which re-route the stored
// value through Transform, so the invariant "value is the Transform of
// the last assignment" holds at all times. State carries no
// synchronization; the host's single-threaded event dispatch is the
// only writer.
type State struct {
	value     float64
	min       float64
	max       float64
	divisions int
}

// NewState returns an unbounded, unquantized state with value 0.
func NewState() *State {
	return &State{min: NoMin, max: NoMax}
}

// Value returns the current sanitized value, in turns.
func (s *State) Value() float64 {
	return s.value
}

// SetValue assigns a new value, routed through Transform.
func (s *State) SetValue(v float64) {
	s.value = Transform(v, s.min, s.max, s.divisions)
}

// Min returns the inclusive lower bound (NoMin when unbounded).
func (s *State) Min() float64 {
	return s.min
}

// SetMin updates the lower bound and re-sanitizes the current value.
func (s *State) SetMin(min float64) {
	s.min = min
	s.SetValue(s.value)
}

// Max returns the inclusive upper bound (NoMax when unbounded).
func (s *State) Max() float64 {
	return s.max
}

// SetMax updates the upper bound and re-sanitizes the current value.
func (s *State) SetMax(max float64) {
	s.max = max
	s.SetValue(s.value)
}

// Divisions returns the number of discrete steps per full turn.
// 0 and 1 both mean "no quantization".
func (s *State) Divisions() int {
	return s.divisions
}

// SetDivisions updates the step count and re-sanitizes the current
// value. Negative counts normalize to 0.
func (s *State) SetDivisions(divisions int) {
	if divisions < 0 {
		divisions = 0
	}
	s.divisions = divisions
	s.SetValue(s.value)
}

// Rotation returns the current value as a rotation in radians, for
// renderers applying the knob's pointer transform.
func (s *State) Rotation() float64 {
	return s.value * 2 * math.Pi
}
