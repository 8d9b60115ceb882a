package knob

import (
	"math"
	"testing"
)

func TestTransform_NonFiniteCoercesToZero(t *testing.T) {
	tests := []struct {
		name string
		raw  float64
	}{
		{"NaN", math.NaN()},
		{"positive infinity", math.Inf(1)},
		{"negative infinity", math.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Transform(tt.raw, NoMin, NoMax, 0); got != 0 {
				t.Errorf("Transform(%f) = %f, want 0", tt.raw, got)
			}
		})
	}
}

func TestTransform_Quantization(t *testing.T) {
	tests := []struct {
		raw  float64
		want float64
	}{
		{0.1, 0.0},
		{0.4, 0.5},
		{0.125, 0.25}, // tie rounds away from zero
		{-0.4, -0.5},
		{1.3, 1.25},
	}
	for _, tt := range tests {
		if got := Transform(tt.raw, NoMin, NoMax, 4); got != tt.want {
			t.Errorf("Transform(%f, divisions=4) = %f, want %f", tt.raw, got, tt.want)
		}
	}
}

func TestTransform_NoQuantizationBelowTwoDivisions(t *testing.T) {
	for _, divisions := range []int{0, 1} {
		if got := Transform(0.37, NoMin, NoMax, divisions); got != 0.37 {
			t.Errorf("divisions=%d: got %f, want 0.37 unchanged", divisions, got)
		}
	}
}

func TestTransform_Clamping(t *testing.T) {
	if got := Transform(-0.2, 0, 1, 0); got != 0 {
		t.Errorf("below min: got %f, want 0", got)
	}
	if got := Transform(1.5, 0, 1, 0); got != 1 {
		t.Errorf("above max: got %f, want 1", got)
	}
	if got := Transform(0.6, 0, 1, 0); got != 0.6 {
		t.Errorf("in range: got %f, want 0.6", got)
	}
}

func TestTransform_UnboundedSidesSkipClamping(t *testing.T) {
	if got := Transform(-100, NoMin, 1, 0); got != -100 {
		t.Errorf("unbounded min clamped: got %f", got)
	}
	if got := Transform(100, -1, NoMax, 0); got != 100 {
		t.Errorf("unbounded max clamped: got %f", got)
	}
	// NaN bounds behave as unbounded too.
	if got := Transform(42, math.NaN(), math.NaN(), 0); got != 42 {
		t.Errorf("NaN bounds clamped: got %f", got)
	}
}

func TestTransform_QuantizeThenClampOrder(t *testing.T) {
	// 0.9 quantizes to 1.0 first, then clamps down to max 0.95.
	if got := Transform(0.9, NoMin, 0.95, 2); got != 0.95 {
		t.Errorf("got %f, want 0.95", got)
	}
}

// TestTransform_BoundaryNonIdempotence documents (not fixes) the
// clamp-after-quantize interaction: when a bound is not a multiple of
// 1/divisions, a value parked exactly on that bound is not a fixed
// point of Transform, because re-quantization moves it off the bound
// before clamping re-applies. Downstream code relies on assignments
// being sanitized exactly once, so this behavior is pinned here.
func TestTransform_BoundaryNonIdempotence(t *testing.T) {
	const max = 0.3 // not a multiple of 1/4
	once := Transform(10, NoMin, max, 4)
	if once != max {
		t.Fatalf("first application: got %f, want %f", once, max)
	}
	twice := Transform(once, NoMin, max, 4)
	if twice == max {
		t.Fatalf("expected re-application to move off the bound, stayed at %f", twice)
	}
	if twice != 0.25 {
		t.Errorf("re-application: got %f, want 0.25", twice)
	}
}
