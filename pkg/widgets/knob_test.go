package widgets_test

import (
	"math"
	gotesting "testing"

	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/knob"
	"github.com/go-drift/knob/pkg/rendering"
	"github.com/go-drift/knob/pkg/testing"
	"github.com/go-drift/knob/pkg/widgets"
)

func ptr(v float64) *float64 { return &v }

// knobCenter is where a default-size knob mounted at the origin rotates.
var knobCenter = graphics.Offset{X: 24, Y: 24}

func mountedState(t *gotesting.T, tester *testing.Tester, w widgets.Knob) *knob.State {
	t.Helper()
	w.Controller = tester.Controller()
	ro := tester.Mount(w)
	target, ok := ro.(knob.Target)
	if !ok {
		t.Fatal("knob render object does not expose its state")
	}
	return target.State()
}

func TestKnobDefaultDiameter(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	ro := tester.Mount(widgets.Knob{Controller: tester.Controller()})
	if got := ro.Size(); got.Width != 48 || got.Height != 48 {
		t.Fatalf("size = %v, want 48x48", got)
	}
}

func TestKnobCustomDiameterIsConstrained(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	tester.SetSize(graphics.Size{Width: 60, Height: 60})
	ro := tester.Mount(widgets.Knob{Diameter: 100, Controller: tester.Controller()})
	if got := ro.Size(); got.Width != 60 || got.Height != 60 {
		t.Fatalf("size = %v, want clamped to 60x60", got)
	}
}

func TestKnobDragHalfTurn(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	state := mountedState(t, tester, widgets.Knob{Divisions: 2})

	tester.DragArc(knobCenter, 20, 0, math.Pi, 12)

	if got := state.Value(); got != 0.5 {
		t.Fatalf("value = %v, want 0.5", got)
	}
}

func TestKnobInputFiresPerValueStep(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	var inputs []knob.InputEvent
	mountedState(t, tester, widgets.Knob{
		Divisions: 4,
		OnInput:   func(e knob.InputEvent) { inputs = append(inputs, e) },
	})

	// A quarter turn in many small samples crosses exactly one division
	// boundary, so only one input must fire.
	tester.DragArc(knobCenter, 20, 0, math.Pi/2, 16)

	if len(inputs) != 1 {
		t.Fatalf("inputs = %d, want 1: %v", len(inputs), inputs)
	}
	if inputs[0].Old != 0 || inputs[0].New != 0.25 {
		t.Fatalf("input = %+v, want {0 0.25}", inputs[0])
	}
}

func TestKnobChangeFiresOnceAtRelease(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	var changes []knob.ChangeEvent
	mountedState(t, tester, widgets.Knob{
		Divisions: 4,
		OnChange:  func(e knob.ChangeEvent) { changes = append(changes, e) },
	})

	tester.DragArc(knobCenter, 20, 0, math.Pi/2, 8)

	if len(changes) != 1 {
		t.Fatalf("changes = %d, want 1", len(changes))
	}
	if changes[0].Initial != 0 || changes[0].Final != 0.25 {
		t.Fatalf("change = %+v, want {0 0.25}", changes[0])
	}
}

func TestKnobRoundTripDragIsSilentAtRelease(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	var changes int
	mountedState(t, tester, widgets.Knob{
		Divisions: 4,
		OnChange:  func(knob.ChangeEvent) { changes++ },
	})

	id := tester.Press(graphics.Offset{X: 24, Y: 4})
	tester.MoveTo(id, graphics.Offset{X: 44, Y: 24}) // quarter turn out
	tester.MoveTo(id, graphics.Offset{X: 24, Y: 4})  // and back
	tester.Release(id, graphics.Offset{X: 24, Y: 4})

	if changes != 0 {
		t.Fatalf("changes = %d, want none for a round trip", changes)
	}
}

func TestKnobDragKeepsTrackingOutsideBounds(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	state := mountedState(t, tester, widgets.Knob{Divisions: 4})

	// Press on the knob, then sweep a quarter turn on a huge radius far
	// outside the 48x48 bounds.
	id := tester.Press(graphics.Offset{X: 24, Y: 4})
	tester.MoveTo(id, graphics.Offset{X: 24, Y: -150})
	tester.MoveTo(id, graphics.Offset{X: 150, Y: 24})
	tester.Release(id, graphics.Offset{X: 150, Y: 24})

	if got := state.Value(); got != 0.25 {
		t.Fatalf("value = %v, want 0.25", got)
	}
}

func TestKnobClampsDuringDrag(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	state := mountedState(t, tester, widgets.Knob{Min: ptr(0.0), Max: ptr(0.25)})

	tester.DragArc(knobCenter, 20, 0, math.Pi, 12)

	if got := state.Value(); got != 0.25 {
		t.Fatalf("value = %v, want pinned at 0.25", got)
	}
}

func TestKnobSecondaryButtonDoesNotDrag(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	state := mountedState(t, tester, widgets.Knob{})

	id := tester.PressWith(graphics.Offset{X: 24, Y: 4}, gestures.PointerKindMouse, gestures.ButtonSecondary)
	tester.MoveTo(id, graphics.Offset{X: 44, Y: 24})
	tester.Release(id, graphics.Offset{X: 44, Y: 24})

	if got := state.Value(); got != 0 {
		t.Fatalf("value = %v, want 0 after secondary-button drag", got)
	}
}

func TestKnobTouchDrags(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	state := mountedState(t, tester, widgets.Knob{Divisions: 4})

	id := tester.Touch(graphics.Offset{X: 24, Y: 4})
	tester.MoveTo(id, graphics.Offset{X: 44, Y: 24})
	tester.Release(id, graphics.Offset{X: 44, Y: 24})

	if got := state.Value(); got != 0.25 {
		t.Fatalf("value = %v, want 0.25", got)
	}
}

func TestKnobPaintRotationMatchesValue(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	tester.Mount(widgets.Knob{
		Value:        0.25,
		PointerColor: graphics.ColorWhite,
		Controller:   tester.Controller(),
	})

	var rotation *rendering.RotateOp
	for _, op := range tester.Paint().Ops() {
		if r, ok := op.(rendering.RotateOp); ok {
			rotation = &r
			break
		}
	}
	if rotation == nil {
		t.Fatal("no rotate op recorded")
	}
	if got, want := rotation.Radians, math.Pi/2; math.Abs(got-want) > 1e-12 {
		t.Fatalf("rotation = %v, want %v", got, want)
	}
}

func TestKnobUpdateRetightensValue(t *gotesting.T) {
	tester := testing.NewTesterWithT(t)
	w := widgets.Knob{Value: 0.8, Controller: tester.Controller()}
	ro := tester.Mount(w)

	w.Max = ptr(0.5)
	tester.Update(w)

	if got := ro.(knob.Target).State().Value(); got != 0.5 {
		t.Fatalf("value = %v, want 0.5 after max update", got)
	}
}
