package testing

import (
	"math"
	"testing"

	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/knob"
	"github.com/go-drift/knob/pkg/rendering"
	"github.com/go-drift/knob/pkg/widgets"
)

func TestMountLaysOutDefaultDiameter(t *testing.T) {
	tester := NewTesterWithT(t)
	ro := tester.Mount(widgets.Knob{Controller: tester.Controller()})

	size := ro.Size()
	if size.Width != 48 || size.Height != 48 {
		t.Fatalf("size = %v, want 48x48", size)
	}
}

func TestDragArcTurnsKnob(t *testing.T) {
	tester := NewTesterWithT(t)
	w := widgets.Knob{Divisions: 4, Controller: tester.Controller()}
	ro := tester.Mount(w)

	center := graphics.Offset{X: 24, Y: 24}
	tester.DragArc(center, 20, 0, math.Pi/2, 8)

	target, ok := ro.(knob.Target)
	if !ok {
		t.Fatal("render object does not expose knob state")
	}
	if got := target.State().Value(); got != 0.25 {
		t.Fatalf("value after quarter turn = %v, want 0.25", got)
	}
}

func TestDragArcCounterClockwiseIsNegative(t *testing.T) {
	tester := NewTesterWithT(t)
	ro := tester.Mount(widgets.Knob{Divisions: 8, Controller: tester.Controller()})

	center := graphics.Offset{X: 24, Y: 24}
	tester.DragArc(center, 20, 0, -math.Pi/4, 6)

	if got := ro.(knob.Target).State().Value(); got != -0.125 {
		t.Fatalf("value = %v, want -0.125", got)
	}
}

func TestTapDoesNotChangeValue(t *testing.T) {
	tester := NewTesterWithT(t)
	var inputs, changes int
	ro := tester.Mount(widgets.Knob{
		Controller: tester.Controller(),
		OnInput:    func(knob.InputEvent) { inputs++ },
		OnChange:   func(knob.ChangeEvent) { changes++ },
	})

	tester.Tap(graphics.Offset{X: 24, Y: 4})

	if got := ro.(knob.Target).State().Value(); got != 0 {
		t.Fatalf("value = %v, want 0", got)
	}
	if inputs != 0 || changes != 0 {
		t.Fatalf("inputs = %d, changes = %d, want 0, 0", inputs, changes)
	}
}

func TestPressOutsideKnobIsIgnored(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Mount(widgets.Knob{Controller: tester.Controller()})

	id := tester.Press(graphics.Offset{X: 200, Y: 200})
	if tester.Controller().Dragging() {
		t.Fatal("press outside the knob started a drag")
	}
	tester.Release(id, graphics.Offset{X: 200, Y: 200})
}

func TestPaintRecordsKnobOps(t *testing.T) {
	tester := NewTesterWithT(t)
	tester.Mount(widgets.Knob{
		FaceColor:    graphics.ColorBlack,
		PointerColor: graphics.ColorWhite,
		Controller:   tester.Controller(),
	})

	ops := tester.Paint().Ops()
	var circles, lines int
	for _, op := range ops {
		switch op.(type) {
		case rendering.DrawCircleOp:
			circles++
		case rendering.DrawLineOp:
			lines++
		}
	}
	if circles != 1 || lines != 1 {
		t.Fatalf("circles = %d, lines = %d, want 1 face and 1 indicator", circles, lines)
	}
}

func TestUpdateReconfiguresMountedKnob(t *testing.T) {
	tester := NewTesterWithT(t)
	ro := tester.Mount(widgets.Knob{Value: 0.9, Controller: tester.Controller()})

	maxVal := 0.5
	tester.Update(widgets.Knob{Value: 0.9, Max: &maxVal, Controller: tester.Controller()})

	if got := ro.(knob.Target).State().Value(); got != 0.5 {
		t.Fatalf("value after tightening max = %v, want 0.5", got)
	}
}
