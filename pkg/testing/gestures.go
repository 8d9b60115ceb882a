package testing

import (
	"math"

	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
)

// allocPointerID returns a fresh pointer identifier for this tester.
func (t *Tester) allocPointerID() int64 {
	t.nextID++
	return t.nextID
}

// Press synthesizes a primary mouse button press at position and
// returns the pointer id for the rest of the gesture.
func (t *Tester) Press(position graphics.Offset) int64 {
	return t.PressWith(position, gestures.PointerKindMouse, gestures.ButtonPrimary)
}

// Touch synthesizes a touch contact at position.
func (t *Tester) Touch(position graphics.Offset) int64 {
	return t.PressWith(position, gestures.PointerKindTouch, 0)
}

// PressWith synthesizes a pointer-down with an explicit device kind and
// button set.
func (t *Tester) PressWith(position graphics.Offset, kind gestures.PointerKind, buttons gestures.PointerButton) int64 {
	id := t.allocPointerID()
	t.dispatcher.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  position,
		Phase:     gestures.PointerPhaseDown,
		Kind:      kind,
		Buttons:   buttons,
	})
	return id
}

// MoveTo synthesizes a pointer move for an active pointer.
func (t *Tester) MoveTo(id int64, position graphics.Offset) {
	t.dispatcher.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  position,
		Phase:     gestures.PointerPhaseMove,
		Kind:      gestures.PointerKindMouse,
		Buttons:   gestures.ButtonPrimary,
	})
}

// Release synthesizes a pointer up at position.
func (t *Tester) Release(id int64, position graphics.Offset) {
	t.dispatcher.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Position:  position,
		Phase:     gestures.PointerPhaseUp,
		Kind:      gestures.PointerKindMouse,
	})
}

// CancelPointer synthesizes a pointer cancel for an active pointer.
func (t *Tester) CancelPointer(id int64) {
	t.dispatcher.HandlePointer(gestures.PointerEvent{
		PointerID: id,
		Phase:     gestures.PointerPhaseCancel,
		Kind:      gestures.PointerKindMouse,
	})
}

// Tap presses and releases at the same position.
func (t *Tester) Tap(position graphics.Offset) {
	id := t.Press(position)
	t.Release(id, position)
}

// DragArc presses on the rim of a circle and sweeps the pointer from
// fromAngle to toAngle in steps increments before releasing. Angles are
// knob angles in radians, zero at twelve o'clock increasing clockwise,
// so a positive sweep turns the knob up.
func (t *Tester) DragArc(center graphics.Offset, radius, fromAngle, toAngle float64, steps int) {
	if steps < 1 {
		steps = 1
	}
	id := t.Press(arcPoint(center, fromAngle, radius))
	for i := 1; i <= steps; i++ {
		angle := fromAngle + (toAngle-fromAngle)*float64(i)/float64(steps)
		t.MoveTo(id, arcPoint(center, angle, radius))
	}
	t.Release(id, arcPoint(center, toAngle, radius))
}

// arcPoint maps a knob angle to surface coordinates on a circle.
func arcPoint(center graphics.Offset, knobAngle, radius float64) graphics.Offset {
	geom := knobAngle - math.Pi/2
	return graphics.Offset{
		X: center.X + radius*math.Cos(geom),
		Y: center.Y + radius*math.Sin(geom),
	}
}
