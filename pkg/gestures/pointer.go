// Package gestures provides the pointer event model and angular-motion
// math used by interactive widgets.
//
// Hosts translate their native input events into PointerEvent values and
// hand them to the engine dispatcher. Widgets observe pointer-down events
// through hit testing; anything that needs to keep following a pointer
// after it leaves the widget's bounds (a drag in progress) registers a
// global route on a Router and receives every subsequent move/up event.
package gestures

import "github.com/go-drift/knob/pkg/graphics"

// PointerPhase identifies the lifecycle stage of a pointer event.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// String returns a human-readable representation of the pointer phase.
func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// PointerKind identifies the input device that produced an event.
type PointerKind int

const (
	PointerKindMouse PointerKind = iota
	PointerKindTouch
)

// PointerButton is a bitmask of pressed mouse buttons.
type PointerButton int

const (
	// ButtonPrimary is the left mouse button (or the only touch contact).
	ButtonPrimary PointerButton = 1 << iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent describes one pointer input sample in logical coordinates.
type PointerEvent struct {
	// PointerID distinguishes concurrent pointers (touch contacts).
	PointerID int64
	// Position is the pointer location relative to the surface origin.
	Position graphics.Offset
	// Delta is the movement since the previous event for this pointer.
	Delta graphics.Offset
	// Phase is the lifecycle stage.
	Phase PointerPhase
	// Kind is the producing device class.
	Kind PointerKind
	// Buttons holds the mouse buttons held down during the event.
	// For touch events the host sets ButtonPrimary.
	Buttons PointerButton
}

// IsPrimary reports whether the event comes from a touch contact or
// carries the primary mouse button. Widgets use this to gate the start
// of drag interactions.
func (e PointerEvent) IsPrimary() bool {
	return e.Kind == PointerKindTouch || e.Buttons&ButtonPrimary != 0
}
