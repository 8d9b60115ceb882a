package knob

import (
	"math"

	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
)

// Target is the contract a draggable knob presents to the DragController.
type Target interface {
	// State is the value record the drag reads and writes.
	State() *State
	// Center resolves the knob's rotation center in the same coordinate
	// space as incoming pointer positions.
	Center() graphics.Offset
	// Notifier receives input/change notifications. May be nil.
	Notifier() Notifier
}

// DragController is the single state machine coordinating one rotary
// drag session.
//
// At most one session exists per controller, and widgets share the
// package-level Default controller, so at most one knob is tracked
// system-wide at any time. Beginning a new session always resets
// global route registration first, so two knobs can never be tracked
// simultaneously even after a missed pointer-up.
//
// The controller registers a global pointer route only while a session
// is active and removes it the instant the session ends, including on
// stray events observed with no active target.
type DragController struct {
	router  *gestures.Router
	route   gestures.RouteHandle
	session *dragSession
}

// dragSession is the per-drag state, meaningful only while a drag is in
// progress.
type dragSession struct {
	target Target
	// prevAngle is the pointer angle observed at the last processed event.
	prevAngle float64
	// proposed is the unclamped running accumulator of the drag,
	// distinct from the target's value which is always sanitized.
	proposed float64
	// initial is the target's value captured the instant the session
	// started.
	initial float64
}

// Default is the process-wide controller, shared by all knobs that do
// not override it. Single-writer discipline comes from the host's
// sequential event dispatch, not from locking.
var Default = NewDragController(gestures.DefaultRouter)

// NewDragController returns an idle controller routing global pointer
// events through router.
func NewDragController(router *gestures.Router) *DragController {
	return &DragController{router: router}
}

// Dragging reports whether a session is in progress.
func (c *DragController) Dragging() bool {
	return c.session != nil
}

// ActiveTarget returns the target being dragged, or nil when idle.
func (c *DragController) ActiveTarget() Target {
	if c.session == nil {
		return nil
	}
	return c.session.target
}

// Begin starts a drag session for target from a pointer-down event.
// It returns false, leaving the controller idle, unless the event
// comes from a touch contact or the primary mouse button.
//
// Any previous route registration is torn down first, regardless of
// whether the event is accepted.
func (c *DragController) Begin(target Target, event gestures.PointerEvent) bool {
	c.reset()
	if target == nil || !event.IsPrimary() {
		return false
	}
	value := target.State().Value()
	c.session = &dragSession{
		target:    target,
		prevAngle: gestures.PointerAngle(target.Center(), event.Position),
		proposed:  value,
		initial:   value,
	}
	c.route = c.router.AddGlobalRoute(c.handlePointer)
	return true
}

// handlePointer is the global route installed for the lifetime of a
// session. Down events are ignored here; they arrive through hit
// testing and Begin.
func (c *DragController) handlePointer(event gestures.PointerEvent) {
	switch event.Phase {
	case gestures.PointerPhaseMove:
		c.move(event)
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		c.end()
	}
}

// move advances the session by one pointer sample: the wraparound-
// corrected angular delta becomes a value delta in turns, accumulates
// into the unclamped proposal, and the sanitized result lands in the
// target's state. An input notification fires only when the sanitized
// value actually changed.
func (c *DragController) move(event gestures.PointerEvent) {
	s := c.session
	if s == nil {
		// Stray event with no active target.
		c.reset()
		return
	}
	angle := gestures.PointerAngle(s.target.Center(), event.Position)
	delta := gestures.AngleDelta(s.prevAngle, angle)
	s.prevAngle = angle
	c.advance(delta)
}

// advance applies a raw angular delta, in radians, to the running
// proposal and pushes the sanitized result into the target.
func (c *DragController) advance(deltaAngle float64) {
	s := c.session
	if s == nil {
		return
	}
	s.proposed += deltaAngle / (2 * math.Pi)

	state := s.target.State()
	old := state.Value()
	state.SetValue(s.proposed)
	if next := state.Value(); next != old {
		if n := s.target.Notifier(); n != nil {
			n.Input(InputEvent{Old: old, New: next})
		}
	}
}

// end closes the session on pointer release. A change notification
// fires only if the value at release differs from the value at press;
// a drag that returns to its starting value is silent.
func (c *DragController) end() {
	s := c.session
	if s != nil {
		final := s.target.State().Value()
		if final != s.initial {
			if n := s.target.Notifier(); n != nil {
				n.Change(ChangeEvent{Initial: s.initial, Final: final})
			}
		}
	}
	c.reset()
}

// reset clears session state and global route registration.
func (c *DragController) reset() {
	if c.route != nil {
		c.router.RemoveGlobalRoute(c.route)
		c.route = nil
	}
	c.session = nil
}
