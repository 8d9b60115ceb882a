// Package widgets provides the rotary knob control and the widget
// contract its render object is built against.
package widgets

import (
	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/knob"
	"github.com/go-drift/knob/pkg/layout"
	"github.com/go-drift/knob/pkg/rendering"
)

// Widget configures a render object. Hosts call CreateRenderObject once
// to build the object and UpdateRenderObject on subsequent configuration
// changes.
type Widget interface {
	CreateRenderObject() layout.RenderObject
	UpdateRenderObject(renderObject layout.RenderObject)
}

// defaultKnobDiameter is used when no diameter is specified.
const defaultKnobDiameter = 48.0

// Knob is a rotary input control: dragging around its center rotates
// the knob, and the rotation encodes a bounded, optionally quantized
// value measured in turns (1.0 is one full revolution).
//
// During a drag the knob fires OnInput for every step that changes the
// sanitized value, and a single OnChange at release if the final value
// differs from the value when the drag began. A drag that returns to
// its starting value before release is silent.
//
// # Creation Pattern
//
// Use struct literal. Nil Min/Max mean unbounded; Divisions 0 or 1 mean
// no quantization:
//
//	widgets.Knob{
//	    Value:     0.25,
//	    Min:       ptr(0.0),
//	    Max:       ptr(1.0),
//	    Divisions: 10,
//	    OnInput:   func(e knob.InputEvent) { preview(e.New) },
//	    OnChange:  func(e knob.ChangeEvent) { commit(e.Final) },
//	}
//
// A drag may leave the knob's bounds and keep tracking the pointer;
// only a pointer release ends it. Only one knob can be dragged at a
// time: all knobs share a single drag controller unless Controller
// overrides it.
type Knob struct {
	// Value is the initial value, in turns.
	Value float64
	// Min is the inclusive lower bound. Nil means unbounded.
	Min *float64
	// Max is the inclusive upper bound. Nil means unbounded.
	Max *float64
	// Divisions is the number of discrete steps per full turn.
	Divisions int
	// Diameter is the preferred diameter in logical pixels. Zero means
	// the default size.
	Diameter float64
	// FaceColor is the knob face fill. Zero means no face.
	FaceColor graphics.Color
	// PointerColor is the rotation indicator color. Zero means no indicator.
	PointerColor graphics.Color
	// OnInput is called during a drag whenever the value changes.
	OnInput func(knob.InputEvent)
	// OnChange is called at drag end if the value differs from drag start.
	OnChange func(knob.ChangeEvent)
	// Controller overrides the shared drag controller (used in tests and
	// multi-surface hosts). Nil means knob.Default.
	Controller *knob.DragController
}

func (k Knob) CreateRenderObject() layout.RenderObject {
	r := &renderKnob{state: knob.NewState()}
	r.SetSelf(r)
	r.configure(k)
	return r
}

func (k Knob) UpdateRenderObject(renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderKnob); ok {
		r.configure(k)
		r.MarkNeedsPaint()
	}
}

// renderKnob is the render object for Knob. It owns the value state and
// hands itself to the drag controller as the session target on
// pointer-down.
type renderKnob struct {
	layout.RenderBoxBase
	state        *knob.State
	notifier     knob.Notifier
	controller   *knob.DragController
	diameter     float64
	faceColor    graphics.Color
	pointerColor graphics.Color
}

var _ layout.PointerHandler = (*renderKnob)(nil)
var _ knob.Target = (*renderKnob)(nil)

func (r *renderKnob) configure(k Knob) {
	// Constraints first, value last, so the value lands already
	// sanitized under the new configuration.
	r.state.SetDivisions(k.Divisions)
	if k.Min != nil {
		r.state.SetMin(*k.Min)
	} else {
		r.state.SetMin(knob.NoMin)
	}
	if k.Max != nil {
		r.state.SetMax(*k.Max)
	} else {
		r.state.SetMax(knob.NoMax)
	}
	r.state.SetValue(k.Value)

	r.notifier = knob.NotifierFuncs{OnInput: k.OnInput, OnChange: k.OnChange}
	r.controller = k.Controller
	if r.controller == nil {
		r.controller = knob.Default
	}
	r.diameter = k.Diameter
	if r.diameter <= 0 {
		r.diameter = defaultKnobDiameter
	}
	r.faceColor = k.FaceColor
	r.pointerColor = k.PointerColor
}

func (r *renderKnob) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(constraints.Constrain(graphics.Size{Width: r.diameter, Height: r.diameter}))
}

func (r *renderKnob) Paint(ctx *layout.PaintContext) {
	size := r.Size()
	radius := min(size.Width, size.Height) / 2
	if radius <= 0 {
		return
	}

	canvas := ctx.Canvas
	canvas.Save()
	canvas.Translate(size.Width/2, size.Height/2)
	if r.faceColor != graphics.ColorTransparent {
		canvas.DrawCircle(graphics.Offset{}, radius, rendering.FillPaint(r.faceColor))
	}
	if r.pointerColor != graphics.ColorTransparent {
		canvas.Rotate(r.state.Rotation())
		canvas.DrawLine(
			graphics.Offset{},
			graphics.Offset{Y: -radius * 0.8},
			rendering.StrokePaint(r.pointerColor, radius*0.1),
		)
	}
	canvas.Restore()
}

func (r *renderKnob) HitTest(position graphics.Offset, result *layout.HitTestResult) bool {
	if !layout.WithinBounds(position, r.Size()) {
		return false
	}
	result.Add(r)
	return true
}

// HandlePointer starts a drag session on pointer-down. Move and up
// events are not handled here: once a session starts, the controller
// observes them through its global route, so the drag keeps tracking
// the pointer after it leaves the knob's bounds.
func (r *renderKnob) HandlePointer(event gestures.PointerEvent) {
	if event.Phase == gestures.PointerPhaseDown {
		r.controller.Begin(r, event)
	}
}

// State implements knob.Target.
func (r *renderKnob) State() *knob.State {
	return r.state
}

// Center implements knob.Target, resolving the rotation center in
// root-relative coordinates.
func (r *renderKnob) Center() graphics.Offset {
	return layout.AbsoluteCenter(r)
}

// Notifier implements knob.Target.
func (r *renderKnob) Notifier() knob.Notifier {
	return r.notifier
}
