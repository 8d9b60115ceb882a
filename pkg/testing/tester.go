// Package testing provides an isolated harness for exercising knob
// widgets without a real host: it mounts render objects, paints into a
// recording display list, and synthesizes pointer gestures through the
// same dispatcher a live host would use.
package testing

import (
	"testing"

	"github.com/go-drift/knob/pkg/engine"
	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/knob"
	"github.com/go-drift/knob/pkg/layout"
	"github.com/go-drift/knob/pkg/rendering"
	"github.com/go-drift/knob/pkg/widgets"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 400
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 400
)

// Tester drives widgets through mount, layout, paint, and pointer
// dispatch using a private router and drag controller, so parallel
// tests never share session state.
type Tester struct {
	router     *gestures.Router
	controller *knob.DragController
	dispatcher *engine.Dispatcher
	root       layout.RenderObject
	size       graphics.Size
	nextID     int64
}

// NewTester creates a tester with the default surface size.
func NewTester() *Tester {
	router := &gestures.Router{}
	t := &Tester{
		router:     router,
		controller: knob.NewDragController(router),
		dispatcher: engine.NewDispatcherWithRouter(nil, router),
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
	return t
}

// NewTesterWithT creates a tester bound to a test for cleanup.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup releases any drag session still in progress.
func (t *Tester) Cleanup() {
	if t.controller.Dragging() {
		t.dispatcher.HandlePointer(gestures.PointerEvent{
			PointerID: t.nextID,
			Phase:     gestures.PointerPhaseCancel,
		})
	}
}

// Controller returns the tester's private drag controller. Widgets
// mounted on this tester should set it as their Controller so sessions
// stay isolated from the process-wide default.
func (t *Tester) Controller() *knob.DragController {
	return t.controller
}

// SetSize sets the logical surface size. Must be called before Mount.
func (t *Tester) SetSize(size graphics.Size) {
	t.size = size
}

// Mount creates the widget's render object, lays it out against the
// surface, and makes it the hit-test root.
func (t *Tester) Mount(w widgets.Widget) layout.RenderObject {
	ro := w.CreateRenderObject()
	ro.Layout(layout.Loose(t.size), false)
	t.root = ro
	t.dispatcher.SetRoot(ro)
	return ro
}

// Update reconfigures the mounted render object from a new widget value
// and re-runs layout.
func (t *Tester) Update(w widgets.Widget) {
	if t.root == nil {
		return
	}
	w.UpdateRenderObject(t.root)
	t.Pump()
}

// Pump re-runs layout on the mounted tree.
func (t *Tester) Pump() {
	if t.root != nil {
		t.root.MarkNeedsLayout()
		t.root.Layout(layout.Loose(t.size), false)
	}
}

// RenderObject returns the mounted render object.
func (t *Tester) RenderObject() layout.RenderObject {
	return t.root
}

// Paint records the mounted tree's drawing commands.
func (t *Tester) Paint() *rendering.DisplayList {
	list := &rendering.DisplayList{}
	if t.root != nil {
		t.root.Paint(&layout.PaintContext{Canvas: list})
	}
	return list
}
