// Package engine connects a host's input events to a render tree:
// pointer-down events are hit tested against the tree, while move and
// up events are routed globally so drags keep tracking the pointer
// outside the originating widget.
package engine

import (
	"github.com/go-drift/knob/pkg/errors"
	"github.com/go-drift/knob/pkg/gestures"
	"github.com/go-drift/knob/pkg/graphics"
	"github.com/go-drift/knob/pkg/layout"
)

// Dispatcher routes host pointer events into a render tree.
//
// Dispatch order follows the interaction contract: a down event is
// delivered to the PointerHandlers found by hit testing at the event
// position; move, up, and cancel events bypass hit testing entirely and
// go to the global route table, because a drag in progress must keep
// receiving them wherever the pointer is.
//
// Dispatcher expects single-threaded use; hosts deliver events
// sequentially from their input loop.
type Dispatcher struct {
	root      layout.RenderObject
	router    *gestures.Router
	positions map[int64]graphics.Offset
	scale     float64
}

// NewDispatcher returns a dispatcher over root using the process-wide
// pointer router.
func NewDispatcher(root layout.RenderObject) *Dispatcher {
	return &Dispatcher{
		root:      root,
		router:    gestures.DefaultRouter,
		positions: make(map[int64]graphics.Offset),
		scale:     1,
	}
}

// NewDispatcherWithRouter returns a dispatcher using a private router,
// for hosts (and tests) that isolate their pointer pipeline.
func NewDispatcherWithRouter(root layout.RenderObject, router *gestures.Router) *Dispatcher {
	d := NewDispatcher(root)
	d.router = router
	return d
}

// SetRoot replaces the render tree used for hit testing.
func (d *Dispatcher) SetRoot(root layout.RenderObject) {
	d.root = root
}

// SetScale sets the device pixel ratio used to map host coordinates to
// logical coordinates. Values <= 0 are ignored.
func (d *Dispatcher) SetScale(scale float64) {
	if scale > 0 {
		d.scale = scale
	}
}

// HandlePointer ingests one host pointer event.
func (d *Dispatcher) HandlePointer(event gestures.PointerEvent) {
	defer errors.Recover("engine.HandlePointer")

	event.Position = graphics.Offset{
		X: event.Position.X / d.scale,
		Y: event.Position.Y / d.scale,
	}

	if event.Phase != gestures.PointerPhaseDown {
		if last, ok := d.positions[event.PointerID]; ok {
			event.Delta = event.Position.Sub(last)
		}
	}
	d.positions[event.PointerID] = event.Position

	if event.Phase == gestures.PointerPhaseUp || event.Phase == gestures.PointerPhaseCancel {
		delete(d.positions, event.PointerID)
	}

	switch event.Phase {
	case gestures.PointerPhaseDown:
		if d.root == nil {
			return
		}
		result := &layout.HitTestResult{}
		if !d.root.HitTest(event.Position, result) {
			return
		}
		for _, handler := range collectPointerHandlers(result.Entries) {
			handler.HandlePointer(event)
		}
	default:
		d.router.Route(event)
	}
}

// collectPointerHandlers extracts unique PointerHandler instances from
// hit test entries, preserving paint order.
func collectPointerHandlers(entries []layout.RenderObject) []layout.PointerHandler {
	handlers := make([]layout.PointerHandler, 0, len(entries))
	seen := make(map[layout.PointerHandler]struct{})
	for _, entry := range entries {
		if handler, ok := entry.(layout.PointerHandler); ok {
			if _, exists := seen[handler]; exists {
				continue
			}
			seen[handler] = struct{}{}
			handlers = append(handlers, handler)
		}
	}
	return handlers
}
