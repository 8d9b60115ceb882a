package gestures

// PointerRoute receives pointer events routed globally, independent of
// hit testing.
type PointerRoute func(event PointerEvent)

// routeHandle gives each registered route a stable identity so the same
// function can be added and removed without comparing closures.
type routeHandle struct {
	route PointerRoute
}

// RouteHandle identifies a registered global route.
type RouteHandle = *routeHandle

// Router delivers pointer events to globally registered routes.
//
// Routes exist so a drag can keep tracking the pointer after it leaves
// the originating widget's bounds: the widget registers a route when the
// drag starts and removes it the moment the drag ends, bounding listener
// lifetime to at most one active drag.
//
// Router is not synchronized. Like the rest of the pointer pipeline it
// expects the host's single-threaded event dispatch to serialize access.
type Router struct {
	routes []RouteHandle
}

// DefaultRouter is the process-wide router used by the engine dispatcher.
var DefaultRouter = &Router{}

// AddGlobalRoute registers route for every subsequent event and returns
// a handle for removal.
func (r *Router) AddGlobalRoute(route PointerRoute) RouteHandle {
	h := &routeHandle{route: route}
	r.routes = append(r.routes, h)
	return h
}

// RemoveGlobalRoute unregisters a route. Removing a handle twice, or a
// handle that was never registered, is a no-op.
func (r *Router) RemoveGlobalRoute(h RouteHandle) {
	for i, existing := range r.routes {
		if existing == h {
			r.routes = append(r.routes[:i], r.routes[i+1:]...)
			return
		}
	}
}

// Route delivers the event to every registered route in registration
// order. Routes added or removed during delivery take effect on the
// next event.
func (r *Router) Route(event PointerEvent) {
	snapshot := make([]RouteHandle, len(r.routes))
	copy(snapshot, r.routes)
	for _, h := range snapshot {
		h.route(event)
	}
}

// HasRoutes reports whether any global route is registered.
func (r *Router) HasRoutes() bool {
	return len(r.routes) > 0
}
