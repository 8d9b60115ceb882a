// Package layout defines the render-object contract interactive widgets
// implement: box layout under constraints, painting, and hit testing.
package layout

import "github.com/go-drift/knob/pkg/graphics"

// RenderObject handles layout, painting, and hit testing.
type RenderObject interface {
	Layout(constraints Constraints, parentUsesSize bool)
	Size() graphics.Size
	Paint(ctx *PaintContext)
	HitTest(position graphics.Offset, result *HitTestResult) bool
	ParentData() any
	SetParentData(data any)
	MarkNeedsLayout()
	MarkNeedsPaint()
}

// RenderBox is a RenderObject with box layout.
type RenderBox interface {
	RenderObject
}

// ChildVisitor is implemented by render objects that have children.
type ChildVisitor interface {
	// VisitChildren calls the visitor function for each child.
	VisitChildren(visitor func(RenderObject))
}

// BoxParentData stores the offset for a child in a box layout.
type BoxParentData struct {
	Offset graphics.Offset
}

// Constraints describe the box sizes a parent allows a child.
type Constraints struct {
	MinWidth  float64
	MaxWidth  float64
	MinHeight float64
	MaxHeight float64
}

// Tight returns constraints that admit exactly size.
func Tight(size graphics.Size) Constraints {
	return Constraints{
		MinWidth:  size.Width,
		MaxWidth:  size.Width,
		MinHeight: size.Height,
		MaxHeight: size.Height,
	}
}

// Loose returns constraints from zero up to size.
func Loose(size graphics.Size) Constraints {
	return Constraints{MaxWidth: size.Width, MaxHeight: size.Height}
}

// IsTight reports whether the constraints admit exactly one size.
func (c Constraints) IsTight() bool {
	return c.MinWidth == c.MaxWidth && c.MinHeight == c.MaxHeight
}

// Constrain returns the size closest to the input that satisfies the
// constraints.
func (c Constraints) Constrain(size graphics.Size) graphics.Size {
	return graphics.Size{
		Width:  min(max(size.Width, c.MinWidth), c.MaxWidth),
		Height: min(max(size.Height, c.MinHeight), c.MaxHeight),
	}
}

// RenderBoxBase provides base behavior for render boxes.
type RenderBoxBase struct {
	size        graphics.Size
	parentData  any
	self        RenderObject
	parent      RenderObject
	needsLayout bool
	needsPaint  bool
	constraints Constraints
}

// SetSelf registers the concrete render object so the base can invoke
// its PerformLayout. New render objects always need initial layout and
// paint.
func (r *RenderBoxBase) SetSelf(self RenderObject) {
	r.self = self
	r.needsLayout = true
	r.needsPaint = true
}

// Size returns the current size of the render box.
func (r *RenderBoxBase) Size() graphics.Size {
	return r.size
}

// SetSize updates the render box size and marks paint dirty on change.
func (r *RenderBoxBase) SetSize(size graphics.Size) {
	if r.size == size {
		return
	}
	r.size = size
	r.needsPaint = true
}

// ParentData returns the parent-assigned data for this render box.
func (r *RenderBoxBase) ParentData() any {
	return r.parentData
}

// SetParentData assigns parent-controlled data to this render box.
func (r *RenderBoxBase) SetParentData(data any) {
	r.parentData = data
}

// Parent returns the parent render object.
func (r *RenderBoxBase) Parent() RenderObject {
	return r.parent
}

// SetParent sets the parent render object and invalidates cached layout
// state so a reparented box re-lays out under its new ancestor.
func (r *RenderBoxBase) SetParent(parent RenderObject) {
	if r.parent == parent {
		return
	}
	r.parent = parent
	r.constraints = Constraints{}
	r.needsLayout = true
	r.needsPaint = true
}

// Constraints returns the last received constraints.
func (r *RenderBoxBase) Constraints() Constraints {
	return r.constraints
}

// NeedsLayout returns true if this render box needs layout.
func (r *RenderBoxBase) NeedsLayout() bool {
	return r.needsLayout
}

// NeedsPaint returns true if this render box needs painting.
func (r *RenderBoxBase) NeedsPaint() bool {
	return r.needsPaint
}

// ClearNeedsPaint marks this render object as painted.
func (r *RenderBoxBase) ClearNeedsPaint() {
	r.needsPaint = false
}

// MarkNeedsLayout marks this render box, and its ancestors, as needing
// layout.
func (r *RenderBoxBase) MarkNeedsLayout() {
	if r.needsLayout {
		return
	}
	r.needsLayout = true
	if r.parent != nil {
		r.parent.MarkNeedsLayout()
	}
}

// MarkNeedsPaint marks this render box, and its ancestors, as needing
// paint.
func (r *RenderBoxBase) MarkNeedsPaint() {
	if r.needsPaint {
		return
	}
	r.needsPaint = true
	if r.parent != nil {
		r.parent.MarkNeedsPaint()
	}
}

// Layout stores constraints, skips clean subtrees, and delegates to the
// concrete object's PerformLayout.
func (r *RenderBoxBase) Layout(constraints Constraints, parentUsesSize bool) {
	if !r.needsLayout && r.constraints == constraints {
		return
	}
	r.constraints = constraints
	r.needsLayout = false
	if performer, ok := r.self.(interface{ PerformLayout() }); ok {
		performer.PerformLayout()
	}
}

// SetParentOnChild sets the parent reference on a child render object,
// marking both old and new parent for layout when the parent changes.
func SetParentOnChild(child, parent RenderObject) {
	if child == nil {
		return
	}
	getter, _ := child.(interface{ Parent() RenderObject })
	setter, ok := child.(interface{ SetParent(RenderObject) })
	if !ok {
		return
	}
	currentParent := RenderObject(nil)
	if getter != nil {
		currentParent = getter.Parent()
	}
	if currentParent == parent {
		return
	}
	setter.SetParent(parent)
	if currentParent != nil {
		currentParent.MarkNeedsLayout()
	}
	if parent != nil {
		parent.MarkNeedsLayout()
	}
}

// AsRenderBox converts a RenderObject to a RenderBox.
// Returns nil if the child is nil or not a RenderBox.
func AsRenderBox(child RenderObject) RenderBox {
	box, _ := child.(RenderBox)
	return box
}

// WithinBounds checks if a position is within the given size.
func WithinBounds(position graphics.Offset, size graphics.Size) bool {
	return position.X >= 0 && position.Y >= 0 && position.X <= size.Width && position.Y <= size.Height
}

// AbsoluteOffset walks up the parent chain accumulating offsets from
// BoxParentData to compute the root-relative position of a render
// object.
func AbsoluteOffset(ro RenderObject) graphics.Offset {
	offset := graphics.Offset{}
	cur := ro
	for cur != nil {
		if pd, ok := cur.ParentData().(*BoxParentData); ok {
			offset.X += pd.Offset.X
			offset.Y += pd.Offset.Y
		}
		if parent, ok := cur.(interface{ Parent() RenderObject }); ok {
			cur = parent.Parent()
		} else {
			break
		}
	}
	return offset
}

// AbsoluteCenter returns the center of a render object in root-relative
// coordinates. Rotary widgets use this to resolve their rotation center
// against global pointer positions.
func AbsoluteCenter(ro RenderObject) graphics.Offset {
	size := ro.Size()
	abs := AbsoluteOffset(ro)
	return graphics.Offset{X: abs.X + size.Width/2, Y: abs.Y + size.Height/2}
}
