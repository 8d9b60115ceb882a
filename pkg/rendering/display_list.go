package rendering

import "github.com/go-drift/knob/pkg/graphics"

// Op is a single recorded drawing command.
type Op interface {
	apply(c Canvas)
}

// SaveOp pushes transform state.
type SaveOp struct{}

func (SaveOp) apply(c Canvas) { c.Save() }

// RestoreOp pops transform state.
type RestoreOp struct{}

func (RestoreOp) apply(c Canvas) { c.Restore() }

// TranslateOp moves the origin.
type TranslateOp struct {
	DX float64
	DY float64
}

func (o TranslateOp) apply(c Canvas) { c.Translate(o.DX, o.DY) }

// RotateOp rotates the coordinate system.
type RotateOp struct {
	Radians float64
}

func (o RotateOp) apply(c Canvas) { c.Rotate(o.Radians) }

// ClearOp fills the whole surface.
type ClearOp struct {
	Color graphics.Color
}

func (o ClearOp) apply(c Canvas) { c.Clear(o.Color) }

// DrawRectOp draws a rectangle.
type DrawRectOp struct {
	Rect  graphics.Rect
	Paint Paint
}

func (o DrawRectOp) apply(c Canvas) { c.DrawRect(o.Rect, o.Paint) }

// DrawCircleOp draws a circle.
type DrawCircleOp struct {
	Center graphics.Offset
	Radius float64
	Paint  Paint
}

func (o DrawCircleOp) apply(c Canvas) { c.DrawCircle(o.Center, o.Radius, o.Paint) }

// DrawLineOp draws a line segment.
type DrawLineOp struct {
	Start graphics.Offset
	End   graphics.Offset
	Paint Paint
}

func (o DrawLineOp) apply(c Canvas) { c.DrawLine(o.Start, o.End, o.Paint) }

// DisplayList is a Canvas that records commands for later replay.
// Tests inspect the recorded ops; hosts replay them onto a real surface.
type DisplayList struct {
	ops []Op
}

var _ Canvas = (*DisplayList)(nil)

// Ops returns the recorded commands in order.
func (d *DisplayList) Ops() []Op {
	return d.ops
}

// Reset discards all recorded commands.
func (d *DisplayList) Reset() {
	d.ops = d.ops[:0]
}

// Replay issues the recorded commands against another canvas.
func (d *DisplayList) Replay(c Canvas) {
	for _, op := range d.ops {
		op.apply(c)
	}
}

func (d *DisplayList) Save()    { d.ops = append(d.ops, SaveOp{}) }
func (d *DisplayList) Restore() { d.ops = append(d.ops, RestoreOp{}) }

func (d *DisplayList) Translate(dx, dy float64) {
	d.ops = append(d.ops, TranslateOp{DX: dx, DY: dy})
}

func (d *DisplayList) Rotate(radians float64) {
	d.ops = append(d.ops, RotateOp{Radians: radians})
}

func (d *DisplayList) Clear(color graphics.Color) {
	d.ops = append(d.ops, ClearOp{Color: color})
}

func (d *DisplayList) DrawRect(rect graphics.Rect, paint Paint) {
	d.ops = append(d.ops, DrawRectOp{Rect: rect, Paint: paint})
}

func (d *DisplayList) DrawCircle(center graphics.Offset, radius float64, paint Paint) {
	d.ops = append(d.ops, DrawCircleOp{Center: center, Radius: radius, Paint: paint})
}

func (d *DisplayList) DrawLine(start, end graphics.Offset, paint Paint) {
	d.ops = append(d.ops, DrawLineOp{Start: start, End: end, Paint: paint})
}
