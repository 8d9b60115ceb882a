// Package rendering provides the drawing surface abstraction: a Canvas
// interface, a recording DisplayList, and a software rasterizer for
// producing bitmaps without a GPU-backed host.
package rendering

import "github.com/go-drift/knob/pkg/graphics"

// PaintStyle selects between filling and stroking a shape.
type PaintStyle int

const (
	PaintStyleFill PaintStyle = iota
	PaintStyleStroke
)

// Paint describes how a shape is drawn.
type Paint struct {
	Color graphics.Color
	Style PaintStyle
	// StrokeWidth applies when Style is PaintStyleStroke.
	StrokeWidth float64
}

// FillPaint returns a fill paint with the given color.
func FillPaint(color graphics.Color) Paint {
	return Paint{Color: color}
}

// StrokePaint returns a stroke paint with the given color and width.
func StrokePaint(color graphics.Color, width float64) Paint {
	return Paint{Color: color, Style: PaintStyleStroke, StrokeWidth: width}
}

// Canvas records or renders drawing commands.
type Canvas interface {
	// Save pushes the current transform state.
	Save()

	// Restore pops the most recent transform state.
	Restore()

	// Translate moves the origin by the given offset.
	Translate(dx, dy float64)

	// Rotate rotates the coordinate system by radians.
	Rotate(radians float64)

	// Clear fills the entire canvas with the given color.
	Clear(color graphics.Color)

	// DrawRect draws a rectangle with the provided paint.
	DrawRect(rect graphics.Rect, paint Paint)

	// DrawCircle draws a circle with the provided paint.
	DrawCircle(center graphics.Offset, radius float64, paint Paint)

	// DrawLine draws a line segment with the provided paint.
	DrawLine(start, end graphics.Offset, paint Paint)
}
