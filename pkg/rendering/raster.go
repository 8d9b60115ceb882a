package rendering

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/go-drift/knob/pkg/graphics"
)

// circleKappa is the cubic Bézier control distance approximating a
// quarter circle of unit radius.
const circleKappa = 0.5522847498307936

// affine is a 2D affine transform: x' = A*x + C*y + TX, y' = B*x + D*y + TY.
type affine struct {
	a, b, c, d, tx, ty float64
}

func identityAffine() affine {
	return affine{a: 1, d: 1}
}

func (m affine) apply(p graphics.Offset) graphics.Offset {
	return graphics.Offset{
		X: m.a*p.X + m.c*p.Y + m.tx,
		Y: m.b*p.X + m.d*p.Y + m.ty,
	}
}

// mul returns m·n (n applied first, then m).
func (m affine) mul(n affine) affine {
	return affine{
		a:  m.a*n.a + m.c*n.b,
		b:  m.b*n.a + m.d*n.b,
		c:  m.a*n.c + m.c*n.d,
		d:  m.b*n.c + m.d*n.d,
		tx: m.a*n.tx + m.c*n.ty + m.tx,
		ty: m.b*n.tx + m.d*n.ty + m.ty,
	}
}

// Rasterizer is a software Canvas backed by an RGBA image. Paths are
// filled with golang.org/x/image/vector, so output is antialiased
// without any native dependency. Suitable for snapshot rendering and
// offline frame export, not for per-frame UI composition.
type Rasterizer struct {
	img       *image.RGBA
	transform affine
	stack     []affine
}

var _ Canvas = (*Rasterizer)(nil)

// NewRasterizer returns a rasterizer drawing into a fresh transparent
// width×height image.
func NewRasterizer(width, height int) *Rasterizer {
	return &Rasterizer{
		img:       image.NewRGBA(image.Rect(0, 0, width, height)),
		transform: identityAffine(),
	}
}

// Image returns the backing image.
func (r *Rasterizer) Image() *image.RGBA {
	return r.img
}

// Save pushes the current transform state.
func (r *Rasterizer) Save() {
	r.stack = append(r.stack, r.transform)
}

// Restore pops the most recent transform state. Unbalanced restores are
// ignored.
func (r *Rasterizer) Restore() {
	if len(r.stack) == 0 {
		return
	}
	r.transform = r.stack[len(r.stack)-1]
	r.stack = r.stack[:len(r.stack)-1]
}

// Translate moves the origin by the given offset.
func (r *Rasterizer) Translate(dx, dy float64) {
	r.transform = r.transform.mul(affine{a: 1, d: 1, tx: dx, ty: dy})
}

// Rotate rotates the coordinate system by radians.
func (r *Rasterizer) Rotate(radians float64) {
	sin, cos := math.Sincos(radians)
	r.transform = r.transform.mul(affine{a: cos, b: sin, c: -sin, d: cos})
}

// Clear fills the entire image with the given color.
func (r *Rasterizer) Clear(c graphics.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{}, draw.Src)
}

// DrawRect draws a rectangle with the provided paint.
func (r *Rasterizer) DrawRect(rect graphics.Rect, paint Paint) {
	corners := []graphics.Offset{
		{X: rect.Left, Y: rect.Top},
		{X: rect.Right, Y: rect.Top},
		{X: rect.Right, Y: rect.Bottom},
		{X: rect.Left, Y: rect.Bottom},
	}
	if paint.Style == PaintStyleStroke {
		for i := range corners {
			r.DrawLine(corners[i], corners[(i+1)%len(corners)], paint)
		}
		return
	}
	r.fillPolygon(corners, paint.Color)
}

// DrawCircle draws a circle with the provided paint. Strokes are built
// as a ring: an outer circle wound one way and an inner circle wound
// the other, filled under the non-zero rule.
func (r *Rasterizer) DrawCircle(center graphics.Offset, radius float64, paint Paint) {
	z := r.newPathRasterizer()
	if paint.Style == PaintStyleStroke {
		half := paint.StrokeWidth / 2
		r.addCircle(z, center, radius+half, false)
		r.addCircle(z, center, math.Max(radius-half, 0), true)
	} else {
		r.addCircle(z, center, radius, false)
	}
	r.fill(z, paint.Color)
}

// DrawLine draws a line segment as a filled quad of the stroke width.
func (r *Rasterizer) DrawLine(start, end graphics.Offset, paint Paint) {
	width := paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	dx := end.X - start.X
	dy := end.Y - start.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// Perpendicular unit vector scaled to half the stroke width.
	nx := -dy / length * width / 2
	ny := dx / length * width / 2
	r.fillPolygon([]graphics.Offset{
		{X: start.X + nx, Y: start.Y + ny},
		{X: end.X + nx, Y: end.Y + ny},
		{X: end.X - nx, Y: end.Y - ny},
		{X: start.X - nx, Y: start.Y - ny},
	}, paint.Color)
}

func (r *Rasterizer) newPathRasterizer() *vector.Rasterizer {
	bounds := r.img.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	z.DrawOp = draw.Over
	return z
}

func (r *Rasterizer) fill(z *vector.Rasterizer, c graphics.Color) {
	z.Draw(r.img, r.img.Bounds(), image.NewUniform(toNRGBA(c)), image.Point{})
}

func (r *Rasterizer) fillPolygon(points []graphics.Offset, c graphics.Color) {
	if len(points) < 3 {
		return
	}
	z := r.newPathRasterizer()
	first := r.transform.apply(points[0])
	z.MoveTo(float32(first.X), float32(first.Y))
	for _, p := range points[1:] {
		tp := r.transform.apply(p)
		z.LineTo(float32(tp.X), float32(tp.Y))
	}
	z.ClosePath()
	r.fill(z, c)
}

// addCircle appends a four-segment cubic Bézier circle to the path,
// transformed by the current matrix. Reversed winding subtracts the
// circle under the non-zero fill rule.
func (r *Rasterizer) addCircle(z *vector.Rasterizer, center graphics.Offset, radius float64, reversed bool) {
	if radius <= 0 {
		return
	}
	k := radius * circleKappa
	// Control net for a clockwise circle starting at the right extremum.
	pts := [][3]graphics.Offset{
		{{X: center.X + radius, Y: center.Y + k}, {X: center.X + k, Y: center.Y + radius}, {X: center.X, Y: center.Y + radius}},
		{{X: center.X - k, Y: center.Y + radius}, {X: center.X - radius, Y: center.Y + k}, {X: center.X - radius, Y: center.Y}},
		{{X: center.X - radius, Y: center.Y - k}, {X: center.X - k, Y: center.Y - radius}, {X: center.X, Y: center.Y - radius}},
		{{X: center.X + k, Y: center.Y - radius}, {X: center.X + radius, Y: center.Y - k}, {X: center.X + radius, Y: center.Y}},
	}
	start := r.transform.apply(graphics.Offset{X: center.X + radius, Y: center.Y})
	z.MoveTo(float32(start.X), float32(start.Y))
	if reversed {
		for i := len(pts) - 1; i >= 0; i-- {
			var end graphics.Offset
			if i == 0 {
				end = graphics.Offset{X: center.X + radius, Y: center.Y}
			} else {
				end = pts[i-1][2]
			}
			c1 := r.transform.apply(pts[i][1])
			c2 := r.transform.apply(pts[i][0])
			e := r.transform.apply(end)
			z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(e.X), float32(e.Y))
		}
	} else {
		for _, seg := range pts {
			c1 := r.transform.apply(seg[0])
			c2 := r.transform.apply(seg[1])
			e := r.transform.apply(seg[2])
			z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(e.X), float32(e.Y))
		}
	}
	z.ClosePath()
}

func toNRGBA(c graphics.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		A: uint8(c >> 24),
	}
}
