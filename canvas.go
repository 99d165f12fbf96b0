// seehuhn.de/go/vgcore - a 2D vector graphics core
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package vgcore

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vgcore/backend"
)

const (
	// maxCanvasSize bounds the width and height of a canvas.
	maxCanvasSize = 1 << 24

	// maxCanvasPixels bounds the number of pixels of a canvas.
	maxCanvasPixels = 1 << 28

	// maxCanvasOffset bounds the absolute device position of a canvas.
	maxCanvasOffset = 1 << 30
)

// Canvas is a drawing surface located at an integer position in device
// space.  All drawing operations take a user-space transform, which is
// combined with the canvas offset so that the point (X(), Y()) maps to
// the top-left pixel of the surface.
//
// A Canvas is not safe for concurrent use.
type Canvas struct {
	x, y   int
	bitmap *Bitmap
	be     backend.Backend
	logger *slog.Logger
}

// NewCanvas returns a canvas covering the pixel-aligned hull of the
// rectangle with top-left corner (x, y) and size w×h.  Sizes which are
// not positive, too large or not finite give a 1×1 canvas at the
// origin.
func NewCanvas(x, y, w, h float64, opts ...Option) *Canvas {
	o := makeOptions(opts)
	if !(w > 0 && h > 0 && w <= maxCanvasSize && h <= maxCanvasSize) ||
		!(math.Abs(x) <= maxCanvasOffset && math.Abs(y) <= maxCanvasOffset) {
		o.log().Debug("degenerate canvas size",
			slog.Float64("x", x), slog.Float64("y", y),
			slog.Float64("w", w), slog.Float64("h", h))
		return newCanvas(0, 0, 1, 1, o)
	}
	left := int(math.Floor(x))
	top := int(math.Floor(y))
	right := int(math.Ceil(x + w))
	bottom := int(math.Ceil(y + h))
	return newCanvasChecked(left, top, right-left, bottom-top, o)
}

// NewCanvasRect returns a canvas for r, with all coordinates truncated
// to integers.  Degenerate rectangles give a 1×1 canvas at the origin.
func NewCanvasRect(r Rect, opts ...Option) *Canvas {
	o := makeOptions(opts)
	if !(math.Abs(r.X) <= maxCanvasOffset && math.Abs(r.Y) <= maxCanvasOffset &&
		r.W >= 0 && r.W <= maxCanvasSize && r.H >= 0 && r.H <= maxCanvasSize) {
		o.log().Debug("degenerate canvas rectangle",
			slog.Float64("x", r.X), slog.Float64("y", r.Y),
			slog.Float64("w", r.W), slog.Float64("h", r.H))
		return newCanvas(0, 0, 1, 1, o)
	}
	return newCanvasChecked(int(r.X), int(r.Y), int(r.W), int(r.H), o)
}

// NewCanvasFromBitmap returns a canvas at the origin which draws onto b.
// The canvas and the caller share the pixels of b.
func NewCanvasFromBitmap(b *Bitmap, opts ...Option) *Canvas {
	o := makeOptions(opts)
	return &Canvas{
		bitmap: b,
		be:     o.backend(b.img),
		logger: o.logger,
	}
}

func newCanvasChecked(x, y, w, h int, o options) *Canvas {
	if w <= 0 || h <= 0 || w > maxCanvasSize || h > maxCanvasSize ||
		int64(w)*int64(h) > maxCanvasPixels {
		o.log().Debug("degenerate canvas size",
			slog.Int("width", w), slog.Int("height", h))
		return newCanvas(0, 0, 1, 1, o)
	}
	return newCanvas(x, y, w, h, o)
}

func newCanvas(x, y, w, h int, o options) *Canvas {
	b := NewBitmap(w, h)
	return &Canvas{
		x:      x,
		y:      y,
		bitmap: b,
		be:     o.backend(b.img),
		logger: o.logger,
	}
}

func makeOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o options) log() *slog.Logger {
	if o.logger != nil {
		return o.logger
	}
	return Logger()
}

func (c *Canvas) log() *slog.Logger {
	if c.logger != nil {
		return c.logger
	}
	return Logger()
}

// X returns the device x coordinate of the left edge of the canvas.
func (c *Canvas) X() int { return c.x }

// Y returns the device y coordinate of the top edge of the canvas.
func (c *Canvas) Y() int { return c.y }

// Width returns the width of the canvas in pixels.
func (c *Canvas) Width() int { return c.bitmap.Width() }

// Height returns the height of the canvas in pixels.
func (c *Canvas) Height() int { return c.bitmap.Height() }

// Extents returns the area of device space covered by the canvas.
func (c *Canvas) Extents() Rect {
	return Rect{
		X: float64(c.x),
		Y: float64(c.y),
		W: float64(c.Width()),
		H: float64(c.Height()),
	}
}

// Bitmap returns the pixel surface of the canvas.
func (c *Canvas) Bitmap() *Bitmap { return c.bitmap }

// Surface returns the pixels of the canvas as an image.
func (c *Canvas) Surface() *image.RGBA { return c.bitmap.img }

// SetColor sets the paint to a solid colour.
func (c *Canvas) SetColor(col Color) {
	c.be.SetPaint(backend.Solid{Color: col.NRGBA()})
}

// SetColorRGBA sets the paint to a solid colour, with components in
// the range [0, 1].
func (c *Canvas) SetColorRGBA(r, g, b, a float64) {
	c.SetColor(ColorFromRGBAF(r, g, b, a))
}

// SetLinearGradient sets the paint to a linear gradient from (x1, y1) to
// (x2, y2).  The transform t maps gradient space to user space.
func (c *Canvas) SetLinearGradient(x1, y1, x2, y2 float64, spread SpreadMethod, stops GradientStops, t Transform) {
	c.checkPaintTransform("linear gradient", t)
	c.be.SetPaint(&backend.LinearGradient{
		X1:     x1,
		Y1:     y1,
		X2:     x2,
		Y2:     y2,
		Spread: spread,
		Stops:  stops.backend(),
		Matrix: t.Matrix(),
	})
}

// SetRadialGradient sets the paint to a radial gradient which starts at
// the focal point (fx, fy) and ends on the circle with centre (cx, cy)
// and radius r.  The transform t maps gradient space to user space.
func (c *Canvas) SetRadialGradient(cx, cy, r, fx, fy float64, spread SpreadMethod, stops GradientStops, t Transform) {
	c.checkPaintTransform("radial gradient", t)
	c.be.SetPaint(&backend.RadialGradient{
		CX:     cx,
		CY:     cy,
		R:      r,
		FX:     fx,
		FY:     fy,
		Spread: spread,
		Stops:  stops.backend(),
		Matrix: t.Matrix(),
	})
}

// SetTexture sets the paint to the pixels of src.  The transform t maps
// the pixel grid of src to user space.
func (c *Canvas) SetTexture(src *Canvas, typ TextureType, opacity float64, t Transform) {
	c.checkPaintTransform("texture", t)
	c.be.SetPaint(&backend.Texture{
		Source:  src.Surface(),
		Type:    typ,
		Opacity: opacity,
		Matrix:  t.Matrix(),
	})
}

// checkPaintTransform notes paints which will not draw anything.
func (c *Canvas) checkPaintTransform(kind string, t Transform) {
	if _, err := t.Inverse(); err != nil {
		c.log().Debug("paint transform not invertible",
			slog.String("paint", kind), slog.Any("transform", t))
	}
}

// setMatrix installs t, followed by the map from device space to canvas
// pixels.
func (c *Canvas) setMatrix(t Transform) {
	m := Translated(-float64(c.x), -float64(c.y)).Mul(t)
	c.be.SetMatrix(m.Matrix())
}

// FillPath fills p with the current paint.  The transform t maps the
// path to device space.
func (c *Canvas) FillPath(p *Path, rule FillRule, t Transform) {
	c.setMatrix(t)
	c.be.SetOperator(backend.SrcOver)
	c.be.FillPath(backendPath(p), rule)
}

// StrokePath strokes the outline of p with the current paint.
func (c *Canvas) StrokePath(p *Path, sd StrokeData, t Transform) {
	c.setMatrix(t)
	c.be.SetOperator(backend.SrcOver)
	c.be.StrokePath(backendPath(p), sd.style())
}

// ClipPath intersects the clip region with the interior of p.
func (c *Canvas) ClipPath(p *Path, rule FillRule, t Transform) {
	c.setMatrix(t)
	c.be.ClipPath(backendPath(p), rule)
}

// ClipRect intersects the clip region with r.  An empty or invalid
// rectangle clips everything.
func (c *Canvas) ClipRect(r Rect, rule FillRule, t Transform) {
	c.setMatrix(t)
	c.be.ClipPath(rectData(r.X, r.Y, r.W, r.H), rule)
}

// BlendCanvas composites src onto c, using the given blend mode and a
// global opacity.  Both canvases are placed at their device positions.
// The current paint is replaced.
func (c *Canvas) BlendCanvas(src *Canvas, mode BlendMode, opacity float64) {
	c.setMatrix(Translated(float64(src.x), float64(src.y)))
	c.be.SetOperator(mode)
	c.be.SetPaint(&backend.Texture{
		Source:  src.Surface(),
		Type:    TexturePlain,
		Opacity: opacity,
		Matrix:  matrix.Identity,
	})
	c.be.Paint()
}

// DrawImage draws the part src of img into the rectangle dst, both
// given in their own pixel coordinates, with dst mapped by t.  Nothing
// is drawn if either rectangle is empty.  Clip region and paint are
// left unchanged.
func (c *Canvas) DrawImage(img *Bitmap, dst, src Rect, t Transform) {
	if dst.IsEmpty() || src.IsEmpty() {
		return
	}
	xs := dst.W / src.W
	ys := dst.H / src.H
	tex := &backend.Texture{
		Source:  img.img,
		Type:    TexturePlain,
		Opacity: 1,
		Matrix:  matrix.Matrix{xs, 0, 0, ys, -src.X * xs, -src.Y * ys},
	}

	c.be.Save()
	c.setMatrix(t.Mul(Translated(dst.X, dst.Y)))
	c.be.ClipPath(rectData(0, 0, dst.W, dst.H), NonZero)
	c.be.SetOperator(backend.SrcOver)
	c.be.SetPaint(tex)
	c.be.Paint()
	if err := c.be.Restore(); err != nil {
		c.log().Error("DrawImage: unbalanced backend state", "error", err)
	}
}

// Save pushes the graphics state (matrix, paint, operator and clip
// region) onto a stack.
func (c *Canvas) Save() {
	c.be.Save()
}

// Restore pops the graphics state saved by the matching [Canvas.Save].
// Without a matching Save, the state is unchanged and
// [backend.ErrRestoreUnderflow] is returned.
func (c *Canvas) Restore() error {
	err := c.be.Restore()
	if err != nil {
		c.log().Warn("Restore without matching Save")
	}
	return err
}

// Clear sets all pixels to col, ignoring the clip region.
func (c *Canvas) Clear(col Color) {
	img := c.bitmap.img
	draw.Draw(img, img.Rect, image.NewUniform(col), image.Point{}, draw.Src)
}

// ConvertToLuminanceMask replaces every pixel by a mask pixel: the
// colour channels are cleared and alpha is set to the luminance
// (2R+3G+B)/6 of the stored premultiplied colour.
func (c *Canvas) ConvertToLuminanceMask() {
	img := c.bitmap.img
	w := img.Rect.Dx()
	for y := img.Rect.Min.Y; y < img.Rect.Max.Y; y++ {
		k := img.PixOffset(img.Rect.Min.X, y)
		row := img.Pix[k : k+4*w]
		for i := 0; i < len(row); i += 4 {
			r, g, b := uint32(row[i]), uint32(row[i+1]), uint32(row[i+2])
			l := (2*r + 3*g + b) / 6
			row[i], row[i+1], row[i+2], row[i+3] = 0, 0, 0, uint8(l)
		}
	}
}

func backendPath(p *Path) *path.Data {
	if p == nil {
		return &path.Data{}
	}
	return p.Data()
}

// rectData returns a closed rectangle.  Rectangles without area give an
// empty path.
func rectData(x, y, w, h float64) *path.Data {
	res := &path.Data{}
	if !(w > 0 && h > 0) {
		return res
	}
	return res.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}
