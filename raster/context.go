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

package raster

import (
	"image"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/vgcore/backend"
)

// Context draws onto an *image.RGBA.  It implements [backend.Backend].
//
// Device coordinates are relative to the top-left corner of the target
// image, with one unit per pixel.
type Context struct {
	dst     *image.RGBA
	rast    *Rasterizer
	state   state
	stack   []state
	scratch *image.RGBA
}

type state struct {
	ctm   matrix.Matrix
	paint backend.Paint
	op    backend.Operator

	// clip holds the coverage of the clip region, or nil if nothing is
	// clipped.  Masks are never modified after they are installed.
	clip *image.Alpha
}

var _ backend.Backend = (*Context)(nil)

// NewContext returns a Context which draws onto dst.
func NewContext(dst *image.RGBA) *Context {
	w, h := dst.Rect.Dx(), dst.Rect.Dy()
	return &Context{
		dst:  dst,
		rast: NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)}),
		state: state{
			ctm:   matrix.Identity,
			paint: backend.Solid{Color: opaqueBlack},
			op:    backend.SrcOver,
		},
	}
}

// New is a [backend.Factory] for the raster backend.
func New(dst *image.RGBA) backend.Backend {
	return NewContext(dst)
}

// Width returns the width of the target image in pixels.
func (c *Context) Width() int { return c.dst.Rect.Dx() }

// Height returns the height of the target image in pixels.
func (c *Context) Height() int { return c.dst.Rect.Dy() }

// SetMatrix sets the map from user space to device space.
func (c *Context) SetMatrix(m matrix.Matrix) { c.state.ctm = m }

// SetPaint selects the source for subsequent drawing operations.
func (c *Context) SetPaint(p backend.Paint) { c.state.paint = p }

// SetOperator selects the compositing operator.
func (c *Context) SetOperator(op backend.Operator) { c.state.op = op }

// FillPath fills p, given in user space, using the given fill rule.
func (c *Context) FillPath(p *path.Data, rule backend.FillRule) {
	if !c.prepare() {
		return
	}
	sh := c.newShader()
	if sh == nil {
		return
	}
	c.rast.Fill(p, rule, func(y, xMin int, coverage []float32) {
		c.blendSpan(sh, y, xMin, coverage)
	})
}

// StrokePath strokes the outline of p, given in user space.
func (c *Context) StrokePath(p *path.Data, style backend.StrokeStyle) {
	if !c.prepare() {
		return
	}
	sh := c.newShader()
	if sh == nil {
		return
	}
	c.rast.SetStrokeStyle(style)
	c.rast.Stroke(p, func(y, xMin int, coverage []float32) {
		c.blendSpan(sh, y, xMin, coverage)
	})
}

// ClipPath intersects the clip region with the interior of p.
func (c *Context) ClipPath(p *path.Data, rule backend.FillRule) {
	w, h := c.Width(), c.Height()
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if c.prepare() {
		old := c.state.clip
		c.rast.Fill(p, rule, func(y, xMin int, coverage []float32) {
			row := mask.Pix[y*mask.Stride:]
			for i, cov := range coverage {
				x := xMin + i
				a := coverageByte(cov)
				if old != nil {
					a = mulDiv255(a, old.Pix[y*old.Stride+x])
				}
				row[x] = a
			}
		})
	}
	c.state.clip = mask
}

// Paint fills the whole clip region with the current paint.
func (c *Context) Paint() {
	if !isFinite(c.state.ctm) {
		return
	}
	sh := c.newShader()
	if sh == nil {
		return
	}
	w, h := c.Width(), c.Height()
	full := make([]float32, w)
	for i := range full {
		full[i] = 1
	}
	for y := range h {
		c.blendSpan(sh, y, 0, full)
	}
}

// Save pushes a copy of the graphics state.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state)
}

// Restore pops the most recently saved graphics state.
func (c *Context) Restore() error {
	n := len(c.stack)
	if n == 0 {
		return backend.ErrRestoreUnderflow
	}
	c.state = c.stack[n-1]
	c.stack = c.stack[:n-1]
	return nil
}

// prepare loads the current matrix into the rasterizer.  The result is
// false if the matrix cannot be used for drawing.
func (c *Context) prepare() bool {
	m := c.state.ctm
	if !isFinite(m) || m[0]*m[3]-m[1]*m[2] == 0 {
		return false
	}
	c.rast.Reset(rect.Rect{URx: float64(c.Width()), URy: float64(c.Height())})
	c.rast.CTM = m
	return true
}

// blendSpan composites one row of shaded pixels onto the target image.
func (c *Context) blendSpan(sh shader, y, xMin int, coverage []float32) {
	dst := c.dst
	clip := c.state.clip
	op := c.state.op
	base := dst.PixOffset(dst.Rect.Min.X+xMin, dst.Rect.Min.Y+y)
	for i, cov := range coverage {
		a := coverageByte(cov)
		x := xMin + i
		if clip != nil {
			a = mulDiv255(a, clip.Pix[y*clip.Stride+x])
		}
		if a == 0 {
			continue
		}
		k := base + 4*i
		d := pixel(dst.Pix[k : k+4])
		res := composite(op, sh.shade(x, y), d)
		out := lerpPixel(d, res, a)
		copy(dst.Pix[k:k+4], out[:])
	}
}

func isFinite(m matrix.Matrix) bool {
	for _, v := range m {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
