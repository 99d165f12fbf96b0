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
	"image/color"
	"math"
	"slices"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/vgcore/backend"
)

// shader returns the premultiplied source colour for the device pixel
// with top-left corner (x, y).
type shader interface {
	shade(x, y int) pixel
}

type solidShader pixel

var opaqueBlack = color.NRGBA{A: 255}

func (s solidShader) shade(int, int) pixel { return pixel(s) }

// premultiply converts a straight-alpha colour to a premultiplied pixel.
func premultiply(c color.NRGBA) pixel {
	return pixel{mulDiv255(c.R, c.A), mulDiv255(c.G, c.A), mulDiv255(c.B, c.A), c.A}
}

// concat returns the matrix which applies a first and then b.
func concat(a, b matrix.Matrix) matrix.Matrix {
	return matrix.Matrix{
		a[0]*b[0] + a[1]*b[2],
		a[0]*b[1] + a[1]*b[3],
		a[2]*b[0] + a[3]*b[2],
		a[2]*b[1] + a[3]*b[3],
		a[4]*b[0] + a[5]*b[2] + b[4],
		a[4]*b[1] + a[5]*b[3] + b[5],
	}
}

// invert returns the inverse of m.  For singular or non-finite
// matrices, ok is false.
func invert(m matrix.Matrix) (inv matrix.Matrix, ok bool) {
	det := m[0]*m[3] - m[1]*m[2]
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return matrix.Matrix{}, false
	}
	return matrix.Matrix{
		m[3] / det,
		-m[1] / det,
		-m[2] / det,
		m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, true
}

// deviceToPaint returns the map from device space to the paint's own
// coordinate system.  The result is false if either matrix is singular,
// in which case the paint draws nothing.
func deviceToPaint(ctm, m matrix.Matrix) (matrix.Matrix, bool) {
	return invert(concat(m, ctm))
}

// lutSize is the number of precomputed colours per gradient.
const lutSize = 256

// gradientLUT holds premultiplied gradient colours at evenly spaced
// offsets in [0, 1].
type gradientLUT [lutSize]pixel

func newGradientLUT(stops []backend.GradientStop) *gradientLUT {
	stops = slices.Clone(stops)
	slices.SortStableFunc(stops, func(a, b backend.GradientStop) int {
		switch {
		case a.Offset < b.Offset:
			return -1
		case a.Offset > b.Offset:
			return 1
		}
		return 0
	})

	lut := &gradientLUT{}
	for i := range lut {
		t := float64(i) / (lutSize - 1)
		lut[i] = premultiply(colorAtOffset(stops, t))
	}
	return lut
}

// colorAtOffset interpolates the sorted stops at offset t.
func colorAtOffset(stops []backend.GradientStop, t float64) color.NRGBA {
	n := len(stops)
	if n == 0 {
		return color.NRGBA{}
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	if t >= stops[n-1].Offset {
		return stops[n-1].Color
	}

	// the first stop with an offset greater than t
	k, _ := slices.BinarySearchFunc(stops, t, func(s backend.GradientStop, t float64) int {
		if s.Offset <= t {
			return -1
		}
		return 1
	})
	a, b := stops[k-1], stops[k]
	span := b.Offset - a.Offset
	if span <= 0 {
		return b.Color
	}
	u := (t - a.Offset) / span
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + u*(float64(y)-float64(x))))
	}
	return color.NRGBA{
		R: mix(a.Color.R, b.Color.R),
		G: mix(a.Color.G, b.Color.G),
		B: mix(a.Color.B, b.Color.B),
		A: mix(a.Color.A, b.Color.A),
	}
}

// spread maps a gradient parameter into [0, 1].
func spread(t float64, method backend.SpreadMethod) float64 {
	switch method {
	case backend.SpreadRepeat:
		t -= math.Floor(t)
	case backend.SpreadReflect:
		t = math.Abs(t)
		period := math.Floor(t)
		t -= period
		if int64(period)%2 == 1 {
			t = 1 - t
		}
	default:
		t = max(0, min(1, t))
	}
	return t
}

func (lut *gradientLUT) at(t float64, method backend.SpreadMethod) pixel {
	t = spread(t, method)
	if math.IsNaN(t) {
		return pixel{}
	}
	return lut[int(t*(lutSize-1)+0.5)]
}

func (lut *gradientLUT) last() pixel {
	return lut[lutSize-1]
}

// linearShader evaluates a linear gradient.
type linearShader struct {
	inv    matrix.Matrix // device to gradient space
	x1, y1 float64
	dx, dy float64 // (x2-x1, y2-y1) / |x2-x1, y2-y1|²
	spread backend.SpreadMethod
	lut    *gradientLUT
}

func (s *linearShader) shade(x, y int) pixel {
	px, py := apply(s.inv, float64(x)+0.5, float64(y)+0.5)
	t := (px-s.x1)*s.dx + (py-s.y1)*s.dy
	return s.lut.at(t, s.spread)
}

// radialShader evaluates a two-point radial gradient, where the colour
// at offset t is found on the circle with centre f + t·(c-f) and
// radius t·r.
type radialShader struct {
	inv    matrix.Matrix // device to gradient space
	fx, fy float64
	cdx    float64 // c - f
	cdy    float64
	a      float64 // |c-f|² - r², negative
	spread backend.SpreadMethod
	lut    *gradientLUT
}

func (s *radialShader) shade(x, y int) pixel {
	px, py := apply(s.inv, float64(x)+0.5, float64(y)+0.5)
	pdx, pdy := px-s.fx, py-s.fy

	// solve a·t² - 2b·t + c = 0 for the larger root
	b := pdx*s.cdx + pdy*s.cdy
	c := pdx*pdx + pdy*pdy
	disc := b*b - s.a*c
	if disc < 0 {
		return pixel{}
	}
	t := (b - math.Sqrt(disc)) / s.a
	return s.lut.at(t, s.spread)
}

// focalMargin keeps the focal point strictly inside the end circle.
const focalMargin = 0.999

func newRadialShader(g *backend.RadialGradient, inv matrix.Matrix, lut *gradientLUT) shader {
	if !(g.R > 0) {
		return solidShader(lut.last())
	}
	fx, fy := g.FX, g.FY
	dx, dy := fx-g.CX, fy-g.CY
	if d := math.Hypot(dx, dy); d > g.R*focalMargin {
		k := g.R * focalMargin / d
		fx, fy = g.CX+dx*k, g.CY+dy*k
	}
	cdx, cdy := g.CX-fx, g.CY-fy
	return &radialShader{
		inv:    inv,
		fx:     fx,
		fy:     fy,
		cdx:    cdx,
		cdy:    cdy,
		a:      cdx*cdx + cdy*cdy - g.R*g.R,
		spread: g.Spread,
		lut:    lut,
	}
}

// textureShader samples a pre-transformed copy of a plain texture, or
// wraps device coordinates into a tiled texture.
type textureShader struct {
	img     *image.RGBA
	inv     matrix.Matrix // device to texture space, tiled only
	tiled   bool
	opacity uint8
}

func (s *textureShader) shade(x, y int) pixel {
	img := s.img
	if !s.tiled {
		if !(image.Point{X: x, Y: y}).In(img.Rect) {
			return pixel{}
		}
		k := img.PixOffset(x, y)
		return pixel(img.Pix[k : k+4]).scale(s.opacity)
	}

	w, h := img.Rect.Dx(), img.Rect.Dy()
	if w == 0 || h == 0 {
		return pixel{}
	}
	px, py := apply(s.inv, float64(x)+0.5, float64(y)+0.5)
	tx := wrap(int(math.Floor(px)), w)
	ty := wrap(int(math.Floor(py)), h)
	k := img.PixOffset(img.Rect.Min.X+tx, img.Rect.Min.Y+ty)
	return pixel(img.Pix[k : k+4]).scale(s.opacity)
}

func wrap(i, n int) int {
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

func apply(m matrix.Matrix, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// newShader prepares the current paint for drawing with the current
// matrix.  The result is nil if nothing would be painted.
func (c *Context) newShader() shader {
	ctm := c.state.ctm
	switch p := c.state.paint.(type) {
	case nil:
		return solidShader(premultiply(opaqueBlack))

	case backend.Solid:
		return solidShader(premultiply(p.Color))

	case *backend.LinearGradient:
		if len(p.Stops) == 0 {
			return nil
		}
		inv, ok := deviceToPaint(ctm, p.Matrix)
		if !ok {
			return nil
		}
		lut := newGradientLUT(p.Stops)
		dx, dy := p.X2-p.X1, p.Y2-p.Y1
		l2 := dx*dx + dy*dy
		if l2 == 0 {
			return solidShader(lut.last())
		}
		return &linearShader{
			inv:    inv,
			x1:     p.X1,
			y1:     p.Y1,
			dx:     dx / l2,
			dy:     dy / l2,
			spread: p.Spread,
			lut:    lut,
		}

	case *backend.RadialGradient:
		if len(p.Stops) == 0 {
			return nil
		}
		inv, ok := deviceToPaint(ctm, p.Matrix)
		if !ok {
			return nil
		}
		return newRadialShader(p, inv, newGradientLUT(p.Stops))

	case *backend.Texture:
		return c.newTextureShader(p)
	}
	return nil
}

func (c *Context) newTextureShader(p *backend.Texture) shader {
	if p.Source == nil || p.Source.Rect.Empty() {
		return nil
	}
	opacity := coverageByte(float32(p.Opacity))
	if opacity == 0 {
		return nil
	}

	m := concat(p.Matrix, c.state.ctm)
	inv, ok := invert(m)
	if !ok {
		return nil
	}
	if p.Type == backend.TextureTiled {
		return &textureShader{img: p.Source, inv: inv, tiled: true, opacity: opacity}
	}

	// Resample the texture into device space once; draws then read
	// from the copy.
	if c.scratch == nil || c.scratch.Rect.Dx() != c.Width() || c.scratch.Rect.Dy() != c.Height() {
		c.scratch = image.NewRGBA(image.Rect(0, 0, c.Width(), c.Height()))
	} else {
		clear(c.scratch.Pix)
	}
	// draw.Transform uses absolute source coordinates, while the paint
	// matrix expects coordinates relative to the image origin.
	ox, oy := float64(p.Source.Rect.Min.X), float64(p.Source.Rect.Min.Y)
	s2d := f64.Aff3{
		m[0], m[2], m[4] - m[0]*ox - m[2]*oy,
		m[1], m[3], m[5] - m[1]*ox - m[3]*oy,
	}
	draw.BiLinear.Transform(c.scratch, s2d, p.Source, p.Source.Rect, draw.Src, nil)
	return &textureShader{img: c.scratch, opacity: opacity}
}
