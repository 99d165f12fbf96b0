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

// Package raster implements a software rasterization backend.
//
// The [Rasterizer] turns paths into per-pixel coverage values, and
// [Context] uses it to implement [backend.Backend] on top of an
// *image.RGBA surface.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/vgcore/backend"
)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes, for every pixel touched by a path, the fraction
// of the pixel area which lies inside the filled or stroked path.
// Internal buffers are kept between calls, so that a long-lived
// Rasterizer reaches a steady state without allocations.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM maps user space to device space. Must be non-singular.
	CTM matrix.Matrix

	// Clip restricts the output to an integer-aligned rectangle
	// in device coordinates.
	Clip rect.Rect

	// Flatness is the maximal distance, in device pixels, between a curve
	// and its polygonal approximation.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap and Join select the stroke end point and corner styles.
	Cap  graphics.LineCapStyle
	Join graphics.LineJoinStyle

	// MiterLimit bounds the ratio of miter length to line width.
	// Longer miters are drawn as bevels.
	MiterLimit float64

	// Dash holds alternating on/off lengths in user-space units.
	// Nil means solid.
	Dash []float64

	// DashPhase is the distance into the dash pattern where stroking starts.
	DashPhase float64

	// smallPathThreshold is the largest bounding box area, in pixels,
	// which is rasterized using full 2D accumulation buffers.  Larger
	// paths use an active edge list and one scanline of buffers.
	smallPathThreshold int

	cover       []float32 // per-pixel signed cover, reused for the output
	area        []float32 // per-pixel area term
	edges       []edge
	activeIdx   []int
	rowHasEdges []bool

	// stroke outlines, all polygons stored back to back
	stroke        []vec.Vec2
	strokeOffsets []int

	// flattened stroke input
	segs             []strokeSegment
	segsOffsets      []int
	subpathClosed    []bool
	degeneratePoints []vec.Vec2

	// bounding box of the collected edges
	bboxEmpty          bool
	bboxXMin, bboxXMax float64
	bboxYMin, bboxYMax float64

	// output of the dasher
	dashedSegs []strokeSegment
	dashRuns   []dashRun
}

// NewRasterizer returns a Rasterizer for the given clip rectangle.
// All other parameters are set to their default values.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	r := &Rasterizer{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is retained.
func (r *Rasterizer) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit
	r.Dash = nil
	r.DashPhase = 0
	if r.smallPathThreshold == 0 {
		r.smallPathThreshold = smallPathThreshold
	}
}

// SetStrokeStyle copies the stroke parameters from s.
// A degenerate dash pattern (see [backend.StrokeStyle.IsDashed]) selects
// a solid line.
func (r *Rasterizer) SetStrokeStyle(s backend.StrokeStyle) {
	r.Width = s.Width
	r.MiterLimit = max(s.MiterLimit, 1)
	switch s.Cap {
	case backend.CapRound:
		r.Cap = graphics.LineCapRound
	case backend.CapSquare:
		r.Cap = graphics.LineCapSquare
	default:
		r.Cap = graphics.LineCapButt
	}
	switch s.Join {
	case backend.JoinRound:
		r.Join = graphics.LineJoinRound
	case backend.JoinBevel:
		r.Join = graphics.LineJoinBevel
	default:
		r.Join = graphics.LineJoinMiter
	}
	if s.IsDashed() {
		r.Dash = s.Dash
		r.DashPhase = s.DashOffset
	} else {
		r.Dash = nil
		r.DashPhase = 0
	}
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasterizer) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the quadratic Bézier curve p0, p1, p2 by
// line segments and passes these to emit.  The number of segments is
// chosen so that the error in device space stays below Flatness.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2, emit func(from, to vec.Vec2)) {
	dev := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)).Length()
	n := 1
	if dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		emit(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the cubic Bézier curve p0, …, p3 by line
// segments and passes these to emit.  The segment count follows Wang's
// formula, evaluated in device space.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2, emit func(from, to vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	m := max(d1.Length(), d2.Length())
	n := 1
	if m > 0 {
		if nf := math.Sqrt(3 * m / (4 * r.Flatness)); nf > 1 {
			n = int(math.Ceil(nf))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		emit(prev, pt)
		prev = pt
	}
}

// Fill rasterizes the interior of p using the given fill rule.
// Open sub-paths are closed implicitly.
//
// Coverage is passed to emit one row at a time.  The slice is only
// valid during the call.
func (r *Rasterizer) Fill(p *path.Data, rule backend.FillRule, emit func(y, xMin int, coverage []float32)) {
	if rule == backend.EvenOdd {
		r.fill(p, fillEvenOdd, emit)
	} else {
		r.fill(p, fillNonZero, emit)
	}
}

// FillNonZero rasterizes p using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillNonZero, emit)
}

// FillEvenOdd rasterizes p using the even-odd rule.
func (r *Rasterizer) FillEvenOdd(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	r.fill(p, fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

func (r *Rasterizer) fill(p *path.Data, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	if p == nil {
		return
	}
	r.beginEdges()
	r.collectPathEdges(p)
	r.rasterizeEdges(rule, emit)
}

// rasterizeEdges converts the collected edge list into coverage.
func (r *Rasterizer) rasterizeEdges(rule fillRule, emit func(y, xMin int, coverage []float32)) {
	xMin, xMax, yMin, yMax, ok := r.edgeBounds()
	if !ok {
		return
	}
	if (xMax-xMin)*(yMax-yMin) < r.smallPathThreshold {
		r.fillSmallPath(xMin, xMax, yMin, yMax, rule, emit)
	} else {
		r.fillLargePath(xMin, xMax, yMin, yMax, rule, emit)
	}
}

// collectPathEdges adds the edges of p, mapped to device space, to the
// edge list.
func (r *Rasterizer) collectPathEdges(p *path.Data) {
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++

		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			open = true
			k++

		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addEdge)
			current = p.Coords[k+1]
			open = true
			k += 2

		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addEdge)
			current = p.Coords[k+2]
			open = true
			k += 3

		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		r.addEdge(current, start)
	}
}

// beginEdges clears the edge list.
func (r *Rasterizer) beginEdges() {
	r.edges = r.edges[:0]
	r.bboxEmpty = true
}

// addEdge maps a user-space segment to device space and appends it to
// the edge list.  Horizontal edges do not contribute and are dropped.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	m := &r.CTM
	x0 := m[0]*p0.X + m[2]*p0.Y + m[4]
	y0 := m[1]*p0.X + m[3]*p0.Y + m[5]
	x1 := m[0]*p1.X + m[2]*p1.Y + m[4]
	y1 := m[1]*p1.X + m[3]*p1.Y + m[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.bboxEmpty {
		r.bboxXMin, r.bboxXMax = min(x0, x1), max(x0, x1)
		r.bboxYMin, r.bboxYMax = min(y0, y1), max(y0, y1)
		r.bboxEmpty = false
		return
	}
	r.bboxXMin = min(r.bboxXMin, x0, x1)
	r.bboxXMax = max(r.bboxXMax, x0, x1)
	r.bboxYMin = min(r.bboxYMin, y0, y1)
	r.bboxYMax = max(r.bboxYMax, y0, y1)
}

// edgeBounds returns the pixel range covered by the edge list, clamped
// to the clip rectangle.
func (r *Rasterizer) edgeBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.bboxXMin)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.bboxXMax))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.bboxYMin)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.bboxYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Each pixel accumulates two quantities while edges are processed:
//
//	cover: the signed vertical extent of all edge pieces in the column
//	area:  cover weighted by the horizontal distance to the right
//	       pixel border, i.e. the part of the pixel right of the edge
//
// Sweeping a scanline from left to right, the running sum of cover plus
// the area term of the current pixel gives the signed winding coverage.
// Nonzero clamps its absolute value to [0,1], even-odd folds it.

// accumulateEdge adds the contribution of e within scanline y to the
// buffers, which are indexed by x-bboxXMin.  Edges left of the buffer
// range add their full cover to the first pixel.
func (r *Rasterizer) accumulateEdge(e *edge, y int, cover, area []float32, bboxXMin, bboxXMax int) {
	yTop := max(float64(y), min(e.y0, e.y1))
	yBot := min(float64(y+1), max(e.y0, e.y1))
	if yBot <= yTop {
		return
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(yTop-e.y0)
	xBot := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xTop, xBot)))
	pixRight := int(math.Floor(max(xTop, xBot)))

	switch {
	case pixRight < bboxXMin:
		c := sign * float32(yBot-yTop)
		cover[0] += c
		area[0] += c
		return
	case pixLeft >= bboxXMax:
		return
	case pixLeft == pixRight:
		r.accumulateSpan(e, yTop, yBot, sign, pixLeft, cover, area, bboxXMin, bboxXMax)
		return
	}

	// The edge crosses several pixel columns; split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		segTop := max(min(ya, yb), yTop)
		segBot := min(max(ya, yb), yBot)
		if segBot <= segTop {
			continue
		}
		r.accumulateSpan(e, segTop, segBot, sign, pix, cover, area, bboxXMin, bboxXMax)
	}
}

// accumulateSpan adds the part of e between yTop and yBot, which lies
// within pixel column pix.
func (r *Rasterizer) accumulateSpan(e *edge, yTop, yBot float64, sign float32, pix int, cover, area []float32, bboxXMin, bboxXMax int) {
	c := sign * float32(yBot-yTop)
	if pix < bboxXMin {
		cover[0] += c
		area[0] += c
		return
	}
	if pix >= bboxXMax {
		return
	}

	xMid := e.x0 + e.dxdy*((yTop+yBot)/2-e.y0)
	frac := xMid - float64(pix)
	idx := pix - bboxXMin
	cover[idx] += c
	area[idx] += c * float32(1-frac)
}

// integrateNonZero turns the accumulated cover/area values of one
// scanline into nonzero coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := abs32(acc + area[i])
		acc += cover[i]
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns the accumulated cover/area values of one
// scanline into even-odd coverage, in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := abs32(acc + area[i])
		acc += cover[i]
		v -= 2 * float32(int(v/2))
		cover[i] = 1 - abs32(1-v)
	}
}

func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// trimZeros strips leading and trailing zeros from a coverage row.
// For an all-zero row, trimmed is nil.
func trimZeros(coverage []float32) (trimmed []float32, offset int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

// fillSmallPath accumulates all edges into 2D buffers covering the
// bounding box, then integrates row by row.
func (r *Rasterizer) fillSmallPath(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	height := yMax - yMin

	size := width * height
	r.cover = slices.Grow(r.cover[:0], size)[:size]
	r.area = slices.Grow(r.area[:0], size)[:size]
	clear(r.cover)
	clear(r.area)
	r.rowHasEdges = slices.Grow(r.rowHasEdges[:0], height)[:height]
	clear(r.rowHasEdges)

	for i := range r.edges {
		e := &r.edges[i]
		top := max(int(math.Floor(min(e.y0, e.y1))), yMin)
		bot := min(int(math.Floor(max(e.y0, e.y1)))+1, yMax)
		for y := top; y < bot; y++ {
			row := y - yMin
			off := row * width
			r.accumulateEdge(e, y, r.cover[off:off+width], r.area[off:off+width], xMin, xMax)
			r.rowHasEdges[row] = true
		}
	}

	for row := range height {
		if !r.rowHasEdges[row] {
			continue
		}
		off := row * width
		coverage := r.cover[off : off+width]
		r.integrate(rule, coverage, r.area[off:off+width])
		if trimmed, k := trimZeros(coverage); trimmed != nil {
			emit(yMin+row, xMin+k, trimmed)
		}
	}
}

// fillLargePath walks the scanlines with an active edge list, using
// buffers for a single row only.
func (r *Rasterizer) fillLargePath(xMin, xMax, yMin, yMax int, rule fillRule, emit func(y, xMin int, coverage []float32)) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		yf := float64(y)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < yf+1 {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if max(e.y0, e.y1) <= yf {
				last := len(r.activeIdx) - 1
				r.activeIdx[i] = r.activeIdx[last]
				r.activeIdx = r.activeIdx[:last]
				continue
			}
			r.accumulateEdge(e, y, r.cover, r.area, xMin, xMax)
			touched = true
			i++
		}
		if !touched {
			continue
		}

		r.integrate(rule, r.cover, r.area)
		if trimmed, k := trimZeros(r.cover); trimmed != nil {
			emit(y, xMin+k, trimmed)
		}
	}
}

func (r *Rasterizer) integrate(rule fillRule, cover, area []float32) {
	if rule == fillNonZero {
		integrateNonZero(cover, area)
	} else {
		integrateEvenOdd(cover, area)
	}
}

const (
	// defaultFlatness is the default curve tolerance in device pixels.
	defaultFlatness = 0.25

	// defaultMiterLimit is used until a stroke style is set.
	defaultMiterLimit = 10.0
)

const (
	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which still contributes coverage.
	horizontalEdgeThreshold = 1e-10

	// smallPathThreshold is the default value of
	// Rasterizer.smallPathThreshold.
	smallPathThreshold = 65536

	// zeroLengthThreshold is the shortest stroke segment which is kept.
	zeroLengthThreshold = 1e-10

	// collinearityThreshold bounds |sin θ| for corners which need no join.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects a path reversing onto itself.
	cuspCosineThreshold = -0.9999
)
