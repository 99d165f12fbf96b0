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

import "math"

// BoundingRect returns the smallest axis-aligned rectangle containing
// all of p.  Curves are measured by their true extent, not by their
// control points.  An empty path gives [EmptyRect].
func (p *Path) BoundingRect() Rect {
	if p.IsEmpty() {
		return EmptyRect
	}

	b := bbox{xMin: math.Inf(1), yMin: math.Inf(1), xMax: math.Inf(-1), yMax: math.Inf(-1)}
	var cur Point
	for cmd, pts := range p.All() {
		switch cmd {
		case CmdMoveTo, CmdLineTo:
			b.add(pts[0])
			cur = pts[0]
		case CmdCubicTo:
			b.addCubic(cur, pts[0], pts[1], pts[2])
			cur = pts[2]
		case CmdClose:
			cur = pts[0]
		}
	}
	return Rect{b.xMin, b.yMin, b.xMax - b.xMin, b.yMax - b.yMin}
}

type bbox struct {
	xMin, yMin, xMax, yMax float64
}

func (b *bbox) add(p Point) {
	b.xMin = min(b.xMin, p.X)
	b.xMax = max(b.xMax, p.X)
	b.yMin = min(b.yMin, p.Y)
	b.yMax = max(b.yMax, p.Y)
}

// addCubic includes the end point and all interior extrema of the curve.
func (b *bbox) addCubic(p0, p1, p2, p3 Point) {
	b.add(p3)
	for _, t := range cubicExtrema(p0.X, p1.X, p2.X, p3.X) {
		b.add(cubicAt(p0, p1, p2, p3, t))
	}
	for _, t := range cubicExtrema(p0.Y, p1.Y, p2.Y, p3.Y) {
		b.add(cubicAt(p0, p1, p2, p3, t))
	}
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	s := 1 - t
	a, b, c, d := s*s*s, 3*s*s*t, 3*s*t*t, t*t*t
	return Point{
		a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

// cubicExtrema returns the parameters in (0, 1) where the derivative of
// the one-dimensional cubic Bézier with the given coefficients vanishes.
func cubicExtrema(v0, v1, v2, v3 float64) []float64 {
	// B'(t)/3 = a·t² + b·t + c
	a := -v0 + 3*v1 - 3*v2 + v3
	b := 2 * (v0 - 2*v1 + v2)
	c := v1 - v0

	var roots []float64
	keep := func(t float64) {
		if t > 0 && t < 1 {
			roots = append(roots, t)
		}
	}

	const eps = 1e-12
	if math.Abs(a) < eps {
		if math.Abs(b) >= eps {
			keep(-c / b)
		}
		return roots
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return roots
	}
	sq := math.Sqrt(disc)
	keep((-b + sq) / (2 * a))
	keep((-b - sq) / (2 * a))
	return roots
}
