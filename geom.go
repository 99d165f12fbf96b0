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

// Point is a location in the plane.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns the point scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Size is a width and height.
type Size struct {
	W, H float64
}

// Rect is an axis-aligned rectangle, given by its top-left corner and
// its extent.  A negative width or height marks the rectangle as
// invalid, meaning "no rectangle".
type Rect struct {
	X, Y, W, H float64
}

var (
	// EmptyRect is the valid rectangle of zero extent at the origin.
	EmptyRect = Rect{0, 0, 0, 0}

	// InvalidRect stands for "no rectangle".
	InvalidRect = Rect{0, 0, -1, -1}

	// InfiniteRect covers the whole plane, as far as float64 permits.
	InfiniteRect = Rect{-math.MaxFloat64 / 2, -math.MaxFloat64 / 2, math.MaxFloat64, math.MaxFloat64}
)

// RectFromPoints returns the rectangle with corners p and q.
func RectFromPoints(p, q Point) Rect {
	x0, x1 := min(p.X, q.X), max(p.X, q.X)
	y0, y1 := min(p.Y, q.Y), max(p.Y, q.Y)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// IsValid reports whether r has non-negative extent.
func (r Rect) IsValid() bool {
	return r.W >= 0 && r.H >= 0
}

// IsEmpty reports whether r covers no area.  Invalid rectangles are
// empty.
func (r Rect) IsEmpty() bool {
	return !(r.W > 0 && r.H > 0)
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether p lies inside r.  The left and top edges are
// inside, the right and bottom edges are outside.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersect returns the largest rectangle contained in both r and s.
// If either operand is invalid, the result is invalid.  Disjoint
// rectangles give EmptyRect.
func (r Rect) Intersect(s Rect) Rect {
	if !r.IsValid() || !s.IsValid() {
		return InvalidRect
	}
	x0, y0 := max(r.X, s.X), max(r.Y, s.Y)
	x1, y1 := min(r.Right(), s.Right()), min(r.Bottom(), s.Bottom())
	if x1 < x0 || y1 < y0 {
		return EmptyRect
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Union returns the smallest rectangle containing both r and s.  An
// invalid operand is ignored; if both are invalid, so is the result.
func (r Rect) Union(s Rect) Rect {
	switch {
	case !r.IsValid():
		return s
	case !s.IsValid():
		return r
	}
	x0, y0 := min(r.X, s.X), min(r.Y, s.Y)
	x1, y1 := max(r.Right(), s.Right()), max(r.Bottom(), s.Bottom())
	return Rect{x0, y0, x1 - x0, y1 - y0}
}
