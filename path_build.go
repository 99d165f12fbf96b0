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

// kappa is the distance of the control points from the end points, for
// a cubic Bézier approximation of a quarter circle with radius 1.
const kappa = 0.55228474983079339840

// ArcTo adds an elliptical arc from the current point to (x, y), using
// the SVG endpoint parameterisation.  The ellipse has radii rx and ry,
// and its x axis is rotated by angle degrees.  The flags select one of
// the four possible arcs: largeArc picks the arc spanning more than 180
// degrees, sweep picks the arc running in the direction of increasing
// angle.
//
// Radii too small to connect the end points are scaled up.  If a radius
// is zero, a straight line is added.  If the end point equals the
// current point, nothing is added.
func (p *Path) ArcTo(rx, ry, angle float64, largeArc, sweep bool, x, y float64) *Path {
	d := p.ensure()
	d.beginSubpath()
	p0 := d.cur
	if p0.X == x && p0.Y == y {
		return p
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0 || ry == 0 {
		return p.LineTo(x, y)
	}

	sinPhi, cosPhi := math.Sincos(angle * math.Pi / 180)

	// end point midpoint, in the rotated frame
	dx2 := (p0.X - x) / 2
	dy2 := (p0.Y - y) / 2
	x1 := cosPhi*dx2 + sinPhi*dy2
	y1 := -sinPhi*dx2 + cosPhi*dy2

	if lambda := x1*x1/(rx*rx) + y1*y1/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rx2, ry2 := rx*rx, ry*ry
	num := rx2*ry2 - rx2*y1*y1 - ry2*x1*x1
	den := rx2*y1*y1 + ry2*x1*x1
	coef := math.Sqrt(max(0, num/den))
	if largeArc == sweep {
		coef = -coef
	}
	cx1 := coef * rx * y1 / ry
	cy1 := -coef * ry * x1 / rx

	cx := cosPhi*cx1 - sinPhi*cy1 + (p0.X+x)/2
	cy := sinPhi*cx1 + cosPhi*cy1 + (p0.Y+y)/2

	theta1 := math.Atan2((y1-cy1)/ry, (x1-cx1)/rx)
	theta2 := math.Atan2((-y1-cy1)/ry, (-x1-cx1)/rx)
	dTheta := theta2 - theta1
	if sweep && dTheta < 0 {
		dTheta += 2 * math.Pi
	} else if !sweep && dTheta > 0 {
		dTheta -= 2 * math.Pi
	}

	// at most a quarter turn per segment
	n := max(1, int(math.Ceil(math.Abs(dTheta)/(math.Pi/2)-1e-7)))
	delta := dTheta / float64(n)
	t := 4.0 / 3.0 * math.Tan(delta/4)

	toUser := func(ux, uy float64) Point {
		ex, ey := rx*ux, ry*uy
		return Point{cosPhi*ex - sinPhi*ey + cx, sinPhi*ex + cosPhi*ey + cy}
	}
	a1 := theta1
	for i := range n {
		a2 := a1 + delta
		s1, c1 := math.Sincos(a1)
		s2, c2 := math.Sincos(a2)
		q1 := toUser(c1-t*s1, s1+t*c1)
		q2 := toUser(c2+t*s2, s2-t*c2)
		q3 := toUser(c2, s2)
		if i == n-1 {
			q3 = Point{x, y}
		}
		d.add(CmdCubicTo, q1, q2, q3)
		a1 = a2
	}
	return p
}

// AddEllipse adds a closed ellipse with centre (cx, cy) and radii rx, ry.
// Ellipses with a non-positive radius are ignored.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) *Path {
	if !(rx > 0 && ry > 0) {
		return p
	}
	kx, ky := rx*kappa, ry*kappa
	return p.MoveTo(cx, cy-ry).
		CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy).
		CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry).
		CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy).
		CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry).
		Close()
}

// AddRoundRect adds a closed rectangle with rounded corners.  The corner
// radii are limited to half the width and height.  If either radius is
// not positive, the corners are square.  Rectangles without area are
// ignored.
func (p *Path) AddRoundRect(x, y, w, h, rx, ry float64) *Path {
	if !(w > 0 && h > 0) {
		return p
	}
	rx, ry = min(rx, w/2), min(ry, h/2)
	if !(rx > 0 && ry > 0) {
		return p.AddRect(x, y, w, h)
	}

	right, bottom := x+w, y+h
	kx, ky := rx*kappa, ry*kappa
	return p.MoveTo(x, y+ry).
		CubicTo(x, y+ry-ky, x+rx-kx, y, x+rx, y).
		LineTo(right-rx, y).
		CubicTo(right-rx+kx, y, right, y+ry-ky, right, y+ry).
		LineTo(right, bottom-ry).
		CubicTo(right, bottom-ry+ky, right-rx+kx, bottom, right-rx, bottom).
		LineTo(x+rx, bottom).
		CubicTo(x+rx-kx, bottom, x, bottom-ry+ky, x, bottom-ry).
		Close()
}

// AddRect adds a closed rectangle.  Rectangles without area are ignored.
func (p *Path) AddRect(x, y, w, h float64) *Path {
	if !(w > 0 && h > 0) {
		return p
	}
	return p.MoveTo(x, y).
		LineTo(x+w, y).
		LineTo(x+w, y+h).
		LineTo(x, y+h).
		Close()
}
