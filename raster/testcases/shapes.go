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

package testcases

import (
	"math"

	"seehuhn.de/go/geom/path"
)

// kappa is the control point distance for a quarter circle of radius 1.
const kappa = 0.5522847498

func polygon(pts ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(pts[0], pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		p = p.LineTo(pt(pts[i], pts[i+1]))
	}
	return p.Close()
}

func polyline(pts ...float64) *path.Data {
	p := (&path.Data{}).MoveTo(pt(pts[0], pts[1]))
	for i := 2; i+1 < len(pts); i += 2 {
		p = p.LineTo(pt(pts[i], pts[i+1]))
	}
	return p
}

func rectangle(x1, y1, x2, y2 float64) *path.Data {
	return polygon(x1, y1, x2, y1, x2, y2, x1, y2)
}

// star builds a self-intersecting star with n points, n odd.
func star(cx, cy, r float64, n int) *path.Data {
	var pts []float64
	for i := range n {
		k := (2 * i) % n
		angle := float64(k)*2*math.Pi/float64(n) - math.Pi/2
		pts = append(pts, cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}
	return polygon(pts...)
}

// ellipse appends a closed ellipse made of four cubic segments.
// A negative ry reverses the orientation.
func ellipse(p *path.Data, cx, cy, rx, ry float64) *path.Data {
	kx, ky := rx*kappa, ry*kappa
	return p.
		MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

func circle(cx, cy, r float64) *path.Data {
	return ellipse(&path.Data{}, cx, cy, r, r)
}

// corner builds an open path of two arms with the given opening angle,
// meeting at (cx, cy).
func corner(cx, cy, angle float64) *path.Data {
	const arm = 20.0
	dx := arm * math.Sin(angle/2)
	dy := arm * math.Cos(angle/2)
	return polyline(cx-dx, cy-dy, cx, cy, cx+dx, cy-dy)
}
