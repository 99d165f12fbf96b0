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
	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/vgcore/backend"
)

var curveCases = []TestCase{
	{Name: "quadratic", Path: quadratic(10, 50, 32, -10, 54, 50).Close(), Width: 64, Height: 64, Op: nonZero},
	{Name: "quadratic_s_shape", Path: sQuadratic(8, 32, 56, 32), Width: 64, Height: 64, Op: nonZero},
	{Name: "quadratic_stroked", Path: quadratic(10, 50, 32, -10, 54, 50), Width: 64, Height: 64, Op: stroke(4, backend.CapRound, backend.JoinRound)},
	{Name: "cubic", Path: cubic(10, 50, 10, 0, 54, 0, 54, 50).Close(), Width: 64, Height: 64, Op: nonZero},
	{Name: "cubic_loop", Path: cubic(10, 40, 70, 0, -6, 0, 54, 40).Close(), Width: 64, Height: 64, Op: evenOdd},
	{Name: "cubic_cusp", Path: cubic(10, 50, 54, 10, 10, 10, 54, 50), Width: 64, Height: 64, Op: stroke(3, backend.CapButt, backend.JoinMiter)},
	{Name: "cubic_scurve_stroked", Path: cubic(8, 50, 60, 50, 4, 14, 56, 14), Width: 64, Height: 64, Op: stroke(5, backend.CapSquare, backend.JoinBevel)},
	{Name: "cubic_degenerate", Path: cubic(10, 32, 10, 32, 54, 32, 54, 32), Width: 64, Height: 64, Op: stroke(4, backend.CapButt, backend.JoinMiter)},
	{Name: "circle", Path: circle(32, 32, 24), Width: 64, Height: 64, Op: nonZero},
	{Name: "circle_small", Path: circle(32, 32, 1.5), Width: 64, Height: 64, Op: nonZero},
	{Name: "circle_large", Path: circle(256, 256, 240), Width: 512, Height: 512, Op: nonZero},
	{Name: "circle_stroked", Path: circle(32, 32, 22), Width: 64, Height: 64, Op: stroke(4, backend.CapButt, backend.JoinMiter)},
	{Name: "ellipse", Path: ellipse(&path.Data{}, 32, 32, 28, 12), Width: 64, Height: 64, Op: nonZero},
}

func quadratic(x1, y1, cx, cy, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt(cx, cy), pt(x2, y2))
}

func cubic(x1, y1, c1x, c1y, c2x, c2y, x2, y2 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		CubeTo(pt(c1x, c1y), pt(c2x, c2y), pt(x2, y2))
}

// sQuadratic builds a closed S shape from two quadratic segments.
func sQuadratic(x1, y1, x2, y2 float64) *path.Data {
	mx, my := (x1+x2)/2, (y1+y2)/2
	return (&path.Data{}).
		MoveTo(pt(x1, y1)).
		QuadTo(pt((x1+mx)/2, y1-20), pt(mx, my)).
		QuadTo(pt((mx+x2)/2, y2+20), pt(x2, y2)).
		Close()
}
