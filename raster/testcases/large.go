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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// largeCases cover more than 65536 pixels, so that the rasterizer uses
// its active edge list.
var largeCases = []TestCase{
	{Name: "rectangle", Path: rectangle(50, 50, 462, 462), Width: 512, Height: 512, Op: nonZero},
	{Name: "frame_nonzero", Path: frame(256, 256, 200, 100), Width: 512, Height: 512, Op: nonZero},
	{Name: "frame_evenodd", Path: frame(256, 256, 200, 100), Width: 512, Height: 512, Op: evenOdd},
	{Name: "diamond", Path: polygon(256, 76, 436, 256, 256, 436, 76, 256), Width: 512, Height: 512, Op: nonZero},
	{Name: "grid", Path: grid(8, 8, 512, 512, 4), Width: 512, Height: 512, Op: nonZero},
	{Name: "overhang", Path: rectangle(-100, 100, 612, 400), Width: 512, Height: 512, Op: nonZero},
	{Name: "disc", Path: circle(256, 256, 240), Width: 512, Height: 512, Op: nonZero},
}

// frame returns two concentric squares with the same orientation.
func frame(cx, cy, outer, inner float64) *path.Data {
	p := rectangle(cx-outer, cy-outer, cx+outer, cy+outer)
	return p.
		MoveTo(pt(cx-inner, cy-inner)).
		LineTo(pt(cx+inner, cy-inner)).
		LineTo(pt(cx+inner, cy+inner)).
		LineTo(pt(cx-inner, cy+inner)).
		Close()
}

// grid returns rows×cols separate rectangles filling a w×h area.
func grid(rows, cols int, w, h, gap float64) *path.Data {
	cw, ch := w/float64(cols), h/float64(rows)
	p := &path.Data{}
	for r := range rows {
		for c := range cols {
			x, y := float64(c)*cw, float64(r)*ch
			p = p.
				MoveTo(pt(x+gap, y+gap)).
				LineTo(pt(x+cw-gap, y+gap)).
				LineTo(pt(x+cw-gap, y+ch-gap)).
				LineTo(pt(x+gap, y+ch-gap)).
				Close()
		}
	}
	return p
}

func shift(dx, dy float64) matrix.Matrix {
	return matrix.Identity.Translate(dx, dy)
}
