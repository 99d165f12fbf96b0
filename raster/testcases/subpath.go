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

import "seehuhn.de/go/geom/path"

var subpathCases = []TestCase{
	{Name: "two_triangles", Path: twoTriangles(), Width: 64, Height: 64, Op: nonZero},
	{Name: "overlapping_rect_nonzero", Path: overlappingRectangles(), Width: 64, Height: 64, Op: nonZero},
	{Name: "overlapping_rect_evenodd", Path: overlappingRectangles(), Width: 64, Height: 64, Op: evenOdd},
	{Name: "ring_evenodd", Path: ring(32, 32, 25, 12, false), Width: 64, Height: 64, Op: evenOdd},
	{Name: "ring_nonzero_reversed", Path: ring(32, 32, 25, 12, true), Width: 64, Height: 64, Op: nonZero},
	{Name: "open_subpaths", Path: openSubpaths(), Width: 64, Height: 64, Op: nonZero},
	{Name: "many_small_shapes", Path: manySmallShapes(8, 8), Width: 128, Height: 128, Op: nonZero},
}

func twoTriangles() *path.Data {
	p := polygon(4, 44, 16, 20, 28, 44)
	return p.MoveTo(pt(36, 44)).LineTo(pt(48, 20)).LineTo(pt(60, 44)).Close()
}

func overlappingRectangles() *path.Data {
	return rectangle(10, 10, 40, 40).
		MoveTo(pt(24, 24)).LineTo(pt(54, 24)).LineTo(pt(54, 54)).LineTo(pt(24, 54)).Close()
}

// ring builds two concentric circles.  If reverse is set, the inner
// circle has the opposite orientation.
func ring(cx, cy, outer, inner float64, reverse bool) *path.Data {
	p := ellipse(&path.Data{}, cx, cy, outer, outer)
	ry := inner
	if reverse {
		ry = -inner
	}
	return ellipse(p, cx, cy, inner, ry)
}

// openSubpaths has subpaths without a closing command; filling closes
// them implicitly.
func openSubpaths() *path.Data {
	return polyline(8, 8, 30, 8, 8, 30).
		MoveTo(pt(56, 56)).LineTo(pt(34, 56)).LineTo(pt(56, 34))
}

func manySmallShapes(rows, cols int) *path.Data {
	p := &path.Data{}
	for i := range rows {
		for j := range cols {
			x := 8 + 15*float64(j)
			y := 8 + 15*float64(i)
			p = p.MoveTo(pt(x, y)).LineTo(pt(x+10, y)).LineTo(pt(x+5, y+9)).Close()
		}
	}
	return p
}
