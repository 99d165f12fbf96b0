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

var fillCases = []TestCase{
	{Name: "triangle_nonzero", Path: polygon(10, 50, 32, 10, 54, 50), Width: 64, Height: 64, Op: nonZero},
	{Name: "triangle_evenodd", Path: polygon(10, 50, 32, 10, 54, 50), Width: 64, Height: 64, Op: evenOdd},
	{Name: "star_nonzero", Path: star(32, 32, 25, 5), Width: 64, Height: 64, Op: nonZero},
	{Name: "star_evenodd", Path: star(32, 32, 25, 5), Width: 64, Height: 64, Op: evenOdd},
	{Name: "heptagram_evenodd", Path: star(32, 32, 28, 7), Width: 64, Height: 64, Op: evenOdd},
	{Name: "rectangle", Path: rectangle(10, 10, 44, 44), Width: 64, Height: 64, Op: nonZero},
	{Name: "rectangle_fractional", Path: rectangle(10.25, 10.5, 43.75, 44.1), Width: 64, Height: 64, Op: nonZero},
	{Name: "sliver", Path: polygon(2, 30, 62, 31, 2, 31.2), Width: 64, Height: 64, Op: nonZero},
	{Name: "partly_outside", Path: polygon(-20, -10, 80, 20, 30, 90), Width: 64, Height: 64, Op: nonZero},
	{Name: "wide", Path: rectangle(4, 4, 500, 60), Width: 512, Height: 64, Op: nonZero},
}
