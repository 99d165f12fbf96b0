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

	"seehuhn.de/go/vgcore/backend"
)

var strokeCases = []TestCase{
	{Name: "line_butt", Path: polyline(10, 32, 54, 32), Width: 64, Height: 64, Op: stroke(8, backend.CapButt, backend.JoinMiter)},
	{Name: "line_round", Path: polyline(10, 32, 54, 32), Width: 64, Height: 64, Op: stroke(8, backend.CapRound, backend.JoinMiter)},
	{Name: "line_square", Path: polyline(10, 32, 54, 32), Width: 64, Height: 64, Op: stroke(8, backend.CapSquare, backend.JoinMiter)},
	{Name: "line_diagonal", Path: polyline(8, 8, 56, 50), Width: 64, Height: 64, Op: stroke(5, backend.CapRound, backend.JoinMiter)},
	{Name: "line_hairline", Path: polyline(4, 20.5, 60, 40.5), Width: 64, Height: 64, Op: stroke(0.5, backend.CapButt, backend.JoinMiter)},
	{Name: "corner_miter", Path: corner(32, 50, math.Pi/3), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinMiter)},
	{Name: "corner_round", Path: corner(32, 50, math.Pi/3), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinRound)},
	{Name: "corner_bevel", Path: corner(32, 50, math.Pi/3), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinBevel)},
	{Name: "corner_sharp_miter", Path: corner(32, 54, 0.2), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinMiter)},
	{Name: "closed_square", Path: rectangle(14, 14, 50, 50), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinMiter)},
	{Name: "closed_triangle_round", Path: polygon(10, 50, 32, 10, 54, 50), Width: 64, Height: 64, Op: stroke(5, backend.CapButt, backend.JoinRound)},
	{Name: "zero_length_round", Path: polyline(32, 32, 32, 32), Width: 64, Height: 64, Op: stroke(10, backend.CapRound, backend.JoinMiter)},
	{Name: "reversal", Path: polyline(10, 32, 54, 32, 20, 32), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinRound)},
}
