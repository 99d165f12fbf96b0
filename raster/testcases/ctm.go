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

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/vgcore/backend"
)

var ctmCases = []TestCase{
	{Name: "scale_2x", Path: rectangle(-10, -10, 10, 10), Width: 64, Height: 64, Op: nonZero, CTM: matrix.Scale(2, 2).Translate(32, 32)},
	{Name: "scale_half", Path: star(0, 0, 50, 5), Width: 64, Height: 64, Op: nonZero, CTM: matrix.Scale(0.5, 0.5).Translate(32, 32)},
	{Name: "scale_10x", Path: circle(0, 0, 2.5), Width: 64, Height: 64, Op: nonZero, CTM: matrix.Scale(10, 10).Translate(32, 32)},
	{Name: "rotate_45deg", Path: rectangle(-15, -15, 15, 15), Width: 64, Height: 64, Op: nonZero, CTM: matrix.RotateDeg(45).Translate(32, 32)},
	{Name: "rotate_5deg", Path: rectangle(-20, -10, 20, 10), Width: 64, Height: 64, Op: nonZero, CTM: matrix.RotateDeg(5).Translate(32, 32)},
	{Name: "circle_to_ellipse", Path: circle(0, 0, 20), Width: 128, Height: 64, Op: nonZero, CTM: matrix.Scale(2, 1).Translate(64, 32)},
	{Name: "shear_horizontal", Path: rectangle(-15, -15, 15, 15), Width: 64, Height: 64, Op: nonZero, CTM: matrix.Matrix{1, 0, 0.5, 1, 32, 32}},
	{Name: "flip_y", Path: polygon(-20, 20, 0, -20, 20, 20), Width: 64, Height: 64, Op: evenOdd, CTM: matrix.Matrix{1, 0, 0, -1, 32, 32}},
	{Name: "round_cap_nonuniform", Path: polyline(-20, 0, 20, 0), Width: 128, Height: 64, Op: stroke(8, backend.CapRound, backend.JoinRound), CTM: matrix.Scale(2, 1).Translate(64, 32)},
	{Name: "round_join_rotated", Path: corner(0, 10, math.Pi/3), Width: 64, Height: 64, Op: stroke(6, backend.CapButt, backend.JoinRound), CTM: matrix.RotateDeg(30).Translate(32, 32)},
	{Name: "miter_sheared", Path: corner(0, 10, math.Pi/2), Width: 64, Height: 64, Op: stroke(5, backend.CapButt, backend.JoinMiter), CTM: matrix.Matrix{1, 0, 0.4, 1, 32, 32}},
	{Name: "dash_scaled", Path: polyline(-25, 0, 25, 0), Width: 128, Height: 64, Op: dashed(4, 0, 5, 3), CTM: matrix.Scale(2, 1).Translate(64, 32)},
}
