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

var precisionCases = []TestCase{
	{Name: "offset_00", Path: square(20, 20, 24, 0), Width: 64, Height: 64, Op: nonZero},
	{Name: "offset_25", Path: square(20, 20, 24, 0.25), Width: 64, Height: 64, Op: nonZero},
	{Name: "offset_50", Path: square(20, 20, 24, 0.5), Width: 64, Height: 64, Op: nonZero},
	{Name: "offset_75", Path: square(20, 20, 24, 0.75), Width: 64, Height: 64, Op: nonZero},
	{Name: "hairline_on_edge", Path: polyline(5, 10, 59, 10), Width: 64, Height: 64, Op: stroke(1, backend.CapButt, backend.JoinMiter)},
	{Name: "hairline_centred", Path: polyline(5, 10.5, 59, 10.5), Width: 64, Height: 64, Op: stroke(1, backend.CapButt, backend.JoinMiter)},
	{Name: "near_float_limit", Path: rectangle(22.123456789012345, 22.123456789012345, 42.123456789012346, 42.123456789012346), Width: 64, Height: 64, Op: nonZero},

	// large user-space coordinates, mapped back onto the target
	{Name: "far_away", Path: square(9990, 9990, 20, 0), Width: 64, Height: 64, Op: nonZero, CTM: shift(-9968, -9968)},
	{Name: "far_away_tiny", Path: square(99999, 99999, 2, 0), Width: 64, Height: 64, Op: nonZero, CTM: shift(-99968, -99968)},
}

// square returns an axis-parallel square, with all coordinates shifted
// by offset.
func square(x, y, size, offset float64) *path.Data {
	return rectangle(x+offset, y+offset, x+size+offset, y+size+offset)
}
