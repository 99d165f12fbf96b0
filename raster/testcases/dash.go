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

import "seehuhn.de/go/vgcore/backend"

var dashCases = []TestCase{
	{Name: "dash_basic", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 0, 8, 4)},
	{Name: "dash_single_element", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 0, 10)},
	{Name: "dash_three_element", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 0, 5, 3, 8)},
	{Name: "dash_many_elements", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 0, 2, 2, 6, 2, 2, 10)},
	{Name: "dash_phase_half", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 5, 10, 5)},
	{Name: "dash_phase_pattern_len", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 15, 10, 5)},
	{Name: "dash_phase_negative", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, -5, 10, 5)},
	{Name: "dash_phase_large_neg", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, -30, 10, 5)},
	{Name: "dash_zero_round", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashedCap(dashed(4, 0, 0, 5), backend.CapRound)},
	{Name: "dash_zero_square", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashedCap(dashed(4, 0, 0, 5), backend.CapSquare)},
	{Name: "dash_corner", Path: polyline(10, 50, 32, 14, 54, 50), Width: 64, Height: 64, Op: dashed(4, 0, 12, 4)},
	{Name: "dash_closed", Path: rectangle(12, 12, 52, 52), Width: 64, Height: 64, Op: dashed(4, 3, 14, 6)},
	{Name: "dash_circle", Path: circle(32, 32, 22), Width: 64, Height: 64, Op: dashedCap(dashed(3, 0, 6, 4), backend.CapRound)},
	{Name: "dash_all_zero", Path: polyline(5, 32, 59, 32), Width: 64, Height: 64, Op: dashed(4, 0, 0, 0)},
}

func dashedCap(s Stroke, cap backend.LineCap) Stroke {
	s.Style.Cap = cap
	return s
}
