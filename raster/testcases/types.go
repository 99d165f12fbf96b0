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

// Package testcases holds a fixed collection of paths, together with
// rendering parameters, used to exercise the rasterizer.
package testcases

import (
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vgcore/backend"
)

// TestCase defines a single rendering test.
type TestCase struct {
	Name   string        // lowercase a-z, 0-9 and _ only
	Path   *path.Data    // the geometry to render, in user space
	Width  int           // target width in pixels
	Height int           // target height in pixels
	Op     Operation     // fill or stroke
	CTM    matrix.Matrix // user space to device space, zero means identity
}

// Matrix returns the CTM of the test case, with the zero value
// replaced by the identity.
func (tc *TestCase) Matrix() matrix.Matrix {
	if tc.CTM == (matrix.Matrix{}) {
		return matrix.Identity
	}
	return tc.CTM
}

// Operation is the rendering operation to apply to the path.
type Operation interface {
	isOperation()
}

// Fill specifies a fill operation.
type Fill struct {
	Rule backend.FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Style backend.StrokeStyle
}

func (Stroke) isOperation() {}

var (
	nonZero = Fill{Rule: backend.NonZero}
	evenOdd = Fill{Rule: backend.EvenOdd}
)

// stroke returns a solid stroke with miter limit 10.
func stroke(width float64, cap backend.LineCap, join backend.LineJoin) Stroke {
	return Stroke{Style: backend.StrokeStyle{
		Width:      width,
		MiterLimit: 10,
		Cap:        cap,
		Join:       join,
	}}
}

// dashed returns a butt-capped dashed stroke.
func dashed(width, phase float64, dash ...float64) Stroke {
	s := stroke(width, backend.CapButt, backend.JoinMiter)
	s.Style.Dash = dash
	s.Style.DashOffset = phase
	return s
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}
