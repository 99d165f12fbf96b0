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

package vgcore

import (
	"errors"
	"math"
	"testing"
)

func near(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func transformNear(t, u Transform) bool {
	return near(t.A, u.A) && near(t.B, u.B) && near(t.C, u.C) &&
		near(t.D, u.D) && near(t.E, u.E) && near(t.F, u.F)
}

func TestTransformOrder(t *testing.T) {
	x, y := Translated(10, 0).Mul(Scaled(2, 2)).MapXY(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("Mul: got (%g, %g), want (12, 2)", x, y)
	}

	pre := Identity
	pre.Translate(10, 0).Scale(2, 2)
	x, y = pre.MapXY(1, 1)
	if x != 12 || y != 2 {
		t.Errorf("prepend: got (%g, %g), want (12, 2)", x, y)
	}

	post := Translated(10, 0)
	post.PostScale(2, 2)
	x, y = post.MapXY(1, 1)
	if x != 22 || y != 2 {
		t.Errorf("append: got (%g, %g), want (22, 2)", x, y)
	}
}

func TestRotation(t *testing.T) {
	x, y := Rotated(90).MapXY(1, 0)
	if !near(x, 0) || !near(y, 1) {
		t.Errorf("Rotated(90): got (%g, %g), want (0, 1)", x, y)
	}

	x, y = RotatedAround(180, 5, 5).MapXY(0, 0)
	if !near(x, 10) || !near(y, 10) {
		t.Errorf("RotatedAround: got (%g, %g), want (10, 10)", x, y)
	}
}

func TestInverse(t *testing.T) {
	m := Rotated(30).Mul(Scaled(2, 3)).Mul(Translated(5, -7))
	inv, err := m.Inverse()
	if err != nil {
		t.Fatal(err)
	}
	if got := m.Mul(inv); !transformNear(got, Identity) {
		t.Errorf("m·m⁻¹ = %v", got)
	}
	if got := inv.Mul(m); !transformNear(got, Identity) {
		t.Errorf("m⁻¹·m = %v", got)
	}
}

func TestInverseSingular(t *testing.T) {
	for _, m := range []Transform{
		Scaled(0, 1),
		{A: 1, B: 2, C: 2, D: 4},
		{A: math.NaN(), D: 1},
		{A: math.Inf(1), D: 1},
	} {
		if _, err := m.Inverse(); !errors.Is(err, ErrNotInvertible) {
			t.Errorf("%v: got %v, want ErrNotInvertible", m, err)
		}
	}

	m := Scaled(0, 1)
	if err := m.Invert(); err == nil {
		t.Fatal("Invert succeeded on a singular transform")
	}
	if m != Scaled(0, 1) {
		t.Errorf("Invert modified the receiver: %v", m)
	}
}

func TestMapRect(t *testing.T) {
	r := Rotated(90).MapRect(Rect{0, 0, 2, 1})
	want := Rect{-1, 0, 1, 2}
	if !near(r.X, want.X) || !near(r.Y, want.Y) || !near(r.W, want.W) || !near(r.H, want.H) {
		t.Errorf("got %v, want %v", r, want)
	}
	if r := Scaled(2, 2).MapRect(InvalidRect); r.IsValid() {
		t.Errorf("invalid rectangle mapped to %v", r)
	}
}

func TestScales(t *testing.T) {
	m := Rotated(37).Mul(Scaled(3, 4))
	if !near(m.XScale(), 3) || !near(m.YScale(), 4) {
		t.Errorf("got scales %g, %g", m.XScale(), m.YScale())
	}
}

func TestParseTransform(t *testing.T) {
	cases := []struct {
		in   string
		want Transform
	}{
		{"", Identity},
		{"  ", Identity},
		{"translate(10)", Translated(10, 0)},
		{"translate(10, 20)", Translated(10, 20)},
		{"scale(2)", Scaled(2, 2)},
		{"scale(2 3)", Scaled(2, 3)},
		{"rotate(90)", Rotated(90)},
		{"rotate(90 1 1)", RotatedAround(90, 1, 1)},
		{"skewX(45)", Sheared(45, 0)},
		{"skewY(45)", Sheared(0, 45)},
		{"matrix(1,2,3,4,5,6)", Transform{1, 2, 3, 4, 5, 6}},
		{"matrix(1 2 3 4 5 6)", Transform{1, 2, 3, 4, 5, 6}},
		{"translate(10,20) scale(2)", Translated(10, 20).Mul(Scaled(2, 2))},
		{"translate(10,20),scale(2)", Translated(10, 20).Mul(Scaled(2, 2))},
		{"scale(2)translate(1e1 -5)", Scaled(2, 2).Mul(Translated(10, -5))},
		{"translate(.5-.5)", Translated(0.5, -0.5)},
	}
	for _, c := range cases {
		got, err := ParseTransform(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if !transformNear(got, c.want) {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseTransformErrors(t *testing.T) {
	cases := []struct {
		in     string
		offset int
	}{
		{"foo(1)", 0},
		{"scale(1) bogus(2)", 9},
		{"rotate 10", 7},
		{"translate(1", 11},
		{"translate()", 10},
		{"matrix(1,2,3)", 12},
		{"scale(x)", 6},
		{"translate(1e400)", 10},
		{"scale(1, -1e999)", 9},
		{"translate(1),", 13},
		{"translate(1) , ", 15},
	}
	for _, c := range cases {
		m := Scaled(3, 3)
		err := m.Parse(c.in)
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: got error %v, want a syntax error", c.in, err)
			continue
		}
		var se *SyntaxError
		if errors.As(err, &se) && se.Offset != c.offset {
			t.Errorf("%q: error at offset %d, want %d", c.in, se.Offset, c.offset)
		}
		if m != Identity {
			t.Errorf("%q: transform not reset: %v", c.in, m)
		}
	}
}

func TestTransformStringRoundTrip(t *testing.T) {
	for _, m := range []Transform{
		Identity,
		{1.5, -2, 0.25, 4, 100, -0.125},
		Rotated(30).Mul(Translated(7, 11)),
	} {
		s := m.String()
		got, err := ParseTransform(s)
		if err != nil {
			t.Errorf("%s: %v", s, err)
			continue
		}
		for i, pair := range [][2]float64{
			{got.A, m.A}, {got.B, m.B}, {got.C, m.C},
			{got.D, m.D}, {got.E, m.E}, {got.F, m.F},
		} {
			if math.Abs(pair[0]-pair[1]) > 1e-12*max(1, math.Abs(pair[1])) {
				t.Errorf("%s: entry %d is %g, want %g", s, i, pair[0], pair[1])
			}
		}
	}
}
