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
	"log/slog"
	"slices"
	"testing"
)

func TestRectOps(t *testing.T) {
	a := Rect{0, 0, 10, 10}
	b := Rect{5, 5, 10, 10}

	if got, want := a.Intersect(b), (Rect{5, 5, 5, 5}); got != want {
		t.Errorf("Intersect: got %v, want %v", got, want)
	}
	if got := a.Intersect(Rect{20, 20, 1, 1}); got != EmptyRect {
		t.Errorf("disjoint Intersect: got %v", got)
	}
	if got := a.Intersect(InvalidRect); got.IsValid() {
		t.Errorf("Intersect with invalid: got %v", got)
	}

	if got, want := a.Union(b), (Rect{0, 0, 15, 15}); got != want {
		t.Errorf("Union: got %v, want %v", got, want)
	}
	if got := a.Union(InvalidRect); got != a {
		t.Errorf("Union with invalid: got %v", got)
	}
	if got := InvalidRect.Union(InvalidRect); got.IsValid() {
		t.Errorf("Union of invalid: got %v", got)
	}

	if !a.Contains(Point{0, 0}) || a.Contains(Point{10, 5}) {
		t.Error("Contains: wrong edge handling")
	}
	if !EmptyRect.IsEmpty() || !InvalidRect.IsEmpty() || a.IsEmpty() {
		t.Error("IsEmpty")
	}
	if got := RectFromPoints(Point{3, 4}, Point{1, 1}); got != (Rect{1, 1, 2, 3}) {
		t.Errorf("RectFromPoints: got %v", got)
	}
}

func TestColor(t *testing.T) {
	c := NewColor(0x12, 0x34, 0x56, 0x78)
	if c != 0x78123456 {
		t.Errorf("got %08x", uint32(c))
	}
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Error("channel accessors")
	}
	if got := c.String(); got != "#12345678" {
		t.Errorf("String: got %q", got)
	}
	if got := ColorFromRGBAF(1, 0.5, -1, 2); got != NewColor(255, 128, 0, 255) {
		t.Errorf("ColorFromRGBAF: got %v", got)
	}
}

func TestStrokeData(t *testing.T) {
	sd := NewStrokeData(3)
	if sd.LineWidth() != 3 || sd.MiterLimit() != 4 || sd.LineCap() != CapButt ||
		sd.LineJoin() != JoinMiter || sd.IsDashed() {
		t.Errorf("unexpected defaults %+v", sd)
	}

	dash := []float64{1, 2}
	dashed := sd.WithDash(0.5, dash...).WithLineJoin(JoinRound).WithMiterLimit(10)
	dash[0] = 100
	if got := dashed.DashArray(); !slices.Equal(got, []float64{1, 2}) {
		t.Errorf("dash array shares caller memory: %v", got)
	}
	dashed.DashArray()[1] = 100
	if got := dashed.DashArray(); got[1] != 2 {
		t.Errorf("DashArray exposes internal state: %v", got)
	}
	if !dashed.IsDashed() || dashed.DashOffset() != 0.5 ||
		dashed.LineJoin() != JoinRound || dashed.MiterLimit() != 10 {
		t.Errorf("got %+v", dashed)
	}
	if sd.IsDashed() || sd.LineJoin() != JoinMiter {
		t.Error("With* modified the receiver")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)

	l := slog.New(slog.DiscardHandler)
	SetLogger(l)
	if Logger() != l {
		t.Error("logger not installed")
	}
	SetLogger(nil)
	if Logger() == nil || Logger() == l {
		t.Error("SetLogger(nil) did not restore the default")
	}
}
