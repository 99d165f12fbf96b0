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

package raster

import (
	"errors"
	"image"
	"image/color"
	"slices"
	"testing"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vgcore/backend"
)

func square(x0, y0, x1, y1 float64) *path.Data {
	return (&path.Data{}).
		MoveTo(vec.Vec2{X: x0, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y0}).
		LineTo(vec.Vec2{X: x1, Y: y1}).
		LineTo(vec.Vec2{X: x0, Y: y1}).
		Close()
}

func at(img *image.RGBA, x, y int) pixel {
	k := img.PixOffset(img.Rect.Min.X+x, img.Rect.Min.Y+y)
	return pixel(img.Pix[k : k+4])
}

func TestFillSolid(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	ctx := NewContext(img)
	ctx.SetPaint(backend.Solid{Color: color.NRGBA{R: 255, A: 255}})
	ctx.FillPath(square(2, 2, 6, 6), backend.NonZero)

	if got := at(img, 3, 3); got != (pixel{255, 0, 0, 255}) {
		t.Errorf("inside: got %v", got)
	}
	if got := at(img, 8, 8); got != (pixel{}) {
		t.Errorf("outside: got %v", got)
	}
}

func TestSubImageTarget(t *testing.T) {
	full := image.NewRGBA(image.Rect(0, 0, 20, 20))
	sub := full.SubImage(image.Rect(10, 10, 20, 20)).(*image.RGBA)
	ctx := NewContext(sub)
	if ctx.Width() != 10 || ctx.Height() != 10 {
		t.Fatalf("size %dx%d", ctx.Width(), ctx.Height())
	}
	ctx.FillPath(square(0, 0, 1, 1), backend.NonZero)
	if got := at(full, 10, 10); got[3] != 255 {
		t.Errorf("device origin not at the sub-image corner: %v", got)
	}
	if got := at(full, 0, 0); got[3] != 0 {
		t.Errorf("pixel outside the sub-image touched: %v", got)
	}
}

func TestSingularMatrix(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	ctx := NewContext(img)
	ctx.SetMatrix(matrix.Matrix{0, 0, 0, 0, 1, 1})
	ctx.FillPath(square(0, 0, 4, 4), backend.NonZero)
	ctx.StrokePath(square(0, 0, 4, 4), backend.StrokeStyle{Width: 2})
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("byte %d modified", i)
		}
	}

	// clipping with a singular matrix removes everything
	ctx.ClipPath(square(0, 0, 4, 4), backend.NonZero)
	ctx.SetMatrix(matrix.Identity)
	ctx.Paint()
	for i, v := range img.Pix {
		if v != 0 {
			t.Fatalf("byte %d modified after empty clip", i)
		}
	}
}

func TestClipAndRestore(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	ctx := NewContext(img)

	ctx.Save()
	ctx.ClipPath(square(0, 0, 4, 8), backend.NonZero)
	ctx.SetPaint(backend.Solid{Color: color.NRGBA{B: 255, A: 255}})
	ctx.Paint()
	if err := ctx.Restore(); err != nil {
		t.Fatal(err)
	}

	if got := at(img, 1, 1); got != (pixel{0, 0, 255, 255}) {
		t.Errorf("inside clip: %v", got)
	}
	if got := at(img, 6, 1); got != (pixel{}) {
		t.Errorf("outside clip: %v", got)
	}

	// after Restore the paint is opaque black again, and nothing is clipped
	ctx.Paint()
	if got := at(img, 6, 1); got != (pixel{0, 0, 0, 255}) {
		t.Errorf("after restore: %v", got)
	}

	if err := ctx.Restore(); !errors.Is(err, backend.ErrRestoreUnderflow) {
		t.Errorf("unbalanced Restore: %v", err)
	}
}

func TestNestedClip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	ctx := NewContext(img)
	ctx.ClipPath(square(0, 0, 6, 8), backend.NonZero)
	ctx.ClipPath(square(2, 0, 8, 8), backend.NonZero)
	ctx.Paint()

	var got []int
	for x := range 8 {
		if at(img, x, 4)[3] != 0 {
			got = append(got, x)
		}
	}
	if want := []int{2, 3, 4, 5}; !slices.Equal(got, want) {
		t.Errorf("painted columns %v, want %v", got, want)
	}
}

func TestOperators(t *testing.T) {
	red := pixel{255, 0, 0, 255}
	half := pixel{0, 0, 128, 128}
	cases := []struct {
		op   backend.Operator
		s, d pixel
		want pixel
	}{
		{backend.Clear, red, red, pixel{}},
		{backend.Src, half, red, half},
		{backend.Dst, half, red, red},
		{backend.SrcOver, half, red, pixel{127, 0, 128, 255}},
		{backend.DstOver, half, red, red},
		{backend.SrcIn, half, red, half},
		{backend.SrcIn, half, pixel{}, pixel{}},
		{backend.DstIn, half, red, pixel{128, 0, 0, 128}},
		{backend.SrcOut, half, red, pixel{}},
		{backend.DstOut, half, red, pixel{127, 0, 0, 127}},
		{backend.SrcAtop, half, red, pixel{127, 0, 128, 255}},
		{backend.Xor, red, pixel{}, red},
		{backend.Operator(42), half, red, pixel{127, 0, 128, 255}},
	}
	for _, c := range cases {
		if got := composite(c.op, c.s, c.d); got != c.want {
			t.Errorf("%v: got %v, want %v", c.op, got, c.want)
		}
	}
}

func TestSrcOperatorRespectsCoverage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 1))
	ctx := NewContext(img)
	ctx.SetPaint(backend.Solid{Color: color.NRGBA{G: 255, A: 255}})
	ctx.Paint()

	ctx.SetOperator(backend.Src)
	ctx.SetPaint(backend.Solid{})
	ctx.FillPath(square(0, 0, 2, 1), backend.NonZero)

	if got := at(img, 0, 0); got != (pixel{}) {
		t.Errorf("covered pixel: %v", got)
	}
	if got := at(img, 3, 0); got != (pixel{0, 255, 0, 255}) {
		t.Errorf("uncovered pixel changed: %v", got)
	}
}

func TestLinearGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 256, 1))
	ctx := NewContext(img)
	ctx.SetPaint(&backend.LinearGradient{
		X2:     256,
		Matrix: matrix.Identity,
		Stops: []backend.GradientStop{
			{Offset: 0, Color: color.NRGBA{A: 255}},
			{Offset: 1, Color: color.NRGBA{R: 255, A: 255}},
		},
	})
	ctx.Paint()

	prev := -1
	for x := range 256 {
		r := int(at(img, x, 0)[0])
		if r < prev {
			t.Fatalf("red decreases at x=%d", x)
		}
		prev = r
	}
	if r := at(img, 0, 0)[0]; r > 2 {
		t.Errorf("left end: red=%d", r)
	}
	if r := at(img, 255, 0)[0]; r < 253 {
		t.Errorf("right end: red=%d", r)
	}
}

func TestSpread(t *testing.T) {
	cases := []struct {
		t      float64
		method backend.SpreadMethod
		want   float64
	}{
		{-0.5, backend.SpreadPad, 0},
		{1.5, backend.SpreadPad, 1},
		{0.25, backend.SpreadPad, 0.25},
		{1.25, backend.SpreadRepeat, 0.25},
		{-0.25, backend.SpreadRepeat, 0.75},
		{1.25, backend.SpreadReflect, 0.75},
		{2.25, backend.SpreadReflect, 0.25},
		{-0.25, backend.SpreadReflect, 0.25},
	}
	for _, c := range cases {
		if got := spread(c.t, c.method); got != c.want {
			t.Errorf("spread(%g, %v) = %g, want %g", c.t, c.method, got, c.want)
		}
	}
}

func TestColorAtOffset(t *testing.T) {
	stops := []backend.GradientStop{
		{Offset: 0.2, Color: color.NRGBA{R: 100, A: 255}},
		{Offset: 0.6, Color: color.NRGBA{R: 200, A: 255}},
		{Offset: 0.6, Color: color.NRGBA{B: 50, A: 255}},
	}
	cases := []struct {
		t    float64
		want color.NRGBA
	}{
		{0, color.NRGBA{R: 100, A: 255}},
		{0.4, color.NRGBA{R: 150, A: 255}},
		{0.6, color.NRGBA{B: 50, A: 255}},
		{0.9, color.NRGBA{B: 50, A: 255}},
	}
	for _, c := range cases {
		if got := colorAtOffset(stops, c.t); got != c.want {
			t.Errorf("colorAtOffset(%g) = %v, want %v", c.t, got, c.want)
		}
	}
}

func TestRadialGradient(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	ctx := NewContext(img)
	ctx.SetPaint(&backend.RadialGradient{
		CX: 10.5, CY: 10.5, R: 10,
		FX: 10.5, FY: 10.5,
		Matrix: matrix.Identity,
		Stops: []backend.GradientStop{
			{Offset: 0, Color: color.NRGBA{R: 255, A: 255}},
			{Offset: 1, Color: color.NRGBA{B: 255, A: 255}},
		},
	})
	ctx.Paint()

	if got := at(img, 10, 10); got[0] < 250 {
		t.Errorf("centre: %v", got)
	}
	if got := at(img, 0, 0); got != (pixel{0, 0, 255, 255}) {
		t.Errorf("corner (padded): %v", got)
	}
	if a, b := at(img, 15, 10), at(img, 10, 15); a != b {
		t.Errorf("not symmetric: %v vs %v", a, b)
	}
}

func TestTextureTiled(t *testing.T) {
	tile := image.NewRGBA(image.Rect(0, 0, 2, 2))
	tile.Set(0, 0, color.RGBA{R: 255, A: 255})
	tile.Set(1, 1, color.RGBA{R: 255, A: 255})

	img := image.NewRGBA(image.Rect(0, 0, 6, 6))
	ctx := NewContext(img)
	ctx.SetPaint(&backend.Texture{
		Source:  tile,
		Type:    backend.TextureTiled,
		Opacity: 1,
		Matrix:  matrix.Identity,
	})
	ctx.Paint()

	for y := range 6 {
		for x := range 6 {
			want := pixel{}
			if (x+y)%2 == 0 {
				want = pixel{255, 0, 0, 255}
			}
			if got := at(img, x, y); got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestTexturePlainOpacity(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range src.Pix {
		src.Pix[i] = 255
	}

	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	ctx := NewContext(img)
	ctx.SetPaint(&backend.Texture{
		Source:  src,
		Opacity: 0.5,
		Matrix:  matrix.Matrix{1, 0, 0, 1, 2, 2},
	})
	ctx.Paint()

	if got := at(img, 3, 3); got != (pixel{128, 128, 128, 128}) {
		t.Errorf("inside texture: %v", got)
	}
	if got := at(img, 7, 7); got != (pixel{}) {
		t.Errorf("outside texture: %v", got)
	}
}
