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
	"bytes"
	"errors"
	"image"
	"log/slog"
	"math"
	"slices"
	"strings"
	"testing"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/vgcore/backend"
)

// recording returns an option which captures the backend of a new canvas.
func recording(rec **backend.Recorder) Option {
	return WithBackend(func(img *image.RGBA) backend.Backend {
		*rec = backend.NewRecorder(img.Rect.Dx(), img.Rect.Dy())
		return *rec
	})
}

func TestCanvasGeometry(t *testing.T) {
	cases := []struct {
		x, y, w, h float64
		want       Rect
	}{
		{0, 0, 10, 20, Rect{0, 0, 10, 20}},
		{0.5, 1.5, 10, 10, Rect{0, 1, 11, 11}},
		{-3.2, -0.1, 2, 2, Rect{-4, -1, 3, 3}},
		{5, 5, 0, 10, Rect{0, 0, 1, 1}},
		{5, 5, 10, -1, Rect{0, 0, 1, 1}},
		{0, 0, math.NaN(), 10, Rect{0, 0, 1, 1}},
		{0, 0, 1 << 25, 1, Rect{0, 0, 1, 1}},
		{math.Inf(1), 0, 10, 10, Rect{0, 0, 1, 1}},
	}
	for _, c := range cases {
		var rec *backend.Recorder
		cv := NewCanvas(c.x, c.y, c.w, c.h, recording(&rec))
		if got := cv.Extents(); got != c.want {
			t.Errorf("NewCanvas(%g, %g, %g, %g): got %v, want %v", c.x, c.y, c.w, c.h, got, c.want)
		}
		if rec.W != cv.Width() || rec.H != cv.Height() {
			t.Errorf("backend size %dx%d, canvas %dx%d", rec.W, rec.H, cv.Width(), cv.Height())
		}
	}
}

func TestCanvasRect(t *testing.T) {
	var rec *backend.Recorder
	cv := NewCanvasRect(Rect{1.7, 2.2, 3.9, 4.1}, recording(&rec))
	if got, want := cv.Extents(), (Rect{1, 2, 3, 4}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}

	cv = NewCanvasRect(Rect{3, 3, 0.5, 10}, recording(&rec))
	if got, want := cv.Extents(), (Rect{0, 0, 1, 1}); got != want {
		t.Errorf("degenerate: got %v, want %v", got, want)
	}
}

func TestCanvasFromBitmap(t *testing.T) {
	b := NewBitmap(4, 3)
	cv := NewCanvasFromBitmap(b)
	cv.Clear(White)
	if b.RGBA().Pix[0] != 255 || cv.Bitmap() != b {
		t.Error("canvas does not share the bitmap")
	}
	if cv.X() != 0 || cv.Y() != 0 || cv.Width() != 4 || cv.Height() != 3 {
		t.Errorf("got extents %v", cv.Extents())
	}
}

func TestCanvasMatrixReset(t *testing.T) {
	var rec *backend.Recorder
	cv := NewCanvas(10, 20, 100, 100, recording(&rec))
	p := NewPath().AddRect(10, 20, 5, 5)

	cv.FillPath(p, NonZero, Scaled(2, 2))
	cv.FillPath(p, EvenOdd, Identity)
	cv.StrokePath(p, NewStrokeData(1), Translated(1, 1))
	cv.ClipPath(p, NonZero, Identity)

	draws := rec.Draws()
	want := []matrix.Matrix{
		{2, 0, 0, 2, -10, -20},
		{1, 0, 0, 1, -10, -20},
		{1, 0, 0, 1, -9, -19},
		{1, 0, 0, 1, -10, -20},
	}
	if len(draws) != len(want) {
		t.Fatalf("got %d draws, want %d", len(draws), len(want))
	}
	for i, d := range draws {
		if d.Matrix != want[i] {
			t.Errorf("draw %d (%s): matrix %v, want %v", i, d.Method, d.Matrix, want[i])
		}
	}
	if draws[0].Rule != NonZero || draws[1].Rule != EvenOdd {
		t.Error("fill rules not passed on")
	}
	if draws[0].Operator != backend.SrcOver {
		t.Errorf("operator %v", draws[0].Operator)
	}
	if draws[0].Path != p.Data() {
		t.Error("path data not passed on")
	}
}

func TestCanvasPaint(t *testing.T) {
	var rec *backend.Recorder
	cv := NewCanvas(0, 0, 10, 10, recording(&rec))
	stops := GradientStops{{0, Black}, {1, White}}

	cv.SetColor(NewColor(255, 0, 0, 128))
	if got, ok := rec.CurrentPaint.(backend.Solid); !ok || got.Color.R != 255 || got.Color.A != 128 {
		t.Errorf("SetColor: got %#v", rec.CurrentPaint)
	}

	cv.SetLinearGradient(0, 0, 10, 0, SpreadReflect, stops, Scaled(2, 2))
	lin, ok := rec.CurrentPaint.(*backend.LinearGradient)
	if !ok || lin.X2 != 10 || lin.Spread != SpreadReflect || len(lin.Stops) != 2 ||
		lin.Matrix != (matrix.Matrix{2, 0, 0, 2, 0, 0}) {
		t.Errorf("SetLinearGradient: got %#v", rec.CurrentPaint)
	}

	cv.SetRadialGradient(5, 5, 5, 4, 4, SpreadPad, stops, Identity)
	rad, ok := rec.CurrentPaint.(*backend.RadialGradient)
	if !ok || rad.R != 5 || rad.FX != 4 || rad.Stops[1].Color.R != 255 {
		t.Errorf("SetRadialGradient: got %#v", rec.CurrentPaint)
	}

	src := NewCanvas(0, 0, 2, 2)
	cv.SetTexture(src, TextureTiled, 0.5, Identity)
	tex, ok := rec.CurrentPaint.(*backend.Texture)
	if !ok || tex.Source != src.Surface() || tex.Type != TextureTiled || tex.Opacity != 0.5 {
		t.Errorf("SetTexture: got %#v", rec.CurrentPaint)
	}
}

func TestCanvasDash(t *testing.T) {
	var rec *backend.Recorder
	cv := NewCanvas(0, 0, 10, 10, recording(&rec))
	p := NewPath().MoveTo(0, 5).LineTo(10, 5)

	for _, sd := range []StrokeData{
		NewStrokeData(2).WithDash(3),
		NewStrokeData(2).WithDash(3, 2, -1),
		NewStrokeData(2).WithDash(0, 0, 0),
	} {
		rec.Reset()
		cv.StrokePath(p, sd, Identity)
		style := rec.Draws()[0].Style
		if style.Dash != nil || style.DashOffset != 0 {
			t.Errorf("%v: got dash %v offset %g", sd.DashArray(), style.Dash, style.DashOffset)
		}
	}

	rec.Reset()
	cv.StrokePath(p, NewStrokeData(2).WithDash(1, 4, 2).WithLineCap(CapRound), Identity)
	style := rec.Draws()[0].Style
	if !slices.Equal(style.Dash, []float64{4, 2}) || style.DashOffset != 1 ||
		style.Cap != CapRound || style.Width != 2 || style.MiterLimit != 4 {
		t.Errorf("got %+v", style)
	}
}

func TestDrawImageCalls(t *testing.T) {
	var rec *backend.Recorder
	cv := NewCanvas(5, 5, 50, 50, recording(&rec))
	img := NewBitmap(10, 10)

	cv.SetColor(White)
	rec.Reset()
	cv.DrawImage(img, Rect{10, 10, 20, 20}, Rect{0, 0, 10, 10}, Identity)

	var methods []string
	for _, c := range rec.Calls {
		methods = append(methods, c.Method)
	}
	want := []string{"Save", "SetMatrix", "ClipPath", "SetOperator", "SetPaint", "Paint", "Restore"}
	if !slices.Equal(methods, want) {
		t.Fatalf("got calls %v, want %v", methods, want)
	}

	paint := rec.Draws()[1]
	if paint.Matrix != (matrix.Matrix{1, 0, 0, 1, 5, 5}) {
		t.Errorf("matrix %v", paint.Matrix)
	}
	tex, ok := paint.Paint.(*backend.Texture)
	if !ok || tex.Matrix != (matrix.Matrix{2, 0, 0, 2, 0, 0}) || tex.Type != TexturePlain {
		t.Errorf("paint %#v", paint.Paint)
	}
	if _, ok := rec.CurrentPaint.(backend.Solid); !ok {
		t.Errorf("paint not restored: %#v", rec.CurrentPaint)
	}

	rec.Reset()
	cv.DrawImage(img, Rect{0, 0, 0, 10}, Rect{0, 0, 10, 10}, Identity)
	cv.DrawImage(img, Rect{0, 0, 10, 10}, Rect{0, 0, 10, -1}, Identity)
	if len(rec.Calls) != 0 {
		t.Errorf("empty rectangles produced %d calls", len(rec.Calls))
	}
}

func TestBlendCanvasCalls(t *testing.T) {
	var rec *backend.Recorder
	cv := NewCanvas(10, 10, 20, 20, recording(&rec))
	src := NewCanvas(15, 12, 5, 5)

	cv.BlendCanvas(src, BlendDstIn, 0.25)
	draws := rec.Draws()
	if len(draws) != 1 || draws[0].Method != "Paint" {
		t.Fatalf("got %v", draws)
	}
	d := draws[0]
	if d.Matrix != (matrix.Matrix{1, 0, 0, 1, 5, 2}) || d.Operator != BlendDstIn {
		t.Errorf("matrix %v, operator %v", d.Matrix, d.Operator)
	}
	tex, ok := d.Paint.(*backend.Texture)
	if !ok || tex.Opacity != 0.25 || tex.Source != src.Surface() {
		t.Errorf("paint %#v", d.Paint)
	}
}

func TestRestoreUnderflow(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewTextHandler(buf, nil))
	cv := NewCanvas(0, 0, 4, 4, WithLogger(logger))

	cv.Save()
	if err := cv.Restore(); err != nil {
		t.Fatal(err)
	}
	if err := cv.Restore(); !errors.Is(err, backend.ErrRestoreUnderflow) {
		t.Errorf("got %v, want ErrRestoreUnderflow", err)
	}
	if !strings.Contains(buf.String(), "Restore without matching Save") {
		t.Errorf("no warning logged: %q", buf.String())
	}
}

func pixelAt(cv *Canvas, x, y int) [4]uint8 {
	img := cv.Surface()
	k := img.PixOffset(x, y)
	return [4]uint8(img.Pix[k : k+4])
}

func TestCanvasFill(t *testing.T) {
	cv := NewCanvas(10, 10, 20, 20)
	cv.SetColor(NewColor(255, 0, 0, 255))
	cv.FillPath(NewPath().AddRect(10, 10, 10, 10), NonZero, Identity)

	if got := pixelAt(cv, 0, 0); got != [4]uint8{255, 0, 0, 255} {
		t.Errorf("inside: got %v", got)
	}
	if got := pixelAt(cv, 15, 15); got != [4]uint8{} {
		t.Errorf("outside: got %v", got)
	}
}

func TestCanvasClip(t *testing.T) {
	cv := NewCanvas(0, 0, 20, 20)
	cv.Save()
	cv.ClipRect(Rect{0, 0, 10, 20}, NonZero, Identity)
	cv.SetColor(Black)
	cv.FillPath(NewPath().AddRect(0, 0, 20, 20), NonZero, Identity)
	if err := cv.Restore(); err != nil {
		t.Fatal(err)
	}
	if got := pixelAt(cv, 5, 5); got[3] != 255 {
		t.Errorf("inside clip: got %v", got)
	}
	if got := pixelAt(cv, 15, 5); got[3] != 0 {
		t.Errorf("outside clip: got %v", got)
	}

	cv.ClipRect(EmptyRect, NonZero, Identity)
	cv.SetColor(White)
	cv.FillPath(NewPath().AddRect(0, 0, 20, 20), NonZero, Identity)
	if got := pixelAt(cv, 5, 5); got != [4]uint8{0, 0, 0, 255} {
		t.Errorf("empty clip: got %v", got)
	}
}

func TestClear(t *testing.T) {
	cv := NewCanvas(0, 0, 3, 3)
	cv.Clear(NewColor(255, 0, 0, 128))
	if got := pixelAt(cv, 2, 2); got != [4]uint8{128, 0, 0, 128} {
		t.Errorf("got %v", got)
	}
}

func TestLuminanceMask(t *testing.T) {
	cases := []struct {
		col  Color
		want uint8
	}{
		{White, 255},
		{Black, 0},
		{NewColor(255, 0, 0, 255), 85},
		{NewColor(0, 255, 0, 255), 127},
		{NewColor(0, 0, 255, 255), 42},
		{Transparent, 0},
	}
	for _, c := range cases {
		cv := NewCanvas(0, 0, 2, 2)
		cv.Clear(c.col)
		cv.ConvertToLuminanceMask()
		if got := pixelAt(cv, 1, 1); got != [4]uint8{0, 0, 0, c.want} {
			t.Errorf("%v: got %v, want alpha %d", c.col, got, c.want)
		}
	}
}

func TestDrawImage(t *testing.T) {
	img := NewBitmap(2, 2)
	NewCanvasFromBitmap(img).Clear(NewColor(0, 0, 255, 255))

	cv := NewCanvas(0, 0, 10, 10)
	cv.DrawImage(img, Rect{2, 2, 4, 4}, Rect{0, 0, 2, 2}, Identity)
	for _, p := range []image.Point{{3, 3}, {4, 4}} {
		if got := pixelAt(cv, p.X, p.Y); got != [4]uint8{0, 0, 255, 255} {
			t.Errorf("%v: got %v", p, got)
		}
	}
	for _, p := range []image.Point{{0, 0}, {7, 7}, {1, 8}} {
		if got := pixelAt(cv, p.X, p.Y); got != [4]uint8{} {
			t.Errorf("%v: got %v", p, got)
		}
	}
}

func TestBlendCanvas(t *testing.T) {
	src := NewCanvas(5, 5, 5, 5)
	src.Clear(NewColor(0, 255, 0, 255))

	cv := NewCanvas(0, 0, 20, 20)
	cv.BlendCanvas(src, BlendSrcOver, 1)
	if got := pixelAt(cv, 7, 7); got != [4]uint8{0, 255, 0, 255} {
		t.Errorf("inside: got %v", got)
	}
	if got := pixelAt(cv, 2, 2); got != [4]uint8{} {
		t.Errorf("outside: got %v", got)
	}
}

func TestPaintTransformSingular(t *testing.T) {
	stops := GradientStops{{0, Black}, {1, NewColor(255, 0, 0, 255)}}
	src := NewCanvas(0, 0, 4, 4)
	src.Clear(Black)

	paints := []struct {
		name string
		set  func(cv *Canvas, t Transform)
	}{
		{"linear", func(cv *Canvas, t Transform) {
			cv.SetLinearGradient(0, 0, 10, 0, SpreadPad, stops, t)
		}},
		{"linear-degenerate", func(cv *Canvas, t Transform) {
			cv.SetLinearGradient(5, 5, 5, 5, SpreadPad, stops, t)
		}},
		{"radial", func(cv *Canvas, t Transform) {
			cv.SetRadialGradient(5, 5, 5, 5, 5, SpreadPad, stops, t)
		}},
		{"texture", func(cv *Canvas, t Transform) {
			cv.SetTexture(src, TexturePlain, 1, t)
		}},
		{"tiled", func(cv *Canvas, t Transform) {
			cv.SetTexture(src, TextureTiled, 1, t)
		}},
	}
	for _, p := range paints {
		for _, tr := range []Transform{{}, Scaled(0, 0)} {
			cv := NewCanvas(0, 0, 10, 10)
			cv.Clear(White)
			p.set(cv, tr)
			cv.FillPath(NewPath().AddRect(0, 0, 10, 10), NonZero, Identity)
			if got := pixelAt(cv, 5, 5); got != [4]uint8{255, 255, 255, 255} {
				t.Errorf("%s, paint transform %v: got %v", p.name, tr, got)
			}
		}

		cv := NewCanvas(0, 0, 10, 10)
		cv.Clear(White)
		p.set(cv, Identity)
		cv.FillPath(NewPath().AddRect(0, 0, 10, 10), NonZero, Identity)
		if got := pixelAt(cv, 2, 2); got == [4]uint8{255, 255, 255, 255} {
			t.Errorf("%s, identity: nothing drawn", p.name)
		}
	}
}

func TestLuminanceMaskStride(t *testing.T) {
	big := image.NewRGBA(image.Rect(0, 0, 8, 4))
	for i := 0; i < len(big.Pix); i += 4 {
		copy(big.Pix[i:i+4], []uint8{255, 0, 0, 255})
	}
	inner := image.Rect(2, 1, 5, 3)
	sub := big.SubImage(inner).(*image.RGBA)
	if sub.Stride <= 4*sub.Rect.Dx() {
		t.Fatalf("stride %d is not larger than the row width", sub.Stride)
	}

	cv := NewCanvasFromBitmap(BitmapFromRGBA(sub))
	cv.ConvertToLuminanceMask()

	for y := range 4 {
		for x := range 8 {
			k := big.PixOffset(x, y)
			got := [4]uint8(big.Pix[k : k+4])
			want := [4]uint8{255, 0, 0, 255}
			if (image.Point{X: x, Y: y}).In(inner) {
				want = [4]uint8{0, 0, 0, 85}
			}
			if got != want {
				t.Errorf("(%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestCanvasSaveRestore(t *testing.T) {
	blue := NewColor(0, 0, 255, 255)
	red := NewColor(255, 0, 0, 255)
	full := NewPath().AddRect(0, 0, 20, 20)

	cv := NewCanvas(0, 0, 20, 20)
	cv.SetColor(blue)
	cv.Save()
	cv.SetColor(red)
	cv.ClipRect(Rect{0, 0, 10, 20}, NonZero, Identity)
	cv.FillPath(NewPath().AddRect(0, 0, 5, 5), NonZero, Identity)
	if err := cv.Restore(); err != nil {
		t.Fatal(err)
	}
	cv.FillPath(full, NonZero, Identity)

	for _, x := range []int{2, 15} {
		if got := pixelAt(cv, x, 10); got != [4]uint8{0, 0, 255, 255} {
			t.Errorf("pixel (%d,10): got %v, want blue", x, got)
		}
	}

	// the same through the recording backend
	var rec *backend.Recorder
	cv = NewCanvas(0, 0, 20, 20, recording(&rec))
	cv.SetColor(blue)
	before := rec.CurrentPaint
	cv.Save()
	cv.SetColor(red)
	cv.ClipPath(full, EvenOdd, Identity)
	if len(rec.CurrentClip) != 1 {
		t.Fatalf("clip not installed: %v", rec.CurrentClip)
	}
	if err := cv.Restore(); err != nil {
		t.Fatal(err)
	}
	if rec.CurrentPaint != before {
		t.Errorf("paint after Restore: got %v, want %v", rec.CurrentPaint, before)
	}
	if len(rec.CurrentClip) != 0 {
		t.Errorf("clip survived Restore: %v", rec.CurrentClip)
	}
}
