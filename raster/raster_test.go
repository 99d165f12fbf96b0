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
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/vgcore/raster/testcases"
)

// TestApproachesAgree renders every test case twice: once with the 2D
// accumulation buffers, and once with the active edge list.  Both
// results must match.
func TestApproachesAgree(t *testing.T) {
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			t.Run(name, func(t *testing.T) {
				w, h := tc.Width, tc.Height
				bufA := make([]byte, w*h)
				bufB := make([]byte, w*h)
				renderCase(tc, bufA, 1<<30)
				renderCase(tc, bufB, 0)
				if err := compareImages(name, bufA, bufB, w, h); err != nil {
					t.Error(err)
				}
			})
		}
	}
}

// TestCasesDrawSomething checks that every test case produces some
// coverage inside the target area.
func TestCasesDrawSomething(t *testing.T) {
	for _, category := range testcases.Categories() {
		for _, tc := range testcases.All[category] {
			buf := make([]byte, tc.Width*tc.Height)
			renderCase(tc, buf, smallPathThreshold)
			total := 0
			for _, b := range buf {
				total += int(b)
			}
			if total == 0 {
				t.Errorf("%s_%s: empty output", category, tc.Name)
			}
		}
	}
}

// renderCase renders a test case into a grayscale buffer, with
// one byte of coverage per pixel.  The threshold selects between the
// two rasterization approaches.
func renderCase(tc testcases.TestCase, buf []byte, threshold int) {
	r := NewRasterizer(rect.Rect{URx: float64(tc.Width), URy: float64(tc.Height)})
	r.smallPathThreshold = threshold
	r.CTM = tc.Matrix()

	emit := func(y, xMin int, coverage []float32) {
		row := buf[y*tc.Width:]
		for i, c := range coverage {
			row[xMin+i] = coverageByte(c)
		}
	}

	switch op := tc.Op.(type) {
	case testcases.Fill:
		r.Fill(tc.Path, op.Rule, emit)
	case testcases.Stroke:
		r.SetStrokeStyle(op.Style)
		r.Stroke(tc.Path, emit)
	}
}

func compareImages(name string, expected, actual []byte, w, h int) error {
	total := w * h
	diffs := make([]int, total)
	for i := range total {
		d := int(expected[i]) - int(actual[i])
		if d < 0 {
			d = -d
		}
		diffs[i] = d
	}
	sort.Ints(diffs)

	p80 := diffs[int(math.Round(0.80*float64(total-1)))]
	p95 := diffs[int(math.Round(0.95*float64(total-1)))]
	p99 := diffs[int(math.Round(0.99*float64(total-1)))]

	var failures []string
	if p80 > 0 {
		failures = append(failures, fmt.Sprintf("80th percentile diff is %d (want 0)", p80))
	}
	if p95 >= 64 {
		failures = append(failures, fmt.Sprintf("95th percentile diff is %d (want <64)", p95))
	}
	if p99 >= 128 {
		failures = append(failures, fmt.Sprintf("99th percentile diff is %d (want <128)", p99))
	}
	if len(failures) > 0 {
		_ = writeDiffImage(name, expected, actual, w, h)
		return fmt.Errorf("%s", strings.Join(failures, "; "))
	}
	return nil
}

// writeDiffImage writes a three-panel image to debug/: actual output,
// differences (green for missing, red for excess coverage), expected
// output.
func writeDiffImage(name string, expected, actual []byte, w, h int) (err error) {
	if err := os.MkdirAll("debug", 0755); err != nil {
		return err
	}

	img := image.NewRGBA(image.Rect(0, 0, w*3, h))
	for y := range h {
		for x := range w {
			i := y*w + x
			a, e := actual[i], expected[i]
			img.Set(x, y, color.RGBA{R: a, G: a, B: a, A: 255})
			var dc color.RGBA
			switch d := int(e) - int(a); {
			case d > 0:
				dc = color.RGBA{G: uint8(d), A: 255}
			case d < 0:
				dc = color.RGBA{R: uint8(-d), A: 255}
			default:
				dc = color.RGBA{A: 255}
			}
			img.Set(x+w, y, dc)
			img.Set(x+2*w, y, color.RGBA{R: e, G: e, B: e, A: 255})
		}
	}

	f, err := os.Create(filepath.Join("debug", name+".png"))
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// TestTriangleCoverage verifies exact coverage values for a simple triangle.
// The triangle (0,0)→(10,0)→(10,1)→close has a diagonal edge y = x/10.
// Each pixel X should have coverage (2X+1)/20: 0.05, 0.15, ..., 0.95.
func TestTriangleCoverage(t *testing.T) {
	triangle := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 0}).
		LineTo(vec.Vec2{X: 10, Y: 1}).
		Close()

	for _, threshold := range []int{1 << 30, 0} {
		r := NewRasterizer(rect.Rect{URx: 10, URy: 1})
		r.smallPathThreshold = threshold

		coverage := make([]float32, 10)
		r.FillNonZero(triangle, func(y, xMin int, cov []float32) {
			if y == 0 {
				copy(coverage[xMin:], cov)
			}
		})

		const epsilon = 1e-6
		for x := range 10 {
			want := float32(2*x+1) / 20.0
			if math.Abs(float64(coverage[x]-want)) > epsilon {
				t.Errorf("threshold %d, pixel %d: expected coverage %.4f, got %.4f",
					threshold, x, want, coverage[x])
			}
		}
	}
}

func TestImplicitClose(t *testing.T) {
	open := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 8}).
		LineTo(vec.Vec2{X: 2, Y: 8})
	closed := (&path.Data{}).
		MoveTo(vec.Vec2{X: 2, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 2}).
		LineTo(vec.Vec2{X: 8, Y: 8}).
		LineTo(vec.Vec2{X: 2, Y: 8}).
		Close()

	render := func(p *path.Data) []byte {
		buf := make([]byte, 100)
		r := NewRasterizer(rect.Rect{URx: 10, URy: 10})
		r.FillNonZero(p, func(y, xMin int, cov []float32) {
			for i, c := range cov {
				buf[y*10+xMin+i] = coverageByte(c)
			}
		})
		return buf
	}
	a, b := render(open), render(closed)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("pixel %d: open %d, closed %d", i, a[i], b[i])
		}
	}
	if a[5*10+5] != 255 {
		t.Errorf("interior pixel has coverage %d", a[55])
	}
}

func TestStrokeWidth(t *testing.T) {
	line := (&path.Data{}).
		MoveTo(vec.Vec2{X: 0, Y: 5}).
		LineTo(vec.Vec2{X: 20, Y: 5})

	r := NewRasterizer(rect.Rect{URx: 20, URy: 10})
	r.Width = 2
	var sum float64
	r.Stroke(line, func(y, xMin int, cov []float32) {
		for _, c := range cov {
			sum += float64(c)
		}
	})
	// a 20×2 rectangle with butt caps
	if math.Abs(sum-40) > 1e-3 {
		t.Errorf("total coverage %g, want 40", sum)
	}

	r.Width = 0
	called := false
	r.Stroke(line, func(int, int, []float32) { called = true })
	if called {
		t.Error("zero width stroke produced output")
	}
}
