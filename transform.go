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
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Transform is the 2D affine map
//
//	x' = A·x + C·y + E
//	y' = B·x + D·y + F
//
// that is, the matrix [[A, C, E], [B, D, F], [0, 0, 1]] acting on column
// vectors.
//
// The composing methods Rotate, Scale, Shear, Translate and Multiply
// prepend: the new operation is applied to coordinates before the
// existing transform.  The Post* variants append: the new operation is
// applied last.  All of them modify the receiver and return it, so that
// calls can be chained.
type Transform struct {
	A, B, C, D, E, F float64
}

// Identity is the transform which leaves all points unchanged.
var Identity = Transform{A: 1, D: 1}

// Rotated returns a rotation about the origin by the given angle in
// degrees.
func Rotated(deg float64) Transform {
	s, c := math.Sincos(deg * math.Pi / 180)
	return Transform{A: c, B: s, C: -s, D: c}
}

// RotatedAround returns a rotation by deg degrees about (cx, cy).
func RotatedAround(deg, cx, cy float64) Transform {
	t := Translated(cx, cy)
	return *t.Rotate(deg).Translate(-cx, -cy)
}

// Scaled returns a scaling about the origin.
func Scaled(sx, sy float64) Transform {
	return Transform{A: sx, D: sy}
}

// Sheared returns a shear with the given angles, in degrees, measured
// from the y axis (shx) and the x axis (shy).
func Sheared(shx, shy float64) Transform {
	return Transform{
		A: 1,
		B: math.Tan(shy * math.Pi / 180),
		C: math.Tan(shx * math.Pi / 180),
		D: 1,
	}
}

// Translated returns a translation by (tx, ty).
func Translated(tx, ty float64) Transform {
	return Transform{A: 1, D: 1, E: tx, F: ty}
}

// TransformFromMatrix converts a backend matrix.
func TransformFromMatrix(m matrix.Matrix) Transform {
	return Transform{m[0], m[1], m[2], m[3], m[4], m[5]}
}

// Matrix converts t to the matrix type used by rasterization backends.
func (t Transform) Matrix() matrix.Matrix {
	return matrix.Matrix{t.A, t.B, t.C, t.D, t.E, t.F}
}

// Mul returns the composition t∘u, which applies u first and then t.
func (t Transform) Mul(u Transform) Transform {
	return Transform{
		A: t.A*u.A + t.C*u.B,
		B: t.B*u.A + t.D*u.B,
		C: t.A*u.C + t.C*u.D,
		D: t.B*u.C + t.D*u.D,
		E: t.A*u.E + t.C*u.F + t.E,
		F: t.B*u.E + t.D*u.F + t.F,
	}
}

// Multiply sets t to t∘u, so that u is applied first.
func (t *Transform) Multiply(u Transform) *Transform {
	*t = t.Mul(u)
	return t
}

// PostMultiply sets t to u∘t, so that u is applied last.
func (t *Transform) PostMultiply(u Transform) *Transform {
	*t = u.Mul(*t)
	return t
}

// Rotate prepends a rotation about the origin, in degrees.
func (t *Transform) Rotate(deg float64) *Transform {
	return t.Multiply(Rotated(deg))
}

// RotateAround prepends a rotation about (cx, cy), in degrees.
func (t *Transform) RotateAround(deg, cx, cy float64) *Transform {
	return t.Multiply(RotatedAround(deg, cx, cy))
}

// Scale prepends a scaling.
func (t *Transform) Scale(sx, sy float64) *Transform {
	return t.Multiply(Scaled(sx, sy))
}

// Shear prepends a shear, with angles in degrees.
func (t *Transform) Shear(shx, shy float64) *Transform {
	return t.Multiply(Sheared(shx, shy))
}

// Translate prepends a translation.
func (t *Transform) Translate(tx, ty float64) *Transform {
	return t.Multiply(Translated(tx, ty))
}

// PostRotate appends a rotation about the origin, in degrees.
func (t *Transform) PostRotate(deg float64) *Transform {
	return t.PostMultiply(Rotated(deg))
}

// PostRotateAround appends a rotation about (cx, cy), in degrees.
func (t *Transform) PostRotateAround(deg, cx, cy float64) *Transform {
	return t.PostMultiply(RotatedAround(deg, cx, cy))
}

// PostScale appends a scaling.
func (t *Transform) PostScale(sx, sy float64) *Transform {
	return t.PostMultiply(Scaled(sx, sy))
}

// PostShear appends a shear, with angles in degrees.
func (t *Transform) PostShear(shx, shy float64) *Transform {
	return t.PostMultiply(Sheared(shx, shy))
}

// PostTranslate appends a translation.
func (t *Transform) PostTranslate(tx, ty float64) *Transform {
	return t.PostMultiply(Translated(tx, ty))
}

// Det returns the determinant of the linear part.
func (t Transform) Det() float64 {
	return t.A*t.D - t.B*t.C
}

// Inverse returns the inverse transform.  If t is singular, or has
// non-finite entries, the error is [ErrNotInvertible].
func (t Transform) Inverse() (Transform, error) {
	det := t.Det()
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Transform{}, ErrNotInvertible
	}
	inv := Transform{
		A: t.D / det,
		B: -t.B / det,
		C: -t.C / det,
		D: t.A / det,
		E: (t.C*t.F - t.D*t.E) / det,
		F: (t.B*t.E - t.A*t.F) / det,
	}
	if !inv.isFinite() {
		return Transform{}, ErrNotInvertible
	}
	return inv, nil
}

// Invert replaces t by its inverse.  On error, t is left unchanged.
func (t *Transform) Invert() error {
	inv, err := t.Inverse()
	if err != nil {
		return err
	}
	*t = inv
	return nil
}

// IsIdentity reports whether t equals [Identity].
func (t Transform) IsIdentity() bool {
	return t == Identity
}

func (t Transform) isFinite() bool {
	for _, v := range [...]float64{t.A, t.B, t.C, t.D, t.E, t.F} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// MapXY applies t to the point (x, y).
func (t Transform) MapXY(x, y float64) (float64, float64) {
	return t.A*x + t.C*y + t.E, t.B*x + t.D*y + t.F
}

// MapPoint applies t to p.
func (t Transform) MapPoint(p Point) Point {
	x, y := t.MapXY(p.X, p.Y)
	return Point{x, y}
}

// MapRect returns the bounding box of the image of r.  Invalid
// rectangles are returned unchanged.
func (t Transform) MapRect(r Rect) Rect {
	if !r.IsValid() {
		return InvalidRect
	}
	corners := [4]Point{
		t.MapPoint(Point{r.X, r.Y}),
		t.MapPoint(Point{r.Right(), r.Y}),
		t.MapPoint(Point{r.X, r.Bottom()}),
		t.MapPoint(Point{r.Right(), r.Bottom()}),
	}
	l, tp := corners[0].X, corners[0].Y
	rt, b := l, tp
	for _, c := range corners[1:] {
		l, rt = min(l, c.X), max(rt, c.X)
		tp, b = min(tp, c.Y), max(b, c.Y)
	}
	return Rect{l, tp, rt - l, b - tp}
}

// XScale returns the length of the image of the unit x vector.
func (t Transform) XScale() float64 {
	return math.Hypot(t.A, t.B)
}

// YScale returns the length of the image of the unit y vector.
func (t Transform) YScale() float64 {
	return math.Hypot(t.C, t.D)
}

// String returns t in the form "matrix(a,b,c,d,e,f)", which
// [ParseTransform] accepts.
func (t Transform) String() string {
	b := []byte("matrix(")
	for i, v := range [...]float64{t.A, t.B, t.C, t.D, t.E, t.F} {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendNumber(b, v)
	}
	b = append(b, ')')
	return string(b)
}
