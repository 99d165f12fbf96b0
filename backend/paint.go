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

package backend

import (
	"image"
	"image/color"

	"seehuhn.de/go/geom/matrix"
)

// Paint describes the source colours of a draw operation.
// The concrete types are [Solid], [LinearGradient], [RadialGradient]
// and [Texture].
type Paint interface {
	isPaint()
}

// Solid paints a single colour.
type Solid struct {
	Color color.NRGBA
}

func (Solid) isPaint() {}

// SpreadMethod selects how a gradient continues outside of its
// defining range.
type SpreadMethod int

// These are the supported spread methods.
const (
	SpreadPad SpreadMethod = iota
	SpreadReflect
	SpreadRepeat
)

func (s SpreadMethod) String() string {
	switch s {
	case SpreadPad:
		return "pad"
	case SpreadReflect:
		return "reflect"
	case SpreadRepeat:
		return "repeat"
	default:
		return "SpreadMethod(?)"
	}
}

// GradientStop is a colour at a position along a gradient.
// Offsets are in the range [0, 1].
type GradientStop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient varies colour along the line from (X1, Y1) to (X2, Y2).
// The coordinates are in gradient space, which Matrix maps to user space.
// For all paints, Matrix is used as given: a paint whose matrix is not
// invertible draws nothing.
type LinearGradient struct {
	X1, Y1, X2, Y2 float64
	Spread         SpreadMethod
	Stops          []GradientStop
	Matrix         matrix.Matrix
}

func (*LinearGradient) isPaint() {}

// RadialGradient varies colour between the focal point (FX, FY), where
// the gradient starts, and the circle with centre (CX, CY) and radius R,
// where it ends.
type RadialGradient struct {
	CX, CY, R float64
	FX, FY    float64
	Spread    SpreadMethod
	Stops     []GradientStop
	Matrix    matrix.Matrix
}

func (*RadialGradient) isPaint() {}

// TextureType selects how a texture is sampled outside of its bounds.
type TextureType int

// These are the supported texture types.
const (
	// TexturePlain leaves everything outside the texture transparent.
	TexturePlain TextureType = iota

	// TextureTiled repeats the texture in both directions.
	TextureTiled
)

// Texture paints a pixel image. Matrix maps image pixel coordinates
// to user space.
type Texture struct {
	Source  *image.RGBA
	Type    TextureType
	Opacity float64
	Matrix  matrix.Matrix
}

func (*Texture) isPaint() {}
