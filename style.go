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
	"slices"

	"seehuhn.de/go/vgcore/backend"
)

// FillRule decides which points are inside a path.
type FillRule = backend.FillRule

// The supported fill rules.
const (
	NonZero = backend.NonZero
	EvenOdd = backend.EvenOdd
)

// BlendMode is the compositing operator used by [Canvas.BlendCanvas].
type BlendMode = backend.Operator

// The Porter-Duff compositing operators.
const (
	BlendClear   = backend.Clear
	BlendSrc     = backend.Src
	BlendDst     = backend.Dst
	BlendSrcOver = backend.SrcOver
	BlendDstOver = backend.DstOver
	BlendSrcIn   = backend.SrcIn
	BlendDstIn   = backend.DstIn
	BlendSrcOut  = backend.SrcOut
	BlendDstOut  = backend.DstOut
	BlendSrcAtop = backend.SrcAtop
	BlendDstAtop = backend.DstAtop
	BlendXor     = backend.Xor
)

// SpreadMethod selects how a gradient continues beyond its end points.
type SpreadMethod = backend.SpreadMethod

// The supported spread methods.
const (
	SpreadPad     = backend.SpreadPad
	SpreadReflect = backend.SpreadReflect
	SpreadRepeat  = backend.SpreadRepeat
)

// TextureType selects how a texture is continued outside its bounds.
type TextureType = backend.TextureType

// The supported texture types.
const (
	TexturePlain = backend.TexturePlain
	TextureTiled = backend.TextureTiled
)

// LineCap is the shape of the ends of open stroked sub-paths.
type LineCap = backend.LineCap

// The supported line caps.
const (
	CapButt   = backend.CapButt
	CapRound  = backend.CapRound
	CapSquare = backend.CapSquare
)

// LineJoin is the shape of corners in stroked paths.
type LineJoin = backend.LineJoin

// The supported line joins.
const (
	JoinMiter = backend.JoinMiter
	JoinRound = backend.JoinRound
	JoinBevel = backend.JoinBevel
)

// StrokeData describes how a path is stroked.  StrokeData values are
// immutable; the With* methods return modified copies.
type StrokeData struct {
	lineWidth  float64
	miterLimit float64
	lineCap    LineCap
	lineJoin   LineJoin
	dashOffset float64
	dashArray  []float64
}

// NewStrokeData returns solid stroke parameters for the given line
// width, with miter limit 4, butt caps and miter joins.
func NewStrokeData(lineWidth float64) StrokeData {
	return StrokeData{
		lineWidth:  lineWidth,
		miterLimit: 4,
		lineCap:    CapButt,
		lineJoin:   JoinMiter,
	}
}

// LineWidth returns the width of stroked lines, in user space units.
func (s StrokeData) LineWidth() float64 { return s.lineWidth }

// MiterLimit returns the ratio of miter length to line width above
// which miter joins are drawn as bevels.
func (s StrokeData) MiterLimit() float64 { return s.miterLimit }

// LineCap returns the shape drawn at the ends of open sub-paths.
func (s StrokeData) LineCap() LineCap { return s.lineCap }

// LineJoin returns the shape drawn where two segments meet.
func (s StrokeData) LineJoin() LineJoin { return s.lineJoin }

// DashOffset returns the distance into the dash pattern at which
// each sub-path starts.
func (s StrokeData) DashOffset() float64 { return s.dashOffset }

// DashArray returns a copy of the dash lengths.
func (s StrokeData) DashArray() []float64 {
	return slices.Clone(s.dashArray)
}

// WithLineWidth returns a copy of s with the given line width.
func (s StrokeData) WithLineWidth(w float64) StrokeData {
	s.lineWidth = w
	return s
}

// WithMiterLimit returns a copy of s with the given miter limit.
func (s StrokeData) WithMiterLimit(limit float64) StrokeData {
	s.miterLimit = limit
	return s
}

// WithLineCap returns a copy of s with the given line cap.
func (s StrokeData) WithLineCap(c LineCap) StrokeData {
	s.lineCap = c
	return s
}

// WithLineJoin returns a copy of s with the given line join.
func (s StrokeData) WithLineJoin(j LineJoin) StrokeData {
	s.lineJoin = j
	return s
}

// WithDash returns a copy of s with the given dash pattern.  The array
// alternates between dash and gap lengths; an array of odd length is
// repeated once.  An empty array, an array with a negative entry, or
// one summing to zero gives a solid line.
func (s StrokeData) WithDash(offset float64, array ...float64) StrokeData {
	s.dashOffset = offset
	s.dashArray = slices.Clone(array)
	return s
}

// IsDashed reports whether s describes a dashed line.
func (s StrokeData) IsDashed() bool {
	st := s.style()
	return st.IsDashed()
}

// style converts s to the backend representation.  Degenerate dash
// patterns are dropped.
func (s StrokeData) style() backend.StrokeStyle {
	st := backend.StrokeStyle{
		Width:      s.lineWidth,
		MiterLimit: s.miterLimit,
		Cap:        s.lineCap,
		Join:       s.lineJoin,
		DashOffset: s.dashOffset,
		Dash:       s.dashArray,
	}
	if !st.IsDashed() {
		st.Dash = nil
		st.DashOffset = 0
	}
	return st
}

// GradientStop is a colour at a position along a gradient.
type GradientStop struct {
	Offset float64 // in the range [0, 1]
	Color  Color
}

// GradientStops lists the colours of a gradient.  Offsets are expected
// to be non-decreasing.
type GradientStops []GradientStop

func (stops GradientStops) backend() []backend.GradientStop {
	res := make([]backend.GradientStop, len(stops))
	for i, s := range stops {
		res[i] = backend.GradientStop{Offset: s.Offset, Color: s.Color.NRGBA()}
	}
	return res
}
