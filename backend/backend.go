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

// Package backend defines the interface between the drawing core and a
// rasterization backend, together with the vocabulary both sides share.
//
// A backend is a stateful, immediate-mode drawing context bound to one
// pixel surface. The core re-establishes the matrix, paint and operator
// before every draw, so a backend only has to apply what it is told.
package backend

import (
	"errors"
	"image"
	"strconv"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// ErrRestoreUnderflow is returned by Restore when there is no matching Save.
var ErrRestoreUnderflow = errors.New("backend: restore without matching save")

// Backend is a rasterization backend bound to a single pixel surface.
//
// Device coordinates have their origin in the top-left corner of the
// surface, with y pointing down. Path coordinates are mapped to device
// space by the current matrix.
type Backend interface {
	// Width and Height report the surface size in pixels.
	Width() int
	Height() int

	// SetMatrix replaces the current user-to-device matrix.
	SetMatrix(m matrix.Matrix)

	// SetPaint selects the paint source used by subsequent draws.
	SetPaint(p Paint)

	// SetOperator selects the compositing operator.
	SetOperator(op Operator)

	// FillPath paints the interior of p, using the given fill rule.
	FillPath(p *path.Data, rule FillRule)

	// StrokePath paints the outline of p.
	StrokePath(p *path.Data, style StrokeStyle)

	// ClipPath intersects the clip region with the interior of p.
	ClipPath(p *path.Data, rule FillRule)

	// Paint paints the whole clip region.
	Paint()

	// Save pushes the matrix, paint, operator and clip onto a stack.
	Save()

	// Restore pops the state pushed by the matching Save.
	// Without a matching Save, the state is left unchanged and
	// ErrRestoreUnderflow is returned.
	Restore() error
}

// Factory creates a backend drawing onto the given surface.
// The surface pixels are premultiplied RGBA.
type Factory func(surface *image.RGBA) Backend

// FillRule selects how the interior of a path is determined.
type FillRule int

// These are the supported fill rules.
const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return "FillRule(" + strconv.Itoa(int(r)) + ")"
	}
}

// Operator is a Porter-Duff compositing operator.
type Operator int

// These are the Porter-Duff operators.
const (
	Clear Operator = iota
	Src
	Dst
	SrcOver
	DstOver
	SrcIn
	DstIn
	SrcOut
	DstOut
	SrcAtop
	DstAtop
	Xor
)

var operatorNames = [...]string{
	Clear:   "clear",
	Src:     "src",
	Dst:     "dst",
	SrcOver: "src-over",
	DstOver: "dst-over",
	SrcIn:   "src-in",
	DstIn:   "dst-in",
	SrcOut:  "src-out",
	DstOut:  "dst-out",
	SrcAtop: "src-atop",
	DstAtop: "dst-atop",
	Xor:     "xor",
}

func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "Operator(" + strconv.Itoa(int(op)) + ")"
}

// ParseOperator returns the operator with the given name, as returned
// by [Operator.String].
func ParseOperator(name string) (Operator, bool) {
	for i, n := range operatorNames {
		if n == name {
			return Operator(i), true
		}
	}
	return 0, false
}

// LineCap is the shape at the end points of open stroked sub-paths.
type LineCap int

// These are the supported line caps.
const (
	CapButt LineCap = iota
	CapRound
	CapSquare
)

func (c LineCap) String() string {
	switch c {
	case CapButt:
		return "butt"
	case CapRound:
		return "round"
	case CapSquare:
		return "square"
	default:
		return "LineCap(" + strconv.Itoa(int(c)) + ")"
	}
}

// LineJoin is the shape at the corners of stroked paths.
type LineJoin int

// These are the supported line joins.
const (
	JoinMiter LineJoin = iota
	JoinRound
	JoinBevel
)

func (j LineJoin) String() string {
	switch j {
	case JoinMiter:
		return "miter"
	case JoinRound:
		return "round"
	case JoinBevel:
		return "bevel"
	default:
		return "LineJoin(" + strconv.Itoa(int(j)) + ")"
	}
}

// StrokeStyle collects the parameters of a stroke operation.
// Lengths are in user-space units.
type StrokeStyle struct {
	Width      float64
	MiterLimit float64
	Cap        LineCap
	Join       LineJoin

	// DashOffset is the distance into the dash pattern at which
	// the pattern starts.
	DashOffset float64

	// Dash holds alternating on/off lengths. An empty slice means
	// a solid line.
	Dash []float64
}

// IsDashed reports whether the style describes a dashed line.
// Patterns with negative entries or a zero total length are treated
// as solid.
func (s *StrokeStyle) IsDashed() bool {
	if len(s.Dash) == 0 {
		return false
	}
	total := 0.0
	for _, d := range s.Dash {
		if d < 0 {
			return false
		}
		total += d
	}
	return total > 0
}
