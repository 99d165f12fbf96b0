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
	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
)

// Call is one method invocation seen by a [Recorder].
type Call struct {
	Method string // name of the Backend method

	Matrix   matrix.Matrix // SetMatrix
	Paint    Paint         // SetPaint
	Operator Operator      // SetOperator
	Path     *path.Data    // FillPath, StrokePath, ClipPath
	Rule     FillRule      // FillPath, ClipPath
	Style    StrokeStyle   // StrokePath
	Err      error         // Restore
}

// Recorder is a Backend which records all calls instead of drawing.
// It also tracks the state a real backend would hold, so that tests
// can inspect the effective matrix, paint and operator at each draw.
type Recorder struct {
	W, H  int
	Calls []Call

	// state in effect for the next draw
	CurrentMatrix   matrix.Matrix
	CurrentPaint    Paint
	CurrentOperator Operator

	// CurrentClip lists the clip paths in effect, in the order they
	// were installed.
	CurrentClip []Call

	stack []recorderState
}

type recorderState struct {
	m     matrix.Matrix
	paint Paint
	op    Operator
	clip  []Call
}

// NewRecorder returns a Recorder for a surface of the given size.
func NewRecorder(w, h int) *Recorder {
	return &Recorder{
		W:               w,
		H:               h,
		CurrentMatrix:   matrix.Identity,
		CurrentOperator: SrcOver,
	}
}

// Width implements [Backend].
func (r *Recorder) Width() int { return r.W }

// Height implements [Backend].
func (r *Recorder) Height() int { return r.H }

// SetMatrix implements [Backend].
func (r *Recorder) SetMatrix(m matrix.Matrix) {
	r.CurrentMatrix = m
	r.Calls = append(r.Calls, Call{Method: "SetMatrix", Matrix: m})
}

// SetPaint implements [Backend].
func (r *Recorder) SetPaint(p Paint) {
	r.CurrentPaint = p
	r.Calls = append(r.Calls, Call{Method: "SetPaint", Paint: p})
}

// SetOperator implements [Backend].
func (r *Recorder) SetOperator(op Operator) {
	r.CurrentOperator = op
	r.Calls = append(r.Calls, Call{Method: "SetOperator", Operator: op})
}

// FillPath implements [Backend].
func (r *Recorder) FillPath(p *path.Data, rule FillRule) {
	r.Calls = append(r.Calls, r.draw("FillPath", p, rule))
}

// StrokePath implements [Backend].
func (r *Recorder) StrokePath(p *path.Data, style StrokeStyle) {
	c := r.draw("StrokePath", p, NonZero)
	c.Style = style
	r.Calls = append(r.Calls, c)
}

// ClipPath implements [Backend].
func (r *Recorder) ClipPath(p *path.Data, rule FillRule) {
	c := r.draw("ClipPath", p, rule)
	r.CurrentClip = append(r.CurrentClip[:len(r.CurrentClip):len(r.CurrentClip)], c)
	r.Calls = append(r.Calls, c)
}

// Paint implements [Backend].
func (r *Recorder) Paint() {
	r.Calls = append(r.Calls, r.draw("Paint", nil, NonZero))
}

// Save implements [Backend].
func (r *Recorder) Save() {
	r.stack = append(r.stack, recorderState{
		m:     r.CurrentMatrix,
		paint: r.CurrentPaint,
		op:    r.CurrentOperator,
		clip:  r.CurrentClip,
	})
	r.Calls = append(r.Calls, Call{Method: "Save"})
}

// Restore implements [Backend].
func (r *Recorder) Restore() error {
	n := len(r.stack)
	if n == 0 {
		r.Calls = append(r.Calls, Call{Method: "Restore", Err: ErrRestoreUnderflow})
		return ErrRestoreUnderflow
	}
	s := r.stack[n-1]
	r.stack = r.stack[:n-1]
	r.CurrentMatrix, r.CurrentPaint, r.CurrentOperator = s.m, s.paint, s.op
	r.CurrentClip = s.clip
	r.Calls = append(r.Calls, Call{Method: "Restore"})
	return nil
}

// draw records a drawing call together with the state in effect.
func (r *Recorder) draw(method string, p *path.Data, rule FillRule) Call {
	return Call{
		Method:   method,
		Matrix:   r.CurrentMatrix,
		Paint:    r.CurrentPaint,
		Operator: r.CurrentOperator,
		Path:     p,
		Rule:     rule,
	}
}

// Draws returns the recorded drawing calls (fill, stroke, clip and paint),
// in order.
func (r *Recorder) Draws() []Call {
	var res []Call
	for _, c := range r.Calls {
		switch c.Method {
		case "FillPath", "StrokePath", "ClipPath", "Paint":
			res = append(res, c)
		}
	}
	return res
}

// Reset forgets all recorded calls, keeping the current state.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}
