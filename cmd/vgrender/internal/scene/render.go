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

package scene

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"seehuhn.de/go/vgcore"
)

var (
	fillRules = []vgcore.FillRule{vgcore.NonZero, vgcore.EvenOdd}
	spreads   = []vgcore.SpreadMethod{vgcore.SpreadPad, vgcore.SpreadReflect, vgcore.SpreadRepeat}
	caps      = []vgcore.LineCap{vgcore.CapButt, vgcore.CapRound, vgcore.CapSquare}
	joins     = []vgcore.LineJoin{vgcore.JoinMiter, vgcore.JoinRound, vgcore.JoinBevel}
)

// Render draws the scene onto a new canvas.
func (s *Scene) Render(opts ...vgcore.Option) (*vgcore.Canvas, error) {
	var x, y float64
	if len(s.Origin) == 2 {
		x, y = s.Origin[0], s.Origin[1]
	}
	cv := vgcore.NewCanvas(x, y, s.Width, s.Height, opts...)
	if s.Background != "" {
		bg, err := ParseColor(s.Background)
		if err != nil {
			return nil, fmt.Errorf("background: %w", err)
		}
		cv.Clear(bg)
	}

	r := &renderer{dir: s.dir, opts: opts}
	if err := r.run(cv, s.Ops); err != nil {
		return nil, err
	}
	return cv, nil
}

type renderer struct {
	dir  string
	opts []vgcore.Option
}

func (r *renderer) run(cv *vgcore.Canvas, ops []Op) error {
	for i := range ops {
		op := &ops[i]
		if err := r.apply(cv, op); err != nil {
			return fmt.Errorf("op %d (%s): %w", i+1, op.Op, err)
		}
	}
	return nil
}

func (r *renderer) apply(cv *vgcore.Canvas, op *Op) error {
	t, err := vgcore.ParseTransform(op.Transform)
	if err != nil {
		return err
	}

	switch op.Op {
	case "fill", "stroke":
		p, err := vgcore.ParsePath(op.Path)
		if err != nil {
			return err
		}
		if err := setPaint(cv, op.Paint); err != nil {
			return err
		}
		if op.Op == "stroke" {
			sd, err := op.Stroke.data()
			if err != nil {
				return err
			}
			cv.StrokePath(p, sd, t)
			return nil
		}
		rule, err := parseName("fill rule", op.Rule, fillRules...)
		if err != nil {
			return err
		}
		cv.FillPath(p, rule, t)

	case "clip":
		rule, err := parseName("fill rule", op.Rule, fillRules...)
		if err != nil {
			return err
		}
		if op.Rect != nil {
			rect, err := toRect("rect", op.Rect)
			if err != nil {
				return err
			}
			cv.ClipRect(rect, rule, t)
			return nil
		}
		p, err := vgcore.ParsePath(op.Path)
		if err != nil {
			return err
		}
		cv.ClipPath(p, rule, t)

	case "save":
		cv.Save()

	case "restore":
		return cv.Restore()

	case "luminance":
		cv.ConvertToLuminanceMask()

	case "image":
		return r.drawImage(cv, op, t)

	case "group":
		return r.group(cv, op)

	default:
		return errors.New("unknown operation")
	}
	return nil
}

func (r *renderer) drawImage(cv *vgcore.Canvas, op *Op, t vgcore.Transform) error {
	fname := op.Image
	if !filepath.IsAbs(fname) {
		fname = filepath.Join(r.dir, fname)
	}
	f, err := os.Open(fname)
	if err != nil {
		return err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}
	b := vgcore.NewBitmapFromImage(img)

	src := vgcore.Rect{W: float64(b.Width()), H: float64(b.Height())}
	if op.Source != nil {
		if src, err = toRect("source", op.Source); err != nil {
			return err
		}
	}
	dst := src
	if op.Rect != nil {
		if dst, err = toRect("rect", op.Rect); err != nil {
			return err
		}
	}
	cv.DrawImage(b, dst, src, t)
	return nil
}

// group renders the nested operations onto a transparent layer with
// the extents of cv, and blends the layer onto cv.
func (r *renderer) group(cv *vgcore.Canvas, op *Op) error {
	mode := vgcore.BlendSrcOver
	if op.Blend != "" {
		var err error
		mode, err = parseName("blend mode", op.Blend,
			vgcore.BlendClear, vgcore.BlendSrc, vgcore.BlendDst,
			vgcore.BlendSrcOver, vgcore.BlendDstOver,
			vgcore.BlendSrcIn, vgcore.BlendDstIn,
			vgcore.BlendSrcOut, vgcore.BlendDstOut,
			vgcore.BlendSrcAtop, vgcore.BlendDstAtop, vgcore.BlendXor)
		if err != nil {
			return err
		}
	}
	opacity := 1.0
	if op.Opacity != nil {
		opacity = *op.Opacity
	}

	layer := vgcore.NewCanvasRect(cv.Extents(), r.opts...)
	if err := r.run(layer, op.Ops); err != nil {
		return err
	}
	cv.BlendCanvas(layer, mode, opacity)
	return nil
}

func setPaint(cv *vgcore.Canvas, p *Paint) error {
	switch {
	case p == nil:
		cv.SetColor(vgcore.Black)

	case p.Linear != nil:
		g := p.Linear
		spread, stops, t, err := gradient(g.Spread, g.Stops, g.Transform)
		if err != nil {
			return err
		}
		cv.SetLinearGradient(g.X1, g.Y1, g.X2, g.Y2, spread, stops, t)

	case p.Radial != nil:
		g := p.Radial
		spread, stops, t, err := gradient(g.Spread, g.Stops, g.Transform)
		if err != nil {
			return err
		}
		fx, fy := g.CX, g.CY
		if g.FX != nil {
			fx = *g.FX
		}
		if g.FY != nil {
			fy = *g.FY
		}
		cv.SetRadialGradient(g.CX, g.CY, g.R, fx, fy, spread, stops, t)

	default:
		col := vgcore.Black
		if p.Color != "" {
			var err error
			if col, err = ParseColor(p.Color); err != nil {
				return err
			}
		}
		cv.SetColor(col)
	}
	return nil
}

func gradient(spreadName string, in []Stop, transform string) (vgcore.SpreadMethod, vgcore.GradientStops, vgcore.Transform, error) {
	spread, err := parseName("spread method", spreadName, spreads...)
	if err != nil {
		return 0, nil, vgcore.Transform{}, err
	}
	stops := make(vgcore.GradientStops, len(in))
	for i, s := range in {
		col, err := ParseColor(s.Color)
		if err != nil {
			return 0, nil, vgcore.Transform{}, err
		}
		stops[i] = vgcore.GradientStop{Offset: s.Offset, Color: col}
	}
	t, err := vgcore.ParseTransform(transform)
	if err != nil {
		return 0, nil, vgcore.Transform{}, err
	}
	return spread, stops, t, nil
}

func (s *Stroke) data() (vgcore.StrokeData, error) {
	sd := vgcore.NewStrokeData(1)
	if s == nil {
		return sd, nil
	}
	if s.Width != nil {
		sd = sd.WithLineWidth(*s.Width)
	}
	if s.MiterLimit != nil {
		sd = sd.WithMiterLimit(*s.MiterLimit)
	}
	lineCap, err := parseName("line cap", s.Cap, caps...)
	if err != nil {
		return sd, err
	}
	lineJoin, err := parseName("line join", s.Join, joins...)
	if err != nil {
		return sd, err
	}
	sd = sd.WithLineCap(lineCap).WithLineJoin(lineJoin)
	if len(s.Dash) > 0 {
		sd = sd.WithDash(s.DashOffset, s.Dash...)
	}
	return sd, nil
}

func toRect(name string, v []float64) (vgcore.Rect, error) {
	if len(v) != 4 {
		return vgcore.Rect{}, fmt.Errorf("%s needs four values, not %d", name, len(v))
	}
	return vgcore.Rect{X: v[0], Y: v[1], W: v[2], H: v[3]}, nil
}
