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

import "strings"

// String returns p in SVG path data format, for example
// "M0 0L10 0L10 10Z".  The result can be read back using [Path.Parse].
func (p *Path) String() string {
	var b []byte
	for cmd, pts := range p.All() {
		switch cmd {
		case CmdMoveTo:
			b = append(b, 'M')
		case CmdLineTo:
			b = append(b, 'L')
		case CmdCubicTo:
			b = append(b, 'C')
		case CmdClose:
			b = append(b, 'Z')
			continue
		}
		for i, pt := range pts {
			if i > 0 {
				b = append(b, ' ')
			}
			b = appendNumber(b, pt.X)
			b = append(b, ' ')
			b = appendNumber(b, pt.Y)
		}
	}
	return string(b)
}

// Parse replaces the contents of p with the path described by text, in
// SVG path data syntax.  All commands (M, L, H, V, C, S, Q, T, A, Z) are
// supported, in absolute and relative form, with implicit repetition
// of the previous command.
//
// On failure, p is left empty and the error is a [*SyntaxError].
func (p *Path) Parse(text string) error {
	p.Reset()
	if err := parsePathData(p, text); err != nil {
		p.Reset()
		return err
	}
	return nil
}

// ParsePath parses SVG path data into a new path, see [Path.Parse].
func ParsePath(text string) (*Path, error) {
	p := &Path{}
	err := p.Parse(text)
	return p, err
}

const pathCommands = "MmLlHhVvCcSsQqTtAaZz"

func parsePathData(p *Path, text string) error {
	s := newScanner("path", text)

	var cur, start Point
	var ctrl Point  // last control point, for S and T
	var prev byte   // lower case letter of the previous command
	var cmd byte    // current command letter
	var args [7]float64

	for {
		s.skipSpace()
		if s.atEnd() {
			return nil
		}

		c := s.peek()
		switch {
		case strings.IndexByte(pathCommands, c) >= 0:
			cmd = c
			s.pos++
			s.skipSpace()
		case cmd != 0 && cmd|0x20 != 'z' && s.startsNumber():
			// implicit repetition
		default:
			return s.errorf("path command expected")
		}
		if prev == 0 && cmd|0x20 != 'm' {
			return s.errorf("path data must start with a move-to command")
		}

		var base Point
		if cmd >= 'a' {
			base = cur
		}
		lower := cmd | 0x20
		switch lower {
		case 'z':
			p.Close()
			cur = start

		case 'm', 'l':
			if err := s.args(args[:2]); err != nil {
				return err
			}
			pt := base.Add(Point{args[0], args[1]})
			if lower == 'm' {
				p.MoveTo(pt.X, pt.Y)
				start = pt
				// further coordinate pairs are line-to commands
				cmd-- // M → L, m → l
			} else {
				p.LineTo(pt.X, pt.Y)
			}
			cur = pt

		case 'h':
			if err := s.args(args[:1]); err != nil {
				return err
			}
			cur = Point{base.X + args[0], cur.Y}
			p.LineTo(cur.X, cur.Y)

		case 'v':
			if err := s.args(args[:1]); err != nil {
				return err
			}
			cur = Point{cur.X, base.Y + args[0]}
			p.LineTo(cur.X, cur.Y)

		case 'c', 's':
			var c1 Point
			if lower == 'c' {
				if err := s.args(args[:6]); err != nil {
					return err
				}
				c1 = base.Add(Point{args[0], args[1]})
				copy(args[:4], args[2:6])
			} else {
				if err := s.args(args[:4]); err != nil {
					return err
				}
				c1 = cur
				if prev == 'c' || prev == 's' {
					c1 = cur.Mul(2).Sub(ctrl)
				}
			}
			c2 := base.Add(Point{args[0], args[1]})
			end := base.Add(Point{args[2], args[3]})
			p.CubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
			ctrl, cur = c2, end

		case 'q', 't':
			var q Point
			if lower == 'q' {
				if err := s.args(args[:4]); err != nil {
					return err
				}
				q = base.Add(Point{args[0], args[1]})
				copy(args[:2], args[2:4])
			} else {
				if err := s.args(args[:2]); err != nil {
					return err
				}
				q = cur
				if prev == 'q' || prev == 't' {
					q = cur.Mul(2).Sub(ctrl)
				}
			}
			end := base.Add(Point{args[0], args[1]})
			p.QuadTo(q.X, q.Y, end.X, end.Y)
			ctrl, cur = q, end

		case 'a':
			if err := s.args(args[:3]); err != nil {
				return err
			}
			s.skipSeparator()
			largeArc, err := s.flag()
			if err != nil {
				return err
			}
			s.skipSeparator()
			sweep, err := s.flag()
			if err != nil {
				return err
			}
			s.skipSeparator()
			if err := s.args(args[3:5]); err != nil {
				return err
			}
			end := base.Add(Point{args[3], args[4]})
			p.ArcTo(args[0], args[1], args[2], largeArc, sweep, end.X, end.Y)
			cur = end
		}
		prev = lower
		if s.skipSeparator() && !s.startsNumber() {
			return s.errorf("number expected")
		}
	}
}

// args reads len(dst) numbers, separated by white space or commas.
func (s *scanner) args(dst []float64) error {
	for i := range dst {
		if i > 0 {
			s.skipSeparator()
		}
		v, err := s.number()
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}
