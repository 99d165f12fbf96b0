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

import "slices"

// Parse replaces t by the transform described by text, using the SVG
// transform list syntax:
//
//	matrix(a b c d e f)  translate(tx [ty])  scale(sx [sy])
//	rotate(deg [cx cy])  skewX(deg)  skewY(deg)
//
// Arguments are separated by white space or commas.  The functions are
// composed left to right, each prepended to the ones before it.  An
// empty text gives [Identity].
//
// On failure, t is set to Identity and the error is a [*SyntaxError].
func (t *Transform) Parse(text string) error {
	res, err := parseTransformList(text)
	if err != nil {
		*t = Identity
		return err
	}
	*t = res
	return nil
}

// ParseTransform parses a transform list, see [Transform.Parse].
func ParseTransform(text string) (Transform, error) {
	var t Transform
	err := t.Parse(text)
	return t, err
}

// transformArity lists the allowed argument counts per function.
var transformArity = map[string][]int{
	"matrix":    {6},
	"translate": {1, 2},
	"scale":     {1, 2},
	"rotate":    {1, 3},
	"skewX":     {1},
	"skewY":     {1},
}

func parseTransformList(text string) (Transform, error) {
	s := newScanner("transform", text)
	res := Identity

	s.skipSpace()
	for !s.atEnd() {
		start := s.pos
		for c := s.peek(); c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z'; c = s.peek() {
			s.pos++
		}
		name := string(s.buf[start:s.pos])
		arity, ok := transformArity[name]
		if !ok {
			s.pos = start
			return Identity, s.errorf("unknown transform function")
		}

		s.skipSpace()
		if s.peek() != '(' {
			return Identity, s.errorf(`"(" expected`)
		}
		s.pos++
		s.skipSpace()

		var args []float64
		for s.peek() != ')' {
			if len(args) > 0 {
				s.skipSeparator()
			}
			v, err := s.number()
			if err != nil {
				return Identity, err
			}
			args = append(args, v)
			s.skipSpace()
			if s.atEnd() {
				return Identity, s.errorf(`")" expected`)
			}
		}
		if !slices.Contains(arity, len(args)) {
			return Identity, s.errorf("wrong number of arguments for " + name)
		}
		s.pos++ // ')'

		res.Multiply(transformFunc(name, args))
		if s.skipSeparator() && s.atEnd() {
			return Identity, s.errorf("transform function expected")
		}
	}
	return res, nil
}

func transformFunc(name string, args []float64) Transform {
	switch name {
	case "matrix":
		return Transform{args[0], args[1], args[2], args[3], args[4], args[5]}
	case "translate":
		if len(args) == 1 {
			return Translated(args[0], 0)
		}
		return Translated(args[0], args[1])
	case "scale":
		if len(args) == 1 {
			return Scaled(args[0], args[0])
		}
		return Scaled(args[0], args[1])
	case "rotate":
		if len(args) == 1 {
			return Rotated(args[0])
		}
		return RotatedAround(args[0], args[1], args[2])
	case "skewX":
		return Sheared(args[0], 0)
	default: // skewY
		return Sheared(0, args[0])
	}
}
