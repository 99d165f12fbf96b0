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
	"strconv"

	tdstrconv "github.com/tdewolff/parse/v2/strconv"
)

// numberDigits is the number of significant digits written for each
// number.  Rounding to fewer digits than a float64 holds keeps output
// free of binary rounding noise, such as 4.99999999999999 for 5.
const numberDigits = 15

// appendNumber appends v, correctly rounded to numberDigits significant
// digits, with trailing zeros removed.
func appendNumber(b []byte, v float64) []byte {
	if v == 0 {
		v = 0 // no "-0"
	}
	return strconv.AppendFloat(b, v, 'g', numberDigits, 64)
}

// scanner reads the numeric mini-languages used for path data and
// transform lists.
type scanner struct {
	grammar string
	buf     []byte
	pos     int
}

func newScanner(grammar, text string) *scanner {
	return &scanner{grammar: grammar, buf: []byte(text)}
}

func (s *scanner) errorf(msg string) error {
	return &SyntaxError{
		Grammar: s.grammar,
		Input:   string(s.buf),
		Offset:  s.pos,
		Msg:     msg,
	}
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.buf)
}

func (s *scanner) peek() byte {
	if s.pos >= len(s.buf) {
		return 0
	}
	return s.buf[s.pos]
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

func (s *scanner) skipSpace() {
	for s.pos < len(s.buf) && isSpace(s.buf[s.pos]) {
		s.pos++
	}
}

// skipSeparator skips white space with at most one comma, and reports
// whether a comma was found.
func (s *scanner) skipSeparator() bool {
	s.skipSpace()
	if s.peek() != ',' {
		return false
	}
	s.pos++
	s.skipSpace()
	return true
}

// startsNumber reports whether a number could begin at the current
// position.
func (s *scanner) startsNumber() bool {
	c := s.peek()
	return c >= '0' && c <= '9' || c == '-' || c == '+' || c == '.'
}

func (s *scanner) number() (float64, error) {
	v, n := tdstrconv.ParseFloat(s.buf[s.pos:])
	if n == 0 {
		return 0, s.errorf("number expected")
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, s.errorf("number out of range")
	}
	s.pos += n
	return v, nil
}

// flag reads an arc flag, which is a single "0" or "1" character.
func (s *scanner) flag() (bool, error) {
	switch s.peek() {
	case '0':
		s.pos++
		return false, nil
	case '1':
		s.pos++
		return true, nil
	}
	return false, s.errorf("arc flag expected")
}
