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
	"errors"
	"fmt"
)

// ErrNotInvertible is returned when a transform with zero or non-finite
// determinant needs to be inverted.
var ErrNotInvertible = errors.New("vgcore: transform is not invertible")

// ErrSyntax matches all parse errors, using errors.Is.
var ErrSyntax = errors.New("vgcore: syntax error")

// SyntaxError describes malformed input to one of the text grammars.
type SyntaxError struct {
	Grammar string // "path" or "transform"
	Input   string
	Offset  int // byte offset of the problem in Input
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("vgcore: invalid %s data at offset %d: %s", e.Grammar, e.Offset, e.Msg)
}

// Is reports whether target is [ErrSyntax].
func (e *SyntaxError) Is(target error) bool {
	return target == ErrSyntax
}
