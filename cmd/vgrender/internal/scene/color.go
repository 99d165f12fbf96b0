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
	"fmt"
	"strconv"
	"strings"

	"seehuhn.de/go/vgcore"
)

var namedColors = map[string]vgcore.Color{
	"transparent": vgcore.Transparent,
	"black":       vgcore.Black,
	"white":       vgcore.White,
	"gray":        vgcore.NewColor(128, 128, 128, 255),
	"red":         vgcore.NewColor(255, 0, 0, 255),
	"green":       vgcore.NewColor(0, 128, 0, 255),
	"lime":        vgcore.NewColor(0, 255, 0, 255),
	"blue":        vgcore.NewColor(0, 0, 255, 255),
	"yellow":      vgcore.NewColor(255, 255, 0, 255),
	"cyan":        vgcore.NewColor(0, 255, 255, 255),
	"magenta":     vgcore.NewColor(255, 0, 255, 255),
	"orange":      vgcore.NewColor(255, 165, 0, 255),
	"purple":      vgcore.NewColor(128, 0, 128, 255),
}

// ParseColor reads a colour in one of the forms #rgb, #rrggbb,
// #rrggbbaa, or a colour name such as "red".
func ParseColor(s string) (vgcore.Color, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}

	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return 0, fmt.Errorf("unknown colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid colour %q", s)
	}
	switch len(hex) {
	case 3:
		r, g, b := uint8(v>>8&0xF), uint8(v>>4&0xF), uint8(v&0xF)
		return vgcore.NewColor(r*0x11, g*0x11, b*0x11, 255), nil
	case 6:
		return vgcore.NewColor(uint8(v>>16), uint8(v>>8), uint8(v), 255), nil
	case 8:
		return vgcore.NewColor(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	return 0, fmt.Errorf("invalid colour %q", s)
}

// formatColor is the inverse of ParseColor.
func formatColor(c vgcore.Color) string {
	if c.A() == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R(), c.G(), c.B())
	}
	return c.String()
}

// parseName returns the value whose String method gives name.  The
// empty name selects the first value.
func parseName[T fmt.Stringer](kind, name string, values ...T) (T, error) {
	if name == "" {
		return values[0], nil
	}
	for _, v := range values {
		if v.String() == strings.ToLower(name) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("unknown %s %q", kind, name)
}
