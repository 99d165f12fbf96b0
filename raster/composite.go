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

package raster

import "seehuhn.de/go/vgcore/backend"

// pixel is a premultiplied RGBA value.
type pixel [4]uint8

// factor is one of the weights in the Porter-Duff equation
//
//	result = src·Fa + dst·Fb
type factor uint8

const (
	fZero factor = iota
	fOne
	fSrcAlpha
	fInvSrcAlpha
	fDstAlpha
	fInvDstAlpha
)

// porterDuff lists Fa and Fb for each operator.
var porterDuff = [...][2]factor{
	backend.Clear:   {fZero, fZero},
	backend.Src:     {fOne, fZero},
	backend.Dst:     {fZero, fOne},
	backend.SrcOver: {fOne, fInvSrcAlpha},
	backend.DstOver: {fInvDstAlpha, fOne},
	backend.SrcIn:   {fDstAlpha, fZero},
	backend.DstIn:   {fZero, fSrcAlpha},
	backend.SrcOut:  {fInvDstAlpha, fZero},
	backend.DstOut:  {fZero, fInvSrcAlpha},
	backend.SrcAtop: {fDstAlpha, fInvSrcAlpha},
	backend.DstAtop: {fInvDstAlpha, fSrcAlpha},
	backend.Xor:     {fInvDstAlpha, fInvSrcAlpha},
}

func (f factor) value(sa, da uint8) uint8 {
	switch f {
	case fOne:
		return 255
	case fSrcAlpha:
		return sa
	case fInvSrcAlpha:
		return 255 - sa
	case fDstAlpha:
		return da
	case fInvDstAlpha:
		return 255 - da
	default:
		return 0
	}
}

// composite combines the source pixel s with the destination pixel d.
// Unknown operators behave like SrcOver.
func composite(op backend.Operator, s, d pixel) pixel {
	if op < 0 || int(op) >= len(porterDuff) {
		op = backend.SrcOver
	}
	pd := porterDuff[op]
	fa := pd[0].value(s[3], d[3])
	fb := pd[1].value(s[3], d[3])

	var res pixel
	for i := range res {
		res[i] = addClamp(mulDiv255(s[i], fa), mulDiv255(d[i], fb))
	}
	return res
}

// lerpPixel returns the weighted average (1-a)·d + a·res, with the weight
// a given in the range 0-255.
func lerpPixel(d, res pixel, a uint8) pixel {
	if a == 255 {
		return res
	}
	inv := 255 - uint16(a)
	var out pixel
	for i := range out {
		out[i] = uint8((uint16(res[i])*uint16(a) + uint16(d[i])*inv + 127) / 255)
	}
	return out
}

// scale multiplies all channels of a premultiplied pixel by a/255.
func (p pixel) scale(a uint8) pixel {
	if a == 255 {
		return p
	}
	return pixel{mulDiv255(p[0], a), mulDiv255(p[1], a), mulDiv255(p[2], a), mulDiv255(p[3], a)}
}

func mulDiv255(a, b uint8) uint8 {
	return uint8((uint16(a)*uint16(b) + 127) / 255)
}

func addClamp(a, b uint8) uint8 {
	s := uint16(a) + uint16(b)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// coverageByte converts a coverage value to the range 0-255.
func coverageByte(c float32) uint8 {
	switch {
	case c <= 0:
		return 0
	case c >= 1:
		return 255
	default:
		return uint8(c*255 + 0.5)
	}
}
