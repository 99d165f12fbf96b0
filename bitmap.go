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
	"image"

	"golang.org/x/image/draw"
)

// Bitmap is a pixel surface with premultiplied RGBA pixels.
type Bitmap struct {
	img *image.RGBA
}

// NewBitmap allocates a transparent bitmap of the given size.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// BitmapFromRGBA wraps img.  The bitmap and img share their pixels.
func BitmapFromRGBA(img *image.RGBA) *Bitmap {
	return &Bitmap{img: img}
}

// NewBitmapFromImage copies src into a new bitmap.
func NewBitmapFromImage(src image.Image) *Bitmap {
	r := src.Bounds()
	img := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(img, img.Rect, src, r.Min, draw.Src)
	return &Bitmap{img: img}
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int { return b.img.Rect.Dx() }

// Height returns the height in pixels.
func (b *Bitmap) Height() int { return b.img.Rect.Dy() }

// Stride returns the distance in bytes between vertically adjacent
// pixels.
func (b *Bitmap) Stride() int { return b.img.Stride }

// RGBA returns the underlying image.
func (b *Bitmap) RGBA() *image.RGBA { return b.img }
