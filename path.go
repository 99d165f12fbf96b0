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
	"runtime"
	"sync/atomic"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// PathCommand identifies a path segment type.
type PathCommand uint8

// These are the segment types stored in a [Path].  Quadratic curves and
// arcs are converted to cubic segments when they are added.
const (
	CmdMoveTo PathCommand = iota
	CmdLineTo
	CmdCubicTo
	CmdClose
)

func (c PathCommand) String() string {
	switch c {
	case CmdMoveTo:
		return "MoveTo"
	case CmdLineTo:
		return "LineTo"
	case CmdCubicTo:
		return "CubicTo"
	case CmdClose:
		return "Close"
	default:
		return "PathCommand(?)"
	}
}

// numPoints gives the number of points stored after each command header.
// Close records the start point of the sub-path it closes.
var numPoints = [...]int{
	CmdMoveTo:  1,
	CmdLineTo:  1,
	CmdCubicTo: 3,
	CmdClose:   1,
}

// pathElement is one slot of the command buffer.  A command occupies a
// header slot, using cmd and length, followed by its points, using pt.
type pathElement struct {
	cmd    PathCommand
	length uint8 // number of slots, including the header
	pt     Point
}

// pathData is a reference counted command buffer.
type pathData struct {
	elements []pathElement
	commands int

	// start is the first point of the current sub-path, cur is the
	// current point.  open is set between a MoveTo and the next Close.
	start, cur Point
	open       bool

	refs atomic.Int32

	// data caches the backend form of the path
	data atomic.Pointer[path.Data]
}

// emptyPathData is shared by all empty paths.  It is never modified and
// not reference counted.
var emptyPathData = &pathData{}

func (d *pathData) clone() *pathData {
	c := &pathData{
		elements: append([]pathElement(nil), d.elements...),
		commands: d.commands,
		start:    d.start,
		cur:      d.cur,
		open:     d.open,
	}
	c.refs.Store(1)
	return c
}

// Path is a sequence of sub-paths, made of straight lines and cubic
// Bézier curves.
//
// The zero Path is empty and ready to use.  A *Path is not safe for
// concurrent use, but distinct paths sharing a buffer through
// [Path.Clone] may be used and modified from different goroutines.
//
// Paths must be copied using [Path.Clone].  Copying the Path value
// itself shares the command buffer without counting the reference, so
// that changes to the copy show up in the original.
type Path struct {
	d *pathData
}

// NewPath returns a new, empty path.
func NewPath() *Path {
	return &Path{}
}

func (p *Path) buf() *pathData {
	if p.d == nil {
		return emptyPathData
	}
	return p.d
}

// Clone returns a copy of p.  The copy shares the command buffer with p
// until one of the two is modified.  A clone which is no longer used
// should be released; otherwise the reference is dropped when the
// garbage collector finds the clone.
func (p *Path) Clone() *Path {
	d := p.buf()
	c := &Path{d: d}
	if d != emptyPathData {
		d.refs.Add(1)
		runtime.SetFinalizer(c, (*Path).Release)
	}
	return c
}

// Release drops the reference to the command buffer, leaving p empty.
func (p *Path) Release() {
	d := p.buf()
	if d != emptyPathData {
		d.refs.Add(-1)
	}
	p.d = nil
}

// IsUnique reports whether p can be modified without copying its
// command buffer, that is whether no other path shares the buffer.  The
// buffer shared by all new paths is never unique.
func (p *Path) IsUnique() bool {
	d := p.buf()
	return d != emptyPathData && d.refs.Load() == 1
}

// ensure makes sure p owns its command buffer exclusively, and
// returns the buffer.
func (p *Path) ensure() *pathData {
	d := p.buf()
	switch {
	case d == emptyPathData:
		d = &pathData{}
		d.refs.Store(1)
		p.d = d
	case d.refs.Load() > 1:
		c := d.clone()
		d.refs.Add(-1)
		p.d = c
		d = c
	default:
		d.data.Store(nil)
	}
	return d
}

func (d *pathData) add(cmd PathCommand, pts ...Point) {
	d.elements = append(d.elements, pathElement{cmd: cmd, length: uint8(1 + len(pts))})
	for _, pt := range pts {
		d.elements = append(d.elements, pathElement{pt: pt})
	}
	d.commands++
	if cmd != CmdClose {
		d.cur = pts[len(pts)-1]
	}
}

// beginSubpath starts a new sub-path at the current point if none is
// open.  Before the first MoveTo the current point is the origin; after
// Close it is the start of the closed sub-path.
func (d *pathData) beginSubpath() {
	if !d.open {
		d.add(CmdMoveTo, d.start)
		d.cur = d.start
		d.open = true
	}
}

// MoveTo starts a new sub-path at (x, y).
func (p *Path) MoveTo(x, y float64) *Path {
	d := p.ensure()
	pt := Point{x, y}
	d.add(CmdMoveTo, pt)
	d.start = pt
	d.open = true
	return p
}

// LineTo adds a straight line to (x, y).
func (p *Path) LineTo(x, y float64) *Path {
	d := p.ensure()
	d.beginSubpath()
	d.add(CmdLineTo, Point{x, y})
	return p
}

// QuadTo adds a quadratic Bézier curve with control point (x1, y1),
// ending at (x2, y2).  The curve is stored as an equivalent cubic.
func (p *Path) QuadTo(x1, y1, x2, y2 float64) *Path {
	d := p.ensure()
	d.beginSubpath()
	p0 := d.cur
	c := Point{x1, y1}
	p2 := Point{x2, y2}
	d.add(CmdCubicTo,
		p0.Add(c.Sub(p0).Mul(2.0/3.0)),
		p2.Add(c.Sub(p2).Mul(2.0/3.0)),
		p2)
	return p
}

// CubicTo adds a cubic Bézier curve with control points (x1, y1) and
// (x2, y2), ending at (x3, y3).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) *Path {
	d := p.ensure()
	d.beginSubpath()
	d.add(CmdCubicTo, Point{x1, y1}, Point{x2, y2}, Point{x3, y3})
	return p
}

// Close closes the current sub-path with a straight line to its start.
// Without an open sub-path, Close does nothing.
func (p *Path) Close() *Path {
	if !p.buf().open {
		return p
	}
	d := p.ensure()
	d.add(CmdClose, d.start)
	d.cur = d.start
	d.open = false
	return p
}

// Reset removes all segments.
func (p *Path) Reset() *Path {
	d := p.buf()
	if d == emptyPathData {
		return p
	}
	if d.refs.Load() > 1 {
		d.refs.Add(-1)
		p.d = nil
		return p
	}
	d.elements = d.elements[:0]
	d.commands = 0
	d.start, d.cur = Point{}, Point{}
	d.open = false
	d.data.Store(nil)
	return p
}

// IsEmpty reports whether p has no segments.
func (p *Path) IsEmpty() bool {
	return p.buf().commands == 0
}

// Len returns the number of segments, including MoveTo and Close.
func (p *Path) Len() int {
	return p.buf().commands
}

// CurrentPoint returns the point where the next segment will start.
func (p *Path) CurrentPoint() Point {
	d := p.buf()
	if !d.open {
		return d.start
	}
	return d.cur
}

// Transform applies t to all points of p.
func (p *Path) Transform(t Transform) *Path {
	if p.IsEmpty() {
		return p
	}
	d := p.ensure()
	for i := 0; i < len(d.elements); {
		n := int(d.elements[i].length)
		for j := i + 1; j < i+n; j++ {
			d.elements[j].pt = t.MapPoint(d.elements[j].pt)
		}
		i += n
	}
	d.start = t.MapPoint(d.start)
	d.cur = t.MapPoint(d.cur)
	return p
}

// Data returns p in the form used by rasterization backends.  The result
// is cached until p is modified next, and must not be changed by the
// caller.
func (p *Path) Data() *path.Data {
	d := p.buf()
	if d == emptyPathData {
		return &path.Data{}
	}
	if res := d.data.Load(); res != nil {
		return res
	}

	res := &path.Data{
		Cmds:   make([]path.Command, 0, d.commands),
		Coords: make([]vec.Vec2, 0, len(d.elements)-d.commands),
	}
	for cmd, pts := range p.All() {
		switch cmd {
		case CmdMoveTo:
			res.Cmds = append(res.Cmds, path.CmdMoveTo)
		case CmdLineTo:
			res.Cmds = append(res.Cmds, path.CmdLineTo)
		case CmdCubicTo:
			res.Cmds = append(res.Cmds, path.CmdCubeTo)
		case CmdClose:
			res.Cmds = append(res.Cmds, path.CmdClose)
			continue
		}
		for _, pt := range pts {
			res.Coords = append(res.Coords, vec.Vec2{X: pt.X, Y: pt.Y})
		}
	}
	d.data.Store(res)
	return res
}

// PathFromData converts a path from the backend representation.
// Quadratic segments are converted to cubic ones.
func PathFromData(data *path.Data) *Path {
	p := &Path{}
	if data == nil {
		return p
	}
	k := 0
	pt := func() (float64, float64) {
		v := data.Coords[k]
		k++
		return v.X, v.Y
	}
	for _, cmd := range data.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			p.MoveTo(pt())
		case path.CmdLineTo:
			p.LineTo(pt())
		case path.CmdQuadTo:
			x1, y1 := pt()
			x2, y2 := pt()
			p.QuadTo(x1, y1, x2, y2)
		case path.CmdCubeTo:
			x1, y1 := pt()
			x2, y2 := pt()
			x3, y3 := pt()
			p.CubicTo(x1, y1, x2, y2, x3, y3)
		case path.CmdClose:
			p.Close()
		}
	}
	return p
}
