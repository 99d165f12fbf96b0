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

import "iter"

// PathIterator walks through the segments of a path.
//
//	for it := p.Iterator(); !it.Done(); it.Next() {
//		var pts [3]Point
//		cmd := it.Segment(&pts)
//		...
//	}
type PathIterator struct {
	src      *Path
	snapshot *Path
	elements []pathElement
	index    int
}

// Iterator returns an iterator over the segments of p.  The iterator
// sees p as it was when Iterator was called: it holds a reference to
// the command buffer, so that later changes to p leave it unaffected.
//
// The reference is dropped once the iterator reaches the end, or when
// Close is called.
func (p *Path) Iterator() *PathIterator {
	it := &PathIterator{src: p}
	it.acquire()
	return it
}

func (it *PathIterator) acquire() {
	it.snapshot = it.src.Clone()
	it.elements = it.snapshot.buf().elements
	it.index = 0
}

// Close releases the command buffer held by the iterator.  Afterwards,
// Done reports true.
func (it *PathIterator) Close() {
	if it.snapshot != nil {
		it.snapshot.Release()
		it.snapshot = nil
	}
	it.elements = nil
}

// Done reports whether all segments have been visited.
func (it *PathIterator) Done() bool {
	if it.index < len(it.elements) {
		return false
	}
	it.Close()
	return true
}

// Segment stores the points of the current segment in pts and returns
// the segment type.  MoveTo and LineTo use pts[0] for the end point.
// CubicTo uses all three entries.  For Close, pts[0] is the start of the
// sub-path being closed.
func (it *PathIterator) Segment(pts *[3]Point) PathCommand {
	h := it.elements[it.index]
	for i := 1; i < int(h.length); i++ {
		pts[i-1] = it.elements[it.index+i].pt
	}
	return h.cmd
}

// Next advances to the next segment.
func (it *PathIterator) Next() {
	if it.index < len(it.elements) {
		it.index += int(it.elements[it.index].length)
	}
}

// Rewind returns to the first segment.  If the iterator was closed, or
// has reached the end, Rewind takes a new snapshot of the path.
func (it *PathIterator) Rewind() {
	if it.snapshot == nil {
		it.acquire()
		return
	}
	it.index = 0
}

// All returns an iterator over the segments of p.  The slice of points
// has length 1 for MoveTo, LineTo and Close, and 3 for CubicTo.  It is
// only valid until the next iteration step.
//
// The path must not be modified during the iteration.
func (p *Path) All() iter.Seq2[PathCommand, []Point] {
	return func(yield func(PathCommand, []Point) bool) {
		var buf [3]Point
		elements := p.buf().elements
		for i := 0; i < len(elements); {
			h := elements[i]
			n := int(h.length) - 1
			for j := range n {
				buf[j] = elements[i+1+j].pt
			}
			if !yield(h.cmd, buf[:n]) {
				return
			}
			i += n + 1
		}
	}
}
