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

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// strokeSegment is a flattened piece of the path, in user space.
type strokeSegment struct {
	A, B vec.Vec2
	T    vec.Vec2 // unit tangent, from A to B
	N    vec.Vec2 // unit normal, T rotated by +90°
}

// Stroke rasterizes the outline of p, as described by Width, Cap, Join,
// MiterLimit, Dash and DashPhase.
//
// Coverage is passed to emit one row at a time.  The slice is only
// valid during the call.
func (r *Rasterizer) Stroke(p *path.Data, emit func(y, xMin int, coverage []float32)) {
	if p == nil || !(r.Width > 0) {
		return
	}
	r.flattenPath(p)
	if len(r.segsOffsets) == 0 && len(r.degeneratePoints) == 0 {
		return
	}

	// All outline polygons go into one buffer and are filled together
	// with the nonzero rule, so that overlaps are painted only once.
	r.stroke = r.stroke[:0]
	r.strokeOffsets = r.strokeOffsets[:0]

	// Sub-paths without a direction only show up with round caps.
	if r.Cap == graphics.LineCapRound {
		for _, pt := range r.degeneratePoints {
			start := len(r.stroke)
			r.addArc(pt, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
	}

	if len(r.Dash) > 0 {
		r.applyDashPattern()
		for _, run := range r.dashRuns {
			r.strokeDash(r.dashedSegs[run.start:run.end])
		}
	} else {
		for i := range r.segsOffsets {
			r.strokePolygon(spans(r.segs, r.segsOffsets, i), r.subpathClosed[i])
		}
	}

	if len(r.strokeOffsets) == 0 {
		return
	}
	r.beginEdges()
	for i := range r.strokeOffsets {
		poly := spans(r.stroke, r.strokeOffsets, i)
		if len(poly) < 2 {
			continue
		}
		for j := 1; j < len(poly); j++ {
			r.addEdge(poly[j-1], poly[j])
		}
		r.addEdge(poly[len(poly)-1], poly[0])
	}
	r.rasterizeEdges(fillNonZero, emit)
}

// spans returns the i-th run of buf, where offsets holds the start
// index of each run.
func spans[T any](buf []T, offsets []int, i int) []T {
	end := len(buf)
	if i+1 < len(offsets) {
		end = offsets[i+1]
	}
	return buf[offsets[i]:end]
}

// strokePolygon adds the outline of one sub-path, discarding it if it
// does not enclose any area.
func (r *Rasterizer) strokePolygon(segs []strokeSegment, closed bool) {
	start := len(r.stroke)
	r.strokeSubpath(segs, closed)
	if len(r.stroke)-start >= 3 {
		r.strokeOffsets = append(r.strokeOffsets, start)
	} else {
		r.stroke = r.stroke[:start]
	}
}

// strokeDash adds the outline of one dash.  A dash of length zero still
// carries the direction of the underlying path and becomes a dot or a
// square, depending on the cap style.
func (r *Rasterizer) strokeDash(segs []strokeSegment) {
	if len(segs) == 1 && segs[0].A == segs[0].B {
		seg := &segs[0]
		start := len(r.stroke)
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(seg.A, r.Width/2, vec.Vec2{X: 1}, 2*math.Pi, true)
			r.strokeOffsets = append(r.strokeOffsets, start)
		case graphics.LineCapSquare:
			r.addSquare(seg.A, seg.T, r.Width/2)
			r.strokeOffsets = append(r.strokeOffsets, start)
		}
		return
	}
	r.strokePolygon(segs, false)
}

// flattenPath splits p into sub-paths of straight segments.  It fills
// r.segs, r.segsOffsets and r.subpathClosed, and collects sub-paths
// which have no direction in r.degeneratePoints.
func (r *Rasterizer) flattenPath(p *path.Data) {
	r.segs = r.segs[:0]
	r.segsOffsets = r.segsOffsets[:0]
	r.subpathClosed = r.subpathClosed[:0]
	r.degeneratePoints = r.degeneratePoints[:0]

	var current, start vec.Vec2
	first := 0     // index of the first segment of the current sub-path
	open := false  // a sub-path has been started
	drawn := false // the current sub-path has seen a drawing command

	finish := func(closed bool) {
		if len(r.segs) == first {
			r.degeneratePoints = append(r.degeneratePoints, start)
			return
		}
		r.segsOffsets = append(r.segsOffsets, first)
		r.subpathClosed = append(r.subpathClosed, closed)
	}

	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && drawn {
				finish(false)
			}
			current = p.Coords[k]
			start = current
			first = len(r.segs)
			open, drawn = true, false
			k++

		case path.CmdLineTo:
			if open {
				r.addStrokeSegment(current, p.Coords[k])
				current = p.Coords[k]
				drawn = true
			}
			k++

		case path.CmdQuadTo:
			if open {
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], r.addStrokeSegment)
				current = p.Coords[k+1]
				drawn = true
			}
			k += 2

		case path.CmdCubeTo:
			if open {
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], r.addStrokeSegment)
				current = p.Coords[k+2]
				drawn = true
			}
			k += 3

		case path.CmdClose:
			if open {
				if current != start {
					r.addStrokeSegment(current, start)
				}
				finish(true)
				current = start
				first = len(r.segs)
				open, drawn = false, false
			}
		}
	}
	if open && drawn {
		finish(false)
	}
}

// addStrokeSegment appends the segment from a to b, unless it is too
// short to have a direction.
func (r *Rasterizer) addStrokeSegment(a, b vec.Vec2) {
	d := b.Sub(a)
	l := d.Length()
	if l < zeroLengthThreshold {
		return
	}
	t := d.Mul(1 / l)
	r.segs = append(r.segs, strokeSegment{A: a, B: b, T: t, N: vec.Vec2{X: -t.Y, Y: t.X}})
}

func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}

// strokeSubpath appends the outline of one sub-path to r.stroke, as a
// single polygon: the +N side in path direction, followed by the -N
// side in reverse.  Joins are only added on the outer side of a corner;
// on the inner side the two offset lines are cut at their intersection.
func (r *Rasterizer) strokeSubpath(segs []strokeSegment, closed bool) {
	if len(segs) == 0 {
		return
	}
	d := r.Width / 2
	first := &segs[0]
	last := &segs[len(segs)-1]

	if closed {
		r.stroke = append(r.stroke, first.A.Add(first.N.Mul(d)))
		for i := range segs {
			next := &segs[(i+1)%len(segs)]
			r.cornerForward(&segs[i], next, d)
		}
		r.cornerBackward(last, first, d)
		for i := len(segs) - 1; i > 0; i-- {
			r.cornerBackward(&segs[i-1], &segs[i], d)
		}
		r.stroke = append(r.stroke, first.A.Sub(first.N.Mul(d)))
		return
	}

	r.addCap(first.A, first.T.Mul(-1), d)

	skip := false
	for i := range segs {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.A.Add(seg.N.Mul(d)))
		}
		skip = false
		if i == len(segs)-1 {
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			break
		}
		next := &segs[i+1]
		sin := cross(seg.T, next.T)
		switch {
		case math.Abs(sin) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
		case sin > 0:
			skip = r.addInnerCorner(seg.B, seg.T, next.T, seg.N, next.N, d, true)
		default:
			r.stroke = append(r.stroke, seg.B.Add(seg.N.Mul(d)))
			r.addJoin(seg.B, seg.T, next.T, d, true)
		}
	}

	r.addCap(last.B, last.T, d)

	skip = false
	for i := len(segs) - 1; i >= 0; i-- {
		seg := &segs[i]
		if !skip {
			r.stroke = append(r.stroke, seg.B.Sub(seg.N.Mul(d)))
		}
		skip = false
		if i == 0 {
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			break
		}
		prev := &segs[i-1]
		sin := cross(prev.T, seg.T)
		switch {
		case math.Abs(sin) < collinearityThreshold:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
		case sin > 0:
			r.stroke = append(r.stroke, seg.A.Sub(seg.N.Mul(d)))
			r.addJoin(seg.A, prev.T, seg.T, d, false)
		default:
			skip = r.addInnerCorner(seg.A, prev.T, seg.T, prev.N, seg.N, d, false)
		}
	}
}

// cornerForward adds the +N side outline points for the corner where
// segment a ends and segment b starts.
func (r *Rasterizer) cornerForward(a, b *strokeSegment, d float64) {
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, a.B.Add(a.N.Mul(d)), b.A.Add(b.N.Mul(d)))
	case sin > 0:
		r.addInnerCorner(a.B, a.T, b.T, a.N, b.N, d, true)
	default:
		r.stroke = append(r.stroke, a.B.Add(a.N.Mul(d)))
		r.addJoin(a.B, a.T, b.T, d, true)
		r.stroke = append(r.stroke, b.A.Add(b.N.Mul(d)))
	}
}

// cornerBackward adds the -N side outline points for the corner where
// segment a ends and segment b starts, in reverse path direction.
func (r *Rasterizer) cornerBackward(a, b *strokeSegment, d float64) {
	sin := cross(a.T, b.T)
	switch {
	case math.Abs(sin) < collinearityThreshold:
		r.stroke = append(r.stroke, b.A.Sub(b.N.Mul(d)), a.B.Sub(a.N.Mul(d)))
	case sin > 0:
		r.stroke = append(r.stroke, b.A.Sub(b.N.Mul(d)))
		r.addJoin(b.A, a.T, b.T, d, false)
		r.stroke = append(r.stroke, a.B.Sub(a.N.Mul(d)))
	default:
		r.addInnerCorner(b.A, a.T, b.T, a.N, b.N, d, false)
	}
}

// addCap adds the cap at the end point P.  T points away from the line
// and d is half the line width.
func (r *Rasterizer) addCap(P, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(d))
		r.stroke = append(r.stroke, ext.Add(N.Mul(d)), ext.Sub(N.Mul(d)))
	case graphics.LineCapRound:
		r.addArc(P, d, N, -math.Pi, true)
	}
}

// innerIntersection returns the point where the two offset lines on the
// inner side of a corner at P meet.  For nearly collinear tangents there
// is no useful intersection and ok is false.
func innerIntersection(P, T1, T2 vec.Vec2, d float64, positive bool) (pt vec.Vec2, ok bool) {
	cos := T1.Dot(T2)
	if cos > 1-1e-9 {
		return vec.Vec2{}, false
	}
	half := math.Sqrt((1 + cos) / 2) // cos(θ/2)
	if half < 1e-9 {
		return vec.Vec2{}, false
	}

	dir := vec.Vec2{X: -T1.Y - T2.Y, Y: T1.X + T2.X} // N1 + N2
	if !positive {
		dir = dir.Mul(-1)
	}
	l := dir.Length()
	if l < 1e-9 {
		return vec.Vec2{}, false
	}
	return P.Add(dir.Mul(d / (half * l))), true
}

// addInnerCorner adds the inner side of a corner.  If the offset lines
// intersect, only the intersection is added and the result is true.
// Otherwise both offset points are added.
func (r *Rasterizer) addInnerCorner(P, T1, T2, N1, N2 vec.Vec2, d float64, positive bool) bool {
	if pt, ok := innerIntersection(P, T1, T2, d, positive); ok {
		r.stroke = append(r.stroke, pt)
		return true
	}
	if positive {
		r.stroke = append(r.stroke, P.Add(N1.Mul(d)), P.Add(N2.Mul(d)))
	} else {
		r.stroke = append(r.stroke, P.Sub(N1.Mul(d)), P.Sub(N2.Mul(d)))
	}
	return false
}

// addJoin adds the outer side of a corner at P, where the tangent turns
// from T1 to T2.  The flag positive selects the side being built.
func (r *Rasterizer) addJoin(P, T1, T2 vec.Vec2, d float64, positive bool) {
	cos := T1.Dot(T2)
	sin := cross(T1, T2)
	if math.Abs(sin) < collinearityThreshold {
		return
	}
	if cos < cuspCosineThreshold {
		// the path turns back onto itself
		r.addCap(P, T1, d)
		r.addCap(P, T2.Mul(-1), d)
		return
	}

	N1 := vec.Vec2{X: -T1.Y, Y: T1.X}
	N2 := vec.Vec2{X: -T2.Y, Y: T2.X}

	switch r.Join {
	case graphics.LineJoinMiter:
		// The miter length relative to the line width is 1/cos(θ/2),
		// where θ is the angle between the tangents.
		half := math.Sqrt((1 + cos) / 2)
		const eps = 1e-10
		if half > 0 && 1/half <= r.MiterLimit+eps {
			bis := N1.Add(N2)
			if !positive {
				bis = bis.Mul(-1)
			}
			if l := bis.Length(); l > zeroLengthThreshold {
				r.stroke = append(r.stroke, P.Add(bis.Mul(d/(half*l))))
			}
		}
		// beyond the limit the corner is bevelled

	case graphics.LineJoinRound:
		angle := math.Acos(max(-1, min(1, cos)))
		if positive {
			if sin > 0 {
				r.addArc(P, d, N1, angle, false)
			} else {
				r.addArc(P, d, N1, -angle, false)
			}
		} else {
			// the backward pass runs from T2 to T1
			if sin > 0 {
				r.addArc(P, d, N2.Mul(-1), -angle, false)
			} else {
				r.addArc(P, d, N2.Mul(-1), angle, false)
			}
		}
	}
}

// addArc adds points along a circular arc around center.  The arc starts
// in direction startDir and sweeps the given angle (radians, positive
// values turn from +x towards +y).  The start point itself is only added
// if includeStart is set.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	devRadius := max(
		r.transformLinear(vec.Vec2{X: radius}).Length(),
		r.transformLinear(vec.Vec2{Y: radius}).Length())

	rotate := func(a float64) vec.Vec2 {
		c, s := math.Cos(a), math.Sin(a)
		return vec.Vec2{
			X: startDir.X*c - startDir.Y*s,
			Y: startDir.X*s + startDir.Y*c,
		}
	}

	if devRadius < r.Flatness {
		if includeStart {
			r.stroke = append(r.stroke, center.Add(startDir.Mul(radius)))
		}
		r.stroke = append(r.stroke, center.Add(rotate(sweep).Mul(radius)))
		return
	}

	// A chord spanning the angle φ deviates from the circle by at most
	// r(1-cos(φ/2)), which gives the largest step for the tolerance.
	step := 2 * math.Acos(1-r.Flatness/devRadius)
	if !(step > 0) {
		step = math.Pi / 4
	}
	n := max(int(math.Ceil(math.Abs(sweep)/step)), 1)

	i := 0
	if !includeStart {
		i = 1
	}
	for ; i <= n; i++ {
		r.stroke = append(r.stroke, center.Add(rotate(sweep*float64(i)/float64(n)).Mul(radius)))
	}
}

// addSquare adds a square of side 2d, centred at center and aligned
// with the tangent T.
func (r *Rasterizer) addSquare(center, T vec.Vec2, d float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}
	t, n := T.Mul(d), N.Mul(d)
	r.stroke = append(r.stroke,
		center.Add(t).Add(n),
		center.Add(t).Sub(n),
		center.Sub(t).Sub(n),
		center.Sub(t).Add(n),
	)
}

// dashRun is the range of r.dashedSegs which forms one dash.
type dashRun struct {
	start, end int
}

// applyDashPattern splits the flattened sub-paths into dashes.  The
// result is stored in r.dashedSegs and r.dashRuns.
func (r *Rasterizer) applyDashPattern() {
	r.dashedSegs = r.dashedSegs[:0]
	r.dashRuns = r.dashRuns[:0]

	dash := r.Dash
	n := len(dash)
	period := 0.0
	for _, d := range dash {
		period += d
	}
	if n%2 == 1 {
		period *= 2
	}
	if !(period > 0) {
		return
	}
	phase := math.Mod(r.DashPhase, period)
	if phase < 0 {
		phase += period
	}

	for sp := range r.segsOffsets {
		segments := spans(r.segs, r.segsOffsets, sp)
		if len(segments) > 0 {
			r.dashSubpath(segments, r.subpathClosed[sp], dash, phase)
		}
	}
}

// dashSubpath applies the dash pattern to one flattened sub-path.
func (r *Rasterizer) dashSubpath(segments []strokeSegment, closed bool, dash []float64, phase float64) {
	n := len(dash)

	// locate the starting position within the pattern
	idx := 0
	for phase >= dash[idx%n] && dash[idx%n] > 0 {
		phase -= dash[idx%n]
		idx++
	}
	remaining := dash[idx%n] - phase
	on := idx%2 == 0

	if on && remaining == 0 {
		// a zero-length dash right at the start
		seg := segments[0]
		k := len(r.dashedSegs)
		r.dashedSegs = append(r.dashedSegs, strokeSegment{A: seg.A, B: seg.A, T: seg.T, N: seg.N})
		r.dashRuns = append(r.dashRuns, dashRun{k, k + 1})
		idx++
		remaining = dash[idx%n]
		on = idx%2 == 0
	}

	startedOn := on
	firstRun := -1 // index in r.dashRuns of the first non-degenerate dash
	dashStart := len(r.dashedSegs)

	i := 0
	pos := 0.0 // distance already consumed along segments[i]
	for i < len(segments) {
		seg := segments[i]
		segLen := seg.B.Sub(seg.A).Length()
		left := segLen - pos

		if remaining >= left {
			// the current dash or gap extends past this segment
			if on {
				if pos > 0 {
					a := seg.A.Add(seg.B.Sub(seg.A).Mul(pos / segLen))
					r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: seg.B, T: seg.T, N: seg.N})
				} else {
					r.dashedSegs = append(r.dashedSegs, seg)
				}
			}
			remaining -= left
			i++
			pos = 0
			continue
		}

		// the current dash or gap ends inside this segment
		end := pos + remaining
		b := seg.A.Add(seg.B.Sub(seg.A).Mul(end / segLen))
		if on {
			a := seg.A.Add(seg.B.Sub(seg.A).Mul(pos / segLen))
			if b.Sub(a).Length() > zeroLengthThreshold {
				r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: b, T: seg.T, N: seg.N})
			} else if len(r.dashedSegs) == dashStart {
				r.dashedSegs = append(r.dashedSegs, strokeSegment{A: a, B: a, T: seg.T, N: seg.N})
			}

			if len(r.dashedSegs) > dashStart {
				if firstRun < 0 {
					firstRun = len(r.dashRuns)
				}
				r.dashRuns = append(r.dashRuns, dashRun{dashStart, len(r.dashedSegs)})
				dashStart = len(r.dashedSegs)
			}
		}
		pos = end
		idx++
		remaining = dash[idx%n]
		on = idx%2 == 0
	}

	if len(r.dashedSegs) > dashStart {
		if closed && startedOn && on && firstRun >= 0 {
			// On a closed sub-path, the last dash continues into the first.
			first := r.dashRuns[firstRun]
			r.dashedSegs = append(r.dashedSegs, r.dashedSegs[first.start:first.end]...)
			r.dashRuns = append(r.dashRuns[:firstRun], r.dashRuns[firstRun+1:]...)
		}
		r.dashRuns = append(r.dashRuns, dashRun{dashStart, len(r.dashedSegs)})
	}
}
