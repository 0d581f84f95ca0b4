// seehuhn.de/go/appicon - procedurally drawn web-app icons
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

// Stroke renders the outline of p using Width, Cap, Join and MiterLimit.
//
// Every segment, join and cap is turned into a separate polygon with
// positive orientation, and all polygons are filled together using the
// nonzero rule.  Regions where the pieces overlap are thus covered once.
func (r *Rasteriser) Stroke(p *path.Data, emit EmitFunc) {
	if r.Width <= 0 {
		return
	}
	r.flattenForStroke(p)

	r.beginEdges()
	d := r.Width / 2
	for i := range r.lineStart {
		pts := r.polyline(i)
		if len(pts) == 1 {
			if r.Cap == graphics.LineCapRound {
				r.addDisc(pts[0], d)
			}
			continue
		}

		for j := 1; j < len(pts); j++ {
			a, b := pts[j-1], pts[j]
			n := normal(b.Sub(a)).Mul(d)
			r.addPolygon(a.Add(n), b.Add(n), b.Sub(n), a.Sub(n))
		}
		for j := 1; j < len(pts)-1; j++ {
			r.addJoin(pts[j-1], pts[j], pts[j+1], d)
		}

		last := len(pts) - 1
		if r.lineClose[i] {
			// the closing vertex pts[last] == pts[0]
			r.addJoin(pts[last-1], pts[0], pts[1], d)
		} else {
			r.addCap(pts[0], pts[0].Sub(pts[1]), d)
			r.addCap(pts[last], pts[last].Sub(pts[last-1]), d)
		}
	}
	r.rasterise(fillNonZero, emit)
}

// flattenForStroke splits p into flattened polylines.  Closed subpaths end
// with a copy of their first point.  Subpaths of zero length are stored as
// a single point.
func (r *Rasteriser) flattenForStroke(p *path.Data) {
	r.lines = r.lines[:0]
	r.lineStart = r.lineStart[:0]
	r.lineClose = r.lineClose[:0]
	if p == nil {
		return
	}

	inSubpath := false
	drawn := false // a drawing command was seen in the current subpath
	var start vec.Vec2

	appendPoint := func(_, b vec.Vec2) {
		last := r.lines[len(r.lines)-1]
		if b.Sub(last).Length() < zeroLengthThreshold {
			return
		}
		r.lines = append(r.lines, b)
	}
	finish := func(closed bool) {
		if !inSubpath {
			return
		}
		inSubpath = false
		first := r.lineStart[len(r.lineStart)-1]
		if !drawn {
			// a lone moveto paints nothing
			r.lines = r.lines[:first]
			r.lineStart = r.lineStart[:len(r.lineStart)-1]
			return
		}
		if closed && len(r.lines)-first > 1 {
			appendPoint(start, start)
		} else {
			closed = false
		}
		r.lineClose = append(r.lineClose, closed)
	}

	var current vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			finish(false)
			current = p.Coords[k]
			start = current
			r.lineStart = append(r.lineStart, len(r.lines))
			r.lines = append(r.lines, current)
			inSubpath = true
			drawn = false
			k++
		case path.CmdLineTo:
			if inSubpath {
				appendPoint(current, p.Coords[k])
				drawn = true
			}
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			if inSubpath {
				r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], appendPoint)
				drawn = true
			}
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			if inSubpath {
				r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], appendPoint)
				drawn = true
			}
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			drawn = drawn || inSubpath
			finish(true)
			current = start
		}
	}
	finish(false)
}

// polyline returns the points of the i-th flattened subpath.
func (r *Rasteriser) polyline(i int) []vec.Vec2 {
	end := len(r.lines)
	if i+1 < len(r.lineStart) {
		end = r.lineStart[i+1]
	}
	return r.lines[r.lineStart[i]:end]
}

// addJoin adds the join geometry at vertex v, between the segments a-v and
// v-b, on the outer side of the corner.
func (r *Rasteriser) addJoin(a, v, b vec.Vec2, d float64) {
	t0 := unit(v.Sub(a))
	t1 := unit(b.Sub(v))
	cross := t0.X*t1.Y - t0.Y*t1.X
	dot := t0.X*t1.X + t0.Y*t1.Y
	if math.Abs(cross) < collinearityThreshold && dot > 0 {
		return
	}

	if r.Join == graphics.LineJoinRound {
		r.addDisc(v, d)
		return
	}

	side := d
	if cross > 0 {
		side = -d
	}
	n0 := normal(t0)
	n1 := normal(t1)
	o0 := v.Add(n0.Mul(side))
	o1 := v.Add(n1.Mul(side))

	if r.Join == graphics.LineJoinMiter && dot > cuspCosineThreshold {
		// miter length over stroke width, 1/sin of half the interior angle
		ratio := 1 / math.Sqrt((1+dot)/2)
		if ratio <= r.MiterLimit {
			bisector := unit(n0.Add(n1))
			tip := v.Add(bisector.Mul(side * ratio))
			r.addPolygon(v, o0, tip, o1)
			return
		}
	}
	r.addPolygon(v, o0, o1)
}

// addCap adds the cap at the end point e of an open subpath.  The vector
// out points away from the subpath.
func (r *Rasteriser) addCap(e, out vec.Vec2, d float64) {
	switch r.Cap {
	case graphics.LineCapRound:
		r.addDisc(e, d)
	case graphics.LineCapSquare:
		t := unit(out).Mul(d)
		n := normal(unit(out)).Mul(d)
		r.addPolygon(e.Add(n), e.Add(n).Add(t), e.Sub(n).Add(t), e.Sub(n))
	}
}

// addDisc adds a polygonal approximation of the circle with centre c and
// radius d.
func (r *Rasteriser) addDisc(c vec.Vec2, d float64) {
	rDev := max(r.transformLinear(vec.Vec2{X: d}).Length(), r.transformLinear(vec.Vec2{Y: d}).Length())
	n := 16
	if rDev > r.Flatness {
		step := 2 * math.Acos(1-r.Flatness/rDev)
		n = max(n, int(math.Ceil(2*math.Pi/step)))
	}

	r.poly = r.poly[:0]
	for i := range n {
		phi := 2 * math.Pi * float64(i) / float64(n)
		r.poly = append(r.poly, vec.Vec2{X: c.X + d*math.Cos(phi), Y: c.Y + d*math.Sin(phi)})
	}
	r.addOrientedPolygon(r.poly)
}

// addPolygon adds the closed polygon through pts, with positive
// orientation.
func (r *Rasteriser) addPolygon(pts ...vec.Vec2) {
	r.poly = append(r.poly[:0], pts...)
	r.addOrientedPolygon(r.poly)
}

func (r *Rasteriser) addOrientedPolygon(pts []vec.Vec2) {
	var area float64
	for i, a := range pts {
		b := pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if math.Abs(area) < zeroLengthThreshold {
		return
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		if area < 0 {
			a, b = b, a
		}
		r.addEdge(a, b)
	}
}

// unit returns v scaled to length 1.
func unit(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// normal returns the unit vector 90 degrees counter-clockwise from v.
func normal(v vec.Vec2) vec.Vec2 {
	u := unit(v)
	return vec.Vec2{X: -u.Y, Y: u.X}
}

const (
	// collinearityThreshold detects nearly collinear segments, where no
	// join is needed.
	collinearityThreshold = 1e-6

	// cuspCosineThreshold detects segments which double back on
	// themselves; cos(179.43°) ≈ -0.9999.
	cuspCosineThreshold = -0.9999
)
