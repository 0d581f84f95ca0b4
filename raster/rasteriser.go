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

// Package raster converts vector paths into anti-aliased pixel coverage.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage of one scanline, starting at pixel xMin.
// The coverage slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

func (e *edge) yMin() float64 { return min(e.y0, e.y1) }
func (e *edge) yMax() float64 { return max(e.y0, e.y1) }

// Rasteriser converts paths to coverage values, the fraction of each
// pixel's area covered by the filled or stroked path.  One instance can be
// reused for many paths; internal buffers grow as needed but never shrink.
//
// A Rasteriser is not safe for concurrent use.
type Rasteriser struct {
	// CTM maps user space to device space.  Must be non-singular.
	CTM matrix.Matrix

	// Clip limits the output to this device-space rectangle.
	// Coordinates must be integers.
	Clip rect.Rect

	// Flatness is the curve approximation tolerance in device pixels.
	Flatness float64

	// Width is the stroke width in user-space units.
	Width float64

	// Cap is the style used at the ends of open stroked subpaths.
	Cap graphics.LineCapStyle

	// Join is the style used where stroked segments meet.
	Join graphics.LineJoinStyle

	// MiterLimit converts miter joins to bevels when exceeded.
	// Must be at least 1.
	MiterLimit float64

	cover     []float32 // signed vertical extent per pixel; reused as output
	area      []float32 // area to the right of the crossing, per pixel
	edges     []edge
	activeIdx []int

	edgeBBoxFirst bool
	edgeDevXMin   float64
	edgeDevXMax   float64
	edgeDevYMin   float64
	edgeDevYMax   float64

	// stroke state, see stroke.go
	lines     []vec.Vec2 // flattened polylines, all subpaths contiguous
	lineStart []int      // start of each polyline in lines
	lineClose []bool     // whether each polyline is closed
	poly      []vec.Vec2 // scratch polygon
}

// NewRasteriser returns a Rasteriser for the given clip rectangle, with
// PDF default values for all other parameters.
func NewRasteriser(clip rect.Rect) *Rasteriser {
	r := &Rasteriser{}
	r.Reset(clip)
	return r
}

// Reset restores the default parameters and sets a new clip rectangle.
// Buffer capacity is kept.
func (r *Rasteriser) Reset(clip rect.Rect) {
	r.CTM = matrix.Identity
	r.Clip = clip
	r.Flatness = defaultFlatness
	r.Width = 1
	r.Cap = graphics.LineCapButt
	r.Join = graphics.LineJoinMiter
	r.MiterLimit = defaultMiterLimit

	r.edges = r.edges[:0]
	r.activeIdx = r.activeIdx[:0]
	r.lines = r.lines[:0]
	r.lineStart = r.lineStart[:0]
	r.lineClose = r.lineClose[:0]
	r.poly = r.poly[:0]
}

// FillNonZero fills p using the nonzero winding rule.
func (r *Rasteriser) FillNonZero(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.rasterise(fillNonZero, emit)
}

// FillEvenOdd fills p using the even-odd rule.
func (r *Rasteriser) FillEvenOdd(p *path.Data, emit EmitFunc) {
	r.beginEdges()
	r.walk(p, r.addEdge)
	r.rasterise(fillEvenOdd, emit)
}

type fillRule int

const (
	fillNonZero fillRule = iota
	fillEvenOdd
)

// walk visits every segment of p in user space, flattening curves.
// Open subpaths are closed implicitly, as required for filling.
func (r *Rasteriser) walk(p *path.Data, segment func(a, b vec.Vec2)) {
	if p == nil {
		return
	}
	var current, start vec.Vec2
	open := false
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if open && current != start {
				segment(current, start)
			}
			current = p.Coords[k]
			start = current
			open = true
			k++
		case path.CmdLineTo:
			segment(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1], segment)
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2], segment)
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				segment(current, start)
			}
			current = start
			open = false
		}
	}
	if open && current != start {
		segment(current, start)
	}
}

// transformLinear applies the linear part of the CTM to v.
func (r *Rasteriser) transformLinear(v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: r.CTM[0]*v.X + r.CTM[2]*v.Y,
		Y: r.CTM[1]*v.X + r.CTM[3]*v.Y,
	}
}

// flattenQuadratic approximates the curve p0-p1-p2 by line segments.
func (r *Rasteriser) flattenQuadratic(p0, p1, p2 vec.Vec2, segment func(a, b vec.Vec2)) {
	e := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25))
	n := 1
	if d := e.Length(); d > r.Flatness {
		n = int(math.Ceil(math.Sqrt(d / r.Flatness)))
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		segment(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates the curve p0-p1-p2-p3 by line segments,
// choosing the number of segments by Wang's formula.
func (r *Rasteriser) flattenCubic(p0, p1, p2, p3 vec.Vec2, segment func(a, b vec.Vec2)) {
	d1 := r.transformLinear(p0.Sub(p1.Mul(2)).Add(p2))
	d2 := r.transformLinear(p1.Sub(p2.Mul(2)).Add(p3))
	n := 1
	if m := max(d1.Length(), d2.Length()); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}

	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		segment(prev, pt)
		prev = pt
	}
}

func (r *Rasteriser) beginEdges() {
	r.edges = r.edges[:0]
	r.edgeBBoxFirst = true
}

// addEdge transforms a user-space segment to device space and records it.
func (r *Rasteriser) addEdge(p0, p1 vec.Vec2) {
	x0 := r.CTM[0]*p0.X + r.CTM[2]*p0.Y + r.CTM[4]
	y0 := r.CTM[1]*p0.X + r.CTM[3]*p0.Y + r.CTM[5]
	x1 := r.CTM[0]*p1.X + r.CTM[2]*p1.Y + r.CTM[4]
	y1 := r.CTM[1]*p1.X + r.CTM[3]*p1.Y + r.CTM[5]

	dy := y1 - y0
	if math.Abs(dy) < horizontalEdgeThreshold {
		return
	}
	r.edges = append(r.edges, edge{x0: x0, y0: y0, x1: x1, y1: y1, dxdy: (x1 - x0) / dy})

	if r.edgeBBoxFirst {
		r.edgeDevXMin, r.edgeDevXMax = min(x0, x1), max(x0, x1)
		r.edgeDevYMin, r.edgeDevYMax = min(y0, y1), max(y0, y1)
		r.edgeBBoxFirst = false
		return
	}
	r.edgeDevXMin = min(r.edgeDevXMin, x0, x1)
	r.edgeDevXMax = max(r.edgeDevXMax, x0, x1)
	r.edgeDevYMin = min(r.edgeDevYMin, y0, y1)
	r.edgeDevYMax = max(r.edgeDevYMax, y0, y1)
}

// rasterise converts the collected edges into coverage, one scanline at a
// time, using an active edge list.
//
// For every pixel two values are accumulated: cover, the signed vertical
// extent of the edges crossing the pixel, and area, the same quantity
// weighted by the fraction of the pixel to the right of the crossing.
// Scanning from the left, the coverage of pixel i is the running sum of
// cover over pixels 0..i-1 plus area[i].
func (r *Rasteriser) rasterise(rule fillRule, emit EmitFunc) {
	if len(r.edges) == 0 {
		return
	}

	xMin := max(int(math.Floor(r.edgeDevXMin)), int(r.Clip.LLx))
	xMax := min(int(math.Floor(r.edgeDevXMax))+1, int(r.Clip.URx))
	yMin := max(int(math.Floor(r.edgeDevYMin)), int(r.Clip.LLy))
	yMax := min(int(math.Floor(r.edgeDevYMax))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return
	}
	width := xMax - xMin

	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(a.yMin(), b.yMin())
	})

	r.activeIdx = r.activeIdx[:0]
	next := 0
	for next < len(r.edges) && r.edges[next].yMax() <= float64(yMin) {
		next++
	}

	for y := yMin; y < yMax; y++ {
		yTop := float64(y)
		yBot := float64(y + 1)

		for next < len(r.edges) && r.edges[next].yMin() < yBot {
			r.activeIdx = append(r.activeIdx, next)
			next++
		}
		if len(r.activeIdx) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		for i := 0; i < len(r.activeIdx); {
			e := &r.edges[r.activeIdx[i]]
			if e.yMax() <= yTop {
				r.activeIdx[i] = r.activeIdx[len(r.activeIdx)-1]
				r.activeIdx = r.activeIdx[:len(r.activeIdx)-1]
				continue
			}
			accumulate(e, yTop, yBot, r.cover, r.area, xMin, xMax)
			i++
		}

		if rule == fillNonZero {
			integrateNonZero(r.cover, r.area)
		} else {
			integrateEvenOdd(r.cover, r.area)
		}
		if cov, offset := trimZeros(r.cover); cov != nil {
			emit(y, xMin+offset, cov)
		}
	}
}

// accumulate adds the contribution of e within the scanline [yTop, yBot)
// to the cover and area buffers, which are indexed by x-xMin.
func accumulate(e *edge, yTop, yBot float64, cover, area []float32, xMin, xMax int) {
	yTop = max(yTop, e.yMin())
	yBot = min(yBot, e.yMax())
	if yBot <= yTop {
		return
	}
	sign := 1.0
	if e.y1 < e.y0 {
		sign = -1
	}

	xa := e.x0 + e.dxdy*(yTop-e.y0)
	xb := e.x0 + e.dxdy*(yBot-e.y0)
	pixLeft := int(math.Floor(min(xa, xb)))
	pixRight := int(math.Floor(max(xa, xb)))

	if pixLeft >= xMax {
		return
	}

	add := func(pix int, y0, y1 float64) {
		dy := y1 - y0
		if dy <= 0 {
			return
		}
		c := sign * dy
		if pix < xMin {
			cover[0] += float32(c)
			area[0] += float32(c)
			return
		}
		if pix >= xMax {
			return
		}
		xMid := e.x0 + e.dxdy*((y0+y1)/2-e.y0)
		frac := min(max(xMid-float64(pix), 0), 1)
		cover[pix-xMin] += float32(c)
		area[pix-xMin] += float32(c * (1 - frac))
	}

	if pixLeft == pixRight {
		add(pixLeft, yTop, yBot)
		return
	}

	// The edge crosses column boundaries inside this scanline; split it.
	dydx := 1 / e.dxdy
	for pix := pixLeft; pix <= pixRight; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		add(pix, max(min(ya, yb), yTop), min(max(ya, yb), yBot))
	}
}

// integrateNonZero turns accumulated values into coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		cover[i] = min(v, 1)
	}
}

// integrateEvenOdd turns accumulated values into coverage, in place.
func integrateEvenOdd(cover, area []float32) {
	var acc float32
	for i := range cover {
		v := acc + area[i]
		acc += cover[i]
		if v < 0 {
			v = -v
		}
		v -= 2 * float32(int(v/2))
		if v > 1 {
			v = 2 - v
		}
		cover[i] = v
	}
}

// trimZeros returns the non-zero part of coverage and its offset, or nil
// if everything is zero.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	if lo == hi {
		return nil, 0
	}
	for coverage[hi-1] == 0 {
		hi--
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is below the threshold of visual perception.
	defaultFlatness = 0.25

	// defaultMiterLimit matches PDF and PostScript; joins sharper than
	// about 11.5 degrees are bevelled.
	defaultMiterLimit = 10.0

	// horizontalEdgeThreshold is the smallest vertical extent of an edge
	// which contributes to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the smallest length of a stroked segment.
	zeroLengthThreshold = 1e-10
)
