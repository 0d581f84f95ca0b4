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
	"testing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-4
}

func TestStrokeCaps(t *testing.T) {
	line := (&path.Data{}).MoveTo(pt(2, 5)).LineTo(pt(8, 5))

	for _, tc := range []struct {
		cap          graphics.LineCapStyle
		first, after int // first and one-past-last fully covered column
	}{
		{graphics.LineCapButt, 2, 8},
		{graphics.LineCapSquare, 1, 9},
	} {
		t.Run(tc.cap.String(), func(t *testing.T) {
			g := newGrid(10, 10)
			r := NewRasteriser(canvas(10, 10))
			r.Width = 2
			r.Cap = tc.cap
			r.Stroke(line, g.emit)

			for y := range 10 {
				for x := range 10 {
					want := float32(0)
					if (y == 4 || y == 5) && x >= tc.first && x < tc.after {
						want = 1
					}
					if got := g.at(x, y); !near(got, want) {
						t.Errorf("pixel (%d,%d): expected %.4f, got %.4f", x, y, want, got)
					}
				}
			}
		})
	}
}

func TestStrokeRoundDot(t *testing.T) {
	dot := (&path.Data{}).MoveTo(pt(5, 5)).LineTo(pt(5, 5))

	g := newGrid(10, 10)
	r := NewRasteriser(canvas(10, 10))
	r.Width = 4
	r.Cap = graphics.LineCapRound
	r.Stroke(dot, g.emit)

	if got := g.at(4, 4); !near(got, 1) {
		t.Errorf("centre pixel coverage %.4f, expected 1", got)
	}
	if s := g.sum(); math.Abs(s-4*math.Pi) > 0.5 {
		t.Errorf("dot area %.4f, expected about %.4f", s, 4*math.Pi)
	}

	r.Cap = graphics.LineCapButt
	r.Stroke(dot, func(y, xMin int, coverage []float32) {
		t.Errorf("butt cap: unexpected output at row %d", y)
	})
}

// TestStrokeJoins strokes a right-angled corner.  The outer corner pixel
// is covered fully by a miter join and half by a bevel join; the inner
// region, where the two segments overlap, must not exceed full coverage.
func TestStrokeJoins(t *testing.T) {
	corner := (&path.Data{}).
		MoveTo(pt(2, 2)).
		LineTo(pt(8, 2)).
		LineTo(pt(8, 8))

	for _, tc := range []struct {
		join graphics.LineJoinStyle
		want float32
	}{
		{graphics.LineJoinMiter, 1},
		{graphics.LineJoinBevel, 0.5},
	} {
		t.Run(tc.join.String(), func(t *testing.T) {
			g := newGrid(10, 10)
			r := NewRasteriser(canvas(10, 10))
			r.Width = 2
			r.Join = tc.join
			r.Stroke(corner, g.emit)

			if got := g.at(8, 1); !near(got, tc.want) {
				t.Errorf("outer corner: expected %.4f, got %.4f", tc.want, got)
			}
			if got := g.at(7, 2); !near(got, 1) {
				t.Errorf("inner overlap: expected 1, got %.4f", got)
			}
			for i, c := range g.cov {
				if c > 1 {
					t.Fatalf("pixel %d: coverage %.4f exceeds 1", i, c)
				}
			}
		})
	}

	// With a miter limit below sqrt(2) a right angle is bevelled.
	g := newGrid(10, 10)
	r := NewRasteriser(canvas(10, 10))
	r.Width = 2
	r.MiterLimit = 1.2
	r.Stroke(corner, g.emit)
	if got := g.at(8, 1); !near(got, 0.5) {
		t.Errorf("miter limit: expected bevel coverage 0.5, got %.4f", got)
	}
}

// TestStrokeSharpMiter strokes a corner with a 30 degree interior angle.
// The miter tip lies 1/sin(15°) half-widths from the vertex, at (17.73, 9).
func TestStrokeSharpMiter(t *testing.T) {
	turn := 150 * math.Pi / 180
	corner := (&path.Data{}).
		MoveTo(pt(2, 10)).
		LineTo(pt(14, 10)).
		LineTo(pt(14+12*math.Cos(turn), 10+12*math.Sin(turn)))

	stroke := func(limit float64) *grid {
		g := newGrid(20, 20)
		r := NewRasteriser(canvas(20, 20))
		r.Width = 2
		r.MiterLimit = limit
		r.Stroke(corner, g.emit)
		return g
	}

	miter := stroke(10)
	if got := miter.at(15, 9); !near(got, 1) {
		t.Errorf("pixel inside the miter tip: expected 1, got %.4f", got)
	}

	// the miter ratio is 3.86, so a limit of 3.5 bevels the corner
	bevel := stroke(3.5)
	if got := bevel.at(15, 9); got > 1e-4 {
		t.Errorf("bevelled corner: expected 0, got %.4f", got)
	}

	// kite minus bevel triangle: tan(75°) - sin(150°)/2
	want := math.Tan(75*math.Pi/180) - math.Sin(turn)/2
	if got := miter.sum() - bevel.sum(); math.Abs(got-want) > 0.01 {
		t.Errorf("miter area: expected %.4f, got %.4f", want, got)
	}
}

// TestStrokeShallowMiter checks that a 10 degree turn, with a miter
// ratio of 1.004, is still mitred under a miter limit of 1.1.
func TestStrokeShallowMiter(t *testing.T) {
	turn := 10 * math.Pi / 180
	corner := (&path.Data{}).
		MoveTo(pt(2, 10)).
		LineTo(pt(12, 10)).
		LineTo(pt(12+10*math.Cos(turn), 10+10*math.Sin(turn)))

	stroke := func(join graphics.LineJoinStyle, limit float64) float64 {
		g := newGrid(30, 20)
		r := NewRasteriser(canvas(30, 20))
		r.Width = 4
		r.Join = join
		r.MiterLimit = limit
		r.Stroke(corner, g.emit)
		return g.sum()
	}

	tight := stroke(graphics.LineJoinMiter, 1.1)
	loose := stroke(graphics.LineJoinMiter, 10)
	bevel := stroke(graphics.LineJoinBevel, 10)

	if tight != loose {
		t.Errorf("limit 1.1 gives %.6f, limit 10 gives %.6f", tight, loose)
	}
	// d²·(tan(5°) - sin(10°)/2) = 0.00266 for half-width d = 2
	if diff := tight - bevel; diff < 0.001 || diff > 0.005 {
		t.Errorf("miter adds %.6f over bevel, expected about 0.00266", diff)
	}
}

// TestStrokeClosed checks that a closed square outline has no gap at the
// closing vertex.
func TestStrokeClosed(t *testing.T) {
	g := newGrid(10, 10)
	r := NewRasteriser(canvas(10, 10))
	r.Width = 2
	r.Stroke(box(2, 2, 8, 8), g.emit)

	for _, p := range [][2]int{{1, 1}, {8, 1}, {8, 8}, {1, 8}} {
		if got := g.at(p[0], p[1]); !near(got, 1) {
			t.Errorf("corner (%d,%d): expected 1, got %.4f", p[0], p[1], got)
		}
	}
	if got := g.at(5, 5); got != 0 {
		t.Errorf("interior: expected 0, got %.4f", got)
	}
	// outer square 8×8 minus inner square 4×4
	if s := g.sum(); math.Abs(s-48) > 1e-3 {
		t.Errorf("outline area %.4f, expected 48", s)
	}
}

func TestStrokeNothing(t *testing.T) {
	r := NewRasteriser(canvas(10, 10))
	fail := func(y, xMin int, coverage []float32) {
		t.Errorf("unexpected output at row %d", y)
	}

	r.Stroke(nil, fail)
	r.Stroke((&path.Data{}).MoveTo(pt(3, 3)), fail)

	r.Width = 0
	r.Stroke((&path.Data{}).MoveTo(pt(3, 3)).LineTo(pt(7, 7)), fail)
}
