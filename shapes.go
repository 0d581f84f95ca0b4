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

package appicon

import (
	"image"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bézier curve.
const kappa = 0.5522847498

// area is a rectangle in continuous device coordinates.
type area struct {
	x0, y0, x1, y1 float64
}

// pixelBox converts the inclusive pixel box [x0, y0, x1, y1] into the area
// it covers.
func pixelBox(x0, y0, x1, y1 int) area {
	return area{float64(x0), float64(y0), float64(x1 + 1), float64(y1 + 1)}
}

func (a area) empty() bool {
	return a.x1 <= a.x0 || a.y1 <= a.y0
}

// inset shrinks a by d on every side.
func (a area) inset(d float64) area {
	return area{a.x0 + d, a.y0 + d, a.x1 - d, a.y1 - d}
}

func pt(x, y float64) vec.Vec2 {
	return vec.Vec2{X: x, Y: y}
}

// addRoundedRect appends a rectangle with rounded corners to p.  The
// radius is reduced where it exceeds half the width or height.
func addRoundedRect(p *path.Data, a area, radius float64) *path.Data {
	if a.empty() {
		return p
	}
	r := min(max(radius, 0), (a.x1-a.x0)/2, (a.y1-a.y0)/2)
	if r == 0 {
		return p.MoveTo(pt(a.x0, a.y0)).
			LineTo(pt(a.x1, a.y0)).
			LineTo(pt(a.x1, a.y1)).
			LineTo(pt(a.x0, a.y1)).
			Close()
	}

	k := r * kappa
	return p.MoveTo(pt(a.x0+r, a.y0)).
		LineTo(pt(a.x1-r, a.y0)).
		CubeTo(pt(a.x1-r+k, a.y0), pt(a.x1, a.y0+r-k), pt(a.x1, a.y0+r)).
		LineTo(pt(a.x1, a.y1-r)).
		CubeTo(pt(a.x1, a.y1-r+k), pt(a.x1-r+k, a.y1), pt(a.x1-r, a.y1)).
		LineTo(pt(a.x0+r, a.y1)).
		CubeTo(pt(a.x0+r-k, a.y1), pt(a.x0, a.y1-r+k), pt(a.x0, a.y1-r)).
		LineTo(pt(a.x0, a.y0+r)).
		CubeTo(pt(a.x0, a.y0+r-k), pt(a.x0+r-k, a.y0), pt(a.x0+r, a.y0)).
		Close()
}

// addEllipse appends the ellipse inscribed in a to p.
func addEllipse(p *path.Data, a area) *path.Data {
	if a.empty() {
		return p
	}
	cx, cy := (a.x0+a.x1)/2, (a.y0+a.y1)/2
	rx, ry := (a.x1-a.x0)/2, (a.y1-a.y0)/2
	kx, ky := rx*kappa, ry*kappa

	return p.MoveTo(pt(cx+rx, cy)).
		CubeTo(pt(cx+rx, cy-ky), pt(cx+kx, cy-ry), pt(cx, cy-ry)).
		CubeTo(pt(cx-kx, cy-ry), pt(cx-rx, cy-ky), pt(cx-rx, cy)).
		CubeTo(pt(cx-rx, cy+ky), pt(cx-kx, cy+ry), pt(cx, cy+ry)).
		CubeTo(pt(cx+kx, cy+ry), pt(cx+rx, cy+ky), pt(cx+rx, cy)).
		Close()
}

// roundedRect returns the filled rounded rectangle.
func roundedRect(a area, radius float64) *path.Data {
	return addRoundedRect(&path.Data{}, a, radius)
}

// roundedRectRing returns the band of the given width along the inside of
// the rounded rectangle, to be filled with the even-odd rule.
func roundedRectRing(a area, radius, width float64) *path.Data {
	p := roundedRect(a, radius)
	return addRoundedRect(p, a.inset(width), radius-width)
}

// ellipse returns the filled ellipse inscribed in a.
func ellipse(a area) *path.Data {
	return addEllipse(&path.Data{}, a)
}

// ellipseRing returns the band of the given width along the inside of the
// ellipse, to be filled with the even-odd rule.
func ellipseRing(a area, width float64) *path.Data {
	p := ellipse(a)
	return addEllipse(p, a.inset(width))
}

// polyline returns the open path through the centres of the given pixels.
func polyline(pts ...image.Point) *path.Data {
	p := &path.Data{}
	for i, q := range pts {
		v := pt(float64(q.X)+0.5, float64(q.Y)+0.5)
		if i == 0 {
			p = p.MoveTo(v)
		} else {
			p = p.LineTo(v)
		}
	}
	return p
}
