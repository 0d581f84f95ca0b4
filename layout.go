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
	"image/color"
)

// NumRows is the number of checklist rows on the card.
const NumRows = 3

// Layout holds the measurements of an icon, all in pixels.
// Boxes use the inclusive convention described in the package
// documentation.
type Layout struct {
	Size int

	// The card spans the box [CardX, CardY, CardX+CardW, CardY+CardH].
	CardX, CardY int
	CardW, CardH int
	CardRadius   int

	// Spacing is the vertical distance between rows.
	Spacing int

	Rows [NumRows]Row
}

// Row describes one checklist entry.
type Row struct {
	Done bool

	// The marker is a circle with centre (X, Y) and radius R.
	X, Y, R int

	// Marker is the fill colour of the marker.
	Marker color.NRGBA

	// Check is the checkmark polyline.  Only used if Done is set.
	Check [3]image.Point

	// The text placeholder spans [BarX, BarY, BarX+BarW, BarY+BarH].
	BarX, BarY int
	BarW, BarH int
	Bar        color.NRGBA
}

const (
	barGap    = 5 // between marker and bar
	barRadius = 4
	lineWidth = 2 // of outlines and checkmarks
)

// NewLayout computes the measurements of an icon with the given edge
// length.  All fractions of the size are truncated towards zero.
func NewLayout(size int) *Layout {
	frac := func(f float64) int {
		return int(float64(size) * f)
	}

	l := &Layout{
		Size:       size,
		CardW:      frac(0.6),
		CardH:      frac(0.65),
		CardY:      frac(0.2),
		CardRadius: frac(0.05),
	}
	l.CardX = (size - l.CardW) / 2
	l.Spacing = l.CardH / 4

	markers := [NumRows]color.NRGBA{doneTeal, doneYellow, pendingFill}
	for i := range l.Rows {
		row := &l.Rows[i]
		row.Done = i < NumRows-1
		row.X = l.CardX + frac(0.08)
		row.Y = l.CardY + l.Spacing*(i+1)
		row.R = frac(0.04)
		row.Marker = markers[i]

		row.Check = [3]image.Point{
			{X: row.X - row.R/2, Y: row.Y},
			{X: row.X, Y: row.Y + row.R/2},
			{X: row.X + row.R, Y: row.Y - row.R/3},
		}

		row.BarX = row.X + 2*row.R + barGap
		row.BarY = row.Y - int(float64(row.R)*0.6)
		row.BarW = frac(0.25)
		row.BarH = int(float64(row.R) * 1.2)
		row.Bar = barDone
		if !row.Done {
			row.Bar = barPending
		}
	}
	return l
}
