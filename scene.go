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
	"fmt"
	"image/color"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/pdf/graphics"
)

// Shape is one element of the icon's display list.
type Shape struct {
	Name  string      // lowercase a-z, 0-9 and - only
	Path  *path.Data  // device coordinates
	Color color.NRGBA // composited source-over
	Op    Operation   // fill or stroke
}

// Operation is the rendering operation applied to a shape's path.
type Operation interface {
	isOperation()
}

// FillRule specifies the rule for determining interior points.
type FillRule int

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	switch r {
	case NonZero:
		return "nonzero"
	case EvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("FillRule(%d)", int(r))
	}
}

// Fill specifies a fill operation.
type Fill struct {
	Rule FillRule
}

func (Fill) isOperation() {}

// Stroke specifies a stroke operation.
type Stroke struct {
	Width      float64
	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64
}

func (Stroke) isOperation() {}

// checkStroke is used for the checkmarks.
var checkStroke = Stroke{
	Width:      lineWidth,
	Cap:        graphics.LineCapButt,
	Join:       graphics.LineJoinMiter,
	MiterLimit: 10,
}

// Scene returns the display list of an icon with the given size, in
// painting order.  The background gradient is not part of the list.
//
// A shape with both fill and outline is split into the fill of the
// interior and an even-odd ring of the outline width, so that the two
// colours never overlap.
func Scene(size int) []Shape {
	l := NewLayout(size)

	card := pixelBox(l.CardX, l.CardY, l.CardX+l.CardW, l.CardY+l.CardH)
	radius := float64(l.CardRadius)
	shapes := []Shape{
		{
			Name:  "card",
			Path:  roundedRect(card.inset(lineWidth), radius-lineWidth),
			Color: cardFill,
			Op:    Fill{Rule: NonZero},
		},
		{
			Name:  "card-outline",
			Path:  roundedRectRing(card, radius, lineWidth),
			Color: cardOutline,
			Op:    Fill{Rule: EvenOdd},
		},
	}

	for i, row := range l.Rows {
		marker := pixelBox(row.X-row.R, row.Y-row.R, row.X+row.R, row.Y+row.R)
		prefix := fmt.Sprintf("row%d-", i)

		if row.Done {
			shapes = append(shapes,
				Shape{
					Name:  prefix + "marker",
					Path:  ellipse(marker),
					Color: row.Marker,
					Op:    Fill{Rule: NonZero},
				},
				Shape{
					Name:  prefix + "check",
					Path:  polyline(row.Check[:]...),
					Color: checkmark,
					Op:    checkStroke,
				})
		} else {
			shapes = append(shapes,
				Shape{
					Name:  prefix + "marker",
					Path:  ellipse(marker.inset(lineWidth)),
					Color: row.Marker,
					Op:    Fill{Rule: NonZero},
				},
				Shape{
					Name:  prefix + "marker-outline",
					Path:  ellipseRing(marker, lineWidth),
					Color: pendingOutline,
					Op:    Fill{Rule: EvenOdd},
				})
		}

		bar := pixelBox(row.BarX, row.BarY, row.BarX+row.BarW, row.BarY+row.BarH)
		shapes = append(shapes, Shape{
			Name:  prefix + "bar",
			Path:  roundedRect(bar, barRadius),
			Color: row.Bar,
			Op:    Fill{Rule: NonZero},
		})
	}
	return shapes
}
