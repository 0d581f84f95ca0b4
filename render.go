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
	"image/draw"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/appicon/raster"
)

// Render draws the icon with the given edge length.  The result is fully
// opaque.  Very small sizes give a degenerate picture but are valid.
// Render panics if size is negative.
func Render(size int) *image.RGBA {
	if size < 0 {
		panic("appicon: negative icon size")
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(base), image.Point{}, draw.Src)

	for y := range size {
		c := gradientAt(y, size)
		row := img.Pix[y*img.Stride : y*img.Stride+4*size]
		for x := 0; x < len(row); x += 4 {
			row[x], row[x+1], row[x+2], row[x+3] = c.R, c.G, c.B, c.A
		}
	}

	Paint(img, Scene(size))
	return img
}

// Paint composites the shapes onto dst, in order.
func Paint(dst *image.RGBA, shapes []Shape) {
	b := dst.Bounds()
	clip := rect.Rect{
		LLx: float64(b.Min.X),
		LLy: float64(b.Min.Y),
		URx: float64(b.Max.X),
		URy: float64(b.Max.Y),
	}
	r := raster.NewRasteriser(clip)

	for _, s := range shapes {
		r.Reset(clip)
		emit := compositor(dst, s.Color)
		switch op := s.Op.(type) {
		case Fill:
			if op.Rule == EvenOdd {
				r.FillEvenOdd(s.Path, emit)
			} else {
				r.FillNonZero(s.Path, emit)
			}
		case Stroke:
			r.Width = op.Width
			r.Cap = op.Cap
			r.Join = op.Join
			r.MiterLimit = op.MiterLimit
			r.Stroke(s.Path, emit)
		}
	}
}

// compositor returns an emit function which blends c over dst, weighted
// by coverage.
func compositor(dst *image.RGBA, c color.NRGBA) raster.EmitFunc {
	alpha := float32(c.A) / 255
	src := [4]float32{
		float32(c.R) * alpha,
		float32(c.G) * alpha,
		float32(c.B) * alpha,
		255 * alpha,
	}
	return func(y, xMin int, coverage []float32) {
		i := dst.PixOffset(xMin, y)
		for _, cov := range coverage {
			pix := dst.Pix[i : i+4 : i+4]
			keep := 1 - alpha*cov
			for k := range pix {
				pix[k] = uint8(src[k]*cov + float32(pix[k])*keep + 0.5)
			}
			i += 4
		}
	}
}
