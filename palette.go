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

import "image/color"

// Colours of the icon.  Translucent colours are composited over what is
// already drawn.
//
// The exported variables are copies for callers and are never read by the
// renderer; assigning to them does not change the icon.
var (
	Base           = base
	GradientTop    = gradientTop
	GradientBottom = gradientBottom

	CardFill    = cardFill
	CardOutline = cardOutline

	DoneTeal       = doneTeal
	DoneYellow     = doneYellow
	PendingFill    = pendingFill
	PendingOutline = pendingOutline
	Checkmark      = checkmark

	BarDone    = barDone
	BarPending = barPending
)

var (
	base           = color.NRGBA{R: 11, G: 16, B: 32, A: 255}
	gradientTop    = color.NRGBA{R: 124, G: 92, B: 255, A: 255}
	gradientBottom = color.NRGBA{R: 35, G: 192, B: 255, A: 255}

	cardFill    = color.NRGBA{R: 255, G: 255, B: 255, A: 20}
	cardOutline = color.NRGBA{R: 255, G: 255, B: 255, A: 50}

	doneTeal       = color.NRGBA{R: 45, G: 212, B: 191, A: 255}
	doneYellow     = color.NRGBA{R: 251, G: 191, B: 36, A: 255}
	pendingFill    = color.NRGBA{R: 255, G: 255, B: 255, A: 30}
	pendingOutline = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
	checkmark      = base

	barDone    = color.NRGBA{R: 255, G: 255, B: 255, A: 80}
	barPending = color.NRGBA{R: 255, G: 255, B: 255, A: 50}
)

// gradientAt returns the background colour of row y in an icon of the
// given size.  Channels are blended linearly and truncated.
func gradientAt(y, size int) color.RGBA {
	t := float64(y) / float64(size)
	mix := func(top, bottom uint8) uint8 {
		return uint8(float64(top)*(1-t) + float64(bottom)*t)
	}
	return color.RGBA{
		R: mix(gradientTop.R, gradientBottom.R),
		G: mix(gradientTop.G, gradientBottom.G),
		B: mix(gradientTop.B, gradientBottom.B),
		A: 255,
	}
}
