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

// Package appicon draws the icon of the task list web app.
//
// The icon shows a vertical gradient, a translucent card and three
// checklist rows: two rows which are done, with a coloured marker and a
// checkmark, and one pending row with an outlined marker.  Every
// measurement is derived from the edge length of the icon, so that
// [Render] produces the same picture at every size.
//
// Geometry follows the pixel-box convention of common raster drawing
// APIs: a box [x0, y0, x1, y1] covers the pixels x0, ..., x1 and
// y0, ..., y1, and the points of a polyline lie on pixel centres.
//
// [Generate] writes the icon files used by the web app:
// apple-touch-icon-180.png, icon-192.png, icon-512.png and icon.png.
package appicon
