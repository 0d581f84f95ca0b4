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
	"slices"
	"testing"
)

func TestLayout192(t *testing.T) {
	l := NewLayout(192)

	card := [5]int{l.CardX, l.CardY, l.CardW, l.CardH, l.CardRadius}
	if card != [5]int{38, 38, 115, 124, 9} {
		t.Errorf("card: got %v", card)
	}
	if l.Spacing != 31 {
		t.Errorf("spacing: got %d, expected 31", l.Spacing)
	}

	for i, y := range []int{69, 100, 131} {
		row := l.Rows[i]
		if row.X != 53 || row.Y != y || row.R != 7 {
			t.Errorf("row %d: marker at (%d,%d) r=%d", i, row.X, row.Y, row.R)
		}
		check := [3]image.Point{{50, y}, {53, y + 3}, {60, y - 2}}
		if row.Check != check {
			t.Errorf("row %d: checkmark %v, expected %v", i, row.Check, check)
		}
		bar := [4]int{row.BarX, row.BarY, row.BarW, row.BarH}
		if bar != [4]int{72, y - 4, 48, 8} {
			t.Errorf("row %d: bar %v", i, bar)
		}
	}
}

func TestLayoutRows(t *testing.T) {
	l := NewLayout(512)

	want := []struct {
		done   bool
		marker any
		bar    any
	}{
		{true, DoneTeal, BarDone},
		{true, DoneYellow, BarDone},
		{false, PendingFill, BarPending},
	}
	for i, w := range want {
		row := l.Rows[i]
		if row.Done != w.done || row.Marker != w.marker || row.Bar != w.bar {
			t.Errorf("row %d: done=%t marker=%v bar=%v", i, row.Done, row.Marker, row.Bar)
		}
	}
}

func TestSceneOrder(t *testing.T) {
	var names []string
	for _, s := range Scene(192) {
		names = append(names, s.Name)
	}
	want := []string{
		"card", "card-outline",
		"row0-marker", "row0-check", "row0-bar",
		"row1-marker", "row1-check", "row1-bar",
		"row2-marker", "row2-marker-outline", "row2-bar",
	}
	if !slices.Equal(names, want) {
		t.Errorf("got shapes %v, expected %v", names, want)
	}
}

// TestSceneInBounds checks that no shape reaches outside the icon.
func TestSceneInBounds(t *testing.T) {
	for _, size := range []int{180, 192, 512, 1024} {
		limit := float64(size)
		for _, s := range Scene(size) {
			for _, c := range s.Path.Coords {
				if c.X < 0 || c.Y < 0 || c.X > limit || c.Y > limit {
					t.Errorf("size %d: %s has point %v outside the icon", size, s.Name, c)
					break
				}
			}
		}
	}
}

func TestSceneDegenerate(t *testing.T) {
	for _, s := range Scene(1) {
		if s.Path == nil {
			t.Errorf("%s: nil path", s.Name)
		}
	}
}
