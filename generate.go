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
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
)

// Target is an icon file to be written.
type Target struct {
	Name string
	Size int
}

// TargetName returns the conventional file name for an icon of the given
// size.
func TargetName(size int) string {
	if size == 180 {
		return fmt.Sprintf("apple-touch-icon-%d.png", size)
	}
	return fmt.Sprintf("icon-%d.png", size)
}

// DefaultTargets lists the files used by the web app, in the order they
// are written.
var DefaultTargets = []Target{
	{Name: TargetName(180), Size: 180},
	{Name: TargetName(192), Size: 192},
	{Name: TargetName(512), Size: 512},
	{Name: "icon.png", Size: 192},
}

// Options control [Generate].  The zero value writes [DefaultTargets] to
// the current directory.
type Options struct {
	// Dir is the output directory.  It must exist.
	Dir string

	// Targets overrides DefaultTargets if non-empty.
	Targets []Target

	// Out receives one line for every file written.  Nil discards the
	// lines.
	Out io.Writer

	Logger hclog.Logger
}

// Generate renders and writes every target.  Each target is rendered
// separately, even if the same size occurs more than once.
//
// Generate stops at the first error.  Files written before the error are
// kept.  The targets written so far are returned in both cases.
func Generate(opts Options) ([]Target, error) {
	targets := opts.Targets
	if len(targets) == 0 {
		targets = DefaultTargets
	}
	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	out := opts.Out
	if out == nil {
		out = io.Discard
	}
	logger := opts.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	for _, t := range targets {
		if t.Size <= 0 {
			return nil, fmt.Errorf("%s: invalid icon size %d", t.Name, t.Size)
		}
	}

	var done []Target
	for _, t := range targets {
		fname := filepath.Join(dir, t.Name)
		logger.Debug("rendering icon", "file", fname, "size", t.Size)

		img := Render(t.Size)
		if err := WritePNG(fname, img); err != nil {
			return done, fmt.Errorf("%s: %w", t.Name, err)
		}
		done = append(done, t)

		logger.Info("wrote icon", "file", fname)
		if _, err := fmt.Fprintf(out, "Created %s (%dx%d)\n", t.Name, t.Size, t.Size); err != nil {
			return done, err
		}
	}
	return done, nil
}

// WritePNG writes img to the named file in PNG format.
func WritePNG(fname string, img image.Image) error {
	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(f, img)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
