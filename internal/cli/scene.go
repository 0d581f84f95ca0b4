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

package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/appicon"
)

type jsonScene struct {
	Size   int         `json:"size"`
	Shapes []jsonShape `json:"shapes"`
}

type jsonShape struct {
	Name       string        `json:"name"`
	Color      [4]uint8      `json:"color"`
	Path       []jsonSegment `json:"path"`
	Op         string        `json:"op"`
	FillRule   string        `json:"fill_rule,omitempty"`
	LineWidth  float64       `json:"line_width,omitempty"`
	LineCap    string        `json:"line_cap,omitempty"`
	LineJoin   string        `json:"line_join,omitempty"`
	MiterLimit float64       `json:"miter_limit,omitempty"`
}

type jsonSegment struct {
	Cmd string      `json:"cmd"`
	Pts [][]float64 `json:"pts"`
}

func newSceneCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "scene",
		Short: "Print the display list of an icon as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size <= 0 {
				return fmt.Errorf("invalid icon size %d", size)
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(sceneToJSON(size, appicon.Scene(size)))
		},
	}
	cmd.Flags().IntVarP(&size, "size", "s", 192, "icon edge length in pixels")

	return cmd
}

func sceneToJSON(size int, shapes []appicon.Shape) jsonScene {
	out := jsonScene{Size: size}
	for _, s := range shapes {
		js := jsonShape{
			Name:  s.Name,
			Color: [4]uint8{s.Color.R, s.Color.G, s.Color.B, s.Color.A},
			Path:  pathToJSON(s.Path),
		}
		switch op := s.Op.(type) {
		case appicon.Fill:
			js.Op = "fill"
			js.FillRule = op.Rule.String()
		case appicon.Stroke:
			js.Op = "stroke"
			js.LineWidth = op.Width
			js.LineCap = op.Cap.String()
			js.LineJoin = op.Join.String()
			js.MiterLimit = op.MiterLimit
		}
		out.Shapes = append(out.Shapes, js)
	}
	return out
}

func pathToJSON(p *path.Data) []jsonSegment {
	segs := []jsonSegment{}
	k := 0
	for _, cmd := range p.Cmds {
		var seg jsonSegment
		n := 0
		switch cmd {
		case path.CmdMoveTo:
			seg.Cmd, n = "M", 1
		case path.CmdLineTo:
			seg.Cmd, n = "L", 1
		case path.CmdQuadTo:
			seg.Cmd, n = "Q", 2
		case path.CmdCubeTo:
			seg.Cmd, n = "C", 3
		case path.CmdClose:
			seg.Cmd = "Z"
		}
		seg.Pts = make([][]float64, n)
		for i, pt := range p.Coords[k : k+n] {
			seg.Pts[i] = []float64{pt.X, pt.Y}
		}
		k += n
		segs = append(segs, seg)
	}
	return segs
}
