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

// Package cli implements the mkicons command line.
package cli

import (
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"seehuhn.de/go/appicon"
)

// NewRootCmd returns the mkicons command.  Without a subcommand it writes
// the default icon set.
func NewRootCmd() *cobra.Command {
	var (
		dir     string
		verbose bool
	)

	rootCmd := &cobra.Command{
		Use:   "mkicons",
		Short: "Write the web-app icons",
		Long: `mkicons draws the checklist icon of the web app and writes it
in all sizes needed by browsers and home screens:

  apple-touch-icon-180.png, icon-192.png, icon-512.png and icon.png`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := appicon.Generate(appicon.Options{
				Dir:    dir,
				Out:    cmd.OutOrStdout(),
				Logger: newLogger(cmd.ErrOrStderr(), verbose),
			})
			return err
		},
	}

	rootCmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress to stderr")

	rootCmd.AddCommand(newSceneCmd())

	return rootCmd
}

// newLogger returns the logger for the icon generator.  Log lines are
// coloured only when w is a terminal.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if !verbose {
		return hclog.NewNullLogger()
	}
	color := hclog.ColorOff
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		color = hclog.ForceColor
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "mkicons",
		Output: w,
		Level:  hclog.Debug,
		Color:  color,
	})
}
