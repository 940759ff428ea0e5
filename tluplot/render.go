/*
 * render.go, part of tlucmp.
 *
 * Copyright 2024 The tlucmp authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package tluplot

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot/vg"
)

//Formats supported by the gonum/plot backends.
var formats = []string{"png", "svg", "pdf", "eps", "jpg", "jpeg", "tif", "tiff"}

//RenderOptions sets where and how the figures are written.
type RenderOptions struct {
	OutDir string
	//Files are named Prefix_key.Format, where key is the lower-case quantity key.
	Prefix string
	Format string
	Width  vg.Length
	Height vg.Length
}

//DefaultRenderOptions returns 6x4 inch png files with the "compare" prefix, in the current directory.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		OutDir: ".",
		Prefix: "compare",
		Format: "png",
		Width:  6 * vg.Inch,
		Height: 4 * vg.Inch,
	}
}

//FileName returns the name of the file where the figure for q will be written.
func (R RenderOptions) FileName(q Quantity) string {
	return filepath.Join(R.OutDir, fmt.Sprintf("%s_%s.%s", R.Prefix, strings.ToLower(q.Key()), R.Format))
}

func (R RenderOptions) check() error {
	f := strings.ToLower(R.Format)
	ok := false
	for _, v := range formats {
		if v == f {
			ok = true
			break
		}
	}
	if !ok {
		return fmt.Errorf("Render: unsupported format %q, use one of %s", R.Format, strings.Join(formats, ", "))
	}
	if R.Width <= 0 || R.Height <= 0 {
		return fmt.Errorf("Render: invalid figure size %v x %v", R.Width, R.Height)
	}
	return nil
}

//Render writes each figure with at least one curve to a file, and returns the names of the
//files written. Figures without curves are not written, as a log axis needs some data.
func (C *Comparison) Render(opts RenderOptions) ([]string, error) {
	if err := opts.check(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(opts.OutDir, 0o755); err != nil {
		return nil, err
	}
	written := make([]string, 0, len(C.order))
	for _, q := range C.order {
		F := C.Figures[q]
		if len(F.Curves) == 0 {
			log.Warn().Str("quantity", q.Title()).Msg("no model to plot")
			continue
		}
		name := opts.FileName(q)
		if err := F.Plot.Save(opts.Width, opts.Height, name); err != nil {
			return written, fmt.Errorf("Render: %s: %w", name, err)
		}
		written = append(written, name)
	}
	return written, nil
}

//Present hands each file to the viewer command, which is started but not waited for.
//If viewer is empty, the files are only announced in the log.
func Present(files []string, viewer string) error {
	for _, f := range files {
		log.Info().Str("file", f).Msg("figure written")
		if viewer == "" {
			continue
		}
		cmd := exec.Command(viewer, f)
		if err := cmd.Start(); err != nil {
			return fmt.Errorf("Present: can't start viewer %s: %w", viewer, err)
		}
		cmd.Process.Release()
	}
	return nil
}
