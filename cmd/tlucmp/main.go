/*
 * main.go, part of tlucmp.
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

//tlucmp shows TLUSTY models for comparison.
//
//	tlucmp [-t] [-e] [-d] [flags] FILE...
//
//One figure is written for each of temperature (-t), electron density (-e) and mass
//density (-d), with one curve per model file.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tlusty "github.com/rmera/tlucmp"
	"github.com/rmera/tlucmp/tluplot"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/pflag"
)

const guidance = "Choose quantity to print. Check --help"

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("tlucmp", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.SortFlags = false
	fs.BoolP("temperature", "t", false, "Display temperatures")
	fs.BoolP("electron", "e", false, "Display electron density")
	fs.BoolP("density", "d", false, "Display mass density")
	fs.BoolP("summary", "s", false, "Print statistics of the displayed quantities for each model")
	fs.StringP("outdir", "o", ".", "Directory for the figures")
	fs.StringP("format", "f", "png", "Figure format (png, svg, pdf, eps, jpg, tif)")
	fs.String("prefix", "compare", "Prefix for the figure file names")
	fs.String("viewer", "", "Program used to open each figure (e.g. xdg-open). Empty means none")
	fs.Float64("width", 6, "Figure width in inches")
	fs.Float64("height", 4, "Figure height in inches")
	fs.String("config", "", "Configuration file")
	fs.BoolP("verbose", "v", false, "Debug output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: tlucmp [flags] FILE...\n\nShow TLUSTY models for comparison.\n\n")
		fs.PrintDefaults()
	}
	return fs
}

//selected returns the quantities whose flags were given.
func selected(fs *pflag.FlagSet) []tluplot.Quantity {
	qs := make([]tluplot.Quantity, 0, 3)
	flags := map[tluplot.Quantity]string{
		tluplot.Temperature:     "temperature",
		tluplot.ElectronDensity: "electron",
		tluplot.MassDensity:     "density",
	}
	for _, q := range tluplot.Quantities() {
		if on, _ := fs.GetBool(flags[q]); on {
			qs = append(qs, q)
		}
	}
	return qs
}

//run returns the exit code: 0 on success (also when there is nothing to plot),
//1 on errors reading models or writing figures, 2 on usage errors.
func run(args []string, stdout, stderr io.Writer) int {
	fs := newFlagSet(stderr)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "tlucmp: at least one model file is required")
		fs.Usage()
		return 2
	}
	qs := selected(fs)
	if len(qs) == 0 {
		fmt.Fprintln(stdout, guidance)
		return 0
	}
	cfg, err := loadConfig(fs)
	if err != nil {
		log.Error().Err(err).Msg("configuration")
		return 2
	}
	if cfg.Verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cmp := tluplot.NewComparison(qs...)
	for _, name := range fs.Args() {
		M, err := cmp.AddFile(name)
		if err != nil {
			log.Error().Err(err).Str("file", name).Msg("can't read model")
			return 1
		}
		if M == nil {
			continue
		}
		log.Debug().Str("file", name).Int("ndepth", M.NDepth).Int("numpar", M.NumPar).Msg("model added")
		if cfg.Summary {
			if err := printSummary(stdout, M, qs); err != nil {
				log.Error().Err(err).Str("file", name).Msg("summary")
				return 1
			}
		}
	}
	cmp.Finish()
	files, err := cmp.Render(cfg.RenderOptions())
	if err != nil {
		log.Error().Err(err).Msg("can't write figures")
		return 1
	}
	if err := tluplot.Present(files, cfg.Viewer); err != nil {
		log.Error().Err(err).Msg("can't show figures")
		return 1
	}
	return 0
}

func printSummary(w io.Writer, M *tlusty.Model, qs []tluplot.Quantity) error {
	for _, q := range qs {
		s, err := tlusty.Summarize(M, q.Row())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s %-8s %s\n", M.Name, q.Key(), s)
	}
	return nil
}
