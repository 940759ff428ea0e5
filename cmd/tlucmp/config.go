/*
 * config.go, part of tlucmp.
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

package main

import (
	"errors"
	"fmt"

	"github.com/rmera/tlucmp/tluplot"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gonum.org/v1/plot/vg"
)

//Config holds the settings that don't select what to plot.
type Config struct {
	OutDir  string
	Prefix  string
	Format  string
	Viewer  string
	Width   float64 //inches
	Height  float64 //inches
	Summary bool
	Verbose bool
}

//RenderOptions translates the configuration into options for the plotter.
func (c *Config) RenderOptions() tluplot.RenderOptions {
	return tluplot.RenderOptions{
		OutDir: c.OutDir,
		Prefix: c.Prefix,
		Format: c.Format,
		Width:  vg.Length(c.Width) * vg.Inch,
		Height: vg.Length(c.Height) * vg.Inch,
	}
}

//settings that can come from a config file or the environment, besides the flags.
var configKeys = []string{"outdir", "prefix", "format", "viewer", "width", "height", "summary", "verbose"}

//loadConfig merges, from lowest to highest priority, the defaults, the config file
//(given with --config, or tlucmp.{yaml,toml,json,env} in the current directory),
//TLUCMP_* environment variables and the flags set in fs.
func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	d := tluplot.DefaultRenderOptions()
	v.SetDefault("outdir", d.OutDir)
	v.SetDefault("prefix", d.Prefix)
	v.SetDefault("format", d.Format)
	v.SetDefault("viewer", "")
	v.SetDefault("width", float64(d.Width/vg.Inch))
	v.SetDefault("height", float64(d.Height/vg.Inch))
	v.SetDefault("summary", false)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix("TLUCMP")
	v.AutomaticEnv()

	if file, _ := fs.GetString("config"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", file, err)
		}
	} else {
		v.SetConfigName("tlucmp")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notfound viper.ConfigFileNotFoundError
			if !errors.As(err, &notfound) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}
	for _, k := range configKeys {
		if err := v.BindPFlag(k, fs.Lookup(k)); err != nil {
			return nil, err
		}
	}

	c := &Config{
		OutDir:  v.GetString("outdir"),
		Prefix:  v.GetString("prefix"),
		Format:  v.GetString("format"),
		Viewer:  v.GetString("viewer"),
		Width:   v.GetFloat64("width"),
		Height:  v.GetFloat64("height"),
		Summary: v.GetBool("summary"),
		Verbose: v.GetBool("verbose"),
	}
	return c, nil
}
