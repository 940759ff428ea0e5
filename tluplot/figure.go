/*
 * figure.go, part of tlucmp.
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
/***Dedicated to the long life of the Ven. Khenpo Phuntzok Tenzin Rinpoche***/

package tluplot

import (
	"fmt"
	"math"

	tlusty "github.com/rmera/tlucmp"
	"github.com/rs/zerolog/log"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

//Curve is the data of one line in a figure.
type Curve struct {
	Label string
	XYs   plotter.XYs
}

//Figure is the plot for one quantity, with a logarithmic column mass axis
//and a linear axis for the quantity.
type Figure struct {
	Quantity Quantity
	Plot     *plot.Plot
	Curves   []Curve
	lines    []*plotter.Line
	legend   bool
}

//NewFigure returns an empty figure for q, with title and labels set.
func NewFigure(q Quantity) *Figure {
	p := plot.New()
	p.Title.Text = q.Title()
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = XLabel
	p.Y.Label.Text = q.YLabel()
	p.X.Scale = plot.LogScale{}
	p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	p.Add(plotter.NewGrid())
	return &Figure{Quantity: q, Plot: p}
}

//AddModel adds one line with the depth points of M as the horizontal coordinates
//and the row of M corresponding to the figure's quantity as the vertical ones.
//Points with non-positive column mass can't be shown in a log axis and are left out,
//as are points with a NaN or infinite value.
func (F *Figure) AddModel(label string, M *tlusty.Model) error {
	row := F.Quantity.Row()
	if row >= M.NumPar {
		return fmt.Errorf("AddModel: model %s has %d parameters, %s is in row %d", label, M.NumPar, F.Quantity, row)
	}
	y := M.Row(row)
	xys := make(plotter.XYs, 0, len(M.Depth))
	var nonpositive, nonfinite int
	for i, x := range M.Depth {
		switch {
		case math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y[i]) || math.IsInf(y[i], 0):
			nonfinite++
		case x <= 0:
			nonpositive++
		default:
			xys = append(xys, plotter.XY{X: x, Y: y[i]})
		}
	}
	if nonpositive > 0 {
		log.Warn().Str("model", label).Int("points", nonpositive).Msg("non-positive column mass left out of the plot")
	}
	if nonfinite > 0 {
		log.Warn().Str("model", label).Str("quantity", F.Quantity.Key()).Int("points", nonfinite).Msg("NaN or infinite values left out of the plot")
	}
	if len(xys) == 0 {
		return fmt.Errorf("AddModel: model %s has no plottable point for %s", label, F.Quantity)
	}
	l, err := plotter.NewLine(xys)
	if err != nil {
		return fmt.Errorf("AddModel: model %s: %w", label, err)
	}
	n := len(F.Curves)
	l.LineStyle.Color = plotutil.Color(n)
	l.LineStyle.Width = vg.Points(1.5)
	//the colors run out after a while
	l.LineStyle.Dashes = plotutil.Dashes(n / len(plotutil.DefaultColors))
	F.Plot.Add(l)
	F.Curves = append(F.Curves, Curve{Label: label, XYs: xys})
	F.lines = append(F.lines, l)
	return nil
}

//Legend puts a legend with the label of each curve on the upper right corner.
//Calling it more than once has no further effect.
func (F *Figure) Legend() {
	if F.legend {
		return
	}
	F.Plot.Legend.Top = true
	F.Plot.Legend.Left = false
	for i, c := range F.Curves {
		F.Plot.Legend.Add(c.Label, F.lines[i])
	}
	F.legend = true
}
