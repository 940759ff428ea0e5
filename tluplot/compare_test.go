/*
 * compare_test.go, part of tlucmp.
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
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tlusty "github.com/rmera/tlucmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/plotter"
)

var rootdirtest string = "../test"

func TestQuantities(Te *testing.T) {
	assert.Equal(Te, "TEMP", Temperature.Key())
	assert.Equal(Te, "Electron density", ElectronDensity.Title())
	assert.Equal(Te, "rho [g cm-3]", MassDensity.YLabel())
	assert.Equal(Te, []int{0, 1, 2}, []int{Temperature.Row(), ElectronDensity.Row(), MassDensity.Row()})
	assert.Equal(Te, "Quantity(7)", Quantity(7).String())
}

func TestNewComparison(Te *testing.T) {
	C := NewComparison(MassDensity, Temperature, MassDensity)
	assert.Equal(Te, []Quantity{MassDensity, Temperature}, C.Quantities())
	assert.Nil(Te, C.Figure(ElectronDensity))
	F := C.Figure(Temperature)
	require.NotNil(Te, F)
	assert.Equal(Te, "Temperature", F.Plot.Title.Text)
	assert.Equal(Te, XLabel, F.Plot.X.Label.Text)
	assert.Equal(Te, "T [K]", F.Plot.Y.Label.Text)
}

//Two models, temperature only: two labeled curves, with the depth points
//and the temperature of each model.
func TestTwoFilesTemperature(Te *testing.T) {
	hot := filepath.Join(rootdirtest, "hot.7")
	cool := filepath.Join(rootdirtest, "cool.7")
	C := NewComparison(Temperature)
	n, err := C.AddFiles([]string{hot, cool})
	require.NoError(Te, err)
	assert.Equal(Te, 2, n)
	C.Finish()

	F := C.Figure(Temperature)
	require.Len(Te, F.Curves, 2)
	for i, name := range []string{hot, cool} {
		M, err := tlusty.ReadModelFile(name)
		require.NoError(Te, err)
		c := F.Curves[i]
		assert.Equal(Te, name, c.Label)
		require.Len(Te, c.XYs, M.NDepth)
		T := M.Temperature()
		for j, xy := range c.XYs {
			assert.Equal(Te, M.Depth[j], xy.X)
			assert.Equal(Te, T[j], xy.Y)
		}
	}
	assert.Equal(Te, []string{hot, cool}, C.Labels)
}

func TestAllQuantitiesRows(Te *testing.T) {
	hot := filepath.Join(rootdirtest, "hot.7")
	C := NewComparison(Quantities()...)
	M, err := C.AddFile(hot)
	require.NoError(Te, err)
	require.NotNil(Te, M)
	for _, q := range Quantities() {
		F := C.Figure(q)
		require.Len(Te, F.Curves, 1, q.Key())
		row := M.Row(q.Row())
		for j, xy := range F.Curves[0].XYs {
			assert.Equal(Te, row[j], xy.Y, q.Key())
		}
	}
}

func TestMissingFileSkipped(Te *testing.T) {
	hot := filepath.Join(rootdirtest, "hot.7")
	C := NewComparison(Temperature, ElectronDensity)
	n, err := C.AddFiles([]string{filepath.Join(Te.TempDir(), "nothere.7"), hot, Te.TempDir()})
	require.NoError(Te, err)
	assert.Equal(Te, 1, n)
	for _, q := range C.Quantities() {
		F := C.Figure(q)
		require.Len(Te, F.Curves, 1)
		assert.Equal(Te, hot, F.Curves[0].Label)
	}
}

//A broken model stops everything, the following files are not read.
func TestParseErrorIsFatal(Te *testing.T) {
	dir := Te.TempDir()
	bad := filepath.Join(dir, "bad.7")
	require.NoError(Te, os.WriteFile(bad, []byte("2 2\n1D0 2D0\n1 2 3\n"), 0o644))
	C := NewComparison(Temperature)
	n, err := C.AddFiles([]string{filepath.Join(rootdirtest, "hot.7"), bad, filepath.Join(rootdirtest, "cool.7")})
	require.Error(Te, err)
	assert.Equal(Te, 1, n)
	var perr *tlusty.ParseError
	require.True(Te, errors.As(err, &perr))
	assert.Equal(Te, []string{"ReadModel", "ReadModelFile", "AddFile"}, perr.Decorate(""))
	assert.Len(Te, C.Figure(Temperature).Curves, 1)
}

func TestModelWithoutRow(Te *testing.T) {
	M, err := tlusty.ReadModel(strings.NewReader("2 2\n1D0 2D0\n1 2\n3 4\n"), "short")
	require.NoError(Te, err)
	C := NewComparison(Temperature, MassDensity)
	assert.Error(Te, C.AddModel("short", M))
	//nothing is added when one of the figures can't take the model
	assert.Empty(Te, C.Figure(Temperature).Curves)
	assert.Empty(Te, C.Figure(MassDensity).Curves)
	assert.Empty(Te, C.Labels)
}

func TestNonFiniteValues(Te *testing.T) {
	M, err := tlusty.ReadModel(strings.NewReader("4 1\n1D0 2D0 3D0 4D0\n5 NaN Inf 8\n"), "gaps")
	require.NoError(Te, err)
	F := NewFigure(Temperature)
	require.NoError(Te, F.AddModel("gaps", M))
	require.Len(Te, F.Curves, 1)
	assert.Equal(Te, plotter.XYs{{X: 1, Y: 5}, {X: 4, Y: 8}}, F.Curves[0].XYs)

	M, err = tlusty.ReadModel(strings.NewReader("1 1\n1D0\nNaN\n"), "allnan")
	require.NoError(Te, err)
	assert.Error(Te, F.AddModel("allnan", M))
	assert.Len(Te, F.Curves, 1)
}

func TestNonPositiveDepth(Te *testing.T) {
	M, err := tlusty.ReadModel(strings.NewReader("3 1\n0D0 1D0 2D0\n5 6 7\n"), "zero")
	require.NoError(Te, err)
	F := NewFigure(Temperature)
	require.NoError(Te, F.AddModel("zero", M))
	require.Len(Te, F.Curves[0].XYs, 2)
	assert.Equal(Te, 1.0, F.Curves[0].XYs[0].X)
	assert.Equal(Te, 6.0, F.Curves[0].XYs[0].Y)

	M, err = tlusty.ReadModel(strings.NewReader("1 1\n0D0\n5\n"), "allzero")
	require.NoError(Te, err)
	assert.Error(Te, F.AddModel("allzero", M))
	assert.Len(Te, F.Curves, 1)
}

func TestLegend(Te *testing.T) {
	C := NewComparison(Temperature)
	_, err := C.AddFiles([]string{filepath.Join(rootdirtest, "hot.7"), filepath.Join(rootdirtest, "cool.7")})
	require.NoError(Te, err)
	C.Finish()
	C.Finish()
	F := C.Figure(Temperature)
	assert.True(Te, F.Plot.Legend.Top)
	assert.False(Te, F.Plot.Legend.Left)
}
