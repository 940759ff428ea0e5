/*
 * model.go, part of tlucmp.
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

package tlusty

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

//Rows of the parameter matrix with a fixed meaning. Rows from
//FirstPopulation on are level populations (or other quantities, for
//accretion disk models).
const (
	TemperatureRow     = 0
	ElectronDensityRow = 1
	MassDensityRow     = 2
	FirstPopulation    = 3
)

//MaxTableValues is the largest NDEPTH*NUMPAR accepted in a header. Real models
//are orders of magnitude below it.
const MaxTableValues = 1 << 27

//slices grow from this capacity, so a damaged header can't make us reserve huge amounts of memory.
const preallocLimit = 4096

//Model contains a TLUSTY model atmosphere as read from a fort.7-style file.
type Model struct {
	Name   string
	NDepth int
	NumPar int
	//Column mass for each depth point, in g cm-2.
	Depth []float64
	//NumPar x NDepth. Each row is one quantity along the depth points.
	Params *mat.Dense
}

//Row returns a copy of the ith row of the parameter matrix. It panics if i is out of range.
func (M *Model) Row(i int) []float64 {
	return mat.Row(nil, i, M.Params)
}

//Temperature returns the temperature, in K, for each depth point
func (M *Model) Temperature() []float64 {
	return M.Row(TemperatureRow)
}

//ElectronDensity returns the electron density, in cm-3, for each depth point
func (M *Model) ElectronDensity() []float64 {
	return M.Row(ElectronDensityRow)
}

//MassDensity returns the mass density, in g cm-3, for each depth point
func (M *Model) MassDensity() []float64 {
	return M.Row(MassDensityRow)
}

//lineReader keeps track of the line number, for error reporting.
type lineReader struct {
	r    *bufio.Reader
	line int
}

//next returns the next line. A last line without newline is returned
//with a nil error, io.EOF comes only when nothing is left.
func (L *lineReader) next() (string, error) {
	line, err := L.r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err == nil {
		L.line++
	}
	return line, err
}

//ReadModelFile reads the TLUSTY model in the file name. Files ending in
//.gz or .zst are decompressed on the fly.
func ReadModelFile(name string) (*Model, error) {
	f, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	M, err := ReadModel(f, name)
	if err != nil {
		return nil, errDecorate(err, "ReadModelFile")
	}
	return M, nil
}

//ReadModel reads a TLUSTY model from r. name is only used to label
//the model and the errors. The format is a header line with NDEPTH and NUMPAR,
//NDEPTH depth points (any number per line) and a table with NUMPAR values for
//each depth point. All content problems are reported as *ParseError.
func ReadModel(r io.Reader, name string) (*Model, error) {
	in := &lineReader{r: bufio.NewReader(r)}
	line, err := in.next()
	if err == io.EOF {
		return nil, newParseError(name, 1, "ReadModel", "%s: empty file", MalformedHeader)
	} else if err != nil {
		return nil, err
	}
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return nil, newParseError(name, in.line, "ReadModel", "%s: got %q", MalformedHeader, strings.TrimSpace(line))
	}
	ndepth, err1 := strconv.Atoi(fields[0])
	numpar, err2 := strconv.Atoi(fields[1])
	if err1 != nil || err2 != nil || ndepth <= 0 || numpar <= 0 {
		return nil, newParseError(name, in.line, "ReadModel", "%s: got %q", MalformedHeader, strings.TrimSpace(line))
	}
	//also catches ndepth*numpar overflowing
	if ndepth > MaxTableValues/numpar {
		return nil, newParseError(name, in.line, "ReadModel", "%s: NDEPTH*NUMPAR larger than %d", MalformedHeader, MaxTableValues)
	}

	depth := make([]float64, 0, min(ndepth, preallocLimit))
	for len(depth) < ndepth {
		line, err = in.next()
		if err == io.EOF {
			return nil, newParseError(name, in.line, "ReadModel", "%s: got %d, expected %d", NotEnoughDepth, len(depth), ndepth)
		} else if err != nil {
			return nil, err
		}
		for _, f := range strings.Fields(line) {
			if len(depth) == ndepth {
				return nil, newParseError(name, in.line, "ReadModel", "%s (%d)", DepthOverrun, ndepth)
			}
			v, err := ParseFortranFloat(f)
			if err != nil {
				return nil, newParseError(name, in.line, "ReadModel", "%s %q", BadNumber, f)
			}
			depth = append(depth, v)
		}
	}

	table := make([]float64, 0, min(ndepth*numpar, preallocLimit))
	for {
		line, err = in.next()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		for _, f := range strings.Fields(line) {
			v, err := ParseFortranFloat(f)
			if err != nil {
				return nil, newParseError(name, in.line, "ReadModel", "%s %q", BadNumber, f)
			}
			table = append(table, v)
		}
	}
	if len(table)%numpar != 0 {
		return nil, newParseError(name, 0, "ReadModel", "%s: %d values, NUMPAR=%d", TableNotDivisible, len(table), numpar)
	}
	if len(table) != ndepth*numpar {
		return nil, newParseError(name, 0, "ReadModel", "%s: %d values, expected %d", WrongTableSize, len(table), ndepth*numpar)
	}
	//The table is written one depth point after the other, so it is
	//read as NDEPTH x NUMPAR and transposed.
	bydepth := mat.NewDense(ndepth, numpar, table)
	M := &Model{
		Name:   name,
		NDepth: ndepth,
		NumPar: numpar,
		Depth:  depth,
		Params: mat.DenseCopyOf(bydepth.T()),
	}
	return M, nil
}

func (M *Model) String() string {
	return fmt.Sprintf("TLUSTY model %s: NDEPTH=%d NUMPAR=%d", M.Name, M.NDepth, M.NumPar)
}
