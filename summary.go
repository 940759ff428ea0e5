/*
 * summary.go, part of tlucmp.
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

package tlusty

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

//Summary contains some descriptive statistics for one quantity of a model.
type Summary struct {
	Row      int
	Min      float64
	Max      float64
	Mean     float64
	StdDev   float64
	DepthMin float64
	DepthMax float64
}

//Summarize obtains the statistics for the row row of the parameter matrix of M.
func Summarize(M *Model, row int) (Summary, error) {
	if row < 0 || row >= M.NumPar {
		return Summary{}, fmt.Errorf("Summarize: row %d requested, model %s has %d parameters", row, M.Name, M.NumPar)
	}
	v := M.Row(row)
	s := Summary{Row: row}
	s.Min = floats.Min(v)
	s.Max = floats.Max(v)
	s.Mean, s.StdDev = stat.MeanStdDev(v, nil)
	s.DepthMin = floats.Min(M.Depth)
	s.DepthMax = floats.Max(M.Depth)
	return s, nil
}

func (S Summary) String() string {
	return fmt.Sprintf("min %.4e max %.4e mean %.4e sd %.4e (column mass %.3e - %.3e)", S.Min, S.Max, S.Mean, S.StdDev, S.DepthMin, S.DepthMax)
}
