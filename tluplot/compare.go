/*
 * compare.go, part of tlucmp.
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
	"slices"

	tlusty "github.com/rmera/tlucmp"
	"github.com/rs/zerolog/log"
)

//Comparison holds one figure for each selected quantity. Each model
//added to the Comparison contributes one curve to every figure.
type Comparison struct {
	Figures map[Quantity]*Figure
	order   []Quantity
	//Labels of the models added, in order.
	Labels []string
}

//NewComparison returns a Comparison with one empty figure for each of the given
//quantities. Repeated quantities are ignored.
func NewComparison(qs ...Quantity) *Comparison {
	C := &Comparison{Figures: make(map[Quantity]*Figure, len(qs))}
	for _, q := range qs {
		if slices.Contains(C.order, q) {
			continue
		}
		C.order = append(C.order, q)
		C.Figures[q] = NewFigure(q)
	}
	return C
}

//Quantities returns the quantities with a figure, in the order they were requested.
func (C *Comparison) Quantities() []Quantity {
	return append([]Quantity(nil), C.order...)
}

//Figure returns the figure for q, or nil if q was not requested.
func (C *Comparison) Figure(q Quantity) *Figure {
	return C.Figures[q]
}

//AddModel adds the curves of M, labeled label, to all the figures.
//If M lacks the row of any selected quantity, no figure is changed.
func (C *Comparison) AddModel(label string, M *tlusty.Model) error {
	for _, q := range C.order {
		if q.Row() >= M.NumPar {
			return fmt.Errorf("AddModel: model %s has %d parameters, %s is in row %d", label, M.NumPar, q, q.Row())
		}
	}
	for _, q := range C.order {
		if err := C.Figures[q].AddModel(label, M); err != nil {
			return err
		}
	}
	C.Labels = append(C.Labels, label)
	return nil
}

//AddFile reads the model in the file path and adds it to the comparison, labeled
//with the path. If path doesn't exist or is not a regular file, nothing is done and
//both the model and the error returned are nil. Errors reading the model are returned.
func (C *Comparison) AddFile(path string) (*tlusty.Model, error) {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		log.Debug().Str("file", path).Msg("not a regular file, skipped")
		return nil, nil
	}
	M, err := tlusty.ReadModelFile(path)
	if err != nil {
		if e, ok := err.(tlusty.Error); ok {
			e.Decorate("AddFile")
		}
		return nil, err
	}
	if err := C.AddModel(path, M); err != nil {
		return nil, err
	}
	return M, nil
}

//AddFiles calls AddFile for each path, in order, and stops at the first error.
//It returns the number of models added.
func (C *Comparison) AddFiles(paths []string) (int, error) {
	added := 0
	for _, p := range paths {
		M, err := C.AddFile(p)
		if err != nil {
			return added, err
		}
		if M != nil {
			added++
		}
	}
	return added, nil
}

//Finish attaches the legend to each figure.
func (C *Comparison) Finish() {
	for _, q := range C.order {
		C.Figures[q].Legend()
	}
}
