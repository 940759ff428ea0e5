/*
 * quantity.go, part of tlucmp.
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

	tlusty "github.com/rmera/tlucmp"
)

//Quantity is one of the physical quantities that can be compared.
type Quantity int

const (
	Temperature Quantity = iota
	ElectronDensity
	MassDensity
)

//XLabel is shared by all the figures.
const XLabel = "Column mass [g cm-2]"

var quantities = [...]struct {
	key, title, ylabel string
	row                int
}{
	Temperature:     {"TEMP", "Temperature", "T [K]", tlusty.TemperatureRow},
	ElectronDensity: {"ELECTRON", "Electron density", "n_e [cm-3]", tlusty.ElectronDensityRow},
	MassDensity:     {"DENSITY", "Mass density", "rho [g cm-3]", tlusty.MassDensityRow},
}

//Quantities returns all the quantities, in the order in which figures are made.
func Quantities() []Quantity {
	return []Quantity{Temperature, ElectronDensity, MassDensity}
}

func (q Quantity) valid() bool {
	return q >= 0 && int(q) < len(quantities)
}

//Key returns a short upper-case name for q, such as TEMP.
func (q Quantity) Key() string {
	if !q.valid() {
		return fmt.Sprintf("Quantity(%d)", int(q))
	}
	return quantities[q].key
}

func (q Quantity) String() string { return q.Key() }

//Title returns the title of the figure for q.
func (q Quantity) Title() string { return quantities[q].title }

//YLabel returns the label, with units, of the vertical axis.
func (q Quantity) YLabel() string { return quantities[q].ylabel }

//Row is the row of the model parameter matrix holding q.
func (q Quantity) Row() int { return quantities[q].row }
