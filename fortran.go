/*
 * fortran.go, part of tlucmp.
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
	"strconv"
	"strings"
)

//ParseFortranFloat parses a real number written by a Fortran program.
//Besides the usual notation, it takes the double precision exponent marker
//(1.234D+04, 1.234d4) and the form without exponent letter that Fortran uses
//when the exponent needs three digits (1.234-100).
func ParseFortranFloat(s string) (float64, error) {
	t := strings.Map(func(r rune) rune {
		if r == 'D' || r == 'd' {
			return 'E'
		}
		return r
	}, strings.TrimSpace(s))
	if i := strings.LastIndexAny(t, "+-"); i > 0 {
		if prev := t[i-1]; prev != 'E' && prev != 'e' {
			t = t[:i] + "E" + t[i:]
		}
	}
	return strconv.ParseFloat(t, 64)
}
