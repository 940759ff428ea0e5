/*
 * doc.go, part of tlucmp.
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

/*Package tlusty reads the model atmospheres written by TLUSTY
(http://nova.astro.umd.edu/, https://arxiv.org/abs/1706.01937) in the
fort.7 format, for comparison and analysis.

A model file has a header line with NDEPTH (the number of depth points) and
NUMPAR (the number of quantities tabulated for each depth point), the NDEPTH
depth points (column mass, in g cm-2) and then a table with NUMPAR values for
each depth point. Numbers are usually written in Fortran double precision
notation (1.234D+04), which is understood, as is the three-digit exponent
form without exponent letter (1.234-100).

The first three quantities of each depth point are the temperature, the
electron density and the mass density. The rest are level populations
(other quantities, for accretion disk models).

Files ending in .gz or .zst are decompressed on the fly.

Errors in the content of a model file are returned as *ParseError, which, like
all errors in this library, implements the Error interface.
*/
package tlusty
