/*
 * summary_test.go, part of tlucmp.
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
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(Te *testing.T) {
	M, err := ReadModel(strings.NewReader(small), "small")
	require.NoError(Te, err)
	s, err := Summarize(M, TemperatureRow)
	require.NoError(Te, err)
	assert.Equal(Te, 12340.0, s.Min)
	assert.Equal(Te, 20000.0, s.Max)
	assert.InDelta(Te, (12340.0+15000+20000)/3, s.Mean, 1e-9)
	//sample standard deviation
	m := s.Mean
	sd := math.Sqrt(((12340-m)*(12340-m) + (15000-m)*(15000-m) + (20000-m)*(20000-m)) / 2)
	assert.InDelta(Te, sd, s.StdDev, 1e-9)
	assert.Equal(Te, 1e-4, s.DepthMin)
	assert.Equal(Te, 1.0, s.DepthMax)
	assert.Contains(Te, s.String(), "column mass")

	_, err = Summarize(M, 4)
	assert.Error(Te, err)
}
