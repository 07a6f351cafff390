/*
* Sample loading module tests
* Copyright (C) 2025  Artem Stefankiv
*
* This program is free software: you can redistribute it and/or modify
* it under the terms of the GNU General Public License as published by
* the Free Software Foundation, either version 3 of the License, or
* (at your option) any later version.
*
* This program is distributed in the hope that it will be useful,
* but WITHOUT ANY WARRANTY; without even the implied warranty of
* MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
* GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License
* along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package sample

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRead_CommaAndPeriod(t *testing.T) {
	s, err := Read(strings.NewReader("1.5\n2,5\n3.0\n"))
	require.NoError(t, err)
	assert.Equal(t, Sample{1.5, 2.5, 3.0}, s)
}

func TestRead_WhitespaceAndLineEndings(t *testing.T) {
	s, err := Read(strings.NewReader("  -1,25 \r\n\t+4\n.5\n1e3\n7.\n-2.5E-1"))
	require.NoError(t, err)
	assert.Equal(t, Sample{-1.25, 4, 0.5, 1000, 7, -0.25}, s)
}

func TestRead_BadInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "word", input: "1.0\nabc\n3.0\n"},
		{name: "empty", input: ""},
		{name: "blank line", input: "1.0\n\n2.0\n"},
		{name: "infinity", input: "1.0\ninf\n"},
		{name: "nan", input: "NaN\n"},
		{name: "overflow", input: "1e999\n"},
		{name: "hex float", input: "0x1p3\n"},
		{name: "digit separator", input: "1_000\n"},
		{name: "two commas", input: "1,000,5\n"},
		{name: "two values", input: "1.0 2.0\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			s, err := Read(strings.NewReader(test.input))
			assert.Nil(t, s)
			assert.True(t, errors.Is(err, ErrBadInput), "got %v", err)
		})
	}
}

func TestParseLine(t *testing.T) {
	v, err := ParseLine(" 3,14 ")
	require.NoError(t, err)
	assert.Equal(t, 3.14, v)

	_, err = ParseLine("3.14.15")
	assert.ErrorIs(t, err, ErrBadInput)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(good, []byte("10\n11,5\n9.25\n"), 0644))
	s, err := Load(good)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []float64{10, 11.5, 9.25}, s.Float64s())

	bad := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(bad, []byte("10\nten\n"), 0644))
	_, err = Load(bad)
	assert.ErrorIs(t, err, ErrBadInput)
	assert.Contains(t, err.Error(), "line 2")

	_, err = Load(filepath.Join(dir, "missing.txt"))
	assert.ErrorIs(t, err, ErrBadInput)

	_, err = Load(dir)
	assert.ErrorIs(t, err, ErrBadInput)
}
