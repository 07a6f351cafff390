/*
* Sample loading module
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
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/rure-go"
)

// ErrBadInput means the file could not be read or one of its lines is not
// a finite decimal number. No partial sample is ever returned with it.
var ErrBadInput = errors.New("bad input")

// Plain decimal literal after comma normalization. Rejects inf, nan, hex
// floats and digit separators that strconv would otherwise accept.
const decimalPattern = `^[+-]?(?:[0-9]+(?:\.[0-9]*)?|\.[0-9]+)(?:[eE][+-]?[0-9]+)?$`

var decimalRegex = rure.MustCompile(decimalPattern)

// Sample is an ordered sequence of finite values, one per input line.
type Sample []float64

func Load(filename string) (Sample, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	defer func(file *os.File) {
		_ = file.Close()
	}(file)

	fileStat, err := file.Stat()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if fileStat.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrBadInput, filename)
	}

	s, err := Read(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return s, nil
}

func Read(r io.Reader) (Sample, error) {
	var s Sample

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		value, err := ParseLine(scanner.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		s = append(s, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadInput, err)
	}
	if len(s) == 0 {
		return nil, fmt.Errorf("%w: no values", ErrBadInput)
	}
	return s, nil
}

// ParseLine trims the line, turns a decimal comma into a period and parses
// the result as a finite float64.
func ParseLine(line string) (float64, error) {
	text := strings.ReplaceAll(strings.TrimSpace(line), ",", ".")
	if !decimalRegex.IsMatch(text) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrBadInput, line)
	}
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsInf(value, 0) || math.IsNaN(value) {
		return 0, fmt.Errorf("%w: %q is not a finite number", ErrBadInput, line)
	}
	return value, nil
}

func (s Sample) Len() int {
	return len(s)
}

// Float64s returns a copy the caller may modify.
func (s Sample) Float64s() []float64 {
	out := make([]float64, len(s))
	copy(out, s)
	return out
}
