/*
* Equal-width binning
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

package pearson

import (
	"fmt"
	"math"
	"slices"
)

type Binning struct {
	Edges     []float64 `json:"bins"`
	Counts    []int     `json:"observed"`
	Midpoints []float64 `json:"midpoints"`
	Width     float64   `json:"h"`
}

// NewBinning splits [min, max] of the sample into n equal-width intervals.
// Every interval is half-open except the last one, which also holds max.
func NewBinning(sample []float64, n int) (*Binning, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidParameters)
	}
	if n < 1 {
		return nil, fmt.Errorf("%w: %d intervals", ErrInvalidParameters, n)
	}

	lo, hi := slices.Min(sample), slices.Max(sample)
	if lo == hi {
		return nil, fmt.Errorf("%w: all %d values equal %v", ErrDegenerateSample, len(sample), lo)
	}

	step := (hi - lo) / float64(n)
	edges := make([]float64, n+1)
	for i := range edges {
		edges[i] = lo + float64(i)*step
	}
	edges[n] = hi

	counts := make([]int, n)
	for _, x := range sample {
		counts[binIndex(edges, x)]++
	}

	mids := make([]float64, n)
	for i := range mids {
		mids[i] = (edges[i] + edges[i+1]) / 2.0
	}

	return &Binning{
		Edges:     edges,
		Counts:    counts,
		Midpoints: mids,
		Width:     edges[1] - edges[0],
	}, nil
}

// binIndex guesses the bin from the step and then corrects the guess
// against the stored edges, which absorb the rounding of lo + i*step.
func binIndex(edges []float64, x float64) int {
	n := len(edges) - 1
	lo, hi := edges[0], edges[n]
	i := int(math.Floor((x - lo) / (hi - lo) * float64(n)))
	if i >= n {
		i = n - 1
	}
	if i < 0 {
		i = 0
	}
	if i > 0 && x < edges[i] {
		i--
	} else if i < n-1 && x >= edges[i+1] {
		i++
	}
	return i
}

func (b *Binning) Len() int {
	return len(b.Counts)
}

// Total is the number of observations in all bins.
func (b *Binning) Total() int {
	var total int
	for _, c := range b.Counts {
		total += c
	}
	return total
}

func (b *Binning) Observed() []float64 {
	observed := make([]float64, len(b.Counts))
	for i, c := range b.Counts {
		observed[i] = float64(c)
	}
	return observed
}
