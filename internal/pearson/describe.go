/*
* Sample statistics
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

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat"
)

// Description holds the raw sample statistics shown next to the test. None
// of them take part in the chi-squared computation.
type Description struct {
	Size       int     `json:"n"`
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	Mean       float64 `json:"mean"`
	Variance   float64 `json:"var"`
	StdDev     float64 `json:"std"`
	StdDevCorr float64 `json:"std2"`
}

func Describe(sample []float64) (*Description, error) {
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidParameters)
	}

	mean, err := stats.Mean(sample)
	if err != nil {
		return nil, err
	}
	variance, err := stats.PopulationVariance(sample)
	if err != nil {
		return nil, err
	}
	std, err := stats.StandardDeviationPopulation(sample)
	if err != nil {
		return nil, err
	}
	lo, err := stats.Min(sample)
	if err != nil {
		return nil, err
	}
	hi, err := stats.Max(sample)
	if err != nil {
		return nil, err
	}

	// Bessel correction is undefined for a single observation.
	stdCorr := math.NaN()
	if len(sample) > 1 {
		stdCorr, err = stats.StandardDeviationSample(sample)
		if err != nil {
			return nil, err
		}
	}

	return &Description{
		Size:       len(sample),
		Min:        lo,
		Max:        hi,
		Mean:       mean,
		Variance:   variance,
		StdDev:     std,
		StdDevCorr: stdCorr,
	}, nil
}

// FittedNormal is the normal model the expected frequencies come from.
type FittedNormal struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std"`
}

// FitBinned estimates the normal parameters from the bin midpoints weighted
// by the observed counts, using the population variance. The raw sample is
// not used here.
func FitBinned(b *Binning) (FittedNormal, error) {
	if b.Total() == 0 {
		return FittedNormal{}, fmt.Errorf("%w: no observations in bins", ErrInvalidParameters)
	}
	mean, std := stat.PopMeanStdDev(b.Midpoints, b.Observed())
	if std == 0 || math.IsNaN(std) || math.IsInf(std, 0) {
		return FittedNormal{}, fmt.Errorf("%w: fitted standard deviation is %v", ErrDegenerateSample, std)
	}
	return FittedNormal{Mean: mean, StdDev: std}, nil
}
