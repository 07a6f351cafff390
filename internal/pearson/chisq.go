/*
* Pearson chi-squared test module
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

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

type Result struct {
	Params      Params       `json:"params"`
	Description *Description `json:"stats"`
	Binning     *Binning     `json:"binning"`
	Fitted      FittedNormal `json:"fitted"`
	Expected    []float64    `json:"expected"`

	Statistic        float64 `json:"chisq"`
	DegreesOfFreedom int     `json:"ddof"`
	CriticalValue    float64 `json:"chisq_crit"`
	Reject           bool    `json:"reject"`

	KS *KSResult `json:"ks,omitempty"`
}

// Evaluate runs the chi-squared goodness-of-fit test of the sample against
// a normal distribution fitted to its histogram. Reject reports whether the
// normality hypothesis is rejected at params.Alpha.
func Evaluate(sample []float64, params Params) (*Result, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	if len(sample) == 0 {
		return nil, fmt.Errorf("%w: empty sample", ErrInvalidParameters)
	}

	binning, err := NewBinning(sample, params.Intervals)
	if err != nil {
		return nil, err
	}
	description, err := Describe(sample)
	if err != nil {
		return nil, err
	}
	fitted, err := FitBinned(binning)
	if err != nil {
		return nil, err
	}
	expected, err := ExpectedFrequencies(binning, fitted, len(sample))
	if err != nil {
		return nil, err
	}

	chiSquare := stat.ChiSquare(binning.Observed(), expected)
	if math.IsNaN(chiSquare) || math.IsInf(chiSquare, 0) {
		return nil, fmt.Errorf("%w: chi-squared statistic is %v", ErrDegenerateSample, chiSquare)
	}

	ddof := params.DegreesOfFreedom()
	criticalValue, err := CriticalValue(params.Alpha, ddof)
	if err != nil {
		return nil, err
	}

	return &Result{
		Params:           params,
		Description:      description,
		Binning:          binning,
		Fitted:           fitted,
		Expected:         expected,
		Statistic:        chiSquare,
		DegreesOfFreedom: ddof,
		CriticalValue:    criticalValue,
		Reject:           chiSquare > criticalValue,
		KS:               KsTest(sample, description),
	}, nil
}

// ExpectedFrequencies evaluates the standard normal density at every
// standardized midpoint and scales it by h*N/sigma.
func ExpectedFrequencies(b *Binning, fitted FittedNormal, n int) ([]float64, error) {
	scale := b.Width * float64(n) / fitted.StdDev
	expected := make([]float64, b.Len())
	for i, mid := range b.Midpoints {
		z := (mid - fitted.Mean) / fitted.StdDev
		expected[i] = scale * distuv.UnitNormal.Prob(z)
		if !(expected[i] > 0) || math.IsInf(expected[i], 0) {
			return nil, fmt.Errorf("%w: expected frequency %v in bin %d [%g, %g)",
				ErrDegenerateSample, expected[i], i, b.Edges[i], b.Edges[i+1])
		}
	}
	return expected, nil
}

// CriticalValue returns c such that the chi-squared CDF with ddof degrees of
// freedom equals 1-alpha at c.
func CriticalValue(alpha float64, ddof int) (float64, error) {
	if ddof <= 0 {
		return 0, fmt.Errorf("%w: %d degrees of freedom", ErrInvalidParameters, ddof)
	}
	if !(alpha > 0 && alpha < 1) {
		return 0, fmt.Errorf("%w: significance level %v", ErrInvalidParameters, alpha)
	}
	return distuv.ChiSquared{K: float64(ddof)}.Quantile(1 - alpha), nil
}
