/*
* Kolmogorov test module
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
	"math"
	"slices"

	"gonum.org/v1/gonum/stat/distuv"
)

// KSResult is a Kolmogorov distance between the empirical CDF of the sample
// and a normal CDF with the sample mean and corrected standard deviation.
// It is informational; the chi-squared decision does not depend on it.
type KSResult struct {
	Statistic        float64 `json:"d"`
	MaxDiffPosition  int     `json:"position"`
	CriticalValue001 float64 `json:"crit_001"`
	CriticalValue005 float64 `json:"crit_005"`
}

func KsTest(sample []float64, description *Description) *KSResult {
	n := len(sample)
	if n < 2 || !(description.StdDevCorr > 0) {
		return nil
	}

	sorted := slices.Clone(sample)
	slices.Sort(sorted)

	normal := distuv.Normal{Mu: description.Mean, Sigma: description.StdDevCorr}

	var ksStatistic float64
	maxDiffPosition := 0
	for idx, x := range sorted {
		theoretical := normal.CDF(x)
		upper := math.Abs(float64(idx+1)/float64(n) - theoretical)
		lower := math.Abs(theoretical - float64(idx)/float64(n))
		if diff := math.Max(upper, lower); diff > ksStatistic {
			ksStatistic = diff
			maxDiffPosition = idx
		}
	}

	return &KSResult{
		Statistic:        ksStatistic,
		MaxDiffPosition:  maxDiffPosition,
		CriticalValue001: 1.63 / math.Sqrt(float64(n)),
		CriticalValue005: 1.36 / math.Sqrt(float64(n)),
	}
}

// Passes05 reports whether the distance stays below the 0.05 reference value.
func (k *KSResult) Passes05() bool {
	return k.Statistic <= k.CriticalValue005
}
