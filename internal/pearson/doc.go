/*
* Pearson chi-squared test package documentation
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

// Package pearson tests whether a one-dimensional sample is consistent with a
// normal distribution using Pearson's chi-squared goodness-of-fit statistic.
//
// The sample range is split into equal-width intervals. A normal model is
// fitted to the histogram (bin midpoints weighted by their counts, population
// variance), its density at each midpoint gives the expected frequencies,
// and the statistic
//
//	chi2 = sum (observed - expected)^2 / expected
//
// is compared with the chi-squared quantile at 1-alpha with n_intervals-3
// degrees of freedom.
//
//	res, err := pearson.Evaluate(sample, pearson.Params{Intervals: 10, Alpha: 0.05})
//	if err != nil {
//	    // errors.Is(err, pearson.ErrInvalidParameters) / ErrDegenerateSample
//	}
//	if res.Reject {
//	    // not normal at this significance level
//	}
package pearson
