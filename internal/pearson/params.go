/*
* Evaluation parameters
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

	"github.com/go-playground/validator/v10"
)

const (
	MinIntervals = 4
	// EstimatedQuantities is subtracted from the bin count: mean, standard
	// deviation and the total N.
	EstimatedQuantities = 3

	DefaultIntervals = 10
	DefaultAlpha     = 0.05
)

var paramsValidate = validator.New()

type Params struct {
	Intervals int     `json:"n_intervals" validate:"gte=4"`
	Alpha     float64 `json:"alpha" validate:"gt=0,lt=1"`
}

func DefaultParams() Params {
	return Params{Intervals: DefaultIntervals, Alpha: DefaultAlpha}
}

// Validate checks the domain constraints of the evaluator. Any failure is
// reported as ErrInvalidParameters.
func (p Params) Validate() error {
	if err := paramsValidate.Struct(p); err != nil {
		return fmt.Errorf("%w: intervals=%d alpha=%v: %v", ErrInvalidParameters, p.Intervals, p.Alpha, err)
	}
	return nil
}

// DegreesOfFreedom of the reference chi-squared distribution.
func (p Params) DegreesOfFreedom() int {
	return p.Intervals - EstimatedQuantities
}
