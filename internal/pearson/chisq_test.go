/*
* Pearson chi-squared test module tests
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
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"
)

// quantileSample is an idealised sample: the (i+0.5)/n quantiles of N(mu, sigma).
func quantileSample(n int, mu, sigma float64) []float64 {
	normal := distuv.Normal{Mu: mu, Sigma: sigma}
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = normal.Quantile((float64(i) + 0.5) / float64(n))
	}
	return sample
}

func randomNormal(seed uint64, n int, mu, sigma float64) []float64 {
	r := rand.New(rand.NewPCG(seed, 1024))
	sample := make([]float64, n)
	for i := range sample {
		sample[i] = mu + sigma*r.NormFloat64()
	}
	return sample
}

func TestEvaluate_KnownValues(t *testing.T) {
	sample := []float64{1.5, 2.5, 3.0, 4, 5, 6, 7, 8, 9, 10.5}

	res, err := Evaluate(sample, Params{Intervals: 4, Alpha: 0.05})
	require.NoError(t, err)

	assert.InDeltaSlice(t, []float64{1.5, 3.75, 6.0, 8.25, 10.5}, res.Binning.Edges, 1e-12)
	assert.Equal(t, []int{3, 2, 3, 2}, res.Binning.Counts)
	assert.InDelta(t, 2.25, res.Binning.Width, 1e-12)

	assert.InDelta(t, 5.775, res.Fitted.Mean, 1e-9)
	assert.InDelta(t, 2.505493963273509, res.Fitted.StdDev, 1e-9)

	assert.InDeltaSlice(t,
		[]float64{1.6254233246553567, 3.3587696823362916, 3.098535497357689, 1.276130950530805},
		res.Expected, 1e-9)

	assert.Equal(t, 1, res.DegreesOfFreedom)
	assert.InDelta(t, 2.125863377968383, res.Statistic, 1e-9)
	assert.InDelta(t, 3.841458820694134, res.CriticalValue, 1e-6)
	assert.False(t, res.Reject)

	assert.InDelta(t, 5.65, res.Description.Mean, 1e-12)
	assert.InDelta(t, 7.9525, res.Description.Variance, 1e-12)
	assert.InDelta(t, 2.820017730440715, res.Description.StdDev, 1e-12)
	assert.InDelta(t, 2.9725596900838025, res.Description.StdDevCorr, 1e-12)
}

func TestEvaluate_NormalSampleNotRejected(t *testing.T) {
	for _, n := range []int{200, 1000} {
		res, err := Evaluate(quantileSample(n, 10, 3), DefaultParams())
		require.NoError(t, err)
		assert.False(t, res.Reject, "n=%d chisq=%f crit=%f", n, res.Statistic, res.CriticalValue)
		assert.Less(t, res.Statistic, 2.0)
	}
}

func TestEvaluate_RandomNormalMostlyNotRejected(t *testing.T) {
	const runs = 20
	rejected := 0
	for seed := uint64(1); seed <= runs; seed++ {
		res, err := Evaluate(randomNormal(seed, 2000, 10, 3), DefaultParams())
		require.NoError(t, err)
		assert.Less(t, res.Statistic, 40.0, "seed %d", seed)
		if res.Reject {
			rejected++
		}
	}
	assert.LessOrEqual(t, rejected, 6, "rejected %d of %d normal samples", rejected, runs)
}

func TestEvaluate_NonNormalRejected(t *testing.T) {
	uniform := make([]float64, 1000)
	for i := range uniform {
		uniform[i] = (float64(i) + 0.5) / 1000
	}
	bimodal := append(quantileSample(500, -3, 1), quantileSample(500, 3, 1)...)

	r := rand.New(rand.NewPCG(7, 7))
	randomUniform := make([]float64, 1000)
	for i := range randomUniform {
		randomUniform[i] = r.Float64() * 50
	}

	tests := []struct {
		name   string
		sample []float64
	}{
		{name: "uniform grid", sample: uniform},
		{name: "bimodal", sample: bimodal},
		{name: "random uniform", sample: randomUniform},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			for _, intervals := range []int{6, 10, 15} {
				res, err := Evaluate(test.sample, Params{Intervals: intervals, Alpha: 0.05})
				require.NoError(t, err)
				assert.True(t, res.Reject, "intervals=%d chisq=%f crit=%f", intervals, res.Statistic, res.CriticalValue)
			}
		})
	}
}

func TestEvaluate_ObservedSumEqualsSampleSize(t *testing.T) {
	samples := [][]float64{
		randomNormal(3, 777, 0, 1),
		quantileSample(101, -5, 0.01),
		{0.1, 0.2, 0.30000000000000004, 0.7, 1.1, 1.1, 1.1},
		{-1e6, 0, 1e-6, 1e6},
	}
	for _, sample := range samples {
		for _, intervals := range []int{4, 7, 10, 33} {
			b, err := NewBinning(sample, intervals)
			require.NoError(t, err)
			assert.Equal(t, len(sample), b.Total())
			assert.Len(t, b.Edges, intervals+1)
			assert.Len(t, b.Counts, intervals)
			assert.Len(t, b.Midpoints, intervals)
		}
	}
}

func TestNewBinning_EdgesAndMax(t *testing.T) {
	b, err := NewBinning([]float64{0, 1, 2, 3, 4}, 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 1, 2, 3, 4}, b.Edges)
	// 4 is the sample max and goes to the closed last bin.
	assert.Equal(t, []int{1, 1, 1, 2}, b.Counts)
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5}, b.Midpoints)
}

func TestEvaluate_Deterministic(t *testing.T) {
	sample := randomNormal(11, 500, 2, 0.5)
	first, err := Evaluate(sample, Params{Intervals: 12, Alpha: 0.01})
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := Evaluate(sample, Params{Intervals: 12, Alpha: 0.01})
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestEvaluate_IntervalsBoundary(t *testing.T) {
	sample := quantileSample(100, 0, 1)

	res, err := Evaluate(sample, Params{Intervals: 4, Alpha: 0.05})
	require.NoError(t, err)
	assert.Equal(t, 1, res.DegreesOfFreedom)

	for _, intervals := range []int{3, 2, 1, 0, -4} {
		_, err := Evaluate(sample, Params{Intervals: intervals, Alpha: 0.05})
		assert.ErrorIs(t, err, ErrInvalidParameters, "intervals=%d", intervals)
	}
}

func TestEvaluate_InvalidAlpha(t *testing.T) {
	sample := quantileSample(100, 0, 1)
	for _, alpha := range []float64{0, 1, -0.1, 1.5, math.NaN()} {
		_, err := Evaluate(sample, Params{Intervals: 10, Alpha: alpha})
		assert.ErrorIs(t, err, ErrInvalidParameters, "alpha=%v", alpha)
	}
}

func TestEvaluate_EmptySample(t *testing.T) {
	_, err := Evaluate(nil, DefaultParams())
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestEvaluate_DegenerateSamples(t *testing.T) {
	tests := []struct {
		name   string
		sample []float64
	}{
		{name: "single value", sample: []float64{42}},
		{name: "identical values", sample: []float64{3, 3, 3, 3, 3}},
		// One far outlier: the fitted density underflows to zero in the
		// upper bins.
		{name: "zero expected", sample: append(make([]float64, 5000), 100)},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			res, err := Evaluate(test.sample, DefaultParams())
			assert.Nil(t, res)
			assert.ErrorIs(t, err, ErrDegenerateSample)
			assert.False(t, errors.Is(err, ErrInvalidParameters))
		})
	}
}

func TestDegreesOfFreedom(t *testing.T) {
	for n := MinIntervals; n < 50; n++ {
		assert.Equal(t, n-3, Params{Intervals: n, Alpha: 0.05}.DegreesOfFreedom())
	}
}

func TestCriticalValue_Monotonic(t *testing.T) {
	prev := 0.0
	for n := MinIntervals; n <= 100; n++ {
		c, err := CriticalValue(0.05, Params{Intervals: n}.DegreesOfFreedom())
		require.NoError(t, err)
		assert.Greater(t, c, prev, "n=%d", n)
		prev = c
	}

	prev = math.Inf(1)
	for _, alpha := range []float64{0.001, 0.01, 0.025, 0.05, 0.1, 0.2, 0.5, 0.9} {
		c, err := CriticalValue(alpha, 7)
		require.NoError(t, err)
		assert.Less(t, c, prev, "alpha=%v", alpha)
		prev = c
	}
}

func TestCriticalValue_Table(t *testing.T) {
	tests := []struct {
		alpha float64
		ddof  int
		want  float64
	}{
		{0.05, 1, 3.841458820694134},
		{0.01, 1, 6.634896601021264},
		{0.05, 7, 14.067140449340151},
		{0.01, 7, 18.47530690658203},
	}
	for _, test := range tests {
		got, err := CriticalValue(test.alpha, test.ddof)
		require.NoError(t, err)
		assert.InDelta(t, test.want, got, 1e-6)
	}

	_, err := CriticalValue(0.05, 0)
	assert.ErrorIs(t, err, ErrInvalidParameters)
}

func TestKsTest(t *testing.T) {
	sample := quantileSample(1000, 10, 3)
	description, err := Describe(sample)
	require.NoError(t, err)

	ks := KsTest(sample, description)
	require.NotNil(t, ks)
	assert.True(t, ks.Passes05())
	assert.InDelta(t, 1.36/math.Sqrt(1000), ks.CriticalValue005, 1e-12)
	assert.InDelta(t, 1.63/math.Sqrt(1000), ks.CriticalValue001, 1e-12)

	uniform := make([]float64, 1000)
	for i := range uniform {
		uniform[i] = float64(i)
	}
	description, err = Describe(uniform)
	require.NoError(t, err)
	assert.False(t, KsTest(uniform, description).Passes05())

	assert.Nil(t, KsTest([]float64{1}, &Description{Size: 1}))
}
