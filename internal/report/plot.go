/*
* Histogram plotting module
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

package report

import (
	"fmt"
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/Gilah-EnE/pearson_chisq/internal/pearson"
)

const PlotSuffix = ".png"

// SaveHistogram draws the sample histogram with the expected frequencies of
// the fitted normal on top and saves it as PNG. Returns the path used.
func SaveHistogram(filename, title string, sample []float64, res *pearson.Result) (string, error) {
	filename = WithSuffix(filename, PlotSuffix)

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Value"
	p.Y.Label.Text = "Frequency"

	hist, err := plotter.NewHist(plotter.Values(sample), res.Params.Intervals)
	if err != nil {
		return "", fmt.Errorf("building histogram: %w", err)
	}
	p.Add(hist)
	p.Legend.Add("observed", hist)

	expected := make(plotter.XYs, len(res.Expected))
	for i, e := range res.Expected {
		expected[i].X = res.Binning.Midpoints[i]
		expected[i].Y = e
	}
	line, points, err := plotter.NewLinePoints(expected)
	if err != nil {
		return "", fmt.Errorf("building expected curve: %w", err)
	}
	line.Color = color.RGBA{R: 200, A: 255}
	points.Color = color.RGBA{R: 200, A: 255}
	p.Add(line, points)
	p.Legend.Add("expected", line, points)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, filename); err != nil {
		return "", err
	}
	return filename, nil
}
