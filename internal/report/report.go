/*
* Test report rendering module
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
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gilah-EnE/pearson_chisq/internal/pearson"
)

const (
	RejectedMessage = "The null hypothesis H0 was rejected, there are no grounds to assume " +
		"that the sample comes from a normal distribution."
	NotRejectedMessage = "The null hypothesis H0 cannot be rejected, there are grounds to assume " +
		"that the sample comes from a normal distribution."
)

// Report is one evaluation prepared for display or export.
type Report struct {
	ID        string          `json:"id"`
	CreatedAt time.Time       `json:"created_at"`
	Source    string          `json:"source"`
	Result    *pearson.Result `json:"result"`
}

func New(source string, res *pearson.Result) *Report {
	return &Report{
		ID:        uuid.NewString(),
		CreatedAt: time.Now(),
		Source:    source,
		Result:    res,
	}
}

func Verdict(res *pearson.Result) string {
	if res.Reject {
		return RejectedMessage
	}
	return NotRejectedMessage
}

// Render writes the verdict followed by the intermediate results.
func Render(w io.Writer, res *pearson.Result) error {
	d := res.Description
	b := res.Binning

	var sb strings.Builder
	sb.WriteString(Verdict(res))
	sb.WriteString("\n\n=== Intermediate results ===\n")
	fmt.Fprintf(&sb, "Sample size: %d\n", d.Size)
	fmt.Fprintf(&sb, "Number of intervals: %d\n", res.Params.Intervals)
	fmt.Fprintf(&sb, "Significance level: %s\n", strconv.FormatFloat(res.Params.Alpha, 'f', -1, 64))
	fmt.Fprintf(&sb, "Sample mean: %.6f\n", d.Mean)
	fmt.Fprintf(&sb, "Variance: %.6f\n", d.Variance)
	fmt.Fprintf(&sb, "Sample standard deviation: %.6f\n", d.StdDev)
	fmt.Fprintf(&sb, "Unbiased standard deviation estimate: %.6f\n", d.StdDevCorr)
	fmt.Fprintf(&sb, "Interval bounds: %s\n", joinFloats(b.Edges))
	fmt.Fprintf(&sb, "Observed frequencies: %s\n", joinInts(b.Counts))
	fmt.Fprintf(&sb, "Expected frequencies: %s\n", joinFloats(res.Expected))
	fmt.Fprintf(&sb, "Interval width: %.6f\n", b.Width)
	fmt.Fprintf(&sb, "Fitted normal (binned): mean %.6f, standard deviation %.6f\n", res.Fitted.Mean, res.Fitted.StdDev)
	fmt.Fprintf(&sb, "Degrees of freedom: %d\n", res.DegreesOfFreedom)
	fmt.Fprintf(&sb, "Observed chi-squared: %.6f\n", res.Statistic)
	fmt.Fprintf(&sb, "Critical chi-squared: %.6f", res.CriticalValue)

	if ks := res.KS; ks != nil {
		fmt.Fprintf(&sb, "\n\n=== Kolmogorov distance (reference only) ===\n")
		fmt.Fprintf(&sb, "Maximum deviation: %.6f at order statistic %d\n", ks.Statistic, ks.MaxDiffPosition+1)
		fmt.Fprintf(&sb, "Reference value 0.05: %.6f\n", ks.CriticalValue005)
		fmt.Fprintf(&sb, "Reference value 0.01: %.6f", ks.CriticalValue001)
	}
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

func (r *Report) WriteText(w io.Writer) error {
	header := fmt.Sprintf("Run: %s\nDate: %s\nSample: %s\n\n", r.ID, r.CreatedAt.Format(time.RFC3339), r.Source)
	if _, err := io.WriteString(w, header); err != nil {
		return err
	}
	return Render(w, r.Result)
}

func (r *Report) String() string {
	var sb strings.Builder
	_ = r.WriteText(&sb)
	return sb.String()
}

func joinFloats(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.3f", v)
	}
	return strings.Join(parts, ", ")
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ", ")
}
