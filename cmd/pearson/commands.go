/*
* Command line commands
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

package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Gilah-EnE/pearson_chisq/internal/config"
	"github.com/Gilah-EnE/pearson_chisq/internal/pearson"
	"github.com/Gilah-EnE/pearson_chisq/internal/report"
	"github.com/Gilah-EnE/pearson_chisq/internal/sample"
)

// Exit codes of the test command.
const (
	ExitNotRejected = 0
	ExitRejected    = 1
	ExitError       = 2
)

type testOptions struct {
	configPath string
	intervals  int
	alpha      float64
	reportPath string
	jsonPath   string
	plotPath   string
	noLog      bool
}

// execute runs the CLI and maps the outcome to an exit code.
func execute(args []string, stdout io.Writer) (int, error) {
	code := ExitNotRejected
	root := newRootCmd(stdout, &code)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return ExitError, err
	}
	return code, nil
}

func newRootCmd(stdout io.Writer, code *int) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pearson",
		Short: "Pearson chi-squared normality test for one-dimensional samples",
		Long: `pearson reads a text file with one value per line (decimal point or
comma) and tests whether the sample is consistent with a normal
distribution using Pearson's chi-squared goodness-of-fit statistic.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.AddCommand(newTestCmd(stdout, code), newDescribeCmd(stdout))
	return rootCmd
}

func newTestCmd(stdout io.Writer, code *int) *cobra.Command {
	opts := &testOptions{}
	cmd := &cobra.Command{
		Use:   "test [sample file]",
		Short: "Run the chi-squared goodness-of-fit test against a normal distribution",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rejected, err := runTest(cmd, args[0], opts, stdout)
			if err != nil {
				return err
			}
			if rejected {
				*code = ExitRejected
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.configPath, "config", config.DefaultFileName, "YAML config with default intervals and alpha")
	cmd.Flags().IntVarP(&opts.intervals, "intervals", "n", 0, "number of equal-width intervals (>= 4)")
	cmd.Flags().Float64VarP(&opts.alpha, "alpha", "a", 0, "significance level in (0, 1)")
	cmd.Flags().StringVar(&opts.reportPath, "report", "", "save the text report (.txt is appended if missing)")
	cmd.Flags().StringVar(&opts.jsonPath, "json", "", "save the report as JSON")
	cmd.Flags().StringVar(&opts.plotPath, "plot", "", "save a histogram PNG")
	cmd.Flags().BoolVar(&opts.noLog, "no-log", false, "do not append to the run log")
	return cmd
}

func runTest(cmd *cobra.Command, fileName string, opts *testOptions, stdout io.Writer) (bool, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return false, err
	}
	params := cfg.Params()
	if cmd.Flags().Changed("intervals") {
		params.Intervals = opts.intervals
	}
	if cmd.Flags().Changed("alpha") {
		params.Alpha = opts.alpha
	}

	s, err := sample.Load(fileName)
	if err != nil {
		return false, describeError(err)
	}

	res, err := pearson.Evaluate(s, params)
	if err != nil {
		return false, describeError(err)
	}
	rep := report.New(fileName, res)

	if !opts.noLog {
		if err := appendRunLog(cfg.LogPath(fileName), rep); err != nil {
			log.Printf("Could not write run log: %v", err)
		}
	}

	if err := printResult(stdout, rep); err != nil {
		return false, err
	}

	if opts.reportPath != "" {
		path, err := rep.ExportText(opts.reportPath)
		if err != nil {
			return false, fmt.Errorf("saving report: %w", err)
		}
		fmt.Fprintf(stdout, "Report saved to %s\n", path)
	}
	if opts.jsonPath != "" {
		path, err := rep.ExportJSON(opts.jsonPath)
		if err != nil {
			return false, fmt.Errorf("saving JSON report: %w", err)
		}
		fmt.Fprintf(stdout, "JSON report saved to %s\n", path)
	}
	if opts.plotPath != "" {
		path, err := report.SaveHistogram(opts.plotPath, filepath.Base(fileName), s, res)
		if err != nil {
			return false, fmt.Errorf("saving histogram: %w", err)
		}
		fmt.Fprintf(stdout, "Histogram saved to %s\n", path)
	}

	return res.Reject, nil
}

func newDescribeCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "describe [sample file]",
		Short: "Print descriptive statistics of the raw sample",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sample.Load(args[0])
			if err != nil {
				return describeError(err)
			}
			d, err := pearson.Describe(s)
			if err != nil {
				return describeError(err)
			}
			fmt.Fprintf(stdout, "Sample size: %d\n", d.Size)
			fmt.Fprintf(stdout, "Minimum: %.6f\n", d.Min)
			fmt.Fprintf(stdout, "Maximum: %.6f\n", d.Max)
			fmt.Fprintf(stdout, "Sample mean: %.6f\n", d.Mean)
			fmt.Fprintf(stdout, "Variance: %.6f\n", d.Variance)
			fmt.Fprintf(stdout, "Sample standard deviation: %.6f\n", d.StdDev)
			fmt.Fprintf(stdout, "Unbiased standard deviation estimate: %.6f\n", d.StdDevCorr)
			return nil
		},
	}
}

// describeError adds the user-facing explanation to the evaluator errors.
func describeError(err error) error {
	switch {
	case errors.Is(err, sample.ErrBadInput):
		return fmt.Errorf("expected a text file with one valid real number per line: %w", err)
	case errors.Is(err, pearson.ErrInvalidParameters):
		return fmt.Errorf("the number of intervals must be at least %d and the significance level in (0, 1): %w",
			pearson.MinIntervals, err)
	case errors.Is(err, pearson.ErrDegenerateSample):
		return fmt.Errorf("the sample cannot be fitted with a normal distribution: %w", err)
	}
	return err
}

func appendRunLog(logFile string, rep *report.Report) error {
	logFileHandle, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}
	defer func(logFileHandle *os.File) {
		if err := logFileHandle.Close(); err != nil {
			log.Printf("Could not close run log: %v", err)
		}
	}(logFileHandle)

	runLogger := log.New(logFileHandle, "", log.LstdFlags)
	runLogger.Printf("Run %s, sample %s, intervals %d, alpha %g", rep.ID, rep.Source, rep.Result.Params.Intervals, rep.Result.Params.Alpha)
	runLogger.Printf("Observed chi-squared %f, critical %f, rejected %v", rep.Result.Statistic, rep.Result.CriticalValue, rep.Result.Reject)
	return nil
}
