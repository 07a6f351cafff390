/*
* Evaluation run module
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
	"log"
	"os"

	"github.com/Gilah-EnE/pearson_chisq/internal/pearson"
	"github.com/Gilah-EnE/pearson_chisq/internal/report"
	"github.com/Gilah-EnE/pearson_chisq/internal/sample"
)

// evaluateFile loads the sample, runs the test and appends the run to
// logFile. A log file that cannot be opened does not fail the run.
func evaluateFile(fileName string, params pearson.Params, logFile string) (*report.Report, sample.Sample, error) {
	fileNormalLogger, closeLog := openRunLog(logFile)
	defer closeLog()

	fileNormalLogger.Printf("Sample %s, intervals %d, significance level %g", fileName, params.Intervals, params.Alpha)

	s, err := sample.Load(fileName)
	if err != nil {
		fileNormalLogger.Printf("Loading failed: %v", err)
		return nil, nil, err
	}

	res, err := pearson.Evaluate(s, params)
	if err != nil {
		fileNormalLogger.Printf("Evaluation failed: %v", err)
		return nil, nil, err
	}

	rep := report.New(fileName, res)
	fileNormalLogger.Printf("Run %s: %d values, observed chi-squared %f, critical %f, rejected %v",
		rep.ID, len(s), res.Statistic, res.CriticalValue, res.Reject)
	return rep, s, nil
}

func openRunLog(logFile string) (*log.Logger, func()) {
	logFileHandle, logOpenErr := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if logOpenErr != nil {
		log.Printf("Could not open the run log: %s", logOpenErr)
		return log.New(os.Stderr, "", log.LstdFlags), func() {}
	}
	return log.New(logFileHandle, "", log.LstdFlags), func() {
		if logCloseErr := logFileHandle.Close(); logCloseErr != nil {
			log.Printf("Could not close the run log: %s", logCloseErr)
		}
	}
}
