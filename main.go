/*
* Main GUI application file
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
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mappu/miqt/qt"

	"github.com/Gilah-EnE/pearson_chisq/internal/config"
	"github.com/Gilah-EnE/pearson_chisq/internal/pearson"
	"github.com/Gilah-EnE/pearson_chisq/internal/report"
	"github.com/Gilah-EnE/pearson_chisq/internal/sample"
)

const placeholderText = "The test result will be displayed here."

func main() {
	cfg, err := config.Load(config.DefaultFileName)
	if err != nil {
		log.Printf("Using default settings: %v", err)
	}

	qt.NewQApplication(os.Args)
	window := qt.NewQMainWindow(nil)
	window.SetWindowTitle("Pearson chi-squared test")
	window.SetMinimumSize2(800, 400)

	widget := qt.NewQWidget(nil)
	mainLayout := qt.NewQVBoxLayout(widget)
	controlsLayout := qt.NewQGridLayout(widget)

	// Sample file picker
	fileNameTextField := qt.NewQLineEdit(widget)
	fileNameTextField.SetPlaceholderText("Path to a text file with one value per line")
	filePickerButton := qt.NewQPushButton4(qt.QIcon_FromTheme("document-open"), "Choose file")

	filePickerButton.OnClicked(func() {
		fileDialog := qt.NewQFileDialog4(widget, "Choose a sample file")
		fileDialog.SetFileMode(qt.QFileDialog__ExistingFile)
		fileDialog.SetNameFilter("Line separated values (*.txt);;All files (*)")

		if fileDialog.Exec() == int(qt.QDialog__Accepted) {
			selectedFile := fileDialog.SelectedFiles()
			if len(selectedFile) > 0 {
				fileNameTextField.SetText(selectedFile[0])
			}
		}
	})

	// Test parameters
	intervalsInput := qt.NewQSpinBox(widget)
	intervalsInput.SetRange(pearson.MinIntervals, 1000)
	intervalsInput.SetSingleStep(1)
	intervalsInput.SetValue(cfg.Intervals)

	alphaInput := qt.NewQDoubleSpinBox(widget)
	alphaInput.SetDecimals(3)
	alphaInput.SetRange(0, 1)
	alphaInput.SetSingleStep(0.01)
	alphaInput.SetValue(cfg.Alpha)

	startButton := qt.NewQPushButton4(qt.QIcon_FromTheme("media-playback-start"), "Load sample and evaluate")
	exportButton := qt.NewQPushButton4(qt.QIcon_FromTheme("document-save"), "Save report")
	plotButton := qt.NewQPushButton4(qt.QIcon_FromTheme("document-save-as"), "Save histogram")

	controlsLayout.AddWidget2(fileNameTextField.QWidget, 0, 0)
	controlsLayout.AddWidget2(filePickerButton.QWidget, 0, 1)
	controlsLayout.AddWidget2(qt.NewQLabel3("Number of intervals:").QWidget, 1, 0)
	controlsLayout.AddWidget2(intervalsInput.QWidget, 1, 1)
	controlsLayout.AddWidget2(qt.NewQLabel3("Significance level:").QWidget, 2, 0)
	controlsLayout.AddWidget2(alphaInput.QWidget, 2, 1)
	controlsLayout.AddWidget2(startButton.QWidget, 3, 0)
	controlsLayout.AddWidget2(exportButton.QWidget, 3, 1)
	controlsLayout.AddWidget2(plotButton.QWidget, 4, 1)
	mainLayout.AddLayout(controlsLayout.QLayout)

	// Result window (read-only)
	output := qt.NewQTextEdit4(placeholderText, widget)
	output.SetReadOnly(true)
	output.SetFont(qt.NewQFont2("monospace"))
	mainLayout.AddWidget(output.QWidget)

	showError := func(message string) {
		errorWindow := qt.NewQErrorMessage(widget)
		errorWindow.ShowMessage(message)
	}

	var lastReport *report.Report
	var lastSample sample.Sample

	resetOutput := func() {
		lastReport = nil
		lastSample = nil
		output.SetPlainText(placeholderText)
	}

	startButton.OnClicked(func() {
		fileName := fileNameTextField.Text()
		if fileName == "" {
			showError("The path to the sample file is empty.")
			return
		}

		params := pearson.Params{Intervals: intervalsInput.Value(), Alpha: alphaInput.Value()}
		rep, s, err := evaluateFile(fileName, params, cfg.LogPath(fileName))
		if err != nil {
			resetOutput()
			showError(errorMessage(err))
			return
		}
		lastReport, lastSample = rep, s

		var text strings.Builder
		if err := report.Render(&text, rep.Result); err != nil {
			showError(err.Error())
			return
		}
		output.Clear()
		output.Append(text.String())
	})

	exportButton.OnClicked(func() {
		if lastReport == nil {
			showError("Run the test before saving a report.")
			return
		}
		fileName, ok := saveFileDialog(widget, "Save report", "Text file (*.txt)")
		if !ok {
			return
		}
		path, err := lastReport.ExportText(fileName)
		if err != nil {
			showError(fmt.Sprintf("Could not save the report: %v", err))
			return
		}
		log.Printf("Report saved to %s", path)
	})

	plotButton.OnClicked(func() {
		if lastReport == nil {
			showError("Run the test before saving a histogram.")
			return
		}
		fileName, ok := saveFileDialog(widget, "Save histogram", "PNG image (*.png)")
		if !ok {
			return
		}
		path, err := report.SaveHistogram(fileName, filepath.Base(lastReport.Source), lastSample, lastReport.Result)
		if err != nil {
			showError(fmt.Sprintf("Could not save the histogram: %v", err))
			return
		}
		log.Printf("Histogram saved to %s", path)
	})

	// Window deployment
	window.SetCentralWidget(widget)
	window.Show()
	qt.QApplication_Exec()
}

func saveFileDialog(parent *qt.QWidget, caption, filter string) (string, bool) {
	fileDialog := qt.NewQFileDialog4(parent, caption)
	fileDialog.SetAcceptMode(qt.QFileDialog__AcceptSave)
	fileDialog.SetFileMode(qt.QFileDialog__AnyFile)
	fileDialog.SetNameFilter(filter)

	if fileDialog.Exec() != int(qt.QDialog__Accepted) {
		return "", false
	}
	selectedFile := fileDialog.SelectedFiles()
	if len(selectedFile) == 0 || selectedFile[0] == "" {
		return "", false
	}
	return selectedFile[0], true
}

func errorMessage(err error) string {
	switch {
	case errors.Is(err, sample.ErrBadInput):
		return "Expected a text file with the sample, where every element is on a separate line " +
			"and is a valid real number."
	case errors.Is(err, pearson.ErrInvalidParameters):
		return fmt.Sprintf("The number of intervals must be an integer of at least %d and the "+
			"significance level a real number strictly between 0 and 1.", pearson.MinIntervals)
	case errors.Is(err, pearson.ErrDegenerateSample):
		return "The sample cannot be fitted with a normal distribution: " + err.Error()
	}
	return err.Error()
}
