/*
* Command line output styling
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
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/Gilah-EnE/pearson_chisq/internal/report"
)

var (
	rejectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	notRejectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
)

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printResult writes the rendered report, colouring the verdict line when
// w is a terminal.
func printResult(w io.Writer, rep *report.Report) error {
	var sb strings.Builder
	if err := report.Render(&sb, rep.Result); err != nil {
		return err
	}
	text := sb.String()

	if isTerminal(w) {
		verdict := report.Verdict(rep.Result)
		style := notRejectedStyle
		if rep.Result.Reject {
			style = rejectedStyle
		}
		text = strings.Replace(text, verdict, style.Render(verdict), 1)
	}

	_, err := io.WriteString(w, text)
	return err
}
