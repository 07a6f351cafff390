/*
* Test report export module
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
	"bufio"
	"encoding/json"
	"os"
	"strings"
)

const (
	TextSuffix = ".txt"
	JSONSuffix = ".json"
)

// WithSuffix appends suffix unless filename already ends with it.
func WithSuffix(filename, suffix string) string {
	if strings.HasSuffix(filename, suffix) {
		return filename
	}
	return filename + suffix
}

// ExportText writes the text report and returns the path actually used.
func (r *Report) ExportText(filename string) (string, error) {
	filename = WithSuffix(filename, TextSuffix)
	return filename, writeFile(filename, func(w *bufio.Writer) error {
		return r.WriteText(w)
	})
}

func (r *Report) ExportJSON(filename string) (string, error) {
	filename = WithSuffix(filename, JSONSuffix)
	return filename, writeFile(filename, func(w *bufio.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(r)
	})
}

func writeFile(filename string, write func(w *bufio.Writer) error) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}

	writer := bufio.NewWriter(file)
	if err := write(writer); err != nil {
		_ = file.Close()
		return err
	}
	if err := writer.Flush(); err != nil {
		_ = file.Close()
		return err
	}
	return file.Close()
}
