/*
* Configuration module tests
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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), DefaultFileName))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10, cfg.Intervals)
	assert.Equal(t, 0.05, cfg.Alpha)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("intervals: 8\nlog_file: /tmp/run.log\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Intervals)
	assert.Equal(t, 0.05, cfg.Alpha)
	assert.Equal(t, "/tmp/run.log", cfg.LogPath("data/sample.txt"))
	assert.Equal(t, 8, cfg.Params().Intervals)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "too few intervals", content: "intervals: 3\n"},
		{name: "alpha above one", content: "alpha: 1.5\n"},
		{name: "alpha zero", content: "alpha: 0\n"},
		{name: "malformed", content: "intervals: [\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), DefaultFileName)
			require.NoError(t, os.WriteFile(path, []byte(test.content), 0644))
			cfg, err := Load(path)
			assert.Error(t, err)
			assert.Equal(t, Default(), cfg)
		})
	}
}

func TestLogPath(t *testing.T) {
	cfg := Default()
	assert.Equal(t, filepath.Join("data", "sample.pearsonlog"), cfg.LogPath(filepath.Join("data", "sample.txt")))
	assert.Equal(t, "values.pearsonlog", cfg.LogPath("values"))
}
