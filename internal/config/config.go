/*
* Configuration module
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
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/Gilah-EnE/pearson_chisq/internal/pearson"
)

const (
	DefaultFileName = "pearson.yaml"
	LogSuffix       = ".pearsonlog"
)

var configValidate = validator.New()

type Config struct {
	Intervals int     `yaml:"intervals" validate:"gte=4,lte=1000"`
	Alpha     float64 `yaml:"alpha" validate:"gt=0,lt=1"`
	// LogFile is the run log. Empty means <sample>.pearsonlog next to the
	// evaluated file.
	LogFile string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Intervals: pearson.DefaultIntervals,
		Alpha:     pearson.DefaultAlpha,
	}
}

// Load reads a YAML config on top of the defaults. A missing file is not an
// error.
func Load(path string) (Config, error) {
	cfg := Default()

	yamlFile, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(yamlFile, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	return configValidate.Struct(c)
}

func (c Config) Params() pearson.Params {
	return pearson.Params{Intervals: c.Intervals, Alpha: c.Alpha}
}

// LogPath is where runs on sampleFile are logged.
func (c Config) LogPath(sampleFile string) string {
	if c.LogFile != "" {
		return c.LogFile
	}
	ext := filepath.Ext(sampleFile)
	return strings.TrimSuffix(sampleFile, ext) + LogSuffix
}
