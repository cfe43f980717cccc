/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package main

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the defaults cmd/qrencode falls back to when a flag isn't
// given explicitly on the command line.
type Config struct {
	ECLevel   string `yaml:"ec_level"`
	OutputDir string `yaml:"output_dir"`
	Border    int    `yaml:"border"`
	LogLevel  string `yaml:"loglevel"`
}

func defaults() *Config {
	return &Config{
		ECLevel:   "M",
		OutputDir: ".",
		Border:    4,
		LogLevel:  "warn",
	}
}

// LoadConfig reads a YAML config file at path, falling back to defaults()
// for any field the file omits. A missing file is not an error: it just
// means every default applies.
func LoadConfig(path string) (*Config, error) {
	cfg := defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
