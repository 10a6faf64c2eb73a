// Copyright 2024-2025 The VpcFree Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the optional vpcfree configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the name of the configuration file looked up in the
// user home directory when no explicit path is given.
const DefaultFileName = ".vpcfree.yaml"

// Config mirrors the YAML configuration file. All fields are optional and
// provide defaults only: command line flags take precedence.
type Config struct {
	Output  string `yaml:"output"`
	NoColor bool   `yaml:"no-color"`

	AWS struct {
		Region      string `yaml:"region"`
		Profile     string `yaml:"profile"`
		EndpointURL string `yaml:"endpoint-url"`
	} `yaml:"aws"`

	Azure struct {
		SubscriptionID string `yaml:"subscription-id"`
		ResourceGroup  string `yaml:"resource-group"`
	} `yaml:"azure"`

	GCP struct {
		Project         string `yaml:"project"`
		CredentialsPath string `yaml:"credentials-path"`
	} `yaml:"gcp"`
}

// Load reads and decodes the YAML configuration at the given path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("malformed configuration file %s: %w", path, err)
	}
	return &cfg, nil
}

// DefaultPath returns the location of the configuration file in the user
// home directory.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultFileName), nil
}
