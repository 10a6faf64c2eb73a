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

// Package factory holds the objects and configurations shared by all the
// vpcfree subcommands.
package factory

import (
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vpcfree/vpcfree/pkg/vpcfree/config"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/output"
)

// Output format identifiers accepted by the --output flag.
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

// Factory provides the printer and the configuration shared by all the
// subcommands. Factory ensures that its fields are populated and valid
// during command execution.
type Factory struct {
	// Printer is the object used to output messages in the appropriate format.
	Printer *output.Printer

	// Config holds the values loaded from the optional configuration file.
	Config *config.Config

	// Output selects the report rendering format.
	Output string

	// NoColor disables the colored output.
	NoColor bool

	// ConfigPath overrides the default configuration file location.
	ConfigPath string

	verbose bool
}

// New returns a new uninitialized Factory.
func New() *Factory {
	return &Factory{}
}

// AddFlags registers the factory flags.
func (f *Factory) AddFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&f.Output, "output", "o", OutputTable,
		fmt.Sprintf("The report rendering format (%s, %s)", OutputTable, OutputJSON))
	flags.BoolVar(&f.NoColor, "no-color", false, "Disable colored output")
	flags.StringVar(&f.ConfigPath, "config", "", "Path of the configuration file (default $HOME/"+config.DefaultFileName+")")
	flags.BoolVar(&f.verbose, "verbose", false, "Enable verbose logs (default false)")
}

// Initialize loads the configuration file, reconciles it with the flags and
// populates the factory fields.
func (f *Factory) Initialize(cmd *cobra.Command) error {
	if err := f.loadConfig(); err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("output") && f.Config.Output != "" {
		f.Output = f.Config.Output
	}
	if !flags.Changed("no-color") && f.Config.NoColor {
		f.NoColor = true
	}

	if f.Output != OutputTable && f.Output != OutputJSON {
		return fmt.Errorf("invalid output format %q (allowed: %s, %s)", f.Output, OutputTable, OutputJSON)
	}

	if f.NoColor {
		pterm.DisableStyling()
	}

	f.Printer = output.NewPrinter(f.verbose)
	return nil
}

func (f *Factory) loadConfig() error {
	if f.ConfigPath != "" {
		cfg, err := config.Load(f.ConfigPath)
		if err != nil {
			return err
		}
		f.Config = cfg
		return nil
	}

	path, err := config.DefaultPath()
	if err != nil {
		// No resolvable home directory: run with the built-in defaults.
		f.Config = &config.Config{}
		return nil
	}

	cfg, err := config.Load(path)
	switch {
	case os.IsNotExist(err):
		f.Config = &config.Config{}
		return nil
	case err != nil:
		return err
	}

	f.Config = cfg
	return nil
}
