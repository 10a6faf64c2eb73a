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

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/utils/args"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/scan"
)

const cidrLongHelp = `Partition an address block given on the command line.

The parent block and the taken sub-ranges are passed as arguments, with an
optional label attached to each taken range. The command prints the gapless
partition of the parent into taken and free ranges, suggesting for every
free range the largest aligned CIDR block that fits it.

Examples:
  $ {{ .Executable }} cidr 10.0.0.0/24 10.0.0.64/26=workers 10.0.0.192/26
or
  $ {{ .Executable }} cidr 172.16.0.0/16 172.16.0.0/24=gateway --reserve 172.16.255.0/24=dns
`

func newCidrCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := scan.New(f)

	cmd := &cobra.Command{
		Use:   "cidr parent [taken[=label] ...]",
		Short: "Partition an address block given on the command line",
		Long:  WithTemplate(cidrLongHelp),
		Args:  cobra.MinimumNArgs(1),

		RunE: func(_ *cobra.Command, cmdargs []string) error {
			var taken args.LabeledCIDRList
			for _, arg := range cmdargs[1:] {
				if err := taken.Set(arg); err != nil {
					return err
				}
			}

			options.All = true
			return options.Run(ctx, inventory.NewStatic(cmdargs[0], taken.List))
		},
	}

	cmd.Flags().Var(&options.Reserve, "reserve", "Mark additional blocks as taken, with an optional label (e.g. 10.0.0.0/28=dns)")
	return cmd
}
