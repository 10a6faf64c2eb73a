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

	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/version"
)

func newVersionCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	options := version.Options{Factory: f}
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the vpcfree version",
		Long:  "Print the vpcfree version.",
		Args:  cobra.NoArgs,

		RunE: func(_ *cobra.Command, _ []string) error {
			return options.Run(ctx)
		},
	}
	return cmd
}
