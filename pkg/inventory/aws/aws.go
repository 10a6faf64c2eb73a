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

// Package aws implements the inventory provider reading VPCs and subnets
// from the EC2 API.
package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/spf13/cobra"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/scan"
)

const providerName = "aws"

var _ inventory.Provider = (*Options)(nil)

// Options encapsulates the arguments of the aws subcommand.
type Options struct {
	*scan.Options

	region      string
	profile     string
	endpointURL string

	ec2Svc *ec2.EC2
}

// New initializes a new aws provider.
func New(o *scan.Options) *Options {
	return &Options{Options: o}
}

// Name returns the name of the provider.
func (o *Options) Name() string { return providerName }

// Examples returns the examples string for the given provider.
func (o *Options) Examples() string {
	return `Examples:
  $ {{ .Executable }} aws --region eu-west-1
or
  $ {{ .Executable }} aws --region eu-west-1 --network vpc-0123456789abcdef0
or
  $ {{ .Executable }} aws --region eu-west-1 --all --reserve 10.0.0.0/28=dns
`
}

// RegisterFlags registers the flags for the given provider.
func (o *Options) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.region, "region", "", "The AWS region the VPCs live in (defaults to the shared configuration)")
	cmd.Flags().StringVar(&o.profile, "profile", "", "The AWS shared configuration profile to use")
	cmd.Flags().StringVar(&o.endpointURL, "endpoint-url", "", "Override the EC2 API endpoint (e.g., for local test stacks)")
}

// Initialize creates the EC2 client based on the flags, the configuration
// file and the standard AWS credential resolution chain.
func (o *Options) Initialize(_ context.Context) error {
	if o.region == "" {
		o.region = o.Config.AWS.Region
	}
	if o.profile == "" {
		o.profile = o.Config.AWS.Profile
	}
	if o.endpointURL == "" {
		o.endpointURL = o.Config.AWS.EndpointURL
	}

	o.Printer.Verbosef("AWS region: %q", o.region)
	o.Printer.Verbosef("AWS profile: %q", o.profile)

	sess, err := session.NewSessionWithOptions(session.Options{
		Profile:           o.profile,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return fmt.Errorf("failed connecting to the AWS APIs: %w", err)
	}

	cfg := aws.NewConfig()
	if o.region != "" {
		cfg = cfg.WithRegion(o.region)
	}
	if o.endpointURL != "" {
		cfg = cfg.WithEndpoint(o.endpointURL)
	}
	o.ec2Svc = ec2.New(sess, cfg)

	return nil
}
