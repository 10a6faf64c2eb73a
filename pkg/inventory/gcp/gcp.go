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

// Package gcp implements the inventory provider reading networks and
// subnetworks from the GCP compute API.
package gcp

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"google.golang.org/api/compute/v1"
	"google.golang.org/api/option"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/scan"
)

const providerName = "gcp"

var _ inventory.Provider = (*Options)(nil)

// Options encapsulates the arguments of the gcp subcommand.
type Options struct {
	*scan.Options

	projectID       string
	credentialsPath string

	computeSvc *compute.Service
}

// New initializes a new gcp provider.
func New(o *scan.Options) *Options {
	return &Options{Options: o}
}

// Name returns the name of the provider.
func (o *Options) Name() string { return providerName }

// Examples returns the examples string for the given provider.
func (o *Options) Examples() string {
	return `Examples:
  $ {{ .Executable }} gcp --project-id my-project
or
  $ {{ .Executable }} gcp --project-id my-project --credentials-path ~/credentials.json --network backbone
`
}

// RegisterFlags registers the flags for the given provider.
func (o *Options) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.projectID, "project-id", "", "The ID of the GCP project holding the networks")
	cmd.Flags().StringVar(&o.credentialsPath, "credentials-path", "", "Path to the GCP credentials JSON file, "+
		"see https://cloud.google.com/docs/authentication/production#create_service_account for further details")
}

// Initialize creates the compute service, authenticating through the given
// credentials file, or through the application default credentials when no
// file is set.
func (o *Options) Initialize(ctx context.Context) error {
	if o.projectID == "" {
		o.projectID = o.Config.GCP.Project
	}
	if o.credentialsPath == "" {
		o.credentialsPath = o.Config.GCP.CredentialsPath
	}

	if o.projectID == "" {
		return errors.New("the GCP project ID is required (--project-id)")
	}

	klog.V(3).Infof("GCP ProjectID: %v", o.projectID)
	klog.V(3).Infof("GCP Credentials Path: %v", o.credentialsPath)

	var opts []option.ClientOption
	if o.credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(o.credentialsPath))
	}

	svc, err := compute.NewService(ctx, opts...)
	if err != nil {
		return errors.Wrap(err, "failed connecting to the GCP APIs")
	}

	o.computeSvc = svc
	return nil
}
