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

// Package azure implements the inventory provider reading virtual networks
// and subnets from the Azure Resource Manager API.
package azure

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/scan"
)

const providerName = "azure"

var _ inventory.Provider = (*Options)(nil)

// Options encapsulates the arguments of the azure subcommand.
type Options struct {
	*scan.Options

	subscriptionID string
	resourceGroup  string

	vnetClient *armnetwork.VirtualNetworksClient
}

// New initializes a new azure provider.
func New(o *scan.Options) *Options {
	return &Options{Options: o}
}

// Name returns the name of the provider.
func (o *Options) Name() string { return providerName }

// Examples returns the examples string for the given provider.
func (o *Options) Examples() string {
	return `Examples:
  $ {{ .Executable }} azure --subscription-id 00000000-0000-0000-0000-000000000000
or
  $ {{ .Executable }} azure --subscription-id 00000000-0000-0000-0000-000000000000 \
      --resource-group production --network backbone
`
}

// RegisterFlags registers the flags for the given provider.
func (o *Options) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.subscriptionID, "subscription-id", "", "The ID of the Azure subscription holding the virtual networks")
	cmd.Flags().StringVar(&o.resourceGroup, "resource-group", "", "Restrict the scan to the given resource group (optional)")
}

// Initialize creates the virtual networks client, authenticating through
// the default Azure credential chain.
func (o *Options) Initialize(_ context.Context) error {
	if o.subscriptionID == "" {
		o.subscriptionID = o.Config.Azure.SubscriptionID
	}
	if o.resourceGroup == "" {
		o.resourceGroup = o.Config.Azure.ResourceGroup
	}

	if o.subscriptionID == "" {
		return errors.New("the Azure subscription ID is required (--subscription-id)")
	}

	klog.V(3).Infof("Azure SubscriptionID: %v", o.subscriptionID)
	klog.V(3).Infof("Azure ResourceGroup: %v", o.resourceGroup)

	cred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return errors.Wrap(err, "failed retrieving the Azure credentials")
	}

	o.vnetClient, err = armnetwork.NewVirtualNetworksClient(o.subscriptionID, cred, nil)
	return errors.Wrap(err, "failed creating the virtual networks client")
}
