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

package azure

import (
	"context"
	"net/netip"
	"slices"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/inventory"
)

// Networks returns the virtual networks of the subscription, restricted to
// the configured resource group when one is set.
func (o *Options) Networks(ctx context.Context) ([]inventory.Network, error) {
	var networks []inventory.Network

	appendPage := func(page []*armnetwork.VirtualNetwork) {
		for i := range page {
			networks = append(networks, parseVirtualNetwork(page[i]))
		}
	}

	if o.resourceGroup != "" {
		pager := o.vnetClient.NewListPager(o.resourceGroup, nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed listing the virtual networks")
			}
			appendPage(page.Value)
		}
	} else {
		pager := o.vnetClient.NewListAllPager(nil)
		for pager.More() {
			page, err := pager.NextPage(ctx)
			if err != nil {
				return nil, errors.Wrap(err, "failed listing the virtual networks")
			}
			appendPage(page.Value)
		}
	}

	klog.V(4).Infof("retrieved %d virtual networks", len(networks))
	return networks, nil
}

// Network resolves a single virtual network, matching the key against the
// resource ID, the name or one of the address prefixes.
func (o *Options) Network(ctx context.Context, key string) (*inventory.Network, error) {
	if strings.HasPrefix(key, "/subscriptions/") {
		resource, err := arm.ParseResourceID(key)
		if err != nil {
			return nil, errors.Wrapf(err, "cannot parse resource ID %v", key)
		}
		return o.networkByName(ctx, resource.ResourceGroupName, resource.Name)
	}

	if o.resourceGroup != "" && !strings.Contains(key, "/") {
		return o.networkByName(ctx, o.resourceGroup, key)
	}

	networks, err := o.Networks(ctx)
	if err != nil {
		return nil, err
	}

	var matches []inventory.Network
	for i := range networks {
		if networks[i].Name == key || slices.Contains(networks[i].CIDRs, key) {
			matches = append(matches, networks[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.Errorf("no virtual network found matching %q", key)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.Errorf("multiple virtual networks found matching %q", key)
	}
}

// Allocations returns the subnets of the given virtual network.
func (o *Options) Allocations(ctx context.Context, networkID string) ([]inventory.Allocation, error) {
	resource, err := arm.ParseResourceID(networkID)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot parse resource ID %v", networkID)
	}

	resp, err := o.vnetClient.Get(ctx, resource.ResourceGroupName, resource.Name, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed retrieving the virtual network %v", resource.Name)
	}

	allocations := parseSubnets(&resp.VirtualNetwork)
	klog.V(4).Infof("retrieved %d subnets from virtual network %s", len(allocations), resource.Name)
	return allocations, nil
}

func (o *Options) networkByName(ctx context.Context, resourceGroup, name string) (*inventory.Network, error) {
	resp, err := o.vnetClient.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed retrieving the virtual network %v", name)
	}

	network := parseVirtualNetwork(&resp.VirtualNetwork)
	return &network, nil
}

func parseVirtualNetwork(vnet *armnetwork.VirtualNetwork) inventory.Network {
	network := inventory.Network{Provider: providerName}
	if vnet.ID != nil {
		network.ID = *vnet.ID
	}
	if vnet.Name != nil {
		network.Name = *vnet.Name
	}

	if vnet.Properties == nil || vnet.Properties.AddressSpace == nil {
		return network
	}

	// Dual stack virtual networks mix IPv6 prefixes in, which do not
	// concern the scan.
	for _, prefix := range vnet.Properties.AddressSpace.AddressPrefixes {
		if prefix != nil && isIPv4Block(*prefix) {
			network.CIDRs = append(network.CIDRs, *prefix)
		}
	}

	return network
}

func parseSubnets(vnet *armnetwork.VirtualNetwork) []inventory.Allocation {
	if vnet.Properties == nil {
		return nil
	}

	var allocations []inventory.Allocation
	for _, subnet := range vnet.Properties.Subnets {
		if subnet == nil {
			continue
		}

		var name string
		if subnet.Name != nil {
			name = *subnet.Name
		}

		for _, prefix := range subnetPrefixes(subnet) {
			if !isIPv4Block(prefix) {
				continue
			}
			allocations = append(allocations, inventory.Allocation{CIDR: prefix, Name: name})
		}
	}

	return allocations
}

// subnetPrefixes returns the address prefixes of a subnet, which the API
// exposes either as a single prefix or as a list.
func subnetPrefixes(subnet *armnetwork.Subnet) []string {
	if subnet.Properties == nil {
		return nil
	}

	if len(subnet.Properties.AddressPrefixes) > 0 {
		var prefixes []string
		for _, prefix := range subnet.Properties.AddressPrefixes {
			if prefix != nil {
				prefixes = append(prefixes, *prefix)
			}
		}
		return prefixes
	}

	if subnet.Properties.AddressPrefix != nil {
		return []string{*subnet.Properties.AddressPrefix}
	}

	return nil
}

func isIPv4Block(text string) bool {
	prefix, err := netip.ParsePrefix(text)
	return err == nil && prefix.Addr().Is4()
}
