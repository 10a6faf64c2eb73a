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

package gcp

import (
	"context"
	"fmt"
	"net/netip"
	"slices"
	"strings"

	"github.com/pkg/errors"
	"google.golang.org/api/compute/v1"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/inventory"
)

// Networks returns the networks of the project.
func (o *Options) Networks(ctx context.Context) ([]inventory.Network, error) {
	var networks []inventory.Network

	err := o.computeSvc.Networks.List(o.projectID).Pages(ctx, func(page *compute.NetworkList) error {
		for _, network := range page.Items {
			networks = append(networks, parseNetwork(network))
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed listing the networks")
	}

	klog.V(4).Infof("retrieved %d networks", len(networks))
	return networks, nil
}

// Network resolves a single network, matching the key against the self
// link, the name or the address range of legacy networks.
func (o *Options) Network(ctx context.Context, key string) (*inventory.Network, error) {
	if _, err := netip.ParsePrefix(key); err == nil {
		return o.networkByCIDR(ctx, key)
	}
	return o.networkByName(ctx, resourceName(key))
}

// Allocations returns the subnetwork ranges of the given network, secondary
// ranges included.
func (o *Options) Allocations(ctx context.Context, networkID string) ([]inventory.Allocation, error) {
	var allocations []inventory.Allocation

	err := o.computeSvc.Subnetworks.AggregatedList(o.projectID).Pages(ctx, func(page *compute.SubnetworkAggregatedList) error {
		for _, scoped := range page.Items {
			allocations = append(allocations, parseSubnetworks(scoped.Subnetworks, networkID)...)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed listing the subnetworks")
	}

	klog.V(4).Infof("retrieved %d subnet ranges from network %s", len(allocations), resourceName(networkID))
	return allocations, nil
}

func (o *Options) networkByName(ctx context.Context, name string) (*inventory.Network, error) {
	network, err := o.computeSvc.Networks.Get(o.projectID, name).Context(ctx).Do()
	if err != nil {
		return nil, errors.Wrapf(err, "failed retrieving the network %v", name)
	}

	parsed := parseNetwork(network)
	return &parsed, nil
}

func (o *Options) networkByCIDR(ctx context.Context, cidr string) (*inventory.Network, error) {
	networks, err := o.Networks(ctx)
	if err != nil {
		return nil, err
	}

	var matches []inventory.Network
	for i := range networks {
		if slices.Contains(networks[i].CIDRs, cidr) {
			matches = append(matches, networks[i])
		}
	}

	switch len(matches) {
	case 0:
		return nil, errors.Errorf("no network found matching %q", cidr)
	case 1:
		return &matches[0], nil
	default:
		return nil, errors.Errorf("multiple networks found matching %q", cidr)
	}
}

func parseNetwork(network *compute.Network) inventory.Network {
	parsed := inventory.Network{
		ID:       network.SelfLink,
		Name:     network.Name,
		Provider: providerName,
	}

	// Only legacy networks advertise an address range of their own. Subnet
	// mode networks need an explicit --parent.
	if network.IPv4Range != "" {
		parsed.CIDRs = append(parsed.CIDRs, network.IPv4Range)
	}

	return parsed
}

func parseSubnetworks(subnets []*compute.Subnetwork, networkID string) []inventory.Allocation {
	var allocations []inventory.Allocation
	for _, subnet := range subnets {
		if subnet == nil || subnet.Network != networkID {
			continue
		}

		if subnet.IpCidrRange != "" {
			allocations = append(allocations, inventory.Allocation{CIDR: subnet.IpCidrRange, Name: subnet.Name})
		}

		// Alias ranges are carved from the network space as well.
		for _, secondary := range subnet.SecondaryIpRanges {
			if secondary == nil || secondary.IpCidrRange == "" {
				continue
			}
			allocations = append(allocations, inventory.Allocation{
				CIDR: secondary.IpCidrRange,
				Name: fmt.Sprintf("%s/%s", subnet.Name, secondary.RangeName),
			})
		}
	}

	return allocations
}

// resourceName extracts the trailing resource name from a self link.
func resourceName(link string) string {
	segments := strings.Split(link, "/")
	return segments[len(segments)-1]
}
