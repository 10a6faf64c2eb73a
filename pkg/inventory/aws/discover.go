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

package aws

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/inventory"
)

// Networks lists the VPCs of the region.
func (o *Options) Networks(ctx context.Context) ([]inventory.Network, error) {
	input := &ec2.DescribeVpcsInput{}

	var networks []inventory.Network
	for {
		out, err := o.ec2Svc.DescribeVpcsWithContext(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("unable to list VPCs: %w", err)
		}
		for _, vpc := range out.Vpcs {
			networks = append(networks, parseVpc(vpc))
		}
		if aws.StringValue(out.NextToken) == "" {
			break
		}
		input.NextToken = out.NextToken
	}

	klog.V(4).Infof("retrieved %d VPCs", len(networks))
	return networks, nil
}

// Network resolves a VPC by ID, Name tag or CIDR block.
func (o *Options) Network(ctx context.Context, key string) (*inventory.Network, error) {
	if strings.HasPrefix(key, "vpc-") {
		return o.networkByID(ctx, key)
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
	case 1:
		return &matches[0], nil
	case 0:
		return nil, fmt.Errorf("no VPC found matching %q", key)
	default:
		return nil, fmt.Errorf("multiple VPCs found matching %q", key)
	}
}

// Allocations lists the subnets of the given VPC.
func (o *Options) Allocations(ctx context.Context, networkID string) ([]inventory.Allocation, error) {
	input := &ec2.DescribeSubnetsInput{
		Filters: []*ec2.Filter{{
			Name:   aws.String("vpc-id"),
			Values: aws.StringSlice([]string{networkID}),
		}},
	}

	var allocations []inventory.Allocation
	for {
		out, err := o.ec2Svc.DescribeSubnetsWithContext(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("unable to list subnets of VPC %s: %w", networkID, err)
		}
		allocations = append(allocations, parseSubnets(out.Subnets)...)
		if aws.StringValue(out.NextToken) == "" {
			break
		}
		input.NextToken = out.NextToken
	}

	klog.V(4).Infof("retrieved %d subnets for VPC %s", len(allocations), networkID)
	return allocations, nil
}

func (o *Options) networkByID(ctx context.Context, vpcID string) (*inventory.Network, error) {
	describeVpc := &ec2.DescribeVpcsInput{
		VpcIds: aws.StringSlice([]string{vpcID}),
	}

	out, err := o.ec2Svc.DescribeVpcsWithContext(ctx, describeVpc)
	if err != nil {
		return nil, fmt.Errorf("unable to get VPC %s details: %w", vpcID, err)
	}

	return parseVpcOutput(vpcID, out)
}

func parseVpcOutput(vpcID string, out *ec2.DescribeVpcsOutput) (*inventory.Network, error) {
	switch len(out.Vpcs) {
	case 1:
		network := parseVpc(out.Vpcs[0])
		return &network, nil
	case 0:
		return nil, fmt.Errorf("no VPC found with id %v", vpcID)
	default:
		return nil, fmt.Errorf("multiple VPC found with id %v", vpcID)
	}
}

// parseVpc maps a VPC to a network. Secondary CIDR blocks count as parents
// too, as long as their association is alive.
func parseVpc(vpc *ec2.Vpc) inventory.Network {
	id := aws.StringValue(vpc.VpcId)
	network := inventory.Network{
		ID:       id,
		Name:     nameTag(vpc.Tags, id),
		Provider: providerName,
	}

	for _, assoc := range vpc.CidrBlockAssociationSet {
		if assoc.CidrBlockState != nil &&
			aws.StringValue(assoc.CidrBlockState.State) != ec2.VpcCidrBlockStateCodeAssociated {
			continue
		}
		network.CIDRs = append(network.CIDRs, aws.StringValue(assoc.CidrBlock))
	}
	if len(network.CIDRs) == 0 && aws.StringValue(vpc.CidrBlock) != "" {
		network.CIDRs = append(network.CIDRs, aws.StringValue(vpc.CidrBlock))
	}

	return network
}

func parseSubnets(subnets []*ec2.Subnet) []inventory.Allocation {
	allocations := make([]inventory.Allocation, 0, len(subnets))
	for _, subnet := range subnets {
		id := aws.StringValue(subnet.SubnetId)
		allocations = append(allocations, inventory.Allocation{
			CIDR: aws.StringValue(subnet.CidrBlock),
			Name: nameTag(subnet.Tags, id),
		})
	}
	return allocations
}

func nameTag(tags []*ec2.Tag, fallback string) string {
	for _, tag := range tags {
		if aws.StringValue(tag.Key) == "Name" && aws.StringValue(tag.Value) != "" {
			return aws.StringValue(tag.Value)
		}
	}
	return fallback
}
