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

package inventory

import (
	"context"
	"fmt"

	"github.com/vpcfree/vpcfree/pkg/utils/args"
)

var _ Provider = (*Static)(nil)

// Static is a Provider backed by command line arguments instead of a cloud
// API. It exposes a single network whose allocations are given upfront.
type Static struct {
	Net   Network
	Taken []Allocation
}

// NewStatic returns a Static provider for the given parent block and taken
// sub-ranges. Taken entries without a label default to their own CIDR text.
func NewStatic(parent string, taken []args.LabeledCIDR) *Static {
	allocations := make([]Allocation, len(taken))
	for i, entry := range taken {
		label := entry.Label
		if label == "" {
			label = entry.Prefix.String()
		}
		allocations[i] = Allocation{CIDR: entry.Prefix.String(), Name: label}
	}

	return &Static{
		Net: Network{
			ID:       parent,
			Name:     parent,
			Provider: "static",
			CIDRs:    []string{parent},
		},
		Taken: allocations,
	}
}

// Name returns the name of the provider.
func (s *Static) Name() string { return "static" }

// Networks lists the single network the provider was built with.
func (s *Static) Networks(_ context.Context) ([]Network, error) {
	return []Network{s.Net}, nil
}

// Network resolves the single network the provider was built with.
func (s *Static) Network(_ context.Context, key string) (*Network, error) {
	if key != s.Net.ID && key != s.Net.Name {
		return nil, fmt.Errorf("network %q not found", key)
	}
	net := s.Net
	return &net, nil
}

// Allocations returns the taken sub-ranges given at construction time.
func (s *Static) Allocations(_ context.Context, networkID string) ([]Allocation, error) {
	if networkID != s.Net.ID {
		return nil, fmt.Errorf("network %q not found", networkID)
	}
	return s.Taken, nil
}
