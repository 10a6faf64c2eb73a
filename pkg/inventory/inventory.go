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

// Package inventory abstracts the sources a scan reads networks and their
// allocations from.
package inventory

import (
	"context"
)

// Network is a virtual network as reported by a provider. A network may
// carry more than one parent block (e.g. secondary CIDR associations),
// hence CIDRs is a list.
type Network struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Provider string   `json:"provider"`
	CIDRs    []string `json:"cidrs"`
}

// Allocation is a sub-range of a network already assigned to a resource.
type Allocation struct {
	CIDR string `json:"cidr"`
	Name string `json:"name"`
}

// Provider gives access to the networks of an infrastructure and to the
// allocations inside them. Implementations are constructed by the caller:
// no package-level client is shared.
type Provider interface {
	// Name returns the name of the provider.
	Name() string
	// Networks lists the networks the provider knows about.
	Networks(ctx context.Context) ([]Network, error)
	// Network resolves a single network by ID, name or CIDR.
	Network(ctx context.Context, key string) (*Network, error)
	// Allocations lists the taken sub-ranges of the given network.
	Allocations(ctx context.Context, networkID string) ([]Allocation, error)
}
