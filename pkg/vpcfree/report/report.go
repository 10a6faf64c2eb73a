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

// Package report turns range partitions into user-facing reports and
// renders them through swappable sinks.
package report

import (
	"fmt"
	"io"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/iprange"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
)

// Row is the rendered form of one partition entry.
type Row struct {
	MinIP string `json:"minIP"`
	MaxIP string `json:"maxIP"`
	Mask  string `json:"mask,omitempty"`
	Size  uint64 `json:"size"`
	Best  string `json:"best,omitempty"`
	Label string `json:"label"`
	Free  bool   `json:"free"`
}

// Report is the partition of one parent block of one network.
type Report struct {
	Provider      string `json:"provider"`
	NetworkID     string `json:"networkID"`
	NetworkName   string `json:"networkName"`
	Parent        string `json:"parent"`
	Rows          []Row  `json:"ranges"`
	FreeBlocks    int    `json:"freeBlocks"`
	FreeAddresses uint64 `json:"freeAddresses"`
}

// Build renders the partition of one parent block into a Report. Best-fit
// suggestions are computed for the free entries only.
func Build(network inventory.Network, parent string, partition []iprange.AddressRange) Report {
	rep := Report{
		Provider:    network.Provider,
		NetworkID:   network.ID,
		NetworkName: network.Name,
		Parent:      parent,
		Rows:        make([]Row, 0, len(partition)),
	}

	for _, r := range partition {
		desc := iprange.Describe(r, r.IsFree())
		rep.Rows = append(rep.Rows, Row{
			MinIP: desc.MinAddr,
			MaxIP: desc.MaxAddr,
			Mask:  desc.Mask,
			Size:  desc.Size,
			Best:  desc.Best,
			Label: r.Label,
			Free:  r.IsFree(),
		})
		if r.IsFree() {
			rep.FreeBlocks++
			rep.FreeAddresses += desc.Size
		}
	}
	return rep
}

// Sink renders reports and network listings. Implementations own all the
// presentation concerns, so the callers never print partition data
// themselves.
type Sink interface {
	// Networks renders the network listing.
	Networks(networks []inventory.Network) error
	// Reports renders the given partition reports.
	Reports(reports []Report) error
}

// NewSink returns the Sink for the given output format, writing to w.
func NewSink(format string, w io.Writer) (Sink, error) {
	switch format {
	case factory.OutputTable:
		return &TableSink{writer: w}, nil
	case factory.OutputJSON:
		return &JSONSink{writer: w}, nil
	default:
		return nil, fmt.Errorf("unsupported output format %q", format)
	}
}
