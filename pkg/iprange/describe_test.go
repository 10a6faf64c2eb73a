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

package iprange

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDescribePartition(t *testing.T) {
	parent, err := ParseCIDR("10.0.0.0/24", "production")
	if err != nil {
		t.Fatalf("failed parsing the parent block: %v", err)
	}
	taken, err := ParseCIDR("10.0.0.10/31", "router")
	if err != nil {
		t.Fatalf("failed parsing the taken block: %v", err)
	}

	partition, err := FindFree(parent, []AddressRange{taken})
	if err != nil {
		t.Fatalf("failed partitioning the parent block: %v", err)
	}

	descriptions := make([]Description, len(partition))
	for i, r := range partition {
		descriptions[i] = Describe(r, r.IsFree())
	}

	expected := []Description{
		{MinAddr: "10.0.0.0", MaxAddr: "10.0.0.9", Size: 10, Best: "10.0.0.0/29"},
		{MinAddr: "10.0.0.10", MaxAddr: "10.0.0.11", Mask: "/31", Size: 2},
		{MinAddr: "10.0.0.12", MaxAddr: "10.0.0.255", Size: 244, Best: "10.0.0.128/25"},
	}

	if diff := cmp.Diff(expected, descriptions); diff != "" {
		t.Errorf("unexpected partition descriptions (-expected +got):\n%s", diff)
	}
}
