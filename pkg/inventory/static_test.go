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
	"net/netip"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vpcfree/vpcfree/pkg/utils/args"
)

func TestStaticProvider(t *testing.T) {
	ctx := context.Background()
	static := NewStatic("10.0.0.0/24", []args.LabeledCIDR{
		{Prefix: netip.MustParsePrefix("10.0.0.64/26"), Label: "workers"},
		{Prefix: netip.MustParsePrefix("10.0.0.0/28")},
	})

	networks, err := static.Networks(ctx)
	require.NoError(t, err)
	require.Len(t, networks, 1)
	assert.Equal(t, []string{"10.0.0.0/24"}, networks[0].CIDRs)
	assert.Equal(t, "static", networks[0].Provider)

	network, err := static.Network(ctx, "10.0.0.0/24")
	require.NoError(t, err)
	assert.Equal(t, networks[0], *network)

	_, err = static.Network(ctx, "10.1.0.0/24")
	assert.Error(t, err)

	allocations, err := static.Allocations(ctx, network.ID)
	require.NoError(t, err)
	require.Len(t, allocations, 2)
	assert.Equal(t, Allocation{CIDR: "10.0.0.64/26", Name: "workers"}, allocations[0])
	// The label defaults to the CIDR text when not given.
	assert.Equal(t, Allocation{CIDR: "10.0.0.0/28", Name: "10.0.0.0/28"}, allocations[1])

	_, err = static.Allocations(ctx, "unknown")
	assert.Error(t, err)
}
