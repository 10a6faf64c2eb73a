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
	"sort"
)

// FindFree partitions parent into an ordered, gapless sequence of taken and
// free sub-ranges. Every address of parent appears in exactly one entry of
// the result: the taken entries are the input ranges (clipped to the parent
// bounds), and the gaps between them are labeled FreeLabel.
//
// Taken ranges that do not overlap the parent are ignored. Taken ranges
// overlapping each other are rejected with an OverlapError, since no
// consistent partition exists for them. The input slice is not modified.
func FindFree(parent AddressRange, taken []AddressRange) ([]AddressRange, error) {
	inside := make([]AddressRange, 0, len(taken))
	for _, t := range taken {
		if !parent.Overlaps(t) {
			continue
		}
		if t.Low < parent.Low {
			t.Low = parent.Low
		}
		if t.High > parent.High {
			t.High = parent.High
		}
		inside = append(inside, t)
	}

	sort.SliceStable(inside, func(i, j int) bool { return inside[i].Low < inside[j].Low })

	// Once sorted, mutual overlaps show up between neighbors.
	for i := 1; i < len(inside); i++ {
		if inside[i].Low <= inside[i-1].High {
			return nil, &OverlapError{First: inside[i-1], Second: inside[i]}
		}
	}

	partition := make([]AddressRange, 0, 2*len(inside)+1)

	// The cursor tracks the first address not yet covered. It is a uint64
	// so that advancing past the last address of the IPv4 space does not
	// wrap around.
	cursor := uint64(parent.Low)
	for _, t := range inside {
		if uint64(t.Low) > cursor {
			partition = append(partition, AddressRange{Low: uint32(cursor), High: t.Low - 1, Label: FreeLabel})
		}
		partition = append(partition, t)
		cursor = uint64(t.High) + 1
	}
	if cursor <= uint64(parent.High) {
		partition = append(partition, AddressRange{Low: uint32(cursor), High: parent.High, Label: FreeLabel})
	}

	return partition, nil
}
