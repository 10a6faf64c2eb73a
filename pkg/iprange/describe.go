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
	"fmt"
	"math/bits"
)

// Description holds the rendered form of an AddressRange. Mask is the
// "/N" prefix length when the range is exactly an aligned CIDR block,
// otherwise empty. Best is the best-fitting aligned block inside a
// non-aligned range, computed on request, otherwise empty.
type Description struct {
	MinAddr string
	MaxAddr string
	Mask    string
	Size    uint64
	Best    string
}

// Describe renders r as its bounds, size and CIDR mask. A range that is
// not an aligned power-of-two block has no exact mask; when computeBest is
// set, Describe suggests the largest aligned block that starts within the
// range and does not extend past it. The suggestion is conservative: it
// may cover only part of the range.
func Describe(r AddressRange, computeBest bool) Description {
	desc := Description{
		MinAddr: addrFromUint32(r.Low).String(),
		MaxAddr: addrFromUint32(r.High).String(),
		Size:    r.Size(),
	}

	// The largest power of two not exceeding the range size determines the
	// candidate prefix length and the alignment boundary.
	k := bits.Len64(desc.Size) - 1
	blockSize := uint64(1) << k
	network := r.Low &^ uint32(blockSize-1)

	if r.Low == network && uint64(r.Low)+blockSize-1 == uint64(r.High) {
		desc.Mask = fmt.Sprintf("/%d", 32-k)
		return desc
	}

	if computeBest {
		start := uint64(network)
		if r.Low != network {
			// The range starts past the boundary: the block of the ideal
			// size does not fit, so move to the next boundary and shrink
			// the block to what remains.
			start += blockSize
		}
		fit := bits.Len64(uint64(r.High)-start+1) - 1
		desc.Best = fmt.Sprintf("%s/%d", addrFromUint32(uint32(start)), 32-fit)
	}

	return desc
}
