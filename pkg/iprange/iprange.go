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

// Package iprange implements IPv4 range arithmetic: parsing CIDR blocks
// into inclusive address ranges, partitioning a parent range into taken
// and free sub-ranges, and describing ranges as aligned CIDR blocks.
package iprange

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/netip"
)

// FreeLabel marks the sub-ranges of a partition that no resource occupies.
const FreeLabel = "FREE"

// AddressRange is an inclusive range of IPv4 addresses. Low and High are
// the range bounds in host byte order, with Low <= High. Label names the
// resource occupying the range, or FreeLabel for a computed gap.
type AddressRange struct {
	Low   uint32
	High  uint32
	Label string
}

// ParseCIDR parses text in CIDR notation ("10.0.0.0/24") into an
// AddressRange carrying the given label. The address part is kept as
// written: host bits below the prefix are not cleared, so the range starts
// at the literal address and spans 2^(32-prefix) addresses. Blocks that
// would extend past the end of the IPv4 address space are rejected.
func ParseCIDR(text, label string) (AddressRange, error) {
	prefix, err := netip.ParsePrefix(text)
	if err != nil {
		return AddressRange{}, &ParseError{Text: text, Err: err}
	}
	if !prefix.Addr().Is4() {
		return AddressRange{}, &ParseError{Text: text, Err: fmt.Errorf("not an IPv4 address")}
	}

	low := addrToUint32(prefix.Addr())
	span := uint64(1) << (32 - prefix.Bits())
	high := uint64(low) + span - 1
	if high > math.MaxUint32 {
		return AddressRange{}, &ParseError{Text: text, Err: fmt.Errorf("block extends past the end of the IPv4 address space")}
	}

	return AddressRange{Low: low, High: uint32(high), Label: label}, nil
}

// Overlaps reports whether r and other share at least one address. The test
// is symmetric and treats ranges as closed intervals, so touching bounds
// count as an overlap.
func (r AddressRange) Overlaps(other AddressRange) bool {
	return max(r.Low, other.Low) <= min(r.High, other.High)
}

// Size returns the number of addresses in the range. The result is a
// uint64 since a full /0 spans 2^32 addresses.
func (r AddressRange) Size() uint64 {
	return uint64(r.High) - uint64(r.Low) + 1
}

// IsFree reports whether the range is a computed gap.
func (r AddressRange) IsFree() bool {
	return r.Label == FreeLabel
}

// String renders the range bounds as dotted quads.
func (r AddressRange) String() string {
	return fmt.Sprintf("%s-%s", addrFromUint32(r.Low), addrFromUint32(r.High))
}

func addrToUint32(addr netip.Addr) uint32 {
	raw := addr.As4()
	return binary.BigEndian.Uint32(raw[:])
}

func addrFromUint32(u uint32) netip.Addr {
	var raw [4]byte
	binary.BigEndian.PutUint32(raw[:], u)
	return netip.AddrFrom4(raw)
}
