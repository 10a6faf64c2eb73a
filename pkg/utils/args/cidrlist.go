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

// Package args contains flag.Value implementations for the CIDR-shaped
// command line arguments.
package args

import (
	"fmt"
	"net/netip"
	"strings"
)

// CIDRList implements the flag.Value interface and allows to parse
// stringified lists of IPv4 blocks in the form: "x.x.x.x/y,z.z.z.z/w".
type CIDRList struct {
	Prefixes []netip.Prefix
}

// String returns the stringified list.
func (cl *CIDRList) String() string {
	chunks := make([]string, len(cl.Prefixes))
	for i, prefix := range cl.Prefixes {
		chunks[i] = prefix.String()
	}
	return strings.Join(chunks, ",")
}

// Set parses the provided string into the prefix list.
func (cl *CIDRList) Set(str string) error {
	if str == "" {
		return nil
	}
	for _, chunk := range strings.Split(str, ",") {
		prefix, err := parsePrefix4(chunk)
		if err != nil {
			return err
		}
		cl.Prefixes = append(cl.Prefixes, prefix)
	}
	return nil
}

// Type returns the cidrList type.
func (cl *CIDRList) Type() string {
	return "cidrList"
}

func parsePrefix4(str string) (netip.Prefix, error) {
	prefix, err := netip.ParsePrefix(str)
	if err != nil {
		return netip.Prefix{}, err
	}
	if !prefix.Addr().Is4() {
		return netip.Prefix{}, fmt.Errorf("%q is not an IPv4 block", str)
	}
	return prefix, nil
}
