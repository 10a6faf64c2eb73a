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
)

// ParseError is returned when a CIDR descriptor does not denote a valid
// IPv4 block.
type ParseError struct {
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid CIDR %q: %v", e.Text, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// OverlapError is returned when two taken ranges overlap each other, which
// makes the partition of their parent ambiguous.
type OverlapError struct {
	First  AddressRange
	Second AddressRange
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("taken ranges %s (%s) and %s (%s) overlap",
		e.First, e.First.Label, e.Second, e.Second.Label)
}
