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

package report

import (
	"encoding/json"
	"io"

	"github.com/vpcfree/vpcfree/pkg/inventory"
)

// JSONSink renders reports and network listings as indented JSON, for
// scripting.
type JSONSink struct {
	writer io.Writer
}

// Networks renders the network listing.
func (j *JSONSink) Networks(networks []inventory.Network) error {
	return j.encode(networks)
}

// Reports renders the given partition reports as a single array.
func (j *JSONSink) Reports(reports []Report) error {
	return j.encode(reports)
}

func (j *JSONSink) encode(v interface{}) error {
	enc := json.NewEncoder(j.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
