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

// Package version implements the version command.
package version

import (
	"context"
	"fmt"

	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
)

// Overridden at build time through ldflags.
var (
	vpcfreeVersion = "development"
	gitCommit      = "unknown"
	buildDate      = "unknown"
)

// Options encapsulates the arguments of the version command.
type Options struct {
	*factory.Factory
}

// Run implements the version command.
func (o *Options) Run(_ context.Context) error {
	fmt.Printf("Client version: %s\n", vpcfreeVersion)
	fmt.Printf("Git commit: %s\n", gitCommit)
	fmt.Printf("Build date: %s\n", buildDate)
	return nil
}
