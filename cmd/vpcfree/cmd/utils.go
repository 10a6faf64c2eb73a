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

package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"text/template"

	"github.com/spf13/cobra"
)

// executable is the name this binary was invoked as, expanded in help texts.
var executable = filepath.Base(os.Args[0])

// WithTemplate expands the {{ .Executable }} references of the help texts.
func WithTemplate(str string) string {
	tmpl := template.Must(template.New("vpcfree").Parse(str))

	var buf bytes.Buffer
	cobra.CheckErr(tmpl.Execute(&buf, struct{ Executable string }{executable}))
	return buf.String()
}
