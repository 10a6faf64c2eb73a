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
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pterm/pterm"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/output"
)

// TableSink renders reports as pterm tables, with the free ranges
// highlighted.
type TableSink struct {
	writer io.Writer
}

// Networks renders the network listing.
func (t *TableSink) Networks(networks []inventory.Network) error {
	td := pterm.TableData{
		{"ID", "NAME", "CIDRS"},
	}
	for i := range networks {
		td = append(td, []string{
			networks[i].ID,
			networks[i].Name,
			strings.Join(networks[i].CIDRs, ","),
		})
	}
	return t.table().WithData(td).Render()
}

// Reports renders the given partition reports, one table each.
func (t *TableSink) Reports(reports []Report) error {
	for i := range reports {
		if err := t.render(&reports[i]); err != nil {
			return err
		}
	}
	return nil
}

func (t *TableSink) render(rep *Report) error {
	title := rep.Parent
	if rep.NetworkName != "" && rep.NetworkName != rep.Parent {
		title = pterm.Sprintf("%s of %s (%s)", rep.Parent, rep.NetworkName, rep.NetworkID)
	}
	fmt.Fprintln(t.writer, "")
	fmt.Fprintln(t.writer, output.SectionStyle.Sprint(title))

	td := forgeTableData()
	for i := range rep.Rows {
		td = appendRowTableData(&rep.Rows[i], td)
	}
	if err := t.table().WithData(td).Render(); err != nil {
		return err
	}

	fmt.Fprintln(t.writer, pterm.Sprintf("Free: %d blocks, %s addresses",
		rep.FreeBlocks, humanize.Comma(int64(rep.FreeAddresses))))
	return nil
}

func (t *TableSink) table() *pterm.TablePrinter {
	return pterm.DefaultTable.WithHasHeader().WithWriter(t.writer)
}

// forgeTableData creates the report table header.
func forgeTableData() pterm.TableData {
	return pterm.TableData{
		{"MIN IP", "MAX IP", "MASK", "SIZE", "BEST", "LABEL"},
	}
}

// appendRowTableData appends one partition entry to the table data.
func appendRowTableData(row *Row, td pterm.TableData) pterm.TableData {
	cells := []string{
		row.MinIP,
		row.MaxIP,
		row.Mask,
		humanize.Comma(int64(row.Size)),
		row.Best,
		row.Label,
	}
	if row.Free {
		for i := range cells {
			cells[i] = pterm.FgGreen.Sprint(cells[i])
		}
	}
	return append(td, cells)
}
