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
	"bytes"
	"encoding/json"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pterm/pterm"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/iprange"
)

func TestReport(t *testing.T) {
	pterm.DisableStyling()
	RegisterFailHandler(Fail)
	RunSpecs(t, "Test the report package")
}

func forgePartition() (inventory.Network, []iprange.AddressRange) {
	network := inventory.Network{
		ID:       "vpc-0123456789abcdef0",
		Name:     "production",
		Provider: "aws",
		CIDRs:    []string{"10.0.0.0/24"},
	}

	parent, err := iprange.ParseCIDR("10.0.0.0/24", "production")
	Expect(err).NotTo(HaveOccurred())
	taken, err := iprange.ParseCIDR("10.0.0.64/26", "workers")
	Expect(err).NotTo(HaveOccurred())
	partition, err := iprange.FindFree(parent, []iprange.AddressRange{taken})
	Expect(err).NotTo(HaveOccurred())

	return network, partition
}

var _ = Describe("Build", func() {
	It("should describe every partition entry", func() {
		network, partition := forgePartition()
		rep := Build(network, "10.0.0.0/24", partition)

		Expect(rep.Provider).To(Equal("aws"))
		Expect(rep.NetworkID).To(Equal("vpc-0123456789abcdef0"))
		Expect(rep.NetworkName).To(Equal("production"))
		Expect(rep.Parent).To(Equal("10.0.0.0/24"))

		Expect(rep.Rows).To(HaveLen(3))
		Expect(rep.Rows[0]).To(Equal(Row{
			MinIP: "10.0.0.0", MaxIP: "10.0.0.63", Mask: "/26", Size: 64,
			Label: iprange.FreeLabel, Free: true,
		}))
		Expect(rep.Rows[1]).To(Equal(Row{
			MinIP: "10.0.0.64", MaxIP: "10.0.0.127", Mask: "/26", Size: 64,
			Label: "workers",
		}))
		Expect(rep.Rows[2]).To(Equal(Row{
			MinIP: "10.0.0.128", MaxIP: "10.0.0.255", Mask: "/25", Size: 128,
			Label: iprange.FreeLabel, Free: true,
		}))

		Expect(rep.FreeBlocks).To(Equal(2))
		Expect(rep.FreeAddresses).To(Equal(uint64(192)))
	})

	It("should compute best-fit suggestions for the free entries only", func() {
		network := inventory.Network{ID: "net", Name: "net", Provider: "static"}
		partition := []iprange.AddressRange{
			{Low: 0x0a00000a, High: 0x0a000014, Label: iprange.FreeLabel},
			{Low: 0x0a000015, High: 0x0a00001f, Label: "taken"},
		}

		rep := Build(network, "10.0.0.0/24", partition)
		Expect(rep.Rows[0].Best).To(Equal("10.0.0.16/30"))
		Expect(rep.Rows[1].Best).To(BeEmpty())
	})
})

var _ = Describe("Sinks", func() {
	var (
		buf bytes.Buffer
	)

	BeforeEach(func() { buf.Reset() })

	Context("selection", func() {
		It("should return the sink matching the format", func() {
			sink, err := NewSink("table", &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink).To(BeAssignableToTypeOf(&TableSink{}))

			sink, err = NewSink("json", &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink).To(BeAssignableToTypeOf(&JSONSink{}))

			_, err = NewSink("xml", &buf)
			Expect(err).To(HaveOccurred())
		})
	})

	Context("table sink", func() {
		It("should render the six report columns and the summary", func() {
			network, partition := forgePartition()
			rep := Build(network, "10.0.0.0/24", partition)

			sink, err := NewSink("table", &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.Reports([]Report{rep})).To(Succeed())

			out := buf.String()
			for _, header := range []string{"MIN IP", "MAX IP", "MASK", "SIZE", "BEST", "LABEL"} {
				Expect(out).To(ContainSubstring(header))
			}
			Expect(out).To(ContainSubstring("10.0.0.0/24 of production (vpc-0123456789abcdef0)"))
			Expect(out).To(ContainSubstring("workers"))
			Expect(out).To(ContainSubstring(iprange.FreeLabel))
			Expect(out).To(ContainSubstring("Free: 2 blocks, 192 addresses"))
		})

		It("should render the network listing", func() {
			networks := []inventory.Network{
				{ID: "vpc-1", Name: "production", Provider: "aws", CIDRs: []string{"10.0.0.0/16", "10.1.0.0/16"}},
			}

			sink, err := NewSink("table", &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.Networks(networks)).To(Succeed())

			out := buf.String()
			Expect(out).To(ContainSubstring("vpc-1"))
			Expect(out).To(ContainSubstring("production"))
			Expect(out).To(ContainSubstring("10.0.0.0/16,10.1.0.0/16"))
		})
	})

	Context("json sink", func() {
		It("should round-trip the reports", func() {
			network, partition := forgePartition()
			rep := Build(network, "10.0.0.0/24", partition)

			sink, err := NewSink("json", &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.Reports([]Report{rep})).To(Succeed())

			var decoded []Report
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			Expect(decoded).To(HaveLen(1))
			Expect(decoded[0]).To(Equal(rep))
		})

		It("should round-trip the network listing", func() {
			networks := []inventory.Network{
				{ID: "vpc-1", Name: "production", Provider: "aws", CIDRs: []string{"10.0.0.0/16"}},
			}

			sink, err := NewSink("json", &buf)
			Expect(err).NotTo(HaveOccurred())
			Expect(sink.Networks(networks)).To(Succeed())

			var decoded []inventory.Network
			Expect(json.Unmarshal(buf.Bytes(), &decoded)).To(Succeed())
			Expect(decoded).To(Equal(networks))
		})
	})
})
