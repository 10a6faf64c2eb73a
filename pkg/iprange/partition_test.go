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
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// coversExactly asserts that the partition is an ordered, gapless,
// non-overlapping cover of the parent.
func coversExactly(parent AddressRange, partition []AddressRange) {
	Expect(partition).NotTo(BeEmpty())
	Expect(partition[0].Low).To(Equal(parent.Low))
	Expect(partition[len(partition)-1].High).To(Equal(parent.High))
	for i := range partition {
		Expect(partition[i].Low).To(BeNumerically("<=", partition[i].High))
		if i > 0 {
			Expect(partition[i].Low).To(Equal(partition[i-1].High + 1))
		}
	}
}

var _ = Describe("FindFree", func() {
	var (
		parent AddressRange
	)

	BeforeEach(func() {
		var err error
		parent, err = ParseCIDR("10.0.0.0/24", "vpc")
		Expect(err).NotTo(HaveOccurred())
	})

	When("no range is taken", func() {
		It("should return a single free range spanning the parent", func() {
			partition, err := FindFree(parent, nil)
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(1))
			Expect(partition[0]).To(Equal(AddressRange{Low: parent.Low, High: parent.High, Label: FreeLabel}))
		})
	})

	When("no taken range overlaps the parent", func() {
		It("should return a single free range spanning the parent", func() {
			outside, err := ParseCIDR("192.168.0.0/24", "elsewhere")
			Expect(err).NotTo(HaveOccurred())
			partition, err := FindFree(parent, []AddressRange{outside})
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(1))
			Expect(partition[0].Label).To(Equal(FreeLabel))
			coversExactly(parent, partition)
		})
	})

	When("a single taken range covers the parent exactly", func() {
		It("should return only the taken range", func() {
			taken, err := ParseCIDR("10.0.0.0/24", "everything")
			Expect(err).NotTo(HaveOccurred())
			partition, err := FindFree(parent, []AddressRange{taken})
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(1))
			Expect(partition[0].Label).To(Equal("everything"))
			coversExactly(parent, partition)
		})
	})

	When("a taken range sits in the middle of the parent", func() {
		It("should surround it with free gaps", func() {
			taken, err := ParseCIDR("10.0.0.64/26", "a")
			Expect(err).NotTo(HaveOccurred())

			partition, err := FindFree(parent, []AddressRange{taken})
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(3))
			coversExactly(parent, partition)

			Expect(partition[0].Label).To(Equal(FreeLabel))
			Expect(Describe(partition[0], true).Mask).To(Equal("/26"))
			Expect(partition[1].Label).To(Equal("a"))
			Expect(partition[2].Label).To(Equal(FreeLabel))
			Expect(Describe(partition[2], true).Mask).To(Equal("/25"))
		})
	})

	When("several taken ranges are given out of order", func() {
		It("should emit them sorted with the gaps between", func() {
			first, err := ParseCIDR("10.0.0.192/27", "b")
			Expect(err).NotTo(HaveOccurred())
			second, err := ParseCIDR("10.0.0.16/28", "a")
			Expect(err).NotTo(HaveOccurred())

			partition, err := FindFree(parent, []AddressRange{first, second})
			Expect(err).NotTo(HaveOccurred())
			coversExactly(parent, partition)

			labels := make([]string, len(partition))
			for i := range partition {
				labels[i] = partition[i].Label
			}
			Expect(labels).To(Equal([]string{FreeLabel, "a", FreeLabel, "b", FreeLabel}))
		})
	})

	When("taken ranges touch the parent bounds", func() {
		It("should not emit empty gaps", func() {
			head, err := ParseCIDR("10.0.0.0/26", "head")
			Expect(err).NotTo(HaveOccurred())
			tail, err := ParseCIDR("10.0.0.192/26", "tail")
			Expect(err).NotTo(HaveOccurred())

			partition, err := FindFree(parent, []AddressRange{head, tail})
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(3))
			coversExactly(parent, partition)
			Expect(partition[0].Label).To(Equal("head"))
			Expect(partition[1].Label).To(Equal(FreeLabel))
			Expect(partition[2].Label).To(Equal("tail"))
		})
	})

	When("a taken range extends past the parent", func() {
		It("should clip it to the parent bounds", func() {
			straddling := AddressRange{Low: 0x0a0000c0, High: 0x0a0001ff, Label: "straddling"}

			partition, err := FindFree(parent, []AddressRange{straddling})
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(2))
			coversExactly(parent, partition)
			Expect(partition[1].Label).To(Equal("straddling"))
			Expect(partition[1].High).To(Equal(parent.High))
		})
	})

	When("the parent ends at the last IPv4 address", func() {
		It("should terminate with the trailing gap", func() {
			top, err := ParseCIDR("255.255.255.0/24", "vpc")
			Expect(err).NotTo(HaveOccurred())
			taken, err := ParseCIDR("255.255.255.0/25", "a")
			Expect(err).NotTo(HaveOccurred())

			partition, err := FindFree(top, []AddressRange{taken})
			Expect(err).NotTo(HaveOccurred())
			Expect(partition).To(HaveLen(2))
			coversExactly(top, partition)
			Expect(partition[1].Label).To(Equal(FreeLabel))
			Expect(partition[1].High).To(Equal(uint32(0xffffffff)))
		})
	})

	When("taken ranges overlap each other", func() {
		It("should reject the input", func() {
			first, err := ParseCIDR("10.0.0.0/25", "a")
			Expect(err).NotTo(HaveOccurred())
			second, err := ParseCIDR("10.0.0.64/26", "b")
			Expect(err).NotTo(HaveOccurred())

			_, err = FindFree(parent, []AddressRange{first, second})
			Expect(err).To(HaveOccurred())
			Expect(err).To(BeAssignableToTypeOf(&OverlapError{}))
		})
	})

	When("the input slice is reused", func() {
		It("should not be modified", func() {
			first, err := ParseCIDR("10.0.0.192/27", "b")
			Expect(err).NotTo(HaveOccurred())
			second, err := ParseCIDR("10.0.0.16/28", "a")
			Expect(err).NotTo(HaveOccurred())

			taken := []AddressRange{first, second}
			_, err = FindFree(parent, taken)
			Expect(err).NotTo(HaveOccurred())
			Expect(taken[0].Label).To(Equal("b"))
			Expect(taken[1].Label).To(Equal("a"))
		})
	})
})
