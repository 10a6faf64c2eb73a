package args

import (
	"net/netip"
	"strings"
)

// LabeledCIDR is an IPv4 block with an optional resource label.
type LabeledCIDR struct {
	Prefix netip.Prefix
	Label  string
}

// LabeledCIDRList implements the flag.Value interface and allows to parse
// stringified lists of labeled IPv4 blocks in the form:
// "x.x.x.x/y=name,z.z.z.z/w". The label is optional.
type LabeledCIDRList struct {
	List []LabeledCIDR
}

// String returns the stringified list.
func (ll *LabeledCIDRList) String() string {
	chunks := make([]string, len(ll.List))
	for i, entry := range ll.List {
		chunks[i] = entry.Prefix.String()
		if entry.Label != "" {
			chunks[i] += "=" + entry.Label
		}
	}
	return strings.Join(chunks, ",")
}

// Set parses the provided string into the labeled block list.
func (ll *LabeledCIDRList) Set(str string) error {
	if str == "" {
		return nil
	}
	for _, chunk := range strings.Split(str, ",") {
		text, label, _ := strings.Cut(chunk, "=")
		prefix, err := parsePrefix4(text)
		if err != nil {
			return err
		}
		ll.List = append(ll.List, LabeledCIDR{Prefix: prefix, Label: label})
	}
	return nil
}

// Type returns the labeledCIDRList type.
func (ll *LabeledCIDRList) Type() string {
	return "labeledCIDRList"
}
