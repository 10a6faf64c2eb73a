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

// Package scan implements the engine shared by all the subcommands: it
// selects the networks to inspect, gathers their allocations and renders
// the taken/free partition of each parent block.
package scan

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/iprange"
	"github.com/vpcfree/vpcfree/pkg/utils/args"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/report"
)

// Options encapsulates the arguments common to all the scan subcommands.
type Options struct {
	*factory.Factory

	NetworkKey string
	All        bool
	Parents    args.CIDRList
	Reserve    args.LabeledCIDRList
}

// New returns a new Options object bound to the given factory.
func New(f *factory.Factory) *Options {
	return &Options{Factory: f}
}

// RegisterFlags registers the flags shared by all the scan subcommands.
func (o *Options) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.NetworkKey, "network", "",
		"The ID, name or CIDR of the network to scan (without it, the networks are listed)")
	cmd.Flags().BoolVar(&o.All, "all", false, "Scan all the networks of the provider")
	cmd.Flags().Var(&o.Parents, "parent", "Partition the given parent blocks instead of the ones reported by the provider")
	cmd.Flags().Var(&o.Reserve, "reserve", "Mark additional blocks as taken, with an optional label (e.g. 10.0.0.0/28=dns)")
}

// Run executes the scan through the given provider. Without a network
// selection it only lists the networks the provider knows about.
func (o *Options) Run(ctx context.Context, p inventory.Provider) error {
	sink, err := report.NewSink(o.Output, os.Stdout)
	if err != nil {
		return err
	}

	if o.NetworkKey == "" && !o.All {
		return o.list(ctx, p, sink)
	}

	networks, err := o.selectNetworks(ctx, p)
	if err != nil {
		return err
	}

	reports, err := o.scan(ctx, p, networks)
	if err != nil {
		return err
	}
	return sink.Reports(reports)
}

func (o *Options) list(ctx context.Context, p inventory.Provider, sink report.Sink) error {
	spinner := o.spinner("Listing %s networks", p.Name())
	networks, err := p.Networks(ctx)
	if err != nil {
		o.fail(spinner, err)
		return err
	}
	if spinner != nil {
		spinner.Success(fmt.Sprintf("Found %d networks", len(networks)))
	}
	return sink.Networks(networks)
}

func (o *Options) selectNetworks(ctx context.Context, p inventory.Provider) ([]inventory.Network, error) {
	if o.All {
		networks, err := p.Networks(ctx)
		if err != nil {
			return nil, err
		}
		if len(networks) == 0 {
			return nil, fmt.Errorf("provider %s reports no networks", p.Name())
		}
		return networks, nil
	}

	network, err := p.Network(ctx, o.NetworkKey)
	if err != nil {
		return nil, err
	}
	return []inventory.Network{*network}, nil
}

func (o *Options) scan(ctx context.Context, p inventory.Provider, networks []inventory.Network) ([]report.Report, error) {
	spinner := o.spinner("Gathering allocations of %d networks from %s", len(networks), p.Name())

	allocations := make([][]inventory.Allocation, len(networks))
	g, gctx := errgroup.WithContext(ctx)
	for i := range networks {
		g.Go(func() error {
			var err error
			allocations[i], err = p.Allocations(gctx, networks[i].ID)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		o.fail(spinner, err)
		return nil, err
	}
	if spinner != nil {
		spinner.Success("Allocations gathered")
	}

	var reports []report.Report
	for i, network := range networks {
		klog.V(4).Infof("partitioning network %s (%s)", network.Name, network.ID)

		taken, err := o.takenRanges(allocations[i])
		if err != nil {
			return nil, err
		}

		parents := o.parents(network)
		if len(parents) == 0 {
			return nil, fmt.Errorf("network %s reports no CIDR block: specify one with --parent", network.ID)
		}

		for _, text := range parents {
			parent, err := iprange.ParseCIDR(text, network.Name)
			if err != nil {
				return nil, err
			}
			partition, err := iprange.FindFree(parent, taken)
			if err != nil {
				return nil, err
			}
			reports = append(reports, report.Build(network, text, partition))
		}
	}
	return reports, nil
}

// parents returns the blocks to partition: the --parent overrides when
// given, the ones reported by the provider otherwise.
func (o *Options) parents(network inventory.Network) []string {
	if len(o.Parents.Prefixes) == 0 {
		return network.CIDRs
	}
	parents := make([]string, len(o.Parents.Prefixes))
	for i, prefix := range o.Parents.Prefixes {
		parents[i] = prefix.String()
	}
	return parents
}

func (o *Options) takenRanges(allocations []inventory.Allocation) ([]iprange.AddressRange, error) {
	taken := make([]iprange.AddressRange, 0, len(allocations)+len(o.Reserve.List))
	for _, a := range allocations {
		r, err := iprange.ParseCIDR(a.CIDR, a.Name)
		if err != nil {
			return nil, fmt.Errorf("allocation %q: %w", a.Name, err)
		}
		taken = append(taken, r)
	}
	for _, entry := range o.Reserve.List {
		label := entry.Label
		if label == "" {
			label = entry.Prefix.String()
		}
		r, err := iprange.ParseCIDR(entry.Prefix.String(), label)
		if err != nil {
			return nil, err
		}
		taken = append(taken, r)
	}
	return taken, nil
}

// spinner starts a progress spinner, except when the output format is
// machine readable.
func (o *Options) spinner(format string, sargs ...interface{}) *pterm.SpinnerPrinter {
	if o.Output != factory.OutputTable {
		return nil
	}
	return o.Printer.StartSpinner(fmt.Sprintf(format, sargs...))
}

func (o *Options) fail(spinner *pterm.SpinnerPrinter, err error) {
	if spinner != nil {
		spinner.Fail(err.Error())
	}
}
