package cmd

import (
	"context"
	"flag"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
)

const vpcfreeLongHelp = `vpcfree reports the free address space of your virtual networks.

Given a parent address block and the sub-ranges already taken, vpcfree
computes the gapless partition of the parent into taken and free ranges,
suggesting for every hole the largest aligned CIDR block that fits it.

Allocations are read straight from the cloud provider APIs (AWS, Azure and
GCP), or passed on the command line for everything else.

Examples:
  $ {{ .Executable }} aws --region eu-west-1 --network production
or
  $ {{ .Executable }} cidr 10.0.0.0/24 10.0.0.64/26=workers
`

// NewRootCommand initializes the tree of commands.
func NewRootCommand(ctx context.Context) *cobra.Command {
	f := factory.New()

	rootCmd := &cobra.Command{
		Use:   "vpcfree",
		Short: "Report the free address space of your virtual networks",
		Long:  WithTemplate(vpcfreeLongHelp),
		Args:  cobra.NoArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return f.Initialize(cmd)
		},
	}

	flagset := flag.NewFlagSet("klog", flag.PanicOnError)
	klog.InitFlags(flagset)
	rootCmd.PersistentFlags().AddGoFlagSet(flagset)

	f.AddFlags(rootCmd.PersistentFlags())

	rootCmd.AddCommand(newCidrCommand(ctx, f))
	for _, newProviderCmd := range providerCommands {
		rootCmd.AddCommand(newProviderCmd(ctx, f))
	}
	rootCmd.AddCommand(newVersionCommand(ctx, f))
	rootCmd.AddCommand(newDocsCommand(ctx))
	return rootCmd
}
