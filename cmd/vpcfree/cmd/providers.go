package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vpcfree/vpcfree/pkg/inventory"
	"github.com/vpcfree/vpcfree/pkg/inventory/aws"
	"github.com/vpcfree/vpcfree/pkg/inventory/azure"
	"github.com/vpcfree/vpcfree/pkg/inventory/gcp"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/factory"
	"github.com/vpcfree/vpcfree/pkg/vpcfree/scan"
)

const awsLongHelp = `Inspect the free address space of AWS VPCs.

The command reads the VPCs and their subnets through the EC2 APIs, using the
standard credential chain of the AWS SDK (environment, shared credentials
file, instance profile). Without a network selection it lists the VPCs of
the region.

`

const azureLongHelp = `Inspect the free address space of Azure virtual networks.

The command reads the virtual networks and their subnets through the Azure
Resource Manager APIs, using the default Azure credential chain (environment,
workload identity, managed identity, Azure CLI). Without a network selection
it lists the virtual networks of the subscription.

`

const gcpLongHelp = `Inspect the free address space of GCP networks.

The command reads the networks and their subnetworks through the compute
APIs, using the given credentials file or the application default
credentials. Without a network selection it lists the networks of the
project.

`

// cloudProvider is implemented by the options of the provider subcommands:
// an inventory provider plus its command line surface.
type cloudProvider interface {
	inventory.Provider

	Examples() string
	RegisterFlags(cmd *cobra.Command)
	Initialize(ctx context.Context) error
}

var providerCommands = []func(ctx context.Context, f *factory.Factory) *cobra.Command{
	newAwsCommand,
	newAzureCommand,
	newGcpCommand,
}

func newAwsCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	return newProviderCommand(ctx, f, "aws", "Inspect the free address space of AWS VPCs", awsLongHelp,
		func(o *scan.Options) cloudProvider { return aws.New(o) })
}

func newAzureCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	return newProviderCommand(ctx, f, "azure", "Inspect the free address space of Azure virtual networks", azureLongHelp,
		func(o *scan.Options) cloudProvider { return azure.New(o) })
}

func newGcpCommand(ctx context.Context, f *factory.Factory) *cobra.Command {
	return newProviderCommand(ctx, f, "gcp", "Inspect the free address space of GCP networks", gcpLongHelp,
		func(o *scan.Options) cloudProvider { return gcp.New(o) })
}

func newProviderCommand(ctx context.Context, f *factory.Factory,
	use, short, long string, newProvider func(*scan.Options) cloudProvider) *cobra.Command {
	options := scan.New(f)
	provider := newProvider(options)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Long:  WithTemplate(long + provider.Examples()),
		Args:  cobra.NoArgs,

		RunE: func(_ *cobra.Command, _ []string) error {
			if err := provider.Initialize(ctx); err != nil {
				return err
			}
			return options.Run(ctx, provider)
		},
	}

	options.RegisterFlags(cmd)
	provider.RegisterFlags(cmd)
	return cmd
}
