package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	vpcfreecmd "github.com/vpcfree/vpcfree/cmd/vpcfree/cmd"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()
	cmd := vpcfreecmd.NewRootCommand(ctx)
	cobra.CheckErr(cmd.Execute())
}
