// Package main is the entry point for the rbdpv CLI.
//
// rbdpv provisions a fixed-size block volume on a Ceph cluster and registers
// it as a persistent volume with the Kubernetes control plane. It runs as a
// single on-demand action: one invocation provisions one volume, to
// completion or abort.
//
// For detailed usage information, run:
//
//	rbdpv --help
package main

import (
	"fmt"
	"os"

	"github.com/imamik/rbdpv/cmd/rbdpv/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	commands.SetVersionInfo(version, commit, date)
	if err := commands.Root().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
