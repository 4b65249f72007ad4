package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/rbdpv/cmd/rbdpv/handlers"
	"github.com/imamik/rbdpv/internal/provisioning"
)

// Provision returns the command that provisions one volume and registers it.
//
// Required flags:
//
//	--name: volume name (alphanumeric and hyphen, starting with a letter or digit)
//
// Optional flags:
//
//	--size: volume size in MB (default: 0)
//	--filesystem: filesystem to format the volume with, xfs or ext4 (default: xfs)
//	--mode: persistent volume access mode (default: ReadWriteOnce)
//	--skip-size-check: provision even if the pool reports insufficient capacity
//	--config, -c: path to the rbdpv configuration YAML (default: auto-detect rbdpv.yaml)
func Provision() *cobra.Command {
	var (
		configPath    string
		name          string
		sizeMB        int64
		filesystem    string
		accessMode    string
		skipSizeCheck bool
	)

	cmd := &cobra.Command{
		Use:   "provision",
		Short: "Provision a block volume and register it as a persistent volume",
		Long: `Provision a fixed-size block volume on the Ceph cluster and register it
as a persistent volume with the Kubernetes control plane.

The workflow is strictly linear: preflight health checks, parameter
validation, a capacity check, a name uniqueness check, the
create/map/format/unmap sequence, and finally manifest registration.
Any failure aborts the remaining steps and reports its cause; nothing is
retried or rolled back.

Examples:
  # Provision a 100 MB xfs volume
  rbdpv provision --name data1 --size 100

  # Provision an ext4 volume readable by many nodes
  rbdpv provision --name logs --size 500 --filesystem ext4 --mode ReadOnlyMany

  # Bypass the capacity check
  rbdpv provision --name scratch --size 10000 --skip-size-check`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := provisioning.NewRequest(name, sizeMB, filesystem, accessMode, skipSizeCheck)
			return handlers.Provision(cmd.Context(), configPath, req)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: rbdpv.yaml)")
	cmd.Flags().StringVar(&name, "name", "", "Volume name")
	cmd.Flags().Int64Var(&sizeMB, "size", 0, "Volume size in MB")
	cmd.Flags().StringVar(&filesystem, "filesystem", "", "Filesystem type: xfs or ext4 (default: xfs)")
	cmd.Flags().StringVar(&accessMode, "mode", "", "Access mode: ReadWriteOnce or ReadOnlyMany (default: ReadWriteOnce)")
	cmd.Flags().BoolVar(&skipSizeCheck, "skip-size-check", false, "Skip the pool capacity check")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}
