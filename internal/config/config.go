// Package config loads and validates the rbdpv configuration file and
// provides access to the local storage cluster configuration artifact.
package config

import "fmt"

// Tools holds explicit paths to the external tools rbdpv invokes.
// Paths are configuration, not ambient PATH state, so a host with tooling
// in a non-standard location sets them here.
type Tools struct {
	// Ceph is the ceph CLI binary (health and capacity queries).
	Ceph string
	// RBD is the rbd CLI binary (create/list/map/unmap).
	RBD string
	// Kubectl is the orchestration control plane CLI binary.
	Kubectl string
	// MkfsDir optionally holds the directory containing mkfs.* tools.
	// Empty means mkfs.<fstype> is resolved normally.
	MkfsDir string
}

// Config is the full rbdpv configuration.
type Config struct {
	// ClusterEnabled marks the storage cluster integration as available.
	// Provisioning refuses to run on a host where it is not.
	ClusterEnabled bool
	// Pool is the capacity allocation domain volumes are carved from.
	Pool string
	// ClusterConf is the path to the local cluster configuration artifact.
	// Monitor hosts are parsed from it when the manifest is rendered.
	ClusterConf string
	// Kubeconfig is used for the platform version probe and passed to
	// kubectl submissions. Empty means kubectl's own defaults apply.
	Kubeconfig string
	// PlatformVersion overrides the live platform version probe for the
	// deprecation gate (useful offline).
	PlatformVersion string
	// DeprecatedAfter is the platform version at or beyond which this
	// workflow is superseded by native dynamic provisioning.
	DeprecatedAfter string
	// Tools are the external tool paths.
	Tools Tools
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	if c.Pool == "" {
		return fmt.Errorf("pool is required")
	}
	if c.ClusterConf == "" {
		return fmt.Errorf("clusterConf is required")
	}
	if c.Tools.Ceph == "" || c.Tools.RBD == "" || c.Tools.Kubectl == "" {
		return fmt.Errorf("tool paths must not be empty")
	}
	return nil
}
