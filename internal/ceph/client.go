// Package ceph wraps the storage cluster's command line surface (ceph, rbd)
// behind an interface the provisioning pipeline can be tested against.
package ceph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// HealthStatus is the transient result of a cluster health probe.
type HealthStatus string

const (
	// Healthy means the live probe reported HEALTH_OK.
	Healthy HealthStatus = "Healthy"
	// Unhealthy means the probe answered with a non-OK status.
	Unhealthy HealthStatus = "Unhealthy"
	// Unreachable means the probe itself failed.
	Unreachable HealthStatus = "Unreachable"
)

// ErrPoolNotFound is returned by AvailableMB when the target pool does not
// appear in the cluster's capacity report. This is an environment problem,
// not a capacity shortfall, and callers surface it differently.
var ErrPoolNotFound = errors.New("pool not found in capacity report")

// Client is the storage cluster surface the provisioning workflow uses.
// Every call maps to one blocking CLI invocation; results are never cached.
type Client interface {
	// Health probes the cluster and returns its status with the raw
	// status detail for diagnostics.
	Health(ctx context.Context) (HealthStatus, string)
	// ListVolumes returns the names of all volumes in the pool.
	ListVolumes(ctx context.Context) ([]string, error)
	// AvailableMB returns the pool's free capacity in MB, read fresh.
	AvailableMB(ctx context.Context, pool string) (int64, error)
	// CreateVolume creates a block volume of sizeMB in the pool.
	CreateVolume(ctx context.Context, name string, sizeMB int64) error
	// MapVolume attaches the volume locally and returns its device path.
	MapVolume(ctx context.Context, name string) (string, error)
	// UnmapVolume detaches a previously mapped volume.
	UnmapVolume(ctx context.Context, name string) error
}

// Runner matches runner.Runner; redeclared here so this package depends only
// on the execution seam it needs.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// CLI implements Client by shelling out to the ceph and rbd tools.
type CLI struct {
	runner Runner
	ceph   string
	rbd    string
	pool   string
}

// NewCLI creates a Client using the given tool paths and pool.
func NewCLI(r Runner, cephPath, rbdPath, pool string) *CLI {
	return &CLI{
		runner: r,
		ceph:   cephPath,
		rbd:    rbdPath,
		pool:   pool,
	}
}

// Health implements Client. The cluster is Healthy only when the status
// string begins with HEALTH_OK.
func (c *CLI) Health(ctx context.Context) (HealthStatus, string) {
	out, err := c.runner.Run(ctx, c.ceph, "health")
	if err != nil {
		return Unreachable, err.Error()
	}

	status := strings.TrimSpace(out)
	if strings.HasPrefix(status, "HEALTH_OK") {
		return Healthy, status
	}
	return Unhealthy, status
}

// ListVolumes implements Client.
func (c *CLI) ListVolumes(ctx context.Context) ([]string, error) {
	out, err := c.runner.Run(ctx, c.rbd, "ls", "--pool", c.pool)
	if err != nil {
		return nil, fmt.Errorf("failed to list volumes: %w", err)
	}

	var names []string
	for _, line := range strings.Split(out, "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

// capacityReport mirrors the JSON shape of the cluster's capacity command.
type capacityReport struct {
	Pools []struct {
		Name  string `json:"name"`
		Stats struct {
			MaxAvail int64 `json:"max_avail"`
		} `json:"stats"`
	} `json:"pools"`
}

// AvailableMB implements Client. The capacity report carries bytes; the
// result is converted to MB.
func (c *CLI) AvailableMB(ctx context.Context, pool string) (int64, error) {
	out, err := c.runner.Run(ctx, c.ceph, "df", "--format", "json")
	if err != nil {
		return 0, fmt.Errorf("failed to query capacity: %w", err)
	}

	var report capacityReport
	if err := json.Unmarshal([]byte(out), &report); err != nil {
		return 0, fmt.Errorf("failed to parse capacity report: %w", err)
	}

	for _, p := range report.Pools {
		if p.Name == pool {
			return p.Stats.MaxAvail / (1 << 20), nil
		}
	}
	return 0, fmt.Errorf("pool %q: %w", pool, ErrPoolNotFound)
}

// CreateVolume implements Client. Only the layering image feature is
// enabled; anything more requires kernel support the mapped hosts may lack.
func (c *CLI) CreateVolume(ctx context.Context, name string, sizeMB int64) error {
	_, err := c.runner.Run(ctx, c.rbd, "create", name,
		"--size", strconv.FormatInt(sizeMB, 10),
		"--pool", c.pool,
		"--image-feature", "layering")
	if err != nil {
		return fmt.Errorf("failed to create volume %q: %w", name, err)
	}
	return nil
}

// MapVolume implements Client.
func (c *CLI) MapVolume(ctx context.Context, name string) (string, error) {
	out, err := c.runner.Run(ctx, c.rbd, "map", name, "--pool", c.pool)
	if err != nil {
		return "", fmt.Errorf("failed to map volume %q: %w", name, err)
	}

	device := strings.TrimSpace(out)
	if device == "" {
		return "", fmt.Errorf("map of volume %q returned no device path", name)
	}
	return device, nil
}

// UnmapVolume implements Client.
func (c *CLI) UnmapVolume(ctx context.Context, name string) error {
	if _, err := c.runner.Run(ctx, c.rbd, "unmap", name, "--pool", c.pool); err != nil {
		return fmt.Errorf("failed to unmap volume %q: %w", name, err)
	}
	return nil
}
