package provisioning

import (
	"fmt"

	"github.com/imamik/rbdpv/internal/ceph"
)

// PreflightPhase confirms the storage cluster is reachable, configured, and
// healthy before anything is mutated. All checks are read-only.
type PreflightPhase struct{}

// NewPreflightPhase creates the preflight phase.
func NewPreflightPhase() *PreflightPhase {
	return &PreflightPhase{}
}

// Name implements the Phase interface.
func (p *PreflightPhase) Name() string {
	return "preflight"
}

// Provision implements the Phase interface.
func (p *PreflightPhase) Provision(ctx *Context) error {
	if !ctx.Config.ClusterEnabled {
		return &PreconditionError{Reason: "storage cluster integration is not enabled on this host"}
	}

	if !ctx.ClusterInfo.Exists() {
		return &PreconditionError{
			Reason: fmt.Sprintf("cluster configuration %s not found", ctx.ClusterInfo.Path()),
		}
	}

	status, detail := ctx.Ceph.Health(ctx)
	ctx.Result.Set("cluster_health", string(status))

	switch status {
	case ceph.Unreachable:
		return &PreconditionError{Reason: "cluster health probe failed: " + detail}
	case ceph.Unhealthy:
		return &PreconditionError{Reason: "cluster is not healthy: " + detail}
	}

	return nil
}
