package provisioning

import (
	"context"

	"github.com/imamik/rbdpv/internal/ceph"
	"github.com/imamik/rbdpv/internal/config"
	"github.com/imamik/rbdpv/internal/k8s"
)

// DeviceFormatter writes a filesystem onto a mapped block device.
type DeviceFormatter interface {
	Format(ctx context.Context, device, fstype string) error
}

// State holds the transient results of the phases that have run so far.
// Only Name and SizeMB (carried on the Request) outlive the action; the
// device path exists only between map and unmap.
type State struct {
	// Capacity result (populated by the capacity phase)
	AvailableMB int64

	// Provisioner results
	Created    bool
	DevicePath string
	Formatted  bool

	// Registrar result
	Registered bool
}

// Context wraps all dependencies and state needed by a provisioning phase.
type Context struct {
	context.Context
	Config      *config.Config
	Request     Request
	State       *State
	Result      *Result
	Ceph        ceph.Client
	Formatter   DeviceFormatter
	ClusterInfo config.ClusterInfo
	Registrar   k8s.Registrar
	Observer    Observer
}

// NewContext creates a provisioning context for one request.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	req Request,
	client ceph.Client,
	formatter DeviceFormatter,
	info config.ClusterInfo,
	registrar k8s.Registrar,
	observer Observer,
) *Context {
	return &Context{
		Context:     ctx,
		Config:      cfg,
		Request:     req,
		State:       &State{},
		Result:      NewResult(),
		Ceph:        client,
		Formatter:   formatter,
		ClusterInfo: info,
		Registrar:   registrar,
		Observer:    observer,
	}
}
