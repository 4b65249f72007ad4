package provisioning

import "fmt"

// ProvisionPhase runs the create -> verify -> map -> format -> unmap
// sequence. Each step is attempted only if the previous one succeeded, and
// a failure after the create call is terminal: the volume stays behind,
// unformatted or still mapped, for the operator to handle.
type ProvisionPhase struct{}

// NewProvisionPhase creates the volume provisioning phase.
func NewProvisionPhase() *ProvisionPhase {
	return &ProvisionPhase{}
}

// Name implements the Phase interface.
func (p *ProvisionPhase) Name() string {
	return "provision"
}

// Provision implements the Phase interface.
func (p *ProvisionPhase) Provision(ctx *Context) error {
	req := ctx.Request

	if err := ctx.Ceph.CreateVolume(ctx, req.Name, req.SizeMB); err != nil {
		return fmt.Errorf("creating volume %q: %w", req.Name, err)
	}
	ctx.State.Created = true
	ctx.Result.Set("created", "true")

	// The create command can return success without the object actually
	// existing; only a fresh catalog listing confirms it.
	listed, err := volumeListed(ctx, req.Name)
	if err != nil {
		return err
	}
	if !listed {
		return &UniquenessError{Name: req.Name, Stage: StagePostCreate}
	}

	device, err := ctx.Ceph.MapVolume(ctx, req.Name)
	if err != nil {
		return &ProvisionError{Name: req.Name, Step: "map", Err: err}
	}
	ctx.State.DevicePath = device
	ctx.Result.Set("device", device)

	if err := ctx.Formatter.Format(ctx, device, req.Filesystem); err != nil {
		return &ProvisionError{Name: req.Name, Step: "format", Err: err}
	}
	ctx.State.Formatted = true

	if err := ctx.Ceph.UnmapVolume(ctx, req.Name); err != nil {
		return &ProvisionError{Name: req.Name, Step: "unmap", Err: err}
	}

	ctx.Result.Set("filesystem", req.Filesystem)
	return nil
}
