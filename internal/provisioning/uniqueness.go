package provisioning

import (
	"fmt"
	"strings"
)

// UniquenessPhase rejects requests whose name already exists in the volume
// catalog. The listing is a point-in-time snapshot: a concurrent invocation
// can create the same name between this check and the create call, and
// nothing here closes that window.
type UniquenessPhase struct{}

// NewUniquenessPhase creates the pre-create uniqueness check phase.
func NewUniquenessPhase() *UniquenessPhase {
	return &UniquenessPhase{}
}

// Name implements the Phase interface.
func (p *UniquenessPhase) Name() string {
	return "uniqueness"
}

// Provision implements the Phase interface.
func (p *UniquenessPhase) Provision(ctx *Context) error {
	listed, err := volumeListed(ctx, ctx.Request.Name)
	if err != nil {
		return err
	}
	if listed {
		return &UniquenessError{Name: ctx.Request.Name, Stage: StagePreCreate}
	}
	return nil
}

// volumeListed reports whether name appears in a fresh catalog listing.
// Entries are compared after trimming, matching the catalog's line format.
func volumeListed(ctx *Context, name string) (bool, error) {
	names, err := ctx.Ceph.ListVolumes(ctx)
	if err != nil {
		return false, fmt.Errorf("listing volume catalog: %w", err)
	}
	for _, n := range names {
		if strings.TrimSpace(n) == name {
			return true, nil
		}
	}
	return false, nil
}
