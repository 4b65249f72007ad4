package provisioning

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/imamik/rbdpv/internal/ceph"
)

// CapacityPhase rejects requests that exceed the pool's free capacity.
// Capacity is read fresh on every request; a cached value could accept a
// request the pool can no longer hold.
type CapacityPhase struct{}

// NewCapacityPhase creates the capacity check phase.
func NewCapacityPhase() *CapacityPhase {
	return &CapacityPhase{}
}

// Name implements the Phase interface.
func (p *CapacityPhase) Name() string {
	return "capacity"
}

// Provision implements the Phase interface.
func (p *CapacityPhase) Provision(ctx *Context) error {
	if ctx.Request.SkipSizeCheck {
		ctx.Observer.Printf("[capacity] size check skipped by request")
		ctx.Result.Set("size_check", "skipped")
		return nil
	}

	pool := ctx.Config.Pool
	avail, err := ctx.Ceph.AvailableMB(ctx, pool)
	if err != nil {
		if errors.Is(err, ceph.ErrPoolNotFound) {
			return &UnknownPoolError{Pool: pool}
		}
		return fmt.Errorf("querying capacity for pool %q: %w", pool, err)
	}

	ctx.State.AvailableMB = avail
	ctx.Result.Set("available_mb", strconv.FormatInt(avail, 10))

	if ctx.Request.SizeMB > avail {
		return &CapacityError{RequestedMB: ctx.Request.SizeMB, AvailableMB: avail}
	}
	return nil
}
