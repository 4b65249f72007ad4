package provisioning

import (
	"fmt"
	"strconv"
	"strings"

	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/rbdpv/internal/k8s"
)

// RegisterPhase renders the persistent volume descriptor from the
// provisioned volume's attributes and submits it to the control plane.
// Submission happens once; failures are not retried.
type RegisterPhase struct{}

// NewRegisterPhase creates the manifest registration phase.
func NewRegisterPhase() *RegisterPhase {
	return &RegisterPhase{}
}

// Name implements the Phase interface.
func (p *RegisterPhase) Name() string {
	return "register"
}

// Provision implements the Phase interface.
func (p *RegisterPhase) Provision(ctx *Context) error {
	req := ctx.Request

	monitors, err := ctx.ClusterInfo.MonitorHosts()
	if err != nil {
		return &RegistrationError{
			Name: req.Name,
			Err:  fmt.Errorf("reading monitor hosts: %w", err),
		}
	}

	pv := k8s.NewPersistentVolume(req.Name, req.SizeMB, req.Filesystem,
		corev1.PersistentVolumeAccessMode(req.AccessMode), monitors, ctx.Config.Pool)

	if err := ctx.Registrar.Register(ctx, pv); err != nil {
		return &RegistrationError{Name: req.Name, Err: err}
	}

	ctx.State.Registered = true
	ctx.Result.Set("persistent_volume", pv.Name)
	ctx.Result.Set("size_mb", strconv.FormatInt(req.SizeMB, 10))
	ctx.Result.Set("access_mode", req.AccessMode)
	ctx.Result.Set("monitors", strings.Join(monitors, ","))
	return nil
}
