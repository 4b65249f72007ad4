package provisioning_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"

	"github.com/imamik/rbdpv/internal/provisioning"
)

func TestRun_HappyPath(t *testing.T) {
	req := provisioning.NewRequest("data1", 100, "xfs", "ReadWriteOnce", false)
	ctx, deps := newTestContext(t, req)

	require.NoError(t, provisioning.Run(ctx, provisioning.Phases()))

	// Every external call, in workflow order.
	assert.Equal(t, []string{
		"health",
		"capacity",
		"list",
		"create data1 100",
		"list",
		"map data1",
		"unmap data1",
	}, deps.Ceph.Calls)
	assert.Equal(t, []string{"mkfs.xfs /dev/rbd0"}, deps.Formatter.Calls)

	require.Len(t, deps.Registrar.Registered, 1, "manifest is submitted exactly once")
	pv := deps.Registrar.Registered[0]
	assert.Equal(t, "data1", pv.Name)
	capacity := pv.Spec.Capacity[corev1.ResourceStorage]
	assert.Equal(t, 0, capacity.Cmp(resource.MustParse("100Mi")))

	assert.False(t, ctx.Result.Failed())
	assert.Empty(t, ctx.Result.Message())
}

func TestRun_InsufficientCapacityAbortsBeforeCreate(t *testing.T) {
	req := provisioning.NewRequest("data1", 1000, "", "", false)
	ctx, deps := newTestContext(t, req)

	err := provisioning.Run(ctx, provisioning.Phases())
	require.Error(t, err)

	var cerr *provisioning.CapacityError
	require.ErrorAs(t, err, &cerr)
	assert.False(t, hasCall(deps.Ceph.Calls, "create"), "no create call after a capacity failure")
	assert.Empty(t, deps.Registrar.Registered)
	assert.True(t, ctx.Result.Failed())
	assert.Contains(t, ctx.Result.Message(), "requested 1000 MB, 500 MB available")
}

func TestRun_SkipSizeCheckBypassesCapacity(t *testing.T) {
	req := provisioning.NewRequest("data1", 1000, "", "", true)
	ctx, deps := newTestContext(t, req)

	require.NoError(t, provisioning.Run(ctx, provisioning.Phases()))
	assert.False(t, hasCall(deps.Ceph.Calls, "capacity"))
	assert.True(t, hasCall(deps.Ceph.Calls, "create"))
}

func TestRun_NameCollisionAbortsBeforeCreate(t *testing.T) {
	req := provisioning.NewRequest("data1", 100, "", "", false)
	ctx, deps := newTestContext(t, req)
	deps.Ceph.Volumes = []string{"data1"}

	err := provisioning.Run(ctx, provisioning.Phases())
	require.Error(t, err)

	var uerr *provisioning.UniquenessError
	require.ErrorAs(t, err, &uerr)
	assert.Equal(t, provisioning.StagePreCreate, uerr.Stage)
	assert.False(t, hasCall(deps.Ceph.Calls, "create"))
}

func TestRun_InvalidRequestAbortsBeforeAnyMutation(t *testing.T) {
	req := provisioning.NewRequest("bad name!", 10, "", "", false)
	ctx, deps := newTestContext(t, req)

	err := provisioning.Run(ctx, provisioning.Phases())
	require.Error(t, err)

	var verr *provisioning.ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Violations, 1)
	assert.Equal(t, "name", verr.Violations[0].Field)

	assert.Equal(t, []string{"health"}, deps.Ceph.Calls,
		"only the read-only preflight probe ran before validation aborted")
	assert.Empty(t, deps.Registrar.Registered)
}

func TestRun_SilentCreateFailureAbortsBeforeMap(t *testing.T) {
	req := provisioning.NewRequest("data1", 100, "", "", false)
	ctx, deps := newTestContext(t, req)
	deps.Ceph.DropOnCreate = true

	err := provisioning.Run(ctx, provisioning.Phases())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not listed after creation")

	assert.False(t, hasCall(deps.Ceph.Calls, "map"))
	assert.Empty(t, deps.Formatter.Calls)
	assert.False(t, hasCall(deps.Ceph.Calls, "unmap"))
	assert.Empty(t, deps.Registrar.Registered, "no registration after a silent create failure")
}

func TestRun_UnmapFailureIsTerminal(t *testing.T) {
	req := provisioning.NewRequest("data1", 100, "", "", false)
	ctx, deps := newTestContext(t, req)
	deps.Ceph.UnmapErr = errors.New("rbd failed: device busy")

	err := provisioning.Run(ctx, provisioning.Phases())
	require.Error(t, err, "provisioning fails even though the volume object was created")

	var perr *provisioning.ProvisionError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "unmap", perr.Step)
	assert.Empty(t, deps.Registrar.Registered, "no registration of a half-provisioned volume")
	assert.True(t, ctx.Result.Failed())
	assert.Contains(t, ctx.Result.Message(), "created but not enlisted")
}

func TestRun_RegistrationFailureIsTerminal(t *testing.T) {
	req := provisioning.NewRequest("data1", 100, "", "", false)
	ctx, deps := newTestContext(t, req)
	deps.Registrar.Err = errors.New("kubectl failed: connection refused")

	err := provisioning.Run(ctx, provisioning.Phases())
	require.Error(t, err)

	var rerr *provisioning.RegistrationError
	require.ErrorAs(t, err, &rerr)
	assert.True(t, hasCall(deps.Ceph.Calls, "unmap"), "provisioning itself completed")
	assert.True(t, ctx.Result.Failed())
}

func TestPhases_Order(t *testing.T) {
	phases := provisioning.Phases()
	names := make([]string, 0, len(phases))
	for _, p := range phases {
		names = append(names, p.Name())
	}
	assert.Equal(t, []string{
		"preflight", "parameters", "capacity", "uniqueness", "provision", "register",
	}, names)
}
