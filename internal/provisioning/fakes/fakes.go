// Package fakes provides in-memory implementations of the provisioning
// pipeline's external collaborators for tests.
package fakes

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/rbdpv/internal/ceph"
)

// FakeCephClient simulates the storage cluster CLI surface. Calls records
// every operation in order so tests can assert what ran and what did not.
type FakeCephClient struct {
	HealthStatus ceph.HealthStatus
	HealthDetail string

	Volumes      []string
	ListErr      error
	Capacity     map[string]int64 // pool -> available MB
	CapacityErr  error
	CreateErr    error
	Device       string
	MapErr       error
	UnmapErr     error
	DropOnCreate bool // create reports success without listing the volume

	Calls []string
}

// NewFakeCephClient returns a healthy, empty cluster with the given pool
// capacity.
func NewFakeCephClient(pool string, availableMB int64) *FakeCephClient {
	return &FakeCephClient{
		HealthStatus: ceph.Healthy,
		HealthDetail: "HEALTH_OK",
		Capacity:     map[string]int64{pool: availableMB},
		Device:       "/dev/rbd0",
	}
}

func (f *FakeCephClient) Health(_ context.Context) (ceph.HealthStatus, string) {
	f.Calls = append(f.Calls, "health")
	return f.HealthStatus, f.HealthDetail
}

func (f *FakeCephClient) ListVolumes(_ context.Context) ([]string, error) {
	f.Calls = append(f.Calls, "list")
	if f.ListErr != nil {
		return nil, f.ListErr
	}
	out := make([]string, len(f.Volumes))
	copy(out, f.Volumes)
	return out, nil
}

func (f *FakeCephClient) AvailableMB(_ context.Context, pool string) (int64, error) {
	f.Calls = append(f.Calls, "capacity")
	if f.CapacityErr != nil {
		return 0, f.CapacityErr
	}
	avail, ok := f.Capacity[pool]
	if !ok {
		return 0, fmt.Errorf("pool %q: %w", pool, ceph.ErrPoolNotFound)
	}
	return avail, nil
}

func (f *FakeCephClient) CreateVolume(_ context.Context, name string, sizeMB int64) error {
	f.Calls = append(f.Calls, fmt.Sprintf("create %s %d", name, sizeMB))
	if f.CreateErr != nil {
		return f.CreateErr
	}
	if !f.DropOnCreate {
		f.Volumes = append(f.Volumes, name)
	}
	return nil
}

func (f *FakeCephClient) MapVolume(_ context.Context, name string) (string, error) {
	f.Calls = append(f.Calls, "map "+name)
	if f.MapErr != nil {
		return "", f.MapErr
	}
	return f.Device, nil
}

func (f *FakeCephClient) UnmapVolume(_ context.Context, name string) error {
	f.Calls = append(f.Calls, "unmap "+name)
	return f.UnmapErr
}

// FakeFormatter simulates mkfs.
type FakeFormatter struct {
	Err   error
	Calls []string
}

func (f *FakeFormatter) Format(_ context.Context, device, fstype string) error {
	f.Calls = append(f.Calls, fmt.Sprintf("mkfs.%s %s", fstype, device))
	return f.Err
}

// FakeRegistrar records submitted persistent volume manifests.
type FakeRegistrar struct {
	Err        error
	Registered []*corev1.PersistentVolume
}

func (f *FakeRegistrar) Register(_ context.Context, pv *corev1.PersistentVolume) error {
	if f.Err != nil {
		return f.Err
	}
	f.Registered = append(f.Registered, pv)
	return nil
}

// FakeClusterInfo serves cluster topology without touching the filesystem.
type FakeClusterInfo struct {
	ConfPath string
	Present  bool
	Hosts    []string
	HostsErr error
}

func (f *FakeClusterInfo) Path() string { return f.ConfPath }

func (f *FakeClusterInfo) Exists() bool { return f.Present }

func (f *FakeClusterInfo) MonitorHosts() ([]string, error) {
	if f.HostsErr != nil {
		return nil, f.HostsErr
	}
	return f.Hosts, nil
}
