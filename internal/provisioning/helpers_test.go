package provisioning_test

import (
	"context"
	"strings"
	"testing"

	"github.com/go-logr/logr"

	"github.com/imamik/rbdpv/internal/config"
	"github.com/imamik/rbdpv/internal/provisioning"
	"github.com/imamik/rbdpv/internal/provisioning/fakes"
)

// testDeps bundles the fakes wired into a test context.
type testDeps struct {
	Ceph      *fakes.FakeCephClient
	Formatter *fakes.FakeFormatter
	Registrar *fakes.FakeRegistrar
	Info      *fakes.FakeClusterInfo
}

// newTestContext wires a provisioning context against a healthy fake
// cluster with 500 MB available in the default pool.
func newTestContext(t *testing.T, req provisioning.Request) (*provisioning.Context, *testDeps) {
	t.Helper()

	deps := &testDeps{
		Ceph:      fakes.NewFakeCephClient("rbd", 500),
		Formatter: &fakes.FakeFormatter{},
		Registrar: &fakes.FakeRegistrar{},
		Info: &fakes.FakeClusterInfo{
			ConfPath: "/etc/ceph/ceph.conf",
			Present:  true,
			Hosts:    []string{"10.0.0.1:6789", "10.0.0.2:6789"},
		},
	}

	ctx := provisioning.NewContext(context.Background(), config.Default(), req,
		deps.Ceph, deps.Formatter, deps.Info, deps.Registrar,
		provisioning.NewLogrObserver(logr.Discard()))
	return ctx, deps
}

// hasCall reports whether any recorded ceph call starts with prefix.
func hasCall(calls []string, prefix string) bool {
	for _, c := range calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// resultValue returns the value attached to the result record for key.
func resultValue(r *provisioning.Result, key string) (string, bool) {
	for _, f := range r.Fields() {
		if f.Key == key {
			return f.Value, true
		}
	}
	return "", false
}
