package k8s

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	corev1 "k8s.io/api/core/v1"

	"github.com/imamik/rbdpv/internal/runner"
)

// Registrar submits a rendered persistent volume descriptor to the
// orchestration control plane. Registration is create-only; there is no
// update or delete path.
type Registrar interface {
	Register(ctx context.Context, pv *corev1.PersistentVolume) error
}

// KubectlRegistrar implements Registrar via `kubectl create -f`.
type KubectlRegistrar struct {
	runner     runner.Runner
	kubectl    string
	kubeconfig string
}

// NewKubectlRegistrar creates a Registrar using the given kubectl path.
// kubeconfig may be empty, in which case kubectl's defaults apply.
func NewKubectlRegistrar(r runner.Runner, kubectlPath, kubeconfig string) *KubectlRegistrar {
	return &KubectlRegistrar{
		runner:     r,
		kubectl:    kubectlPath,
		kubeconfig: kubeconfig,
	}
}

// Register renders the manifest into a scoped temporary directory and
// submits it once. The directory is removed on every exit path; submission
// failures propagate unretried.
func (k *KubectlRegistrar) Register(ctx context.Context, pv *corev1.PersistentVolume) error {
	data, err := MarshalManifest(pv)
	if err != nil {
		return err
	}

	dir, err := os.MkdirTemp("", "rbdpv-")
	if err != nil {
		return fmt.Errorf("failed to create manifest workspace: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, pv.Name+".yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	args := []string{"create", "-f", path}
	if k.kubeconfig != "" {
		args = append(args, "--kubeconfig", k.kubeconfig)
	}

	if _, err := k.runner.Run(ctx, k.kubectl, args...); err != nil {
		return fmt.Errorf("failed to submit manifest for %q: %w", pv.Name, err)
	}
	return nil
}
