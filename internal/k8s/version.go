package k8s

import (
	"fmt"

	"k8s.io/client-go/discovery"
	"k8s.io/client-go/tools/clientcmd"
)

// PlatformVersion probes the control plane for its server version string
// (e.g. "v1.5.3"). Used by the deprecation gate when no version override is
// configured.
func PlatformVersion(kubeconfigPath string) (string, error) {
	cfg, err := clientcmd.BuildConfigFromFlags("", kubeconfigPath)
	if err != nil {
		return "", fmt.Errorf("failed to build kubeconfig: %w", err)
	}

	dc, err := discovery.NewDiscoveryClientForConfig(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to create discovery client: %w", err)
	}

	info, err := dc.ServerVersion()
	if err != nil {
		return "", fmt.Errorf("failed to query server version: %w", err)
	}
	return info.GitVersion, nil
}
