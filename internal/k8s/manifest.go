// Package k8s renders persistent volume manifests and submits them to the
// orchestration control plane.
package k8s

import (
	"fmt"

	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"sigs.k8s.io/yaml"
)

// NewPersistentVolume builds the declarative descriptor registering an
// externally provisioned block volume for consumption by workloads.
func NewPersistentVolume(name string, sizeMB int64, fstype string, mode corev1.PersistentVolumeAccessMode, monitors []string, pool string) *corev1.PersistentVolume {
	capacity := resource.NewQuantity(sizeMB*(1<<20), resource.BinarySI)

	return &corev1.PersistentVolume{
		TypeMeta: metav1.TypeMeta{
			APIVersion: "v1",
			Kind:       "PersistentVolume",
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Spec: corev1.PersistentVolumeSpec{
			Capacity: corev1.ResourceList{
				corev1.ResourceStorage: *capacity,
			},
			AccessModes: []corev1.PersistentVolumeAccessMode{mode},
			// The volume outlives any claim bound to it; rbdpv never
			// deletes cluster-side objects.
			PersistentVolumeReclaimPolicy: corev1.PersistentVolumeReclaimRetain,
			PersistentVolumeSource: corev1.PersistentVolumeSource{
				RBD: &corev1.RBDPersistentVolumeSource{
					CephMonitors: monitors,
					RBDImage:     name,
					RBDPool:      pool,
					FSType:       fstype,
				},
			},
		},
	}
}

// MarshalManifest renders a persistent volume to YAML for submission.
func MarshalManifest(pv *corev1.PersistentVolume) ([]byte, error) {
	data, err := yaml.Marshal(pv)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal manifest for %q: %w", pv.Name, err)
	}
	return data, nil
}
