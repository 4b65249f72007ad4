package provisioning

import (
	"fmt"

	"k8s.io/apimachinery/pkg/util/version"
)

// Deprecated reports whether the platform version is at or beyond the
// threshold past which the platform's native dynamic provisioning
// supersedes this workflow. Either argument being empty means the gate
// cannot be evaluated and the workflow runs.
func Deprecated(platformVersion, threshold string) (bool, error) {
	if platformVersion == "" || threshold == "" {
		return false, nil
	}

	current, err := version.ParseGeneric(platformVersion)
	if err != nil {
		return false, fmt.Errorf("parsing platform version %q: %w", platformVersion, err)
	}
	limit, err := version.ParseGeneric(threshold)
	if err != nil {
		return false, fmt.Errorf("parsing deprecation threshold %q: %w", threshold, err)
	}

	return current.AtLeast(limit), nil
}

// DeprecationMessage is returned in place of the workflow when the gate
// trips.
func DeprecationMessage(platformVersion string) string {
	return fmt.Sprintf("platform version %s provisions volumes dynamically; "+
		"this workflow is deprecated and was skipped", platformVersion)
}
