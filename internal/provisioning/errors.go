package provisioning

import (
	"fmt"
	"strings"
)

// PreconditionError means the storage cluster is unreachable, unhealthy, or
// not configured on this host. Nothing has been mutated.
type PreconditionError struct {
	Reason string
}

func (e *PreconditionError) Error() string {
	return "precondition failed: " + e.Reason
}

// FieldError is a single request field violation.
type FieldError struct {
	Field   string
	Message string
}

func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationError aggregates every field violation in the request so the
// operator sees all of them at once rather than one per attempt.
type ValidationError struct {
	Violations []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Error())
	}
	return fmt.Sprintf("request validation failed (%d): %s",
		len(e.Violations), strings.Join(msgs, "; "))
}

// CapacityError means the requested size exceeds the pool's free capacity.
type CapacityError struct {
	RequestedMB int64
	AvailableMB int64
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("insufficient capacity: requested %d MB, %d MB available",
		e.RequestedMB, e.AvailableMB)
}

// UnknownPoolError means the target pool is missing from the cluster's
// capacity report entirely. This is a configuration or environment problem,
// not a capacity shortfall.
type UnknownPoolError struct {
	Pool string
}

func (e *UnknownPoolError) Error() string {
	return fmt.Sprintf("pool %q not found in cluster capacity report", e.Pool)
}

// Uniqueness check stages.
const (
	StagePreCreate  = "pre-create"
	StagePostCreate = "post-create"
)

// UniquenessError reports a name collision before creation, or — inverted —
// a volume missing from the catalog immediately after a create command that
// claimed success.
type UniquenessError struct {
	Name  string
	Stage string
}

func (e *UniquenessError) Error() string {
	if e.Stage == StagePostCreate {
		return fmt.Sprintf("volume %q not listed after creation", e.Name)
	}
	return fmt.Sprintf("volume %q already exists", e.Name)
}

// ProvisionError means a map, format, or unmap step failed after the volume
// was created. The volume exists but is not usable; no rollback is
// attempted, the operator must intervene.
type ProvisionError struct {
	Name string
	Step string
	Err  error
}

func (e *ProvisionError) Error() string {
	return fmt.Sprintf("volume %q created but not enlisted: %s failed: %v",
		e.Name, e.Step, e.Err)
}

func (e *ProvisionError) Unwrap() error { return e.Err }

// RegistrationError means manifest submission failed after successful
// provisioning: the volume exists but is not yet usable by the orchestrator.
type RegistrationError struct {
	Name string
	Err  error
}

func (e *RegistrationError) Error() string {
	return fmt.Sprintf("failed to register persistent volume %q: %v", e.Name, e.Err)
}

func (e *RegistrationError) Unwrap() error { return e.Err }
