package provisioning

import (
	"fmt"
	"regexp"
	"strconv"
)

// namePattern is the identifier grammar for volume names: alphanumeric plus
// hyphen, starting with a letter or digit.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9-]*$`)

var validFilesystems = map[string]bool{
	"xfs":  true,
	"ext4": true,
}

var validAccessModes = map[string]bool{
	"ReadWriteOnce": true,
	"ReadOnlyMany":  true,
}

// ParameterPhase validates the request fields. Violations are accumulated
// rather than short-circuited so the operator sees every problem at once.
type ParameterPhase struct{}

// NewParameterPhase creates the parameter validation phase.
func NewParameterPhase() *ParameterPhase {
	return &ParameterPhase{}
}

// Name implements the Phase interface.
func (p *ParameterPhase) Name() string {
	return "parameters"
}

// Provision implements the Phase interface.
func (p *ParameterPhase) Provision(ctx *Context) error {
	violations := ValidateRequest(ctx.Request)
	ctx.Result.Set("validation_failures", strconv.Itoa(len(violations)))

	if len(violations) == 0 {
		return nil
	}

	for _, v := range violations {
		ctx.Result.Set("invalid_"+v.Field, v.Message)
	}
	return &ValidationError{Violations: violations}
}

// ValidateRequest checks every request field against its accepted grammar or
// whitelist and returns all violations found.
func ValidateRequest(req Request) []FieldError {
	var violations []FieldError

	if !namePattern.MatchString(req.Name) {
		violations = append(violations, FieldError{
			Field: "name",
			Message: fmt.Sprintf("%q is not a valid volume name"+
				" (alphanumeric and hyphen, starting with a letter or digit)", req.Name),
		})
	}

	if !validFilesystems[req.Filesystem] {
		violations = append(violations, FieldError{
			Field:   "filesystem",
			Message: fmt.Sprintf("%q is not a supported filesystem (xfs, ext4)", req.Filesystem),
		})
	}

	if !validAccessModes[req.AccessMode] {
		violations = append(violations, FieldError{
			Field:   "mode",
			Message: fmt.Sprintf("%q is not a supported access mode (ReadWriteOnce, ReadOnlyMany)", req.AccessMode),
		})
	}

	return violations
}
