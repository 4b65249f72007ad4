// Package runner executes external tools through an injectable interface so
// callers never depend on ambient process state (tool locations are explicit
// configuration, not PATH mutation).
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/go-logr/logr"
)

// Runner executes an external tool and returns its standard output.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (string, error)
}

// Exec is the production Runner backed by os/exec.
type Exec struct {
	log logr.Logger
}

// NewExec creates a Runner that logs every invocation through the given logger.
func NewExec(log logr.Logger) *Exec {
	return &Exec{log: log}
}

// Run executes name with args and blocks until it exits. On failure the
// returned error carries the tool's stderr, which is where ceph/rbd/kubectl
// put their diagnostics.
func (e *Exec) Run(ctx context.Context, name string, args ...string) (string, error) {
	e.log.V(1).Info("running tool", "tool", name, "args", strings.Join(args, " "))

	// #nosec G204 - name and args come from validated configuration, not raw user input
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		detail := strings.TrimSpace(stderr.String())
		if detail == "" {
			detail = strings.TrimSpace(stdout.String())
		}
		if detail != "" {
			return "", fmt.Errorf("%s failed: %w: %s", name, err, detail)
		}
		return "", fmt.Errorf("%s failed: %w", name, err)
	}

	return stdout.String(), nil
}
