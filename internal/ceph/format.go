package ceph

import (
	"context"
	"fmt"
	"path/filepath"
)

// Formatter writes a filesystem onto a mapped block device by invoking the
// filesystem's mkfs tool.
type Formatter struct {
	runner Runner
	binDir string
}

// NewFormatter creates a Formatter. binDir may be empty, in which case the
// mkfs.<fstype> tool is resolved normally.
func NewFormatter(r Runner, binDir string) *Formatter {
	return &Formatter{runner: r, binDir: binDir}
}

// Format runs mkfs.<fstype> against the device path.
func (f *Formatter) Format(ctx context.Context, device, fstype string) error {
	tool := "mkfs." + fstype
	if f.binDir != "" {
		tool = filepath.Join(f.binDir, tool)
	}

	if _, err := f.runner.Run(ctx, tool, device); err != nil {
		return fmt.Errorf("failed to format %s as %s: %w", device, fstype, err)
	}
	return nil
}
