package config

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ClusterInfo exposes the storage cluster topology rbdpv needs. It is an
// interface so tests and alternative topology sources can be injected in
// place of the on-host configuration artifact.
type ClusterInfo interface {
	// Path returns the location of the backing configuration artifact.
	Path() string
	// Exists reports whether the artifact is present on this host.
	Exists() bool
	// MonitorHosts returns the cluster's quorum endpoint addresses.
	MonitorHosts() ([]string, error)
}

// FileClusterInfo reads cluster topology from a ceph.conf style file.
type FileClusterInfo struct {
	path string
}

// NewFileClusterInfo creates a ClusterInfo backed by the given file.
func NewFileClusterInfo(path string) *FileClusterInfo {
	return &FileClusterInfo{path: path}
}

// Path implements ClusterInfo.
func (f *FileClusterInfo) Path() string {
	return f.path
}

// Exists implements ClusterInfo.
func (f *FileClusterInfo) Exists() bool {
	info, err := os.Stat(f.path)
	return err == nil && !info.IsDir()
}

// MonitorHosts implements ClusterInfo. It parses the mon_host entry of the
// [global] section; monitor addresses are comma separated.
func (f *FileClusterInfo) MonitorHosts() ([]string, error) {
	// #nosec G304
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to open cluster configuration: %w", err)
	}
	defer file.Close()

	section := ""
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") || strings.HasPrefix(line, ";") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = strings.TrimSpace(line[1 : len(line)-1])
			continue
		}
		if section != "" && section != "global" {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.ReplaceAll(strings.TrimSpace(key), " ", "_")
		if key != "mon_host" {
			continue
		}

		var hosts []string
		for _, h := range strings.Split(value, ",") {
			if h = strings.TrimSpace(h); h != "" {
				hosts = append(hosts, h)
			}
		}
		if len(hosts) == 0 {
			break
		}
		return hosts, nil
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cluster configuration: %w", err)
	}

	return nil, fmt.Errorf("no monitor hosts found in %s", f.path)
}
