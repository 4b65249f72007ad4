package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeClusterConf(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ceph.conf")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFileClusterInfo_Exists(t *testing.T) {
	path := writeClusterConf(t, "[global]\nmon_host = 10.0.0.1\n")

	assert.True(t, NewFileClusterInfo(path).Exists())
	assert.False(t, NewFileClusterInfo(filepath.Join(t.TempDir(), "missing.conf")).Exists())
	assert.False(t, NewFileClusterInfo(t.TempDir()).Exists(), "a directory is not a configuration artifact")
}

func TestFileClusterInfo_MonitorHosts(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
		wantErr string
	}{
		{
			name:    "single monitor",
			content: "[global]\nmon_host = 10.0.0.1:6789\n",
			want:    []string{"10.0.0.1:6789"},
		},
		{
			name:    "multiple monitors",
			content: "[global]\nmon_host = 10.0.0.1:6789, 10.0.0.2:6789,10.0.0.3:6789\n",
			want:    []string{"10.0.0.1:6789", "10.0.0.2:6789", "10.0.0.3:6789"},
		},
		{
			name:    "space separated key",
			content: "[global]\nmon host = mon-a.example.com:6789\n",
			want:    []string{"mon-a.example.com:6789"},
		},
		{
			name: "comments and other sections ignored",
			content: `# cluster config
[global]
; a comment
fsid = c0ffee
mon_host = 10.0.0.1:6789
[osd]
mon_host = 10.9.9.9:6789
`,
			want: []string{"10.0.0.1:6789"},
		},
		{
			name:    "no monitor entry",
			content: "[global]\nfsid = c0ffee\n",
			wantErr: "no monitor hosts found",
		},
		{
			name:    "monitor entry outside global section",
			content: "[mon.a]\nmon_host = 10.0.0.1:6789\n",
			wantErr: "no monitor hosts found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewFileClusterInfo(writeClusterConf(t, tt.content))

			hosts, err := info.MonitorHosts()
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, hosts)
		})
	}
}

func TestFileClusterInfo_MonitorHosts_MissingFile(t *testing.T) {
	info := NewFileClusterInfo(filepath.Join(t.TempDir(), "missing.conf"))

	_, err := info.MonitorHosts()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open cluster configuration")
}
