package provisioning_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/rbdpv/internal/provisioning"
)

func TestDeprecated(t *testing.T) {
	tests := []struct {
		name      string
		platform  string
		threshold string
		want      bool
		wantErr   bool
	}{
		{"below threshold", "1.5.3", "1.6.0", false, false},
		{"at threshold", "1.6.0", "1.6.0", true, false},
		{"above threshold", "1.7.2", "1.6.0", true, false},
		{"v-prefixed server version", "v1.9.0", "1.6.0", true, false},
		{"no platform version known", "", "1.6.0", false, false},
		{"no threshold configured", "1.9.0", "", false, false},
		{"unparseable platform version", "not-a-version", "1.6.0", false, true},
		{"unparseable threshold", "1.6.0", "garbage", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := provisioning.Deprecated(tt.platform, tt.threshold)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDeprecationMessage(t *testing.T) {
	msg := provisioning.DeprecationMessage("1.7.0")
	assert.Contains(t, msg, "1.7.0")
	assert.Contains(t, msg, "deprecated")
}
