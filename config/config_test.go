package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{Metrics: &MetricsConfig{Enabled: true}}
	cfg.applyDefaults()

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.License)
	assert.Equal(t, defaultFixedTermMonths, cfg.License.FixedTermMonths)
	assert.Equal(t, defaultMetricsPath, cfg.Metrics.Path)

	cfg = &Config{License: &LicenseConfig{FixedTermMonths: 12}}
	cfg.applyDefaults()
	assert.Equal(t, 12, cfg.License.FixedTermMonths)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "minimal config",
			cfg:  Config{License: &LicenseConfig{}},
		},
		{
			name: "named timezone",
			cfg:  Config{License: &LicenseConfig{Timezone: "Asia/Kolkata"}},
		},
		{
			name:    "unknown timezone",
			cfg:     Config{License: &LicenseConfig{Timezone: "Mars/Olympus"}},
			wantErr: "license.timezone",
		},
		{
			name: "negative burst",
			cfg: Config{
				License:   &LicenseConfig{},
				DeviceAPI: &DeviceAPIConfig{RateLimit: 1, Burst: -1},
			},
			wantErr: "must not be negative",
		},
		{
			name: "local pubsub",
			cfg: Config{
				License: &LicenseConfig{},
				PubSub:  &PubSubConfig{Provider: "local", LocalEndpoint: "http://localhost:8081"},
			},
		},
		{
			name: "google pubsub without topic",
			cfg: Config{
				License: &LicenseConfig{},
				PubSub:  &PubSubConfig{Provider: "google", ProjectID: "activator"},
			},
			wantErr: "pubsub.topicId",
		},
		{
			name: "unknown pubsub provider",
			cfg: Config{
				License: &LicenseConfig{},
				PubSub:  &PubSubConfig{Provider: "kafka"},
			},
			wantErr: "unknown pubsub.provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)

				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestFindConfigFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte("env:\n  env: test\n"), 0o600))
	t.Chdir(dir)

	path, err := findConfigFile("config", []string{"missing", "config"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config", "config.yaml"), path)

	_, err = findConfigFile("other", []string{"config"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "other.yaml not found")
}
