package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"license": map[string]any{
			"fixedTermMonths": 1,
			"keySecrets": map[string]any{
				"wab": "",
			},
		},
		"deviceApi": map[string]any{
			"rateLimit": 5,
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "LICENSE_FIXEDTERMMONTHS", want: "license.fixedTermMonths"},
		{envKey: "LICENSE_KEYSECRETS_WAB", want: "license.keySecrets.wab"},
		{envKey: "DEVICEAPI_RATELIMIT", want: "deviceApi.rateLimit"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yamlContent := `
env:
  serviceName: activator
http:
  port: 8080
license:
  timezone: UTC
  fixedTermMonths: 1
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), []byte(yamlContent), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	rel, err := filepath.Rel(wd, dir)
	require.NoError(t, err)

	t.Setenv("LICENSE_FIXEDTERMMONTHS", "3")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test", rel)
	require.NoError(t, err)

	assert.Equal(t, "activator", cfg.Env.ServiceName)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.License)
	assert.Equal(t, "UTC", cfg.License.Timezone)
	assert.Equal(t, 3, cfg.License.FixedTermMonths)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("does-not-exist", t.TempDir())
	assert.Error(t, err)
}
