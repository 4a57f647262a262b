package migrate

import (
	"io/fs"
	"strings"
	"testing"

	"activator/migrations"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Validation(t *testing.T) {
	_, err := New("", migrations.FS, nil)
	require.Error(t, err)

	_, err = New("postgres://localhost/activator", nil, nil)
	require.Error(t, err)

	runner, err := New("postgres://localhost/activator", migrations.FS, nil)
	require.NoError(t, err)
	assert.NotNil(t, runner.log)
}

func TestEmbeddedMigrations(t *testing.T) {
	files, err := fs.Glob(migrations.FS, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		body, err := fs.ReadFile(migrations.FS, name)
		require.NoError(t, err)

		content := string(body)
		assert.True(t, strings.Contains(content, "-- +goose Up"), "%s has no up section", name)
		assert.True(t, strings.Contains(content, "-- +goose Down"), "%s has no down section", name)
	}
}

func TestEmbeddedMigrations_NameUniqueConstraints(t *testing.T) {
	body, err := fs.ReadFile(migrations.FS, "00002_create_devices.sql")
	require.NoError(t, err)

	// Repositories map violations of these indexes to domain errors.
	assert.Contains(t, string(body), "idx_devices_identity_app")
	assert.Contains(t, string(body), "idx_devices_activation_key")
}

func TestEmbeddedMigrations_BackfillLengthPrefixedIdentityKeys(t *testing.T) {
	body, err := fs.ReadFile(migrations.FS, "00004_length_prefix_hardware_identity_key.sql")
	require.NoError(t, err)

	// Matches Identity.Key, which counts bytes.
	assert.Contains(t, string(body), "octet_length(mac_id)")
	assert.Contains(t, string(body), "WHERE identity_scheme = 'hardware'")
}
