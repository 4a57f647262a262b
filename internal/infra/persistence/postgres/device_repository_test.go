package postgres

import (
	"context"
	"testing"

	"activator/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunDB builds statements with the postgres dialect without a server.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=activator dbname=activator sslmode=disable",
	}), &gorm.Config{DryRun: true, DisableAutomaticPing: true, SkipDefaultTransaction: true})
	require.NoError(t, err)

	var statements []capturedStatement
	capture := func(tx *gorm.DB) {
		statements = append(statements, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: append([]any(nil), tx.Statement.Vars...),
		})
	}
	require.NoError(t, db.Callback().Delete().After("gorm:delete").Register("test:capture_delete", capture))
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))

	return db, &statements
}

func TestDeviceRepository_DeleteDevices_ScopedToAdmin(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewDeviceRepository(db)
	adminID := uuid.New()

	_, err := repo.DeleteDevices(context.Background(), adminID, entity.DeviceSelector{
		MacID:   "CPU-1",
		AppName: entity.AppWABomb,
	})
	require.NoError(t, err)

	require.Len(t, *statements, 1)
	stmt := (*statements)[0]
	assert.Contains(t, stmt.sql, `DELETE FROM "devices"`)
	assert.Contains(t, stmt.sql, "admin_id = $3")
	assert.Contains(t, stmt.sql, "RETURNING")
	assert.Equal(t, []any{"CPU-1", "WA BOMB", adminID}, stmt.vars)
}

func TestDeviceRepository_DeleteDevices_EmptySelectorDeletesNothing(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewDeviceRepository(db)

	deleted, err := repo.DeleteDevices(context.Background(), uuid.New(), entity.DeviceSelector{})
	require.NoError(t, err)
	assert.Empty(t, deleted)
	assert.Empty(t, *statements)
}

func TestDeviceRepository_FindDevice_ByIdentityKey(t *testing.T) {
	db, statements := newDryRunDB(t)
	repo := NewDeviceRepository(db)

	identity, err := entity.NewIdentity("", "AA:BB", "CC")
	require.NoError(t, err)

	_, _ = repo.FindDevice(context.Background(), identity, entity.AppCubiView)

	require.Len(t, *statements, 1)
	stmt := (*statements)[0]
	assert.Contains(t, stmt.sql, "identity_key = $1 AND app_name = $2")
	require.NotEmpty(t, stmt.vars)
	assert.Equal(t, "hw:5:AA:BB:CC", stmt.vars[0])
	assert.Equal(t, "Cubi-View", stmt.vars[1])
}
