package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIdentity(t *testing.T) {
	tests := []struct {
		name       string
		systemID   string
		macID      string
		board      string
		wantErr    error
		wantKey    string
		wantScheme IdentityScheme
	}{
		{name: "system", systemID: " SYS-1 ", wantKey: "sys:SYS-1", wantScheme: IdentitySchemeSystem},
		{name: "hardware", macID: "PROC1", board: "MB1", wantKey: "hw:5:PROC1:MB1", wantScheme: IdentitySchemeHardware},
		{name: "missing board", macID: "PROC1", wantErr: ErrIncompleteIdentity},
		{name: "empty", wantErr: ErrIncompleteIdentity},
		{name: "mixed", systemID: "SYS-1", macID: "PROC1", wantErr: ErrMixedIdentity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := NewIdentity(tt.systemID, tt.macID, tt.board)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantScheme, identity.Scheme)
			assert.Equal(t, tt.wantKey, identity.Key())
		})
	}
}

func TestIdentity_Key_DistinctForDistinctIdentities(t *testing.T) {
	tests := []struct {
		macID    string
		board    string
		systemID string
	}{
		{macID: "AA:BB", board: "CC"},
		{macID: "AA", board: "BB:CC"},
		{macID: "AA:BB:CC", board: "DD"},
		{macID: "2:AA", board: "BB"},
		{macID: "AA", board: "2:BB"},
		{systemID: "AA:BB:CC"},
		{systemID: "hw:2:AA:BB"},
	}

	seen := make(map[string]Identity, len(tests))
	for _, tt := range tests {
		identity, err := NewIdentity(tt.systemID, tt.macID, tt.board)
		require.NoError(t, err)

		key := identity.Key()
		if prev, ok := seen[key]; ok {
			t.Fatalf("identities %+v and %+v share key %q", prev, identity, key)
		}
		seen[key] = identity
	}
}

func TestIdentity_Key_SeparatorInProcessorID(t *testing.T) {
	first, err := NewIdentity("", "AA:BB", "CC")
	require.NoError(t, err)
	second, err := NewIdentity("", "AA", "BB:CC")
	require.NoError(t, err)

	assert.Equal(t, "hw:5:AA:BB:CC", first.Key())
	assert.Equal(t, "hw:2:AA:BB:CC", second.Key())
	assert.NotEqual(t, first.Key(), second.Key())
}

func TestDevice_IsExpiredAt_UsesWholeExpirationDay(t *testing.T) {
	loc := time.UTC
	device := &Device{
		Status:         DeviceStatusActive,
		ExpirationDate: time.Date(2026, time.May, 10, 23, 59, 59, 999000000, loc),
	}

	assert.False(t, device.IsExpiredAt(time.Date(2026, time.May, 10, 0, 0, 1, 0, loc)))
	assert.False(t, device.IsExpiredAt(time.Date(2026, time.May, 10, 23, 59, 59, 999500000, loc)))
	assert.True(t, device.IsExpiredAt(time.Date(2026, time.May, 11, 0, 0, 0, 0, loc)))
}

func TestDevice_EnforceExpiration(t *testing.T) {
	expiry := time.Date(2026, time.May, 10, 23, 59, 59, 999000000, time.UTC)
	later := time.Date(2026, time.June, 1, 12, 0, 0, 0, time.UTC)

	t.Run("expired active flips to inactive", func(t *testing.T) {
		device := &Device{Status: DeviceStatusActive, ExpirationDate: expiry}
		assert.True(t, device.EnforceExpiration(later))
		assert.Equal(t, DeviceStatusInactive, device.Status)
	})

	t.Run("inactive is never moved forward", func(t *testing.T) {
		device := &Device{Status: DeviceStatusInactive, ExpirationDate: expiry}
		assert.False(t, device.EnforceExpiration(expiry.AddDate(0, 0, -5)))
		assert.Equal(t, DeviceStatusInactive, device.Status)
	})

	t.Run("lifetime stays active", func(t *testing.T) {
		device := &Device{Status: DeviceStatusActive, ExpirationDate: LifetimeExpiration}
		assert.True(t, device.IsLifetime())
		assert.False(t, device.EnforceExpiration(time.Date(2600, time.January, 1, 0, 0, 0, 0, time.UTC)))
		assert.Equal(t, DeviceStatusActive, device.Status)
	})
}

func TestAppName_IsValid(t *testing.T) {
	for _, app := range SupportedApps() {
		assert.True(t, app.IsValid(), app)
	}
	assert.False(t, AppName("Unknown").IsValid())
	assert.False(t, AppName("wa bomb").IsValid())
}
