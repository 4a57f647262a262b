package keygen

import (
	"regexp"
	"testing"

	"activator/config"
	"activator/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keyPattern = regexp.MustCompile(`^(WAB|EMS|CBV)(-[A-Z2-7]{5}){5}$`)

func newTestGenerator(secrets map[string]string) *hmacGenerator {
	return NewGenerator(&config.Config{License: &config.LicenseConfig{KeySecrets: secrets}}).(*hmacGenerator)
}

func TestGenerator_FormatPerApp(t *testing.T) {
	gen := newTestGenerator(map[string]string{"wab": "s1", "ems": "s2", "cbv": "s3"})
	identity, err := entity.NewIdentity("", "BFEBFBFF000906EA", "MB-001")
	require.NoError(t, err)

	tests := []struct {
		app    entity.AppName
		prefix string
	}{
		{app: entity.AppWABomb, prefix: "WAB-"},
		{app: entity.AppEmailStorm, prefix: "EMS-"},
		{app: entity.AppCubiView, prefix: "CBV-"},
	}

	for _, tt := range tests {
		t.Run(string(tt.app), func(t *testing.T) {
			key, err := gen.Generate(tt.app, identity)
			require.NoError(t, err)
			assert.Regexp(t, keyPattern, key)
			assert.Equal(t, tt.prefix, key[:4])
		})
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	gen := newTestGenerator(map[string]string{"wab": "secret"})
	identity, err := entity.NewIdentity("SYS-1", "", "")
	require.NoError(t, err)

	first, err := gen.Generate(entity.AppWABomb, identity)
	require.NoError(t, err)
	second, err := gen.Generate(entity.AppWABomb, identity)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := entity.NewIdentity("SYS-2", "", "")
	require.NoError(t, err)
	third, err := gen.Generate(entity.AppWABomb, other)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
}

func TestGenerator_DistinctIdentitiesGetDistinctKeys(t *testing.T) {
	gen := newTestGenerator(map[string]string{"wab": "secret"})

	tests := []struct {
		name     string
		systemID string
		macID    string
		board    string
	}{
		{name: "separator in processor id", macID: "AA:BB", board: "CC"},
		{name: "separator in board serial", macID: "AA", board: "BB:CC"},
		{name: "separators in both", macID: "AA:BB", board: "CC:DD"},
		{name: "length-like processor id", macID: "5:AA", board: "BB:CC"},
		{name: "system id with separators", systemID: "AA:BB:CC"},
		{name: "system id shaped like a hardware key", systemID: "hw:2:AA:BB:CC"},
	}

	identityKeys := make(map[string]string, len(tests))
	activationKeys := make(map[string]string, len(tests))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := entity.NewIdentity(tt.systemID, tt.macID, tt.board)
			require.NoError(t, err)

			key, err := gen.Generate(entity.AppWABomb, identity)
			require.NoError(t, err)

			if prev, ok := identityKeys[identity.Key()]; ok {
				t.Fatalf("identity key %q shared with %q", identity.Key(), prev)
			}
			if prev, ok := activationKeys[key]; ok {
				t.Fatalf("activation key %q shared with %q", key, prev)
			}
			identityKeys[identity.Key()] = tt.name
			activationKeys[key] = tt.name
		})
	}
	assert.Len(t, activationKeys, len(tests))
}

func TestGenerator_SecretChangesKey(t *testing.T) {
	identity, err := entity.NewIdentity("SYS-1", "", "")
	require.NoError(t, err)

	a, err := newTestGenerator(map[string]string{"wab": "one"}).Generate(entity.AppWABomb, identity)
	require.NoError(t, err)
	b, err := newTestGenerator(map[string]string{"wab": "two"}).Generate(entity.AppWABomb, identity)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestGenerator_Failures(t *testing.T) {
	gen := newTestGenerator(map[string]string{"wab": "secret"})
	identity, err := entity.NewIdentity("SYS-1", "", "")
	require.NoError(t, err)

	_, err = gen.Generate("Unknown", identity)
	assert.Error(t, err)

	_, err = gen.Generate(entity.AppEmailStorm, identity)
	assert.Error(t, err)
}
