package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"activator/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newLogConfig(level string, pretty bool) *config.Config {
	cfg := &config.Config{}
	cfg.Env.Log.Level = level
	cfg.Env.Log.Pretty = pretty

	return cfg
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "", want: slog.LevelInfo},
		{input: "warning", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newLogConfig("info", false))
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("Device registered", slog.String("app_name", "WA BOMB"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "Device registered", entry["msg"])
	assert.Equal(t, "WA BOMB", entry["app_name"])
}

func TestNewLogger_PrettyText(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(&buf, newLogConfig("debug", true))
	require.NoError(t, err)

	logger.Debug("Device activated")

	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), `msg="Device activated"`)
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	_, err := newLogger(&bytes.Buffer{}, newLogConfig("loud", false))
	require.Error(t, err)
}
