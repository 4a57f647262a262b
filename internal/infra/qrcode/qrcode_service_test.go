package qrcode

import (
	"encoding/json"
	"testing"

	"activator/config"
	"activator/internal/domain/entity"
	"activator/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDevice() *entity.Device {
	return &entity.Device{
		ID: uuid.New(),
		Identity: entity.Identity{
			Scheme:            entity.IdentitySchemeHardware,
			MacID:             "BFEBFBFF000906EA",
			MotherboardSerial: "MB-001",
		},
		ActivationKey: "WAB-AAAAA-BBBBB-CCCCC-DDDDD-EEEEE",
		AppName:       entity.AppWABomb,
	}
}

func assertPNG(t *testing.T, data []byte) {
	t.Helper()
	require.GreaterOrEqual(t, len(data), 4)
	assert.Equal(t, []byte{0x89, 0x50, 0x4E, 0x47}, data[:4])
}

func TestNewQRCodeService(t *testing.T) {
	tests := []struct {
		name                 string
		errorCorrectionLevel string
	}{
		{"Low error correction", "L"},
		{"Medium error correction", "M"},
		{"High error correction", "Q"},
		{"Highest error correction", "H"},
		{"Default error correction", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(&config.Config{
				QRCode: &config.QRCodeConfig{Size: 128, ErrorCorrectionLevel: tt.errorCorrectionLevel},
			})

			qrBytes, err := svc.GenerateActivationQR(newTestDevice())
			require.NoError(t, err)
			assertPNG(t, qrBytes)
		})
	}
}

func TestQRCodeService_DefaultsWithoutConfig(t *testing.T) {
	svc := NewQRCodeService(&config.Config{})

	assert.Equal(t, defaultSize, svc.(*qrcodeService).size)
}

func TestQRCodeService_GenerateActivationQR_RequiresKey(t *testing.T) {
	svc := newQRCodeService(256, "M")
	device := newTestDevice()
	device.ActivationKey = ""

	_, err := svc.GenerateActivationQR(device)
	assert.Error(t, err)
}

func TestQRCodeService_ParseActivationQR(t *testing.T) {
	svc := newQRCodeService(256, "M")

	valid, err := json.Marshal(service.ActivationQRPayload{
		Type:          "activation",
		AppName:       "Email Storm",
		ActivationKey: "EMS-AAAAA-BBBBB-CCCCC-DDDDD-EEEEE",
		SystemID:      "SYS-1",
	})
	require.NoError(t, err)

	payload, err := svc.ParseActivationQR(string(valid))
	require.NoError(t, err)
	assert.Equal(t, "Email Storm", payload.AppName)
	assert.Equal(t, "SYS-1", payload.SystemID)

	tests := []struct {
		name string
		data string
	}{
		{"not json", "not-json"},
		{"wrong type", `{"type":"subscription","appName":"WA BOMB","activationKey":"k","systemId":"s"}`},
		{"unknown app", `{"type":"activation","appName":"Other","activationKey":"k","systemId":"s"}`},
		{"missing key", `{"type":"activation","appName":"WA BOMB","systemId":"s"}`},
		{"incomplete identity", `{"type":"activation","appName":"WA BOMB","activationKey":"k","macId":"m"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseActivationQR(tt.data)
			assert.Error(t, err)
		})
	}
}
