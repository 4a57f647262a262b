// Package qrcode renders activation QR codes.
package qrcode

import (
	"encoding/json"

	"activator/config"
	"activator/internal/domain/entity"
	"activator/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const (
	activationQRType = "activation"
	defaultSize      = 256
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance from the qrcode config section
func NewQRCodeService(cfg *config.Config) service.QRCodeService {
	size, level := defaultSize, ""
	if cfg != nil && cfg.QRCode != nil {
		if cfg.QRCode.Size > 0 {
			size = cfg.QRCode.Size
		}
		level = cfg.QRCode.ErrorCorrectionLevel
	}

	return newQRCodeService(size, level)
}

func newQRCodeService(size int, errorCorrectionLevel string) *qrcodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GenerateActivationQR encodes the device's activation payload as a PNG
func (s *qrcodeService) GenerateActivationQR(device *entity.Device) ([]byte, error) {
	if device == nil || device.ActivationKey == "" {
		return nil, errors.New("device has no activation key")
	}

	data := service.ActivationQRPayload{
		Type:              activationQRType,
		AppName:           device.AppName.String(),
		ActivationKey:     device.ActivationKey,
		MacID:             device.MacID,
		MotherboardSerial: device.MotherboardSerial,
		SystemID:          device.SystemID,
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal QR code data")
	}

	qrCode, err := qrcode.New(string(jsonData), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseActivationQR parses scanned QR code content back into its payload
func (s *qrcodeService) ParseActivationQR(qrData string) (*service.ActivationQRPayload, error) {
	var data service.ActivationQRPayload
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != activationQRType {
		return nil, errors.Errorf("invalid QR code type: %s", data.Type)
	}

	if !entity.AppName(data.AppName).IsValid() {
		return nil, errors.Errorf("invalid app name: %s", data.AppName)
	}

	if data.ActivationKey == "" {
		return nil, errors.New("activation key is missing")
	}

	if _, err := entity.NewIdentity(data.SystemID, data.MacID, data.MotherboardSerial); err != nil {
		return nil, errors.Wrap(err, "invalid device identity")
	}

	return &data, nil
}
