package service

import "activator/internal/domain/entity"

// QRCodeService renders activation QR codes for installed clients to scan.
type QRCodeService interface {
	// GenerateActivationQR encodes the device's application, identity and activation key as a PNG.
	GenerateActivationQR(device *entity.Device) ([]byte, error)

	// ParseActivationQR decodes the payload of an activation QR code.
	ParseActivationQR(qrData string) (*ActivationQRPayload, error)
}

// ActivationQRPayload is the JSON content of an activation QR code.
type ActivationQRPayload struct {
	Type              string `json:"type"`
	AppName           string `json:"appName"`
	ActivationKey     string `json:"activationKey"`
	MacID             string `json:"macId,omitempty"`
	MotherboardSerial string `json:"motherboardSerial,omitempty"`
	SystemID          string `json:"systemId,omitempty"`
}
