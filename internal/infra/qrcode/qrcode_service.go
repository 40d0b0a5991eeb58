// Package qrcode renders voucher redemption codes as QR images.
package qrcode

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"

	"bazaar/internal/domain/service"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// QRCodeData represents the QR code payload structure.
type QRCodeData struct {
	VoucherCode string `json:"voucher_code"`
	Type        string `json:"type"`
}

const payloadType = "voucher"

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	// Set error correction level
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

// GenerateVoucherQR renders a PNG QR image for a redemption code.
func (s *qrcodeService) GenerateVoucherQR(code string) ([]byte, error) {
	if code == "" {
		return nil, errors.New("voucher code must not be empty")
	}

	data := QRCodeData{
		VoucherCode: code,
		Type:        payloadType,
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

// ParseVoucherQR parses QR code data and returns the redemption code.
func (s *qrcodeService) ParseVoucherQR(qrData string) (string, error) {
	var data QRCodeData
	if err := json.Unmarshal([]byte(qrData), &data); err != nil {
		return "", errors.Wrap(err, "failed to unmarshal QR code data")
	}

	if data.Type != payloadType {
		return "", errors.Errorf("invalid QR code type: %s", data.Type)
	}
	if data.VoucherCode == "" {
		return "", errors.New("QR code carries no voucher code")
	}

	return data.VoucherCode, nil
}
