package service

// QRCodeService renders voucher redemption codes as QR images for printed
// campaigns and parses scanned payloads back into codes.
type QRCodeService interface {
	// GenerateVoucherQR renders a PNG QR image for a redemption code.
	GenerateVoucherQR(code string) ([]byte, error)

	// ParseVoucherQR extracts the redemption code from scanned QR data.
	ParseVoucherQR(qrData string) (string, error)
}
