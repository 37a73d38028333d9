package service

// QRCodeService renders text payloads as QR code images
type QRCodeService interface {
	// GeneratePNG encodes content as a PNG QR code
	GeneratePNG(content string) ([]byte, error)

	// GenerateDataURL encodes content as a data:image/png;base64 URL
	GenerateDataURL(content string) (string, error)
}
