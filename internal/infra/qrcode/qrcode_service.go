package qrcode

import (
	"encoding/base64"

	"arena/internal/domain/service"
	"arena/internal/errors"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize = 256
	dataURLPNG  = "data:image/png;base64,"
)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
	}
}

// GeneratePNG encodes content as a square PNG of the configured size
func (s *qrcodeService) GeneratePNG(content string) ([]byte, error) {
	if content == "" {
		return nil, errors.New("qr code content is empty")
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// GenerateDataURL returns the PNG inlined as a data URL, ready for an <img> tag
func (s *qrcodeService) GenerateDataURL(content string) (string, error) {
	pngBytes, err := s.GeneratePNG(content)
	if err != nil {
		return "", err
	}

	return dataURLPNG + base64.StdEncoding.EncodeToString(pngBytes), nil
}
