package service

import (
	"encoding/base64"

	"qrmenu/internal/domain"

	"github.com/skip2/go-qrcode"
)

// qrImageSize matches the 512px PNGs the dashboard prints for tables.
const qrImageSize = 512

type DefaultQRGenerator struct{}

func (DefaultQRGenerator) Encode(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

type QRService struct {
	repo    QRCodeRepository
	encoder QRGenerator
}

func NewQRService(repo QRCodeRepository, encoder QRGenerator) *QRService {
	return &QRService{repo: repo, encoder: encoder}
}

// Generate encodes targetURL as a PNG data URL and stores it with a new
// row. Codes are generated once and never regenerated.
func (s *QRService) Generate(restaurantID int, branchID *int, tableNumber, targetURL string) (*domain.QRCode, error) {
	if tableNumber == "" {
		return nil, domain.NewValidationError("table number is required")
	}
	if targetURL == "" {
		return nil, domain.NewValidationError("target URL is required")
	}

	png, err := s.encoder.Encode(targetURL, qrImageSize)
	if err != nil {
		return nil, err
	}

	qr := &domain.QRCode{
		RestaurantID: restaurantID,
		BranchID:     branchID,
		TableNumber:  tableNumber,
		TargetURL:    targetURL,
		ImageURL:     "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}
	if err := s.repo.CreateQRCode(qr); err != nil {
		return nil, err
	}
	return qr, nil
}

func (s *QRService) List(restaurantID int) ([]domain.QRCode, error) {
	return s.repo.ListQRCodes(restaurantID)
}

var _ QRServiceInterface = (*QRService)(nil)
