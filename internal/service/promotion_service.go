package service

import (
	"time"

	"qrmenu/internal/domain"
)

type PromotionService struct {
	repo PromotionRepository
	now  func() time.Time
}

func NewPromotionService(repo PromotionRepository) *PromotionService {
	return &PromotionService{repo: repo, now: time.Now}
}

// Validate decides whether code applies to amount and computes the
// discount. A miss on any condition is {valid:false}, a normal outcome;
// only a backend failure returns an error.
func (s *PromotionService) Validate(restaurantID int, code string, amount float64) (domain.PromotionResult, error) {
	promo, err := s.repo.FindActive(restaurantID, code, s.now())
	if err != nil {
		return domain.PromotionResult{}, err
	}
	if promo == nil {
		return domain.PromotionResult{Valid: false}, nil
	}

	if promo.MinOrderAmount != nil && amount < *promo.MinOrderAmount {
		return domain.PromotionResult{Valid: false}, nil
	}

	var discount float64
	if promo.DiscountType == domain.DiscountPercentage {
		discount = amount * promo.DiscountValue / 100
		if promo.MaxDiscountAmount != nil && discount > *promo.MaxDiscountAmount {
			discount = *promo.MaxDiscountAmount
		}
	} else {
		// Flat discounts are applied as-is, even above the order amount.
		discount = promo.DiscountValue
	}

	return domain.PromotionResult{Valid: true, Discount: &discount}, nil
}

var _ PromotionServiceInterface = (*PromotionService)(nil)
