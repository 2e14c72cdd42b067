package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"qrmenu/internal/domain"
)

// CheckoutInfo is what the diner types into the checkout form.
type CheckoutInfo struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	DeliveryType  string `json:"delivery_type"`
	TableNumber   string `json:"table_number"`
}

type CheckoutService struct {
	restaurants RestaurantRepository
	orders      OrderRepository
	carts       CartStore
	now         func() time.Time
}

func NewCheckoutService(restaurants RestaurantRepository, orders OrderRepository, carts CartStore) *CheckoutService {
	return &CheckoutService{
		restaurants: restaurants,
		orders:      orders,
		carts:       carts,
		now:         time.Now,
	}
}

// orderNumber is a human-readable, time-based display number. It is unique
// enough for a dashboard list, not a global identity.
func (s *CheckoutService) orderNumber() string {
	return fmt.Sprintf("R-%d", s.now().UnixMilli())
}

// PlaceOrder turns a non-empty cart into a persisted order. The order row
// and its line items are written in one transaction, so a failed line item
// insert leaves no orphan order behind.
func (s *CheckoutService) PlaceOrder(ctx context.Context, slug, sessionID string, info CheckoutInfo) (*domain.Order, error) {
	entries, err := s.carts.Load(ctx, slug, sessionID)
	if err != nil {
		log.Printf("[checkout] ignoring unreadable cart for %s: %v", slug, err)
		entries = nil
	}
	if len(entries) == 0 {
		return nil, domain.NewValidationError("cart is empty")
	}

	rest, err := s.restaurants.GetActiveBySlug(slug)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, &domain.NotFoundError{Entity: "restaurant"}
	}

	cart := NewCart(entries)
	subTotal := cart.Subtotal()

	deliveryType := info.DeliveryType
	if deliveryType == "" {
		deliveryType = "dine_in"
	}

	order := &domain.Order{
		RestaurantID:  rest.ID,
		OrderNumber:   s.orderNumber(),
		CustomerName:  info.CustomerName,
		CustomerPhone: info.CustomerPhone,
		DeliveryType:  deliveryType,
		TableNumber:   info.TableNumber,
		SubTotal:      subTotal,
		TotalAmount:   subTotal,
		Status:        domain.OrderStatusNew,
	}
	for _, entry := range entries {
		order.Items = append(order.Items, domain.OrderItem{
			MenuItemID:    entry.ID,
			NameSnapshot:  entry.Name,
			PriceSnapshot: entry.Price,
			Quantity:      entry.Quantity,
			TotalPrice:    entry.Price * float64(entry.Quantity),
		})
	}

	if err := s.orders.CreateOrder(order); err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, slug, sessionID); err != nil {
		log.Printf("[checkout] failed to clear cart for %s: %v", slug, err)
	}

	return order, nil
}

var _ CheckoutServiceInterface = (*CheckoutService)(nil)
