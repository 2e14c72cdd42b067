package tests

import (
	"context"
	"errors"
	"strings"
	"testing"

	"qrmenu/internal/domain"
	"qrmenu/internal/mocks"
	"qrmenu/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCheckoutService_EmptyCartRejectedBeforeBackend(t *testing.T) {
	carts := mocks.NewCartStore(t)
	// No expectations on these: any call would fail the test.
	restaurants := mocks.NewRestaurantRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewCheckoutService(restaurants, orders, carts)

	ctx := context.Background()
	carts.On("Load", ctx, "demo", "sess").Return(nil, nil).Once()

	_, err := svc.PlaceOrder(ctx, "demo", "sess", service.CheckoutInfo{CustomerName: "Ali"})

	var validation *domain.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestCheckoutService_PlaceOrder(t *testing.T) {
	carts := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewCheckoutService(restaurants, orders, carts)

	ctx := context.Background()
	carts.On("Load", ctx, "demo", "sess").Return([]domain.CartEntry{
		{ID: 3, Name: "Burger", Price: 500, Quantity: 2},
	}, nil).Once()
	restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 11
		}).Return(nil).Once()
	carts.On("Clear", ctx, "demo", "sess").Return(nil).Once()

	order, err := svc.PlaceOrder(ctx, "demo", "sess", service.CheckoutInfo{
		CustomerName:  "Ali",
		CustomerPhone: "0300",
		TableNumber:   "5",
	})

	assert.NoError(t, err)
	assert.Equal(t, 11, order.ID)
	assert.Equal(t, 7, order.RestaurantID)
	assert.Equal(t, domain.OrderStatusNew, order.Status)
	assert.Equal(t, "dine_in", order.DeliveryType)
	assert.True(t, strings.HasPrefix(order.OrderNumber, "R-"))
	assert.Equal(t, 1000.0, order.SubTotal)
	assert.Equal(t, order.SubTotal, order.TotalAmount)

	assert.Len(t, order.Items, 1)
	item := order.Items[0]
	assert.Equal(t, 3, item.MenuItemID)
	assert.Equal(t, "Burger", item.NameSnapshot)
	assert.Equal(t, 500.0, item.PriceSnapshot)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, 1000.0, item.TotalPrice)
}

func TestCheckoutService_RestaurantGone(t *testing.T) {
	carts := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewCheckoutService(restaurants, orders, carts)

	ctx := context.Background()
	carts.On("Load", ctx, "demo", "sess").Return([]domain.CartEntry{
		{ID: 3, Name: "Burger", Price: 500, Quantity: 1},
	}, nil).Once()
	restaurants.On("GetActiveBySlug", "demo").Return(nil, nil).Once()

	_, err := svc.PlaceOrder(ctx, "demo", "sess", service.CheckoutInfo{})

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCheckoutService_CartKeptOnPersistFailure(t *testing.T) {
	carts := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewCheckoutService(restaurants, orders, carts)

	ctx := context.Background()
	carts.On("Load", ctx, "demo", "sess").Return([]domain.CartEntry{
		{ID: 3, Name: "Burger", Price: 500, Quantity: 1},
	}, nil).Once()
	restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
		Return(errors.New("deadlock detected")).Once()

	_, err := svc.PlaceOrder(ctx, "demo", "sess", service.CheckoutInfo{})
	assert.Error(t, err)
	// Clear was never expected: a failed order keeps the cart intact.
}

func TestCheckoutService_ClearFailureIsNonFatal(t *testing.T) {
	carts := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	orders := mocks.NewOrderRepository(t)
	svc := service.NewCheckoutService(restaurants, orders, carts)

	ctx := context.Background()
	carts.On("Load", ctx, "demo", "sess").Return([]domain.CartEntry{
		{ID: 3, Name: "Burger", Price: 500, Quantity: 1},
	}, nil).Once()
	restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).Return(nil).Once()
	carts.On("Clear", ctx, "demo", "sess").Return(errors.New("connection reset")).Once()

	order, err := svc.PlaceOrder(ctx, "demo", "sess", service.CheckoutInfo{})
	assert.NoError(t, err)
	assert.NotNil(t, order)
}
