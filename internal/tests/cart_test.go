package tests

import (
	"context"
	"testing"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/mocks"
	"qrmenu/internal/service"
	"qrmenu/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCart_IncrementMergesRepeatedItems(t *testing.T) {
	cart := service.NewCart(nil)
	burger := domain.MenuItem{ID: 1, Name: "Burger", BasePrice: 500, IsAvailable: true}

	cart.Increment(burger)
	cart.Increment(burger)

	entries := cart.Entries()
	assert.Len(t, entries, 1)
	assert.Equal(t, 2, entries[0].Quantity)
	assert.Equal(t, 500.0, entries[0].Price)
	assert.Equal(t, 1000.0, cart.Subtotal())
}

func TestCart_IncrementUsesDiscountPrice(t *testing.T) {
	cart := service.NewCart(nil)
	discount := 350.0
	item := domain.MenuItem{ID: 2, Name: "Deal Burger", BasePrice: 500, DiscountPrice: &discount}

	cart.Increment(item)

	assert.Equal(t, 350.0, cart.Entries()[0].Price)
}

func TestCart_DecrementRemovesAtOne(t *testing.T) {
	cart := service.NewCart([]domain.CartEntry{
		{ID: 1, Name: "Burger", Price: 500, Quantity: 1},
		{ID: 2, Name: "Fries", Price: 200, Quantity: 3},
	})

	cart.Decrement(1)
	assert.Len(t, cart.Entries(), 1)
	assert.Equal(t, 2, cart.Entries()[0].ID)

	cart.Decrement(2)
	assert.Equal(t, 2, cart.Entries()[0].Quantity)
}

func TestCart_DecrementAbsentIsNoop(t *testing.T) {
	cart := service.NewCart([]domain.CartEntry{{ID: 1, Name: "Burger", Price: 500, Quantity: 2}})

	cart.Decrement(99)

	assert.Len(t, cart.Entries(), 1)
	assert.Equal(t, 2, cart.Entries()[0].Quantity)
}

func TestCart_SubtotalSumsLines(t *testing.T) {
	cart := service.NewCart([]domain.CartEntry{
		{ID: 1, Price: 250, Quantity: 2},
		{ID: 2, Price: 100, Quantity: 1},
	})
	assert.Equal(t, 600.0, cart.Subtotal())
}

func TestCartService_IncrementLoadsItemOnce(t *testing.T) {
	store := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewCartService(store, restaurants, menu)

	ctx := context.Background()

	restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	menu.On("GetItem", 7, 3).
		Return(&domain.MenuItem{ID: 3, RestaurantID: 7, Name: "Burger", BasePrice: 500, IsAvailable: true}, nil).Once()
	store.On("Load", ctx, "demo", "sess").Return(nil, nil).Once()
	store.On("Save", ctx, "demo", "sess", mock.Anything).Return(nil).Once()

	cart, err := svc.Increment(ctx, "demo", "sess", 3)
	assert.NoError(t, err)
	assert.Len(t, cart.Entries(), 1)
	assert.Equal(t, "Burger", cart.Entries()[0].Name)
}

func TestCartService_IncrementUnknownItem(t *testing.T) {
	store := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewCartService(store, restaurants, menu)

	restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	menu.On("GetItem", 7, 42).Return(nil, nil).Once()

	_, err := svc.Increment(context.Background(), "demo", "sess", 42)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestCartService_IncrementUnavailableItem(t *testing.T) {
	store := mocks.NewCartStore(t)
	restaurants := mocks.NewRestaurantRepository(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewCartService(store, restaurants, menu)

	restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	menu.On("GetItem", 7, 3).
		Return(&domain.MenuItem{ID: 3, RestaurantID: 7, Name: "Burger", BasePrice: 500, IsAvailable: false}, nil).Once()

	_, err := svc.Increment(context.Background(), "demo", "sess", 3)

	var notFound *domain.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func setupCartRedis(t *testing.T) (*miniredis.Miniredis, *storage.RedisCartStore) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return mr, storage.NewRedisCartStore(client, time.Hour)
}

func TestRedisCartStore_RoundTrip(t *testing.T) {
	_, store := setupCartRedis(t)
	ctx := context.Background()

	entries := []domain.CartEntry{{ID: 1, Name: "Burger", Price: 500, Quantity: 2}}
	assert.NoError(t, store.Save(ctx, "demo", "sess", entries))

	loaded, err := store.Load(ctx, "demo", "sess")
	assert.NoError(t, err)
	assert.Equal(t, entries, loaded)

	assert.NoError(t, store.Clear(ctx, "demo", "sess"))
	loaded, err = store.Load(ctx, "demo", "sess")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestRedisCartStore_SessionsAreIsolated(t *testing.T) {
	_, store := setupCartRedis(t)
	ctx := context.Background()

	assert.NoError(t, store.Save(ctx, "demo", "a", []domain.CartEntry{{ID: 1, Name: "Burger", Price: 500, Quantity: 1}}))

	loaded, err := store.Load(ctx, "demo", "b")
	assert.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestCartService_CorruptedStateDegradesToEmpty(t *testing.T) {
	mr, store := setupCartRedis(t)
	mr.Set("restaurant-cart:demo:sess", "{not json")

	restaurants := mocks.NewRestaurantRepository(t)
	menu := mocks.NewMenuRepository(t)
	svc := service.NewCartService(store, restaurants, menu)

	cart, err := svc.Get(context.Background(), "demo", "sess")
	assert.NoError(t, err)
	assert.True(t, cart.Empty())
}
