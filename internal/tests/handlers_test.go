package tests

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "qrmenu/internal/api/http"
	"qrmenu/internal/domain"
	"qrmenu/internal/mocks"
	"qrmenu/internal/service"
	"qrmenu/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var testSecret = []byte("test-secret")

type handlerMocks struct {
	restaurants *mocks.RestaurantRepository
	menu        *mocks.MenuRepository
	orders      *mocks.OrderRepository
	promotions  *mocks.PromotionRepository
	members     *mocks.MemberRepository
	qrRepo      *mocks.QRCodeRepository
	qrGen       *mocks.QRGenerator
	events      *mocks.EventRepository
	publisher   *mocks.EventPublisher
	carts       *storage.RedisCartStore
	mr          *miniredis.Miniredis
}

func newTestRouter(t *testing.T) (http.Handler, *handlerMocks) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	m := &handlerMocks{
		restaurants: mocks.NewRestaurantRepository(t),
		menu:        mocks.NewMenuRepository(t),
		orders:      mocks.NewOrderRepository(t),
		promotions:  mocks.NewPromotionRepository(t),
		members:     mocks.NewMemberRepository(t),
		qrRepo:      mocks.NewQRCodeRepository(t),
		qrGen:       mocks.NewQRGenerator(t),
		events:      mocks.NewEventRepository(t),
		publisher:   mocks.NewEventPublisher(t),
		carts:       storage.NewRedisCartStore(client, time.Hour),
		mr:          mr,
	}

	handler := httpapi.NewHandler(
		service.NewMenuService(m.restaurants, m.menu, m.orders, m.promotions),
		service.NewCartService(m.carts, m.restaurants, m.menu),
		service.NewCheckoutService(m.restaurants, m.orders, m.carts),
		service.NewPromotionService(m.promotions),
		service.NewProvisionService(m.restaurants, m.members),
		service.NewQRService(m.qrRepo, m.qrGen),
		service.NewAnalyticsService(m.events, m.publisher),
		testSecret,
	)
	return httpapi.NewRouter(handler), m
}

func signToken(t *testing.T, userID int, email string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString(testSecret)
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return signed
}

func TestHealthCheck(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestGetMenu(t *testing.T) {
	router, m := newTestRouter(t)

	m.restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", Name: "Demo", IsActive: true}, nil).Once()
	m.menu.On("ListActiveCategories", 7).Return([]domain.MenuCategory{{ID: 1, Name: "Burgers"}}, nil).Once()
	m.menu.On("ListAvailableItems", 7).Return([]domain.MenuItem{{ID: 3, Name: "Burger", BasePrice: 500}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu/demo?table=5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var menu domain.Menu
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menu))
	assert.Equal(t, "demo", menu.Restaurant.Slug)
	assert.Equal(t, "5", menu.Table)
	assert.Len(t, menu.Items, 1)
}

func TestGetMenu_NotFound(t *testing.T) {
	router, m := newTestRouter(t)

	m.restaurants.On("GetActiveBySlug", "gone").Return(nil, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu/gone", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartEndpoints_IncrementTwiceMerges(t *testing.T) {
	router, m := newTestRouter(t)

	m.restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Twice()
	m.menu.On("GetItem", 7, 3).
		Return(&domain.MenuItem{ID: 3, RestaurantID: 7, Name: "Burger", BasePrice: 500, IsAvailable: true}, nil).Twice()

	req := httptest.NewRequest(http.MethodPost, "/api/menu/demo/cart/items/3", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)

	req = httptest.NewRequest(http.MethodPost, "/api/menu/demo/cart/items/3", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items    []domain.CartEntry `json:"items"`
		Subtotal float64            `json:"subtotal"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Items, 1)
	assert.Equal(t, 2, body.Items[0].Quantity)
	assert.Equal(t, 1000.0, body.Subtotal)
}

func TestCartEndpoints_Decrement(t *testing.T) {
	router, m := newTestRouter(t)

	assert.NoError(t, m.carts.Save(context.Background(), "demo", "sess",
		[]domain.CartEntry{{ID: 3, Name: "Burger", Price: 500, Quantity: 1}}))

	req := httptest.NewRequest(http.MethodDelete, "/api/menu/demo/cart/items/3", nil)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "sess"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Items []domain.CartEntry `json:"items"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Empty(t, body.Items)
}

func TestCheckoutEndpoint(t *testing.T) {
	router, m := newTestRouter(t)

	assert.NoError(t, m.carts.Save(context.Background(), "demo", "sess",
		[]domain.CartEntry{{ID: 3, Name: "Burger", Price: 500, Quantity: 2}}))

	m.restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", IsActive: true}, nil).Once()
	m.orders.On("CreateOrder", mock.AnythingOfType("*domain.Order")).
		Run(func(args mock.Arguments) {
			args.Get(0).(*domain.Order).ID = 11
		}).Return(nil).Once()

	payload, _ := json.Marshal(service.CheckoutInfo{CustomerName: "Ali", CustomerPhone: "0300"})
	req := httptest.NewRequest(http.MethodPost, "/api/menu/demo/checkout", bytes.NewReader(payload))
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "sess"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var order domain.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.Equal(t, 11, order.ID)
	assert.Equal(t, 1000.0, order.TotalAmount)

	// The stored cart is gone after a successful checkout.
	assert.False(t, m.mr.Exists("restaurant-cart:demo:sess"))
}

func TestCheckoutEndpoint_EmptyCart(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/menu/demo/checkout", bytes.NewReader([]byte(`{}`)))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWhatsAppLinkEndpoint(t *testing.T) {
	router, m := newTestRouter(t)

	assert.NoError(t, m.carts.Save(context.Background(), "demo", "sess",
		[]domain.CartEntry{{ID: 3, Name: "Burger", Price: 500, Quantity: 1}}))

	m.restaurants.On("GetActiveBySlug", "demo").
		Return(&domain.Restaurant{ID: 7, Slug: "demo", WhatsappNumber: "923001234567", IsActive: true}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/menu/demo/whatsapp-link?table=5", nil)
	req.AddCookie(&http.Cookie{Name: "cart_session", Value: "sess"})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["url"], "https://wa.me/923001234567?text=")
}

func TestValidatePromotionEndpoint(t *testing.T) {
	router, m := newTestRouter(t)

	m.promotions.On("FindActive", 7, "SAVE10", mock.AnythingOfType("time.Time")).
		Return(&domain.Promotion{
			ID: 1, RestaurantID: 7, Code: "SAVE10",
			DiscountType: domain.DiscountPercentage, DiscountValue: 10,
			MaxDiscountAmount: floatPtr(500), IsActive: true,
		}, nil).Once()

	payload := []byte(`{"restaurantId":7,"code":"SAVE10","amount":4000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/promotions/validate", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result domain.PromotionResult
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Valid)
	assert.NotNil(t, result.Discount)
	assert.Equal(t, 400.0, *result.Discount)
}

func TestValidatePromotionEndpoint_MissingCode(t *testing.T) {
	router, _ := newTestRouter(t)

	payload := []byte(`{"restaurantId":7,"amount":4000}`)
	req := httptest.NewRequest(http.MethodPost, "/api/promotions/validate", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogEventEndpoint(t *testing.T) {
	router, m := newTestRouter(t)

	m.events.On("InsertEvent", mock.AnythingOfType("*domain.Event")).Return(nil).Once()
	m.publisher.On("PublishEvent", mock.Anything, mock.AnythingOfType("domain.EventMessage")).Return(nil).Once()

	payload := []byte(`{"restaurantId":7,"eventType":"menu_view","payload":{"table":"5"}}`)
	req := httptest.NewRequest(http.MethodPost, "/api/analytics/event", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]bool
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body["ok"])
}

func TestDashboard_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/items", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboard_RejectsForgedToken(t *testing.T) {
	router, _ := newTestRouter(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"user_id": 5})
	forged, err := token.SignedString([]byte("wrong-secret"))
	assert.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/items", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDashboard_CreateDefaultRestaurant(t *testing.T) {
	router, m := newTestRouter(t)

	m.members.On("MemberSlug", 5).Return("my-cafe", nil).Once()

	req := httptest.NewRequest(http.MethodPost, "/api/restaurants/create-default", nil)
	req.AddCookie(&http.Cookie{Name: "token", Value: signToken(t, 5, "owner@example.com")})
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "my-cafe", body["slug"])
}

func TestDashboard_ListOrdersPassesFilter(t *testing.T) {
	router, m := newTestRouter(t)

	m.orders.On("ListOrders", 7, service.OrderFilter{Status: "new", Query: "ali"}).
		Return([]domain.Order{{ID: 11, RestaurantID: 7, OrderNumber: "R-1"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/orders?status=new&q=ali", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 5, "owner@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var orders []domain.Order
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	assert.Len(t, orders, 1)
}

func TestDashboard_CreateQRCode(t *testing.T) {
	router, m := newTestRouter(t)

	m.qrGen.On("Encode", "https://menu.example.com/demo?table=5", 512).
		Return([]byte("png-bytes"), nil).Once()
	m.qrRepo.On("CreateQRCode", mock.AnythingOfType("*domain.QRCode")).Return(nil).Once()

	payload := []byte(`{"restaurantId":7,"tableNumber":"5","targetUrl":"https://menu.example.com/demo?table=5"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/qr", bytes.NewReader(payload))
	req.Header.Set("Authorization", "Bearer "+signToken(t, 5, "owner@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var body struct {
		QR domain.QRCode `json:"qr"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "5", body.QR.TableNumber)
	assert.Contains(t, body.QR.ImageURL, "data:image/png;base64,")
}

func TestDashboard_GetStats(t *testing.T) {
	router, m := newTestRouter(t)

	m.orders.On("CountOrdersToday", 7).Return(4, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/restaurants/7/stats", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, 5, "owner@example.com"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 4.0, body["orders_today"])
}
