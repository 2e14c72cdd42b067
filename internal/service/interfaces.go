package service

import (
	"context"
	"time"

	"qrmenu/internal/domain"
)

// Repositories return (nil, nil) on a plain lookup miss; a non-nil error
// always means the backend itself failed.

type RestaurantRepository interface {
	GetActiveBySlug(slug string) (*domain.Restaurant, error)
	GetBySlug(slug string) (*domain.Restaurant, error)
	SlugExists(slug string) (bool, error)
	OwnedSlug(userID int) (string, error)
	CreateRestaurant(rest *domain.Restaurant) error
	UpdateSettings(id int, name, description, whatsapp, primaryColor string) error
}

type MemberRepository interface {
	MemberSlug(userID int) (string, error)
	AddMember(restaurantID, userID int, role string) error
}

type MenuRepository interface {
	ListActiveCategories(restaurantID int) ([]domain.MenuCategory, error)
	ListAvailableItems(restaurantID int) ([]domain.MenuItem, error)
	ListCategories(restaurantID int) ([]domain.MenuCategory, error)
	CountCategories(restaurantID int) (int, error)
	CreateCategory(cat *domain.MenuCategory) error
	UpdateCategory(cat *domain.MenuCategory) error
	ListItems(restaurantID int) ([]domain.MenuItem, error)
	GetItem(restaurantID, itemID int) (*domain.MenuItem, error)
	CreateItem(item *domain.MenuItem) error
	UpdateItem(item *domain.MenuItem) error
	DeleteItem(restaurantID, itemID int) (int64, error)
}

// OrderFilter narrows the dashboard order list.
type OrderFilter struct {
	Status string
	Query  string
}

type OrderRepository interface {
	// CreateOrder persists the order row and all of its line items in a
	// single transaction.
	CreateOrder(order *domain.Order) error
	ListOrders(restaurantID int, filter OrderFilter) ([]domain.Order, error)
	UpdateOrderStatus(restaurantID, orderID int, status string) (int64, error)
	CountOrdersToday(restaurantID int) (int, error)
}

type PromotionRepository interface {
	// FindActive matches restaurant, code, the active flag and the
	// inclusive [start_at, end_at] window against at.
	FindActive(restaurantID int, code string, at time.Time) (*domain.Promotion, error)
	CreatePromotion(promo *domain.Promotion) error
	ListPromotions(restaurantID int) ([]domain.Promotion, error)
}

type QRCodeRepository interface {
	CreateQRCode(qr *domain.QRCode) error
	ListQRCodes(restaurantID int) ([]domain.QRCode, error)
}

type EventRepository interface {
	InsertEvent(event *domain.Event) error
}

type EventPublisher interface {
	PublishEvent(ctx context.Context, msg domain.EventMessage) error
}

// CartStore is the injected persistence boundary for diner carts, keyed by
// restaurant slug and a per-browser session id.
type CartStore interface {
	Load(ctx context.Context, slug, sessionID string) ([]domain.CartEntry, error)
	Save(ctx context.Context, slug, sessionID string, entries []domain.CartEntry) error
	Clear(ctx context.Context, slug, sessionID string) error
}

// CounterStore keeps per-day event counters for the aggregation consumer.
type CounterStore interface {
	IncrDailyEvent(ctx context.Context, restaurantID int, eventType, day string) error
}

type QRGenerator interface {
	Encode(text string, size int) ([]byte, error)
}

type MenuServiceInterface interface {
	PublicMenu(slug, table, branch string) (*domain.Menu, error)
	Categories(restaurantID int) ([]domain.MenuCategory, error)
	AddCategory(cat *domain.MenuCategory) error
	UpdateCategory(cat *domain.MenuCategory) error
	Items(restaurantID int) ([]domain.MenuItem, error)
	Item(restaurantID, itemID int) (*domain.MenuItem, error)
	AddItem(item *domain.MenuItem) error
	UpdateItem(item *domain.MenuItem) error
	RemoveItem(restaurantID, itemID int) error
	UpdateSettings(restaurantID int, name, description, whatsapp, primaryColor string) error
	Orders(restaurantID int, filter OrderFilter) ([]domain.Order, error)
	SetOrderStatus(restaurantID, orderID int, status string) error
	OrdersToday(restaurantID int) (int, error)
	AddPromotion(promo *domain.Promotion) error
	Promotions(restaurantID int) ([]domain.Promotion, error)
}

type CartServiceInterface interface {
	Get(ctx context.Context, slug, sessionID string) (*Cart, error)
	Increment(ctx context.Context, slug, sessionID string, itemID int) (*Cart, error)
	Decrement(ctx context.Context, slug, sessionID string, itemID int) (*Cart, error)
	WhatsAppLink(ctx context.Context, slug, sessionID, table string) (string, error)
}

type CheckoutServiceInterface interface {
	PlaceOrder(ctx context.Context, slug, sessionID string, info CheckoutInfo) (*domain.Order, error)
}

type PromotionServiceInterface interface {
	Validate(restaurantID int, code string, amount float64) (domain.PromotionResult, error)
}

type ProvisionServiceInterface interface {
	EnsureDefaultRestaurant(user domain.User) (string, error)
}

type QRServiceInterface interface {
	Generate(restaurantID int, branchID *int, tableNumber, targetURL string) (*domain.QRCode, error)
	List(restaurantID int) ([]domain.QRCode, error)
}

type AnalyticsServiceInterface interface {
	LogEvent(ctx context.Context, restaurantID int, eventType string, payload []byte) error
}
