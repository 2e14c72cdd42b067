package domain

import (
	"encoding/json"
	"time"
)

type Restaurant struct {
	ID             int       `json:"id"`
	OwnerID        int       `json:"owner_id"`
	Slug           string    `json:"slug"`
	Name           string    `json:"name"`
	Description    string    `json:"description"`
	LogoURL        string    `json:"logo_url"`
	CoverImageURL  string    `json:"cover_image_url"`
	WhatsappNumber string    `json:"whatsapp_number"`
	City           string    `json:"city"`
	PrimaryColor   string    `json:"primary_color"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
}

// RestaurantMember links a dashboard user to a restaurant with a role.
type RestaurantMember struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	UserID       int       `json:"user_id"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuCategory struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	Position     int       `json:"position"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
}

type MenuItem struct {
	ID            int       `json:"id"`
	RestaurantID  int       `json:"restaurant_id"`
	CategoryID    int       `json:"category_id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	BasePrice     float64   `json:"base_price"`
	DiscountPrice *float64  `json:"discount_price,omitempty"`
	IsAvailable   bool      `json:"is_available"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"created_at"`
}

// EffectivePrice is the price a diner pays right now: the discount price
// when one is set, the base price otherwise.
func (m MenuItem) EffectivePrice() float64 {
	if m.DiscountPrice != nil {
		return *m.DiscountPrice
	}
	return m.BasePrice
}

const (
	DiscountPercentage = "percentage"
	DiscountFlat       = "flat"
)

type Promotion struct {
	ID                int       `json:"id"`
	RestaurantID      int       `json:"restaurant_id"`
	Code              string    `json:"code"`
	DiscountType      string    `json:"discount_type"`
	DiscountValue     float64   `json:"discount_value"`
	MinOrderAmount    *float64  `json:"min_order_amount,omitempty"`
	MaxDiscountAmount *float64  `json:"max_discount_amount,omitempty"`
	StartAt           time.Time `json:"start_at"`
	EndAt             time.Time `json:"end_at"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
}

// PromotionResult is the outcome of validating a code against an amount.
// An invalid code is a normal outcome, not an error.
type PromotionResult struct {
	Valid    bool     `json:"valid"`
	Discount *float64 `json:"discount,omitempty"`
}

const (
	OrderStatusNew        = "new"
	OrderStatusAccepted   = "accepted"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

type Order struct {
	ID            int         `json:"id"`
	RestaurantID  int         `json:"restaurant_id"`
	OrderNumber   string      `json:"order_number"`
	CustomerName  string      `json:"customer_name"`
	CustomerPhone string      `json:"customer_phone"`
	DeliveryType  string      `json:"delivery_type"`
	TableNumber   string      `json:"table_number,omitempty"`
	SubTotal      float64     `json:"sub_total"`
	TotalAmount   float64     `json:"total_amount"`
	Status        string      `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	Items         []OrderItem `json:"items"`
}

// OrderItem freezes name and price at order time. Snapshot fields are never
// recomputed from the live menu item.
type OrderItem struct {
	ID            int     `json:"id"`
	OrderID       int     `json:"order_id"`
	MenuItemID    int     `json:"menu_item_id"`
	NameSnapshot  string  `json:"name_snapshot"`
	PriceSnapshot float64 `json:"price_snapshot"`
	Quantity      int     `json:"quantity"`
	TotalPrice    float64 `json:"total_price"`
}

// CartEntry is one line of a diner's cart. ID is the menu item id; Price is
// frozen at the moment the item was first added.
type CartEntry struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
}

type QRCode struct {
	ID           int       `json:"id"`
	RestaurantID int       `json:"restaurant_id"`
	BranchID     *int      `json:"branch_id,omitempty"`
	TableNumber  string    `json:"table_number"`
	TargetURL    string    `json:"target_url"`
	ImageURL     string    `json:"image_url"`
	CreatedAt    time.Time `json:"created_at"`
}

type Event struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	EventType    string          `json:"event_type"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EventMessage is the Kafka envelope for analytics events.
type EventMessage struct {
	Type         string          `json:"type"`
	RestaurantID int             `json:"restaurant_id"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	Timestamp    time.Time       `json:"timestamp"`
}

// Menu is the public menu view: one active restaurant with its active
// categories and available items.
type Menu struct {
	Restaurant Restaurant     `json:"restaurant"`
	Categories []MenuCategory `json:"categories"`
	Items      []MenuItem     `json:"items"`
	Table      string         `json:"table,omitempty"`
	BranchSlug string         `json:"branch,omitempty"`
}

// User is the authenticated dashboard caller, resolved by the auth gate.
type User struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
}
