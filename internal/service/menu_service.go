package service

import (
	"qrmenu/internal/domain"
)

// MenuService covers the public menu read path and the dashboard CRUD for
// categories, items, orders, settings and promotions.
type MenuService struct {
	restaurants RestaurantRepository
	menu        MenuRepository
	orders      OrderRepository
	promotions  PromotionRepository
}

func NewMenuService(restaurants RestaurantRepository, menu MenuRepository, orders OrderRepository, promotions PromotionRepository) *MenuService {
	return &MenuService{
		restaurants: restaurants,
		menu:        menu,
		orders:      orders,
		promotions:  promotions,
	}
}

// PublicMenu assembles what a diner sees after scanning a table QR code:
// the active restaurant, its active categories and its available items.
func (s *MenuService) PublicMenu(slug, table, branch string) (*domain.Menu, error) {
	rest, err := s.restaurants.GetActiveBySlug(slug)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, &domain.NotFoundError{Entity: "restaurant"}
	}

	categories, err := s.menu.ListActiveCategories(rest.ID)
	if err != nil {
		return nil, err
	}
	items, err := s.menu.ListAvailableItems(rest.ID)
	if err != nil {
		return nil, err
	}

	return &domain.Menu{
		Restaurant: *rest,
		Categories: categories,
		Items:      items,
		Table:      table,
		BranchSlug: branch,
	}, nil
}

func (s *MenuService) Categories(restaurantID int) ([]domain.MenuCategory, error) {
	return s.menu.ListCategories(restaurantID)
}

// AddCategory appends the category at the end of the list, mirroring how
// the dashboard assigns position = current count.
func (s *MenuService) AddCategory(cat *domain.MenuCategory) error {
	if cat.Name == "" {
		return domain.NewValidationError("category name is required")
	}
	count, err := s.menu.CountCategories(cat.RestaurantID)
	if err != nil {
		return err
	}
	cat.Position = count
	cat.IsActive = true
	return s.menu.CreateCategory(cat)
}

func (s *MenuService) UpdateCategory(cat *domain.MenuCategory) error {
	if cat.Name == "" {
		return domain.NewValidationError("category name is required")
	}
	return s.menu.UpdateCategory(cat)
}

func (s *MenuService) Items(restaurantID int) ([]domain.MenuItem, error) {
	return s.menu.ListItems(restaurantID)
}

func (s *MenuService) Item(restaurantID, itemID int) (*domain.MenuItem, error) {
	item, err := s.menu.GetItem(restaurantID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, &domain.NotFoundError{Entity: "menu item"}
	}
	return item, nil
}

func validateItem(item *domain.MenuItem) error {
	if item.Name == "" {
		return domain.NewValidationError("item name is required")
	}
	if item.BasePrice <= 0 {
		return domain.NewValidationError("item price must be positive")
	}
	if item.DiscountPrice != nil && *item.DiscountPrice <= 0 {
		return domain.NewValidationError("discount price must be positive")
	}
	return nil
}

func (s *MenuService) AddItem(item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.menu.CreateItem(item)
}

func (s *MenuService) UpdateItem(item *domain.MenuItem) error {
	if err := validateItem(item); err != nil {
		return err
	}
	return s.menu.UpdateItem(item)
}

func (s *MenuService) RemoveItem(restaurantID, itemID int) error {
	rows, err := s.menu.DeleteItem(restaurantID, itemID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "menu item"}
	}
	return nil
}

func (s *MenuService) UpdateSettings(restaurantID int, name, description, whatsapp, primaryColor string) error {
	if name == "" {
		return domain.NewValidationError("restaurant name is required")
	}
	return s.restaurants.UpdateSettings(restaurantID, name, description, whatsapp, primaryColor)
}

func (s *MenuService) Orders(restaurantID int, filter OrderFilter) ([]domain.Order, error) {
	return s.orders.ListOrders(restaurantID, filter)
}

var validStatuses = map[string]bool{
	domain.OrderStatusNew:        true,
	domain.OrderStatusAccepted:   true,
	domain.OrderStatusInProgress: true,
	domain.OrderStatusCompleted:  true,
	domain.OrderStatusCancelled:  true,
}

func (s *MenuService) SetOrderStatus(restaurantID, orderID int, status string) error {
	if !validStatuses[status] {
		return domain.NewValidationError("unknown order status %q", status)
	}
	rows, err := s.orders.UpdateOrderStatus(restaurantID, orderID, status)
	if err != nil {
		return err
	}
	if rows == 0 {
		return &domain.NotFoundError{Entity: "order"}
	}
	return nil
}

func (s *MenuService) OrdersToday(restaurantID int) (int, error) {
	return s.orders.CountOrdersToday(restaurantID)
}

func (s *MenuService) AddPromotion(promo *domain.Promotion) error {
	if promo.Code == "" {
		return domain.NewValidationError("promotion code is required")
	}
	if promo.DiscountType != domain.DiscountPercentage && promo.DiscountType != domain.DiscountFlat {
		return domain.NewValidationError("unknown discount type %q", promo.DiscountType)
	}
	if promo.DiscountValue <= 0 {
		return domain.NewValidationError("discount value must be positive")
	}
	if promo.EndAt.Before(promo.StartAt) {
		return domain.NewValidationError("promotion window ends before it starts")
	}
	return s.promotions.CreatePromotion(promo)
}

func (s *MenuService) Promotions(restaurantID int) ([]domain.Promotion, error) {
	return s.promotions.ListPromotions(restaurantID)
}

var _ MenuServiceInterface = (*MenuService)(nil)
