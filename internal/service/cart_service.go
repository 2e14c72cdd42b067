package service

import (
	"context"
	"log"

	"qrmenu/internal/domain"
)

// Cart holds the ordered line entries of one diner session for one
// restaurant. Mutations go through Increment/Decrement so prices stay
// frozen at the moment an item was first added.
type Cart struct {
	entries []domain.CartEntry
}

func NewCart(entries []domain.CartEntry) *Cart {
	return &Cart{entries: entries}
}

// Increment bumps the quantity of an existing entry, or appends a new one
// with quantity 1 at the item's current effective price.
func (c *Cart) Increment(item domain.MenuItem) {
	for i := range c.entries {
		if c.entries[i].ID == item.ID {
			c.entries[i].Quantity++
			return
		}
	}
	c.entries = append(c.entries, domain.CartEntry{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.EffectivePrice(),
		Quantity: 1,
	})
}

// Decrement lowers the quantity of the matching entry, removing it when the
// quantity reaches zero. Absent ids are a no-op.
func (c *Cart) Decrement(itemID int) {
	for i := range c.entries {
		if c.entries[i].ID != itemID {
			continue
		}
		if c.entries[i].Quantity <= 1 {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
		} else {
			c.entries[i].Quantity--
		}
		return
	}
}

func (c *Cart) Entries() []domain.CartEntry {
	return c.entries
}

func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, entry := range c.entries {
		sum += entry.Price * float64(entry.Quantity)
	}
	return sum
}

func (c *Cart) Empty() bool {
	return len(c.entries) == 0
}

type CartService struct {
	store       CartStore
	restaurants RestaurantRepository
	menu        MenuRepository
}

func NewCartService(store CartStore, restaurants RestaurantRepository, menu MenuRepository) *CartService {
	return &CartService{store: store, restaurants: restaurants, menu: menu}
}

// load reads the stored cart for the session. Absent or unreadable state
// degrades to an empty cart rather than failing the request.
func (s *CartService) load(ctx context.Context, slug, sessionID string) *Cart {
	entries, err := s.store.Load(ctx, slug, sessionID)
	if err != nil {
		log.Printf("[cart] ignoring unreadable cart for %s: %v", slug, err)
		return NewCart(nil)
	}
	return NewCart(entries)
}

// persist writes the cart back on every mutation. Write failures are
// non-fatal: the in-memory state already answered the request.
func (s *CartService) persist(ctx context.Context, slug, sessionID string, cart *Cart) {
	if err := s.store.Save(ctx, slug, sessionID, cart.Entries()); err != nil {
		log.Printf("[cart] failed to persist cart for %s: %v", slug, err)
	}
}

func (s *CartService) Get(ctx context.Context, slug, sessionID string) (*Cart, error) {
	return s.load(ctx, slug, sessionID), nil
}

func (s *CartService) Increment(ctx context.Context, slug, sessionID string, itemID int) (*Cart, error) {
	rest, err := s.restaurants.GetActiveBySlug(slug)
	if err != nil {
		return nil, err
	}
	if rest == nil {
		return nil, &domain.NotFoundError{Entity: "restaurant"}
	}

	item, err := s.menu.GetItem(rest.ID, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil || !item.IsAvailable {
		return nil, &domain.NotFoundError{Entity: "menu item"}
	}

	cart := s.load(ctx, slug, sessionID)
	cart.Increment(*item)
	s.persist(ctx, slug, sessionID, cart)
	return cart, nil
}

func (s *CartService) Decrement(ctx context.Context, slug, sessionID string, itemID int) (*Cart, error) {
	cart := s.load(ctx, slug, sessionID)
	cart.Decrement(itemID)
	s.persist(ctx, slug, sessionID, cart)
	return cart, nil
}

// WhatsAppLink renders the current cart as a wa.me deep link against the
// restaurant's configured number.
func (s *CartService) WhatsAppLink(ctx context.Context, slug, sessionID, table string) (string, error) {
	rest, err := s.restaurants.GetActiveBySlug(slug)
	if err != nil {
		return "", err
	}
	if rest == nil {
		return "", &domain.NotFoundError{Entity: "restaurant"}
	}
	if rest.WhatsappNumber == "" {
		return "", domain.NewValidationError("restaurant has no WhatsApp number configured")
	}

	cart := s.load(ctx, slug, sessionID)
	if cart.Empty() {
		return "", domain.NewValidationError("cart is empty")
	}

	return BuildWhatsAppLink(rest.WhatsappNumber, cart.Entries(), cart.Subtotal(), table), nil
}

var _ CartServiceInterface = (*CartService)(nil)
