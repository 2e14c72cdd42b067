package httpapi

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/service"

	"github.com/gorilla/mux"
)

type Handler struct {
	Menu       service.MenuServiceInterface
	Carts      service.CartServiceInterface
	Checkout   service.CheckoutServiceInterface
	Promotions service.PromotionServiceInterface
	Provision  service.ProvisionServiceInterface
	QR         service.QRServiceInterface
	Analytics  service.AnalyticsServiceInterface

	jwtSecret []byte
}

func NewHandler(
	menu service.MenuServiceInterface,
	carts service.CartServiceInterface,
	checkout service.CheckoutServiceInterface,
	promotions service.PromotionServiceInterface,
	provision service.ProvisionServiceInterface,
	qr service.QRServiceInterface,
	analytics service.AnalyticsServiceInterface,
	jwtSecret []byte,
) *Handler {
	return &Handler{
		Menu:       menu,
		Carts:      carts,
		Checkout:   checkout,
		Promotions: promotions,
		Provision:  provision,
		QR:         qr,
		Analytics:  analytics,
		jwtSecret:  jwtSecret,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	// Public diner surface.
	r.HandleFunc("/api/menu/{slug}", h.getMenu).Methods("GET")
	r.HandleFunc("/api/menu/{slug}/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/menu/{slug}/cart/items/{itemId}", h.incrementCartItem).Methods("POST")
	r.HandleFunc("/api/menu/{slug}/cart/items/{itemId}", h.decrementCartItem).Methods("DELETE")
	r.HandleFunc("/api/menu/{slug}/whatsapp-link", h.getWhatsAppLink).Methods("GET")
	r.HandleFunc("/api/menu/{slug}/checkout", h.checkout).Methods("POST")
	r.HandleFunc("/api/promotions/validate", h.validatePromotion).Methods("POST")
	r.HandleFunc("/api/analytics/event", h.logEvent).Methods("POST")

	// Dashboard surface, behind the auth gate.
	dash := r.PathPrefix("/api").Subrouter()
	dash.Use(RequireAuth(h.jwtSecret))
	dash.HandleFunc("/restaurants/create-default", h.createDefaultRestaurant).Methods("POST")
	dash.HandleFunc("/restaurants/{restaurantId}/categories", h.listCategories).Methods("GET")
	dash.HandleFunc("/restaurants/{restaurantId}/categories", h.createCategory).Methods("POST")
	dash.HandleFunc("/restaurants/{restaurantId}/categories/{categoryId}", h.updateCategory).Methods("PUT")
	dash.HandleFunc("/restaurants/{restaurantId}/items", h.listItems).Methods("GET")
	dash.HandleFunc("/restaurants/{restaurantId}/items", h.createItem).Methods("POST")
	dash.HandleFunc("/restaurants/{restaurantId}/items/{itemId}", h.updateItem).Methods("PUT")
	dash.HandleFunc("/restaurants/{restaurantId}/items/{itemId}", h.deleteItem).Methods("DELETE")
	dash.HandleFunc("/restaurants/{restaurantId}/settings", h.updateSettings).Methods("PUT")
	dash.HandleFunc("/restaurants/{restaurantId}/orders", h.listOrders).Methods("GET")
	dash.HandleFunc("/restaurants/{restaurantId}/orders/{orderId}/status", h.updateOrderStatus).Methods("PUT")
	dash.HandleFunc("/restaurants/{restaurantId}/stats", h.getStats).Methods("GET")
	dash.HandleFunc("/restaurants/{restaurantId}/promotions", h.listPromotions).Methods("GET")
	dash.HandleFunc("/restaurants/{restaurantId}/promotions", h.createPromotion).Methods("POST")
	dash.HandleFunc("/restaurants/{restaurantId}/qr", h.listQRCodes).Methods("GET")
	dash.HandleFunc("/qr", h.createQRCode).Methods("POST")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"status":    "healthy",
		"service":   "qrmenu",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	writeJSON(w, http.StatusOK, response)
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy to status codes. Anything outside the
// taxonomy is a backend failure surfaced with its raw message.
func writeError(w http.ResponseWriter, err error) {
	var validationErr *domain.ValidationError
	var notFoundErr *domain.NotFoundError

	switch {
	case errors.As(err, &validationErr):
		http.Error(w, validationErr.Error(), http.StatusBadRequest)
	case errors.As(err, &notFoundErr):
		http.Error(w, notFoundErr.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

const cartSessionCookie = "cart_session"

// cartSession returns the browser's cart session id, minting a new cookie
// on first contact so two tabs share one cart per restaurant.
func cartSession(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(cartSessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}

	buf := make([]byte, 16)
	rand.Read(buf)
	session := hex.EncodeToString(buf)
	http.SetCookie(w, &http.Cookie{
		Name:     cartSessionCookie,
		Value:    session,
		Path:     "/",
		MaxAge:   int((30 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
	})
	return session
}
