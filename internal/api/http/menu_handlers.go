package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"qrmenu/internal/domain"
	"qrmenu/internal/service"

	"github.com/gorilla/mux"
)

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	table := r.URL.Query().Get("table")
	branch := r.URL.Query().Get("branch")

	menu, err := h.Menu.PublicMenu(slug, table, branch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, menu)
}

type cartResponse struct {
	Items    []domain.CartEntry `json:"items"`
	Subtotal float64            `json:"subtotal"`
}

func newCartResponse(cart *service.Cart) cartResponse {
	items := cart.Entries()
	if items == nil {
		items = []domain.CartEntry{}
	}
	return cartResponse{Items: items, Subtotal: cart.Subtotal()}
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	cart, err := h.Carts.Get(r.Context(), slug, cartSession(w, r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) incrementCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, _ := strconv.Atoi(vars["itemId"])

	cart, err := h.Carts.Increment(r.Context(), vars["slug"], cartSession(w, r), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) decrementCartItem(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	itemID, _ := strconv.Atoi(vars["itemId"])

	cart, err := h.Carts.Decrement(r.Context(), vars["slug"], cartSession(w, r), itemID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, newCartResponse(cart))
}

func (h *Handler) getWhatsAppLink(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]
	table := r.URL.Query().Get("table")

	link, err := h.Carts.WhatsAppLink(r.Context(), slug, cartSession(w, r), table)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"url": link})
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	var info service.CheckoutInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.Checkout.PlaceOrder(r.Context(), slug, cartSession(w, r), info)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) validatePromotion(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int     `json:"restaurantId"`
		Code         string  `json:"code"`
		Amount       float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.RestaurantID <= 0 || payload.Code == "" {
		http.Error(w, "Missing restaurantId or code", http.StatusBadRequest)
		return
	}

	// "Not valid" is a 200 outcome; only malformed input or a backend
	// failure produces an error status.
	result, err := h.Promotions.Validate(payload.RestaurantID, payload.Code, payload.Amount)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) logEvent(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int             `json:"restaurantId"`
		EventType    string          `json:"eventType"`
		Payload      json.RawMessage `json:"payload"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Analytics.LogEvent(r.Context(), payload.RestaurantID, payload.EventType, payload.Payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]bool{"ok": false})
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
