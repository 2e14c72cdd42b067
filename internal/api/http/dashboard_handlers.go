package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/service"

	"github.com/gorilla/mux"
)

func restaurantID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["restaurantId"])
	return id, err == nil && id > 0
}

func (h *Handler) createDefaultRestaurant(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFrom(r.Context())
	if !ok {
		unauthorized(w, "Missing user context")
		return
	}

	slug, err := h.Provision.EnsureDefaultRestaurant(user)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"slug": slug})
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	categories, err := h.Menu.Categories(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if categories == nil {
		categories = []domain.MenuCategory{}
	}
	writeJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var cat domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	cat.RestaurantID = id

	if err := h.Menu.AddCategory(&cat); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, cat)
}

func (h *Handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	catID, err := strconv.Atoi(mux.Vars(r)["categoryId"])
	if err != nil {
		http.Error(w, "Invalid category ID", http.StatusBadRequest)
		return
	}

	var cat domain.MenuCategory
	if err := json.NewDecoder(r.Body).Decode(&cat); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	cat.ID = catID
	cat.RestaurantID = id

	if err := h.Menu.UpdateCategory(&cat); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	items, err := h.Menu.Items(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.MenuItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	item.RestaurantID = id

	if err := h.Menu.AddItem(&item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = itemID
	item.RestaurantID = id

	if err := h.Menu.UpdateItem(&item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	itemID, err := strconv.Atoi(mux.Vars(r)["itemId"])
	if err != nil {
		http.Error(w, "Invalid item ID", http.StatusBadRequest)
		return
	}

	if err := h.Menu.RemoveItem(id, itemID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Name           string `json:"name"`
		Description    string `json:"description"`
		WhatsappNumber string `json:"whatsapp_number"`
		PrimaryColor   string `json:"primary_color"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.UpdateSettings(id, payload.Name, payload.Description, payload.WhatsappNumber, payload.PrimaryColor); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	filter := service.OrderFilter{
		Status: r.URL.Query().Get("status"),
		Query:  r.URL.Query().Get("q"),
	}
	orders, err := h.Menu.Orders(id, filter)
	if err != nil {
		writeError(w, err)
		return
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

func (h *Handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}
	orderID, err := strconv.Atoi(mux.Vars(r)["orderId"])
	if err != nil {
		http.Error(w, "Invalid order ID", http.StatusBadRequest)
		return
	}

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Menu.SetOrderStatus(id, orderID, payload.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	count, err := h.Menu.OrdersToday(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders_today": count,
		"date":         time.Now().Format("2006-01-02"),
	})
}

func (h *Handler) listPromotions(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	promos, err := h.Menu.Promotions(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if promos == nil {
		promos = []domain.Promotion{}
	}
	writeJSON(w, http.StatusOK, promos)
}

func (h *Handler) createPromotion(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	var promo domain.Promotion
	if err := json.NewDecoder(r.Body).Decode(&promo); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	promo.RestaurantID = id

	if err := h.Menu.AddPromotion(&promo); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, promo)
}

func (h *Handler) listQRCodes(w http.ResponseWriter, r *http.Request) {
	id, ok := restaurantID(r)
	if !ok {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	codes, err := h.QR.List(id)
	if err != nil {
		writeError(w, err)
		return
	}
	if codes == nil {
		codes = []domain.QRCode{}
	}
	writeJSON(w, http.StatusOK, codes)
}

func (h *Handler) createQRCode(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RestaurantID int    `json:"restaurantId"`
		BranchID     *int   `json:"branchId,omitempty"`
		TableNumber  string `json:"tableNumber"`
		TargetURL    string `json:"targetUrl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Invalid JSON format: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.RestaurantID <= 0 {
		http.Error(w, "Invalid restaurant ID", http.StatusBadRequest)
		return
	}

	qr, err := h.QR.Generate(payload.RestaurantID, payload.BranchID, payload.TableNumber, payload.TargetURL)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{"qr": qr})
}
