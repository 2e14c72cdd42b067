package storage

import (
	"database/sql"
	"strconv"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/service"
)

// CreateOrder writes the order row and its line items in one transaction,
// so a failed line insert rolls everything back.
func (r *PostgresRepository) CreateOrder(order *domain.Order) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.QueryRow(`
		INSERT INTO orders (restaurant_id, order_number, customer_name, customer_phone,
			delivery_type, table_number, sub_total, total_amount, status)
		VALUES ($1, $2, NULLIF($3, ''), NULLIF($4, ''), $5, NULLIF($6, ''), $7, $8, $9)
		RETURNING id, created_at`,
		order.RestaurantID, order.OrderNumber, order.CustomerName, order.CustomerPhone,
		order.DeliveryType, order.TableNumber, order.SubTotal, order.TotalAmount, order.Status).
		Scan(&order.ID, &order.CreatedAt); err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if err := tx.QueryRow(`
			INSERT INTO order_items (order_id, menu_item_id, name_snapshot, price_snapshot, quantity, total_price)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			item.OrderID, item.MenuItemID, item.NameSnapshot, item.PriceSnapshot,
			item.Quantity, item.TotalPrice).Scan(&item.ID); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (r *PostgresRepository) ListOrders(restaurantID int, filter service.OrderFilter) ([]domain.Order, error) {
	query := `
		SELECT id, restaurant_id, order_number, COALESCE(customer_name, ''), COALESCE(customer_phone, ''),
			delivery_type, COALESCE(table_number, ''), sub_total, total_amount, status, created_at
		FROM orders
		WHERE restaurant_id = $1`
	args := []interface{}{restaurantID}

	if filter.Status != "" && filter.Status != "all" {
		args = append(args, filter.Status)
		query += " AND status = $2"
	}
	if filter.Query != "" {
		pattern := "%" + filter.Query + "%"
		args = append(args, pattern)
		n := strconv.Itoa(len(args))
		query += " AND (customer_name ILIKE $" + n + " OR customer_phone ILIKE $" + n + ")"
	}
	query += " ORDER BY created_at DESC LIMIT 50"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(&order.ID, &order.RestaurantID, &order.OrderNumber,
			&order.CustomerName, &order.CustomerPhone, &order.DeliveryType, &order.TableNumber,
			&order.SubTotal, &order.TotalAmount, &order.Status, &order.CreatedAt); err != nil {
			continue
		}
		orders = append(orders, order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.listOrderItems(orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *PostgresRepository) listOrderItems(orderID int) ([]domain.OrderItem, error) {
	rows, err := r.DB.Query(`
		SELECT id, order_id, menu_item_id, name_snapshot, price_snapshot, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY id`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.NameSnapshot,
			&item.PriceSnapshot, &item.Quantity, &item.TotalPrice); err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) UpdateOrderStatus(restaurantID, orderID int, status string) (int64, error) {
	result, err := r.DB.Exec(
		"UPDATE orders SET status = $1 WHERE id = $2 AND restaurant_id = $3",
		status, orderID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *PostgresRepository) CountOrdersToday(restaurantID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`
		SELECT COUNT(*)
		FROM orders
		WHERE restaurant_id = $1 AND created_at::date = CURRENT_DATE`, restaurantID).Scan(&count)
	return count, err
}

const promotionColumns = `id, restaurant_id, code, discount_type, discount_value,
		min_order_amount, max_discount_amount, start_at, end_at, is_active, created_at`

func (r *PostgresRepository) FindActive(restaurantID int, code string, at time.Time) (*domain.Promotion, error) {
	var promo domain.Promotion
	err := r.DB.QueryRow(`
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE restaurant_id = $1 AND code = $2 AND is_active = TRUE
			AND start_at <= $3 AND end_at >= $3
		LIMIT 1`, restaurantID, code, at).
		Scan(&promo.ID, &promo.RestaurantID, &promo.Code, &promo.DiscountType,
			&promo.DiscountValue, &promo.MinOrderAmount, &promo.MaxDiscountAmount,
			&promo.StartAt, &promo.EndAt, &promo.IsActive, &promo.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &promo, nil
}

func (r *PostgresRepository) CreatePromotion(promo *domain.Promotion) error {
	return r.DB.QueryRow(`
		INSERT INTO promotions (restaurant_id, code, discount_type, discount_value,
			min_order_amount, max_discount_amount, start_at, end_at, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at`,
		promo.RestaurantID, promo.Code, promo.DiscountType, promo.DiscountValue,
		promo.MinOrderAmount, promo.MaxDiscountAmount, promo.StartAt, promo.EndAt, promo.IsActive).
		Scan(&promo.ID, &promo.CreatedAt)
}

func (r *PostgresRepository) ListPromotions(restaurantID int) ([]domain.Promotion, error) {
	rows, err := r.DB.Query(`
		SELECT `+promotionColumns+`
		FROM promotions
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var promos []domain.Promotion
	for rows.Next() {
		var promo domain.Promotion
		if err := rows.Scan(&promo.ID, &promo.RestaurantID, &promo.Code, &promo.DiscountType,
			&promo.DiscountValue, &promo.MinOrderAmount, &promo.MaxDiscountAmount,
			&promo.StartAt, &promo.EndAt, &promo.IsActive, &promo.CreatedAt); err != nil {
			continue
		}
		promos = append(promos, promo)
	}
	return promos, rows.Err()
}

func (r *PostgresRepository) CreateQRCode(qr *domain.QRCode) error {
	return r.DB.QueryRow(`
		INSERT INTO qr_codes (restaurant_id, branch_id, table_number, target_url, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at`,
		qr.RestaurantID, qr.BranchID, qr.TableNumber, qr.TargetURL, qr.ImageURL).
		Scan(&qr.ID, &qr.CreatedAt)
}

func (r *PostgresRepository) ListQRCodes(restaurantID int) ([]domain.QRCode, error) {
	rows, err := r.DB.Query(`
		SELECT id, restaurant_id, branch_id, table_number, target_url, image_url, created_at
		FROM qr_codes
		WHERE restaurant_id = $1
		ORDER BY created_at DESC`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var codes []domain.QRCode
	for rows.Next() {
		var qr domain.QRCode
		if err := rows.Scan(&qr.ID, &qr.RestaurantID, &qr.BranchID, &qr.TableNumber,
			&qr.TargetURL, &qr.ImageURL, &qr.CreatedAt); err != nil {
			continue
		}
		codes = append(codes, qr)
	}
	return codes, rows.Err()
}

func (r *PostgresRepository) InsertEvent(event *domain.Event) error {
	return r.DB.QueryRow(`
		INSERT INTO events (restaurant_id, event_type, payload)
		VALUES ($1, $2, $3)
		RETURNING id, created_at`,
		event.RestaurantID, event.EventType, nullableJSON(event.Payload)).
		Scan(&event.ID, &event.CreatedAt)
}

func nullableJSON(raw []byte) interface{} {
	if len(raw) == 0 {
		return nil
	}
	return raw
}
