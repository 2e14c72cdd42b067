package storage

import (
	"database/sql"

	"qrmenu/internal/domain"
)

const categoryColumns = "id, restaurant_id, name, COALESCE(description, ''), position, is_active, created_at"

func (r *PostgresRepository) listCategories(query string, restaurantID int) ([]domain.MenuCategory, error) {
	rows, err := r.DB.Query(query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.MenuCategory
	for rows.Next() {
		var cat domain.MenuCategory
		if err := rows.Scan(&cat.ID, &cat.RestaurantID, &cat.Name, &cat.Description,
			&cat.Position, &cat.IsActive, &cat.CreatedAt); err != nil {
			continue
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *PostgresRepository) ListActiveCategories(restaurantID int) ([]domain.MenuCategory, error) {
	return r.listCategories(`
		SELECT `+categoryColumns+`
		FROM menu_categories
		WHERE restaurant_id = $1 AND is_active = TRUE
		ORDER BY position`, restaurantID)
}

func (r *PostgresRepository) ListCategories(restaurantID int) ([]domain.MenuCategory, error) {
	return r.listCategories(`
		SELECT `+categoryColumns+`
		FROM menu_categories
		WHERE restaurant_id = $1
		ORDER BY position`, restaurantID)
}

func (r *PostgresRepository) CountCategories(restaurantID int) (int, error) {
	var count int
	err := r.DB.QueryRow(
		"SELECT COUNT(*) FROM menu_categories WHERE restaurant_id = $1", restaurantID).Scan(&count)
	return count, err
}

func (r *PostgresRepository) CreateCategory(cat *domain.MenuCategory) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_categories (restaurant_id, name, description, position, is_active)
		VALUES ($1, $2, NULLIF($3, ''), $4, $5)
		RETURNING id, created_at`,
		cat.RestaurantID, cat.Name, cat.Description, cat.Position, cat.IsActive).
		Scan(&cat.ID, &cat.CreatedAt)
}

func (r *PostgresRepository) UpdateCategory(cat *domain.MenuCategory) error {
	_, err := r.DB.Exec(`
		UPDATE menu_categories
		SET name = $1, description = NULLIF($2, ''), position = $3, is_active = $4
		WHERE id = $5 AND restaurant_id = $6`,
		cat.Name, cat.Description, cat.Position, cat.IsActive, cat.ID, cat.RestaurantID)
	return err
}

const itemColumns = `id, restaurant_id, category_id, name, COALESCE(description, ''),
		COALESCE(image_url, ''), base_price, discount_price, is_available, position, created_at`

func scanItem(rows *sql.Rows) (domain.MenuItem, error) {
	var item domain.MenuItem
	err := rows.Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name,
		&item.Description, &item.ImageURL, &item.BasePrice, &item.DiscountPrice,
		&item.IsAvailable, &item.Position, &item.CreatedAt)
	return item, err
}

func (r *PostgresRepository) listItems(query string, restaurantID int) ([]domain.MenuItem, error) {
	rows, err := r.DB.Query(query, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			continue
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) ListAvailableItems(restaurantID int) ([]domain.MenuItem, error) {
	return r.listItems(`
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1 AND is_available = TRUE
		ORDER BY position`, restaurantID)
}

func (r *PostgresRepository) ListItems(restaurantID int) ([]domain.MenuItem, error) {
	return r.listItems(`
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY position`, restaurantID)
}

func (r *PostgresRepository) GetItem(restaurantID, itemID int) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := r.DB.QueryRow(`
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1 AND restaurant_id = $2`, itemID, restaurantID).
		Scan(&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name,
			&item.Description, &item.ImageURL, &item.BasePrice, &item.DiscountPrice,
			&item.IsAvailable, &item.Position, &item.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *PostgresRepository) CreateItem(item *domain.MenuItem) error {
	return r.DB.QueryRow(`
		INSERT INTO menu_items (restaurant_id, category_id, name, description, image_url,
			base_price, discount_price, is_available, position)
		VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), $6, $7, $8, $9)
		RETURNING id, created_at`,
		item.RestaurantID, item.CategoryID, item.Name, item.Description, item.ImageURL,
		item.BasePrice, item.DiscountPrice, item.IsAvailable, item.Position).
		Scan(&item.ID, &item.CreatedAt)
}

func (r *PostgresRepository) UpdateItem(item *domain.MenuItem) error {
	_, err := r.DB.Exec(`
		UPDATE menu_items
		SET category_id = $1, name = $2, description = NULLIF($3, ''), image_url = NULLIF($4, ''),
			base_price = $5, discount_price = $6, is_available = $7, position = $8
		WHERE id = $9 AND restaurant_id = $10`,
		item.CategoryID, item.Name, item.Description, item.ImageURL,
		item.BasePrice, item.DiscountPrice, item.IsAvailable, item.Position,
		item.ID, item.RestaurantID)
	return err
}

func (r *PostgresRepository) DeleteItem(restaurantID, itemID int) (int64, error) {
	result, err := r.DB.Exec(
		"DELETE FROM menu_items WHERE id = $1 AND restaurant_id = $2", itemID, restaurantID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
