package storage

import (
	"database/sql"
	"fmt"

	"qrmenu/internal/domain"
)

// PostgresRepository implements every repository interface the services
// consume, against one shared connection pool.
type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

const restaurantColumns = `id, owner_id, slug, name, COALESCE(description, ''), COALESCE(logo_url, ''),
		COALESCE(cover_image_url, ''), COALESCE(whatsapp_number, ''), COALESCE(city, ''),
		COALESCE(primary_color, ''), is_active, created_at`

func scanRestaurant(row *sql.Row) (*domain.Restaurant, error) {
	var rest domain.Restaurant
	err := row.Scan(&rest.ID, &rest.OwnerID, &rest.Slug, &rest.Name, &rest.Description,
		&rest.LogoURL, &rest.CoverImageURL, &rest.WhatsappNumber, &rest.City,
		&rest.PrimaryColor, &rest.IsActive, &rest.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rest, nil
}

func (r *PostgresRepository) GetActiveBySlug(slug string) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRow(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE slug = $1 AND is_active = TRUE", slug))
}

func (r *PostgresRepository) GetBySlug(slug string) (*domain.Restaurant, error) {
	return scanRestaurant(r.DB.QueryRow(
		"SELECT "+restaurantColumns+" FROM restaurants WHERE slug = $1", slug))
}

func (r *PostgresRepository) SlugExists(slug string) (bool, error) {
	var exists bool
	err := r.DB.QueryRow("SELECT EXISTS(SELECT 1 FROM restaurants WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

func (r *PostgresRepository) OwnedSlug(userID int) (string, error) {
	var slug string
	err := r.DB.QueryRow(
		"SELECT slug FROM restaurants WHERE owner_id = $1 ORDER BY created_at LIMIT 1", userID).Scan(&slug)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return slug, err
}

func (r *PostgresRepository) CreateRestaurant(rest *domain.Restaurant) error {
	return r.DB.QueryRow(`
		INSERT INTO restaurants (owner_id, slug, name, whatsapp_number, city, is_active)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6)
		RETURNING id, created_at`,
		rest.OwnerID, rest.Slug, rest.Name, rest.WhatsappNumber, rest.City, rest.IsActive).
		Scan(&rest.ID, &rest.CreatedAt)
}

func (r *PostgresRepository) UpdateSettings(id int, name, description, whatsapp, primaryColor string) error {
	_, err := r.DB.Exec(`
		UPDATE restaurants
		SET name = $1, description = NULLIF($2, ''), whatsapp_number = NULLIF($3, ''), primary_color = $4
		WHERE id = $5`,
		name, description, whatsapp, primaryColor, id)
	return err
}

func (r *PostgresRepository) MemberSlug(userID int) (string, error) {
	var slug string
	err := r.DB.QueryRow(`
		SELECT r.slug
		FROM restaurant_members m
		JOIN restaurants r ON r.id = m.restaurant_id
		WHERE m.user_id = $1
		ORDER BY m.created_at
		LIMIT 1`, userID).Scan(&slug)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return slug, err
}

func (r *PostgresRepository) AddMember(restaurantID, userID int, role string) error {
	_, err := r.DB.Exec(
		"INSERT INTO restaurant_members (restaurant_id, user_id, role) VALUES ($1, $2, $3)",
		restaurantID, userID, role)
	return err
}

func (r *PostgresRepository) EnsureSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS restaurants (
			id SERIAL PRIMARY KEY,
			owner_id INTEGER NOT NULL,
			slug TEXT NOT NULL UNIQUE,
			name TEXT NOT NULL,
			description TEXT,
			logo_url TEXT,
			cover_image_url TEXT,
			whatsapp_number TEXT,
			city TEXT,
			primary_color TEXT,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS restaurant_members (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			user_id INTEGER NOT NULL,
			role TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_categories (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			name TEXT NOT NULL,
			description TEXT,
			position INTEGER NOT NULL DEFAULT 0,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS menu_items (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			category_id INTEGER NOT NULL REFERENCES menu_categories(id),
			name TEXT NOT NULL,
			description TEXT,
			image_url TEXT,
			base_price NUMERIC(10,2) NOT NULL,
			discount_price NUMERIC(10,2),
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			position INTEGER NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS promotions (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			code TEXT NOT NULL,
			discount_type TEXT NOT NULL,
			discount_value NUMERIC(10,2) NOT NULL,
			min_order_amount NUMERIC(10,2),
			max_discount_amount NUMERIC(10,2),
			start_at TIMESTAMPTZ NOT NULL,
			end_at TIMESTAMPTZ NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS orders (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			order_number TEXT NOT NULL,
			customer_name TEXT,
			customer_phone TEXT,
			delivery_type TEXT NOT NULL,
			table_number TEXT,
			sub_total NUMERIC(10,2) NOT NULL,
			total_amount NUMERIC(10,2) NOT NULL,
			status TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS order_items (
			id SERIAL PRIMARY KEY,
			order_id INTEGER NOT NULL REFERENCES orders(id),
			menu_item_id INTEGER NOT NULL,
			name_snapshot TEXT NOT NULL,
			price_snapshot NUMERIC(10,2) NOT NULL,
			quantity INTEGER NOT NULL,
			total_price NUMERIC(10,2) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS qr_codes (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL REFERENCES restaurants(id),
			branch_id INTEGER,
			table_number TEXT NOT NULL,
			target_url TEXT NOT NULL,
			image_url TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			restaurant_id INTEGER NOT NULL,
			event_type TEXT NOT NULL,
			payload JSONB,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	}

	for _, stmt := range statements {
		if _, err := r.DB.Exec(stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
