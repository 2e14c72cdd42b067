package tests

import (
	"database/sql"
	"testing"
	"time"

	"qrmenu/internal/domain"
	"qrmenu/internal/service"
	"qrmenu/internal/storage"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func setupRepo(t *testing.T) (*storage.PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	})
	return storage.NewPostgresRepository(db), mock
}

func TestPostgresRepository_SlugExists(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("SELECT EXISTS").
		WithArgs("demo").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	exists, err := repo.SlugExists("demo")
	assert.NoError(t, err)
	assert.True(t, exists)
}

func TestPostgresRepository_GetActiveBySlug_Miss(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("FROM restaurants").
		WithArgs("gone").
		WillReturnError(sql.ErrNoRows)

	rest, err := repo.GetActiveBySlug("gone")
	assert.NoError(t, err)
	assert.Nil(t, rest)
}

func TestPostgresRepository_CreateOrder_Transactional(t *testing.T) {
	repo, mock := setupRepo(t)

	createdAt := time.Now()
	order := &domain.Order{
		RestaurantID: 7,
		OrderNumber:  "R-1756390000000",
		CustomerName: "Ali",
		DeliveryType: "dine_in",
		SubTotal:     1000,
		TotalAmount:  1000,
		Status:       domain.OrderStatusNew,
		Items: []domain.OrderItem{
			{MenuItemID: 3, NameSnapshot: "Burger", PriceSnapshot: 500, Quantity: 2, TotalPrice: 1000},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WithArgs(7, "R-1756390000000", "Ali", "", "dine_in", "", 1000.0, 1000.0, domain.OrderStatusNew).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, createdAt))
	mock.ExpectQuery("INSERT INTO order_items").
		WithArgs(11, 3, "Burger", 500.0, 2, 1000.0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))
	mock.ExpectCommit()

	assert.NoError(t, repo.CreateOrder(order))
	assert.Equal(t, 11, order.ID)
	assert.Equal(t, 21, order.Items[0].ID)
	assert.Equal(t, 11, order.Items[0].OrderID)
}

func TestPostgresRepository_CreateOrder_RollsBackOnItemFailure(t *testing.T) {
	repo, mock := setupRepo(t)

	order := &domain.Order{
		RestaurantID: 7,
		OrderNumber:  "R-1756390000001",
		DeliveryType: "dine_in",
		SubTotal:     500,
		TotalAmount:  500,
		Status:       domain.OrderStatusNew,
		Items: []domain.OrderItem{
			{MenuItemID: 3, NameSnapshot: "Burger", PriceSnapshot: 500, Quantity: 1, TotalPrice: 500},
		},
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO orders").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(11, time.Now()))
	mock.ExpectQuery("INSERT INTO order_items").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	assert.Error(t, repo.CreateOrder(order))
}

func TestPostgresRepository_ListOrders_Filters(t *testing.T) {
	repo, mock := setupRepo(t)

	rows := sqlmock.NewRows([]string{
		"id", "restaurant_id", "order_number", "customer_name", "customer_phone",
		"delivery_type", "table_number", "sub_total", "total_amount", "status", "created_at",
	}).AddRow(11, 7, "R-1", "Ali", "0300", "dine_in", "5", 1000.0, 1000.0, "new", time.Now())

	mock.ExpectQuery("FROM orders").
		WithArgs(7, "new", "%ali%").
		WillReturnRows(rows)
	mock.ExpectQuery("FROM order_items").
		WithArgs(11).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "order_id", "menu_item_id", "name_snapshot", "price_snapshot", "quantity", "total_price",
		}).AddRow(21, 11, 3, "Burger", 500.0, 2, 1000.0))

	orders, err := repo.ListOrders(7, service.OrderFilter{Status: "new", Query: "ali"})
	assert.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "R-1", orders[0].OrderNumber)
	assert.Len(t, orders[0].Items, 1)
}

func TestPostgresRepository_FindActive(t *testing.T) {
	repo, mock := setupRepo(t)

	at := time.Now()
	rows := sqlmock.NewRows([]string{
		"id", "restaurant_id", "code", "discount_type", "discount_value",
		"min_order_amount", "max_discount_amount", "start_at", "end_at", "is_active", "created_at",
	}).AddRow(1, 7, "SAVE10", "percentage", 10.0, 1000.0, 500.0, at.Add(-time.Hour), at.Add(time.Hour), true, at)

	mock.ExpectQuery("FROM promotions").
		WithArgs(7, "SAVE10", at).
		WillReturnRows(rows)

	promo, err := repo.FindActive(7, "SAVE10", at)
	assert.NoError(t, err)
	assert.NotNil(t, promo)
	assert.Equal(t, "SAVE10", promo.Code)
	assert.NotNil(t, promo.MinOrderAmount)
	assert.Equal(t, 1000.0, *promo.MinOrderAmount)
}

func TestPostgresRepository_FindActive_Miss(t *testing.T) {
	repo, mock := setupRepo(t)

	at := time.Now()
	mock.ExpectQuery("FROM promotions").
		WithArgs(7, "NOPE", at).
		WillReturnError(sql.ErrNoRows)

	promo, err := repo.FindActive(7, "NOPE", at)
	assert.NoError(t, err)
	assert.Nil(t, promo)
}

func TestPostgresRepository_UpdateOrderStatus(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("UPDATE orders SET status").
		WithArgs("accepted", 11, 7).
		WillReturnResult(sqlmock.NewResult(0, 1))

	rows, err := repo.UpdateOrderStatus(7, 11, "accepted")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), rows)
}

func TestPostgresRepository_DeleteItem(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec("DELETE FROM menu_items").
		WithArgs(42, 7).
		WillReturnResult(sqlmock.NewResult(0, 0))

	rows, err := repo.DeleteItem(7, 42)
	assert.NoError(t, err)
	assert.Zero(t, rows)
}
