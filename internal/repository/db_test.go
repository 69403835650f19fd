package repository

import (
	"context"
	"testing"
	"time"

	"foodcourt/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a PostgreSQL container, creates the schema, and returns
// a connection pool plus a cleanup function.
func setupTestDB(t *testing.T) (*pgxpool.Pool, func()) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}

	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("postgres"),
		postgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	createSchema(t, pool)

	cleanup := func() {
		pool.Close()
		_ = pgContainer.Terminate(ctx)
	}

	return pool, cleanup
}

// createSchema creates the necessary database schema for testing.
func createSchema(t *testing.T, pool *pgxpool.Pool) {
	ctx := context.Background()

	schema := `
		CREATE TABLE IF NOT EXISTS customers (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			phone_number TEXT NOT NULL DEFAULT '',
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS restaurants (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			location TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS menu_items (
			id UUID PRIMARY KEY,
			name TEXT NOT NULL,
			price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS orders (
			id UUID PRIMARY KEY,
			customer_id UUID NOT NULL REFERENCES customers(id),
			restaurant_id UUID NOT NULL REFERENCES restaurants(id),
			total_price NUMERIC(12,2) NOT NULL CHECK (total_price >= 0),
			status TEXT NOT NULL CHECK (status IN ('Placed', 'Preparing', 'OutForDelivery', 'Delivered', 'Cancelled')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		);

		CREATE TABLE IF NOT EXISTS order_items (
			id UUID PRIMARY KEY,
			order_id UUID NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
			menu_item_id UUID NOT NULL REFERENCES menu_items(id),
			quantity INTEGER NOT NULL CHECK (quantity > 0)
		);
	`

	_, err := pool.Exec(ctx, schema)
	require.NoError(t, err)
}

// seedCustomer inserts a customer and returns it.
func seedCustomer(t *testing.T, pool *pgxpool.Pool, name, email string) *model.Customer {
	t.Helper()

	customer := &model.Customer{
		ID:        uuid.New(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
	}

	_, err := pool.Exec(context.Background(),
		"INSERT INTO customers (id, name, email, phone_number, address, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		customer.ID, customer.Name, customer.Email, customer.PhoneNumber, customer.Address, customer.CreatedAt,
	)
	require.NoError(t, err)

	return customer
}

// seedRestaurant inserts a restaurant and returns it.
func seedRestaurant(t *testing.T, pool *pgxpool.Pool, name string) *model.Restaurant {
	t.Helper()

	restaurant := &model.Restaurant{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}

	_, err := pool.Exec(context.Background(),
		"INSERT INTO restaurants (id, name, location, created_at) VALUES ($1, $2, $3, $4)",
		restaurant.ID, restaurant.Name, restaurant.Location, restaurant.CreatedAt,
	)
	require.NoError(t, err)

	return restaurant
}

// seedMenuItem inserts a menu item and returns it.
func seedMenuItem(t *testing.T, pool *pgxpool.Pool, restaurantID uuid.UUID, name, price string, available bool) *model.MenuItem {
	t.Helper()

	item := &model.MenuItem{
		ID:           uuid.New(),
		Name:         name,
		Price:        decimal.RequireFromString(price),
		IsAvailable:  available,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
	}

	_, err := pool.Exec(context.Background(),
		"INSERT INTO menu_items (id, name, price, is_available, restaurant_id, created_at) VALUES ($1, $2, $3, $4, $5, $6)",
		item.ID, item.Name, item.Price, item.IsAvailable, item.RestaurantID, item.CreatedAt,
	)
	require.NoError(t, err)

	return item
}

// seedOrder inserts an order with a single item and returns the order ID.
func seedOrder(t *testing.T, pool *pgxpool.Pool, customerID, restaurantID, menuItemID uuid.UUID, total string, status model.OrderStatus) uuid.UUID {
	t.Helper()

	ctx := context.Background()
	orderID := uuid.New()

	_, err := pool.Exec(ctx,
		"INSERT INTO orders (id, customer_id, restaurant_id, total_price, status) VALUES ($1, $2, $3, $4, $5)",
		orderID, customerID, restaurantID, decimal.RequireFromString(total), status,
	)
	require.NoError(t, err)

	_, err = pool.Exec(ctx,
		"INSERT INTO order_items (id, order_id, menu_item_id, quantity) VALUES ($1, $2, $3, $4)",
		uuid.New(), orderID, menuItemID, 1,
	)
	require.NoError(t, err)

	return orderID
}
