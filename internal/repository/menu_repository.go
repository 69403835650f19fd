package repository

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// menuItemRepository implements the MenuItemRepository interface using PostgreSQL.
type menuItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu-item repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

// Create inserts a new menu item.
func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	query := `
		INSERT INTO menu_items (id, name, price, is_available, restaurant_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.Name,
		item.Price,
		item.IsAvailable,
		item.RestaurantID,
		item.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("menu_item_id", item.ID.String()).
			Msg("failed to create menu item")
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	r.logger.Debug().
		Str("menu_item_id", item.ID.String()).
		Str("restaurant_id", item.RestaurantID.String()).
		Msg("menu item created successfully")

	return nil
}

// GetByID retrieves a single menu item by ID.
func (r *menuItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.MenuItem, error) {
	query := `
		SELECT id, name, price, is_available, restaurant_id, created_at
		FROM menu_items
		WHERE id = $1
	`

	var item model.MenuItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.IsAvailable,
		&item.RestaurantID,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_item_id", id.String()).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return &item, nil
}

// ListByRestaurant retrieves all menu items of a restaurant.
func (r *menuItemRepository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error) {
	query := `
		SELECT id, name, price, is_available, restaurant_id, created_at
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY name
	`

	rows, err := r.pool.Query(ctx, query, restaurantID)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("restaurant_id", restaurantID.String()).
			Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows, r.logger)
}

// Update applies a partial update to a menu item and returns the updated row.
func (r *menuItemRepository) Update(ctx context.Context, id uuid.UUID, price *decimal.Decimal, isAvailable *bool) (*model.MenuItem, error) {
	// COALESCE keeps the stored value for fields the caller did not send.
	query := `
		UPDATE menu_items
		SET price = COALESCE($2, price),
		    is_available = COALESCE($3, is_available)
		WHERE id = $1
		RETURNING id, name, price, is_available, restaurant_id, created_at
	`

	var item model.MenuItem
	err := r.pool.QueryRow(ctx, query, id, price, isAvailable).Scan(
		&item.ID,
		&item.Name,
		&item.Price,
		&item.IsAvailable,
		&item.RestaurantID,
		&item.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item not found for update")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("menu_item_id", id.String()).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	r.logger.Debug().
		Str("menu_item_id", id.String()).
		Msg("menu item updated successfully")

	return &item, nil
}

// GetForUpdate retrieves menu items by ID inside a transaction, locking the
// rows so price and availability cannot change until the transaction ends.
func (r *menuItemRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, ids []uuid.UUID) ([]model.MenuItem, error) {
	if len(ids) == 0 {
		return []model.MenuItem{}, nil
	}

	query := `
		SELECT id, name, price, is_available, restaurant_id, created_at
		FROM menu_items
		WHERE id = ANY($1)
		FOR UPDATE
	`

	rows, err := tx.Query(ctx, query, ids)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(ids)).Msg("failed to lock menu items")
		return nil, fmt.Errorf("failed to lock menu items: %w", err)
	}
	defer rows.Close()

	return scanMenuItems(rows, r.logger)
}

// MostOrdered retrieves the menu item with the highest summed ordered quantity.
func (r *menuItemRepository) MostOrdered(ctx context.Context) (*model.TopMenuItemEntry, error) {
	// Tie-break on menu item id so the winner is deterministic.
	query := `
		SELECT m.id, m.name, m.price, m.is_available, m.restaurant_id, m.created_at,
		       SUM(oi.quantity) AS total_quantity
		FROM order_items oi
		JOIN menu_items m ON m.id = oi.menu_item_id
		GROUP BY m.id, m.name, m.price, m.is_available, m.restaurant_id, m.created_at
		ORDER BY total_quantity DESC, m.id
		LIMIT 1
	`

	var e model.TopMenuItemEntry
	err := r.pool.QueryRow(ctx, query).Scan(
		&e.MenuItem.ID,
		&e.MenuItem.Name,
		&e.MenuItem.Price,
		&e.MenuItem.IsAvailable,
		&e.MenuItem.RestaurantID,
		&e.MenuItem.CreatedAt,
		&e.TotalQuantity,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Msg("no order items recorded yet")
			return nil, nil
		}
		r.logger.Error().Err(err).Msg("failed to query most ordered menu item")
		return nil, fmt.Errorf("failed to query most ordered menu item: %w", err)
	}

	return &e, nil
}

// scanMenuItems collects menu item rows.
func scanMenuItems(rows pgx.Rows, logger zerolog.Logger) ([]model.MenuItem, error) {
	var items []model.MenuItem
	for rows.Next() {
		var item model.MenuItem
		err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Price,
			&item.IsAvailable,
			&item.RestaurantID,
			&item.CreatedAt,
		)
		if err != nil {
			logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}
