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
)

// restaurantRepository implements the RestaurantRepository interface using PostgreSQL.
type restaurantRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewRestaurantRepository creates a new PostgreSQL-backed restaurant repository.
func NewRestaurantRepository(pool *pgxpool.Pool, logger zerolog.Logger) RestaurantRepository {
	return &restaurantRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "restaurant").Logger(),
	}
}

// Create inserts a new restaurant.
func (r *restaurantRepository) Create(ctx context.Context, restaurant *model.Restaurant) error {
	query := `
		INSERT INTO restaurants (id, name, location, created_at)
		VALUES ($1, $2, $3, $4)
	`

	_, err := r.pool.Exec(ctx, query,
		restaurant.ID,
		restaurant.Name,
		restaurant.Location,
		restaurant.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("restaurant_id", restaurant.ID.String()).
			Msg("failed to create restaurant")
		return fmt.Errorf("failed to create restaurant: %w", err)
	}

	r.logger.Debug().
		Str("restaurant_id", restaurant.ID.String()).
		Msg("restaurant created successfully")

	return nil
}

// GetByID retrieves a single restaurant by ID.
func (r *restaurantRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Restaurant, error) {
	query := `
		SELECT id, name, location, created_at
		FROM restaurants
		WHERE id = $1
	`

	var rst model.Restaurant
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&rst.ID,
		&rst.Name,
		&rst.Location,
		&rst.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("restaurant_id", id.String()).Msg("restaurant not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("restaurant_id", id.String()).Msg("failed to query restaurant")
		return nil, fmt.Errorf("failed to query restaurant: %w", err)
	}

	return &rst, nil
}
