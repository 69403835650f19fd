package repository

import (
	"context"
	"errors"
	"fmt"

	"foodcourt/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the SQLSTATE reported by PostgreSQL for unique
// constraint violations.
const uniqueViolation = "23505"

// customerRepository implements the CustomerRepository interface using PostgreSQL.
type customerRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCustomerRepository creates a new PostgreSQL-backed customer repository.
func NewCustomerRepository(pool *pgxpool.Pool, logger zerolog.Logger) CustomerRepository {
	return &customerRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "customer").Logger(),
	}
}

// Create inserts a new customer.
func (r *customerRepository) Create(ctx context.Context, customer *model.Customer) error {
	query := `
		INSERT INTO customers (id, name, email, phone_number, address, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.pool.Exec(ctx, query,
		customer.ID,
		customer.Name,
		customer.Email,
		customer.PhoneNumber,
		customer.Address,
		customer.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Warn().Str("email", customer.Email).Msg("duplicate customer email")
			return model.ErrDuplicateEmail
		}
		r.logger.Error().
			Err(err).
			Str("customer_id", customer.ID.String()).
			Msg("failed to create customer")
		return fmt.Errorf("failed to create customer: %w", err)
	}

	r.logger.Debug().
		Str("customer_id", customer.ID.String()).
		Msg("customer created successfully")

	return nil
}

// GetByID retrieves a single customer by ID.
func (r *customerRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Customer, error) {
	query := `
		SELECT id, name, email, phone_number, address, created_at
		FROM customers
		WHERE id = $1
	`

	var c model.Customer
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.PhoneNumber,
		&c.Address,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("customer_id", id.String()).Msg("customer not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("customer_id", id.String()).Msg("failed to query customer")
		return nil, fmt.Errorf("failed to query customer: %w", err)
	}

	return &c, nil
}

// TopByOrderCount retrieves up to limit customers ranked by order count.
func (r *customerRepository) TopByOrderCount(ctx context.Context, limit int) ([]model.TopCustomerEntry, error) {
	// Tie-break on customer id so rankings are deterministic.
	query := `
		SELECT c.id, c.name, c.email, c.phone_number, c.address, c.created_at,
		       COUNT(o.id) AS order_count
		FROM orders o
		JOIN customers c ON c.id = o.customer_id
		GROUP BY c.id, c.name, c.email, c.phone_number, c.address, c.created_at
		ORDER BY order_count DESC, c.id
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query top customers")
		return nil, fmt.Errorf("failed to query top customers: %w", err)
	}
	defer rows.Close()

	var entries []model.TopCustomerEntry
	for rows.Next() {
		var e model.TopCustomerEntry
		err := rows.Scan(
			&e.Customer.ID,
			&e.Customer.Name,
			&e.Customer.Email,
			&e.Customer.PhoneNumber,
			&e.Customer.Address,
			&e.Customer.CreatedAt,
			&e.OrderCount,
		)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan top customer row")
			return nil, fmt.Errorf("failed to scan top customer: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating top customer rows")
		return nil, fmt.Errorf("error iterating top customers: %w", err)
	}

	return entries, nil
}
