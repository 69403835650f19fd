package service

import (
	"context"
	"fmt"
	"time"

	"foodcourt/internal/model"
	"foodcourt/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// restaurantService implements RestaurantService.
type restaurantService struct {
	restaurantRepo repository.RestaurantRepository
	menuRepo       repository.MenuItemRepository
	orderRepo      repository.OrderRepository
	logger         zerolog.Logger
}

// NewRestaurantService creates a new restaurant service.
func NewRestaurantService(
	restaurantRepo repository.RestaurantRepository,
	menuRepo repository.MenuItemRepository,
	orderRepo repository.OrderRepository,
	logger zerolog.Logger,
) RestaurantService {
	return &restaurantService{
		restaurantRepo: restaurantRepo,
		menuRepo:       menuRepo,
		orderRepo:      orderRepo,
		logger:         logger.With().Str("service", "restaurant").Logger(),
	}
}

// Register creates a new restaurant.
func (s *restaurantService) Register(ctx context.Context, req *model.CreateRestaurantRequest) (*model.Restaurant, error) {
	if req == nil {
		return nil, fmt.Errorf("restaurant request is nil")
	}

	if req.Name == "" {
		return nil, fmt.Errorf("restaurant name is required")
	}

	restaurant := &model.Restaurant{
		ID:        uuid.New(),
		Name:      req.Name,
		Location:  req.Location,
		CreatedAt: time.Now(),
	}

	if err := s.restaurantRepo.Create(ctx, restaurant); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to register restaurant")
		return nil, fmt.Errorf("failed to register restaurant: %w", err)
	}

	s.logger.Info().
		Str("restaurant_id", restaurant.ID.String()).
		Msg("restaurant registered successfully")

	return restaurant, nil
}

// GetMenu retrieves the menu of a restaurant.
func (s *restaurantService) GetMenu(ctx context.Context, restaurantID uuid.UUID) ([]model.MenuItem, error) {
	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("failed to get restaurant")
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant == nil {
		s.logger.Debug().Str("restaurant_id", restaurantID.String()).Msg("restaurant not found")
		return nil, model.ErrRestaurantNotFound
	}

	items, err := s.menuRepo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}

	if items == nil {
		items = []model.MenuItem{}
	}

	return items, nil
}

// AddMenuItem adds a menu item to a restaurant.
func (s *restaurantService) AddMenuItem(ctx context.Context, restaurantID uuid.UUID, req *model.CreateMenuItemRequest) (*model.MenuItem, error) {
	if req == nil {
		return nil, fmt.Errorf("menu item request is nil")
	}

	if req.Name == "" {
		return nil, fmt.Errorf("menu item name is required")
	}

	if req.Price.IsNegative() {
		s.logger.Warn().
			Str("restaurant_id", restaurantID.String()).
			Str("price", req.Price.String()).
			Msg("negative menu item price rejected")
		return nil, model.ErrInvalidPrice
	}

	restaurant, err := s.restaurantRepo.GetByID(ctx, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("failed to get restaurant")
		return nil, fmt.Errorf("failed to get restaurant: %w", err)
	}

	if restaurant == nil {
		s.logger.Debug().Str("restaurant_id", restaurantID.String()).Msg("restaurant not found")
		return nil, model.ErrRestaurantNotFound
	}

	item := &model.MenuItem{
		ID:           uuid.New(),
		Name:         req.Name,
		Price:        req.Price,
		IsAvailable:  req.IsAvailable,
		RestaurantID: restaurantID,
		CreatedAt:    time.Now(),
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().
		Str("menu_item_id", item.ID.String()).
		Str("restaurant_id", restaurantID.String()).
		Msg("menu item added successfully")

	return item, nil
}

// Revenue sums the total price of a restaurant's non-cancelled orders.
func (s *restaurantService) Revenue(ctx context.Context, restaurantID uuid.UUID) (decimal.Decimal, error) {
	revenue, err := s.orderRepo.RevenueByRestaurant(ctx, restaurantID)
	if err != nil {
		s.logger.Error().Err(err).Str("restaurant_id", restaurantID.String()).Msg("failed to compute revenue")
		return decimal.Zero, fmt.Errorf("failed to compute revenue: %w", err)
	}

	s.logger.Debug().
		Str("restaurant_id", restaurantID.String()).
		Str("revenue", revenue.String()).
		Msg("computed restaurant revenue")

	return revenue, nil
}
