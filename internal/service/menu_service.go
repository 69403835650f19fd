package service

import (
	"context"
	"fmt"

	"foodcourt/internal/model"
	"foodcourt/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuItemRepository
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuItemRepository, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// UpdateItem applies a partial update to a menu item.
func (s *menuService) UpdateItem(ctx context.Context, id uuid.UUID, req *model.UpdateMenuItemRequest) (*model.MenuItem, error) {
	if req == nil {
		return nil, fmt.Errorf("menu item update request is nil")
	}

	if req.Price == nil && req.IsAvailable == nil {
		return nil, fmt.Errorf("at least one of price or isAvailable must be provided")
	}

	if req.Price != nil && req.Price.IsNegative() {
		s.logger.Warn().
			Str("menu_item_id", id.String()).
			Str("price", req.Price.String()).
			Msg("negative menu item price rejected")
		return nil, model.ErrInvalidPrice
	}

	item, err := s.menuRepo.Update(ctx, id, req.Price, req.IsAvailable)
	if err != nil {
		s.logger.Error().Err(err).Str("menu_item_id", id.String()).Msg("failed to update menu item")
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Str("menu_item_id", id.String()).Msg("menu item not found")
		return nil, model.ErrMenuItemNotFound
	}

	s.logger.Info().
		Str("menu_item_id", id.String()).
		Msg("menu item updated successfully")

	return item, nil
}

// TopItem retrieves the single most-ordered menu item.
func (s *menuService) TopItem(ctx context.Context) (*model.TopMenuItemEntry, error) {
	entry, err := s.menuRepo.MostOrdered(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get most ordered menu item")
		return nil, fmt.Errorf("failed to get most ordered menu item: %w", err)
	}

	return entry, nil
}
