package catalog

import (
	"context"
	"errors"
	"fmt"

	"aromaSpa/domain"
	"aromaSpa/pkg/logger"
)

// CatalogRepository contract interface
type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
	FindByID(ctx context.Context, id string) (domain.Item, error)
	FindConcerns(ctx context.Context) ([]domain.Concern, error)
}

type catalogService struct {
	catalogRepo CatalogRepository
}

func NewCatalogService(catalogRepo CatalogRepository) *catalogService {
	return &catalogService{
		catalogRepo: catalogRepo,
	}
}

func (s *catalogService) GetAllItems(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all items", err)
		return nil, err
	}

	return items, nil
}

func (s *catalogService) GetItemByID(ctx context.Context, id string) (*domain.Item, error) {
	if id == "" {
		return nil, errors.New("invalid item id")
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	item, err := s.catalogRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find item by id", err)
		return nil, err
	}

	return &item, nil
}

// GetConcerns returns the concern taxonomy, optionally filtered by category.
func (s *catalogService) GetConcerns(ctx context.Context, category string) ([]domain.Concern, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	concerns, err := s.catalogRepo.FindConcerns(ctx)
	if err != nil {
		logger.Error("Failed to find concerns", err)
		return nil, err
	}

	if category == "" {
		return concerns, nil
	}

	filtered := make([]domain.Concern, 0, len(concerns))
	for _, concern := range concerns {
		if concern.Category == category {
			filtered = append(filtered, concern)
		}
	}

	return filtered, nil
}
