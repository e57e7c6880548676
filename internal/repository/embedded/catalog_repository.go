package embedded

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	"aromaSpa/domain"
)

//go:embed catalog.json concerns.json
var feedFS embed.FS

// CatalogRepository serves the static catalog and concern taxonomy from the
// embedded JSON feeds. Everything is loaded and validated once; reads after
// that never fail.
type CatalogRepository struct {
	items    []domain.Item
	byID     map[string]domain.Item
	concerns []domain.Concern
}

func NewCatalogRepository() (*CatalogRepository, error) {
	var items []domain.Item
	if err := loadFeed("catalog.json", &items); err != nil {
		return nil, err
	}

	var concerns []domain.Concern
	if err := loadFeed("concerns.json", &concerns); err != nil {
		return nil, err
	}

	byID := make(map[string]domain.Item, len(items))
	for _, item := range items {
		if item.ID == "" {
			return nil, errors.New("catalog item with empty id")
		}
		if _, dup := byID[item.ID]; dup {
			return nil, fmt.Errorf("duplicate catalog item id %q", item.ID)
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("catalog item %q has negative price", item.ID)
		}
		for key, value := range item.Properties {
			if value < 0 || value > 1 {
				return nil, fmt.Errorf("catalog item %q property %q out of [0,1]: %v", item.ID, key, value)
			}
		}
		byID[item.ID] = item
	}

	for _, concern := range concerns {
		if concern.ID == "" {
			return nil, errors.New("concern with empty id")
		}
		if concern.Kind != domain.ConcernKindSymptom && concern.Kind != domain.ConcernKindGoal {
			return nil, fmt.Errorf("concern %q has unknown kind %q", concern.ID, concern.Kind)
		}
	}

	return &CatalogRepository{
		items:    items,
		byID:     byID,
		concerns: concerns,
	}, nil
}

func loadFeed(name string, out any) error {
	data, err := feedFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded feed %s: %w", name, err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("parse embedded feed %s: %w", name, err)
	}
	return nil
}

// FindAll returns the catalog in feed order. The order is the ranking
// tie-break, so it must stay stable.
func (r *CatalogRepository) FindAll(ctx context.Context) ([]domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	items := make([]domain.Item, len(r.items))
	copy(items, r.items)
	return items, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id string) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, fmt.Errorf("context error: %w", err)
	}

	item, ok := r.byID[id]
	if !ok {
		return domain.Item{}, errors.New("item not found")
	}
	return item, nil
}

func (r *CatalogRepository) FindConcerns(ctx context.Context) ([]domain.Concern, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	concerns := make([]domain.Concern, len(r.concerns))
	copy(concerns, r.concerns)
	return concerns, nil
}
