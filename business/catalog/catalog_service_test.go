package catalog

import (
	"context"
	"errors"
	"testing"

	"aromaSpa/domain"
)

type fakeCatalogRepo struct {
	items    []domain.Item
	concerns []domain.Concern
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Item, error) {
	return f.items, nil
}

func (f *fakeCatalogRepo) FindByID(ctx context.Context, id string) (domain.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, errors.New("item not found")
}

func (f *fakeCatalogRepo) FindConcerns(ctx context.Context) ([]domain.Concern, error) {
	return f.concerns, nil
}

func newTestService() *catalogService {
	return NewCatalogService(&fakeCatalogRepo{
		items: []domain.Item{
			{ID: "lavender", Scent: "floral"},
			{ID: "peppermint", Scent: "minty"},
		},
		concerns: []domain.Concern{
			{ID: "anxiety", Kind: domain.ConcernKindSymptom, Category: "mental"},
			{ID: "focus", Kind: domain.ConcernKindGoal, Category: "mental"},
			{ID: "sleep", Kind: domain.ConcernKindGoal, Category: "wellness"},
		},
	})
}

func TestGetAllItems(t *testing.T) {
	items, err := newTestService().GetAllItems(context.Background())
	if err != nil {
		t.Fatalf("get all items: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestGetItemByID(t *testing.T) {
	svc := newTestService()

	item, err := svc.GetItemByID(context.Background(), "lavender")
	if err != nil {
		t.Fatalf("get item: %v", err)
	}
	if item.Scent != "floral" {
		t.Errorf("scent = %q, want floral", item.Scent)
	}

	if _, err := svc.GetItemByID(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty id")
	}
}

func TestGetConcernsCategoryFilter(t *testing.T) {
	svc := newTestService()

	all, err := svc.GetConcerns(context.Background(), "")
	if err != nil {
		t.Fatalf("get concerns: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d concerns, want 3", len(all))
	}

	mental, err := svc.GetConcerns(context.Background(), "mental")
	if err != nil {
		t.Fatalf("get concerns: %v", err)
	}
	if len(mental) != 2 {
		t.Fatalf("got %d mental concerns, want 2", len(mental))
	}
}
