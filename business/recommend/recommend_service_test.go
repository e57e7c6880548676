package recommend

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"aromaSpa/domain"
)

// in-memory fakes for the repository contracts

type fakeCatalogRepo struct {
	items []domain.Item
}

func (f *fakeCatalogRepo) FindAll(ctx context.Context) ([]domain.Item, error) {
	out := make([]domain.Item, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeCatalogRepo) FindByID(ctx context.Context, id string) (domain.Item, error) {
	for _, item := range f.items {
		if item.ID == id {
			return item, nil
		}
	}
	return domain.Item{}, errors.New("item not found")
}

type fakeRatingRepo struct {
	saved []domain.Rating
}

func (f *fakeRatingRepo) Save(ctx context.Context, rating *domain.Rating) error {
	f.saved = append(f.saved, *rating)
	return nil
}

func (f *fakeRatingRepo) FindAll(ctx context.Context) ([]domain.Rating, error) {
	out := make([]domain.Rating, len(f.saved))
	copy(out, f.saved)
	return out, nil
}

func newTestService(cfg Config) (*Service, *fakeRatingRepo) {
	catalogRepo := &fakeCatalogRepo{items: []domain.Item{testLavender(), testMint()}}
	ratingRepo := &fakeRatingRepo{}
	return NewService(catalogRepo, ratingRepo, NewSimilarityStore(), cfg), ratingRepo
}

func TestRecommendEveningScenario(t *testing.T) {
	svc, _ := newTestService(DefaultConfig())
	evening := RequestContext{TimeOfDay: Evening, Season: Summer}

	items, err := svc.Recommend(context.Background(), "u1", []string{"relaxation", "sleep"}, domain.DefaultPreference(), evening, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != "lav" {
		t.Fatalf("top item = %s, want lav", items[0].ID)
	}

	scores, err := svc.DebugRecommend(context.Background(), "u1", []string{"relaxation", "sleep"}, domain.DefaultPreference(), evening, 5)
	if err != nil {
		t.Fatalf("debug recommend: %v", err)
	}
	if !almostEqual(scores[0].ContentScore, 1.02) {
		t.Errorf("lav content score = %v, want 1.02", scores[0].ContentScore)
	}
	if !almostEqual(scores[0].SynergyScore, 0.85) {
		t.Errorf("lav synergy score = %v, want 0.85", scores[0].SynergyScore)
	}
	if scores[0].CollaborativeScore != 0 {
		t.Errorf("lav collaborative score = %v, want 0 with empty rating log", scores[0].CollaborativeScore)
	}
	if !almostEqual(scores[0].FinalScore, 0.7*1.02) {
		t.Errorf("lav final score = %v, want %v", scores[0].FinalScore, 0.7*1.02)
	}
}

func TestRecommendDeterminism(t *testing.T) {
	svc, _ := newTestService(DefaultConfig())
	rctx := RequestContext{TimeOfDay: Morning, Season: Winter}

	first, err := svc.Recommend(context.Background(), "u1", []string{"energy"}, domain.DefaultPreference(), rctx, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	second, err := svc.Recommend(context.Background(), "u1", []string{"energy"}, domain.DefaultPreference(), rctx, 5)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated calls differ:\n%+v\n%+v", first, second)
	}
}

func TestRecommendTiesKeepCatalogOrder(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{items: []domain.Item{
		{ID: "a", Properties: map[string]float64{"focus": 0.5}, Scent: "herbal"},
		{ID: "b", Properties: map[string]float64{"focus": 0.5}, Scent: "citrus"},
	}}
	svc := NewService(catalogRepo, nil, NewSimilarityStore(), DefaultConfig())

	items, err := svc.Recommend(context.Background(), "u1", []string{"focus"}, domain.DefaultPreference(), RequestContext{TimeOfDay: Afternoon, Season: Summer}, 2)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("tie order = %s,%s, want catalog order a,b", items[0].ID, items[1].ID)
	}
}

func TestRecommendItemCount(t *testing.T) {
	svc, _ := newTestService(DefaultConfig())
	rctx := RequestContext{TimeOfDay: Afternoon, Season: Summer}

	// the same service must serve different counts per call
	one, err := svc.Recommend(context.Background(), "u1", []string{"relaxation"}, domain.DefaultPreference(), rctx, 1)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(one) != 1 {
		t.Fatalf("got %d items, want 1", len(one))
	}

	// zero falls back to the default count, capped by catalog size
	all, err := svc.Recommend(context.Background(), "u1", []string{"relaxation"}, domain.DefaultPreference(), rctx, 0)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("got %d items, want 2", len(all))
	}
}

func TestRecommendStrictSelection(t *testing.T) {
	cfg := DefaultConfig()
	cfg.StrictSelection = true
	svc, _ := newTestService(cfg)

	_, err := svc.Recommend(context.Background(), "u1", nil, domain.DefaultPreference(), RequestContext{}, 5)
	if !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("strict empty selection error = %v, want ErrEmptySelection", err)
	}

	// tolerant mode ranks on collaborative score alone
	lax, _ := newTestService(DefaultConfig())
	items, err := lax.Recommend(context.Background(), "u1", nil, domain.DefaultPreference(), RequestContext{}, 5)
	if err != nil {
		t.Fatalf("tolerant empty selection: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
}

func TestSubmitFeedbackUpdatesRanking(t *testing.T) {
	svc, ratingRepo := newTestService(DefaultConfig())
	ctx := context.Background()
	rctx := RequestContext{TimeOfDay: Evening, Season: Winter}

	// u1 and u2 agree; u3 matches their pattern on two other items
	seed := []domain.Rating{
		{UserID: "u1", ItemID: "lav", Value: 1},
		{UserID: "u1", ItemID: "mint", Value: -1},
		{UserID: "u2", ItemID: "lav", Value: 1},
		{UserID: "u2", ItemID: "mint", Value: -1},
	}
	for _, r := range seed {
		if err := svc.SubmitFeedback(ctx, r, rctx); err != nil {
			t.Fatalf("feedback: %v", err)
		}
	}

	if got := svc.Store().PredictRating("u2", "lav"); got != 1 {
		t.Fatalf("exact recall after feedback = %v, want 1", got)
	}
	if len(ratingRepo.saved) != len(seed) {
		t.Fatalf("persisted %d ratings, want %d", len(ratingRepo.saved), len(seed))
	}
	if ratingRepo.saved[0].Context["season"] != Winter {
		t.Fatalf("feedback context not recorded: %+v", ratingRepo.saved[0].Context)
	}
}

func TestSubmitFeedbackLatestWins(t *testing.T) {
	svc, _ := newTestService(DefaultConfig())
	ctx := context.Background()
	rctx := RequestContext{TimeOfDay: Morning, Season: Spring}

	if err := svc.SubmitFeedback(ctx, domain.Rating{UserID: "u1", ItemID: "lav", Value: 1}, rctx); err != nil {
		t.Fatalf("feedback: %v", err)
	}
	if err := svc.SubmitFeedback(ctx, domain.Rating{UserID: "u1", ItemID: "lav", Value: -1}, rctx); err != nil {
		t.Fatalf("feedback: %v", err)
	}

	if got := svc.Store().PredictRating("u1", "lav"); got != -1 {
		t.Fatalf("prediction after re-rating = %v, want -1", got)
	}
	if logLen := len(svc.Store().Log()); logLen != 2 {
		t.Fatalf("log length = %d, want 2", logLen)
	}
}

func TestSubmitFeedbackUnknownItem(t *testing.T) {
	svc, _ := newTestService(DefaultConfig())

	err := svc.SubmitFeedback(context.Background(), domain.Rating{UserID: "u1", ItemID: "nope", Value: 1}, RequestContext{})
	if err == nil {
		t.Fatal("expected error for unknown item")
	}
}

func TestRestoreReplaysDurableLog(t *testing.T) {
	catalogRepo := &fakeCatalogRepo{items: []domain.Item{testLavender(), testMint()}}
	ratingRepo := &fakeRatingRepo{saved: []domain.Rating{
		{UserID: "u1", ItemID: "lav", Value: 1},
		{UserID: "u1", ItemID: "lav", Value: -1},
	}}
	svc := NewService(catalogRepo, ratingRepo, NewSimilarityStore(), DefaultConfig())

	if err := svc.Restore(context.Background()); err != nil {
		t.Fatalf("restore: %v", err)
	}

	// replay preserves insertion order, so the later rating wins
	if got := svc.Store().PredictRating("u1", "lav"); got != -1 {
		t.Fatalf("prediction after restore = %v, want -1", got)
	}
}

func TestServiceCombine(t *testing.T) {
	svc, _ := newTestService(DefaultConfig())

	blend, err := svc.Combine(context.Background(), []string{"lav", "mint"})
	if err != nil {
		t.Fatalf("combine: %v", err)
	}
	if !almostEqual(blend.Price, 25.5) {
		t.Errorf("blend price = %v, want 25.5", blend.Price)
	}

	if _, err := svc.Combine(context.Background(), []string{"lav", "nope"}); err == nil {
		t.Fatal("expected error for unknown item id")
	}
	if _, err := svc.Combine(context.Background(), nil); !errors.Is(err, ErrNoItemsToCombine) {
		t.Fatalf("combine(nil) error = %v, want ErrNoItemsToCombine", err)
	}
}
