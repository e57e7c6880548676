package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"aromaSpa/domain"
	"aromaSpa/pkg/logger"

	"gorm.io/datatypes"
)

var ErrEmptySelection = errors.New("at least one concern must be selected")

// ---- Repository interfaces ----

type CatalogRepository interface {
	FindAll(ctx context.Context) ([]domain.Item, error)
	FindByID(ctx context.Context, id string) (domain.Item, error)
}

// RatingRepository is the optional durable backing for the rating log. The
// in-memory SimilarityStore stays the source of truth while serving; the
// repository exists so ratings survive a restart via Restore.
type RatingRepository interface {
	Save(ctx context.Context, rating *domain.Rating) error
	FindAll(ctx context.Context) ([]domain.Rating, error)
}

// ---- Usecase / Service ----

// Service ranks the catalog for a user by blending the content-based score
// with a collaborative prediction, and feeds thumbs up/down back into the
// similarity store. It holds no per-request state: Recommend is safely
// re-callable with any item count.
type Service struct {
	catalogRepo CatalogRepository
	ratingRepo  RatingRepository
	store       *SimilarityStore
	cfg         Config
}

func NewService(
	catalogRepo CatalogRepository,
	ratingRepo RatingRepository,
	store *SimilarityStore,
	cfg Config,
) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		ratingRepo:  ratingRepo,
		store:       store,
		cfg:         cfg.withDefaults(),
	}
}

// Store exposes the similarity store for callers that need raw predictions.
func (s *Service) Store() *SimilarityStore {
	return s.store
}

// Restore replays the durable rating log into the similarity store. Call once
// at startup, before serving.
func (s *Service) Restore(ctx context.Context) error {
	if s.ratingRepo == nil {
		return nil
	}

	ratings, err := s.ratingRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("replay rating log: %w", err)
	}

	for _, rating := range ratings {
		s.store.AddRating(rating)
	}

	logger.Info("rating log restored", "ratings", len(ratings), "users", s.store.UserCount())
	return nil
}

// Recommend returns the top itemCount catalog items for the user, ranked by
// blended score plus synergy, ties broken by catalog order.
func (s *Service) Recommend(
	ctx context.Context,
	userID string,
	concernIDs []string,
	pref domain.UserPreference,
	rctx RequestContext,
	itemCount int,
) ([]domain.Item, error) {
	scores, err := s.DebugRecommend(ctx, userID, concernIDs, pref, rctx, itemCount)
	if err != nil {
		return nil, err
	}

	items := make([]domain.Item, 0, len(scores))
	for _, score := range scores {
		items = append(items, score.Item)
	}
	return items, nil
}

// DebugRecommend is Recommend with the full per-item score breakdown, used by
// the debug endpoint and by tests asserting on individual components.
func (s *Service) DebugRecommend(
	ctx context.Context,
	userID string,
	concernIDs []string,
	pref domain.UserPreference,
	rctx RequestContext,
	itemCount int,
) ([]domain.RecommendationScore, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}
	if s.cfg.StrictSelection && len(concernIDs) == 0 {
		return nil, ErrEmptySelection
	}
	if itemCount <= 0 {
		itemCount = s.cfg.DefaultItemCount
	}

	items, err := s.catalogRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	scores := make([]domain.RecommendationScore, 0, len(items))
	for _, item := range items {
		content := ContentScore(item, concernIDs, pref, rctx, s.cfg)
		synergy := SynergyScore(item, concernIDs)
		predicted := s.store.PredictRating(userID, item.ID)

		scores = append(scores, domain.RecommendationScore{
			Item:               item,
			ContentScore:       content,
			SynergyScore:       synergy,
			CollaborativeScore: predicted,
			FinalScore:         s.cfg.ContentWeight*content + s.cfg.CollaborativeWeight*predicted,
		})
	}

	// stable: equal totals keep catalog order, so results are deterministic
	sort.SliceStable(scores, func(i, j int) bool {
		return scores[i].FinalScore+scores[i].SynergyScore >
			scores[j].FinalScore+scores[j].SynergyScore
	})

	if itemCount > len(scores) {
		itemCount = len(scores)
	}

	logger.Debug("recommend",
		"user_id", userID,
		"concerns", len(concernIDs),
		"time_of_day", rctx.TimeOfDay,
		"season", rctx.Season,
		"catalog_size", len(items),
		"returned", itemCount,
	)

	return scores[:itemCount], nil
}

// SubmitFeedback records a thumbs up/down (or any real-valued rating) and
// refreshes the rater's similarity row. The caller re-invokes Recommend to
// see the updated ranking; there is no push path.
func (s *Service) SubmitFeedback(ctx context.Context, rating domain.Rating, rctx RequestContext) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}
	if rating.UserID == "" {
		return errors.New("user id is required")
	}
	if rating.ItemID == "" {
		return errors.New("item id is required")
	}

	if _, err := s.catalogRepo.FindByID(ctx, rating.ItemID); err != nil {
		return fmt.Errorf("unknown item %q: %w", rating.ItemID, err)
	}

	if rating.Context == nil {
		rating.Context = datatypes.JSONMap{}
	}
	rating.Context["time_of_day"] = rctx.TimeOfDay
	rating.Context["season"] = rctx.Season
	rating.Context["event_time"] = time.Now().Format(time.RFC3339)

	s.store.AddRating(rating)

	if s.ratingRepo != nil {
		if err := s.ratingRepo.Save(ctx, &rating); err != nil {
			return fmt.Errorf("failed to persist rating: %w", err)
		}
	}

	logger.Debug("feedback recorded",
		"user_id", rating.UserID,
		"item_id", rating.ItemID,
		"value", rating.Value,
	)

	FeedbackEventsTotal.WithLabelValues(rating.ItemID, feedbackDirection(rating.Value)).Inc()

	return nil
}

// Combine resolves the given catalog ids and synthesizes a blend item.
func (s *Service) Combine(ctx context.Context, itemIDs []string) (domain.Item, error) {
	if err := ctx.Err(); err != nil {
		return domain.Item{}, fmt.Errorf("context error: %w", err)
	}
	if len(itemIDs) == 0 {
		return domain.Item{}, ErrNoItemsToCombine
	}

	items := make([]domain.Item, 0, len(itemIDs))
	for _, id := range itemIDs {
		item, err := s.catalogRepo.FindByID(ctx, id)
		if err != nil {
			return domain.Item{}, fmt.Errorf("unknown item %q: %w", id, err)
		}
		items = append(items, item)
	}

	return CombineItems(items)
}

func feedbackDirection(value float64) string {
	if value < 0 {
		return "down"
	}
	return "up"
}
