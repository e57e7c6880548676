package recommend

import (
	"math"
	"sync"

	"aromaSpa/domain"
)

// SimilarityStore holds the append-only rating log, the derived latest-rating
// view, and the pairwise user-similarity matrix. It is the only shared
// mutable state in the engine: AddRating takes the write lock, readers take
// the read lock, so a prediction always sees a pre- or post-update snapshot
// and never a half-rebuilt matrix.
//
// A new rating from user u can only change similarities involving u, so
// AddRating recomputes just u's row (and its mirror entries) instead of the
// full matrix. That keeps the write cost at O(users · ratings-per-user).
type SimilarityStore struct {
	mu sync.RWMutex

	log []domain.Rating

	// latest[user][item] is the most recent rating value
	latest map[string]map[string]float64

	// sims[a][b] == sims[b][a]; the diagonal is never stored
	sims map[string]map[string]float64
}

func NewSimilarityStore() *SimilarityStore {
	return &SimilarityStore{
		latest: make(map[string]map[string]float64),
		sims:   make(map[string]map[string]float64),
	}
}

// AddRating appends one observation and refreshes the rater's similarity row.
func (s *SimilarityStore) AddRating(rating domain.Rating) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.log = append(s.log, rating)

	userRatings := s.latest[rating.UserID]
	if userRatings == nil {
		userRatings = make(map[string]float64)
		s.latest[rating.UserID] = userRatings
	}
	userRatings[rating.ItemID] = rating.Value

	s.recomputeRow(rating.UserID)
}

// recomputeRow rebuilds similarity(user, other) for every other known user.
// Caller must hold the write lock.
func (s *SimilarityStore) recomputeRow(userID string) {
	row := make(map[string]float64, len(s.latest))
	for other, otherRatings := range s.latest {
		if other == userID {
			continue
		}

		sim := pearson(s.latest[userID], otherRatings)
		row[other] = sim

		mirror := s.sims[other]
		if mirror == nil {
			mirror = make(map[string]float64)
			s.sims[other] = mirror
		}
		mirror[userID] = sim
	}
	s.sims[userID] = row
}

// pearson computes the Pearson correlation of two users' latest ratings over
// their commonly rated items. No common items or a degenerate denominator
// yields 0.
func pearson(a, b map[string]float64) float64 {
	var n float64
	var sum1, sum2, sum1Sq, sum2Sq, productSum float64

	for item, r1 := range a {
		r2, ok := b[item]
		if !ok {
			continue
		}
		n++
		sum1 += r1
		sum2 += r2
		sum1Sq += r1 * r1
		sum2Sq += r2 * r2
		productSum += r1 * r2
	}

	if n == 0 {
		return 0
	}

	numerator := productSum - sum1*sum2/n
	variance1 := sum1Sq - sum1*sum1/n
	variance2 := sum2Sq - sum2*sum2/n
	if variance1 <= 0 || variance2 <= 0 {
		return 0
	}

	return numerator / math.Sqrt(variance1*variance2)
}

// PredictRating estimates how userID would rate itemID. An existing rating is
// returned as-is; otherwise the prediction is the similarity-weighted mean of
// the other users' ratings for the item, 0 when nobody rated it.
func (s *SimilarityStore) PredictRating(userID, itemID string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if value, ok := s.latest[userID][itemID]; ok {
		return value
	}

	row := s.sims[userID]

	var numerator, denominator float64
	for other, otherRatings := range s.latest {
		if other == userID {
			continue
		}
		value, ok := otherRatings[itemID]
		if !ok {
			continue
		}
		sim := row[other]
		numerator += sim * value
		denominator += math.Abs(sim)
	}

	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

// Similarity returns the stored similarity between two users, 0 when either
// user is unknown. Self-similarity is never stored and reads as 0.
func (s *SimilarityStore) Similarity(userA, userB string) float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.sims[userA][userB]
}

// CurrentRating returns the latest rating of userID for itemID.
func (s *SimilarityStore) CurrentRating(userID, itemID string) (float64, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.latest[userID][itemID]
	return value, ok
}

// Log returns a copy of the full rating log in insertion order.
func (s *SimilarityStore) Log() []domain.Rating {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Rating, len(s.log))
	copy(out, s.log)
	return out
}

// UserCount returns the number of users with at least one rating.
func (s *SimilarityStore) UserCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.latest)
}
