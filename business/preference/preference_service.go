package preference

import (
	"context"
	"errors"
	"fmt"

	"aromaSpa/domain"
	"aromaSpa/pkg/logger"
)

const (
	minPropertyWeight = 0.0
	maxPropertyWeight = 2.0
)

// PreferenceRepository contract interface
type PreferenceRepository interface {
	Get(ctx context.Context, sessionID string) (domain.UserPreference, bool, error)
	Save(ctx context.Context, sessionID string, pref domain.UserPreference) error
}

type preferenceService struct {
	prefRepo PreferenceRepository
}

func NewPreferenceService(prefRepo PreferenceRepository) *preferenceService {
	return &preferenceService{
		prefRepo: prefRepo,
	}
}

// GetPreference returns the session's preference, falling back to defaults
// for sessions that never adjusted anything.
func (s *preferenceService) GetPreference(ctx context.Context, sessionID string) (domain.UserPreference, error) {
	if sessionID == "" {
		return domain.UserPreference{}, errors.New("session id is required")
	}

	if err := ctx.Err(); err != nil {
		return domain.UserPreference{}, fmt.Errorf("context error: %w", err)
	}

	pref, found, err := s.prefRepo.Get(ctx, sessionID)
	if err != nil {
		logger.Error("failed to load preference", err)
		return domain.UserPreference{}, err
	}
	if !found {
		return domain.DefaultPreference(), nil
	}
	if pref.PropertyWeights == nil {
		pref.PropertyWeights = map[string]float64{}
	}

	return pref, nil
}

// UpdateWeights merges slider adjustments into the stored weights. Each
// weight must lie in [0, 2]; 1.0 is the neutral default.
func (s *preferenceService) UpdateWeights(ctx context.Context, sessionID string, weights map[string]float64) (domain.UserPreference, error) {
	if len(weights) == 0 {
		return domain.UserPreference{}, errors.New("at least one weight is required")
	}
	for property, weight := range weights {
		if property == "" {
			return domain.UserPreference{}, errors.New("property key is required")
		}
		if weight < minPropertyWeight || weight > maxPropertyWeight {
			return domain.UserPreference{}, fmt.Errorf("weight for %q must be between %.0f and %.0f", property, minPropertyWeight, maxPropertyWeight)
		}
	}

	pref, err := s.GetPreference(ctx, sessionID)
	if err != nil {
		return domain.UserPreference{}, err
	}

	for property, weight := range weights {
		pref.PropertyWeights[property] = weight
	}

	if err := s.prefRepo.Save(ctx, sessionID, pref); err != nil {
		logger.Error("failed to save preference", err)
		return domain.UserPreference{}, fmt.Errorf("failed to save preference: %w", err)
	}

	return pref, nil
}

// UpdateScents replaces the favorite and allergy scent sets. A scent listed
// as an allergy is dropped from favorites: the veto side wins.
func (s *preferenceService) UpdateScents(ctx context.Context, sessionID string, favorites, allergies []string) (domain.UserPreference, error) {
	pref, err := s.GetPreference(ctx, sessionID)
	if err != nil {
		return domain.UserPreference{}, err
	}

	allergic := make(map[string]bool, len(allergies))
	for _, scent := range allergies {
		allergic[scent] = true
	}

	kept := make([]string, 0, len(favorites))
	for _, scent := range favorites {
		if !allergic[scent] {
			kept = append(kept, scent)
		}
	}

	pref.FavoriteScents = kept
	pref.Allergies = allergies
	if pref.Allergies == nil {
		pref.Allergies = []string{}
	}

	if err := s.prefRepo.Save(ctx, sessionID, pref); err != nil {
		logger.Error("failed to save preference", err)
		return domain.UserPreference{}, fmt.Errorf("failed to save preference: %w", err)
	}

	return pref, nil
}
