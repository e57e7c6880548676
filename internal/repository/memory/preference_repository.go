package memory

import (
	"context"
	"sync"

	"aromaSpa/domain"
)

// PreferenceRepository is the in-process fallback used when redis is not
// configured. Sessions die with the process, which matches the contract.
type PreferenceRepository struct {
	mu    sync.RWMutex
	prefs map[string]domain.UserPreference
}

func NewPreferenceRepository() *PreferenceRepository {
	return &PreferenceRepository{
		prefs: make(map[string]domain.UserPreference),
	}
}

func (r *PreferenceRepository) Get(ctx context.Context, sessionID string) (domain.UserPreference, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pref, ok := r.prefs[sessionID]
	return pref, ok, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, sessionID string, pref domain.UserPreference) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.prefs[sessionID] = pref
	return nil
}
