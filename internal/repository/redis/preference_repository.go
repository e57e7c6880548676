package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"aromaSpa/domain"

	"github.com/redis/go-redis/v9"
)

const preferenceTTL = 24 * time.Hour

// PreferenceRepository keeps per-session preferences in redis with a session
// TTL. Preferences are disposable UI state; losing them means falling back to
// defaults, so the TTL needs no refresh discipline.
type PreferenceRepository struct {
	client *redis.Client
}

func NewPreferenceRepository(client *redis.Client) *PreferenceRepository {
	return &PreferenceRepository{
		client: client,
	}
}

func preferenceKey(sessionID string) string {
	return fmt.Sprintf("pref:session:%s", sessionID)
}

func (r *PreferenceRepository) Get(ctx context.Context, sessionID string) (domain.UserPreference, bool, error) {
	val, err := r.client.Get(ctx, preferenceKey(sessionID)).Result()
	if err != nil {
		if err == redis.Nil {
			return domain.UserPreference{}, false, nil
		}
		return domain.UserPreference{}, false, fmt.Errorf("failed to get preference from Redis: %w", err)
	}

	var pref domain.UserPreference
	if err := json.Unmarshal([]byte(val), &pref); err != nil {
		return domain.UserPreference{}, false, fmt.Errorf("failed to unmarshal preference: %w", err)
	}

	return pref, true, nil
}

func (r *PreferenceRepository) Save(ctx context.Context, sessionID string, pref domain.UserPreference) error {
	data, err := json.Marshal(pref)
	if err != nil {
		return fmt.Errorf("failed to marshal preference: %w", err)
	}

	if err := r.client.Set(ctx, preferenceKey(sessionID), data, preferenceTTL).Err(); err != nil {
		return fmt.Errorf("failed to store preference in Redis: %w", err)
	}

	return nil
}
