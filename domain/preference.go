package domain

// UserPreference holds the per-session tuning a user applies through the UI:
// importance sliders per property, plus favorite and allergy scent sets.
// Unset property weights default to 1.0 at scoring time.
type UserPreference struct {
	PropertyWeights map[string]float64 `json:"property_weights"`
	FavoriteScents  []string           `json:"favorite_scents"`
	Allergies       []string           `json:"allergies"`
}

// DefaultPreference returns an empty preference (all weights fall back to 1.0).
func DefaultPreference() UserPreference {
	return UserPreference{
		PropertyWeights: map[string]float64{},
		FavoriteScents:  []string{},
		Allergies:       []string{},
	}
}

func (p UserPreference) HasFavoriteScent(scent string) bool {
	return containsScent(p.FavoriteScents, scent)
}

func (p UserPreference) HasAllergy(scent string) bool {
	return containsScent(p.Allergies, scent)
}

func containsScent(scents []string, scent string) bool {
	for _, s := range scents {
		if s == scent {
			return true
		}
	}
	return false
}
