package domain

// RecommendationScore is the per-request score breakdown for one catalog item.
// It is never persisted; the debug endpoint exposes it for tuning.
type RecommendationScore struct {
	Item               Item    `json:"item"`
	ContentScore       float64 `json:"content_score"`
	SynergyScore       float64 `json:"synergy_score"`
	CollaborativeScore float64 `json:"collaborative_score"`
	FinalScore         float64 `json:"final_score"`
}
