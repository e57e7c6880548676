package domain

const (
	ConcernKindSymptom = "symptom"
	ConcernKindGoal    = "goal"
)

// Concern is a selectable symptom or goal. The concern ID doubles as the
// property key it scores against on catalog items.
type Concern struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Kind     string `json:"kind"`
	Category string `json:"category"`
}
