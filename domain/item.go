package domain

// Item is a single catalog entry (an essential oil or a synthesized blend).
// Properties is sparse: a key that is absent scores as 0. All property values
// are normalized to [0, 1] in the catalog feed.
type Item struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Properties  map[string]float64 `json:"properties"`
	Scent       string             `json:"scent"`
	Price       float64            `json:"price"`
}

// Property returns the item's value for a property key, 0 when absent.
func (i Item) Property(key string) float64 {
	return i.Properties[key]
}
