package recommend

import (
	"errors"
	"strings"

	"aromaSpa/domain"
)

var ErrNoItemsToCombine = errors.New("at least one item is required")

// CombineItems synthesizes a blend from the given items. Every property key
// present on any input is averaged over the full item count, so a key missing
// from an item pulls the blend toward 0 for that property. Price is the sum
// of the inputs; scent is the comma-joined union in input order.
func CombineItems(items []domain.Item) (domain.Item, error) {
	if len(items) == 0 {
		return domain.Item{}, ErrNoItemsToCombine
	}

	properties := make(map[string]float64)
	for _, item := range items {
		for key, value := range item.Properties {
			properties[key] += value
		}
	}
	count := float64(len(items))
	for key := range properties {
		properties[key] /= count
	}

	var (
		ids    = make([]string, 0, len(items))
		names  = make([]string, 0, len(items))
		scents = make([]string, 0, len(items))
		seen   = make(map[string]bool, len(items))
		price  float64
	)
	for _, item := range items {
		ids = append(ids, item.ID)
		names = append(names, item.Name)
		price += item.Price
		if item.Scent != "" && !seen[item.Scent] {
			seen[item.Scent] = true
			scents = append(scents, item.Scent)
		}
	}

	return domain.Item{
		ID:          strings.Join(ids, "+"),
		Name:        strings.Join(names, " + "),
		Description: "Custom blend of " + strings.Join(names, ", "),
		Properties:  properties,
		Scent:       strings.Join(scents, ", "),
		Price:       price,
	}, nil
}
