package recommend

import "aromaSpa/domain"

// ContentScore computes the content-based score for one item against the
// selected concerns: a weighted mean of property relevance, then scent and
// context adjustments. An empty selection scores 0, never a division by zero.
func ContentScore(
	item domain.Item,
	concernIDs []string,
	pref domain.UserPreference,
	rctx RequestContext,
	cfg Config,
) float64 {
	cfg = cfg.withDefaults()

	if len(concernIDs) == 0 {
		return 0
	}

	var weightedRelevance, totalWeight float64
	for _, id := range concernIDs {
		relevance := item.Property(id)
		weight, ok := pref.PropertyWeights[id]
		if !ok {
			weight = cfg.DefaultPropertyWeight
		}
		weightedRelevance += relevance * weight
		totalWeight += weight
	}
	if totalWeight == 0 {
		return 0
	}

	score := weightedRelevance / totalWeight

	if pref.HasFavoriteScent(item.Scent) {
		score *= cfg.ScentBoost
	}
	// allergy veto wins over any boost
	if pref.HasAllergy(item.Scent) {
		return 0
	}

	return score * contextMultiplier(item, rctx, cfg)
}

// SynergyScore is the unweighted mean of the item's relevance over all
// selected concerns. It ignores user weights and context on purpose: it
// rewards items that are strong across the whole selection at once.
func SynergyScore(item domain.Item, concernIDs []string) float64 {
	if len(concernIDs) == 0 {
		return 0
	}

	var sum float64
	for _, id := range concernIDs {
		sum += item.Property(id)
	}
	return sum / float64(len(concernIDs))
}

// contextMultiplier stacks one ContextBoost factor per matching rule.
// Afternoon has no rule.
func contextMultiplier(item domain.Item, rctx RequestContext, cfg Config) float64 {
	multiplier := 1.0
	threshold := cfg.ContextThreshold

	switch rctx.TimeOfDay {
	case Morning:
		if item.Property("energy") > threshold {
			multiplier *= cfg.ContextBoost
		}
	case Evening:
		if item.Property("relaxation") > threshold || item.Property("sleep") > threshold {
			multiplier *= cfg.ContextBoost
		}
	}

	switch rctx.Season {
	case Winter:
		if item.Property("immunity") > threshold {
			multiplier *= cfg.ContextBoost
		}
	case Spring:
		if item.Property("detox") > threshold {
			multiplier *= cfg.ContextBoost
		}
	case Summer:
		if item.Property("cooling") > threshold {
			multiplier *= cfg.ContextBoost
		}
	case Autumn:
		if item.Property("mood") > threshold {
			multiplier *= cfg.ContextBoost
		}
	}

	return multiplier
}
