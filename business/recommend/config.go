package recommend

const (
	defaultContentWeight       = 0.7
	defaultCollaborativeWeight = 0.3
	defaultScentBoost          = 1.2
	defaultContextBoost        = 1.2
	defaultContextThreshold    = 0.7
	defaultPropertyWeight      = 1.0
	defaultItemCount           = 5
)

// Config tunes the blending and boost factors of the ranker. Zero values fall
// back to the documented defaults, so an empty Config is usable.
type Config struct {
	// blend weights for content vs collaborative score
	ContentWeight       float64
	CollaborativeWeight float64

	// multiplier for items matching a favorite scent
	ScentBoost float64

	// multiplier and property threshold for time-of-day / season matches
	ContextBoost     float64
	ContextThreshold float64

	// weight assumed for properties the user has not adjusted
	DefaultPropertyWeight float64

	// number of items returned when the caller does not ask for a count
	DefaultItemCount int

	// StrictSelection makes Recommend reject an empty concern selection
	// instead of ranking on collaborative score alone.
	StrictSelection bool
}

func DefaultConfig() Config {
	return Config{
		ContentWeight:         defaultContentWeight,
		CollaborativeWeight:   defaultCollaborativeWeight,
		ScentBoost:            defaultScentBoost,
		ContextBoost:          defaultContextBoost,
		ContextThreshold:      defaultContextThreshold,
		DefaultPropertyWeight: defaultPropertyWeight,
		DefaultItemCount:      defaultItemCount,
	}
}

// withDefaults fills unset fields so a partially built Config behaves sanely.
func (c Config) withDefaults() Config {
	if c.ContentWeight == 0 && c.CollaborativeWeight == 0 {
		c.ContentWeight = defaultContentWeight
		c.CollaborativeWeight = defaultCollaborativeWeight
	}
	if c.ScentBoost == 0 {
		c.ScentBoost = defaultScentBoost
	}
	if c.ContextBoost == 0 {
		c.ContextBoost = defaultContextBoost
	}
	if c.ContextThreshold == 0 {
		c.ContextThreshold = defaultContextThreshold
	}
	if c.DefaultPropertyWeight == 0 {
		c.DefaultPropertyWeight = defaultPropertyWeight
	}
	if c.DefaultItemCount <= 0 {
		c.DefaultItemCount = defaultItemCount
	}
	return c
}
