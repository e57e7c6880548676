package recommend

import "time"

const (
	Morning   = "morning"
	Afternoon = "afternoon"
	Evening   = "evening"

	Spring = "spring"
	Summer = "summer"
	Autumn = "autumn"
	Winter = "winter"
)

// RequestContext carries the time-of-day and season buckets a ranking request
// runs under. Callers build it from the wall clock via ContextFromTime or set
// the fields directly for deterministic tests.
type RequestContext struct {
	TimeOfDay string
	Season    string
}

func ContextFromTime(t time.Time) RequestContext {
	return RequestContext{
		TimeOfDay: timeOfDayBucket(t.Hour()),
		Season:    seasonBucket(int(t.Month())),
	}
}

func timeOfDayBucket(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return Morning
	case hour >= 12 && hour < 18:
		return Afternoon
	default:
		return Evening
	}
}

func seasonBucket(month int) string {
	switch {
	case month >= 2 && month < 5:
		return Spring
	case month >= 5 && month < 8:
		return Summer
	case month >= 8 && month < 11:
		return Autumn
	default:
		return Winter
	}
}

// ValidTimeOfDay reports whether label is a recognized time-of-day bucket.
func ValidTimeOfDay(label string) bool {
	switch label {
	case Morning, Afternoon, Evening:
		return true
	}
	return false
}

// ValidSeason reports whether label is a recognized season bucket.
func ValidSeason(label string) bool {
	switch label {
	case Spring, Summer, Autumn, Winter:
		return true
	}
	return false
}
