package recommend

import (
	"testing"
	"time"
)

func TestTimeOfDayBuckets(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, Evening},
		{4, Evening},
		{5, Morning},
		{11, Morning},
		{12, Afternoon},
		{17, Afternoon},
		{18, Evening},
		{23, Evening},
	}

	for _, tt := range tests {
		if got := timeOfDayBucket(tt.hour); got != tt.want {
			t.Errorf("timeOfDayBucket(%d) = %s, want %s", tt.hour, got, tt.want)
		}
	}
}

func TestSeasonBuckets(t *testing.T) {
	tests := []struct {
		month int
		want  string
	}{
		{1, Winter},
		{2, Spring},
		{4, Spring},
		{5, Summer},
		{7, Summer},
		{8, Autumn},
		{10, Autumn},
		{11, Winter},
		{12, Winter},
	}

	for _, tt := range tests {
		if got := seasonBucket(tt.month); got != tt.want {
			t.Errorf("seasonBucket(%d) = %s, want %s", tt.month, got, tt.want)
		}
	}
}

func TestContextFromTime(t *testing.T) {
	at := time.Date(2026, time.January, 10, 20, 30, 0, 0, time.UTC)
	rctx := ContextFromTime(at)

	if rctx.TimeOfDay != Evening {
		t.Errorf("time of day = %s, want evening", rctx.TimeOfDay)
	}
	if rctx.Season != Winter {
		t.Errorf("season = %s, want winter", rctx.Season)
	}
}
