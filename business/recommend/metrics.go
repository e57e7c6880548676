package recommend

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	FeedbackEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_feedback_events_total",
			Help: "Count of rating feedback events by item and direction.",
		},
		[]string{"item_id", "direction"},
	)
)

func init() {
	prometheus.MustRegister(FeedbackEventsTotal)
}
