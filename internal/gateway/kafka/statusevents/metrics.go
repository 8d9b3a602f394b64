package statusevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	EventsPublishedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_events_published_total",
			Help: "Total number of donation status events published to Kafka",
		},
		[]string{"topic", "to_status"},
	)

	EventsFailedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_events_failed_total",
			Help: "Total number of donation status events that failed to publish",
		},
		[]string{"topic", "reason"},
	)
)
