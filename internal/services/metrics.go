package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	recommendationRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "flickpick_recommendation_requests_total",
		Help: "Recommendation requests served, by strategy.",
	}, []string{"strategy"})

	strategyDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "flickpick_strategy_duration_seconds",
		Help:    "Latency of individual recommendation strategies.",
		Buckets: prometheus.DefBuckets,
	}, []string{"strategy"})
)
