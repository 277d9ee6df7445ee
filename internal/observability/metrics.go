// Package observability provides logging and metrics.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// StoreLoads counts collection loads from disk by collection name.
	StoreLoads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adminboard_store_loads_total",
		Help: "Total number of collection file loads by collection",
	}, []string{"collection"})

	// StorePersistFailures counts failed collection writes by collection name.
	StorePersistFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adminboard_store_persist_failures_total",
		Help: "Total number of failed collection file writes by collection",
	}, []string{"collection"})

	// StoreInvalidations counts explicit cache invalidations.
	StoreInvalidations = promauto.NewCounter(prometheus.CounterOpts{
		Name: "adminboard_store_invalidations_total",
		Help: "Total number of explicit store cache invalidations",
	})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "adminboard_redis_error_rate_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
