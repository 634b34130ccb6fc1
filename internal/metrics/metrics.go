package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_orders_created_total",
		Help: "Total number of orders successfully created.",
	})

	ReturnsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "backoffice_returns_created_total",
		Help: "Total number of return requests successfully created.",
	})

	TransitionsAppliedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_transitions_applied_total",
		Help: "Total number of accepted state transitions.",
	},
		[]string{"entity", "to_status"},
	)

	JobsPublishedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_jobs_published_total",
		Help: "Total number of side-effect jobs written to the ledger.",
	},
		[]string{"kind"},
	)

	JobsConsumedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_jobs_consumed_total",
		Help: "Total number of job messages handled, by terminal outcome.",
	},
		[]string{"kind", "outcome"},
	)

	OperationErrorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "backoffice_operation_errors_total",
		Help: "Total number of errors encountered during specific operations.",
	},
		[]string{"operation"},
	)

	OrderCacheItems = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "backoffice_order_cache_items",
		Help: "Current number of items in the order cache.",
	})
)
