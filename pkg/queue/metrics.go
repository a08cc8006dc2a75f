package queue

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recalculations counts real Lq/P0 recomputations by model and outcome
	Recalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "queue_recalculations_total",
			Help: "Total number of queue metric recalculations",
		},
		[]string{"model", "outcome"}, // outcome: "finite", "infinite", "undefined"
	)
)
