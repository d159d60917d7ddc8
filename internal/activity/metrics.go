package activity

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/briangreenhill/ftracker/internal/training"
)

var (
	computedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "trainings",
		Name:      "computed_total",
		Help:      "Number of training packages turned into a summary.",
	}, []string{"code"})

	rejectedCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "ftracker",
		Subsystem: "trainings",
		Name:      "rejected_total",
		Help:      "Number of training packages rejected, grouped by reason.",
	}, []string{"reason"})
)

func init() {
	prometheus.MustRegister(computedCounter, rejectedCounter)
}

func recordComputed(code string) {
	computedCounter.WithLabelValues(code).Inc()
}

func recordRejected(err error) {
	rejectedCounter.WithLabelValues(rejectReason(err)).Inc()
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, training.ErrInvalidActivity):
		return "invalid_activity"
	case errors.Is(err, training.ErrArity):
		return "arity"
	case errors.Is(err, training.ErrDivision):
		return "division"
	case errors.Is(err, training.ErrNonFinite):
		return "non_finite"
	}
	return "other"
}
