package library

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/project/dbcentral/internal/log"
)

var operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dbcentral_library_operation_duration_ms",
	Help:    "Duration of library facade operations in ms",
	Buckets: prometheus.DefBuckets,
}, []string{"action"})

func init() {
	prometheus.MustRegister(operationDuration)
}

func observe(action log.Action, start time.Time) {
	operationDuration.WithLabelValues(action).Observe(float64(time.Since(start).Milliseconds()))
}
