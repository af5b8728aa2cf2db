package repository

import (
	"khe/metrics"
	"time"
)

// observe records the duration of a named query; use as defer observe("name")().
func observe(query string) func() {
	start := time.Now()
	return func() {
		metrics.QueryDuration.WithLabelValues(query).Observe(time.Since(start).Seconds())
	}
}
