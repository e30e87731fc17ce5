// Package metrics registers the prometheus collectors the dRAID core
// exposes: child I/O counts, stripe build latency, and the gauges higher
// layers scrape to watch degradation and spare activity.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	ChildIOTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "draid",
			Name:      "child_io_total",
			Help:      "Number of child I/Os dispatched by the top-level dRAID vdev.",
		},
		[]string{"op", "result"},
	)

	StripeBuildSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "draid",
			Name:      "stripe_build_seconds",
			Help:      "Time spent laying out a RowMap for one I/O.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"mode"},
	)

	DegradedGroups = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "draid",
			Name:      "degraded_groups",
			Help:      "Number of groups currently missing at least one column.",
		},
	)

	ActiveSpares = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "draid",
			Name:      "active_spares",
			Help:      "Number of distributed spares currently servicing I/O.",
		},
	)
)

func init() {
	prometheus.MustRegister(ChildIOTotal, StripeBuildSeconds, DegradedGroups, ActiveSpares)
}
