package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ImportParses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventschedule_import_parses_total",
		Help: "Total number of parse requests sent to the event parser.",
	})

	ImportDuplicates = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventschedule_import_duplicates_total",
		Help: "Total number of parsed items matched to an existing event.",
	})

	CalendarRenderDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "eventschedule_calendar_render_duration_ms",
		Help:    "Month view assembly latency in milliseconds.",
		Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500},
	})

	CalendarCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventschedule_calendar_cache_hits_total",
		Help: "Total number of month payloads served from cache.",
	})

	CalendarCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventschedule_calendar_cache_misses_total",
		Help: "Total number of month payloads rendered on a cache miss.",
	})

	DataCheckIssues = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "eventschedule_datacheck_issues",
		Help: "Issues found by the last data check run, labelled by kind.",
	}, []string{"kind"})
)
