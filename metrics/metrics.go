// Package metrics exposes calendar runtime statistics to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/reugn/go-calendar/calendar"
)

const namespace = "calendar"

// OffsetCacheCollector reports the zone offset cache counters at scrape time.
type OffsetCacheCollector struct {
	hits    *prometheus.Desc
	misses  *prometheus.Desc
	entries *prometheus.Desc
	stats   func() calendar.OffsetCacheStats
}

var _ prometheus.Collector = (*OffsetCacheCollector)(nil)

// NewOffsetCacheCollector returns a new OffsetCacheCollector reading
// calendar.CurrentOffsetCacheStats.
func NewOffsetCacheCollector() *OffsetCacheCollector {
	return &OffsetCacheCollector{
		hits: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "offset_cache", "hits_total"),
			"Total number of zone offset lookups served from the cache",
			nil, nil,
		),
		misses: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "offset_cache", "misses_total"),
			"Total number of zone offset lookups that created a new offset",
			nil, nil,
		),
		entries: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "offset_cache", "entries"),
			"Current number of cached zone offsets",
			nil, nil,
		),
		stats: calendar.CurrentOffsetCacheStats,
	}
}

// Describe implements the prometheus.Collector interface.
func (c *OffsetCacheCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.hits
	ch <- c.misses
	ch <- c.entries
}

// Collect implements the prometheus.Collector interface.
func (c *OffsetCacheCollector) Collect(ch chan<- prometheus.Metric) {
	stats := c.stats()
	ch <- prometheus.MustNewConstMetric(c.hits, prometheus.CounterValue, float64(stats.Hits))
	ch <- prometheus.MustNewConstMetric(c.misses, prometheus.CounterValue, float64(stats.Misses))
	ch <- prometheus.MustNewConstMetric(c.entries, prometheus.GaugeValue, float64(stats.Entries))
}

// Metrics holds the counters of the command line tool.
type Metrics struct {
	ParseFailures    *prometheus.CounterVec
	Occurrences      *prometheus.CounterVec
	TimelineTriggers prometheus.Gauge
}

// New registers the offset cache collector and the tool counters with reg.
func New(reg prometheus.Registerer) *Metrics {
	reg.MustRegister(NewOffsetCacheCollector())
	factory := promauto.With(reg)
	return &Metrics{
		ParseFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parse_failures_total",
			Help:      "Total number of texts that failed to parse, by kind",
		}, []string{"kind"}),
		Occurrences: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "occurrences_total",
			Help:      "Total number of trigger occurrences produced, by trigger key",
		}, []string{"key"}),
		TimelineTriggers: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "timeline_triggers",
			Help:      "Current number of triggers registered with the timeline",
		}),
	}
}

// IncrementParseFailures counts a text of the kind that failed to parse.
func (m *Metrics) IncrementParseFailures(kind string) {
	m.ParseFailures.WithLabelValues(kind).Inc()
}

// IncrementOccurrences counts an occurrence produced by the trigger of the key.
func (m *Metrics) IncrementOccurrences(key string) {
	m.Occurrences.WithLabelValues(key).Inc()
}

// SetTimelineTriggers records the number of triggers registered with the timeline.
func (m *Metrics) SetTimelineTriggers(count int) {
	m.TimelineTriggers.Set(float64(count))
}
