// Package metrics exposes transform cache counters and transform durations to Prometheus.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"go.trai.ch/domx/internal/core/domain"
	"go.trai.ch/domx/internal/core/ports"
)

const namespace = "domx"

// StatsSource provides cache counter snapshots.
type StatsSource interface {
	Stats() domain.CacheStats
}

var (
	_ prometheus.Collector  = (*Collector)(nil)
	_ ports.DiagnosticsSink = (*Collector)(nil)
)

// Collector reports the counters of a StatsSource on every scrape and observes the duration
// of every transformed unit it receives as a diagnostics sink.
type Collector struct {
	source StatsSource

	loads           *prometheus.Desc
	programBuilds   *prometheus.Desc
	transformerHits *prometheus.Desc
	programHits     *prometheus.Desc
	records         *prometheus.Desc
	programs        *prometheus.Desc

	durations *prometheus.HistogramVec
}

// NewCollector creates a Collector. source may be nil until SetSource is called.
func NewCollector(source StatsSource) *Collector {
	desc := func(name, help string) *prometheus.Desc {
		return prometheus.NewDesc(prometheus.BuildFQName(namespace, "", name), help, nil, nil)
	}

	return &Collector{
		source:          source,
		loads:           desc("transformer_loads_total", "Number of transformer loads."),
		programBuilds:   desc("program_builds_total", "Number of program constructions."),
		transformerHits: desc("transformer_cache_hits_total", "Transforms served by a cached transformer."),
		programHits:     desc("program_cache_hits_total", "Transforms served by a cached program."),
		records:         desc("ledger_records", "Identities tracked by the transform ledger."),
		programs:        desc("cached_programs", "Programs currently held by the program cache."),
		durations: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "transform_duration_seconds",
			Help:      "Duration of successful unit transforms.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
		}, []string{"status"}),
	}
}

// SetSource sets the counter source. It must be called before the collector is registered.
func (c *Collector) SetSource(source StatsSource) {
	c.source = source
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.loads
	ch <- c.programBuilds
	ch <- c.transformerHits
	ch <- c.programHits
	ch <- c.records
	ch <- c.programs
	c.durations.Describe(ch)
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	if c.source != nil {
		stats := c.source.Stats()
		ch <- prometheus.MustNewConstMetric(c.loads, prometheus.CounterValue, float64(stats.Loads))
		ch <- prometheus.MustNewConstMetric(c.programBuilds, prometheus.CounterValue, float64(stats.ProgramBuilds))
		ch <- prometheus.MustNewConstMetric(c.transformerHits, prometheus.CounterValue, float64(stats.TransformerHits))
		ch <- prometheus.MustNewConstMetric(c.programHits, prometheus.CounterValue, float64(stats.ProgramHits))
		ch <- prometheus.MustNewConstMetric(c.records, prometheus.GaugeValue, float64(stats.Records))
		ch <- prometheus.MustNewConstMetric(c.programs, prometheus.GaugeValue, float64(stats.Programs))
	}
	c.durations.Collect(ch)
}

// Record observes the duration of a transformed unit.
func (c *Collector) Record(_ context.Context, diagnostic domain.Diagnostic) {
	c.durations.WithLabelValues(diagnostic.Status.String()).Observe(diagnostic.Duration.Seconds())
}
