// Package metrics exports title index figures to Prometheus.
package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/custodia-labs/docsuggest/internal/core/domain"
	"github.com/custodia-labs/docsuggest/internal/core/ports/driven"
)

// Ensure Prometheus implements the interface.
var _ driven.IndexMetrics = (*Prometheus)(nil)

const namespace = "docsuggest"

// Query outcomes.
const (
	OutcomeHit           = "hit"
	OutcomeEmpty         = "empty"
	OutcomeOwnerNotFound = "owner_not_found"
	OutcomeError         = "error"
)

// Prometheus records index metrics on its own registry.
type Prometheus struct {
	registry *prometheus.Registry

	builds        *prometheus.CounterVec
	buildFailures *prometheus.CounterVec
	buildDuration prometheus.Histogram
	generation    prometheus.Gauge
	owners        prometheus.Gauge
	documents     prometheus.Gauge
	nodes         prometheus.Gauge
	overwritten   prometheus.Gauge

	queries       *prometheus.CounterVec
	queryDuration prometheus.Histogram
	queryResults  prometheus.Histogram
}

// New creates the collectors and registers them, together with the Go
// runtime and process collectors, on a fresh registry.
func New() (*Prometheus, error) {
	p := &Prometheus{
		registry: prometheus.NewRegistry(),
		builds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "builds_total",
			Help:      "Completed index builds by trigger.",
		}, []string{"reason"}),
		buildFailures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "build_failures_total",
			Help:      "Index builds that could not load a snapshot, by trigger.",
		}, []string{"reason"}),
		buildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "build_duration_seconds",
			Help:      "Time spent building the tries of one generation.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
		}),
		generation: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "generation",
			Help:      "Current index generation.",
		}),
		owners: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "owners",
			Help:      "Owners in the current generation.",
		}),
		documents: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "documents",
			Help:      "Retrievable documents in the current generation.",
		}),
		nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "nodes",
			Help:      "Trie nodes in the current generation.",
		}),
		overwritten: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "index",
			Name:      "overwritten",
			Help:      "Documents hidden by a later document with the same title.",
		}),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "suggest",
			Name:      "queries_total",
			Help:      "Suggestion queries by outcome.",
		}, []string{"outcome"}),
		queryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "suggest",
			Name:      "duration_seconds",
			Help:      "Time spent answering one suggestion query.",
			Buckets:   prometheus.ExponentialBuckets(0.000001, 4, 10),
		}),
		queryResults: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "suggest",
			Name:      "results",
			Help:      "Documents returned per suggestion query.",
			Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 500},
		}),
	}

	for _, c := range []prometheus.Collector{
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		p.builds, p.buildFailures, p.buildDuration,
		p.generation, p.owners, p.documents, p.nodes, p.overwritten,
		p.queries, p.queryDuration, p.queryResults,
	} {
		if err := p.registry.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// Registry returns the registry the collectors live on.
func (p *Prometheus) Registry() *prometheus.Registry {
	return p.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (p *Prometheus) Handler() http.Handler {
	return promhttp.HandlerFor(p.registry, promhttp.HandlerOpts{})
}

// ObserveBuild records a published generation.
func (p *Prometheus) ObserveBuild(reason domain.RebuildReason, stats domain.IndexStats) {
	p.builds.WithLabelValues(string(reason)).Inc()
	p.buildDuration.Observe(stats.Duration.Seconds())
	p.generation.Set(float64(stats.Generation))
	p.owners.Set(float64(stats.Owners))
	p.documents.Set(float64(stats.Documents))
	p.nodes.Set(float64(stats.Nodes))
	p.overwritten.Set(float64(stats.Overwritten))
}

// ObserveBuildFailure records a build that kept the previous generation.
func (p *Prometheus) ObserveBuildFailure(reason domain.RebuildReason) {
	p.buildFailures.WithLabelValues(string(reason)).Inc()
}

// ObserveQuery records one suggestion query.
func (p *Prometheus) ObserveQuery(results int, elapsed time.Duration, err error) {
	p.queryDuration.Observe(elapsed.Seconds())

	switch {
	case errors.Is(err, domain.ErrOwnerNotFound):
		p.queries.WithLabelValues(OutcomeOwnerNotFound).Inc()
		return
	case err != nil:
		p.queries.WithLabelValues(OutcomeError).Inc()
		return
	case results == 0:
		p.queries.WithLabelValues(OutcomeEmpty).Inc()
	default:
		p.queries.WithLabelValues(OutcomeHit).Inc()
	}
	p.queryResults.Observe(float64(results))
}
