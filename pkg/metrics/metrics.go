// Package metrics encapsulates Prometheus instrumentation for engine runs.
// Every method tolerates a nil receiver so callers can wire metrics
// optionally without guarding each call site.
package metrics

import (
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the engine collectors and lightweight aggregate counters for
// snapshot consumers.
type Metrics struct {
	registry      *prometheus.Registry
	handler       http.Handler
	runDuration   *prometheus.HistogramVec
	runsTotal     *prometheus.CounterVec
	nodesTotal    *prometheus.CounterVec
	prunedTotal   *prometheus.CounterVec
	timeoutsTotal *prometheus.CounterVec
	schedules     *prometheus.HistogramVec
	cacheLatency  prometheus.Observer
	cacheWrite    prometheus.Observer
	cacheHitRatio prometheus.Gauge
	cacheHits     prometheus.Counter
	cacheMisses   prometheus.Counter

	cacheHitCount    uint64
	cacheMissCount   uint64
	runCount         uint64
	runDurationTotal uint64
}

// New registers the engine collectors under the given namespace.
func New(namespace string) *Metrics {
	if namespace == "" {
		namespace = "scheduler"
	}
	registry := prometheus.NewRegistry()

	runDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "run_duration_seconds",
		Help:      "Duration of engine runs in seconds",
		Buckets:   prometheus.DefBuckets,
	}, []string{"algorithm"})

	runsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "runs_total",
		Help:      "Total engine runs by algorithm and status",
	}, []string{"algorithm", "status"})

	nodesTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "nodes_explored_total",
		Help:      "Total search nodes explored",
	}, []string{"algorithm"})

	prunedTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "branches_pruned_total",
		Help:      "Total search branches pruned",
	}, []string{"algorithm"})

	timeoutsTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "run_timeouts_total",
		Help:      "Runs truncated by the cooperative deadline",
	}, []string{"algorithm"})

	schedules := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "schedules_returned",
		Help:      "Schedules returned per run",
		Buckets:   []float64{0, 1, 2, 5, 10, 20, 50},
	}, []string{"algorithm"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_latency_seconds",
		Help:      "Latency for cache lookups",
		Buckets:   prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "cache_write_seconds",
		Help:      "Latency for cache set operations",
		Buckets:   prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "cache_hit_ratio",
		Help:      "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_hits_total",
		Help:      "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "cache_misses_total",
		Help:      "Total cache misses",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "goroutines_total",
		Help:      "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(runDuration, runsTotal, nodesTotal, prunedTotal,
		timeoutsTotal, schedules, cacheLatency, cacheWrite, cacheHitRatio,
		cacheHits, cacheMisses, goroutines)

	return &Metrics{
		registry:      registry,
		handler:       promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		runDuration:   runDuration,
		runsTotal:     runsTotal,
		nodesTotal:    nodesTotal,
		prunedTotal:   prunedTotal,
		timeoutsTotal: timeoutsTotal,
		schedules:     schedules,
		cacheLatency:  cacheLatency,
		cacheWrite:    cacheWrite,
		cacheHitRatio: cacheHitRatio,
		cacheHits:     cacheHits,
		cacheMisses:   cacheMisses,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveRun records one engine run.
func (m *Metrics) ObserveRun(algorithm, status string, schedules, nodes, pruned int, timedOut bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.runDuration.WithLabelValues(algorithm).Observe(duration.Seconds())
	m.runsTotal.WithLabelValues(algorithm, status).Inc()
	m.nodesTotal.WithLabelValues(algorithm).Add(float64(nodes))
	m.prunedTotal.WithLabelValues(algorithm).Add(float64(pruned))
	m.schedules.WithLabelValues(algorithm).Observe(float64(schedules))
	if timedOut {
		m.timeoutsTotal.WithLabelValues(algorithm).Inc()
	}
	atomic.AddUint64(&m.runCount, 1)
	atomic.AddUint64(&m.runDurationTotal, uint64(duration.Nanoseconds()))
}

// RecordCacheOperation records a cache lookup and updates the hit ratio.
func (m *Metrics) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	if m.cacheLatency != nil {
		m.cacheLatency.Observe(duration.Seconds())
	}
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	total := hits + misses
	if total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration of cache set operations.
func (m *Metrics) ObserveCacheWrite(duration time.Duration) {
	if m == nil || m.cacheWrite == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// Snapshot is an aggregate view for status surfaces.
type Snapshot struct {
	RunsTotal            uint64    `json:"runs_total"`
	AverageRunDurationMs float64   `json:"avg_run_duration_ms"`
	CacheHitRatio        float64   `json:"cache_hit_ratio"`
	CacheHits            uint64    `json:"cache_hits"`
	CacheMisses          uint64    `json:"cache_misses"`
	Goroutines           int       `json:"goroutines"`
	GeneratedAt          time.Time `json:"generated_at"`
}

// Snapshot returns aggregated run and cache statistics.
func (m *Metrics) Snapshot() Snapshot {
	if m == nil {
		return Snapshot{}
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	runs := atomic.LoadUint64(&m.runCount)
	durations := atomic.LoadUint64(&m.runDurationTotal)

	var ratio float64
	if total := hits + misses; total > 0 {
		ratio = float64(hits) / float64(total)
	}
	var avgMs float64
	if runs > 0 {
		avgMs = float64(durations) / float64(runs) / float64(time.Millisecond)
	}

	return Snapshot{
		RunsTotal:            runs,
		AverageRunDurationMs: avgMs,
		CacheHitRatio:        ratio,
		CacheHits:            hits,
		CacheMisses:          misses,
		Goroutines:           runtime.NumGoroutine(),
		GeneratedAt:          time.Now().UTC(),
	}
}
