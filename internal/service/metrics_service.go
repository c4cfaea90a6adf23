package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsNamespace = "sma_views"

// MetricsSnapshot is a point-in-time summary of the process counters, served by /health.
type MetricsSnapshot struct {
	CacheHitRatio            float64        `json:"cacheHitRatio"`
	CacheHits                uint64         `json:"cacheHits"`
	CacheMisses              uint64         `json:"cacheMisses"`
	RequestsTotal            uint64         `json:"requestsTotal"`
	AverageRequestDurationMs float64        `json:"averageRequestDurationMs"`
	DBQueryCount             uint64         `json:"dbQueryCount"`
	AverageDBQueryDurationMs float64        `json:"averageDbQueryDurationMs"`
	ViewsRendered            uint64         `json:"viewsRendered"`
	FacultyVariants          map[string]int `json:"facultyVariants"`
	Goroutines               int            `json:"goroutines"`
	GeneratedAt              time.Time      `json:"generatedAt"`
}

// timed accumulates a count and total duration for snapshot averages.
type timed struct {
	count atomic.Uint64
	nanos atomic.Uint64
}

func (t *timed) add(d time.Duration) {
	t.count.Add(1)
	t.nanos.Add(uint64(d.Nanoseconds()))
}

func (t *timed) averageMs() float64 {
	n := t.count.Load()
	if n == 0 {
		return 0
	}
	return float64(t.nanos.Load()) / float64(n) / float64(time.Millisecond)
}

// MetricsService owns the Prometheus registry for the view service.
type MetricsService struct {
	handler http.Handler

	requestDuration *prometheus.HistogramVec
	cacheLookups    *prometheus.CounterVec
	cacheLatency    *prometheus.HistogramVec
	dbQueryDuration *prometheus.HistogramVec
	viewRenders     *prometheus.CounterVec
	facultyVariants *prometheus.CounterVec
	exports         *prometheus.CounterVec

	requests  timed
	dbQueries timed
	hits      atomic.Uint64
	misses    atomic.Uint64
	views     atomic.Uint64

	variantMu     sync.Mutex
	variantCounts map[string]int
}

// NewMetricsService registers the view collectors plus the Go runtime collector on a private registry.
func NewMetricsService() *MetricsService {
	m := &MetricsService{
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route and status.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		cacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cache_lookups_total",
			Help:      "Page cache lookups by result.",
		}, []string{"result"}),
		cacheLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "cache_operation_seconds",
			Help:      "Page cache latency by operation.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25},
		}, []string{"op"}),
		dbQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "db_query_duration_seconds",
			Help:      "Aggregate query latency by query label.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"query"}),
		viewRenders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "view_renders_total",
			Help:      "Rendered detail views by resource and page state.",
		}, []string{"resource", "state"}),
		facultyVariants: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "faculty_profile_variants_total",
			Help:      "Faculty profiles rendered per discriminated variant.",
		}, []string{"variant"}),
		exports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "view_exports_total",
			Help:      "Related table exports by resource and format.",
		}, []string{"resource", "format"}),
		variantCounts: make(map[string]int),
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		m.requestDuration,
		m.cacheLookups,
		m.cacheLatency,
		m.dbQueryDuration,
		m.viewRenders,
		m.facultyVariants,
		m.exports,
	)
	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{Registry: registry})
	return m
}

// Handler exposes the Prometheus scrape endpoint.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// ObserveHTTPRequest records one served request.
func (m *MetricsService) ObserveHTTPRequest(method, route string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(duration.Seconds())
	m.requests.add(duration)
}

// RecordCacheOperation records a page cache lookup.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
		m.hits.Add(1)
	} else {
		m.misses.Add(1)
	}
	m.cacheLookups.WithLabelValues(result).Inc()
	m.cacheLatency.WithLabelValues("get").Observe(duration.Seconds())
}

// ObserveCacheWrite records a page cache write.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.WithLabelValues("set").Observe(duration.Seconds())
}

// ObserveDBQuery records an aggregate query; it satisfies repository.QueryObserver.
func (m *MetricsService) ObserveDBQuery(label string, duration time.Duration) {
	if m == nil {
		return
	}
	m.dbQueryDuration.WithLabelValues(label).Observe(duration.Seconds())
	m.dbQueries.add(duration)
}

// ObserveView counts a rendered page by resource and final state.
func (m *MetricsService) ObserveView(resource, state string) {
	if m == nil {
		return
	}
	m.viewRenders.WithLabelValues(resource, state).Inc()
	m.views.Add(1)
}

// ObserveFacultyVariant counts which profile shape a faculty payload resolved to.
func (m *MetricsService) ObserveFacultyVariant(variant string) {
	if m == nil {
		return
	}
	m.facultyVariants.WithLabelValues(variant).Inc()
	m.variantMu.Lock()
	m.variantCounts[variant]++
	m.variantMu.Unlock()
}

// ObserveExport counts a related table export.
func (m *MetricsService) ObserveExport(resource, format string) {
	if m == nil {
		return
	}
	m.exports.WithLabelValues(resource, format).Inc()
}

// Snapshot summarises the counters for the health endpoint.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	hits, misses := m.hits.Load(), m.misses.Load()
	var ratio float64
	if lookups := hits + misses; lookups > 0 {
		ratio = float64(hits) / float64(lookups)
	}

	m.variantMu.Lock()
	variants := make(map[string]int, len(m.variantCounts))
	for k, v := range m.variantCounts {
		variants[k] = v
	}
	m.variantMu.Unlock()

	return MetricsSnapshot{
		CacheHitRatio:            ratio,
		CacheHits:                hits,
		CacheMisses:              misses,
		RequestsTotal:            m.requests.count.Load(),
		AverageRequestDurationMs: m.requests.averageMs(),
		DBQueryCount:             m.dbQueries.count.Load(),
		AverageDBQueryDurationMs: m.dbQueries.averageMs(),
		ViewsRendered:            m.views.Load(),
		FacultyVariants:          variants,
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
