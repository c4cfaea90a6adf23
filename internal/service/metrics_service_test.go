package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceCounters(t *testing.T) {
	m := NewMetricsService()

	m.ObserveView("classes", "ready")
	m.ObserveView("classes", "not_found")
	m.ObserveFacultyVariant("student")
	m.ObserveExport("subjects", "csv")
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.ObserveDBQuery("class_details", 2*time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.viewRenders.WithLabelValues("classes", "ready")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.facultyVariants.WithLabelValues("student")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.exports.WithLabelValues("subjects", "csv")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.cacheLookups.WithLabelValues("hit")))

	snapshot := m.Snapshot()
	assert.Equal(t, uint64(2), snapshot.ViewsRendered)
	assert.InDelta(t, 0.5, snapshot.CacheHitRatio, 0.0001)
	assert.Equal(t, uint64(1), snapshot.DBQueryCount)
	assert.Equal(t, map[string]int{"student": 1}, snapshot.FacultyVariants)
}

func TestMetricsServiceHandlerExposesViews(t *testing.T) {
	m := NewMetricsService()
	m.ObserveView("faculty", "ready")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `view_renders_total{resource="faculty",state="ready"} 1`))
}

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	assert.NotPanics(t, func() {
		m.ObserveView("classes", "ready")
		m.ObserveFacultyVariant("bare")
		m.ObserveExport("subjects", "pdf")
	})
	assert.Equal(t, MetricsSnapshot{}, m.Snapshot())
}
