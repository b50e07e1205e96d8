package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics

	m.ObserveRun("dfs", "ok", 2, 10, 3, false, 20*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.ObserveCacheWrite(time.Millisecond)

	snap := m.Snapshot()
	assert.Zero(t, snap.RunsTotal)
	assert.Zero(t, snap.CacheHits)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}

func TestMetricsSnapshotAggregates(t *testing.T) {
	m := New("")

	m.ObserveRun("dfs", "ok", 2, 10, 3, false, 20*time.Millisecond)
	m.ObserveRun("dfs", "ok", 1, 5, 2, true, 40*time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)
	m.RecordCacheOperation(false, time.Millisecond)

	snap := m.Snapshot()
	assert.Equal(t, uint64(2), snap.RunsTotal)
	assert.InDelta(t, 30.0, snap.AverageRunDurationMs, 1e-9)
	assert.Equal(t, uint64(1), snap.CacheHits)
	assert.Equal(t, uint64(2), snap.CacheMisses)
	assert.InDelta(t, 1.0/3.0, snap.CacheHitRatio, 1e-9)
	assert.Positive(t, snap.Goroutines)
	assert.False(t, snap.GeneratedAt.IsZero())
}

func TestMetricsHandlerExposesCollectors(t *testing.T) {
	m := New("timetable")
	m.ObserveRun("dfs", "ok", 2, 10, 3, false, 20*time.Millisecond)

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	body := recorder.Body.String()
	assert.Contains(t, body, "timetable_runs_total")
	assert.Contains(t, body, "timetable_goroutines_total")
	assert.Contains(t, body, `algorithm="dfs"`)
}

func TestMetricsDefaultNamespace(t *testing.T) {
	m := New("")

	recorder := httptest.NewRecorder()
	m.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "scheduler_goroutines_total")
}
