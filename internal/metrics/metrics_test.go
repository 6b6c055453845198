package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionCounters(t *testing.T) {
	m := New()

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.sessionsTotal))
}

func TestGameOverRecordsScore(t *testing.T) {
	m := New()

	m.GameOver(12)
	m.GameOver(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.gamesOver))

	families, err := m.registry.Gather()
	require.NoError(t, err)
	found := false
	for _, mf := range families {
		if mf.GetName() != "skyraid_final_score" {
			continue
		}
		found = true
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())
		assert.Equal(t, 15.0, h.GetSampleSum())
	}
	assert.True(t, found, "final score histogram not gathered")
}

func TestNilMetricsIsSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded()
		m.GameOver(5)
		m.ObserveFrame(time.Millisecond)
		m.ObserveFrameBytes(512)
	})
}

func TestHandlerExposesMetrics(t *testing.T) {
	m := New()
	m.ObserveFrame(2 * time.Millisecond)
	m.ObserveFrameBytes(4096)
	m.SessionStarted()

	srv := httptest.NewServer(m.Handler())
	defer srv.Close()

	resp, err := srv.Client().Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "skyraid_sessions_active 1")
	assert.Contains(t, string(body), "skyraid_frame_duration_seconds_count 1")
	assert.Contains(t, string(body), "skyraid_frame_bytes_sum 4096")
	assert.Contains(t, string(body), "go_goroutines")
}
