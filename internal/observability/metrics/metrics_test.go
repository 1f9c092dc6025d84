package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLeadMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewLeadMetrics(reg)

	m.ObserveTurn("follow_up")
	m.ObserveTurn("follow_up")
	m.ObserveTurn("submitted")
	m.ObserveExtraction("ok")
	m.ObserveSubmission(true)
	m.ObserveSubmission(false)
	m.ObserveLLMLatency("extract", 0.25)
	m.SetActiveSessions(3)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.turnsTotal.WithLabelValues("follow_up")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("created")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("failed")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.activeSessions))
}

func TestLeadMetricsNilSafe(t *testing.T) {
	var m *LeadMetrics
	m.ObserveTurn("empty")
	m.ObserveExtraction("error")
	m.ObserveSubmission(false)
	m.ObserveLLMLatency("ask", 0.1)
	m.SetActiveSessions(1)
}
