package metrics

import "github.com/prometheus/client_golang/prometheus"

// LeadMetrics exposes counters/histograms for the lead-intake conversation.
type LeadMetrics struct {
	turnsTotal       *prometheus.CounterVec
	extractionsTotal *prometheus.CounterVec
	submissionsTotal *prometheus.CounterVec
	llmLatency       *prometheus.HistogramVec
	activeSessions   prometheus.Gauge
}

func NewLeadMetrics(reg prometheus.Registerer) *LeadMetrics {
	m := &LeadMetrics{
		turnsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lead_intake",
			Subsystem: "chat",
			Name:      "turns_total",
			Help:      "Chat turns handled, by outcome",
		}, []string{"outcome"}),
		extractionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lead_intake",
			Subsystem: "extractor",
			Name:      "extractions_total",
			Help:      "Field extractions, by result",
		}, []string{"result"}),
		submissionsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "lead_intake",
			Subsystem: "lead",
			Name:      "submissions_total",
			Help:      "Downstream lead submissions, by status",
		}, []string{"status"}),
		llmLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "lead_intake",
			Subsystem: "extractor",
			Name:      "llm_latency_seconds",
			Help:      "Latency of LLM calls",
			Buckets:   prometheus.DefBuckets,
		}, []string{"operation"}),
		activeSessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lead_intake",
			Subsystem: "session",
			Name:      "active",
			Help:      "Sessions currently held in memory",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(m.turnsTotal, m.extractionsTotal, m.submissionsTotal, m.llmLatency, m.activeSessions)
	return m
}

func (m *LeadMetrics) ObserveTurn(outcome string) {
	if m == nil {
		return
	}
	m.turnsTotal.WithLabelValues(outcome).Inc()
}

func (m *LeadMetrics) ObserveExtraction(result string) {
	if m == nil {
		return
	}
	m.extractionsTotal.WithLabelValues(result).Inc()
}

func (m *LeadMetrics) ObserveSubmission(success bool) {
	if m == nil {
		return
	}
	status := "failed"
	if success {
		status = "created"
	}
	m.submissionsTotal.WithLabelValues(status).Inc()
}

func (m *LeadMetrics) ObserveLLMLatency(operation string, seconds float64) {
	if m == nil {
		return
	}
	m.llmLatency.WithLabelValues(operation).Observe(seconds)
}

func (m *LeadMetrics) SetActiveSessions(n int) {
	if m == nil {
		return
	}
	m.activeSessions.Set(float64(n))
}
