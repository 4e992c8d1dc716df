// Copyright 2026 Masoner Labs
// SPDX-License-Identifier: MIT

package llm

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// metricsLLM holds Prometheus metrics for provider traffic.
type metricsLLM struct {
	once sync.Once

	requests *prometheus.CounterVec
	errors   *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var llmMetrics metricsLLM

func (m *metricsLLM) init() {
	m.once.Do(func() {
		m.requests = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agw_llm_requests_total",
			Help: "Provider requests issued",
		}, []string{"provider"})
		m.errors = prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "agw_llm_errors_total",
			Help: "Provider requests that returned an error",
		}, []string{"provider"})
		m.duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "agw_llm_request_seconds",
			Help:    "End-to-end provider request duration",
			Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"provider"})

		prometheus.MustRegister(m.requests, m.errors, m.duration)
	})
}

// recordRequest is called by every adapter after a Chat attempt, success or
// not.
func recordRequest(provider string, dur time.Duration, err error) {
	llmMetrics.init()
	llmMetrics.requests.WithLabelValues(provider).Inc()
	llmMetrics.duration.WithLabelValues(provider).Observe(dur.Seconds())
	if err != nil {
		llmMetrics.errors.WithLabelValues(provider).Inc()
	}
}
