// Copyright 2025 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/autheliarr/autheliarr/internal/logging"
	"github.com/autheliarr/autheliarr/internal/monitoring"
)

var _ monitoring.MonitorInterface = (*Monitor)(nil)

type Monitor struct {
	service string

	responseTime           *prometheus.HistogramVec
	dependencyAvailability *prometheus.GaugeVec
	syncOutcome            *prometheus.CounterVec
	syncDuration           prometheus.Histogram

	logger logging.LoggerInterface
}

func (m *Monitor) GetService() string {
	return m.service
}

func (m *Monitor) SetResponseTimeMetric(tags map[string]string, value float64) error {
	metric, err := m.responseTime.GetMetricWith(tags)
	if err != nil {
		return err
	}
	metric.Observe(value)

	return nil
}

func (m *Monitor) SetDependencyAvailability(tags map[string]string, value float64) error {
	metric, err := m.dependencyAvailability.GetMetricWith(tags)
	if err != nil {
		return err
	}
	metric.Set(value)

	return nil
}

func (m *Monitor) IncSyncOutcomeMetric(tags map[string]string, value float64) error {
	metric, err := m.syncOutcome.GetMetricWith(tags)
	if err != nil {
		return err
	}
	metric.Add(value)

	return nil
}

func (m *Monitor) ObserveSyncDuration(value float64) error {
	m.syncDuration.Observe(value)

	return nil
}

func (m *Monitor) registerMetrics() {
	m.responseTime = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.service,
			Name:      "response_time_seconds",
			Help:      "HTTP response time by route and status.",
		},
		[]string{"route", "status"},
	)

	m.dependencyAvailability = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.service,
			Name:      "dependency_available",
			Help:      "Availability of external dependencies, 1 when reachable.",
		},
		[]string{"component"},
	)

	m.syncOutcome = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.service,
			Name:      "synced_users_total",
			Help:      "Users processed by reconciliation passes, by outcome.",
		},
		[]string{"outcome"},
	)

	m.syncDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: m.service,
			Name:      "sync_pass_duration_seconds",
			Help:      "Duration of full reconciliation passes.",
			Buckets:   []float64{0.05, 0.1, 0.5, 1, 5, 15, 60},
		},
	)

	for _, c := range []prometheus.Collector{
		m.responseTime,
		m.dependencyAvailability,
		m.syncOutcome,
		m.syncDuration,
	} {
		if err := prometheus.Register(c); err != nil {
			m.logger.Errorf("failed to register collector: %v", err)
		}
	}
}

func NewMonitor(service string, logger logging.LoggerInterface) *Monitor {
	m := new(Monitor)

	m.service = service
	m.logger = logger

	m.registerMetrics()

	return m
}
