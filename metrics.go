package ebank

import (
	internalmetrics "github.com/ebank-go/ebank/internal/metrics"
)

// MetricID identifies a specific counter or histogram bucket in the
// in-process metrics system.
type MetricID = internalmetrics.MetricID

const (
	// MetricLoginSuccess is an exported constant or variable used by the banking client.
	MetricLoginSuccess = MetricID(internalmetrics.MetricLoginSuccess)
	// MetricLoginFailure is an exported constant or variable used by the banking client.
	MetricLoginFailure = MetricID(internalmetrics.MetricLoginFailure)
	// MetricLoginRejected is an exported constant or variable used by the banking client.
	MetricLoginRejected = MetricID(internalmetrics.MetricLoginRejected)
	// MetricRegistrationSuccess is an exported constant or variable used by the banking client.
	MetricRegistrationSuccess = MetricID(internalmetrics.MetricRegistrationSuccess)
	// MetricRegistrationFailure is an exported constant or variable used by the banking client.
	MetricRegistrationFailure = MetricID(internalmetrics.MetricRegistrationFailure)
	// MetricRegistrationRejected is an exported constant or variable used by the banking client.
	MetricRegistrationRejected = MetricID(internalmetrics.MetricRegistrationRejected)
	// MetricAutoLoginFailure is an exported constant or variable used by the banking client.
	MetricAutoLoginFailure = MetricID(internalmetrics.MetricAutoLoginFailure)
	// MetricLogout is an exported constant or variable used by the banking client.
	MetricLogout = MetricID(internalmetrics.MetricLogout)
	// MetricBalanceLoadSuccess is an exported constant or variable used by the banking client.
	MetricBalanceLoadSuccess = MetricID(internalmetrics.MetricBalanceLoadSuccess)
	// MetricBalanceLoadFailure is an exported constant or variable used by the banking client.
	MetricBalanceLoadFailure = MetricID(internalmetrics.MetricBalanceLoadFailure)
	// MetricLedgerLoadSuccess is an exported constant or variable used by the banking client.
	MetricLedgerLoadSuccess = MetricID(internalmetrics.MetricLedgerLoadSuccess)
	// MetricLedgerLoadFailure is an exported constant or variable used by the banking client.
	MetricLedgerLoadFailure = MetricID(internalmetrics.MetricLedgerLoadFailure)
	// MetricTransferSuccess is an exported constant or variable used by the banking client.
	MetricTransferSuccess = MetricID(internalmetrics.MetricTransferSuccess)
	// MetricTransferFailure is an exported constant or variable used by the banking client.
	MetricTransferFailure = MetricID(internalmetrics.MetricTransferFailure)
	// MetricTransferRejected is an exported constant or variable used by the banking client.
	MetricTransferRejected = MetricID(internalmetrics.MetricTransferRejected)
	// MetricTransferLatency is an exported constant or variable used by the banking client.
	MetricTransferLatency = MetricID(internalmetrics.MetricTransferLatency)

	metricIDCount = internalmetrics.MetricIDCount
)

// Metrics holds atomic counters and the optional transfer latency histogram.
type Metrics = internalmetrics.Metrics

// MetricsSnapshot is a point-in-time deep copy of all metrics.
type MetricsSnapshot = internalmetrics.Snapshot

// NewMetrics creates a new [Metrics] instance configured by the given
// [MetricsConfig]. When Enabled is false, all operations are no-ops.
func NewMetrics(cfg MetricsConfig) *Metrics {
	return internalmetrics.New(internalmetrics.Config{
		Enabled:       cfg.Enabled,
		EnableLatency: cfg.EnableLatencyHistograms,
	})
}
