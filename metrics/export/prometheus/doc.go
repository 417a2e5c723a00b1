// Package prometheus renders banking client metrics for Prometheus.
//
// [NewPrometheusExporter] accepts an [ebank.Engine] and exposes an [http.Handler]
// that renders all counters and histograms in Prometheus text exposition format.
// Counter names are prefixed ebank_*_total; the single histogram is
// ebank_transfer_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
