package internaldefs

import (
	"github.com/ebank-go/ebank"
)

// CounterDef defines a public type used by ebank APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   ebank.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by ebank APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   ebank.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the banking client.
var CounterDefs = []CounterDef{
	{ID: ebank.MetricLoginSuccess, Name: "ebank_login_success_total", Help: "Successful login attempts."},
	{ID: ebank.MetricLoginFailure, Name: "ebank_login_failure_total", Help: "Failed login attempts."},
	{ID: ebank.MetricLoginRejected, Name: "ebank_login_rejected_total", Help: "Login attempts rejected by local validation."},
	{ID: ebank.MetricRegistrationSuccess, Name: "ebank_registration_success_total", Help: "Successful registrations."},
	{ID: ebank.MetricRegistrationFailure, Name: "ebank_registration_failure_total", Help: "Failed registrations."},
	{ID: ebank.MetricRegistrationRejected, Name: "ebank_registration_rejected_total", Help: "Registrations rejected by local validation."},
	{ID: ebank.MetricAutoLoginFailure, Name: "ebank_auto_login_failure_total", Help: "Post-registration logins that failed."},
	{ID: ebank.MetricLogout, Name: "ebank_logout_total", Help: "Logout operations."},
	{ID: ebank.MetricBalanceLoadSuccess, Name: "ebank_balance_load_success_total", Help: "Successful balance loads."},
	{ID: ebank.MetricBalanceLoadFailure, Name: "ebank_balance_load_failure_total", Help: "Failed balance loads."},
	{ID: ebank.MetricLedgerLoadSuccess, Name: "ebank_ledger_load_success_total", Help: "Successful transaction page loads."},
	{ID: ebank.MetricLedgerLoadFailure, Name: "ebank_ledger_load_failure_total", Help: "Failed transaction page loads."},
	{ID: ebank.MetricTransferSuccess, Name: "ebank_transfer_success_total", Help: "Successful transfers."},
	{ID: ebank.MetricTransferFailure, Name: "ebank_transfer_failure_total", Help: "Transfers rejected by the server or transport."},
	{ID: ebank.MetricTransferRejected, Name: "ebank_transfer_rejected_total", Help: "Transfers rejected by local validation."},
}

// HistogramDefs is an exported constant or variable used by the banking client.
var HistogramDefs = []HistogramDef{
	{ID: ebank.MetricTransferLatency, Name: "ebank_transfer_latency_seconds", Help: "Transfer round-trip latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the banking client.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the banking client.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
