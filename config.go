package ebank

import (
	"errors"

	"github.com/shopspring/decimal"
)

// Config defines a public type used by ebank APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Session    SessionConfig
	Ledger     LedgerConfig
	Transfer   TransferConfig
	Validation ValidationConfig
	Audit      AuditConfig
	Metrics    MetricsConfig
}

/*
====================================
SESSION CONFIG
====================================
*/

// SessionConfig defines a public type used by ebank APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// StorageKey is the persisted-store entry holding the credential
	// mirror. The default matches the original browser client's
	// localStorage key so both can share a store.
	StorageKey string
}

/*
====================================
LEDGER CONFIG
====================================
*/

// LedgerConfig defines a public type used by ebank APIs.
//
// LedgerConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LedgerConfig struct {
	// PageSize is fixed for the lifetime of a workflow.
	PageSize int
}

/*
====================================
TRANSFER CONFIG
====================================
*/

// TransferConfig defines a public type used by ebank APIs.
//
// TransferConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TransferConfig struct {
	// MinimumAmount is the smallest transferable unit.
	MinimumAmount decimal.Decimal
	// Currency is display-only; it never affects validation.
	Currency string
}

/*
====================================
VALIDATION CONFIG
====================================
*/

// ValidationConfig defines a public type used by ebank APIs.
//
// ValidationConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type ValidationConfig struct {
	// MinFieldLength applies to login, password, and name fields on the
	// login and registration forms.
	MinFieldLength int
}

/*
====================================
AUDIT / METRICS CONFIG
====================================
*/

// AuditConfig defines a public type used by ebank APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int
	DropIfFull bool
}

// MetricsConfig defines a public type used by ebank APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

func defaultConfig() Config {
	return Config{
		Session: SessionConfig{
			StorageKey: "credential",
		},
		Ledger: LedgerConfig{
			PageSize: 10,
		},
		Transfer: TransferConfig{
			MinimumAmount: decimal.New(5, -2),
			Currency:      "CHF",
		},
		Validation: ValidationConfig{
			MinFieldLength: 4,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 1024,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 false,
			EnableLatencyHistograms: false,
		},
	}
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c Config) Validate() error {
	if c.Session.StorageKey == "" {
		return errors.New("Session StorageKey must not be empty")
	}
	if c.Ledger.PageSize < 1 {
		return errors.New("Ledger PageSize must be at least 1")
	}
	if !c.Transfer.MinimumAmount.IsPositive() {
		return errors.New("Transfer MinimumAmount must be positive")
	}
	if c.Validation.MinFieldLength < 1 {
		return errors.New("Validation MinFieldLength must be at least 1")
	}
	return nil
}

func cloneConfig(c Config) Config {
	// Config holds only value types; decimal.Decimal is immutable.
	return c
}
