package ebank

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	if cfg.Session.StorageKey != "credential" {
		t.Fatalf("storage key = %q", cfg.Session.StorageKey)
	}
	if cfg.Ledger.PageSize != 10 {
		t.Fatalf("page size = %d", cfg.Ledger.PageSize)
	}
	if !cfg.Transfer.MinimumAmount.Equal(decimal.RequireFromString("0.05")) {
		t.Fatalf("minimum amount = %s", cfg.Transfer.MinimumAmount)
	}
	if cfg.Transfer.Currency != "CHF" {
		t.Fatalf("currency = %q", cfg.Transfer.Currency)
	}
	if cfg.Validation.MinFieldLength != 4 {
		t.Fatalf("min field length = %d", cfg.Validation.MinFieldLength)
	}
}

func TestConfigValidateRejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty storage key", func(c *Config) { c.Session.StorageKey = "" }, "StorageKey"},
		{"zero page size", func(c *Config) { c.Ledger.PageSize = 0 }, "PageSize"},
		{"zero minimum", func(c *Config) { c.Transfer.MinimumAmount = decimal.Zero }, "MinimumAmount"},
		{"negative minimum", func(c *Config) { c.Transfer.MinimumAmount = decimal.New(-1, -2) }, "MinimumAmount"},
		{"zero field length", func(c *Config) { c.Validation.MinFieldLength = 0 }, "MinFieldLength"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultConfig()
			tc.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected validation error")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("err = %v, want mention of %s", err, tc.want)
			}
		})
	}
}

func TestBuildRequiresStorage(t *testing.T) {
	deps := &testDeps{auth: &mockAuth{}, account: &mockAccount{}, tx: &mockTx{}}
	_ = newTestEngine(t, deps)

	b := New().
		WithAuthAPI(deps.auth).
		WithAccountAPI(deps.account).
		WithTransactionAPI(deps.tx)
	if _, err := b.Build(); err == nil {
		t.Fatalf("expected build failure without storage")
	}
}

func TestBuilderRejectsSecondBuild(t *testing.T) {
	deps := &testDeps{}
	engine := newTestEngine(t, deps)
	_ = engine

	b := New().
		WithStorage(deps.storage).
		WithAuthAPI(deps.auth).
		WithAccountAPI(deps.account).
		WithTransactionAPI(deps.tx)

	first, err := b.Build()
	if err != nil {
		t.Fatalf("first build: %v", err)
	}
	t.Cleanup(first.Close)

	if _, err := b.Build(); err == nil {
		t.Fatalf("expected second build to fail")
	}
}
