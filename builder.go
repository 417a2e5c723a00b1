package ebank

import (
	"errors"

	internalaudit "github.com/ebank-go/ebank/internal/audit"
	"github.com/ebank-go/ebank/kv"
	"github.com/ebank-go/ebank/session"
)

// BankAPI bundles the three collaborator ports for callers whose client
// implements all of them, such as [api.Client].
type BankAPI interface {
	AuthAPI
	AccountAPI
	TransactionAPI
}

// Builder defines a public type used by ebank APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config

	storage  kv.Store
	auth     AuthAPI
	account  AccountAPI
	tx       TransactionAPI
	redirect Redirector

	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithStorage describes the withstorage operation and its observable behavior.
//
// WithStorage may return an error when input validation, dependency calls, or security checks fail.
// WithStorage does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithStorage(store kv.Store) *Builder {
	b.storage = store
	return b
}

// WithBankAPI wires all three collaborator ports from one client.
//
// WithBankAPI may return an error when input validation, dependency calls, or security checks fail.
// WithBankAPI does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithBankAPI(client BankAPI) *Builder {
	b.auth = client
	b.account = client
	b.tx = client
	return b
}

// WithAuthAPI describes the withauthapi operation and its observable behavior.
//
// WithAuthAPI may return an error when input validation, dependency calls, or security checks fail.
// WithAuthAPI does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuthAPI(client AuthAPI) *Builder {
	b.auth = client
	return b
}

// WithAccountAPI describes the withaccountapi operation and its observable behavior.
//
// WithAccountAPI may return an error when input validation, dependency calls, or security checks fail.
// WithAccountAPI does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAccountAPI(client AccountAPI) *Builder {
	b.account = client
	return b
}

// WithTransactionAPI describes the withtransactionapi operation and its observable behavior.
//
// WithTransactionAPI may return an error when input validation, dependency calls, or security checks fail.
// WithTransactionAPI does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithTransactionAPI(client TransactionAPI) *Builder {
	b.tx = client
	return b
}

// WithRedirector describes the withredirector operation and its observable behavior.
//
// WithRedirector may return an error when input validation, dependency calls, or security checks fail.
// WithRedirector does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedirector(r Redirector) *Builder {
	b.redirect = r
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	if sink != nil {
		b.config.Audit.Enabled = true
	}
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if b.storage == nil {
		return nil, errors.New("storage backend required")
	}
	if b.auth == nil {
		return nil, errors.New("auth API required")
	}
	if b.account == nil {
		return nil, errors.New("account API required")
	}
	if b.tx == nil {
		return nil, errors.New("transaction API required")
	}

	redirect := b.redirect
	if redirect == nil {
		redirect = RedirectorFunc(nil)
	}

	engine := &Engine{
		config:   cfg,
		session:  session.NewStore(b.storage, cfg.Session.StorageKey),
		auth:     b.auth,
		account:  b.account,
		tx:       b.tx,
		redirect: redirect,
	}

	engine.audit = internalaudit.NewDispatcher(internalaudit.Config{
		Enabled:    cfg.Audit.Enabled,
		BufferSize: cfg.Audit.BufferSize,
		DropIfFull: cfg.Audit.DropIfFull,
	}, b.auditSink)
	engine.metrics = NewMetrics(cfg.Metrics)

	b.built = true

	return engine, nil
}
