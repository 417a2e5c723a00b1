package ebank

import (
	"context"
	"errors"
	"time"

	internalaudit "github.com/ebank-go/ebank/internal/audit"
	"github.com/ebank-go/ebank/session"
)

// Engine defines a public type used by ebank APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config   Config
	session  *session.Store
	auth     AuthAPI
	account  AccountAPI
	tx       TransactionAPI
	redirect Redirector
	audit    *internalaudit.Dispatcher
	metrics  *Metrics
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.SnapshotNow()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

func (e *Engine) metricObserve(id MetricID, d time.Duration) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Observe(id, d)
}

// Login authenticates against the auth API and persists the issued
// credential. Local validation rejects short usernames and passwords before
// any network call. Server-side rejections surface as the generic
// [ErrInvalidCredentials]; transport failures as [ErrLoginFailed] — the two
// are never distinguished further, by contract with the server.
func (e *Engine) Login(ctx context.Context, login, password string) (Credential, error) {
	if e == nil || e.auth == nil {
		return Credential{}, ErrEngineNotReady
	}

	min := e.config.Validation.MinFieldLength
	if len(login) < min {
		e.metricInc(MetricLoginRejected)
		e.emitAudit(ctx, auditEventLoginRejected, false, login, ErrLoginTooShort, nil)
		return Credential{}, ErrLoginTooShort
	}
	if len(password) < min {
		e.metricInc(MetricLoginRejected)
		e.emitAudit(ctx, auditEventLoginRejected, false, login, ErrPasswordTooShort, nil)
		return Credential{}, ErrPasswordTooShort
	}

	cred, err := e.auth.Login(ctx, login, password)
	if err != nil || cred == nil || cred.Token == "" {
		e.metricInc(MetricLoginFailure)
		e.emitAudit(ctx, auditEventLoginFailure, false, login, err, nil)
		if err != nil && !errors.Is(err, ErrInvalidCredentials) {
			return Credential{}, ErrLoginFailed
		}
		return Credential{}, ErrInvalidCredentials
	}

	// A mirror write failure keeps the session usable for this process;
	// it only costs reload durability.
	if err := e.session.SetCredential(ctx, *cred); err != nil {
		e.emitAudit(ctx, auditEventLoginSuccess, true, login, err, func() map[string]string {
			return map[string]string{"warning": "credential mirror write failed"}
		})
	} else {
		e.emitAudit(ctx, auditEventLoginSuccess, true, login, nil, nil)
	}
	e.metricInc(MetricLoginSuccess)

	return *cred, nil
}

// Register creates an account and, on success, logs in with the submitted
// credentials. All field gates run locally before any network call; the
// password confirmation in particular never leaves the client.
func (e *Engine) Register(ctx context.Context, form RegistrationForm) (Credential, error) {
	if e == nil || e.auth == nil {
		return Credential{}, ErrEngineNotReady
	}

	min := e.config.Validation.MinFieldLength
	reject := func(cause error) (Credential, error) {
		e.metricInc(MetricRegistrationRejected)
		e.emitAudit(ctx, auditEventRegistrationRejected, false, form.Login, cause, nil)
		return Credential{}, cause
	}

	switch {
	case len(form.Firstname) < min:
		return reject(ErrFirstnameTooShort)
	case len(form.Lastname) < min:
		return reject(ErrLastnameTooShort)
	case len(form.Login) < min:
		return reject(ErrLoginTooShort)
	case len(form.Password) < min:
		return reject(ErrPasswordTooShort)
	case form.Password != form.PasswordConfirmation:
		return reject(ErrPasswordMismatch)
	}

	if _, err := e.auth.Register(ctx, form.RegistrationInfo); err != nil {
		e.metricInc(MetricRegistrationFailure)
		e.emitAudit(ctx, auditEventRegistrationFailure, false, form.Login, err, nil)
		return Credential{}, ErrRegistrationFailed
	}

	e.metricInc(MetricRegistrationSuccess)
	e.emitAudit(ctx, auditEventRegistrationSuccess, true, form.Login, nil, nil)

	cred, err := e.auth.Login(ctx, form.Login, form.Password)
	if err != nil || cred == nil || cred.Token == "" {
		e.metricInc(MetricAutoLoginFailure)
		e.emitAudit(ctx, auditEventAutoLoginFailure, false, form.Login, err, nil)
		return Credential{}, ErrAutoLoginFailed
	}

	if err := e.session.SetCredential(ctx, *cred); err != nil {
		e.emitAudit(ctx, auditEventLoginSuccess, true, form.Login, err, func() map[string]string {
			return map[string]string{"warning": "credential mirror write failed"}
		})
	} else {
		e.emitAudit(ctx, auditEventLoginSuccess, true, form.Login, nil, nil)
	}
	e.metricInc(MetricLoginSuccess)

	return *cred, nil
}

// Logout clears the session from memory and from the persisted mirror.
// Safe to call when already logged out.
func (e *Engine) Logout(ctx context.Context) error {
	if e == nil {
		return ErrEngineNotReady
	}

	login := ""
	if user, ok := e.session.CurrentUser(ctx); ok {
		login = user.Login
	}

	err := e.session.Logout(ctx)
	e.metricInc(MetricLogout)
	e.emitAudit(ctx, auditEventLogout, err == nil, login, err, nil)
	return err
}

// IsLoggedIn describes the isloggedin operation and its observable behavior.
//
// IsLoggedIn may return an error when input validation, dependency calls, or security checks fail.
// IsLoggedIn does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) IsLoggedIn(ctx context.Context) bool {
	return e != nil && e.session.IsLoggedIn(ctx)
}

// Token describes the token operation and its observable behavior.
//
// Token may return an error when input validation, dependency calls, or security checks fail.
// Token does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Token(ctx context.Context) (string, bool) {
	if e == nil {
		return "", false
	}
	return e.session.Token(ctx)
}

// CurrentUser describes the currentuser operation and its observable behavior.
//
// CurrentUser may return an error when input validation, dependency calls, or security checks fail.
// CurrentUser does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) CurrentUser(ctx context.Context) (Account, bool) {
	if e == nil {
		return Account{}, false
	}
	return e.session.CurrentUser(ctx)
}
