package ebank

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"

	internalaudit "github.com/ebank-go/ebank/internal/audit"
)

const (
	auditEventLoginSuccess         = "login_success"
	auditEventLoginFailure         = "login_failure"
	auditEventLoginRejected        = "login_rejected"
	auditEventRegistrationSuccess  = "registration_success"
	auditEventRegistrationFailure  = "registration_failure"
	auditEventRegistrationRejected = "registration_rejected"
	auditEventAutoLoginFailure     = "auto_login_failure"
	auditEventLogout               = "logout"
	auditEventTransferSuccess      = "transfer_success"
	auditEventTransferFailure      = "transfer_failure"
	auditEventTransferRejected     = "transfer_rejected"
)

// AuditEvent is a structured audit record emitted by the engine.
type AuditEvent = internalaudit.Event

// AuditSink receives [AuditEvent] values from the engine's audit dispatcher.
type AuditSink = internalaudit.Sink

// NoOpSink is an [AuditSink] that silently discards all events.
type NoOpSink = internalaudit.NoOpSink

// ChannelSink is a buffered channel-based [AuditSink].
type ChannelSink = internalaudit.ChannelSink

// JSONWriterSink is an [AuditSink] that writes JSON-encoded events to an
// [io.Writer].
type JSONWriterSink = internalaudit.JSONWriterSink

// NewChannelSink creates a [ChannelSink] with the given buffer capacity.
func NewChannelSink(buffer int) *ChannelSink {
	return internalaudit.NewChannelSink(buffer)
}

// NewJSONWriterSink creates a [JSONWriterSink] that writes to w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return internalaudit.NewJSONWriterSink(w)
}

// emitAudit builds and dispatches one event. The metadata closure runs only
// when auditing is enabled, so call sites pay nothing when it is off.
func (e *Engine) emitAudit(ctx context.Context, eventType string, success bool, userLogin string, cause error, metadata func() map[string]string) {
	if e == nil || e.audit == nil {
		return
	}

	event := AuditEvent{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		EventType: eventType,
		UserLogin: userLogin,
		Success:   success,
	}
	if cause != nil {
		event.Error = cause.Error()
	}
	if metadata != nil {
		event.Metadata = metadata()
	}

	e.audit.Emit(ctx, event)
}
