package ebank

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ebank-go/ebank/session"
)

// Account is the identity and routing number of a bank account, created by
// the server on registration and read-only to the client.
type Account = session.Account

// Credential represents an authenticated session: the bearer token plus the
// owner profile. Immutable once issued; replaced wholesale on re-login and
// cleared wholesale on logout.
type Credential = session.Credential

// TransactionRecord is one ledger row, produced by the server per completed
// transfer. A negative Amount is a debit (this account was the source), a
// positive one a credit.
//
// TransactionRecord instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TransactionRecord struct {
	Date       time.Time       `json:"date"`
	Source     string          `json:"source"`
	Target     string          `json:"target"`
	Amount     decimal.Decimal `json:"amount"`
	NewBalance decimal.Decimal `json:"newBalance"`
}

// TransferRequest is the payload of one transfer submission. Constructed
// fresh per attempt, never persisted.
//
// TransferRequest instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TransferRequest struct {
	Target string          `json:"target"`
	Amount decimal.Decimal `json:"amount"`
}

// TransferConfirmation is returned by [TransactionAPI.Transfer] on success.
//
// TransferConfirmation instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type TransferConfirmation struct {
	NewBalance decimal.Decimal `json:"newBalance"`
}

// LedgerQuery selects one page of the transaction ledger.
//
// LedgerQuery instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LedgerQuery struct {
	Count int `json:"count"`
	Skip  int `json:"skip"`
}

// LedgerPage is one page of ledger rows plus the total match count used to
// drive pagination.
//
// LedgerPage instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type LedgerPage struct {
	Records    []TransactionRecord
	TotalCount int
}

// RegistrationInfo is the payload of [AuthAPI.Register].
//
// RegistrationInfo instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegistrationInfo struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Login     string `json:"login"`
	Password  string `json:"password"`
}

// RegistrationForm is the input for [Engine.Register]. PasswordConfirmation
// is checked locally and never sent to the server.
//
// RegistrationForm instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type RegistrationForm struct {
	RegistrationInfo
	PasswordConfirmation string
}

// AuthAPI is the authentication collaborator port.
type AuthAPI interface {
	Login(ctx context.Context, login, password string) (*Credential, error)
	Register(ctx context.Context, reg RegistrationInfo) (*Account, error)
}

// AccountAPI is the account collaborator port.
type AccountAPI interface {
	CurrentBalance(ctx context.Context, token string) (decimal.Decimal, error)
}

// TransactionAPI is the transaction collaborator port.
type TransactionAPI interface {
	Transactions(ctx context.Context, token string, q LedgerQuery) (*LedgerPage, error)
	Transfer(ctx context.Context, token string, req TransferRequest) (*TransferConfirmation, error)
}

// Redirector is the external redirect-to-login collaborator invoked when a
// protected operation finds no session.
type Redirector interface {
	RedirectToLogin()
}

// RedirectorFunc adapts a plain function to [Redirector].
type RedirectorFunc func()

// RedirectToLogin describes the redirecttologin operation and its observable behavior.
//
// RedirectToLogin may return an error when input validation, dependency calls, or security checks fail.
// RedirectToLogin does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (f RedirectorFunc) RedirectToLogin() {
	if f != nil {
		f()
	}
}
