package ebank

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// Workflow orchestrates balance display, paginated ledger retrieval, and
// transfer submission for one logged-in view. State mutations are guarded by
// a mutex; remote calls happen outside it, so two independently issued loads
// have no guaranteed relative completion order and the last response wins.
// No in-flight request is ever cancelled or deduplicated — a slow earlier
// response can overwrite a faster later one, exactly like the original
// client.
type Workflow struct {
	engine *Engine

	mu           sync.Mutex
	balance      decimal.Decimal
	transactions []TransactionRecord
	page         int
	totalCount   int
	pageSize     int
	formError    string
	formSuccess  string
	draftTarget  string
	draftAmount  decimal.Decimal
}

// NewWorkflow creates a workflow for the current session. When no session
// exists, the redirect-to-login collaborator is invoked and
// [ErrNotAuthenticated] is returned. Otherwise the balance and the first
// ledger page are loaded before returning; the two loads run concurrently
// and complete in no particular order.
func (e *Engine) NewWorkflow(ctx context.Context) (*Workflow, error) {
	if e == nil {
		return nil, ErrEngineNotReady
	}

	if !e.session.IsLoggedIn(ctx) {
		e.redirect.RedirectToLogin()
		return nil, ErrNotAuthenticated
	}

	w := &Workflow{
		engine:   e,
		page:     1,
		pageSize: e.config.Ledger.PageSize,
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		w.LoadBalance(ctx)
	}()
	go func() {
		defer wg.Done()
		w.LoadTransactions(ctx)
	}()
	wg.Wait()

	return w, nil
}

// LoadBalance fetches the current balance. Best effort: without a token the
// call aborts silently, and on failure the previous (possibly stale) value
// is kept — balance display is secondary to transfer correctness.
func (w *Workflow) LoadBalance(ctx context.Context) {
	e := w.engine

	token, ok := e.session.Token(ctx)
	if !ok {
		return
	}

	balance, err := e.account.CurrentBalance(ctx, token)
	if err != nil {
		e.metricInc(MetricBalanceLoadFailure)
		return
	}

	w.mu.Lock()
	w.balance = balance
	w.mu.Unlock()
	e.metricInc(MetricBalanceLoadSuccess)
}

// LoadTransactions fetches the page selected by the cursor. On success the
// displayed page and the total count are replaced; on failure the prior page
// stays and no error reaches the transfer form — ledger errors are
// non-blocking.
func (w *Workflow) LoadTransactions(ctx context.Context) {
	e := w.engine

	token, ok := e.session.Token(ctx)
	if !ok {
		return
	}

	w.mu.Lock()
	q := LedgerQuery{
		Count: w.pageSize,
		Skip:  (w.page - 1) * w.pageSize,
	}
	w.mu.Unlock()

	page, err := e.tx.Transactions(ctx, token, q)
	if err != nil || page == nil {
		e.metricInc(MetricLedgerLoadFailure)
		return
	}

	w.mu.Lock()
	w.transactions = append([]TransactionRecord(nil), page.Records...)
	w.totalCount = page.TotalCount
	w.mu.Unlock()
	e.metricInc(MetricLedgerLoadSuccess)
}

// SendMoney validates and submits one transfer. The gates run in order and
// short-circuit: amount below the minimum, then missing token. The target
// BBAN is never validated locally; malformed account numbers are the
// server's call. On success the balance updates to the confirmed value, the
// drafts clear, the cursor resets to page one, and the ledger reloads so the
// new transfer shows up. On failure a generic message is set and all state
// stays untouched.
func (w *Workflow) SendMoney(ctx context.Context, target string, amount decimal.Decimal) error {
	e := w.engine

	w.mu.Lock()
	w.formError = ""
	w.formSuccess = ""
	w.draftTarget = target
	w.draftAmount = amount
	w.mu.Unlock()

	if amount.LessThan(e.config.Transfer.MinimumAmount) {
		e.metricInc(MetricTransferRejected)
		e.emitAudit(ctx, auditEventTransferRejected, false, w.ownerLogin(ctx), ErrAmountBelowMinimum, nil)
		w.setFormError(ErrAmountBelowMinimum.Error())
		return ErrAmountBelowMinimum
	}

	token, ok := e.session.Token(ctx)
	if !ok {
		e.metricInc(MetricTransferRejected)
		e.emitAudit(ctx, auditEventTransferRejected, false, "", ErrNotAuthenticated, nil)
		w.setFormError(ErrNotAuthenticated.Error())
		return ErrNotAuthenticated
	}

	start := time.Now()
	conf, err := e.tx.Transfer(ctx, token, TransferRequest{Target: target, Amount: amount})
	e.metricObserve(MetricTransferLatency, time.Since(start))

	if err != nil || conf == nil {
		e.metricInc(MetricTransferFailure)
		e.emitAudit(ctx, auditEventTransferFailure, false, w.ownerLogin(ctx), err, func() map[string]string {
			return map[string]string{"target": target}
		})
		// No optimistic update was made, so nothing rolls back.
		w.setFormError(ErrTransferFailed.Error())
		return ErrTransferFailed
	}

	w.mu.Lock()
	w.balance = conf.NewBalance
	w.formSuccess = fmt.Sprintf("Transfer successful! New balance: %s %s",
		conf.NewBalance.StringFixed(2), e.config.Transfer.Currency)
	w.draftTarget = ""
	w.draftAmount = decimal.Zero
	w.page = 1
	w.mu.Unlock()

	e.metricInc(MetricTransferSuccess)
	e.emitAudit(ctx, auditEventTransferSuccess, true, w.ownerLogin(ctx), nil, func() map[string]string {
		return map[string]string{
			"target": target,
			"amount": amount.StringFixed(2),
		}
	})

	w.LoadTransactions(ctx)
	return nil
}

// NextPage advances the cursor and reloads, only while more pages exist.
// At the last page it refuses the transition entirely — no clamp, no reload.
func (w *Workflow) NextPage(ctx context.Context) {
	w.mu.Lock()
	if w.page*w.pageSize >= w.totalCount {
		w.mu.Unlock()
		return
	}
	w.page++
	w.mu.Unlock()

	w.LoadTransactions(ctx)
}

// PreviousPage moves the cursor back and reloads. At page one it is a
// no-op.
func (w *Workflow) PreviousPage(ctx context.Context) {
	w.mu.Lock()
	if w.page <= 1 {
		w.mu.Unlock()
		return
	}
	w.page--
	w.mu.Unlock()

	w.LoadTransactions(ctx)
}

// HasMorePages describes the hasmorepages operation and its observable behavior.
//
// HasMorePages may return an error when input validation, dependency calls, or security checks fail.
// HasMorePages does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) HasMorePages() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page*w.pageSize < w.totalCount
}

// Logout delegates to the session store and then redirects to login.
func (w *Workflow) Logout(ctx context.Context) error {
	err := w.engine.Logout(ctx)
	w.engine.redirect.RedirectToLogin()
	return err
}

// Balance describes the balance operation and its observable behavior.
//
// Balance may return an error when input validation, dependency calls, or security checks fail.
// Balance does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) Balance() decimal.Decimal {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.balance
}

// Transactions returns the most recent page only, never a cumulative list.
func (w *Workflow) Transactions() []TransactionRecord {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]TransactionRecord(nil), w.transactions...)
}

// Page describes the page operation and its observable behavior.
//
// Page may return an error when input validation, dependency calls, or security checks fail.
// Page does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) Page() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page
}

// PageSize describes the pagesize operation and its observable behavior.
//
// PageSize may return an error when input validation, dependency calls, or security checks fail.
// PageSize does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) PageSize() int {
	return w.pageSize
}

// TotalCount describes the totalcount operation and its observable behavior.
//
// TotalCount may return an error when input validation, dependency calls, or security checks fail.
// TotalCount does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) TotalCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.totalCount
}

// FormError describes the formerror operation and its observable behavior.
//
// FormError may return an error when input validation, dependency calls, or security checks fail.
// FormError does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) FormError() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.formError
}

// FormSuccess describes the formsuccess operation and its observable behavior.
//
// FormSuccess may return an error when input validation, dependency calls, or security checks fail.
// FormSuccess does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (w *Workflow) FormSuccess() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.formSuccess
}

// Drafts returns the pending transfer form fields.
func (w *Workflow) Drafts() (target string, amount decimal.Decimal) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.draftTarget, w.draftAmount
}

func (w *Workflow) setFormError(msg string) {
	w.mu.Lock()
	w.formError = msg
	w.mu.Unlock()
}

func (w *Workflow) ownerLogin(ctx context.Context) string {
	if user, ok := w.engine.session.CurrentUser(ctx); ok {
		return user.Login
	}
	return ""
}
