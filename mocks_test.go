package ebank

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ebank-go/ebank/kv"
)

type mockAuth struct {
	mu          sync.Mutex
	loginCalls  int
	registers   int
	loginFn     func(ctx context.Context, login, password string) (*Credential, error)
	registerFn  func(ctx context.Context, info RegistrationInfo) (*Account, error)
	lastLogin   string
	lastRegInfo RegistrationInfo
}

func (m *mockAuth) Login(ctx context.Context, login, password string) (*Credential, error) {
	m.mu.Lock()
	m.loginCalls++
	m.lastLogin = login
	fn := m.loginFn
	m.mu.Unlock()
	if fn == nil {
		return nil, ErrInvalidCredentials
	}
	return fn(ctx, login, password)
}

func (m *mockAuth) Register(ctx context.Context, info RegistrationInfo) (*Account, error) {
	m.mu.Lock()
	m.registers++
	m.lastRegInfo = info
	fn := m.registerFn
	m.mu.Unlock()
	if fn == nil {
		return nil, ErrRegistrationFailed
	}
	return fn(ctx, info)
}

func (m *mockAuth) LoginCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loginCalls
}

func (m *mockAuth) RegisterCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.registers
}

type mockAccount struct {
	mu        sync.Mutex
	calls     int
	balanceFn func(ctx context.Context, token string) (decimal.Decimal, error)
}

func (m *mockAccount) CurrentBalance(ctx context.Context, token string) (decimal.Decimal, error) {
	m.mu.Lock()
	m.calls++
	fn := m.balanceFn
	m.mu.Unlock()
	if fn == nil {
		return decimal.Zero, ErrBalanceUnavailable
	}
	return fn(ctx, token)
}

func (m *mockAccount) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

type mockTx struct {
	mu             sync.Mutex
	listCalls      int
	transferCalls  int
	lastQuery      LedgerQuery
	lastTransfer   TransferRequest
	transactionsFn func(ctx context.Context, token string, q LedgerQuery) (*LedgerPage, error)
	transferFn     func(ctx context.Context, token string, req TransferRequest) (*TransferConfirmation, error)
}

func (m *mockTx) Transactions(ctx context.Context, token string, q LedgerQuery) (*LedgerPage, error) {
	m.mu.Lock()
	m.listCalls++
	m.lastQuery = q
	fn := m.transactionsFn
	m.mu.Unlock()
	if fn == nil {
		return &LedgerPage{}, nil
	}
	return fn(ctx, token, q)
}

func (m *mockTx) Transfer(ctx context.Context, token string, req TransferRequest) (*TransferConfirmation, error) {
	m.mu.Lock()
	m.transferCalls++
	m.lastTransfer = req
	fn := m.transferFn
	m.mu.Unlock()
	if fn == nil {
		return nil, ErrTransferFailed
	}
	return fn(ctx, token, req)
}

func (m *mockTx) ListCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listCalls
}

func (m *mockTx) TransferCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.transferCalls
}

func (m *mockTx) LastQuery() LedgerQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastQuery
}

func testCredential(login string) *Credential {
	return &Credential{
		Token: "tok-" + login,
		Owner: Account{
			Firstname: "Bernhard",
			Lastname:  "Mueller",
			Login:     login,
			BBAN:      "CH9300762011623852957",
		},
	}
}

type testDeps struct {
	auth    *mockAuth
	account *mockAccount
	tx      *mockTx
	storage kv.Store
}

func newTestEngine(t *testing.T, deps *testDeps) *Engine {
	t.Helper()

	if deps.auth == nil {
		deps.auth = &mockAuth{}
	}
	if deps.account == nil {
		deps.account = &mockAccount{}
	}
	if deps.tx == nil {
		deps.tx = &mockTx{}
	}
	if deps.storage == nil {
		deps.storage = kv.NewMemory()
	}

	engine, err := New().
		WithStorage(deps.storage).
		WithAuthAPI(deps.auth).
		WithAccountAPI(deps.account).
		WithTransactionAPI(deps.tx).
		WithMetricsEnabled(true).
		Build()
	if err != nil {
		t.Fatalf("build engine: %v", err)
	}
	t.Cleanup(engine.Close)
	return engine
}

func loginTestUser(t *testing.T, e *Engine, deps *testDeps) {
	t.Helper()

	deps.auth.mu.Lock()
	deps.auth.loginFn = func(ctx context.Context, login, password string) (*Credential, error) {
		return testCredential(login), nil
	}
	deps.auth.mu.Unlock()

	if _, err := e.Login(context.Background(), "bmueller", "user1234"); err != nil {
		t.Fatalf("login: %v", err)
	}
}
