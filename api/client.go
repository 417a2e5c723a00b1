package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ebank-go/ebank"
)

// Client defines a public type used by banking client APIs.
//
// Client instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
// It implements [ebank.AuthAPI], [ebank.AccountAPI], and [ebank.TransactionAPI]
// over the demo REST surface. Response bodies of failed calls are discarded,
// never surfaced; callers only see the classification.
type Client struct {
	baseURL string
	http    *http.Client
}

// Option configures a [Client] during construction.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client, typically to adjust
// the timeout or inject a test transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// New creates a [Client] for the API rooted at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type loginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

type balanceResponse struct {
	Balance decimal.Decimal `json:"balance"`
}

type ledgerResponse struct {
	Result []ebank.TransactionRecord `json:"result"`
	Query  struct {
		ResultCount int `json:"resultcount"`
	} `json:"query"`
}

// Login describes the login operation and its observable behavior.
//
// Login may return an error when input validation, dependency calls, or security checks fail.
// Login does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Login(ctx context.Context, login, password string) (*ebank.Credential, error) {
	var cred ebank.Credential
	err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Login: login, Password: password}, &cred)
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

// Register describes the register operation and its observable behavior.
//
// Register may return an error when input validation, dependency calls, or security checks fail.
// Register does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Register(ctx context.Context, info ebank.RegistrationInfo) (*ebank.Account, error) {
	var account ebank.Account
	if err := c.do(ctx, http.MethodPost, "/auth/register", "", info, &account); err != nil {
		return nil, err
	}
	return &account, nil
}

// CurrentBalance describes the currentbalance operation and its observable behavior.
//
// CurrentBalance may return an error when input validation, dependency calls, or security checks fail.
// CurrentBalance does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) CurrentBalance(ctx context.Context, token string) (decimal.Decimal, error) {
	var resp balanceResponse
	if err := c.do(ctx, http.MethodGet, "/accounts/balance", token, nil, &resp); err != nil {
		return decimal.Zero, err
	}
	return resp.Balance, nil
}

// Transactions describes the transactions operation and its observable behavior.
//
// Transactions may return an error when input validation, dependency calls, or security checks fail.
// Transactions does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Transactions(ctx context.Context, token string, q ebank.LedgerQuery) (*ebank.LedgerPage, error) {
	params := url.Values{}
	params.Set("count", strconv.Itoa(q.Count))
	params.Set("skip", strconv.Itoa(q.Skip))

	var resp ledgerResponse
	if err := c.do(ctx, http.MethodGet, "/accounts/transactions?"+params.Encode(), token, nil, &resp); err != nil {
		return nil, err
	}
	return &ebank.LedgerPage{
		Records:    resp.Result,
		TotalCount: resp.Query.ResultCount,
	}, nil
}

// Transfer describes the transfer operation and its observable behavior.
//
// Transfer may return an error when input validation, dependency calls, or security checks fail.
// Transfer does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Client) Transfer(ctx context.Context, token string, req ebank.TransferRequest) (*ebank.TransferConfirmation, error) {
	var conf ebank.TransferConfirmation
	if err := c.do(ctx, http.MethodPost, "/accounts/transactions", token, req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

// do issues one request and decodes a 2xx JSON body into out. A 401 or 403
// wraps [ebank.ErrInvalidCredentials] so the engine can classify it; every
// other non-2xx status becomes an opaque error carrying only the code.
func (c *Client) do(ctx context.Context, method, path, token string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("api: encode request: %v", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("api: build request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("api: %s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("%w: status %d", ebank.ErrInvalidCredentials, resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		io.Copy(io.Discard, resp.Body)
		return fmt.Errorf("api: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("api: decode response: %v", err)
	}
	return nil
}
