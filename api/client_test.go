package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ebank-go/ebank"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithHTTPClient(srv.Client()))
}

func TestLoginDecodesCredential(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		var body struct {
			Login    string `json:"login"`
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if body.Login != "bmueller" || body.Password != "user1234" {
			t.Errorf("request body = %+v", body)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-1",
			"owner": map[string]string{
				"firstname": "Bernhard",
				"lastname":  "Mueller",
				"login":     "bmueller",
				"bban":      "CH9300762011623852957",
			},
		})
	}))

	cred, err := client.Login(context.Background(), "bmueller", "user1234")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if cred.Token != "tok-1" || cred.Owner.BBAN != "CH9300762011623852957" {
		t.Fatalf("credential = %+v", cred)
	}
}

func TestLoginUnauthorized(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusUnauthorized)
	}))

	_, err := client.Login(context.Background(), "bmueller", "wrong")
	if !errors.Is(err, ebank.ErrInvalidCredentials) {
		t.Fatalf("err = %v, want wrapped %v", err, ebank.ErrInvalidCredentials)
	}
}

func TestCurrentBalanceSendsBearerToken(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer tok-1" {
			t.Errorf("authorization header = %q", got)
		}
		json.NewEncoder(w).Encode(map[string]any{"balance": 1234.5})
	}))

	balance, err := client.CurrentBalance(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("balance: %v", err)
	}
	if !balance.Equal(decimal.RequireFromString("1234.5")) {
		t.Fatalf("balance = %s", balance)
	}
}

func TestTransactionsQueryAndEnvelope(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/accounts/transactions" {
			t.Errorf("path = %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("count") != "10" || q.Get("skip") != "20" {
			t.Errorf("query = %v", q)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"result": []map[string]any{
				{
					"date":       "2024-01-05T10:30:00Z",
					"source":     "CH9300762011623852957",
					"target":     "CH5604835012345678009",
					"amount":     -25.5,
					"newBalance": 974.5,
				},
			},
			"query": map[string]any{"resultcount": 21},
		})
	}))

	page, err := client.Transactions(context.Background(), "tok-1", ebank.LedgerQuery{Count: 10, Skip: 20})
	if err != nil {
		t.Fatalf("transactions: %v", err)
	}
	if page.TotalCount != 21 || len(page.Records) != 1 {
		t.Fatalf("page = %+v", page)
	}
	if !page.Records[0].Amount.Equal(decimal.RequireFromString("-25.5")) {
		t.Fatalf("amount = %s", page.Records[0].Amount)
	}
}

func TestTransferFailureIsOpaque(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"account 123 does not exist"}`, http.StatusBadRequest)
	}))

	_, err := client.Transfer(context.Background(), "tok-1", ebank.TransferRequest{
		Target: "123",
		Amount: decimal.RequireFromString("10.00"),
	})
	if err == nil {
		t.Fatalf("expected error")
	}
	if errors.Is(err, ebank.ErrInvalidCredentials) {
		t.Fatalf("bad request misclassified as auth failure")
	}
	if want := "status 400"; !strings.Contains(err.Error(), want) {
		t.Fatalf("err = %v, want mention of %q", err, want)
	}
	if strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("response body leaked into error: %v", err)
	}
}

func TestTransferDecodesConfirmation(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req ebank.TransferRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if req.Target != "CH5604835012345678009" {
			t.Errorf("target = %q", req.Target)
		}
		json.NewEncoder(w).Encode(map[string]any{"newBalance": 123.45})
	}))

	conf, err := client.Transfer(context.Background(), "tok-1", ebank.TransferRequest{
		Target: "CH5604835012345678009",
		Amount: decimal.RequireFromString("10.00"),
	})
	if err != nil {
		t.Fatalf("transfer: %v", err)
	}
	if !conf.NewBalance.Equal(decimal.RequireFromString("123.45")) {
		t.Fatalf("new balance = %s", conf.NewBalance)
	}
}
