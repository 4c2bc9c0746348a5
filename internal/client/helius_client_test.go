package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"

	"wallet_monitor/internal/config"
)

func testProviderConfig(baseURL string) config.ProviderConfig {
	return config.ProviderConfig{
		BaseURL:              baseURL,
		RequestTimeoutMillis: 2000,
		RateLimit:            100,
		BurstLimit:           100,
	}
}

func TestHeliusGetBalances(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v0/addresses/wallet1/balances" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		w.Write([]byte(`{"nativeBalance": 1500000000, "tokens": [{"mint": "m1", "amount": 10, "decimals": 6}]}`))
	}))
	defer srv.Close()

	c := NewHeliusClient(testProviderConfig(srv.URL), zap.NewNop())
	balances, err := c.GetBalances(context.Background(), "wallet1")
	if err != nil {
		t.Fatalf("GetBalances error: %v", err)
	}
	if balances.NativeBalance != 1500000000 {
		t.Errorf("NativeBalance = %d, want 1500000000", balances.NativeBalance)
	}
	if len(balances.Tokens) != 1 || balances.Tokens[0].Mint != "m1" {
		t.Errorf("Tokens = %+v", balances.Tokens)
	}
}

func TestHeliusGetBalancesAPIKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("api-key") != "secret" {
			t.Errorf("api-key = %q, want %q", r.URL.Query().Get("api-key"), "secret")
		}
		w.Write([]byte(`{"nativeBalance": 0, "tokens": []}`))
	}))
	defer srv.Close()

	cfg := testProviderConfig(srv.URL)
	cfg.APIKey = "secret"
	c := NewHeliusClient(cfg, zap.NewNop())
	if _, err := c.GetBalances(context.Background(), "wallet1"); err != nil {
		t.Fatalf("GetBalances error: %v", err)
	}
}

func TestHeliusGetBalancesRateLimited(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHeliusClient(testProviderConfig(srv.URL), zap.NewNop())
	_, err := c.GetBalances(context.Background(), "wallet1")
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("err = %v, want ErrRateLimited", err)
	}
}

func TestHeliusGetBalancesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewHeliusClient(testProviderConfig(srv.URL), zap.NewNop())
	if _, err := c.GetBalances(context.Background(), "wallet1"); err == nil {
		t.Error("expected error for 500 response, got nil")
	}
}

func TestHeliusGetBalancesEmptyWallet(t *testing.T) {
	c := NewHeliusClient(testProviderConfig("http://localhost:0"), zap.NewNop())
	if _, err := c.GetBalances(context.Background(), ""); err == nil {
		t.Error("expected error for empty wallet, got nil")
	}
}
