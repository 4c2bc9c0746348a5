package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"wallet_monitor/internal/engine"
	"wallet_monitor/internal/entity"
)

// fakeAggregator is a canned WalletAggregator for handler tests.
type fakeAggregator struct{}

func (f *fakeAggregator) Monitor(ctx context.Context) *entity.MonitorSnapshot {
	return &entity.MonitorSnapshot{
		Status:    entity.StatusSuccess,
		Wallet:    "w1",
		Profit:    entity.ProfitState{Sessions: 1},
		Timestamp: time.Now().UTC(),
	}
}

func (f *fakeAggregator) WalletValue(ctx context.Context) *entity.ValueEnvelope {
	return &entity.ValueEnvelope{Status: entity.StatusSuccess, Wallet: "w1"}
}

func (f *fakeAggregator) Balance(ctx context.Context) *entity.BalanceEnvelope {
	return &entity.BalanceEnvelope{Status: entity.StatusPending, Wallet: "w1", Message: "Wallet monitoring active"}
}

func (f *fakeAggregator) Tokens(ctx context.Context) *entity.TokenEnvelope {
	return &entity.TokenEnvelope{Status: entity.StatusSuccess}
}

func (f *fakeAggregator) NFTs(ctx context.Context) *entity.NFTEnvelope {
	return &entity.NFTEnvelope{Status: entity.StatusSuccess}
}

func (f *fakeAggregator) Transactions(ctx context.Context, limit int) *entity.TransactionEnvelope {
	return &entity.TransactionEnvelope{Status: entity.StatusSuccess, Count: limit}
}

func (f *fakeAggregator) TrackProfit() *entity.ProfitReport {
	return &entity.ProfitReport{Status: entity.StatusSuccess}
}

func (f *fakeAggregator) Status() *entity.WalletStatus {
	return &entity.WalletStatus{Wallet: "w1", Status: "active"}
}

func (f *fakeAggregator) History() []entity.BalanceEnvelope {
	return []entity.BalanceEnvelope{{Status: entity.StatusSuccess}}
}

func testRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	router := gin.New()
	RegisterHealthRoutes(router)
	RegisterFormulaRoutes(router, logger)
	RegisterEngineRoutes(router, engine.New(logger), logger)
	RegisterWalletRoutes(router, &fakeAggregator{}, logger)
	return router
}

func doRequest(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var decoded map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("response is not JSON: %v\nbody: %s", err, w.Body.String())
	}
	return w, decoded
}

func TestHealthEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "healthy" {
		t.Errorf("status field = %v, want healthy", body["status"])
	}
}

func TestFibonacciEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/geometry/fibonacci/100", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	payload, ok := body["fibonacci"].(map[string]any)
	if !ok {
		t.Fatalf("fibonacci payload missing: %v", body)
	}
	levels, ok := payload["levels"].([]any)
	if !ok {
		t.Fatalf("levels missing: %v", payload)
	}
	if len(levels) != 16 {
		t.Errorf("len(levels) = %d, want 16", len(levels))
	}
}

func TestFibonacciEndpointBadParam(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/geometry/fibonacci/notanumber", "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if body["status"] != "error" {
		t.Errorf("status field = %v, want error", body["status"])
	}
}

func TestPolarityEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/hermetic/polarity/70/30", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	reading := body["reading"].(map[string]any)
	if reading["bull_force"] != 70.0 {
		t.Errorf("bull_force = %v, want 70", reading["bull_force"])
	}
	if reading["market_state"] != "bullish" {
		t.Errorf("market_state = %v, want bullish", reading["market_state"])
	}
}

func TestFlowerOfLifeEndpointShortData(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodPost, "/api/v1/geometry/flower-of-life", `{"data": [1, 2, 3]}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	pattern := body["pattern"].(map[string]any)
	if pattern["pattern"] != "insufficient_data" {
		t.Errorf("pattern = %v, want insufficient_data", pattern["pattern"])
	}
}

func TestIntentionEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodPost, "/api/v1/ritual/intention",
		`{"goal": "profitable week", "affirmation": "I trade wisely"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	ritual := body["ritual"].(map[string]any)
	if ritual["goal"] != "profitable week" {
		t.Errorf("goal = %v", ritual["goal"])
	}
}

func TestTradeExecuteAndEngineStatus(t *testing.T) {
	router := testRouter(t)

	w, body := doRequest(t, router, http.MethodPost, "/api/v1/trade/execute",
		`{"asset": "SOL", "amount": 2, "price": 150}`)
	if w.Code != http.StatusOK {
		t.Fatalf("execute status = %d, want 200", w.Code)
	}
	trade := body["trade"].(map[string]any)
	if trade["status"] != "EXECUTED" {
		t.Errorf("trade status = %v, want EXECUTED", trade["status"])
	}

	w, body = doRequest(t, router, http.MethodGet, "/api/v1/engine/status", "")
	if w.Code != http.StatusOK {
		t.Fatalf("engine status = %d, want 200", w.Code)
	}
	engineStatus := body["engine"].(map[string]any)
	if engineStatus["trades_executed"] != 1.0 {
		t.Errorf("trades_executed = %v, want 1", engineStatus["trades_executed"])
	}
}

func TestTradeProfitEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/trade/profit/100/110/2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}

	profit := body["profit"].(map[string]any)
	if profit["profit"] != 20.0 {
		t.Errorf("profit = %v, want 20", profit["profit"])
	}
}

func TestWalletMonitorEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/wallet/monitor", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["status"] != "success" {
		t.Errorf("status = %v, want success", body["status"])
	}
}

func TestWalletBalanceDegradedStillOK(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/wallet/balance", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even for degraded data", w.Code)
	}
	if body["status"] != "pending" {
		t.Errorf("status = %v, want pending", body["status"])
	}
}

func TestWalletHistoryEndpoint(t *testing.T) {
	router := testRouter(t)
	w, body := doRequest(t, router, http.MethodGet, "/api/v1/wallet/history", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if body["count"] != 1.0 {
		t.Errorf("count = %v, want 1", body["count"])
	}
}
