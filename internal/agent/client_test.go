package agent

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"goldbook/internal/config"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func testConfig(serverURL string) *config.Agent {
	return &config.Agent{
		ServerURL:      serverURL,
		ApiKey:         "test_key",
		RateLimit:      100,
		RateLimitBurst: 10,
	}
}

func TestClient_SyncTrades(t *testing.T) {
	var received struct {
		AccountNumber string     `json:"account_number"`
		Trades        []TradeRow `json:"trades"`
		Balance       float64    `json:"balance"`
		Equity        float64    `json:"equity"`
	}

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/trades/sync", r.URL.Path)
		assert.Equal(t, "test_key", r.Header.Get("X-API-Key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(SyncResponse{Status: "ok", Inserted: len(received.Trades)})
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL), zap.NewNop())

	trades := []TradeRow{
		{Ticket: 1, Pair: "XAUUSD", Type: "buy", Profit: 22},
		{Ticket: 2, Pair: "EURUSD", Type: "sell", Profit: -8},
	}
	resp, err := client.SyncTrades(context.Background(), "100234", trades, 1050, 1042.5)

	assert.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, 2, resp.Inserted)
	assert.Equal(t, "100234", received.AccountNumber)
	assert.Equal(t, 1050.0, received.Balance)
	assert.Len(t, received.Trades, 2)
	assert.Equal(t, "XAUUSD", received.Trades[0].Pair)
}

func TestClient_Register(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/register", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(RegisterResponse{Status: "already exists"})
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL), zap.NewNop())
	resp, err := client.Register(context.Background(), "100234", "hunter2", "MT5")

	assert.NoError(t, err)
	assert.Equal(t, "already exists", resp.Status)
}

func TestClient_ServerErrorSurfaces(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"invalid key"}`, http.StatusForbidden)
	}))
	defer ts.Close()

	client := NewClient(testConfig(ts.URL), zap.NewNop())
	_, err := client.SyncTrades(context.Background(), "100234", nil, 0, 0)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestLoadReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	content := `{
		"account_number": "100234",
		"balance": 1050,
		"equity": 1042.5,
		"trades": [
			{"ticket": 1, "pair": "XAUUSD", "type": "buy", "profit": 22}
		]
	}`
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	report, err := LoadReport(path)

	assert.NoError(t, err)
	assert.Equal(t, "100234", report.AccountNumber)
	assert.Equal(t, 1042.5, report.Equity)
	assert.Len(t, report.Trades, 1)
	assert.EqualValues(t, 1, report.Trades[0].Ticket)
}

func TestLoadReport_MissingFile(t *testing.T) {
	_, err := LoadReport("/does/not/exist.json")
	assert.Error(t, err)
}
