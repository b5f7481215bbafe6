package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"goldbook/internal/config"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// TradeRow is one closed trade as exported by the trading terminal.
type TradeRow struct {
	Ticket     int64   `json:"ticket"`
	Pair       string  `json:"pair"`
	Type       string  `json:"type"`
	OpenTime   string  `json:"open_time"`
	CloseTime  string  `json:"close_time"`
	OpenPrice  float64 `json:"open_price"`
	ClosePrice float64 `json:"close_price"`
	SL         float64 `json:"sl"`
	TP         float64 `json:"tp"`
	Lots       float64 `json:"lots"`
	Profit     float64 `json:"profit"`
	Commission float64 `json:"commission"`
	Swap       float64 `json:"swap"`
}

// Report is the terminal's exported account report: closed trade history plus
// the current balance and equity reading.
type Report struct {
	AccountNumber string     `json:"account_number"`
	Balance       float64    `json:"balance"`
	Equity        float64    `json:"equity"`
	Trades        []TradeRow `json:"trades"`
}

// LoadReport reads a terminal report export from disk.
func LoadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report file: %w", err)
	}
	var report Report
	if err := json.Unmarshal(data, &report); err != nil {
		return nil, fmt.Errorf("failed to parse report file: %w", err)
	}
	return &report, nil
}

// SyncResponse is the server's answer to a trade upload.
type SyncResponse struct {
	Status   string `json:"status"`
	Inserted int    `json:"inserted"`
}

// RegisterResponse is the server's answer to an account registration.
type RegisterResponse struct {
	Status string `json:"status"`
}

// Client talks to the journal server's sync API.
type Client struct {
	client  *resty.Client
	apiKey  string
	logger  *zap.Logger
	limiter *rate.Limiter
}

// NewClient creates a sync API client for the configured server.
func NewClient(cfg *config.Agent, logger *zap.Logger) *Client {
	client := resty.New().SetBaseURL(cfg.ServerURL)

	// Limit the request rate so history re-uploads don't hammer the server.
	limiter := rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateLimitBurst)

	return &Client{
		client:  client,
		apiKey:  cfg.ApiKey,
		logger:  logger,
		limiter: limiter,
	}
}

// post sends an API-key-authenticated request after waiting for the limiter.
func (c *Client) post(ctx context.Context, path string, body any, result any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limiter wait failed: %w", err)
	}

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("X-API-Key", c.apiKey).
		SetBody(body).
		SetResult(result).
		Post(path)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return fmt.Errorf("server returned %s: %s", resp.Status(), resp.String())
	}
	return nil
}

// Register creates the account on the server. Registering an existing account
// number is not an error; the server reports "already exists".
func (c *Client) Register(ctx context.Context, accountNumber, password, broker string) (*RegisterResponse, error) {
	body := map[string]string{
		"account_number": accountNumber,
		"password":       password,
		"broker":         broker,
	}
	var result RegisterResponse
	if err := c.post(ctx, "/api/register", body, &result); err != nil {
		c.logger.Error("Failed to register account", zap.Error(err))
		return nil, fmt.Errorf("failed to register account: %w", err)
	}
	return &result, nil
}

// SyncTrades uploads one batch of trades together with the current balance
// and equity. The server ignores trades it has already seen, so uploading
// overlapping history is safe.
func (c *Client) SyncTrades(ctx context.Context, accountNumber string, trades []TradeRow, balance, equity float64) (*SyncResponse, error) {
	body := map[string]any{
		"account_number": accountNumber,
		"trades":         trades,
		"balance":        balance,
		"equity":         equity,
	}
	var result SyncResponse
	if err := c.post(ctx, "/api/trades/sync", body, &result); err != nil {
		c.logger.Error("Failed to sync trades", zap.Error(err))
		return nil, fmt.Errorf("failed to sync trades: %w", err)
	}
	return &result, nil
}
