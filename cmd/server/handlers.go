package main

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"goldbook/internal/analytics"
	"goldbook/internal/config"
	"goldbook/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Server holds dependencies for the page and API endpoints.
type Server struct {
	log       *zap.Logger
	db        *gorm.DB
	cfg       *config.Config
	templates *template.Template
}

// NewServer creates a new Server.
func NewServer(log *zap.Logger, db *gorm.DB, cfg *config.Config) *Server {
	return &Server{log: log, db: db, cfg: cfg}
}

func hashPassword(pwd string) string {
	sum := sha256.Sum256([]byte(pwd))
	return hex.EncodeToString(sum[:])
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// fetchTrades returns the account's trades newest first. The analytics
// engine's streak and drawdown figures depend on this order.
func (s *Server) fetchTrades(accountID uint) ([]models.Trade, error) {
	var trades []models.Trade
	err := s.db.Where("account_id = ?", accountID).Order("close_time desc").Find(&trades).Error
	return trades, err
}

// StatsHandler computes and returns the full analytics report for the
// logged-in account.
func (s *Server) StatsHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(r)
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	trades, err := s.fetchTrades(sess.AccountID)
	if err != nil {
		s.log.Error("Failed to get trades from database", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}

	var snapshots []models.EquitySnapshot
	if err := s.db.Where("account_id = ?", sess.AccountID).
		Order("snapshot_time asc").Find(&snapshots).Error; err != nil {
		s.log.Error("Failed to get equity snapshots from database", zap.Error(err))
		http.Error(w, "Failed to get snapshots", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, analytics.Assemble(trades, snapshots))
}

// TradesHandler returns the logged-in account's trade history, newest first.
func (s *Server) TradesHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.currentSession(r)
	if !ok {
		s.writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return
	}

	trades, err := s.fetchTrades(sess.AccountID)
	if err != nil {
		s.log.Error("Failed to get trades from database", zap.Error(err))
		http.Error(w, "Failed to get trades", http.StatusInternalServerError)
		return
	}

	s.writeJSON(w, http.StatusOK, trades)
}

// syncTrade is one trade row as reported by the terminal agent.
type syncTrade struct {
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

// syncRequest is the terminal agent's upload payload.
type syncRequest struct {
	AccountNumber string      `json:"account_number"`
	Trades        []syncTrade `json:"trades"`
	Balance       float64     `json:"balance"`
	Equity        float64     `json:"equity"`
}

// durationMinutes derives the whole-minute trade duration at ingestion time.
// Zero when either timestamp is missing or unparsable.
func durationMinutes(openTime, closeTime string) int {
	opened, ok1 := analytics.ParseClock(openTime)
	closed, ok2 := analytics.ParseClock(closeTime)
	if !ok1 || !ok2 {
		return 0
	}
	return int(closed.Sub(opened).Minutes())
}

// SyncHandler ingests a batch of trades and one equity snapshot from the
// terminal agent. Inserting an already-known (account, ticket) pair is a
// no-op, so agents can re-upload full history safely.
func (s *Server) SyncHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-API-Key") != s.cfg.Server.ApiKey {
		s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "invalid key"})
		return
	}

	var req syncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	var account models.Account
	if err := s.db.Where("account_number = ?", req.AccountNumber).First(&account).Error; err != nil {
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": "account not found"})
		return
	}

	inserted := 0
	for _, in := range req.Trades {
		trade := models.Trade{
			AccountID:       account.ID,
			Ticket:          in.Ticket,
			Pair:            in.Pair,
			TradeType:       in.Type,
			OpenTime:        in.OpenTime,
			CloseTime:       in.CloseTime,
			OpenPrice:       in.OpenPrice,
			ClosePrice:      in.ClosePrice,
			StopLoss:        in.SL,
			TakeProfit:      in.TP,
			Lots:            in.Lots,
			Profit:          in.Profit,
			Commission:      in.Commission,
			Swap:            in.Swap,
			DurationMinutes: durationMinutes(in.OpenTime, in.CloseTime),
		}
		result := s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&trade)
		if result.Error != nil {
			// A bad row never fails the batch.
			s.log.Warn("Skipping trade that failed to insert",
				zap.Int64("ticket", in.Ticket), zap.Error(result.Error))
			continue
		}
		inserted += int(result.RowsAffected)
	}

	snapshot := models.EquitySnapshot{
		AccountID:    account.ID,
		Balance:      req.Balance,
		Equity:       req.Equity,
		SnapshotTime: time.Now().UTC().Format("2006-01-02 15:04:05"),
	}
	if err := s.db.Create(&snapshot).Error; err != nil {
		s.log.Error("Failed to save equity snapshot", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("Synced trades from terminal",
		zap.String("account", req.AccountNumber),
		zap.Int("received", len(req.Trades)),
		zap.Int("inserted", inserted))

	s.writeJSON(w, http.StatusOK, map[string]any{"status": "ok", "inserted": inserted})
}

// RegisterAPIHandler creates an account on behalf of the terminal agent.
func (s *Server) RegisterAPIHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("X-API-Key") != s.cfg.Server.ApiKey {
		s.writeJSON(w, http.StatusForbidden, map[string]string{"error": "invalid key"})
		return
	}

	var req struct {
		AccountNumber string `json:"account_number"`
		Password      string `json:"password"`
		Broker        string `json:"broker"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if req.Broker == "" {
		req.Broker = "MT5"
	}

	var existing models.Account
	if err := s.db.Where("account_number = ?", req.AccountNumber).First(&existing).Error; err == nil {
		s.writeJSON(w, http.StatusOK, map[string]string{"status": "already exists"})
		return
	}

	account := models.Account{
		AccountNumber: req.AccountNumber,
		PasswordHash:  hashPassword(req.Password),
		Broker:        req.Broker,
	}
	if err := s.db.Create(&account).Error; err != nil {
		s.log.Error("Failed to create account", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	s.log.Info("Registered account via sync API", zap.String("account", req.AccountNumber))
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "registered"})
}
