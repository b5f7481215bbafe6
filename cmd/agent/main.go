package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"goldbook/internal/agent"
	"goldbook/internal/config"
	"goldbook/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Load application configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		// We can't use the logger here because it's not initialized yet.
		panic(fmt.Sprintf("could not load config: %v", err))
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		panic(err)
	}
	defer log.Sync()
	log.Info("Configuration loaded")

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		sigchan := make(chan os.Signal, 1)
		signal.Notify(sigchan, syscall.SIGINT, syscall.SIGTERM)
		<-sigchan
		log.Info("Shutdown signal received, aborting sync...")
		cancel()
	}()

	report, err := agent.LoadReport(cfg.Agent.ReportFile)
	if err != nil {
		log.Fatal("Failed to load terminal report", zap.Error(err))
	}
	accountNumber := report.AccountNumber
	if accountNumber == "" {
		accountNumber = cfg.Agent.AccountNumber
	}
	log.Info("Loaded terminal report",
		zap.String("account", accountNumber),
		zap.Int("trades", len(report.Trades)))

	client := agent.NewClient(&cfg.Agent, log)

	// Make sure the account exists before uploading history.
	reg, err := client.Register(ctx, accountNumber, cfg.Agent.Password, cfg.Agent.Broker)
	if err != nil {
		log.Fatal("Failed to register account with server", zap.Error(err))
	}
	log.Info("Account registration checked", zap.String("status", reg.Status))

	// Upload history in batches; the snapshot rides along with each request
	// and the server keeps one snapshot per upload.
	batchSize := cfg.Agent.BatchSize
	if batchSize <= 0 {
		batchSize = len(report.Trades) + 1
	}
	inserted := 0
	start := 0
	for {
		end := start + batchSize
		if end > len(report.Trades) {
			end = len(report.Trades)
		}
		resp, err := client.SyncTrades(ctx, accountNumber, report.Trades[start:end], report.Balance, report.Equity)
		if err != nil {
			log.Fatal("Trade sync failed", zap.Error(err))
		}
		inserted += resp.Inserted
		if end >= len(report.Trades) {
			break
		}
		start = end
	}

	log.Info("Sync complete",
		zap.Int("uploaded", len(report.Trades)),
		zap.Int("newly_inserted", inserted))
}
