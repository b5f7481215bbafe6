package main

import (
	"fmt"
	"net/http"
	"os"

	"goldbook/internal/config"
	"goldbook/internal/database"
	"goldbook/internal/logger"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Connect to the database
	db, err := database.NewDatabase(cfg.Database.DSN)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	srv := NewServer(log, db, &cfg)
	if err := srv.LoadTemplates("web/templates"); err != nil {
		log.Fatal("Failed to load page templates", zap.Error(err))
	}

	mux := http.NewServeMux()

	// Dashboard pages
	mux.HandleFunc("/", srv.IndexHandler)
	mux.HandleFunc("/login", srv.LoginHandler)
	mux.HandleFunc("/register", srv.RegisterHandler)
	mux.HandleFunc("/logout", srv.LogoutHandler)
	mux.HandleFunc("/dashboard", srv.DashboardHandler)
	mux.HandleFunc("/trades", srv.TradesPageHandler)
	mux.HandleFunc("/analytics", srv.AnalyticsPageHandler)

	// Data API (session protected)
	mux.HandleFunc("/api/stats", srv.StatsHandler)
	mux.HandleFunc("/api/trades", srv.TradesHandler)

	// Terminal sync API (API key protected)
	mux.HandleFunc("/api/trades/sync", srv.SyncHandler)
	mux.HandleFunc("/api/register", srv.RegisterAPIHandler)

	// Static file serving for CSS, JS, etc.
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting web server", zap.String("address", addr))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("Web server failed", zap.Error(err))
	}
}
