package main

import (
	"html/template"
	"net/http"
	"path/filepath"

	"goldbook/internal/models"

	"go.uber.org/zap"
)

// pageData is the context passed to every page template.
type pageData struct {
	AccountNumber string
	Broker        string
	Error         string
}

// LoadTemplates parses the dashboard page templates from dir.
func (s *Server) LoadTemplates(dir string) error {
	tmpl, err := template.ParseGlob(filepath.Join(dir, "*.html"))
	if err != nil {
		return err
	}
	s.templates = tmpl
	return nil
}

func (s *Server) renderPage(w http.ResponseWriter, name string, data pageData) {
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		s.log.Error("Failed to render page", zap.String("page", name), zap.Error(err))
	}
}

// IndexHandler sends visitors to the dashboard, or to login when no session
// is present.
func (s *Server) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if _, ok := s.currentSession(r); !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// LoginHandler renders the login form and authenticates submissions.
func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.renderPage(w, "login.html", pageData{})
		return
	}

	accNum := r.FormValue("account_number")
	pwd := r.FormValue("password")

	var account models.Account
	err := s.db.Where("account_number = ?", accNum).First(&account).Error
	if err != nil || account.PasswordHash != hashPassword(pwd) {
		s.renderPage(w, "login.html", pageData{Error: "Invalid account number or password."})
		return
	}

	s.setSession(w, Session{
		AccountID:     account.ID,
		AccountNumber: account.AccountNumber,
		Broker:        account.Broker,
	})
	http.Redirect(w, r, "/dashboard", http.StatusFound)
}

// RegisterHandler renders the registration form and creates accounts.
func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		s.renderPage(w, "register.html", pageData{})
		return
	}

	accNum := r.FormValue("account_number")
	pwd := r.FormValue("password")
	broker := r.FormValue("broker")
	currency := r.FormValue("currency")
	if broker == "" {
		broker = "MT5"
	}
	if currency == "" {
		currency = "USD"
	}

	if accNum == "" || pwd == "" {
		s.renderPage(w, "register.html", pageData{Error: "Please fill all fields."})
		return
	}

	account := models.Account{
		AccountNumber: accNum,
		PasswordHash:  hashPassword(pwd),
		Broker:        broker,
		Currency:      currency,
	}
	if err := s.db.Create(&account).Error; err != nil {
		s.renderPage(w, "register.html", pageData{Error: "Account number already registered."})
		return
	}

	s.log.Info("Registered account", zap.String("account", accNum))
	http.Redirect(w, r, "/login", http.StatusFound)
}

// LogoutHandler clears the session.
func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s.clearSession(w)
	http.Redirect(w, r, "/login", http.StatusFound)
}

// requirePage renders the named page for a logged-in session, redirecting to
// login otherwise.
func (s *Server) requirePage(w http.ResponseWriter, r *http.Request, name string) {
	sess, ok := s.currentSession(r)
	if !ok {
		http.Redirect(w, r, "/login", http.StatusFound)
		return
	}
	s.renderPage(w, name, pageData{AccountNumber: sess.AccountNumber, Broker: sess.Broker})
}

func (s *Server) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	s.requirePage(w, r, "dashboard.html")
}

func (s *Server) TradesPageHandler(w http.ResponseWriter, r *http.Request) {
	s.requirePage(w, r, "trades.html")
}

func (s *Server) AnalyticsPageHandler(w http.ResponseWriter, r *http.Request) {
	s.requirePage(w, r, "analytics.html")
}
