package main

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
)

const sessionCookie = "goldbook_session"

// Session is the signed cookie payload identifying a logged-in account.
type Session struct {
	AccountID     uint   `json:"account_id"`
	AccountNumber string `json:"account_number"`
	Broker        string `json:"broker"`
}

// sign creates a HMAC-SHA256 signature for the given payload.
func (s *Server) sign(payload []byte) string {
	h := hmac.New(sha256.New, []byte(s.cfg.Server.SecretKey))
	h.Write(payload)
	return hex.EncodeToString(h.Sum(nil))
}

// setSession writes the signed session cookie for the account.
func (s *Server) setSession(w http.ResponseWriter, sess Session) {
	payload, _ := json.Marshal(sess)
	value := base64.RawURLEncoding.EncodeToString(payload) + "." + s.sign(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
	})
}

// clearSession expires the session cookie.
func (s *Server) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}

// currentSession validates the request's session cookie and returns its
// payload. ok is false for a missing, malformed, or tampered cookie.
func (s *Server) currentSession(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(sessionCookie)
	if err != nil {
		return Session{}, false
	}
	parts := strings.SplitN(cookie.Value, ".", 2)
	if len(parts) != 2 {
		return Session{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(parts[0])
	if err != nil {
		return Session{}, false
	}
	if !hmac.Equal([]byte(s.sign(payload)), []byte(parts[1])) {
		return Session{}, false
	}
	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return Session{}, false
	}
	return sess, true
}
