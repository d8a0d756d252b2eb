package views

import (
	"net/http"

	"gangosri-portal/internal/pkg/constvars"

	"go.uber.org/zap"
)

// SessionID reads the opaque session ID from the cookie session. Empty when
// the browser carries no (or a tampered) cookie.
func (r *Renderer) SessionID(req *http.Request) string {
	cookieSession, err := r.store.Get(req, constvars.CookieSessionName)
	if err != nil {
		return ""
	}
	sessionID, _ := cookieSession.Values[constvars.SessionValueID].(string)
	return sessionID
}

func (r *Renderer) SetSessionID(w http.ResponseWriter, req *http.Request, sessionID string) error {
	cookieSession, _ := r.store.Get(req, constvars.CookieSessionName)
	cookieSession.Values[constvars.SessionValueID] = sessionID
	return cookieSession.Save(req, w)
}

func (r *Renderer) ClearSessionID(w http.ResponseWriter, req *http.Request) {
	cookieSession, _ := r.store.Get(req, constvars.CookieSessionName)
	delete(cookieSession.Values, constvars.SessionValueID)
	if err := cookieSession.Save(req, w); err != nil {
		r.Log.Warn("failed to clear session cookie", zap.Error(err))
	}
}

// FlashSuccess queues a one-shot success toast shown on the next render.
func (r *Renderer) FlashSuccess(w http.ResponseWriter, req *http.Request, message string) {
	r.flash(w, req, constvars.FlashKeySuccess, message)
}

func (r *Renderer) FlashError(w http.ResponseWriter, req *http.Request, message string) {
	r.flash(w, req, constvars.FlashKeyError, message)
}

func (r *Renderer) flash(w http.ResponseWriter, req *http.Request, key, message string) {
	cookieSession, _ := r.store.Get(req, constvars.CookieSessionName)
	cookieSession.AddFlash(message, key)
	if err := cookieSession.Save(req, w); err != nil {
		r.Log.Warn("failed to save flash message", zap.Error(err))
	}
}

func (r *Renderer) popToasts(w http.ResponseWriter, req *http.Request) (successes, errors []string) {
	cookieSession, _ := r.store.Get(req, constvars.CookieSessionName)

	for _, raw := range cookieSession.Flashes(constvars.FlashKeySuccess) {
		if message, ok := raw.(string); ok {
			successes = append(successes, message)
		}
	}
	for _, raw := range cookieSession.Flashes(constvars.FlashKeyError) {
		if message, ok := raw.(string); ok {
			errors = append(errors, message)
		}
	}
	if len(successes) > 0 || len(errors) > 0 {
		if err := cookieSession.Save(req, w); err != nil {
			r.Log.Warn("failed to consume flash messages", zap.Error(err))
		}
	}
	return successes, errors
}
