package middlewares

import (
	"context"
	"net/http"

	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/app/services/core/access"
	"gangosri-portal/internal/pkg/constvars"

	"go.uber.org/zap"
)

// Guard restores the session from the browser cookie and applies the route
// policy table before any handler runs. Admitted requests carry the session
// and its ID in the context; everything else is a redirect.
func (m *Middlewares) Guard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		var sess *models.Session
		sessionID := m.Renderer.SessionID(r)
		if sessionID != "" {
			restored, err := m.SessionService.Find(r.Context(), sessionID)
			if err != nil {
				m.Log.Error("Guard failed to restore session",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.Error(err),
				)
			}
			sess = restored
			// A cookie pointing at a missing or malformed session is dead
			// weight; drop it so the next request starts clean.
			if sess == nil {
				m.Renderer.ClearSessionID(w, r)
				sessionID = ""
			}
		}

		switch access.Decide(r.URL.Path, sess) {
		case access.DecisionRedirectLanding:
			m.Renderer.Redirect(w, r, constvars.PathLanding)
			return
		case access.DecisionRedirectDashboard:
			m.Renderer.Redirect(w, r, constvars.PathDashboard)
			return
		}

		ctx := r.Context()
		if sess != nil {
			ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_KEY, sess)
			ctx = context.WithValue(ctx, constvars.CONTEXT_SESSION_ID_KEY, sessionID)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
