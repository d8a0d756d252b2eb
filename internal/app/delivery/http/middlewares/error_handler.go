package middlewares

import (
	"net/http"
	"runtime/debug"

	"gangosri-portal/internal/pkg/constvars"

	"go.uber.org/zap"
)

func (m *Middlewares) PanicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if recovered := recover(); recovered != nil {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Error("panic recovered",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String(constvars.LoggingEndpointKey, r.URL.Path),
					zap.Any("panic", recovered),
					zap.ByteString("stack", debug.Stack()),
				)
				http.Error(w, constvars.ErrClientSomethingWrongWithApplication, constvars.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
