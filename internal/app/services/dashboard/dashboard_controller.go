package dashboard

import (
	"context"
	"net/http"
	"sync"
	"time"

	"gangosri-portal/internal/app/delivery/http/views"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/app/services/core/session"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/responses"
	"gangosri-portal/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	Renderer         *views.Renderer
	SessionService   session.SessionService
	DashboardUsecase DashboardUsecase
}

var (
	dashboardControllerInstance *DashboardController
	onceDashboardController     sync.Once
)

func NewDashboardController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, dashboardUsecase DashboardUsecase) *DashboardController {
	onceDashboardController.Do(func() {
		dashboardControllerInstance = &DashboardController{
			Log:              logger,
			Renderer:         renderer,
			SessionService:   sessionService,
			DashboardUsecase: dashboardUsecase,
		}
	})
	return dashboardControllerInstance
}

func (ctrl *DashboardController) DashboardPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	view := views.View{Page: "dashboard", Title: "Dashboard", Data: &responses.DashboardPage{}}

	stats, err := ctrl.DashboardUsecase.Stats(ctx, sess.Token)
	if err != nil {
		ctrl.Log.Error("DashboardController.DashboardPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserRoleKey, sess.User.Role),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		view.ToastError = []string{exceptions.ClientMessage(err)}
		ctrl.Renderer.Render(w, r, view)
		return
	}

	view.Data = &responses.DashboardPage{Stats: *stats}
	ctrl.Renderer.Render(w, r, view)
}

func (ctrl *DashboardController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("DashboardController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
