package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"gangosri-portal/internal/app/delivery/http/views"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
	"gangosri-portal/internal/pkg/exceptions"

	"go.uber.org/zap"
)

type AuthController struct {
	Log         *zap.Logger
	Renderer    *views.Renderer
	AuthUsecase AuthUsecase
}

var (
	authControllerInstance *AuthController
	onceAuthController     sync.Once
)

func NewAuthController(logger *zap.Logger, renderer *views.Renderer, authUsecase AuthUsecase) *AuthController {
	onceAuthController.Do(func() {
		authControllerInstance = &AuthController{
			Log:         logger,
			Renderer:    renderer,
			AuthUsecase: authUsecase,
		}
	})
	return authControllerInstance
}

func (ctrl *AuthController) LandingPage(w http.ResponseWriter, r *http.Request) {
	ctrl.Renderer.Render(w, r, views.View{
		Page:  "landing",
		Title: "Gangosri HIS",
		Data:  &responses.LoginPage{},
	})
}

func (ctrl *AuthController) LoginPage(w http.ResponseWriter, r *http.Request) {
	ctrl.Renderer.Render(w, r, views.View{
		Page:  "login",
		Title: "Sign In",
		Data:  &responses.LoginPage{},
	})
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if err := r.ParseForm(); err != nil {
		ctrl.renderLoginFailure(w, r, "", exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.Login{
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	sessionID, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		ctrl.Log.Error("AuthController.Login failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if ctx.Err() == context.DeadlineExceeded {
			err = exceptions.ErrServerDeadlineExceeded(ctx.Err())
		}
		ctrl.renderLoginFailure(w, r, request.Email, err)
		return
	}

	if err := ctrl.Renderer.SetSessionID(w, r, sessionID); err != nil {
		ctrl.Log.Error("AuthController.Login failed to set session cookie",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		ctrl.renderLoginFailure(w, r, request.Email, exceptions.ErrHisRequest(constvars.StatusInternalServerError, constvars.ErrClientLoginFailed, r.Method, r.URL.Path))
		return
	}

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessLogin)
	ctrl.Renderer.Redirect(w, r, constvars.PathDashboard)
}

func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AuthUsecase.Logout(ctx, sessionID); err != nil {
		// The cookie is cleared either way; a stale Redis entry just expires.
		ctrl.Log.Warn("AuthController.Logout failed to destroy session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
	}

	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessLogout)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}

func (ctrl *AuthController) renderLoginFailure(w http.ResponseWriter, r *http.Request, email string, err error) {
	ctrl.Renderer.Render(w, r, views.View{
		Page:       "login",
		Title:      "Sign In",
		Data:       &responses.LoginPage{Email: email},
		ToastError: []string{exceptions.ClientMessage(err)},
	})
}
