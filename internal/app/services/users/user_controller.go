package users

import (
	"context"
	"net/http"
	"sync"
	"time"

	"gangosri-portal/internal/app/delivery/http/views"
	"gangosri-portal/internal/app/models"
	"gangosri-portal/internal/app/services/core/session"
	"gangosri-portal/internal/pkg/constvars"
	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
	"gangosri-portal/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	SessionService session.SessionService
	UserUsecase    UserUsecase
}

var (
	userControllerInstance *UserController
	onceUserController     sync.Once
)

func NewUserController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, userUsecase UserUsecase) *UserController {
	onceUserController.Do(func() {
		userControllerInstance = &UserController{
			Log:            logger,
			Renderer:       renderer,
			SessionService: sessionService,
			UserUsecase:    userUsecase,
		}
	})
	return userControllerInstance
}

func (ctrl *UserController) UserManagementPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page := &responses.UserManagementPage{Form: &requests.RegisterUser{}}
	view := views.View{Page: "user_management", Title: "User Management", Data: page}

	userList, err := ctrl.UserUsecase.List(ctx, sess.Token)
	if err != nil {
		ctrl.Log.Error("UserController.UserManagementPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
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

	page.Users = userList
	ctrl.Renderer.Render(w, r, view)
}

func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	if err := r.ParseForm(); err != nil {
		ctrl.renderFormFailure(w, r, sess.Token, &requests.RegisterUser{}, exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.RegisterUser{
		Email:          r.PostFormValue("email"),
		Password:       r.PostFormValue("password"),
		FullName:       r.PostFormValue("full_name"),
		Role:           r.PostFormValue("role"),
		EmployeeID:     r.PostFormValue("employee_id"),
		Specialization: r.PostFormValue("specialization"),
		Phone:          r.PostFormValue("phone"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UserUsecase.Register(ctx, sess.Token, request); err != nil {
		ctrl.Log.Error("UserController.CreateUser failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.renderFormFailure(w, r, sess.Token, request, err)
		return
	}

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessCreateUser)
	ctrl.Renderer.Redirect(w, r, constvars.PathUserManagement)
}

func (ctrl *UserController) UpdateUserStatus(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	userID := chi.URLParam(r, "userID")
	isActive := r.PostFormValue("is_active") == "true"

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UserUsecase.SetStatus(ctx, sess.Token, userID, isActive); err != nil {
		ctrl.Log.Error("UserController.UpdateUserStatus failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.FlashError(w, r, exceptions.ClientMessage(err))
		ctrl.Renderer.Redirect(w, r, constvars.PathUserManagement)
		return
	}

	if isActive {
		ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessUserActivated)
	} else {
		ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessUserDeactivated)
	}
	ctrl.Renderer.Redirect(w, r, constvars.PathUserManagement)
}

func (ctrl *UserController) renderFormFailure(w http.ResponseWriter, r *http.Request, token string, request *requests.RegisterUser, cause error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Never echo a password back into the page.
	request.Password = ""

	page := &responses.UserManagementPage{Form: request, ShowForm: true}
	if userList, err := ctrl.UserUsecase.List(ctx, token); err == nil {
		page.Users = userList
	}

	ctrl.Renderer.Render(w, r, views.View{
		Page:       "user_management",
		Title:      "User Management",
		Data:       page,
		ToastError: []string{exceptions.ClientMessage(cause)},
	})
}

func (ctrl *UserController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("UserController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
