package appointments

import (
	"context"
	"fmt"
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

type AppointmentController struct {
	Log                *zap.Logger
	Renderer           *views.Renderer
	SessionService     session.SessionService
	AppointmentUsecase AppointmentUsecase
}

var (
	appointmentControllerInstance *AppointmentController
	onceAppointmentController     sync.Once
)

func NewAppointmentController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, appointmentUsecase AppointmentUsecase) *AppointmentController {
	onceAppointmentController.Do(func() {
		appointmentControllerInstance = &AppointmentController{
			Log:                logger,
			Renderer:           renderer,
			SessionService:     sessionService,
			AppointmentUsecase: appointmentUsecase,
		}
	})
	return appointmentControllerInstance
}

func (ctrl *AppointmentController) AppointmentsPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	date := r.URL.Query().Get(constvars.QueryParamDate)
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.AppointmentUsecase.Overview(ctx, sess.Token, date)
	if err != nil {
		ctrl.Log.Error("AppointmentController.AppointmentsPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.Render(w, r, views.View{
			Page:       "appointments",
			Title:      "Appointments",
			Data:       &responses.AppointmentsPage{Date: date, Form: &requests.CreateAppointment{}},
			ToastError: []string{exceptions.ClientMessage(err)},
		})
		return
	}

	page.Form = &requests.CreateAppointment{AppointmentDate: date}
	ctrl.Renderer.Render(w, r, views.View{Page: "appointments", Title: "Appointments", Data: page})
}

func (ctrl *AppointmentController) ScheduleAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	if err := r.ParseForm(); err != nil {
		ctrl.renderFormFailure(w, r, sess.Token, &requests.CreateAppointment{}, exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.CreateAppointment{
		PatientID:       r.PostFormValue("patient_id"),
		DoctorID:        r.PostFormValue("doctor_id"),
		AppointmentDate: r.PostFormValue("appointment_date"),
		AppointmentTime: r.PostFormValue("appointment_time"),
		Reason:          r.PostFormValue("reason"),
		Notes:           r.PostFormValue("notes"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.Schedule(ctx, sess.Token, request); err != nil {
		ctrl.Log.Error("AppointmentController.ScheduleAppointment failed",
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

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessScheduleAppointment)
	ctrl.Renderer.Redirect(w, r, constvars.PathAppointments)
}

func (ctrl *AppointmentController) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	appointmentID := chi.URLParam(r, "appointmentID")
	status := r.PostFormValue(constvars.QueryParamStatus)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.SetStatus(ctx, sess.Token, appointmentID, status); err != nil {
		ctrl.Log.Error("AppointmentController.UpdateAppointmentStatus failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.FlashError(w, r, exceptions.ClientMessage(err))
		ctrl.Renderer.Redirect(w, r, constvars.PathAppointments)
		return
	}

	ctrl.Renderer.FlashSuccess(w, r, fmt.Sprintf(constvars.SuccessAppointmentStatus, status))
	ctrl.Renderer.Redirect(w, r, constvars.PathAppointments)
}

func (ctrl *AppointmentController) renderFormFailure(w http.ResponseWriter, r *http.Request, token string, request *requests.CreateAppointment, cause error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.AppointmentUsecase.Overview(ctx, token, request.AppointmentDate)
	if err != nil {
		page = &responses.AppointmentsPage{Date: request.AppointmentDate}
	}
	page.Form = request
	page.ShowForm = true

	ctrl.Renderer.Render(w, r, views.View{
		Page:       "appointments",
		Title:      "Appointments",
		Data:       page,
		ToastError: []string{exceptions.ClientMessage(cause)},
	})
}

func (ctrl *AppointmentController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("AppointmentController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
