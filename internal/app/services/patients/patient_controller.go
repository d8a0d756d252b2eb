package patients

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

type PatientController struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	SessionService session.SessionService
	PatientUsecase PatientUsecase
}

var (
	patientControllerInstance *PatientController
	oncePatientController     sync.Once
)

func NewPatientController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, patientUsecase PatientUsecase) *PatientController {
	oncePatientController.Do(func() {
		patientControllerInstance = &PatientController{
			Log:            logger,
			Renderer:       renderer,
			SessionService: sessionService,
			PatientUsecase: patientUsecase,
		}
	})
	return patientControllerInstance
}

func (ctrl *PatientController) PatientsPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	search := r.URL.Query().Get(constvars.QueryParamSearch)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page := &responses.PatientsPage{Search: search, Form: &requests.CreatePatient{}}
	view := views.View{Page: "patients", Title: "Patients", Data: page}

	patientList, err := ctrl.PatientUsecase.List(ctx, sess.Token, search)
	if err != nil {
		ctrl.Log.Error("PatientController.PatientsPage failed",
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

	page.Patients = patientList
	ctrl.Renderer.Render(w, r, view)
}

func (ctrl *PatientController) PatientProfilePage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	patientID := chi.URLParam(r, "patientID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	profile, err := ctrl.PatientUsecase.Profile(ctx, sess.Token, patientID)
	if err != nil {
		ctrl.Log.Error("PatientController.PatientProfilePage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.Render(w, r, views.View{
			Page:       "patient_profile",
			Title:      "Patient Profile",
			Data:       &responses.PatientProfilePage{},
			ToastError: []string{exceptions.ClientMessage(err)},
		})
		return
	}

	ctrl.Renderer.Render(w, r, views.View{
		Page:  "patient_profile",
		Title: profile.Patient.FullName,
		Data:  profile,
	})
}

func (ctrl *PatientController) RegisterPatient(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	if err := r.ParseForm(); err != nil {
		ctrl.renderFormFailure(w, r, sess.Token, &requests.CreatePatient{}, exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.CreatePatient{
		FullName:         r.PostFormValue("full_name"),
		DateOfBirth:      r.PostFormValue("date_of_birth"),
		Gender:           r.PostFormValue("gender"),
		Phone:            r.PostFormValue("phone"),
		Email:            r.PostFormValue("email"),
		Address:          r.PostFormValue("address"),
		BloodGroup:       r.PostFormValue("blood_group"),
		EmergencyContact: r.PostFormValue("emergency_contact"),
		InsuranceInfo:    r.PostFormValue("insurance_info"),
		MedicalHistory:   r.PostFormValue("medical_history"),
		Allergies:        r.PostFormValue("allergies"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PatientUsecase.Register(ctx, sess.Token, request); err != nil {
		ctrl.Log.Error("PatientController.RegisterPatient failed",
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

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessRegisterPatient)
	ctrl.Renderer.Redirect(w, r, constvars.PathPatients)
}

// renderFormFailure re-renders the patients page with the submitted values
// still in the form. The list fetch is best effort: the failure toast is
// about the registration, not the list.
func (ctrl *PatientController) renderFormFailure(w http.ResponseWriter, r *http.Request, token string, request *requests.CreatePatient, cause error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page := &responses.PatientsPage{Form: request, ShowForm: true}
	if patientList, err := ctrl.PatientUsecase.List(ctx, token, ""); err == nil {
		page.Patients = patientList
	}

	ctrl.Renderer.Render(w, r, views.View{
		Page:       "patients",
		Title:      "Patients",
		Data:       page,
		ToastError: []string{exceptions.ClientMessage(cause)},
	})
}

func (ctrl *PatientController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("PatientController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
