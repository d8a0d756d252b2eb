package encounters

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

	"go.uber.org/zap"
)

type EncounterController struct {
	Log              *zap.Logger
	Renderer         *views.Renderer
	SessionService   session.SessionService
	EncounterUsecase EncounterUsecase
}

var (
	encounterControllerInstance *EncounterController
	onceEncounterController     sync.Once
)

func NewEncounterController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, encounterUsecase EncounterUsecase) *EncounterController {
	onceEncounterController.Do(func() {
		encounterControllerInstance = &EncounterController{
			Log:              logger,
			Renderer:         renderer,
			SessionService:   sessionService,
			EncounterUsecase: encounterUsecase,
		}
	})
	return encounterControllerInstance
}

func (ctrl *EncounterController) ConsultationPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.EncounterUsecase.Overview(ctx, sess.Token)
	if err != nil {
		ctrl.Log.Error("EncounterController.ConsultationPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.Render(w, r, views.View{
			Page:       "consultation",
			Title:      "Consultation",
			Data:       &responses.ConsultationPage{Form: &requests.CreateEncounter{}},
			ToastError: []string{exceptions.ClientMessage(err)},
		})
		return
	}

	page.Form = &requests.CreateEncounter{}
	ctrl.Renderer.Render(w, r, views.View{Page: "consultation", Title: "Consultation", Data: page})
}

func (ctrl *EncounterController) SaveConsultationNotes(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	if err := r.ParseForm(); err != nil {
		ctrl.renderFormFailure(w, r, sess.Token, &requests.CreateEncounter{}, exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.CreateEncounter{
		PatientID:      r.PostFormValue("patient_id"),
		AppointmentID:  r.PostFormValue("appointment_id"),
		ChiefComplaint: r.PostFormValue("chief_complaint"),
		Vitals: models.Vitals{
			Temperature:      r.PostFormValue("temperature"),
			BloodPressure:    r.PostFormValue("blood_pressure"),
			HeartRate:        r.PostFormValue("heart_rate"),
			RespiratoryRate:  r.PostFormValue("respiratory_rate"),
			OxygenSaturation: r.PostFormValue("oxygen_saturation"),
		},
		Diagnosis:     r.PostFormValue("diagnosis"),
		ClinicalNotes: r.PostFormValue("clinical_notes"),
		TreatmentPlan: r.PostFormValue("treatment_plan"),
		FollowUp:      r.PostFormValue("follow_up"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.EncounterUsecase.SaveNotes(ctx, sess.Token, request); err != nil {
		ctrl.Log.Error("EncounterController.SaveConsultationNotes failed",
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

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessSaveConsultation)
	ctrl.Renderer.Redirect(w, r, constvars.PathConsultation)
}

func (ctrl *EncounterController) renderFormFailure(w http.ResponseWriter, r *http.Request, token string, request *requests.CreateEncounter, cause error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.EncounterUsecase.Overview(ctx, token)
	if err != nil {
		page = new(responses.ConsultationPage)
	}
	page.Form = request
	page.ShowForm = true

	ctrl.Renderer.Render(w, r, views.View{
		Page:       "consultation",
		Title:      "Consultation",
		Data:       page,
		ToastError: []string{exceptions.ClientMessage(cause)},
	})
}

func (ctrl *EncounterController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("EncounterController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
