package prescriptions

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

type PrescriptionController struct {
	Log                 *zap.Logger
	Renderer            *views.Renderer
	SessionService      session.SessionService
	PrescriptionUsecase PrescriptionUsecase
}

var (
	prescriptionControllerInstance *PrescriptionController
	oncePrescriptionController     sync.Once
)

func NewPrescriptionController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, prescriptionUsecase PrescriptionUsecase) *PrescriptionController {
	oncePrescriptionController.Do(func() {
		prescriptionControllerInstance = &PrescriptionController{
			Log:                 logger,
			Renderer:            renderer,
			SessionService:      sessionService,
			PrescriptionUsecase: prescriptionUsecase,
		}
	})
	return prescriptionControllerInstance
}

func (ctrl *PrescriptionController) PrescriptionsPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.PrescriptionUsecase.Overview(ctx, sess.Token)
	if err != nil {
		ctrl.Log.Error("PrescriptionController.PrescriptionsPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.Render(w, r, views.View{
			Page:       "prescriptions",
			Title:      "Prescriptions",
			Data:       &responses.PrescriptionsPage{Form: &requests.CreatePrescription{}},
			ToastError: []string{exceptions.ClientMessage(err)},
		})
		return
	}

	page.Form = &requests.CreatePrescription{}
	ctrl.Renderer.Render(w, r, views.View{Page: "prescriptions", Title: "Prescriptions", Data: page})
}

func (ctrl *PrescriptionController) CreatePrescription(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	if err := r.ParseForm(); err != nil {
		ctrl.renderFormFailure(w, r, sess.Token, &requests.CreatePrescription{}, exceptions.ErrCannotParseForm(err))
		return
	}
	request := &requests.CreatePrescription{
		PatientID:    r.PostFormValue("patient_id"),
		EncounterID:  r.PostFormValue("encounter_id"),
		Medications:  parseMedicationRows(r),
		Instructions: r.PostFormValue("instructions"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PrescriptionUsecase.Create(ctx, sess.Token, request); err != nil {
		ctrl.Log.Error("PrescriptionController.CreatePrescription failed",
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

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessCreatePrescription)
	ctrl.Renderer.Redirect(w, r, constvars.PathPrescriptions)
}

// parseMedicationRows collects the repeated medication form fields positionally.
// Rows with an empty name are dropped.
func parseMedicationRows(r *http.Request) []models.Medication {
	names := r.PostForm["medication_name"]
	dosages := r.PostForm["medication_dosage"]
	frequencies := r.PostForm["medication_frequency"]
	durations := r.PostForm["medication_duration"]

	valueAt := func(values []string, i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}

	var medications []models.Medication
	for i, name := range names {
		if name == "" {
			continue
		}
		medications = append(medications, models.Medication{
			Name:      name,
			Dosage:    valueAt(dosages, i),
			Frequency: valueAt(frequencies, i),
			Duration:  valueAt(durations, i),
		})
	}
	return medications
}

func (ctrl *PrescriptionController) renderFormFailure(w http.ResponseWriter, r *http.Request, token string, request *requests.CreatePrescription, cause error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.PrescriptionUsecase.Overview(ctx, token)
	if err != nil {
		page = new(responses.PrescriptionsPage)
	}
	page.Form = request
	page.ShowForm = true

	ctrl.Renderer.Render(w, r, views.View{
		Page:       "prescriptions",
		Title:      "Prescriptions",
		Data:       page,
		ToastError: []string{exceptions.ClientMessage(cause)},
	})
}

func (ctrl *PrescriptionController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("PrescriptionController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
