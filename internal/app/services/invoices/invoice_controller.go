package invoices

import (
	"context"
	"net/http"
	"strconv"
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

type InvoiceController struct {
	Log            *zap.Logger
	Renderer       *views.Renderer
	SessionService session.SessionService
	InvoiceUsecase InvoiceUsecase
}

var (
	invoiceControllerInstance *InvoiceController
	onceInvoiceController     sync.Once
)

func NewInvoiceController(logger *zap.Logger, renderer *views.Renderer, sessionService session.SessionService, invoiceUsecase InvoiceUsecase) *InvoiceController {
	onceInvoiceController.Do(func() {
		invoiceControllerInstance = &InvoiceController{
			Log:            logger,
			Renderer:       renderer,
			SessionService: sessionService,
			InvoiceUsecase: invoiceUsecase,
		}
	})
	return invoiceControllerInstance
}

func (ctrl *InvoiceController) BillingPage(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.InvoiceUsecase.Overview(ctx, sess.Token)
	if err != nil {
		ctrl.Log.Error("InvoiceController.BillingPage failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		if exceptions.IsUnauthorized(err) {
			ctrl.expireSession(w, r)
			return
		}
		ctrl.Renderer.Render(w, r, views.View{
			Page:       "billing",
			Title:      "Billing",
			Data:       &responses.BillingPage{Form: &requests.CreateInvoice{}},
			ToastError: []string{exceptions.ClientMessage(err)},
		})
		return
	}

	page.Form = &requests.CreateInvoice{}
	ctrl.Renderer.Render(w, r, views.View{Page: "billing", Title: "Billing", Data: page})
}

func (ctrl *InvoiceController) CreateInvoice(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	sess, _ := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)

	if err := r.ParseForm(); err != nil {
		ctrl.renderFormFailure(w, r, sess.Token, &requests.CreateInvoice{}, exceptions.ErrCannotParseForm(err))
		return
	}
	tax, _ := strconv.ParseFloat(r.PostFormValue("tax"), 64)
	request := &requests.CreateInvoice{
		PatientID:     r.PostFormValue("patient_id"),
		Items:         parseInvoiceItemRows(r),
		Tax:           tax,
		PaymentMethod: r.PostFormValue("payment_method"),
		Notes:         r.PostFormValue("notes"),
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.InvoiceUsecase.Create(ctx, sess.Token, request); err != nil {
		ctrl.Log.Error("InvoiceController.CreateInvoice failed",
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

	ctrl.Renderer.FlashSuccess(w, r, constvars.SuccessCreateInvoice)
	ctrl.Renderer.Redirect(w, r, constvars.PathBilling)
}

// parseInvoiceItemRows collects the repeated line-item fields positionally.
// Rows with an empty description are dropped.
func parseInvoiceItemRows(r *http.Request) []models.InvoiceItem {
	descriptions := r.PostForm["item_description"]
	amounts := r.PostForm["item_amount"]

	var items []models.InvoiceItem
	for i, description := range descriptions {
		if description == "" {
			continue
		}
		var amount float64
		if i < len(amounts) {
			amount, _ = strconv.ParseFloat(amounts[i], 64)
		}
		items = append(items, models.InvoiceItem{Description: description, Amount: amount})
	}
	return items
}

func (ctrl *InvoiceController) renderFormFailure(w http.ResponseWriter, r *http.Request, token string, request *requests.CreateInvoice, cause error) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, err := ctrl.InvoiceUsecase.Overview(ctx, token)
	if err != nil {
		page = new(responses.BillingPage)
	}
	page.Form = request
	page.ShowForm = true

	ctrl.Renderer.Render(w, r, views.View{
		Page:       "billing",
		Title:      "Billing",
		Data:       page,
		ToastError: []string{exceptions.ClientMessage(cause)},
	})
}

func (ctrl *InvoiceController) expireSession(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := r.Context().Value(constvars.CONTEXT_SESSION_ID_KEY).(string)
	if sessionID != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()
		if err := ctrl.SessionService.Destroy(ctx, sessionID); err != nil {
			ctrl.Log.Warn("InvoiceController failed to destroy expired session", zap.Error(err))
		}
	}
	ctrl.Renderer.ClearSessionID(w, r)
	ctrl.Renderer.FlashError(w, r, constvars.ErrClientNotLoggedIn)
	ctrl.Renderer.Redirect(w, r, constvars.PathLogin)
}
