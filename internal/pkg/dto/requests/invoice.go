package requests

import "gangosri-portal/internal/app/models"

type CreateInvoice struct {
	PatientID     string               `json:"patient_id" validate:"required"`
	Items         []models.InvoiceItem `json:"items" validate:"required,min=1"`
	Tax           float64              `json:"tax"`
	PaymentMethod string               `json:"payment_method,omitempty"`
	Notes         string               `json:"notes,omitempty"`
}

// Subtotal sums the line-item amounts for the live preview. The backend
// remains the source of truth for the persisted totals.
func (r *CreateInvoice) Subtotal() float64 {
	var sum float64
	for _, item := range r.Items {
		sum += item.Amount
	}
	return sum
}

func (r *CreateInvoice) Total() float64 {
	return r.Subtotal() + r.Tax
}
