package models

type InvoiceItem struct {
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type Invoice struct {
	ID            string        `json:"id"`
	InvoiceID     string        `json:"invoice_id"`
	PatientID     string        `json:"patient_id"`
	PatientName   string        `json:"patient_name"`
	Items         []InvoiceItem `json:"items"`
	Subtotal      float64       `json:"subtotal"`
	Tax           float64       `json:"tax"`
	Total         float64       `json:"total"`
	PaymentStatus string        `json:"payment_status"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     string        `json:"created_at,omitempty"`
	CreatedBy     string        `json:"created_by,omitempty"`
}
