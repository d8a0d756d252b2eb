package invoices

import (
	"context"

	"gangosri-portal/internal/pkg/dto/requests"
	"gangosri-portal/internal/pkg/dto/responses"
)

type InvoiceUsecase interface {
	Overview(ctx context.Context, token string) (*responses.BillingPage, error)
	Create(ctx context.Context, token string, request *requests.CreateInvoice) error
}
