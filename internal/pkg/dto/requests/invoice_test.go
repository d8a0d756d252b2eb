package requests

import (
	"testing"

	"gangosri-portal/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateInvoiceTotals(t *testing.T) {
	t.Run("subtotal plus tax", func(t *testing.T) {
		request := &CreateInvoice{
			Items: []models.InvoiceItem{
				{Description: "Consultation", Amount: 100},
				{Description: "X-Ray", Amount: 250.50},
			},
			Tax: 25,
		}
		assert.InDelta(t, 350.50, request.Subtotal(), 0.001)
		assert.InDelta(t, 375.50, request.Total(), 0.001)
	})

	t.Run("no items", func(t *testing.T) {
		request := &CreateInvoice{Tax: 10}
		assert.Zero(t, request.Subtotal())
		assert.InDelta(t, 10, request.Total(), 0.001)
	})
}
