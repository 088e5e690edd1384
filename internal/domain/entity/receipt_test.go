package entity_test

import (
	"testing"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

func TestComputeTotals(t *testing.T) {
	tests := []struct {
		name         string
		items        []entity.ReceiptItem
		taxRate      string
		wantSubtotal string
		wantTax      string
		wantTotal    string
	}{
		{
			name: "quantity times price with percent tax",
			items: []entity.ReceiptItem{
				{Name: "Cleaning", Quantity: 1, Price: decimal.NewFromInt(500)},
				{Name: "X-Ray", Quantity: 2, Price: decimal.NewFromInt(150)},
			},
			taxRate:      "18",
			wantSubtotal: "800.00",
			wantTax:      "144.00",
			wantTotal:    "944.00",
		},
		{
			name: "zero tax rate",
			items: []entity.ReceiptItem{
				{Name: "Consultation", Quantity: 3, Price: decimal.NewFromInt(250)},
			},
			taxRate:      "0",
			wantSubtotal: "750.00",
			wantTax:      "0.00",
			wantTotal:    "750.00",
		},
		{
			name: "fractional prices stay exact",
			items: []entity.ReceiptItem{
				{Name: "Dressing", Quantity: 3, Price: decimal.RequireFromString("33.33")},
			},
			taxRate:      "10",
			wantSubtotal: "99.99",
			wantTax:      "10.00",
			wantTotal:    "109.99",
		},
		{
			name:         "no items",
			items:        nil,
			taxRate:      "18",
			wantSubtotal: "0.00",
			wantTax:      "0.00",
			wantTotal:    "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate := decimal.RequireFromString(tt.taxRate)
			subtotal, tax, total := entity.ComputeTotals(tt.items, rate)

			if got := subtotal.StringFixed(2); got != tt.wantSubtotal {
				t.Errorf("subtotal = %s, want %s", got, tt.wantSubtotal)
			}
			if got := tax.Round(2).StringFixed(2); got != tt.wantTax {
				t.Errorf("tax = %s, want %s", got, tt.wantTax)
			}
			if got := total.Round(2).StringFixed(2); got != tt.wantTotal {
				t.Errorf("total = %s, want %s", got, tt.wantTotal)
			}

			if !subtotal.Add(tax).Equal(total) {
				t.Errorf("total %s is not subtotal %s plus tax %s", total, subtotal, tax)
			}
		})
	}
}
