package request

import "github.com/shopspring/decimal"

// ReceiptItemRequest represents a line item on the receipt form
type ReceiptItemRequest struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateReceiptRequest represents a receipt creation request. Field rules are
// enforced by the service so that violations surface one at a time with the
// exact message for the first failed rule.
type CreateReceiptRequest struct {
	CustomerName  string               `json:"customer_name"`
	MobileNumber  string               `json:"mobile_number"`
	Address       string               `json:"address"`
	Branch        string               `json:"branch"`
	Age           *int                 `json:"age"`
	BloodPressure *string              `json:"blood_pressure"`
	Pulse         *string              `json:"pulse"`
	ReceiptDate   string               `json:"receipt_date"` // YYYY-MM-DD
	Items         []ReceiptItemRequest `json:"items"`
	TaxRate       decimal.Decimal      `json:"tax_rate"`
}

// ReceiptFilterRequest represents receipt listing query parameters
type ReceiptFilterRequest struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Search    string `form:"search"`
	Branch    string `form:"branch"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}
