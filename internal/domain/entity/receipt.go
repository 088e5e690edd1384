package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ReceiptItem is a single line item embedded in a receipt. Items have no
// lifecycle of their own; they live and die with the owning receipt.
type ReceiptItem struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// ReceiptItems is stored as an ordered JSONB array on the receipt row.
type ReceiptItems []ReceiptItem

// Receipt represents a persisted, itemized bill record tied to one customer
// interaction. A receipt is immutable after creation except for deletion and
// is owned exclusively by the user who submitted it.
type Receipt struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	ReceiptNo     string          `gorm:"size:100;unique;not null" json:"receipt_no"`
	CustomerName  string          `gorm:"size:100;not null" json:"customer_name"`
	MobileNumber  string          `gorm:"size:10;not null" json:"mobile_number"`
	Address       string          `gorm:"size:200" json:"address"`
	Branch        string          `gorm:"size:100;not null;index" json:"branch"`
	Age           *int            `json:"age,omitempty"`
	BloodPressure *string         `gorm:"size:20" json:"blood_pressure,omitempty"`
	Pulse         *string         `gorm:"size:20" json:"pulse,omitempty"`
	ReceiptDate   time.Time       `gorm:"type:date;not null" json:"receipt_date"`
	Items         ReceiptItems    `gorm:"type:jsonb;serializer:json;not null" json:"items"`
	TaxRate       decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"tax_rate"`
	SubTotal      decimal.Decimal `gorm:"type:numeric;not null" json:"subtotal"`
	TaxAmount     decimal.Decimal `gorm:"type:numeric;not null" json:"tax_amount"`
	TotalAmount   decimal.Decimal `gorm:"type:numeric;not null" json:"total_amount"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new receipt
func (r *Receipt) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Receipt model
func (Receipt) TableName() string {
	return "receipts"
}

// ComputeTotals derives subtotal, tax amount and total from the line items
// and a percentage tax rate. Values keep full precision; two-decimal
// formatting happens only at render time.
//
//	subtotal = Σ quantity × price
//	tax      = subtotal × rate / 100
//	total    = subtotal + tax
func ComputeTotals(items []ReceiptItem, taxRate decimal.Decimal) (subtotal, tax, total decimal.Decimal) {
	subtotal = decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	tax = subtotal.Mul(taxRate).Div(decimal.NewFromInt(100))
	total = subtotal.Add(tax)
	return subtotal, tax, total
}
