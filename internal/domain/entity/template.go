package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReceiptTemplate stores administrator-defined visual styling for receipt
// rendering. It only affects presentation (screen/print/PDF), never the
// persisted amounts.
type ReceiptTemplate struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name       string    `gorm:"size:150;not null" json:"name"`
	HeaderBg   string    `gorm:"size:20;not null" json:"header_bg"`
	HeaderText string    `gorm:"size:20;not null" json:"header_text"`
	BodyBg     string    `gorm:"size:20;not null" json:"body_bg"`
	BodyText   string    `gorm:"size:20;not null" json:"body_text"`
	Accent     string    `gorm:"size:20;not null" json:"accent"`
	Font       string    `gorm:"size:100;not null" json:"font"`
	IsDefault  bool      `gorm:"not null;default:false" json:"is_default"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new template
func (t *ReceiptTemplate) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ReceiptTemplate model
func (ReceiptTemplate) TableName() string {
	return "receipt_templates"
}

// ApplyDefaults fills any unspecified colors and font with the stock palette.
// Template creation validates only that a name is present.
func (t *ReceiptTemplate) ApplyDefaults() {
	if t.HeaderBg == "" {
		t.HeaderBg = "#1e3a5f"
	}
	if t.HeaderText == "" {
		t.HeaderText = "#ffffff"
	}
	if t.BodyBg == "" {
		t.BodyBg = "#ffffff"
	}
	if t.BodyText == "" {
		t.BodyText = "#1f2933"
	}
	if t.Accent == "" {
		t.Accent = "#2f855a"
	}
	if t.Font == "" {
		t.Font = "Helvetica"
	}
}
