package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile holds the user-facing account details shown on the profile page.
// It is created automatically when an account is created and mutated only by
// the owning user. Email is denormalized from the auth identity.
type Profile struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	DisplayName string    `gorm:"size:255;not null" json:"display_name"`
	Phone       string    `gorm:"size:50" json:"phone"`
	Email       string    `gorm:"size:255;not null" json:"email"`
	PhotoPath   *string   `gorm:"size:255" json:"photo_path,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new profile
func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Profile model
func (Profile) TableName() string {
	return "profiles"
}
