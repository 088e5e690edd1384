package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role tags for the two-level access model.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an authentication identity in the system
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Profile  *Profile  `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Role     *UserRole `gorm:"foreignKey:UserID" json:"role,omitempty"`
	Receipts []Receipt `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user carries the admin role tag
func (u *User) IsAdmin() bool {
	return u.Role != nil && u.Role.Role == RoleAdmin
}

// RoleName returns the user's role tag, defaulting to plain user
func (u *User) RoleName() string {
	if u.Role == nil {
		return RoleUser
	}
	return u.Role.Role
}

// UserRole associates a user with a role tag (plain user or admin).
// The first-created account is promoted to admin at registration time.
type UserRole struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Role      string    `gorm:"size:50;not null;default:'user'" json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for the UserRole model
func (UserRole) TableName() string {
	return "user_roles"
}
