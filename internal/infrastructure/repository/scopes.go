package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ctxKey string

const (
	// OwnerIDKey is the context key for the authenticated owner's user ID
	OwnerIDKey ctxKey = "owner_id"
	// SkipOwnerScopeKey is the context key for skipping owner scoping (admin)
	SkipOwnerScopeKey ctxKey = "skip_owner_scope"
)

// OwnerScope returns a GORM scope that restricts rows to the authenticated
// owner. Row-level ownership is enforced on every receipt query. If the
// context misses the owner ID the scope fails safe and returns no rows.
// Admin listings set SkipOwnerScopeKey to read across owners.
func OwnerScope(ctx context.Context) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if skip, ok := ctx.Value(SkipOwnerScopeKey).(bool); ok && skip {
			return db
		}

		ownerID, ok := ctx.Value(OwnerIDKey).(uuid.UUID)
		if !ok || ownerID == uuid.Nil {
			return db.Where("1 = 0")
		}
		return db.Where("user_id = ?", ownerID)
	}
}

// WithOwner adds the authenticated owner's ID to context
func WithOwner(ctx context.Context, ownerID uuid.UUID) context.Context {
	return context.WithValue(ctx, OwnerIDKey, ownerID)
}

// WithSkipOwnerScope adds the skip flag to context (admin listings)
func WithSkipOwnerScope(ctx context.Context, skip bool) context.Context {
	return context.WithValue(ctx, SkipOwnerScopeKey, skip)
}

// GetOwnerID extracts the owner ID from context
func GetOwnerID(ctx context.Context) (uuid.UUID, bool) {
	ownerID, ok := ctx.Value(OwnerIDKey).(uuid.UUID)
	return ownerID, ok
}
