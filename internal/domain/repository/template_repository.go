package repository

import (
	"context"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/google/uuid"
)

// TemplateRepository defines the interface for receipt template operations
type TemplateRepository interface {
	Create(ctx context.Context, template *entity.ReceiptTemplate) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error)
	GetDefault(ctx context.Context) (*entity.ReceiptTemplate, error)
	List(ctx context.Context) ([]entity.ReceiptTemplate, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetDefault(ctx context.Context, id uuid.UUID) error
}
