package repository

import (
	"context"
	"errors"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	domainRepo "github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type templateRepository struct {
	db *gorm.DB
}

// NewTemplateRepository creates a new receipt template repository
func NewTemplateRepository(db *gorm.DB) domainRepo.TemplateRepository {
	return &templateRepository{db: db}
}

func (r *templateRepository) Create(ctx context.Context, template *entity.ReceiptTemplate) error {
	return r.db.WithContext(ctx).Create(template).Error
}

func (r *templateRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	var template entity.ReceiptTemplate
	err := r.db.WithContext(ctx).First(&template, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *templateRepository) GetDefault(ctx context.Context) (*entity.ReceiptTemplate, error) {
	var template entity.ReceiptTemplate
	err := r.db.WithContext(ctx).First(&template, "is_default = ?", true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &template, err
}

func (r *templateRepository) List(ctx context.Context) ([]entity.ReceiptTemplate, error) {
	var templates []entity.ReceiptTemplate
	err := r.db.WithContext(ctx).Order("created_at ASC").Find(&templates).Error
	return templates, err
}

func (r *templateRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.ReceiptTemplate{}, "id = ?", id).Error
}

// SetDefault marks one template as default and clears the flag on the rest
func (r *templateRepository) SetDefault(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entity.ReceiptTemplate{}).
			Where("is_default = ?", true).
			Update("is_default", false).Error; err != nil {
			return err
		}
		return tx.Model(&entity.ReceiptTemplate{}).
			Where("id = ?", id).
			Update("is_default", true).Error
	})
}
