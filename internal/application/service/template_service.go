package service

import (
	"context"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/google/uuid"
)

// TemplateService manages administrator-defined receipt templates
type TemplateService struct {
	templateRepo repository.TemplateRepository
}

// NewTemplateService creates a new template service
func NewTemplateService(templateRepo repository.TemplateRepository) *TemplateService {
	return &TemplateService{templateRepo: templateRepo}
}

// CreateTemplateInput represents the template creation form. Only the name
// is required; unspecified colors and font fall back to the stock palette.
type CreateTemplateInput struct {
	Name       string
	HeaderBg   string
	HeaderText string
	BodyBg     string
	BodyText   string
	Accent     string
	Font       string
}

// CreateTemplate creates a named visual template
func (s *TemplateService) CreateTemplate(ctx context.Context, input *CreateTemplateInput) (*entity.ReceiptTemplate, error) {
	if input.Name == "" {
		return nil, apperror.NewValidationError("Template name is required")
	}

	template := &entity.ReceiptTemplate{
		Name:       input.Name,
		HeaderBg:   input.HeaderBg,
		HeaderText: input.HeaderText,
		BodyBg:     input.BodyBg,
		BodyText:   input.BodyText,
		Accent:     input.Accent,
		Font:       input.Font,
	}
	template.ApplyDefaults()

	if err := s.templateRepo.Create(ctx, template); err != nil {
		return nil, err
	}
	return template, nil
}

// ListTemplates returns all templates for rendering and administration
func (s *TemplateService) ListTemplates(ctx context.Context) ([]entity.ReceiptTemplate, error) {
	return s.templateRepo.List(ctx)
}

// GetTemplate returns a template by ID
func (s *TemplateService) GetTemplate(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if template == nil {
		return nil, apperror.NewNotFoundError("Template")
	}
	return template, nil
}

// ResolveTemplate returns the requested template, or the default when no ID
// is given, or the built-in stock palette when nothing is persisted yet
func (s *TemplateService) ResolveTemplate(ctx context.Context, id *uuid.UUID) (*entity.ReceiptTemplate, error) {
	if id != nil {
		return s.GetTemplate(ctx, *id)
	}

	template, err := s.templateRepo.GetDefault(ctx)
	if err != nil {
		return nil, err
	}
	if template == nil {
		fallback := &entity.ReceiptTemplate{Name: "Classic"}
		fallback.ApplyDefaults()
		return fallback, nil
	}
	return template, nil
}

// DeleteTemplate removes a template. The default template cannot be deleted.
func (s *TemplateService) DeleteTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Template")
	}
	if template.IsDefault {
		return apperror.NewConflictError("The default template cannot be deleted")
	}
	return s.templateRepo.Delete(ctx, id)
}

// SetDefaultTemplate marks a template as the default
func (s *TemplateService) SetDefaultTemplate(ctx context.Context, id uuid.UUID) error {
	template, err := s.templateRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if template == nil {
		return apperror.NewNotFoundError("Template")
	}
	return s.templateRepo.SetDefault(ctx, id)
}
