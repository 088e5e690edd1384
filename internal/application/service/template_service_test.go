package service_test

import (
	"context"
	"testing"

	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/google/uuid"
)

// fakeTemplateRepo is an in-memory TemplateRepository for service tests
type fakeTemplateRepo struct {
	templates map[uuid.UUID]*entity.ReceiptTemplate
}

func newFakeTemplateRepo() *fakeTemplateRepo {
	return &fakeTemplateRepo{templates: make(map[uuid.UUID]*entity.ReceiptTemplate)}
}

func (f *fakeTemplateRepo) Create(ctx context.Context, template *entity.ReceiptTemplate) error {
	if template.ID == uuid.Nil {
		template.ID = uuid.New()
	}
	f.templates[template.ID] = template
	return nil
}

func (f *fakeTemplateRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.ReceiptTemplate, error) {
	return f.templates[id], nil
}

func (f *fakeTemplateRepo) GetDefault(ctx context.Context) (*entity.ReceiptTemplate, error) {
	for _, t := range f.templates {
		if t.IsDefault {
			return t, nil
		}
	}
	return nil, nil
}

func (f *fakeTemplateRepo) List(ctx context.Context) ([]entity.ReceiptTemplate, error) {
	out := make([]entity.ReceiptTemplate, 0, len(f.templates))
	for _, t := range f.templates {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTemplateRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.templates, id)
	return nil
}

func (f *fakeTemplateRepo) SetDefault(ctx context.Context, id uuid.UUID) error {
	for _, t := range f.templates {
		t.IsDefault = t.ID == id
	}
	return nil
}

func TestCreateTemplateAppliesDefaults(t *testing.T) {
	svc := service.NewTemplateService(newFakeTemplateRepo())

	template, err := svc.CreateTemplate(context.Background(), &service.CreateTemplateInput{
		Name:   "Minimal",
		Accent: "#c53030",
	})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}

	if template.Accent != "#c53030" {
		t.Errorf("accent = %q, explicit value should survive", template.Accent)
	}
	if template.HeaderBg == "" || template.BodyText == "" || template.Font == "" {
		t.Errorf("unset fields should get stock values: %+v", template)
	}
}

func TestCreateTemplateRequiresName(t *testing.T) {
	svc := service.NewTemplateService(newFakeTemplateRepo())

	_, err := svc.CreateTemplate(context.Background(), &service.CreateTemplateInput{})
	if apperror.GetAppError(err).Code != 422 {
		t.Fatalf("err = %v, want validation error", err)
	}
}

func TestResolveTemplateFallsBackToStockPalette(t *testing.T) {
	svc := service.NewTemplateService(newFakeTemplateRepo())

	template, err := svc.ResolveTemplate(context.Background(), nil)
	if err != nil {
		t.Fatalf("ResolveTemplate: %v", err)
	}
	if template.Name != "Classic" {
		t.Errorf("fallback name = %q, want Classic", template.Name)
	}
	if template.HeaderBg == "" {
		t.Error("fallback template has no colors")
	}
}

func TestResolveTemplatePrefersDefault(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := service.NewTemplateService(repo)

	first, err := svc.CreateTemplate(context.Background(), &service.CreateTemplateInput{Name: "First"})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	if err := svc.SetDefaultTemplate(context.Background(), first.ID); err != nil {
		t.Fatalf("SetDefaultTemplate: %v", err)
	}

	resolved, err := svc.ResolveTemplate(context.Background(), nil)
	if err != nil {
		t.Fatalf("ResolveTemplate: %v", err)
	}
	if resolved.ID != first.ID {
		t.Errorf("resolved %s, want the default %s", resolved.ID, first.ID)
	}
}

func TestDeleteDefaultTemplateConflicts(t *testing.T) {
	repo := newFakeTemplateRepo()
	svc := service.NewTemplateService(repo)

	template, err := svc.CreateTemplate(context.Background(), &service.CreateTemplateInput{Name: "Keeper"})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	if err := svc.SetDefaultTemplate(context.Background(), template.ID); err != nil {
		t.Fatalf("SetDefaultTemplate: %v", err)
	}

	err = svc.DeleteTemplate(context.Background(), template.ID)
	if apperror.GetAppError(err).Code != 409 {
		t.Fatalf("err = %v, want conflict", err)
	}

	other, err := svc.CreateTemplate(context.Background(), &service.CreateTemplateInput{Name: "Disposable"})
	if err != nil {
		t.Fatalf("CreateTemplate: %v", err)
	}
	if err := svc.DeleteTemplate(context.Background(), other.ID); err != nil {
		t.Fatalf("deleting a non-default template: %v", err)
	}
}
