package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeReceiptRepo is an in-memory ReceiptRepository for service tests
type fakeReceiptRepo struct {
	receipts map[uuid.UUID]*entity.Receipt
}

func newFakeReceiptRepo() *fakeReceiptRepo {
	return &fakeReceiptRepo{receipts: make(map[uuid.UUID]*entity.Receipt)}
}

func (f *fakeReceiptRepo) Create(ctx context.Context, receipt *entity.Receipt) error {
	if receipt.ID == uuid.Nil {
		receipt.ID = uuid.New()
	}
	receipt.CreatedAt = time.Now()
	f.receipts[receipt.ID] = receipt
	return nil
}

func (f *fakeReceiptRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Receipt, error) {
	return f.receipts[id], nil
}

func (f *fakeReceiptRepo) List(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) ([]entity.Receipt, int64, error) {
	var out []entity.Receipt
	for _, r := range f.receipts {
		if r.UserID == userID {
			out = append(out, *r)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeReceiptRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.receipts, id)
	return nil
}

func (f *fakeReceiptRepo) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, r := range f.receipts {
		if r.UserID == userID {
			n++
		}
	}
	return n, nil
}

func validInput(userID uuid.UUID) *service.CreateReceiptInput {
	return &service.CreateReceiptInput{
		UserID:       userID,
		CustomerName: "Asha Verma",
		MobileNumber: "9876543210",
		Address:      "12 MG Road",
		Branch:       "Indiranagar",
		ReceiptDate:  time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Items: []service.ReceiptItemInput{
			{Name: "Cleaning", Quantity: 1, Price: decimal.NewFromInt(500)},
			{Name: "X-Ray", Quantity: 2, Price: decimal.NewFromInt(150)},
		},
		TaxRate: decimal.NewFromInt(18),
	}
}

func TestCreateReceiptValidationOrder(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name    string
		mutate  func(in *service.CreateReceiptInput)
		wantMsg string
	}{
		{
			name: "missing name reported before bad mobile",
			mutate: func(in *service.CreateReceiptInput) {
				in.CustomerName = ""
				in.MobileNumber = "12"
			},
			wantMsg: "Customer name is required",
		},
		{
			name: "name over limit",
			mutate: func(in *service.CreateReceiptInput) {
				in.CustomerName = strings.Repeat("a", 101)
			},
			wantMsg: "Customer name must be at most 100 characters",
		},
		{
			name: "mobile too short",
			mutate: func(in *service.CreateReceiptInput) {
				in.MobileNumber = "987654321"
			},
			wantMsg: "Mobile number must be exactly 10 digits",
		},
		{
			name: "mobile with letters",
			mutate: func(in *service.CreateReceiptInput) {
				in.MobileNumber = "98765x3210"
			},
			wantMsg: "Mobile number must be exactly 10 digits",
		},
		{
			name: "bad mobile reported before missing address",
			mutate: func(in *service.CreateReceiptInput) {
				in.MobileNumber = "12"
				in.Address = ""
			},
			wantMsg: "Mobile number must be exactly 10 digits",
		},
		{
			name: "address over limit",
			mutate: func(in *service.CreateReceiptInput) {
				in.Address = strings.Repeat("a", 201)
			},
			wantMsg: "Address must be at most 200 characters",
		},
		{
			name: "missing branch",
			mutate: func(in *service.CreateReceiptInput) {
				in.Branch = ""
			},
			wantMsg: "Branch is required",
		},
		{
			name: "missing date",
			mutate: func(in *service.CreateReceiptInput) {
				in.ReceiptDate = time.Time{}
			},
			wantMsg: "Receipt date is required",
		},
		{
			name: "no items",
			mutate: func(in *service.CreateReceiptInput) {
				in.Items = nil
			},
			wantMsg: "At least one item is required",
		},
		{
			name: "item without name",
			mutate: func(in *service.CreateReceiptInput) {
				in.Items[0].Name = ""
			},
			wantMsg: "Item name is required",
		},
		{
			name: "item quantity zero",
			mutate: func(in *service.CreateReceiptInput) {
				in.Items[1].Quantity = 0
			},
			wantMsg: "Item quantity must be between 1 and 10000",
		},
		{
			name: "item price zero",
			mutate: func(in *service.CreateReceiptInput) {
				in.Items[0].Price = decimal.Zero
			},
			wantMsg: "Item price must be greater than 0 and at most 1000000",
		},
		{
			name: "tax rate over 100",
			mutate: func(in *service.CreateReceiptInput) {
				in.TaxRate = decimal.NewFromInt(101)
			},
			wantMsg: "Tax rate must be between 0 and 100",
		},
	}

	svc := service.NewReceiptService(newFakeReceiptRepo(), nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validInput(userID)
			tt.mutate(in)

			_, err := svc.CreateReceipt(context.Background(), in)
			if err == nil {
				t.Fatal("expected a validation error")
			}

			appErr := apperror.GetAppError(err)
			if appErr.Code != 422 {
				t.Errorf("status = %d, want 422", appErr.Code)
			}
			if appErr.Message != tt.wantMsg {
				t.Errorf("message = %q, want %q", appErr.Message, tt.wantMsg)
			}
		})
	}
}

func TestCreateReceiptLengthLimitsCountCharacters(t *testing.T) {
	svc := service.NewReceiptService(newFakeReceiptRepo(), nil)
	userID := uuid.New()

	// 100 characters but 300 bytes
	in := validInput(userID)
	in.CustomerName = strings.Repeat("ठ", 100)
	if _, err := svc.CreateReceipt(context.Background(), in); err != nil {
		t.Fatalf("100-character name rejected: %v", err)
	}

	in = validInput(userID)
	in.CustomerName = strings.Repeat("ठ", 101)
	_, err := svc.CreateReceipt(context.Background(), in)
	if err == nil {
		t.Fatal("expected a validation error for 101 characters")
	}
	if msg := apperror.GetAppError(err).Message; msg != "Customer name must be at most 100 characters" {
		t.Errorf("message = %q", msg)
	}

	in = validInput(userID)
	in.Items[0].Name = strings.Repeat("ü", 100)
	in.Address = strings.Repeat("é", 200)
	if _, err := svc.CreateReceipt(context.Background(), in); err != nil {
		t.Fatalf("at-limit multibyte item name and address rejected: %v", err)
	}
}

func TestCreateReceiptPersistsDerivedTotals(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := service.NewReceiptService(repo, nil)
	userID := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validInput(userID))
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	if got := receipt.SubTotal.StringFixed(2); got != "800.00" {
		t.Errorf("subtotal = %s, want 800.00", got)
	}
	if got := receipt.TaxAmount.StringFixed(2); got != "144.00" {
		t.Errorf("tax = %s, want 144.00", got)
	}
	if got := receipt.TotalAmount.StringFixed(2); got != "944.00" {
		t.Errorf("total = %s, want 944.00", got)
	}
	if !strings.HasPrefix(receipt.ReceiptNo, "RCT-") {
		t.Errorf("receipt number %q lacks RCT- prefix", receipt.ReceiptNo)
	}
	if len(repo.receipts) != 1 {
		t.Errorf("persisted %d receipts, want 1", len(repo.receipts))
	}
}

func TestCreateReceiptRejectsAnonymousCaller(t *testing.T) {
	svc := service.NewReceiptService(newFakeReceiptRepo(), nil)

	_, err := svc.CreateReceipt(context.Background(), validInput(uuid.Nil))
	if !errors.Is(err, apperror.ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestGetReceiptOwnership(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := service.NewReceiptService(repo, nil)
	owner := uuid.New()
	stranger := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validInput(owner))
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	if _, err := svc.GetReceipt(context.Background(), owner, receipt.ID); err != nil {
		t.Errorf("owner read failed: %v", err)
	}

	if _, err := svc.GetReceipt(context.Background(), stranger, receipt.ID); !errors.Is(err, apperror.ErrForbidden) {
		t.Errorf("stranger read err = %v, want ErrForbidden", err)
	}

	if _, err := svc.GetReceipt(context.Background(), owner, uuid.New()); apperror.GetAppError(err).Code != 404 {
		t.Errorf("missing receipt err = %v, want 404", err)
	}
}

func TestDeleteReceipt(t *testing.T) {
	repo := newFakeReceiptRepo()
	svc := service.NewReceiptService(repo, nil)
	owner := uuid.New()
	stranger := uuid.New()

	receipt, err := svc.CreateReceipt(context.Background(), validInput(owner))
	if err != nil {
		t.Fatalf("CreateReceipt: %v", err)
	}

	if err := svc.DeleteReceipt(context.Background(), stranger, receipt.ID); !errors.Is(err, apperror.ErrForbidden) {
		t.Fatalf("stranger delete err = %v, want ErrForbidden", err)
	}

	if err := svc.DeleteReceipt(context.Background(), owner, receipt.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}

	if _, err := svc.GetReceipt(context.Background(), owner, receipt.ID); apperror.GetAppError(err).Code != 404 {
		t.Errorf("read after delete err = %v, want 404", err)
	}

	if err := svc.DeleteReceipt(context.Background(), owner, receipt.ID); apperror.GetAppError(err).Code != 404 {
		t.Errorf("second delete err = %v, want 404", err)
	}
}
