package service

import (
	"context"
	"regexp"
	"time"
	"unicode/utf8"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/internal/infrastructure/cache"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/clinicbook/receipts-api/pkg/pagination"
	"github.com/clinicbook/receipts-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

// Line item and field bounds enforced before any persistence call
const (
	MaxNameLen    = 100
	MaxAddressLen = 200
	MaxQuantity   = 10000
)

var (
	maxPrice    = decimal.NewFromInt(1_000_000)
	maxTaxRate  = decimal.NewFromInt(100)
	mobileRegex = regexp.MustCompile(`^[0-9]{10}$`)
)

// ReceiptService handles receipt creation, lookup and deletion
type ReceiptService struct {
	receiptRepo repository.ReceiptRepository
	cacheStore  *cache.Store
}

// NewReceiptService creates a new receipt service
func NewReceiptService(receiptRepo repository.ReceiptRepository, cacheStore *cache.Store) *ReceiptService {
	return &ReceiptService{receiptRepo: receiptRepo, cacheStore: cacheStore}
}

// ReceiptItemInput represents a line item on the receipt form
type ReceiptItemInput struct {
	Name     string          `json:"name"`
	Quantity int             `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// CreateReceiptInput represents the receipt form fields
type CreateReceiptInput struct {
	UserID        uuid.UUID
	CustomerName  string
	MobileNumber  string
	Address       string
	Branch        string
	Age           *int
	BloodPressure *string
	Pulse         *string
	ReceiptDate   time.Time
	Items         []ReceiptItemInput
	TaxRate       decimal.Decimal
}

// Validate checks the form fields and rejects on the first violated
// constraint. Validation is all-or-nothing; nothing is persisted when any
// rule fails.
func (in *CreateReceiptInput) Validate() error {
	if in.CustomerName == "" {
		return apperror.NewValidationError("Customer name is required")
	}
	if utf8.RuneCountInString(in.CustomerName) > MaxNameLen {
		return apperror.NewValidationError("Customer name must be at most 100 characters")
	}
	if !mobileRegex.MatchString(in.MobileNumber) {
		return apperror.NewValidationError("Mobile number must be exactly 10 digits")
	}
	if in.Address == "" {
		return apperror.NewValidationError("Address is required")
	}
	if utf8.RuneCountInString(in.Address) > MaxAddressLen {
		return apperror.NewValidationError("Address must be at most 200 characters")
	}
	if in.Branch == "" {
		return apperror.NewValidationError("Branch is required")
	}
	if in.ReceiptDate.IsZero() {
		return apperror.NewValidationError("Receipt date is required")
	}
	if len(in.Items) == 0 {
		return apperror.NewValidationError("At least one item is required")
	}
	for _, item := range in.Items {
		if item.Name == "" {
			return apperror.NewValidationError("Item name is required")
		}
		if utf8.RuneCountInString(item.Name) > MaxNameLen {
			return apperror.NewValidationError("Item name must be at most 100 characters")
		}
		if item.Quantity <= 0 || item.Quantity > MaxQuantity {
			return apperror.NewValidationError("Item quantity must be between 1 and 10000")
		}
		if !item.Price.IsPositive() || item.Price.GreaterThan(maxPrice) {
			return apperror.NewValidationError("Item price must be greater than 0 and at most 1000000")
		}
	}
	if in.TaxRate.IsNegative() || in.TaxRate.GreaterThan(maxTaxRate) {
		return apperror.NewValidationError("Tax rate must be between 0 and 100")
	}
	return nil
}

// CreateReceipt validates the form, derives the totals and persists the
// receipt. Receipts are immutable after this point except for deletion.
func (s *ReceiptService) CreateReceipt(ctx context.Context, input *CreateReceiptInput) (*entity.Receipt, error) {
	if input.UserID == uuid.Nil {
		return nil, apperror.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	items := make(entity.ReceiptItems, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.ReceiptItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	subtotal, tax, total := entity.ComputeTotals(items, input.TaxRate)

	receipt := &entity.Receipt{
		UserID:        input.UserID,
		ReceiptNo:     utils.GenerateReceiptNo(),
		CustomerName:  input.CustomerName,
		MobileNumber:  input.MobileNumber,
		Address:       input.Address,
		Branch:        input.Branch,
		Age:           input.Age,
		BloodPressure: input.BloodPressure,
		Pulse:         input.Pulse,
		ReceiptDate:   input.ReceiptDate,
		Items:         items,
		TaxRate:       input.TaxRate,
		SubTotal:      subtotal,
		TaxAmount:     tax,
		TotalAmount:   total,
	}

	if err := s.receiptRepo.Create(ctx, receipt); err != nil {
		return nil, err
	}

	s.invalidateDashboard(ctx, input.UserID)

	return receipt, nil
}

// invalidateDashboard drops the owner's cached dashboard summary after a
// mutation. Cache failures are logged, never surfaced.
func (s *ReceiptService) invalidateDashboard(ctx context.Context, userID uuid.UUID) {
	if err := s.cacheStore.Delete(ctx, dashboardCacheKey(userID)); err != nil {
		logrus.WithError(err).Warn("Dashboard cache invalidation failed")
	}
}

// GetReceipt retrieves a receipt by ID, enforcing row ownership
func (s *ReceiptService) GetReceipt(ctx context.Context, userID, id uuid.UUID) (*entity.Receipt, error) {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if receipt == nil {
		return nil, apperror.NewNotFoundError("Receipt")
	}
	if receipt.UserID != userID {
		return nil, apperror.ErrForbidden
	}
	return receipt, nil
}

// ListReceipts lists the caller's receipts, newest first
func (s *ReceiptService) ListReceipts(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// DeleteReceipt removes a receipt by ID, enforcing row ownership. Deletion
// is irreversible; the client confirms before issuing the call.
func (s *ReceiptService) DeleteReceipt(ctx context.Context, userID, id uuid.UUID) error {
	receipt, err := s.receiptRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if receipt == nil {
		return apperror.NewNotFoundError("Receipt")
	}
	if receipt.UserID != userID {
		return apperror.ErrForbidden
	}
	if err := s.receiptRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.invalidateDashboard(ctx, userID)

	return nil
}
