package service

import (
	"context"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/clinicbook/receipts-api/pkg/pagination"
	"github.com/google/uuid"
)

// AdminService backs the administrative panel
type AdminService struct {
	userRepo    repository.UserRepository
	receiptRepo repository.ReceiptRepository
}

// NewAdminService creates a new admin service
func NewAdminService(userRepo repository.UserRepository, receiptRepo repository.ReceiptRepository) *AdminService {
	return &AdminService{
		userRepo:    userRepo,
		receiptRepo: receiptRepo,
	}
}

// UserSummary is a profile row on the admin panel with its receipt count
type UserSummary struct {
	ID           uuid.UUID       `json:"id"`
	Email        string          `json:"email"`
	Role         string          `json:"role"`
	Profile      *entity.Profile `json:"profile,omitempty"`
	ReceiptCount int64           `json:"receipt_count"`
}

// ListUsers returns all users with per-user receipt counts. Counts are one
// query per user.
func (s *AdminService) ListUsers(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[UserSummary], error) {
	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		count, err := s.receiptRepo.CountByUser(ctx, user.ID)
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, UserSummary{
			ID:           user.ID,
			Email:        user.Email,
			Role:         user.RoleName(),
			Profile:      user.Profile,
			ReceiptCount: count,
		})
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(summaries, pag), nil
}

// ListUserReceipts returns a given user's receipts for the admin drill-down
func (s *AdminService) ListUserReceipts(ctx context.Context, userID uuid.UUID, params *repository.ReceiptFilterParams) (*pagination.PaginatedResult[entity.Receipt], error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	params.SkipOwnerFilter = true
	receipts, total, err := s.receiptRepo.List(ctx, userID, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(receipts, pag), nil
}

// SetUserRole assigns the user/admin role tag to an account
func (s *AdminService) SetUserRole(ctx context.Context, userID uuid.UUID, role string) error {
	if role != entity.RoleUser && role != entity.RoleAdmin {
		return apperror.NewBadRequestError("Unknown role")
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	return s.userRepo.SetRole(ctx, userID, role)
}

// The remaining admin actions exist as routes but are deliberately not
// implemented. Each reports the fixed unsupported error kind instead of
// failing unpredictably.

// UpdateUserCredentials is a placeholder admin action
func (s *AdminService) UpdateUserCredentials(ctx context.Context, userID uuid.UUID) error {
	return apperror.ErrUnsupported
}

// BlockUser is a placeholder admin action
func (s *AdminService) BlockUser(ctx context.Context, userID uuid.UUID) error {
	return apperror.ErrUnsupported
}

// UnblockUser is a placeholder admin action
func (s *AdminService) UnblockUser(ctx context.Context, userID uuid.UUID) error {
	return apperror.ErrUnsupported
}

// DeleteUser is a placeholder admin action
func (s *AdminService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	return apperror.ErrUnsupported
}

// ImpersonateUser is a placeholder admin action
func (s *AdminService) ImpersonateUser(ctx context.Context, userID uuid.UUID) error {
	return apperror.ErrUnsupported
}
