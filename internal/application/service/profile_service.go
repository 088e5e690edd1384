package service

import (
	"context"
	"io"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/clinicbook/receipts-api/pkg/storage"
	"github.com/google/uuid"
)

// ProfileService handles profile reads and owner-only mutation
type ProfileService struct {
	profileRepo repository.ProfileRepository
	store       *storage.DiskStore
}

// NewProfileService creates a new profile service
func NewProfileService(profileRepo repository.ProfileRepository, store *storage.DiskStore) *ProfileService {
	return &ProfileService{profileRepo: profileRepo, store: store}
}

// GetProfile returns the caller's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}
	return profile, nil
}

// UpdateProfileInput represents the editable profile fields
type UpdateProfileInput struct {
	UserID      uuid.UUID
	DisplayName string
	Phone       string
}

// UpdateProfile upserts the caller's profile fields. Concurrent updates are
// last-write-wins; there is no version field.
func (s *ProfileService) UpdateProfile(ctx context.Context, input *UpdateProfileInput) (*entity.Profile, error) {
	if input.DisplayName == "" {
		return nil, apperror.NewValidationError("Display name is required")
	}

	existing, err := s.profileRepo.GetByUserID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}

	existing.DisplayName = input.DisplayName
	existing.Phone = input.Phone
	if err := s.profileRepo.Upsert(ctx, existing); err != nil {
		return nil, err
	}

	return existing, nil
}

// UploadPhoto stores a profile image under the caller's path prefix and
// records its location on the profile
func (s *ProfileService) UploadPhoto(ctx context.Context, userID uuid.UUID, filename string, r io.Reader) (*entity.Profile, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NewNotFoundError("Profile")
	}

	path, err := s.store.SaveProfilePhoto(userID, filename, r)
	if err != nil {
		switch err {
		case storage.ErrFileTooLarge:
			return nil, apperror.NewBadRequestError("File exceeds the maximum upload size")
		case storage.ErrUnsupportedType:
			return nil, apperror.NewBadRequestError("Unsupported image type")
		default:
			return nil, err
		}
	}

	profile.PhotoPath = &path
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// PhotoURL resolves the public URL of a stored profile image
func (s *ProfileService) PhotoURL(profile *entity.Profile) string {
	if profile.PhotoPath == nil {
		return ""
	}
	return s.store.PublicURL(*profile.PhotoPath)
}
