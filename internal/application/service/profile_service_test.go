package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/clinicbook/receipts-api/pkg/storage"
	"github.com/google/uuid"
)

func newProfileService(t *testing.T, repo *fakeProfileRepo) *service.ProfileService {
	t.Helper()
	store, err := storage.NewDiskStore(t.TempDir(), "/storage", 1024)
	if err != nil {
		t.Fatalf("NewDiskStore: %v", err)
	}
	return service.NewProfileService(repo, store)
}

func seedProfile(repo *fakeProfileRepo) *entity.Profile {
	profile := &entity.Profile{
		UserID:      uuid.New(),
		DisplayName: "Asha Verma",
		Phone:       "9876543210",
		Email:       "asha@clinic.test",
	}
	_ = repo.Upsert(context.Background(), profile)
	return profile
}

func TestUpdateProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(t, repo)
	profile := seedProfile(repo)

	updated, err := svc.UpdateProfile(context.Background(), &service.UpdateProfileInput{
		UserID:      profile.UserID,
		DisplayName: "Dr. Asha Verma",
		Phone:       "9000000000",
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}
	if updated.DisplayName != "Dr. Asha Verma" || updated.Phone != "9000000000" {
		t.Errorf("profile after update = %+v", updated)
	}

	_, err = svc.UpdateProfile(context.Background(), &service.UpdateProfileInput{
		UserID: profile.UserID,
	})
	if apperror.GetAppError(err).Code != 422 {
		t.Errorf("empty display name err = %v, want validation error", err)
	}

	_, err = svc.UpdateProfile(context.Background(), &service.UpdateProfileInput{
		UserID:      uuid.New(),
		DisplayName: "Ghost",
	})
	if apperror.GetAppError(err).Code != 404 {
		t.Errorf("unknown user err = %v, want 404", err)
	}
}

func TestUploadPhoto(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(t, repo)
	profile := seedProfile(repo)

	updated, err := svc.UploadPhoto(context.Background(), profile.UserID, "me.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadPhoto: %v", err)
	}
	if updated.PhotoPath == nil {
		t.Fatal("photo path was not recorded")
	}
	if url := svc.PhotoURL(updated); !strings.HasPrefix(url, "/storage/") {
		t.Errorf("photo url = %q", url)
	}
}

func TestUploadPhotoRejectsBadFiles(t *testing.T) {
	repo := newFakeProfileRepo()
	svc := newProfileService(t, repo)
	profile := seedProfile(repo)

	_, err := svc.UploadPhoto(context.Background(), profile.UserID, "notes.txt", strings.NewReader("hello"))
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("unsupported type err = %v, want 400", err)
	}

	// Store is capped at 1 KiB in these tests
	huge := strings.Repeat("x", 2048)
	_, err = svc.UploadPhoto(context.Background(), profile.UserID, "me.jpg", strings.NewReader(huge))
	if apperror.GetAppError(err).Code != 400 {
		t.Errorf("oversize err = %v, want 400", err)
	}
}
