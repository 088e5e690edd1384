package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clinicbook/receipts-api/internal/application/service"
	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/clinicbook/receipts-api/pkg/oauth"
	"github.com/clinicbook/receipts-api/pkg/pagination"
	"github.com/clinicbook/receipts-api/pkg/utils"
	"github.com/google/uuid"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	roles map[uuid.UUID]string
	order []uuid.UUID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users: make(map[uuid.UUID]*entity.User),
		roles: make(map[uuid.UUID]string),
	}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	f.order = append(f.order, user.ID)
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	return f.withRole(user), nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return f.withRole(user), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByProvider(ctx context.Context, provider, providerID string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Provider == provider && user.ProviderID != nil && *user.ProviderID == providerID {
			return f.withRole(user), nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

func (f *fakeUserRepo) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.User, int64, error) {
	out := make([]entity.User, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.withRole(f.users[id]))
	}
	return out, int64(len(out)), nil
}

func (f *fakeUserRepo) SetRole(ctx context.Context, userID uuid.UUID, role string) error {
	f.roles[userID] = role
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) withRole(user *entity.User) *entity.User {
	copied := *user
	if role, ok := f.roles[user.ID]; ok {
		copied.Role = &entity.UserRole{UserID: user.ID, Role: role}
	}
	return &copied
}

// fakeProfileRepo is an in-memory ProfileRepository for service tests
type fakeProfileRepo struct {
	profiles map[uuid.UUID]*entity.Profile
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[uuid.UUID]*entity.Profile)}
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	return f.profiles[userID], nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *entity.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	f.profiles[profile.UserID] = profile
	return nil
}

func newAuthService(userRepo *fakeUserRepo, profileRepo *fakeProfileRepo) *service.AuthService {
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	googleOAuth := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{})
	return service.NewAuthService(userRepo, profileRepo, jwtManager, googleOAuth)
}

func TestRegisterFirstAccountBecomesAdmin(t *testing.T) {
	userRepo := newFakeUserRepo()
	profileRepo := newFakeProfileRepo()
	svc := newAuthService(userRepo, profileRepo)

	first, err := svc.Register(context.Background(), &service.RegisterInput{
		DisplayName: "Clinic Owner",
		Email:       "owner@clinic.test",
		Password:    "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if first.RoleName() != entity.RoleAdmin {
		t.Errorf("first account role = %q, want admin", first.RoleName())
	}

	second, err := svc.Register(context.Background(), &service.RegisterInput{
		DisplayName: "Receptionist",
		Email:       "desk@clinic.test",
		Password:    "password123",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if second.RoleName() != entity.RoleUser {
		t.Errorf("second account role = %q, want user", second.RoleName())
	}

	profile, _ := profileRepo.GetByUserID(context.Background(), first.ID)
	if profile == nil || profile.DisplayName != "Clinic Owner" {
		t.Errorf("profile not provisioned at registration: %+v", profile)
	}
}

func TestRegisterDuplicateEmailConflicts(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeProfileRepo())

	input := &service.RegisterInput{
		DisplayName: "Clinic Owner",
		Email:       "owner@clinic.test",
		Password:    "password123",
	}
	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("Register: %v", err)
	}

	_, err := svc.Register(context.Background(), input)
	if apperror.GetAppError(err).Code != 409 {
		t.Fatalf("err = %v, want conflict", err)
	}
}

func TestLogin(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeProfileRepo())

	if _, err := svc.Register(context.Background(), &service.RegisterInput{
		DisplayName: "Clinic Owner",
		Email:       "owner@clinic.test",
		Password:    "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	output, err := svc.Login(context.Background(), &service.LoginInput{
		Email:    "owner@clinic.test",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if output.AccessToken == "" || output.RefreshToken == "" {
		t.Error("login output is missing tokens")
	}

	_, err = svc.Login(context.Background(), &service.LoginInput{
		Email:    "owner@clinic.test",
		Password: "wrong-password",
	})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("wrong password err = %v, want ErrInvalidCredentials", err)
	}

	_, err = svc.Login(context.Background(), &service.LoginInput{
		Email:    "nobody@clinic.test",
		Password: "password123",
	})
	if !errors.Is(err, apperror.ErrInvalidCredentials) {
		t.Errorf("unknown email err = %v, want ErrInvalidCredentials", err)
	}
}

func TestRefreshToken(t *testing.T) {
	svc := newAuthService(newFakeUserRepo(), newFakeProfileRepo())

	if _, err := svc.Register(context.Background(), &service.RegisterInput{
		DisplayName: "Clinic Owner",
		Email:       "owner@clinic.test",
		Password:    "password123",
	}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	output, err := svc.Login(context.Background(), &service.LoginInput{
		Email:    "owner@clinic.test",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	refreshed, err := svc.RefreshToken(context.Background(), output.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken: %v", err)
	}
	if refreshed.AccessToken == "" {
		t.Error("refresh produced no access token")
	}

	if _, err := svc.RefreshToken(context.Background(), "not-a-token"); !errors.Is(err, apperror.ErrInvalidToken) {
		t.Errorf("garbage token err = %v, want ErrInvalidToken", err)
	}
}
