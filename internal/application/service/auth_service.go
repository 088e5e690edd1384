package service

import (
	"context"

	"github.com/clinicbook/receipts-api/internal/domain/entity"
	"github.com/clinicbook/receipts-api/internal/domain/repository"
	"github.com/clinicbook/receipts-api/pkg/apperror"
	"github.com/clinicbook/receipts-api/pkg/oauth"
	"github.com/clinicbook/receipts-api/pkg/utils"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// AuthService handles authentication-related operations
type AuthService struct {
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
	jwtManager  *utils.JWTManager
	googleOAuth *oauth.GoogleOAuthService
}

// NewAuthService creates a new auth service
func NewAuthService(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	jwtManager *utils.JWTManager,
	googleOAuth *oauth.GoogleOAuthService,
) *AuthService {
	return &AuthService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		jwtManager:  jwtManager,
		googleOAuth: googleOAuth,
	}
}

// LoginInput represents the login input
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput represents the login output
type LoginOutput struct {
	User         *entity.User
	AccessToken  string
	RefreshToken string
}

// Login authenticates a user and returns tokens
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	user, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrInvalidCredentials
	}

	if !utils.CheckPasswordHash(input.Password, user.Password) {
		return nil, apperror.ErrInvalidCredentials
	}

	return s.issueTokens(user)
}

// RegisterInput represents the registration input
type RegisterInput struct {
	DisplayName string
	Email       string
	Password    string
	Phone       string
}

// Register creates a new account with its profile. The first account ever
// created is promoted to admin; every later account gets the plain user role.
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*entity.User, error) {
	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	existingCount, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		Email:    input.Email,
		Password: hashedPassword,
		Provider: "local",
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	role := entity.RoleUser
	if existingCount == 0 {
		role = entity.RoleAdmin
	}
	if err := s.userRepo.SetRole(ctx, user.ID, role); err != nil {
		return nil, err
	}

	profile := &entity.Profile{
		UserID:      user.ID,
		DisplayName: input.DisplayName,
		Phone:       input.Phone,
		Email:       user.Email,
	}
	if err := s.profileRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, user.ID)
}

// RefreshToken generates new tokens from a refresh token
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*LoginOutput, error) {
	userID, err := s.jwtManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	return s.issueTokens(user)
}

// GoogleAuthURL returns the consent URL for Google sign-in
func (s *AuthService) GoogleAuthURL(state string) (string, error) {
	if !s.googleOAuth.IsConfigured() {
		return "", apperror.NewBadRequestError("Google sign-in is not configured")
	}
	return s.googleOAuth.GetAuthURL(state), nil
}

// GoogleLogin exchanges an OAuth code, provisioning the account and profile
// on first sign-in
func (s *AuthService) GoogleLogin(ctx context.Context, code string) (*LoginOutput, error) {
	if !s.googleOAuth.IsConfigured() {
		return nil, apperror.NewBadRequestError("Google sign-in is not configured")
	}

	token, err := s.googleOAuth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, apperror.ErrInvalidToken
	}

	info, err := s.googleOAuth.GetUserInfo(ctx, token)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByProvider(ctx, "google", info.ID)
	if err != nil {
		return nil, err
	}

	if user == nil {
		// Link by email when a local account already exists
		user, err = s.userRepo.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		existingCount, err := s.userRepo.Count(ctx)
		if err != nil {
			return nil, err
		}

		providerID := info.ID
		user = &entity.User{
			Email:      info.Email,
			Provider:   "google",
			ProviderID: &providerID,
		}
		if err := s.userRepo.Create(ctx, user); err != nil {
			return nil, err
		}

		role := entity.RoleUser
		if existingCount == 0 {
			role = entity.RoleAdmin
		}
		if err := s.userRepo.SetRole(ctx, user.ID, role); err != nil {
			return nil, err
		}

		profile := &entity.Profile{
			UserID:      user.ID,
			DisplayName: info.Name,
			Email:       info.Email,
		}
		if err := s.profileRepo.Upsert(ctx, profile); err != nil {
			return nil, err
		}

		logrus.WithField("email", info.Email).Info("Provisioned account from Google sign-in")

		user, err = s.userRepo.GetByID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
	}

	return s.issueTokens(user)
}

// GetCurrentUser returns the current user by ID
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

func (s *AuthService) issueTokens(user *entity.User) (*LoginOutput, error) {
	accessToken, err := s.jwtManager.GenerateAccessToken(user.ID, user.Email, user.RoleName())
	if err != nil {
		return nil, err
	}

	refreshToken, err := s.jwtManager.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
