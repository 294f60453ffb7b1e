package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/workme/backend/internal/pkg/apperrors"
	jwtpkg "github.com/workme/backend/internal/pkg/jwt"
	"github.com/workme/backend/internal/pkg/logger"
	"github.com/workme/backend/internal/pkg/models"
)

const minPasswordLength = 8

// Register creates a new user account and signs them in. Admin accounts
// cannot be self-registered.
func (uc *userUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.New(apperrors.KindValidation, "a valid email is required")
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.New(apperrors.KindValidation, "password must be at least 8 characters")
	}
	if req.UserType != models.RoleClient && req.UserType != models.RoleProfessional {
		return nil, apperrors.New(apperrors.KindValidation, "user_type must be client or professional")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to hash password", err)
	}

	user := &models.User{
		Email:          email,
		FullName:       req.FullName,
		Phone:          req.Phone,
		UserType:       req.UserType,
		HashedPassword: string(hashed),
		IsActive:       true,
	}

	if err := uc.repo.CreateUserWithProfile(ctx, user); err != nil {
		return nil, err
	}

	if err := uc.gw.PublishUserRegistered(ctx, &models.UserRegisteredEvent{
		UserID:    user.ID,
		UserType:  user.UserType,
		Timestamp: time.Now().UTC(),
	}); err != nil {
		logger.Warn("Failed to publish user registered event",
			logger.String("user_id", user.ID.String()),
			logger.Err(err),
		)
	}

	return uc.issueToken(user)
}

// Login verifies credentials and returns a fresh token
func (uc *userUC) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if apperrors.IsKind(err, apperrors.KindNotFound) {
			// Do not reveal whether the email exists
			return nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.New(apperrors.KindUnauthorized, "account is deactivated")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, apperrors.New(apperrors.KindUnauthorized, "invalid email or password")
	}

	return uc.issueToken(user)
}

// GetUser returns a user by id
func (uc *userUC) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return uc.repo.GetUserByID(ctx, id)
}

func (uc *userUC) issueToken(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := jwtpkg.GenerateToken(user.ID, user.Email, user.UserType, uc.cfg.JWT)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindInternal, "failed to generate token", err)
	}

	return &models.AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   expiresAt,
		User:        user,
	}, nil
}
