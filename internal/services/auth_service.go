package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	iauth "github.com/dmaia/taskboard/internal/auth"
	"github.com/dmaia/taskboard/internal/models"
	"github.com/dmaia/taskboard/pkg/crypto"
	apperrors "github.com/dmaia/taskboard/pkg/errors"
	"github.com/dmaia/taskboard/pkg/metrics"
)

// AuthResult bundles the authenticated user with its signed token. Password
// hashes are never serialized on the user model.
type AuthResult struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// AuthService issues identities: registration and credential login.
type AuthService struct {
	db    *gorm.DB
	users *UserService
	jwt   *iauth.JWTService
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(db *gorm.DB, jwt *iauth.JWTService) (*AuthService, error) {
	if db == nil {
		return nil, errors.New("auth service: db is required")
	}
	if jwt == nil {
		return nil, errors.New("auth service: jwt service is required")
	}
	users, err := NewUserService(db)
	if err != nil {
		return nil, err
	}
	return &AuthService{db: db, users: users, jwt: jwt}, nil
}

// Register creates a new account and returns it with a signed token.
func (s *AuthService) Register(ctx context.Context, input CreateUserInput) (*AuthResult, error) {
	ctx = ensureContext(ctx)

	user, err := s.users.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth service: sign token: %w", err)
	}

	return &AuthResult{User: user, Token: token}, nil
}

// Login verifies credentials and returns the user with a signed token.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	ctx = ensureContext(ctx)

	if email == "" || password == "" {
		return nil, apperrors.NewBadRequest("email and password are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		if errors.Is(err, ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.VerifyPassword(user.Password, password) {
		metrics.AuthAttempts.WithLabelValues("failure").Inc()
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("auth service: sign token: %w", err)
	}

	metrics.AuthAttempts.WithLabelValues("success").Inc()
	return &AuthResult{User: user, Token: token}, nil
}
