package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-social-content/internal/logger"
	"github.com/sbilibin2017/gw-social-content/internal/models"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=auth.go -destination=mock_auth.go -package=services

// UserDirectory is the part of UserService that AuthService relies on.
type UserDirectory interface {
	Register(ctx context.Context, reg models.Registration) (*models.UserDB, error)
	FindByUsername(ctx context.Context, username string) (*models.UserDB, error)
}

// JWTGenerator defines an interface for generating JWT tokens.
type JWTGenerator interface {
	Generate(ctx context.Context, userID uuid.UUID, username string) (string, error)
}

// AuthService handles registration and login.
type AuthService struct {
	users UserDirectory
	jwt   JWTGenerator
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(users UserDirectory, jwt JWTGenerator) *AuthService {
	return &AuthService{
		users: users,
		jwt:   jwt,
	}
}

// Register hashes the password and registers a new user.
func (svc *AuthService) Register(ctx context.Context, signUp models.SignUp) (*models.UserDB, error) {
	if len(signUp.Password) < minPasswordLength {
		return nil, &ValidationError{Field: "password", Message: "must be at least 8 characters"}
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(signUp.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, &ValidationError{Field: "password", Message: err.Error()}
	}

	return svc.users.Register(ctx, models.Registration{
		Username:     signUp.Username,
		Email:        signUp.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    signUp.FirstName,
		MiddleName:   signUp.MiddleName,
		LastName:     signUp.LastName,
	})
}

// Login authenticates a live user and returns a JWT token.
func (svc *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	user, err := svc.users.FindByUsername(ctx, username)
	if errors.Is(err, ErrUserNotFound) {
		logger.Log.Errorw("user does not exist", "username", username)
		return "", ErrInvalidCredentials
	}
	if err != nil {
		logger.Log.Errorw("failed to get user", "err", err)
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return "", ErrInvalidCredentials
	}

	token, err := svc.jwt.Generate(ctx, user.UserID, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate JWT", "err", err)
		return "", fmt.Errorf("generate token: %w", err)
	}

	return token, nil
}
