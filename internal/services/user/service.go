package user

import (
	"context"
	"errors"
	"strings"

	"fnb-ordering/internal/auth"
	"fnb-ordering/internal/logger"
	"fnb-ordering/internal/models"
)

// Store is the persistence surface the user service needs.
type Store interface {
	CreateUser(ctx context.Context, user *models.User) error
	UserByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service implements registration and login.
type Service struct {
	store  Store
	tokens *auth.Manager
	logger *logger.Logger
}

// NewService creates the user service.
func NewService(store Store, tokens *auth.Manager, log *logger.Logger) *Service {
	return &Service{
		store:  store,
		tokens: tokens,
		logger: log,
	}
}

// Register creates an account with the user role and returns a fresh token.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if err := validateRegisterRequest(req); err != nil {
		return nil, err
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         models.RoleUser,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	token, err := s.tokens.GenerateToken(*user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

// Login verifies credentials and returns a fresh token. An unknown username
// and a wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, models.ErrInvalidCredentials
	}

	user, err := s.store.UserByUsername(ctx, req.Username)
	if errors.Is(err, models.ErrNotFound) {
		return nil, models.ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, models.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(*user)
	if err != nil {
		return nil, err
	}

	return &models.AuthResponse{Token: token, User: *user}, nil
}

func validateRegisterRequest(req *models.RegisterRequest) error {
	if req.Username == "" {
		return models.ValidationError{
			Field:   "username",
			Message: "username is required",
		}
	}
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		return models.ValidationError{
			Field:   "email",
			Message: "a valid email is required",
		}
	}
	if len(req.Password) < 8 {
		return models.ValidationError{
			Field:   "password",
			Message: "password must be at least 8 characters",
		}
	}
	return nil
}
