package services

import (
	"context"
	"errors"
	"strings"

	"github.com/emre/yoklama/internal/app/models"
	"github.com/emre/yoklama/internal/app/models/dto"
	"github.com/emre/yoklama/internal/app/repositories"
	"github.com/emre/yoklama/internal/pkg/apperrors"
	"github.com/emre/yoklama/internal/pkg/auth"
	"github.com/emre/yoklama/internal/pkg/dberrors"
	"github.com/emre/yoklama/internal/pkg/logger"
)

// EmployeeStore is the persistence surface the auth service needs.
type EmployeeStore interface {
	GetByUsername(ctx context.Context, username string) (*models.Employee, error)
	UsernameExists(ctx context.Context, username string) (bool, error)
	EmailExists(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, employee *models.Employee) error
}

// TokenIssuer signs access tokens for authenticated employees.
type TokenIssuer interface {
	GenerateToken(employee *models.Employee) (string, error)
}

// AuthService handles admin panel registration and login.
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Employee, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*models.Employee, string, error)
}

type authService struct {
	repo   EmployeeStore
	tokens TokenIssuer
}

// NewAuthService creates a new auth service.
func NewAuthService(repo EmployeeStore, tokens TokenIssuer) AuthService {
	return &authService{repo: repo, tokens: tokens}
}

// Register creates a new admin panel user with a bcrypt-hashed password.
// Username and email are pre-checked for friendlier messages; the unique
// constraints still back them up under concurrent registrations.
func (s *authService) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Employee, error) {
	if req.Username == "" || req.Password == "" || req.Email == "" {
		return nil, apperrors.NewValidationError("Username, password, and email are required")
	}

	usernameTaken, err := s.repo.UsernameExists(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if usernameTaken {
		return nil, apperrors.NewConflictError("Username already exists")
	}

	emailTaken, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if emailTaken {
		return nil, apperrors.NewConflictError("Email already registered")
	}

	hashed, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	employee := &models.Employee{
		Username:  req.Username,
		Password:  hashed,
		Email:     req.Email,
		FirstName: optionalString(req.FirstName),
		LastName:  optionalString(req.LastName),
	}
	if err := s.repo.Create(ctx, employee); err != nil {
		if dberrors.IsUniqueViolation(err) {
			constraint := dberrors.ConstraintName(err)
			if strings.Contains(constraint, "username") {
				return nil, apperrors.NewConflictError("Username already exists")
			}
			if strings.Contains(constraint, "email") {
				return nil, apperrors.NewConflictError("Email already registered")
			}
		}
		return nil, err
	}

	logger.Info().Str("username", employee.Username).Msg("Employee registered")
	return employee, nil
}

// Login verifies credentials and returns the employee together with a signed
// access token. A missing user and a wrong password produce the same error.
func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*models.Employee, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", apperrors.NewValidationError("Username and password are required")
	}

	employee, err := s.repo.GetByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, repositories.ErrEmployeeNotFound) {
			return nil, "", apperrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if !auth.CheckPassword(employee.Password, req.Password) {
		return nil, "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(employee)
	if err != nil {
		return nil, "", err
	}

	employee.Password = ""
	return employee, token, nil
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
