package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/paydesk/paydesk-backend-go/internal/domain/auth"
	"github.com/paydesk/paydesk-backend-go/internal/domain/employee"
	"github.com/paydesk/paydesk-backend-go/internal/domain/user"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/database"
	"github.com/paydesk/paydesk-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db           *database.DB
	userRepo     user.UserRepository
	employeeRepo employee.EmployeeRepository
	jwtService   jwt.Service
}

func NewAuthService(
	db *database.DB,
	userRepo user.UserRepository,
	employeeRepo employee.EmployeeRepository,
	jwtService jwt.Service,
) auth.AuthService {
	return &AuthServiceImpl{
		db:           db,
		userRepo:     userRepo,
		employeeRepo: employeeRepo,
		jwtService:   jwtService,
	}
}

// Login implements auth.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.Session, error) {
	if err := req.Validate(); err != nil {
		return auth.Session{}, err
	}

	usr, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Session{}, auth.ErrInvalidCredentials
		}
		return auth.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(req.Password)); err != nil {
		return auth.Session{}, auth.ErrInvalidCredentials
	}

	return s.sessionFor(ctx, usr)
}

// Refresh implements auth.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (auth.Session, error) {
	userID, err := s.jwtService.ValidateRefreshToken(refreshToken)
	if err != nil {
		return auth.Session{}, auth.ErrInvalidToken
	}

	usr, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.Session{}, auth.ErrUserNotFound
		}
		return auth.Session{}, fmt.Errorf("failed to get user by ID: %w", err)
	}

	// Rotate: the old refresh token is dead once a new one is issued.
	s.jwtService.RevokeToken(refreshToken)

	return s.sessionFor(ctx, usr)
}

// Logout implements auth.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken != "" {
		s.jwtService.RevokeToken(refreshToken)
	}
	return nil
}

func (s *AuthServiceImpl) sessionFor(ctx context.Context, usr user.User) (auth.Session, error) {
	var employeeID *string
	emp, err := s.employeeRepo.GetByUserID(ctx, usr.ID)
	if err == nil {
		employeeID = &emp.ID
	} else if !errors.Is(err, employee.ErrEmployeeNotFound) {
		return auth.Session{}, fmt.Errorf("failed to get employee by user ID: %w", err)
	}

	accessToken, accessExpiresAt, err := s.jwtService.GenerateAccessToken(usr.ID, usr.Email, employeeID, usr.Role)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.jwtService.GenerateRefreshToken(usr.ID)
	if err != nil {
		return auth.Session{}, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	return auth.Session{
		Token: auth.TokenResponse{
			AccessToken: accessToken,
			ExpiresAt:   accessExpiresAt,
			Role:        string(usr.Role),
			EmployeeID:  employeeID,
		},
		RefreshToken:     refreshToken,
		RefreshExpiresAt: refreshExpiresAt,
	}, nil
}
