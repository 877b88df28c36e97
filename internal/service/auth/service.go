package auth

import (
	"context"
	"errors"

	"github.com/motorph/payroll-backend-go/internal/domain/auth"
	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	employeeRepo   employee.EmployeeRepository
	jwtService     jwt.Service
	masterPassword string
}

func NewAuthService(employeeRepo employee.EmployeeRepository, jwtService jwt.Service, masterPassword string) auth.AuthService {
	return &AuthServiceImpl{
		employeeRepo:   employeeRepo,
		jwtService:     jwtService,
		masterPassword: masterPassword,
	}
}

// Login implements auth.AuthService. A configured master password
// signs in to any account; an unknown employee id reports the same
// error as a wrong password.
func (s *AuthServiceImpl) Login(ctx context.Context, req auth.LoginRequest) (auth.LoginResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.LoginResponse{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
		return auth.LoginResponse{}, err
	}

	masterMatch := s.masterPassword != "" && req.Password == s.masterPassword
	if !masterMatch {
		if err := bcrypt.CompareHashAndPassword([]byte(emp.PasswordHash), []byte(req.Password)); err != nil {
			return auth.LoginResponse{}, auth.ErrInvalidCredentials
		}
	}

	token, expiresAt, err := s.jwtService.GenerateAccessToken(emp.EmployeeID)
	if err != nil {
		return auth.LoginResponse{}, err
	}

	return auth.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
		EmployeeID:  emp.EmployeeID,
	}, nil
}
