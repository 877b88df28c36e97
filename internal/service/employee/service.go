package employee

import (
	"context"
	"time"

	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// EmployeeService manages employee master data.
type EmployeeService interface {
	List(ctx context.Context) ([]employee.EmployeeResponse, error)
	Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error)
	Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	Delete(ctx context.Context, employeeID string) error
}

type EmployeeServiceImpl struct {
	employeeRepo    employee.EmployeeRepository
	defaultPassword string
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, defaultPassword string) EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo:    employeeRepo,
		defaultPassword: defaultPassword,
	}
}

// List implements EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, employee.ToResponse(emp))
	}
	return responses, nil
}

// Get implements EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, employeeID string) (employee.EmployeeResponse, error) {
	emp, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return employee.ToResponse(emp), nil
}

// Create implements EmployeeService. The username defaults to the
// employee id, the password to the configured default, both as the
// spreadsheet onboarding flow does.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	password := s.defaultPassword
	if req.Password != nil {
		password = *req.Password
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	var birthday *time.Time
	if req.Birthday != nil {
		if parsed, ok := validator.ParseDate(*req.Birthday); ok {
			birthday = &parsed
		}
	}

	emp := employee.Employee{
		EmployeeID:           req.EmployeeID,
		LastName:             req.LastName,
		FirstName:            req.FirstName,
		Birthday:             birthday,
		Address:              req.Address,
		PhoneNumber:          req.PhoneNumber,
		SSSNumber:            req.SSSNumber,
		PhilhealthNumber:     req.PhilhealthNumber,
		TINNumber:            req.TINNumber,
		PagibigNumber:        req.PagibigNumber,
		Status:               req.Status,
		Position:             req.Position,
		ImmediateSupervisor:  req.ImmediateSupervisor,
		BasicSalary:          valueOrZero(req.BasicSalary),
		RiceSubsidy:          valueOrZero(req.RiceSubsidy),
		PhoneAllowance:       valueOrZero(req.PhoneAllowance),
		ClothingAllowance:    valueOrZero(req.ClothingAllowance),
		GrossSemiMonthlyRate: valueOrZero(req.GrossSemiMonthlyRate),
		HourlyRate:           valueOrZero(req.HourlyRate),
		Username:             req.EmployeeID,
		PasswordHash:         string(hash),
	}

	created, err := s.employeeRepo.Create(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToResponse(created), nil
}

// Delete implements EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, employeeID string) error {
	return s.employeeRepo.Delete(ctx, employeeID)
}

func valueOrZero(v *decimal.Decimal) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return *v
}
