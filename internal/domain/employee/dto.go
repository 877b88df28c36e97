package employee

import (
	"github.com/motorph/payroll-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type CreateEmployeeRequest struct {
	EmployeeID           string           `json:"employee_id"`
	LastName             string           `json:"last_name"`
	FirstName            string           `json:"first_name"`
	Birthday             *string          `json:"birthday,omitempty"` // MM/DD/YYYY
	Address              *string          `json:"address,omitempty"`
	PhoneNumber          *string          `json:"phone_number,omitempty"`
	SSSNumber            *string          `json:"sss_number,omitempty"`
	PhilhealthNumber     *string          `json:"philhealth_number,omitempty"`
	TINNumber            *string          `json:"tin_number,omitempty"`
	PagibigNumber        *string          `json:"pagibig_number,omitempty"`
	Status               *string          `json:"status,omitempty"`
	Position             *string          `json:"position,omitempty"`
	ImmediateSupervisor  *string          `json:"immediate_supervisor,omitempty"`
	BasicSalary          *decimal.Decimal `json:"basic_salary,omitempty"`
	RiceSubsidy          *decimal.Decimal `json:"rice_subsidy,omitempty"`
	PhoneAllowance       *decimal.Decimal `json:"phone_allowance,omitempty"`
	ClothingAllowance    *decimal.Decimal `json:"clothing_allowance,omitempty"`
	GrossSemiMonthlyRate *decimal.Decimal `json:"gross_semi_monthly_rate,omitempty"`
	HourlyRate           *decimal.Decimal `json:"hourly_rate,omitempty"`
	Password             *string          `json:"password,omitempty"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmployeeID(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "must be numeric"})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{Field: "last_name", Message: "is required"})
	}
	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{Field: "first_name", Message: "is required"})
	}
	if r.Birthday != nil {
		if _, ok := validator.ParseDate(*r.Birthday); !ok {
			errs = append(errs, validator.ValidationError{Field: "birthday", Message: "must be MM/DD/YYYY"})
		}
	}
	if r.HourlyRate != nil && r.HourlyRate.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "hourly_rate", Message: "must be non-negative"})
	}
	if r.BasicSalary != nil && r.BasicSalary.IsNegative() {
		errs = append(errs, validator.ValidationError{Field: "basic_salary", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EmployeeResponse struct {
	EmployeeID           string          `json:"employee_id"`
	LastName             string          `json:"last_name"`
	FirstName            string          `json:"first_name"`
	Birthday             *string         `json:"birthday,omitempty"`
	Address              *string         `json:"address,omitempty"`
	PhoneNumber          *string         `json:"phone_number,omitempty"`
	SSSNumber            *string         `json:"sss_number,omitempty"`
	PhilhealthNumber     *string         `json:"philhealth_number,omitempty"`
	TINNumber            *string         `json:"tin_number,omitempty"`
	PagibigNumber        *string         `json:"pagibig_number,omitempty"`
	Status               *string         `json:"status,omitempty"`
	Position             *string         `json:"position,omitempty"`
	ImmediateSupervisor  *string         `json:"immediate_supervisor,omitempty"`
	BasicSalary          decimal.Decimal `json:"basic_salary"`
	RiceSubsidy          decimal.Decimal `json:"rice_subsidy"`
	PhoneAllowance       decimal.Decimal `json:"phone_allowance"`
	ClothingAllowance    decimal.Decimal `json:"clothing_allowance"`
	GrossSemiMonthlyRate decimal.Decimal `json:"gross_semi_monthly_rate"`
	HourlyRate           decimal.Decimal `json:"hourly_rate"`
	Username             string          `json:"username"`
}

// ToResponse maps an entity to its boundary representation, rendering the
// birthday in the MM/DD/YYYY convention.
func ToResponse(e Employee) EmployeeResponse {
	var birthday *string
	if e.Birthday != nil {
		b := validator.FormatDate(*e.Birthday)
		birthday = &b
	}
	return EmployeeResponse{
		EmployeeID:           e.EmployeeID,
		LastName:             e.LastName,
		FirstName:            e.FirstName,
		Birthday:             birthday,
		Address:              e.Address,
		PhoneNumber:          e.PhoneNumber,
		SSSNumber:            e.SSSNumber,
		PhilhealthNumber:     e.PhilhealthNumber,
		TINNumber:            e.TINNumber,
		PagibigNumber:        e.PagibigNumber,
		Status:               e.Status,
		Position:             e.Position,
		ImmediateSupervisor:  e.ImmediateSupervisor,
		BasicSalary:          e.BasicSalary,
		RiceSubsidy:          e.RiceSubsidy,
		PhoneAllowance:       e.PhoneAllowance,
		ClothingAllowance:    e.ClothingAllowance,
		GrossSemiMonthlyRate: e.GrossSemiMonthlyRate,
		HourlyRate:           e.HourlyRate,
		Username:             e.Username,
	}
}
