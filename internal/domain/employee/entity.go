package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// Employee is the master-data record imported from the HR spreadsheet.
// Money fields are decimals; statutory numbers (SSS, PhilHealth, TIN,
// Pag-IBIG) are opaque strings.
type Employee struct {
	EmployeeID           string
	LastName             string
	FirstName            string
	Birthday             *time.Time
	Address              *string
	PhoneNumber          *string
	SSSNumber            *string
	PhilhealthNumber     *string
	TINNumber            *string
	PagibigNumber        *string
	Status               *string
	Position             *string
	ImmediateSupervisor  *string
	BasicSalary          decimal.Decimal
	RiceSubsidy          decimal.Decimal
	PhoneAllowance       decimal.Decimal
	ClothingAllowance    decimal.Decimal
	GrossSemiMonthlyRate decimal.Decimal
	HourlyRate           decimal.Decimal
	Username             string
	PasswordHash         string
}

// FullName is the display name used in listings.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
