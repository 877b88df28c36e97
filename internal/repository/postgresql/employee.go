package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/motorph/payroll-backend-go/internal/domain/employee"
	"github.com/motorph/payroll-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `employee_id, last_name, first_name, birthday, address, phone_number,
	sss_number, philhealth_number, tin_number, pagibig_number, status,
	position, immediate_supervisor, basic_salary, rice_subsidy,
	phone_allowance, clothing_allowance, gross_semi_monthly_rate,
	hourly_rate, username, password_hash`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var emp employee.Employee
	err := row.Scan(
		&emp.EmployeeID, &emp.LastName, &emp.FirstName, &emp.Birthday, &emp.Address,
		&emp.PhoneNumber, &emp.SSSNumber, &emp.PhilhealthNumber, &emp.TINNumber,
		&emp.PagibigNumber, &emp.Status, &emp.Position, &emp.ImmediateSupervisor,
		&emp.BasicSalary, &emp.RiceSubsidy, &emp.PhoneAllowance, &emp.ClothingAllowance,
		&emp.GrossSemiMonthlyRate, &emp.HourlyRate, &emp.Username, &emp.PasswordHash,
	)
	return emp, err
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees ORDER BY employee_id ASC`, employeeColumns)

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// GetByID implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByID(ctx context.Context, employeeID string) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`SELECT %s FROM employees WHERE employee_id = $1`, employeeColumns)

	emp, err := scanEmployee(q.QueryRow(ctx, query, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", employeeID, err)
	}

	return emp, nil
}

// Create implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Create(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		RETURNING %s
	`, employeeColumns, employeeColumns)

	created, err := scanEmployee(q.QueryRow(ctx, query,
		emp.EmployeeID, emp.LastName, emp.FirstName, emp.Birthday, emp.Address,
		emp.PhoneNumber, emp.SSSNumber, emp.PhilhealthNumber, emp.TINNumber,
		emp.PagibigNumber, emp.Status, emp.Position, emp.ImmediateSupervisor,
		emp.BasicSalary, emp.RiceSubsidy, emp.PhoneAllowance, emp.ClothingAllowance,
		emp.GrossSemiMonthlyRate, emp.HourlyRate, emp.Username, emp.PasswordHash,
	))
	if err != nil {
		if strings.Contains(err.Error(), "employees_pkey") {
			return employee.Employee{}, employee.ErrEmployeeExists
		}
		return employee.Employee{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return created, nil
}

// CreateIgnore implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) CreateIgnore(ctx context.Context, emp employee.Employee) (bool, error) {
	q := GetQuerier(ctx, e.db)

	query := fmt.Sprintf(`
		INSERT INTO employees (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)
		ON CONFLICT (employee_id) DO NOTHING
	`, employeeColumns)

	tag, err := q.Exec(ctx, query,
		emp.EmployeeID, emp.LastName, emp.FirstName, emp.Birthday, emp.Address,
		emp.PhoneNumber, emp.SSSNumber, emp.PhilhealthNumber, emp.TINNumber,
		emp.PagibigNumber, emp.Status, emp.Position, emp.ImmediateSupervisor,
		emp.BasicSalary, emp.RiceSubsidy, emp.PhoneAllowance, emp.ClothingAllowance,
		emp.GrossSemiMonthlyRate, emp.HourlyRate, emp.Username, emp.PasswordHash,
	)
	if err != nil {
		return false, fmt.Errorf("failed to insert employee %s: %w", emp.EmployeeID, err)
	}

	return tag.RowsAffected() > 0, nil
}

// Delete implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Delete(ctx context.Context, employeeID string) error {
	q := GetQuerier(ctx, e.db)

	tag, err := q.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1`, employeeID)
	if err != nil {
		return fmt.Errorf("failed to delete employee %s: %w", employeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
