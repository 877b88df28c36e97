package employee

import "context"

// EmployeeRepository defines data access for employee master data.
type EmployeeRepository interface {
	// List retrieves all employees ordered by employee id
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves one employee
	GetByID(ctx context.Context, employeeID string) (Employee, error)

	// Create inserts a new employee; ErrEmployeeExists on duplicate id
	Create(ctx context.Context, emp Employee) (Employee, error)

	// CreateIgnore inserts unless the id already exists.
	// Returns true when a row was actually inserted. Used by the importer.
	CreateIgnore(ctx context.Context, emp Employee) (bool, error)

	// Delete removes an employee by id
	Delete(ctx context.Context, employeeID string) error
}
