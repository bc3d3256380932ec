package employee

import (
	"context"
)

// Repository defines data access methods for employees.
// The backing store enforces uniqueness of EmployeeID and Email.
type Repository interface {
	// List retrieves all employees
	List(ctx context.Context) ([]Employee, error)

	// GetByID retrieves an employee by internal id
	GetByID(ctx context.Context, id string) (Employee, error)

	// GetByEmployeeID retrieves an employee by the human-facing employee id
	GetByEmployeeID(ctx context.Context, employeeID string) (Employee, error)

	// Create creates a new employee with an assigned id and creation timestamp
	Create(ctx context.Context, emp Employee) (Employee, error)

	// Update replaces an existing employee's mutable fields
	Update(ctx context.Context, emp Employee) (Employee, error)
}
