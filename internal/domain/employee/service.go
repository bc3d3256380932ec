package employee

import (
	"context"
)

// Service defines business logic for employee operations
type Service interface {
	// ListEmployees retrieves all employees
	ListEmployees(ctx context.Context) ([]EmployeeResponse, error)

	// GetEmployee retrieves a single employee by internal id
	GetEmployee(ctx context.Context, id string) (EmployeeResponse, error)

	// CreateEmployee validates and persists a new employee
	CreateEmployee(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)

	// UpdateEmployee applies a partial update to an existing employee
	UpdateEmployee(ctx context.Context, req UpdateEmployeeRequest) (EmployeeResponse, error)
}
