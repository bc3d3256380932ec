package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarky95/form-attendance/internal/domain/employee"
	"github.com/zarky95/form-attendance/internal/pkg/validator"
	"github.com/zarky95/form-attendance/internal/repository/memory"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func createRequest() employee.CreateEmployeeRequest {
	return employee.CreateEmployeeRequest{
		EmployeeID: "EMP001",
		Name:       "John Smith",
		Email:      "john.smith@company.com",
		Department: "Engineering",
		Position:   "Senior Developer",
	}
}

func TestCreateEmployee_Success(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	created, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.CreatedAt)
	assert.Equal(t, "EMP001", created.EmployeeID)
	assert.True(t, created.IsActive)

	fetched, err := svc.GetEmployee(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestCreateEmployee_ValidationFailures(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	req := createRequest()
	req.Email = "not-an-email"
	req.Department = ""

	_, err := svc.CreateEmployee(ctx, req)

	var errs validator.ValidationErrors
	require.ErrorAs(t, err, &errs)
	details := errs.ToMap()
	assert.Contains(t, details, "email")
	assert.Contains(t, details, "department")
}

func TestCreateEmployee_DuplicateEmployeeID(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	_, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.Email = "other@company.com"
	_, err = svc.CreateEmployee(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmployeeIDExists)
}

func TestCreateEmployee_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	_, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	dup := createRequest()
	dup.EmployeeID = "EMP002"
	_, err = svc.CreateEmployee(ctx, dup)
	assert.ErrorIs(t, err, employee.ErrEmailExists)
}

func TestUpdateEmployee_PartialUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	created, err := svc.CreateEmployee(ctx, createRequest())
	require.NoError(t, err)

	updated, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       created.ID,
		Position: strPtr("Staff Engineer"),
		IsActive: boolPtr(false),
	})
	require.NoError(t, err)

	assert.Equal(t, "Staff Engineer", updated.Position)
	assert.False(t, updated.IsActive)
	// Untouched fields keep their values
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.Department, updated.Department)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestUpdateEmployee_NotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	_, err := svc.UpdateEmployee(ctx, employee.UpdateEmployeeRequest{
		ID:       "missing",
		Position: strPtr("Manager"),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListEmployees(t *testing.T) {
	ctx := context.Background()
	svc := NewEmployeeService(memory.NewEmployeeRepository())

	first := createRequest()
	second := createRequest()
	second.EmployeeID = "EMP002"
	second.Email = "sarah.johnson@company.com"
	second.Name = "Sarah Johnson"

	_, err := svc.CreateEmployee(ctx, first)
	require.NoError(t, err)
	_, err = svc.CreateEmployee(ctx, second)
	require.NoError(t, err)

	all, err := svc.ListEmployees(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}
