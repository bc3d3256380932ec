package response

import (
	"errors"
	"net/http"

	"github.com/zarky95/form-attendance/internal/domain/attendance"
	"github.com/zarky95/form-attendance/internal/domain/employee"
	"github.com/zarky95/form-attendance/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Malformed clock time during hour-span derivation
	var timeParseErr *attendance.TimeParseError
	if errors.As(err, &timeParseErr) {
		BadRequest(w, "Invalid time value", map[string]string{
			timeParseErr.Field: "must be a clock time in HH:MM format",
		})
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee id already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
