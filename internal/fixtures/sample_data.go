package fixtures

import (
	"context"
	"fmt"
	"time"

	"github.com/zarky95/form-attendance/internal/domain/attendance"
	"github.com/zarky95/form-attendance/internal/domain/employee"
)

func strPtr(s string) *string { return &s }

// SeedSampleData loads a small set of employees and attendance records into
// the given repositories. Intended for the in-memory backend in development
// mode so the API has data to serve out of the box.
func SeedSampleData(ctx context.Context, employees employee.Repository, records attendance.Repository) error {
	sampleEmployees := []employee.Employee{
		{
			ID:         "emp1",
			EmployeeID: "EMP001",
			Name:       "John Smith",
			Email:      "john.smith@company.com",
			Department: "Engineering",
			Position:   "Senior Developer",
			IsActive:   true,
		},
		{
			ID:         "emp2",
			EmployeeID: "EMP002",
			Name:       "Sarah Johnson",
			Email:      "sarah.johnson@company.com",
			Department: "Marketing",
			Position:   "Marketing Manager",
			IsActive:   true,
		},
		{
			ID:         "emp3",
			EmployeeID: "EMP003",
			Name:       "Mike Davis",
			Email:      "mike.davis@company.com",
			Department: "Sales",
			Position:   "Sales Representative",
			IsActive:   true,
		},
		{
			ID:         "emp4",
			EmployeeID: "EMP004",
			Name:       "Emily Chen",
			Email:      "emily.chen@company.com",
			Department: "HR",
			Position:   "HR Specialist",
			IsActive:   true,
		},
	}

	today := time.Now().UTC().Truncate(24 * time.Hour)
	yesterday := today.AddDate(0, 0, -1)

	sampleRecords := []attendance.Attendance{
		{
			ID:             "att1",
			EmployeeID:     "emp1",
			Date:           today,
			TimeIn:         strPtr("09:00"),
			TimeOut:        strPtr("17:30"),
			BreakTimeStart: strPtr("12:00"),
			BreakTimeEnd:   strPtr("13:00"),
			Status:         attendance.StatusPresent,
			WorkLocation:   attendance.LocationOffice,
			Notes:          strPtr("Regular working day"),
			TotalHours:     strPtr("7.5"),
		},
		{
			ID:             "att2",
			EmployeeID:     "emp2",
			Date:           today,
			TimeIn:         strPtr("08:30"),
			TimeOut:        strPtr("17:00"),
			BreakTimeStart: strPtr("12:30"),
			BreakTimeEnd:   strPtr("13:30"),
			Status:         attendance.StatusPresent,
			WorkLocation:   attendance.LocationRemote,
			Notes:          strPtr("Working from home today"),
			TotalHours:     strPtr("7.5"),
		},
		{
			ID:             "att3",
			EmployeeID:     "emp1",
			Date:           yesterday,
			TimeIn:         strPtr("09:15"),
			TimeOut:        strPtr("18:00"),
			BreakTimeStart: strPtr("12:00"),
			BreakTimeEnd:   strPtr("13:00"),
			Status:         attendance.StatusLate,
			WorkLocation:   attendance.LocationOffice,
			Notes:          strPtr("Traffic delay"),
			TotalHours:     strPtr("7.8"),
		},
	}

	for _, emp := range sampleEmployees {
		if _, err := employees.Create(ctx, emp); err != nil {
			return fmt.Errorf("failed to seed employee %s: %w", emp.EmployeeID, err)
		}
	}

	for _, rec := range sampleRecords {
		if _, err := records.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to seed attendance record %s: %w", rec.ID, err)
		}
	}

	return nil
}
