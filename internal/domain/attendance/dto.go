package attendance

import (
	"github.com/zarky95/form-attendance/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type CreateAttendanceRequest struct {
	EmployeeID     string  `json:"employeeId"`
	Date           string  `json:"date"` // YYYY-MM-DD
	TimeIn         *string `json:"timeIn,omitempty"`
	TimeOut        *string `json:"timeOut,omitempty"`
	BreakTimeStart *string `json:"breakTimeStart,omitempty"`
	BreakTimeEnd   *string `json:"breakTimeEnd,omitempty"`
	Status         string  `json:"status"`
	WorkLocation   string  `json:"workLocation,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Overtime       bool    `json:"overtime,omitempty"`
	OvertimeHours  *string `json:"overtimeHours,omitempty"`
	ApprovedBy     *string `json:"approvedBy,omitempty"`
}

func (r *CreateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employeeId",
			Message: "employeeId is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, valid := validator.IsValidDate(r.Date); !valid {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.Status) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status is required",
		})
	} else if !validator.IsInSlice(r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day",
		})
	}

	if r.WorkLocation != "" && !validator.IsInSlice(r.WorkLocation, ValidWorkLocations()) {
		errs = append(errs, validator.ValidationError{
			Field:   "workLocation",
			Message: "workLocation must be one of: office, remote, field",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAttendanceRequest carries a partial update; only non-nil fields are
// validated and applied, the rest of the stored record is left untouched.
type UpdateAttendanceRequest struct {
	ID             string  `json:"-"`
	Date           *string `json:"date,omitempty"` // YYYY-MM-DD
	TimeIn         *string `json:"timeIn,omitempty"`
	TimeOut        *string `json:"timeOut,omitempty"`
	BreakTimeStart *string `json:"breakTimeStart,omitempty"`
	BreakTimeEnd   *string `json:"breakTimeEnd,omitempty"`
	Status         *string `json:"status,omitempty"`
	WorkLocation   *string `json:"workLocation,omitempty"`
	Notes          *string `json:"notes,omitempty"`
	Overtime       *bool   `json:"overtime,omitempty"`
	OvertimeHours  *string `json:"overtimeHours,omitempty"`
}

func (r *UpdateAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Date != nil {
		if _, valid := validator.IsValidDate(*r.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if r.Status != nil && !validator.IsInSlice(*r.Status, ValidStatuses()) {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day",
		})
	}

	if r.WorkLocation != nil && !validator.IsInSlice(*r.WorkLocation, ValidWorkLocations()) {
		errs = append(errs, validator.ValidationError{
			Field:   "workLocation",
			Message: "workLocation must be one of: office, remote, field",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employeeId"`
	Date           string  `json:"date"`
	TimeIn         *string `json:"timeIn"`
	TimeOut        *string `json:"timeOut"`
	BreakTimeStart *string `json:"breakTimeStart"`
	BreakTimeEnd   *string `json:"breakTimeEnd"`
	Status         string  `json:"status"`
	WorkLocation   string  `json:"workLocation"`
	Notes          *string `json:"notes"`
	TotalHours     *string `json:"totalHours"`
	Overtime       bool    `json:"overtime"`
	OvertimeHours  *string `json:"overtimeHours"`
	SubmittedAt    string  `json:"submittedAt"`
	ApprovedBy     *string `json:"approvedBy"`
	ApprovedAt     *string `json:"approvedAt"`
	IsApproved     bool    `json:"isApproved"`
}

// Filter narrows a record listing. Date matches by calendar date only.
type Filter struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	Date       *string `json:"date,omitempty"` // YYYY-MM-DD
}

func (f *Filter) Validate() error {
	var errs validator.ValidationErrors

	if f.Date != nil && *f.Date != "" {
		if _, valid := validator.IsValidDate(*f.Date); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// StatsFilter narrows the record set aggregated by GetStats. Both bounds are
// inclusive; either may be absent.
type StatsFilter struct {
	EmployeeID *string `json:"employeeId,omitempty"`
	StartDate  *string `json:"startDate,omitempty"` // YYYY-MM-DD
	EndDate    *string `json:"endDate,omitempty"`   // YYYY-MM-DD
}

func (f *StatsFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "startDate",
				Message: "startDate must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "endDate",
				Message: "endDate must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type StatsResponse struct {
	TotalDays      int    `json:"totalDays"`
	PresentDays    int    `json:"presentDays"`
	LateDays       int    `json:"lateDays"`
	AbsentDays     int    `json:"absentDays"`
	OvertimeDays   int    `json:"overtimeDays"`
	TotalHours     string `json:"totalHours"`
	AttendanceRate string `json:"attendanceRate"`
}
