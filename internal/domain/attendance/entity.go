package attendance

import (
	"time"
)

type Attendance struct {
	ID             string
	EmployeeID     string
	Date           time.Time
	TimeIn         *string
	TimeOut        *string
	BreakTimeStart *string
	BreakTimeEnd   *string
	Status         Status
	WorkLocation   WorkLocation
	Notes          *string
	TotalHours     *string
	Overtime       bool
	OvertimeHours  *string
	SubmittedAt    time.Time

	// Approval workflow placeholders; carried but never driven by any logic.
	ApprovedBy *string
	ApprovedAt *time.Time
	IsApproved bool
}

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
)

func ValidStatuses() []string {
	return []string{
		string(StatusPresent),
		string(StatusAbsent),
		string(StatusLate),
		string(StatusHalfDay),
	}
}

type WorkLocation string

const (
	LocationOffice WorkLocation = "office"
	LocationRemote WorkLocation = "remote"
	LocationField  WorkLocation = "field"
)

func ValidWorkLocations() []string {
	return []string{
		string(LocationOffice),
		string(LocationRemote),
		string(LocationField),
	}
}
