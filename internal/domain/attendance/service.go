package attendance

import (
	"context"
)

// Service defines business logic for attendance operations
type Service interface {
	// ListRecords retrieves attendance records filtered by employee and/or
	// calendar date, most recent date first
	ListRecords(ctx context.Context, filter Filter) ([]AttendanceResponse, error)

	// GetRecord retrieves a single attendance record by id
	GetRecord(ctx context.Context, id string) (AttendanceResponse, error)

	// CreateRecord validates a submission, derives total hours when
	// applicable and persists the record
	CreateRecord(ctx context.Context, req CreateAttendanceRequest) (AttendanceResponse, error)

	// UpdateRecord applies a partial update and re-derives total hours
	// from the merged field values
	UpdateRecord(ctx context.Context, req UpdateAttendanceRequest) (AttendanceResponse, error)

	// DeleteRecord removes an attendance record by id
	DeleteRecord(ctx context.Context, id string) error

	// GetStats aggregates summary statistics over the filtered record set
	GetStats(ctx context.Context, filter StatsFilter) (StatsResponse, error)
}
