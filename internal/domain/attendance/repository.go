package attendance

import (
	"context"
)

// Repository defines data access methods for attendance records.
type Repository interface {
	// List retrieves attendance records matching the filter,
	// most recent date first
	List(ctx context.Context, filter Filter) ([]Attendance, error)

	// GetByID retrieves an attendance record by id
	GetByID(ctx context.Context, id string) (Attendance, error)

	// Create creates a new attendance record with an assigned id
	// and submission timestamp
	Create(ctx context.Context, att Attendance) (Attendance, error)

	// Update replaces an existing record's mutable fields
	Update(ctx context.Context, att Attendance) (Attendance, error)

	// Delete removes a record by id; reports whether a record was deleted
	Delete(ctx context.Context, id string) (bool, error)
}
