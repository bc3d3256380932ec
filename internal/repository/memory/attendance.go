package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/zarky95/form-attendance/internal/domain/attendance"
)

type attendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.Attendance
}

func NewAttendanceRepository() attendance.Repository {
	return &attendanceRepository{
		records: make(map[string]attendance.Attendance),
	}
}

// sameCalendarDate compares year, month and day, ignoring time of day.
func sameCalendarDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var targetDate time.Time
	if filter.Date != nil && *filter.Date != "" {
		parsed, err := time.Parse("2006-01-02", *filter.Date)
		if err != nil {
			return nil, err
		}
		targetDate = parsed
	}

	result := make([]attendance.Attendance, 0, len(r.records))
	for _, rec := range r.records {
		if filter.EmployeeID != nil && *filter.EmployeeID != "" && rec.EmployeeID != *filter.EmployeeID {
			continue
		}
		if !targetDate.IsZero() && !sameCalendarDate(rec.Date, targetDate) {
			continue
		}
		result = append(result, rec)
	}

	// Most recent date first
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.After(result[j].Date)
	})

	return result, nil
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.records[id]
	if !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}
	return rec, nil
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if att.ID == "" {
		att.ID = uuid.NewString()
	}
	if att.SubmittedAt.IsZero() {
		att.SubmittedAt = time.Now().UTC()
	}

	r.records[att.ID] = att
	return att, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[att.ID]; !ok {
		return attendance.Attendance{}, attendance.ErrAttendanceNotFound
	}

	r.records[att.ID] = att
	return att, nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[id]; !ok {
		return false, nil
	}
	delete(r.records, id)
	return true, nil
}
