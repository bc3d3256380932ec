package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/zarky95/form-attendance/internal/domain/attendance"
)

type AttendanceServiceImpl struct {
	attendance.Repository
	calculator *HoursCalculator
}

func NewAttendanceService(repo attendance.Repository) attendance.Service {
	return &AttendanceServiceImpl{
		Repository: repo,
		calculator: NewHoursCalculator(),
	}
}

// timePtrToString safely converts a *time.Time to an RFC3339 string.
func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.UTC().Format(time.RFC3339)
	return &format
}

func toResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:             att.ID,
		EmployeeID:     att.EmployeeID,
		Date:           att.Date.Format("2006-01-02"),
		TimeIn:         att.TimeIn,
		TimeOut:        att.TimeOut,
		BreakTimeStart: att.BreakTimeStart,
		BreakTimeEnd:   att.BreakTimeEnd,
		Status:         string(att.Status),
		WorkLocation:   string(att.WorkLocation),
		Notes:          att.Notes,
		TotalHours:     att.TotalHours,
		Overtime:       att.Overtime,
		OvertimeHours:  att.OvertimeHours,
		SubmittedAt:    att.SubmittedAt.UTC().Format(time.RFC3339),
		ApprovedBy:     att.ApprovedBy,
		ApprovedAt:     timePtrToString(att.ApprovedAt),
		IsApproved:     att.IsApproved,
	}
}

// ListRecords implements attendance.Service.
func (s *AttendanceServiceImpl) ListRecords(ctx context.Context, filter attendance.Filter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.Repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, rec := range records {
		responses = append(responses, toResponse(rec))
	}
	return responses, nil
}

// GetRecord implements attendance.Service.
func (s *AttendanceServiceImpl) GetRecord(ctx context.Context, id string) (attendance.AttendanceResponse, error) {
	rec, err := s.Repository.GetByID(ctx, id)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	return toResponse(rec), nil
}

// CreateRecord implements attendance.Service.
func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		// Validate() already checked the format
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
	}

	workLocation := attendance.LocationOffice
	if req.WorkLocation != "" {
		workLocation = attendance.WorkLocation(req.WorkLocation)
	}

	status := attendance.Status(req.Status)

	totalHours, err := s.calculator.DeriveTotalHours(status, req.TimeIn, req.TimeOut, req.BreakTimeStart, req.BreakTimeEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	data := attendance.Attendance{
		EmployeeID:     req.EmployeeID,
		Date:           date,
		TimeIn:         req.TimeIn,
		TimeOut:        req.TimeOut,
		BreakTimeStart: req.BreakTimeStart,
		BreakTimeEnd:   req.BreakTimeEnd,
		Status:         status,
		WorkLocation:   workLocation,
		Notes:          req.Notes,
		TotalHours:     totalHours,
		Overtime:       req.Overtime,
		OvertimeHours:  req.OvertimeHours,
		ApprovedBy:     req.ApprovedBy,
	}

	created, err := s.Repository.Create(ctx, data)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return toResponse(created), nil
}

// UpdateRecord implements attendance.Service.
func (s *AttendanceServiceImpl) UpdateRecord(ctx context.Context, req attendance.UpdateAttendanceRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rec, err := s.Repository.GetByID(ctx, req.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return attendance.AttendanceResponse{}, fmt.Errorf("failed to parse date: %w", err)
		}
		rec.Date = date
	}
	if req.TimeIn != nil {
		rec.TimeIn = req.TimeIn
	}
	if req.TimeOut != nil {
		rec.TimeOut = req.TimeOut
	}
	if req.BreakTimeStart != nil {
		rec.BreakTimeStart = req.BreakTimeStart
	}
	if req.BreakTimeEnd != nil {
		rec.BreakTimeEnd = req.BreakTimeEnd
	}
	if req.Status != nil {
		rec.Status = attendance.Status(*req.Status)
	}
	if req.WorkLocation != nil {
		rec.WorkLocation = attendance.WorkLocation(*req.WorkLocation)
	}
	if req.Notes != nil {
		rec.Notes = req.Notes
	}
	if req.Overtime != nil {
		rec.Overtime = *req.Overtime
	}
	if req.OvertimeHours != nil {
		rec.OvertimeHours = req.OvertimeHours
	}

	// Re-derive from the merged field values. An absent status clears the
	// derived value; incomplete clock bounds leave the stored value as is.
	totalHours, err := s.calculator.DeriveTotalHours(rec.Status, rec.TimeIn, rec.TimeOut, rec.BreakTimeStart, rec.BreakTimeEnd)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}
	if totalHours != nil {
		rec.TotalHours = totalHours
	} else if rec.Status == attendance.StatusAbsent {
		rec.TotalHours = nil
	}

	updated, err := s.Repository.Update(ctx, rec)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return toResponse(updated), nil
}

// DeleteRecord implements attendance.Service.
func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	deleted, err := s.Repository.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if !deleted {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// GetStats implements attendance.Service.
func (s *AttendanceServiceImpl) GetStats(ctx context.Context, filter attendance.StatsFilter) (attendance.StatsResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.StatsResponse{}, err
	}

	records, err := s.Repository.List(ctx, attendance.Filter{EmployeeID: filter.EmployeeID})
	if err != nil {
		return attendance.StatsResponse{}, fmt.Errorf("failed to list attendance records: %w", err)
	}

	records = filterByDateRange(records, filter.StartDate, filter.EndDate)

	stats := attendance.StatsResponse{
		TotalDays: len(records),
	}

	totalHours := decimal.Zero
	for _, rec := range records {
		switch rec.Status {
		case attendance.StatusPresent:
			stats.PresentDays++
		case attendance.StatusLate:
			stats.LateDays++
		case attendance.StatusAbsent:
			stats.AbsentDays++
		}
		if rec.Overtime {
			stats.OvertimeDays++
		}
		if rec.TotalHours != nil {
			if hours, err := decimal.NewFromString(*rec.TotalHours); err == nil {
				totalHours = totalHours.Add(hours)
			}
		}
	}

	stats.TotalHours = totalHours.StringFixed(1)

	if stats.TotalDays > 0 {
		attended := decimal.NewFromInt(int64(stats.PresentDays + stats.LateDays))
		rate := attended.
			Div(decimal.NewFromInt(int64(stats.TotalDays))).
			Mul(decimal.NewFromInt(100))
		stats.AttendanceRate = rate.StringFixed(1)
	} else {
		stats.AttendanceRate = "0"
	}

	return stats, nil
}

// filterByDateRange keeps records whose calendar date falls inside the
// inclusive [start, end] range; an absent bound is not enforced.
func filterByDateRange(records []attendance.Attendance, startDate, endDate *string) []attendance.Attendance {
	var start, end time.Time
	if startDate != nil && *startDate != "" {
		start, _ = time.Parse("2006-01-02", *startDate)
	}
	if endDate != nil && *endDate != "" {
		end, _ = time.Parse("2006-01-02", *endDate)
	}
	if start.IsZero() && end.IsZero() {
		return records
	}

	filtered := make([]attendance.Attendance, 0, len(records))
	for _, rec := range records {
		day := time.Date(rec.Date.Year(), rec.Date.Month(), rec.Date.Day(), 0, 0, 0, 0, time.UTC)
		if !start.IsZero() && day.Before(start) {
			continue
		}
		if !end.IsZero() && day.After(end) {
			continue
		}
		filtered = append(filtered, rec)
	}
	return filtered
}
