package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/zarky95/form-attendance/internal/domain/attendance"
	"github.com/zarky95/form-attendance/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.Repository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, date, time_in, time_out, break_time_start, break_time_end,
	status, work_location, notes, total_hours, overtime, overtime_hours,
	submitted_at, approved_by, approved_at, is_approved
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	err := row.Scan(
		&att.ID, &att.EmployeeID, &att.Date, &att.TimeIn, &att.TimeOut,
		&att.BreakTimeStart, &att.BreakTimeEnd, &att.Status, &att.WorkLocation,
		&att.Notes, &att.TotalHours, &att.Overtime, &att.OvertimeHours,
		&att.SubmittedAt, &att.ApprovedBy, &att.ApprovedAt, &att.IsApproved,
	)
	return att, err
}

// List implements attendance.Repository.
func (r *attendanceRepository) List(ctx context.Context, filter attendance.Filter) ([]attendance.Attendance, error) {
	var conditions []string
	var args []interface{}

	if filter.EmployeeID != nil && *filter.EmployeeID != "" {
		args = append(args, *filter.EmployeeID)
		conditions = append(conditions, fmt.Sprintf("employee_id = $%d", len(args)))
	}

	if filter.Date != nil && *filter.Date != "" {
		args = append(args, *filter.Date)
		// Calendar-date match; time of day of the stored date is ignored
		conditions = append(conditions, fmt.Sprintf("date::date = $%d::date", len(args)))
	}

	query := "SELECT " + attendanceColumns + " FROM attendance_records"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, att)
	}

	return records, rows.Err()
}

// GetByID implements attendance.Repository.
func (r *attendanceRepository) GetByID(ctx context.Context, id string) (attendance.Attendance, error) {
	query := "SELECT " + attendanceColumns + " FROM attendance_records WHERE id = $1"

	att, err := scanAttendance(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance record by id: %w", err)
	}

	return att, nil
}

// Create implements attendance.Repository.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	query := `
		INSERT INTO attendance_records (
			employee_id, date, time_in, time_out, break_time_start, break_time_end,
			status, work_location, notes, total_hours, overtime, overtime_hours,
			approved_by
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13
		) RETURNING id, submitted_at
	`

	err := r.db.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.TimeIn,
		att.TimeOut,
		att.BreakTimeStart,
		att.BreakTimeEnd,
		att.Status,
		att.WorkLocation,
		att.Notes,
		att.TotalHours,
		att.Overtime,
		att.OvertimeHours,
		att.ApprovedBy,
	).Scan(&att.ID, &att.SubmittedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return att, nil
}

// Update implements attendance.Repository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	query := `
		UPDATE attendance_records
		SET employee_id = $2, date = $3, time_in = $4, time_out = $5,
			break_time_start = $6, break_time_end = $7, status = $8,
			work_location = $9, notes = $10, total_hours = $11,
			overtime = $12, overtime_hours = $13
		WHERE id = $1
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		att.ID,
		att.EmployeeID,
		att.Date,
		att.TimeIn,
		att.TimeOut,
		att.BreakTimeStart,
		att.BreakTimeEnd,
		att.Status,
		att.WorkLocation,
		att.Notes,
		att.TotalHours,
		att.Overtime,
		att.OvertimeHours,
	).Scan(&att.ID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return att, nil
}

// Delete implements attendance.Repository.
func (r *attendanceRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.db.Exec(ctx, "DELETE FROM attendance_records WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("failed to delete attendance record: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
