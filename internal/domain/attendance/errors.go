package attendance

import "errors"

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
)

// TimeParseError reports a clock-time field that failed to parse during
// work-hour derivation.
type TimeParseError struct {
	Field string
}

func (e *TimeParseError) Error() string {
	return e.Field + ": invalid time format, expected HH:MM"
}
