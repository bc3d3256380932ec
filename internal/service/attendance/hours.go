package attendance

import (
	"github.com/shopspring/decimal"
	"github.com/zarky95/form-attendance/internal/domain/attendance"
	"github.com/zarky95/form-attendance/internal/pkg/validator"
)

var minutesPerHour = decimal.NewFromInt(60)

type HoursCalculator struct {
}

func NewHoursCalculator() *HoursCalculator {
	return &HoursCalculator{}
}

// DeriveTotalHours computes the worked-hours value for an attendance entry:
// (timeOut - timeIn) minus a complete break span, in hours to one decimal
// place. Clock times are interpreted on a common reference day, so only the
// time of day affects the subtraction.
//
// Returns nil without error when status is "absent" or either clock bound is
// missing. A break is subtracted only when both break bounds are present. A
// timeOut earlier than timeIn yields a negative value; intent (midnight
// rollover vs. input error) cannot be told apart here, so the value is passed
// through uncorrected.
func (c *HoursCalculator) DeriveTotalHours(status attendance.Status, timeIn, timeOut, breakStart, breakEnd *string) (*string, error) {
	if status == attendance.StatusAbsent {
		return nil, nil
	}
	if !present(timeIn) || !present(timeOut) {
		return nil, nil
	}

	in, ok := validator.IsValidClockTime(*timeIn)
	if !ok {
		return nil, &attendance.TimeParseError{Field: "timeIn"}
	}
	out, ok := validator.IsValidClockTime(*timeOut)
	if !ok {
		return nil, &attendance.TimeParseError{Field: "timeOut"}
	}

	span := out.Sub(in)

	if present(breakStart) && present(breakEnd) {
		bs, ok := validator.IsValidClockTime(*breakStart)
		if !ok {
			return nil, &attendance.TimeParseError{Field: "breakTimeStart"}
		}
		be, ok := validator.IsValidClockTime(*breakEnd)
		if !ok {
			return nil, &attendance.TimeParseError{Field: "breakTimeEnd"}
		}
		span -= be.Sub(bs)
	}

	hours := decimal.NewFromFloat(span.Minutes()).
		DivRound(minutesPerHour, 1).
		StringFixed(1)
	return &hours, nil
}

func present(s *string) bool {
	return s != nil && *s != ""
}
