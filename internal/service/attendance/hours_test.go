package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarky95/form-attendance/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func TestDeriveTotalHours_FullDayWithBreak(t *testing.T) {
	calc := NewHoursCalculator()

	got, err := calc.DeriveTotalHours(attendance.StatusPresent,
		strPtr("09:00"), strPtr("17:30"), strPtr("12:00"), strPtr("13:00"))

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "7.5", *got)
}

func TestDeriveTotalHours_NoBreak(t *testing.T) {
	calc := NewHoursCalculator()

	got, err := calc.DeriveTotalHours(attendance.StatusPresent,
		strPtr("09:00"), strPtr("17:00"), nil, nil)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "8.0", *got)
}

func TestDeriveTotalHours_RoundsToOneDecimal(t *testing.T) {
	calc := NewHoursCalculator()

	// 500 minutes = 8.333... hours
	got, err := calc.DeriveTotalHours(attendance.StatusPresent,
		strPtr("09:00"), strPtr("17:20"), nil, nil)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "8.3", *got)
}

func TestDeriveTotalHours_IncompleteBreakIgnored(t *testing.T) {
	calc := NewHoursCalculator()

	got, err := calc.DeriveTotalHours(attendance.StatusPresent,
		strPtr("09:00"), strPtr("17:00"), strPtr("12:00"), nil)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "8.0", *got)
}

func TestDeriveTotalHours_AbsentNeverComputes(t *testing.T) {
	calc := NewHoursCalculator()

	got, err := calc.DeriveTotalHours(attendance.StatusAbsent,
		strPtr("09:00"), strPtr("17:30"), strPtr("12:00"), strPtr("13:00"))

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeriveTotalHours_MissingBoundSkipsComputation(t *testing.T) {
	calc := NewHoursCalculator()

	got, err := calc.DeriveTotalHours(attendance.StatusPresent, strPtr("09:00"), nil, nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = calc.DeriveTotalHours(attendance.StatusPresent, nil, strPtr("17:00"), nil, nil)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestDeriveTotalHours_NegativeSpanPassesThrough(t *testing.T) {
	calc := NewHoursCalculator()

	// timeOut before timeIn: no day-rollover correction is applied
	got, err := calc.DeriveTotalHours(attendance.StatusPresent,
		strPtr("17:00"), strPtr("09:00"), nil, nil)

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "-8.0", *got)
}

func TestDeriveTotalHours_MalformedTimeNamesField(t *testing.T) {
	calc := NewHoursCalculator()

	cases := []struct {
		name                            string
		timeIn, timeOut, brStart, brEnd *string
		wantField                       string
	}{
		{"bad timeIn", strPtr("9am"), strPtr("17:00"), nil, nil, "timeIn"},
		{"bad timeOut", strPtr("09:00"), strPtr("25:00"), nil, nil, "timeOut"},
		{"bad breakTimeStart", strPtr("09:00"), strPtr("17:00"), strPtr("noon"), strPtr("13:00"), "breakTimeStart"},
		{"bad breakTimeEnd", strPtr("09:00"), strPtr("17:00"), strPtr("12:00"), strPtr("13:60"), "breakTimeEnd"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := calc.DeriveTotalHours(attendance.StatusPresent, c.timeIn, c.timeOut, c.brStart, c.brEnd)
			assert.Nil(t, got)

			var parseErr *attendance.TimeParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, c.wantField, parseErr.Field)
		})
	}
}
