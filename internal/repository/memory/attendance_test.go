package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zarky95/form-attendance/internal/domain/attendance"
)

func strPtr(s string) *string { return &s }

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAttendanceList_MostRecentDateFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	for _, rec := range []attendance.Attendance{
		{EmployeeID: "emp1", Date: day("2024-03-10"), Status: attendance.StatusPresent},
		{EmployeeID: "emp1", Date: day("2024-03-12"), Status: attendance.StatusPresent},
		{EmployeeID: "emp1", Date: day("2024-03-11"), Status: attendance.StatusLate},
	} {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	records, err := repo.List(ctx, attendance.Filter{})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, day("2024-03-12"), records[0].Date)
	assert.Equal(t, day("2024-03-11"), records[1].Date)
	assert.Equal(t, day("2024-03-10"), records[2].Date)
}

func TestAttendanceList_DateFilterIgnoresTimeOfDay(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	morning := day("2024-03-11").Add(8 * time.Hour)
	evening := day("2024-03-11").Add(20 * time.Hour)

	for _, rec := range []attendance.Attendance{
		{EmployeeID: "emp1", Date: morning, Status: attendance.StatusPresent},
		{EmployeeID: "emp2", Date: evening, Status: attendance.StatusPresent},
		{EmployeeID: "emp3", Date: day("2024-03-12"), Status: attendance.StatusPresent},
	} {
		_, err := repo.Create(ctx, rec)
		require.NoError(t, err)
	}

	records, err := repo.List(ctx, attendance.Filter{Date: strPtr("2024-03-11")})
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestAttendanceCreate_AssignsIDAndSubmittedAt(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp1",
		Date:       day("2024-03-11"),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.SubmittedAt.IsZero())
}

func TestAttendanceDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewAttendanceRepository()

	created, err := repo.Create(ctx, attendance.Attendance{
		EmployeeID: "emp1",
		Date:       day("2024-03-11"),
		Status:     attendance.StatusPresent,
	})
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
