package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduboost/eduboost-back/internal/models"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 9, 0, 0, 0, time.UTC)
}

func TestUpcomingOccasion(t *testing.T) {
	tests := []struct {
		now       time.Time
		wantMonth int
		wantDay   int
	}{
		{date(2026, 5, 10), 5, 15}, // next is Teachers' Day
		{date(2026, 5, 15), 5, 15}, // same-day occasion counts
		{date(2026, 1, 2), 3, 1},   // before the first entry
		{date(2026, 11, 18), 3, 1}, // past the last entry wraps to the list head
		{date(2026, 12, 31), 3, 1},
	}

	for _, tt := range tests {
		got := UpcomingOccasion(tt.now)
		assert.Equal(t, tt.wantMonth, got.Month, "now=%v", tt.now)
		assert.Equal(t, tt.wantDay, got.Day, "now=%v", tt.now)
	}
}

func TestMonthlyEvents(t *testing.T) {
	events := []models.SchoolEvent{
		{Date: "2026-06-01", Title: "B"},
		{Date: "2026-05-20", Title: "C"},
		{Date: "2026-05-01", Title: "A"},
		{Date: "2025-05-03", Title: "old"},
	}

	got := MonthlyEvents(events, date(2026, 5, 10))

	require.Len(t, got, 2)
	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, "C", got[1].Title)
}

func TestMonthlyEventsEmpty(t *testing.T) {
	got := MonthlyEvents(nil, date(2026, 5, 10))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUpcomingBirthdays(t *testing.T) {
	birthdays := []models.StudentBirthday{
		{ID: "1", Name: "a", Month: 5, Day: 8},
		{ID: "2", Name: "b", Month: 5, Day: 15},
		{ID: "3", Name: "c", Month: 6, Day: 1},
		{ID: "4", Name: "d", Month: 1, Day: 1},
	}

	got := UpcomingBirthdays(birthdays, date(2026, 5, 10))

	// entries before today in (month, day) are excluded, not wrapped
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name)
	assert.Equal(t, "c", got[1].Name)
}

func TestUpcomingBirthdaysTruncatesToThree(t *testing.T) {
	birthdays := []models.StudentBirthday{
		{ID: "1", Name: "a", Month: 12, Day: 1},
		{ID: "2", Name: "b", Month: 5, Day: 10},
		{ID: "3", Name: "c", Month: 7, Day: 2},
		{ID: "4", Name: "d", Month: 6, Day: 20},
		{ID: "5", Name: "e", Month: 6, Day: 4},
	}

	got := UpcomingBirthdays(birthdays, date(2026, 5, 10))

	require.Len(t, got, 3)
	assert.Equal(t, "b", got[0].Name) // same-day birthday qualifies
	assert.Equal(t, "e", got[1].Name)
	assert.Equal(t, "d", got[2].Name)
}

func TestActiveAttendance(t *testing.T) {
	attendance := []models.AttendanceRecord{
		{ID: "in", StartDate: "2026-05-09", EndDate: "2026-05-11"},
		{ID: "future", StartDate: "2026-05-11", EndDate: "2026-05-12"},
		{ID: "past", StartDate: "2026-05-01", EndDate: "2026-05-09"},
		{ID: "today-only", StartDate: "2026-05-10", EndDate: "2026-05-10"},
	}

	got := ActiveAttendance(attendance, date(2026, 5, 10))

	require.Len(t, got, 2)
	assert.Equal(t, "in", got[0].ID)
	assert.Equal(t, "today-only", got[1].ID)
}

func TestSummarize(t *testing.T) {
	profile := models.UserProfile{Name: "홍길동", SchoolName: "다빛초등학교", Grade: "6학년 2반"}
	events := []models.SchoolEvent{{Date: "2026-05-01", Title: "운동회"}}
	tasks := models.SeedTasks()

	got := Summarize(profile, events, nil, nil, tasks, date(2026, 5, 10))

	assert.Equal(t, profile, got.Profile)
	assert.Equal(t, 5, got.UpcomingOccasion.Month)
	assert.Equal(t, 15, got.UpcomingOccasion.Day)
	assert.Equal(t, events, got.MonthlyEvents)
	assert.Empty(t, got.UpcomingBirthdays)
	assert.Empty(t, got.ActiveAttendance)
	assert.Equal(t, tasks, got.Tasks)
}
