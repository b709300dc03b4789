// Package dashboard derives the summary widgets from a snapshot of the record
// collections plus "now". Every function here is pure.
package dashboard

import (
	"sort"
	"time"

	"github.com/eduboost/eduboost-back/internal/models"
)

// SpecialDay is one fixed national observance used for commemoration classes.
type SpecialDay struct {
	Month int    `json:"month"`
	Day   int    `json:"day"`
	Name  string `json:"name"`
}

// SpecialDays is the fixed, date-ordered list of Korean observances.
var SpecialDays = []SpecialDay{
	{3, 1, "3·1절 (독립운동 기념일)"},
	{4, 3, "제주 4·3 희생자 추념일"},
	{4, 16, "국민안전의 날 (세월호 참사 추모)"},
	{4, 19, "4·19 혁명 기념일"},
	{4, 20, "장애인의 날"},
	{5, 5, "어린이날"},
	{5, 8, "어버이날"},
	{5, 15, "스승의 날"},
	{5, 18, "5·18 민주화운동 기념일"},
	{6, 6, "현충일"},
	{8, 15, "광복절"},
	{9, 18, "철도의 날"},
	{10, 3, "개천절"},
	{10, 9, "한글날"},
	{11, 3, "학생독립운동 기념일"},
	{11, 17, "순국선열의 날"},
}

// UpcomingOccasion returns the first special day whose (month, day) is on or
// after now's (month, day). Past the last entry of the year it wraps to the
// head of the list, by list order rather than by date distance.
func UpcomingOccasion(now time.Time) SpecialDay {
	month, day := int(now.Month()), now.Day()
	for _, sd := range SpecialDays {
		if sd.Month > month || (sd.Month == month && sd.Day >= day) {
			return sd
		}
	}
	return SpecialDays[0]
}

// MonthlyEvents filters events to now's YYYY-MM and sorts them by date.
func MonthlyEvents(events []models.SchoolEvent, now time.Time) []models.SchoolEvent {
	prefix := now.Format("2006-01")
	monthly := []models.SchoolEvent{}
	for _, e := range events {
		if len(e.Date) >= len(prefix) && e.Date[:len(prefix)] == prefix {
			monthly = append(monthly, e)
		}
	}
	sort.Slice(monthly, func(i, j int) bool { return monthly[i].Date < monthly[j].Date })
	return monthly
}

// UpcomingBirthdays returns at most the three next birthdays on or after now's
// (month, day). Birthdays earlier in the year are excluded, not wrapped.
func UpcomingBirthdays(birthdays []models.StudentBirthday, now time.Time) []models.StudentBirthday {
	month, day := int(now.Month()), now.Day()
	upcoming := []models.StudentBirthday{}
	for _, b := range birthdays {
		if b.Month > month || (b.Month == month && b.Day >= day) {
			upcoming = append(upcoming, b)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		if upcoming[i].Month != upcoming[j].Month {
			return upcoming[i].Month < upcoming[j].Month
		}
		return upcoming[i].Day < upcoming[j].Day
	})
	if len(upcoming) > 3 {
		upcoming = upcoming[:3]
	}
	return upcoming
}

// ActiveAttendance returns records whose range covers today. The comparison is
// plain string ordering, which is date ordering for zero-padded YYYY-MM-DD.
func ActiveAttendance(attendance []models.AttendanceRecord, now time.Time) []models.AttendanceRecord {
	today := now.Format("2006-01-02")
	active := []models.AttendanceRecord{}
	for _, r := range attendance {
		if r.StartDate <= today && today <= r.EndDate {
			active = append(active, r)
		}
	}
	return active
}

// Summary bundles everything the dashboard view shows.
type Summary struct {
	Profile           models.UserProfile        `json:"profile"`
	UpcomingOccasion  SpecialDay                `json:"upcomingOccasion"`
	MonthlyEvents     []models.SchoolEvent      `json:"monthlyEvents"`
	UpcomingBirthdays []models.StudentBirthday  `json:"upcomingBirthdays"`
	ActiveAttendance  []models.AttendanceRecord `json:"activeAttendance"`
	Tasks             []models.Task             `json:"tasks"`
}

// Summarize derives the dashboard summary from one coherent snapshot.
func Summarize(profile models.UserProfile, events []models.SchoolEvent, birthdays []models.StudentBirthday, attendance []models.AttendanceRecord, tasks []models.Task, now time.Time) Summary {
	return Summary{
		Profile:           profile,
		UpcomingOccasion:  UpcomingOccasion(now),
		MonthlyEvents:     MonthlyEvents(events, now),
		UpcomingBirthdays: UpcomingBirthdays(birthdays, now),
		ActiveAttendance:  ActiveAttendance(attendance, now),
		Tasks:             tasks,
	}
}
