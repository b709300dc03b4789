package models

// Priority levels for tasks
const (
	PriorityHigh = "High"
	PriorityMed  = "Med"
	PriorityLow  = "Low"
)

// Attendance record types
const (
	AttendanceAbsence      = "ABSENCE"
	AttendanceExperiential = "EXPERIENTIAL"
	AttendanceSickness     = "SICKNESS"
	AttendanceEarlyLeave   = "EARLY_LEAVE"
)

type Task struct {
	ID       string `json:"id"`
	Text     string `json:"text"`
	Done     bool   `json:"done"`
	Priority string `json:"priority"` // High | Med | Low
}

type SchoolEvent struct {
	Date  string `json:"date"` // YYYY-MM-DD
	Title string `json:"title"`
}

type StudentBirthday struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Month int    `json:"month"` // 1-12
	Day   int    `json:"day"`   // 1-31
}

type AttendanceRecord struct {
	ID            string `json:"id"`
	StudentName   string `json:"studentName"`
	Type          string `json:"type"`      // ABSENCE | EXPERIENTIAL | SICKNESS | EARLY_LEAVE
	StartDate     string `json:"startDate"` // YYYY-MM-DD
	EndDate       string `json:"endDate"`   // YYYY-MM-DD
	Reason        string `json:"reason"`
	IsTaskCreated bool   `json:"isTaskCreated"`
}

type UserProfile struct {
	Name       string `json:"name"`
	SchoolName string `json:"schoolName"`
	Grade      string `json:"grade"`
}

// GroundingLink is a reference returned alongside search-grounded AI output.
type GroundingLink struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// SeedTasks are the tasks every teacher starts with on first run.
func SeedTasks() []Task {
	return []Task{
		{ID: "1", Text: "생활기록부 문장 검토", Done: false, Priority: PriorityHigh},
		{ID: "2", Text: "내일 수업용 퀴즈 출력하기", Done: true, Priority: PriorityMed},
		{ID: "3", Text: "공문 확인 및 접수", Done: false, Priority: PriorityLow},
	}
}
