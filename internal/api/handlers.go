package api

import (
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduboost/eduboost-back/internal/dashboard"
	"github.com/eduboost/eduboost-back/internal/models"
	"github.com/eduboost/eduboost-back/internal/seating"
	"github.com/eduboost/eduboost-back/internal/share"
)

const digestTTL = 15 * time.Minute

// GetProfile godoc
// @Summary      Get the teacher profile
// @Description  Returns the onboarded profile, or 404 before onboarding
// @Tags         profile
// @Produce      json
// @Success      200 {object} models.UserProfile
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/profile [get]
func (s *Server) GetProfile(c *gin.Context) {
	email := c.GetString("email")

	profile, err := s.records.Profile(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set up yet"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PutProfile godoc
// @Summary      Save the teacher profile
// @Description  Creates or updates the onboarding profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Success      200 {object} models.UserProfile
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/profile [put]
func (s *Server) PutProfile(c *gin.Context) {
	email := c.GetString("email")

	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(profile.Name) == "" || strings.TrimSpace(profile.SchoolName) == "" || strings.TrimSpace(profile.Grade) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, school and grade are required"})
		return
	}

	if err := s.records.SaveProfile(context.Background(), email, profile); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetTasks godoc
// @Summary      Get the task collection
// @Description  Returns all tasks; first run yields the seed tasks
// @Tags         records
// @Produce      json
// @Success      200 {array} models.Task
// @Security     BearerAuth
// @Router       /api/tasks [get]
func (s *Server) GetTasks(c *gin.Context) {
	email := c.GetString("email")
	tasks, err := s.records.Tasks(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// PutTasks godoc
// @Summary      Replace the task collection
// @Description  Persists the submitted collection as the new snapshot
// @Tags         records
// @Accept       json
// @Produce      json
// @Success      200 {array} models.Task
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/tasks [put]
func (s *Server) PutTasks(c *gin.Context) {
	email := c.GetString("email")

	var tasks []models.Task
	if err := c.ShouldBindJSON(&tasks); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := s.records.ReplaceTasks(context.Background(), email, tasks); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save tasks"})
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// GetEvents godoc
// @Summary      Get the calendar event collection
// @Tags         records
// @Produce      json
// @Success      200 {array} models.SchoolEvent
// @Security     BearerAuth
// @Router       /api/events [get]
func (s *Server) GetEvents(c *gin.Context) {
	email := c.GetString("email")
	events, err := s.records.Events(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// PutEvents godoc
// @Summary      Replace the calendar event collection
// @Tags         records
// @Accept       json
// @Produce      json
// @Success      200 {array} models.SchoolEvent
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/events [put]
func (s *Server) PutEvents(c *gin.Context) {
	email := c.GetString("email")

	var events []models.SchoolEvent
	if err := c.ShouldBindJSON(&events); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := s.records.ReplaceEvents(context.Background(), email, events); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save events"})
		return
	}
	c.JSON(http.StatusOK, events)
}

// GetBirthdays godoc
// @Summary      Get the birthday collection
// @Tags         records
// @Produce      json
// @Success      200 {array} models.StudentBirthday
// @Security     BearerAuth
// @Router       /api/birthdays [get]
func (s *Server) GetBirthdays(c *gin.Context) {
	email := c.GetString("email")
	birthdays, err := s.records.Birthdays(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load birthdays"})
		return
	}
	c.JSON(http.StatusOK, birthdays)
}

// PutBirthdays godoc
// @Summary      Replace the birthday collection
// @Tags         records
// @Accept       json
// @Produce      json
// @Success      200 {array} models.StudentBirthday
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/birthdays [put]
func (s *Server) PutBirthdays(c *gin.Context) {
	email := c.GetString("email")

	var birthdays []models.StudentBirthday
	if err := c.ShouldBindJSON(&birthdays); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if err := s.records.ReplaceBirthdays(context.Background(), email, birthdays); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save birthdays"})
		return
	}
	c.JSON(http.StatusOK, birthdays)
}

// GetAttendance godoc
// @Summary      Get the attendance collection
// @Tags         records
// @Produce      json
// @Success      200 {array} models.AttendanceRecord
// @Security     BearerAuth
// @Router       /api/attendance [get]
func (s *Server) GetAttendance(c *gin.Context) {
	email := c.GetString("email")
	attendance, err := s.records.Attendance(context.Background(), email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load attendance"})
		return
	}
	c.JSON(http.StatusOK, attendance)
}

// AttendanceUpdateResponse reports the persisted collection and the task the
// experiential follow-up rule created, if any.
type AttendanceUpdateResponse struct {
	Records     []models.AttendanceRecord `json:"records"`
	CreatedTask *models.Task              `json:"createdTask,omitempty"`
}

// PutAttendance godoc
// @Summary      Replace the attendance collection
// @Description  Persists the collection and runs the experiential follow-up rule on its last element
// @Tags         records
// @Accept       json
// @Produce      json
// @Success      200 {object} AttendanceUpdateResponse
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/attendance [put]
func (s *Server) PutAttendance(c *gin.Context) {
	email := c.GetString("email")

	var attendance []models.AttendanceRecord
	if err := c.ShouldBindJSON(&attendance); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	updated, created, err := s.records.ReplaceAttendance(context.Background(), email, attendance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save attendance"})
		return
	}
	c.JSON(http.StatusOK, AttendanceUpdateResponse{Records: updated, CreatedTask: created})
}

// GetDashboard godoc
// @Summary      Get the dashboard summary
// @Description  Derives upcoming occasion, monthly events, next birthdays and today's attendance
// @Tags         dashboard
// @Produce      json
// @Success      200 {object} dashboard.Summary
// @Failure      404 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/dashboard [get]
func (s *Server) GetDashboard(c *gin.Context) {
	email := c.GetString("email")
	ctx := context.Background()
	now := time.Now()

	if cached, ok := s.cache.Get(ctx, DigestKey(email, now)); ok {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	summary, err := s.BuildDigest(ctx, email, now)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build dashboard"})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Profile not set up yet"})
		return
	}

	if raw, err := json.Marshal(summary); err == nil {
		s.cache.Set(ctx, DigestKey(email, now), string(raw), digestTTL)
	}
	c.JSON(http.StatusOK, summary)
}

// BuildDigest assembles the dashboard summary for one owner. It returns nil
// when the owner has not onboarded yet. The cron digest job shares this path.
func (s *Server) BuildDigest(ctx context.Context, email string, now time.Time) (*dashboard.Summary, error) {
	profile, err := s.records.Profile(ctx, email)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}
	events, err := s.records.Events(ctx, email)
	if err != nil {
		return nil, err
	}
	birthdays, err := s.records.Birthdays(ctx, email)
	if err != nil {
		return nil, err
	}
	attendance, err := s.records.Attendance(ctx, email)
	if err != nil {
		return nil, err
	}
	tasks, err := s.records.Tasks(ctx, email)
	if err != nil {
		return nil, err
	}

	summary := dashboard.Summarize(*profile, events, birthdays, attendance, tasks, now)
	return &summary, nil
}

// SeatingRequest asks for a shuffled seat assignment for Count students.
type SeatingRequest struct {
	Count int `json:"count"`
}

// SeatingResponse carries the shuffled seats and their desk pairing.
type SeatingResponse struct {
	Seats []int          `json:"seats"`
	Desks []seating.Desk `json:"desks"`
}

// PostSeating godoc
// @Summary      Shuffle seat assignments
// @Description  Returns a random permutation of 1..count paired into desks
// @Tags         seating
// @Accept       json
// @Produce      json
// @Success      200 {object} SeatingResponse
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/seating [post]
func (s *Server) PostSeating(c *gin.Context) {
	var req SeatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	seats, err := seating.Shuffle(req.Count, rng)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, SeatingResponse{Seats: seats, Desks: seating.Desks(seats)})
}

// ShareQuizRequest carries the quiz text to wrap into a share link.
type ShareQuizRequest struct {
	Text string `json:"text"`
}

// ShareQuiz godoc
// @Summary      Build a shareable quiz link
// @Description  Encodes the quiz text into a read-only student-view URL
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/quiz/share [post]
func (s *Server) ShareQuiz(c *gin.Context) {
	var req ShareQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":  share.Link(s.cfg.BaseURL, req.Text),
		"data": share.Encode(req.Text),
	})
}

// SharedQuiz godoc
// @Summary      Read a shared quiz
// @Description  Decodes the data parameter of a share link back into quiz text
// @Tags         quiz
// @Produce      json
// @Success      200 {object} map[string]string
// @Failure      400 {object} map[string]string
// @Router       /share/quiz [get]
func (s *Server) SharedQuiz(c *gin.Context) {
	data := c.Query("data")
	if data == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing data parameter"})
		return
	}

	text, err := share.Decode(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid share payload"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"text": text})
}
