package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eduboost/eduboost-back/internal/cache"
	"github.com/eduboost/eduboost-back/internal/config"
	"github.com/eduboost/eduboost-back/internal/models"
	"github.com/eduboost/eduboost-back/internal/records"
)

const testOwner = "teacher@example.com"

// newTestRouter wires the handlers against an in-memory store, no cache and
// no AI gateway, behind a stub auth middleware.
func newTestRouter() (*gin.Engine, *Server) {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{BaseURL: "http://localhost:8000", DefaultYear: 2026}
	svc := records.NewService(records.NewMemStore())
	s := NewServer(cfg, svc, nil, cache.New(""))

	r := gin.New()
	r.GET("/share/quiz", s.SharedQuiz)
	api := r.Group("/api", func(c *gin.Context) {
		c.Set("email", testOwner)
	})
	s.MountAPI(api)
	return r, s
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestGetTasksReturnsSeedsOnFirstRun(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Equal(t, models.SeedTasks(), tasks)
}

func TestPutTasksReplacesCollection(t *testing.T) {
	r, _ := newTestRouter()

	want := []models.Task{{ID: "t1", Text: "채점하기", Priority: models.PriorityMed}}
	w := doJSON(t, r, http.MethodPut, "/api/tasks", want)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/tasks", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Equal(t, want, tasks)
}

func TestProfileLifecycle(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/profile", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/profile", models.UserProfile{Name: "홍길동"})
	assert.Equal(t, http.StatusBadRequest, w.Code, "school and grade are required")

	profile := models.UserProfile{Name: "홍길동", SchoolName: "다빛초등학교", Grade: "6학년 2반"}
	w = doJSON(t, r, http.MethodPut, "/api/profile", profile)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/profile", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.UserProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, profile, got)
}

func TestPutAttendanceReportsCreatedTask(t *testing.T) {
	r, _ := newTestRouter()

	attendance := []models.AttendanceRecord{{
		ID:          "a1",
		StudentName: "김민준",
		Type:        models.AttendanceExperiential,
		StartDate:   "2026-05-09",
		EndDate:     "2026-05-11",
	}}

	w := doJSON(t, r, http.MethodPut, "/api/attendance", attendance)
	require.Equal(t, http.StatusOK, w.Code)

	var resp AttendanceUpdateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.CreatedTask)
	assert.Equal(t, models.PriorityHigh, resp.CreatedTask.Priority)
	assert.True(t, resp.Records[0].IsTaskCreated)

	w = doJSON(t, r, http.MethodGet, "/api/tasks", nil)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &tasks))
	assert.Len(t, tasks, len(models.SeedTasks())+1)
}

func TestGetDashboard(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	assert.Equal(t, http.StatusNotFound, w.Code, "dashboard requires onboarding")

	profile := models.UserProfile{Name: "홍길동", SchoolName: "다빛초등학교", Grade: "6학년 2반"}
	w = doJSON(t, r, http.MethodPut, "/api/profile", profile)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/dashboard", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var summary map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &summary))
	assert.Contains(t, summary, "upcomingOccasion")
	assert.Contains(t, summary, "tasks")
}

func TestPostSeating(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/seating", SeatingRequest{Count: 5})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SeatingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Seats, 5)
	require.Len(t, resp.Desks, 3)

	seen := make(map[int]bool)
	for _, s := range resp.Seats {
		seen[s] = true
	}
	assert.Len(t, seen, 5)

	w = doJSON(t, r, http.MethodPost, "/api/seating", SeatingRequest{Count: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestQuizShareRoundTrip(t *testing.T) {
	r, _ := newTestRouter()

	text := "1. 문제\n가) 보기1\n정답: (1)"
	w := doJSON(t, r, http.MethodPost, "/api/quiz/share", ShareQuizRequest{Text: text})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		URL  string `json:"url"`
		Data string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.URL, "view=quiz")

	w = doJSON(t, r, http.MethodGet, "/share/quiz?data="+url.QueryEscape(resp.Data), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var decoded struct {
		Text string `json:"text"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decoded))
	assert.Equal(t, text, decoded.Text)
}

func TestSharedQuizRejectsBadPayload(t *testing.T) {
	r, _ := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/share/quiz", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/share/quiz?data=%25%25", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDraftingUnavailableWithoutGateway(t *testing.T) {
	r, _ := newTestRouter()

	for _, path := range []string{
		"/api/draft/report-card",
		"/api/draft/lesson-plan",
		"/api/draft/notice",
		"/api/draft/quiz",
		"/api/draft/commemoration",
		"/api/draft/record-guide",
	} {
		w := doJSON(t, r, http.MethodPost, path, map[string]string{})
		assert.Equal(t, http.StatusServiceUnavailable, w.Code, path)
	}
}

func TestDigestKeyChangesAtMidnight(t *testing.T) {
	before := time.Date(2026, 5, 10, 23, 59, 0, 0, time.Local)
	after := time.Date(2026, 5, 11, 0, 1, 0, 0, time.Local)

	assert.Equal(t, "edu_boost_digest:teacher@example.com:2026-05-10", DigestKey(testOwner, before))
	assert.NotEqual(t, DigestKey(testOwner, before), DigestKey(testOwner, after))
}

func TestImportCalendarRequiresFile(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/calendar/import", strings.NewReader(""))
	req.Header.Set("Content-Type", "multipart/form-data; boundary=x")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
