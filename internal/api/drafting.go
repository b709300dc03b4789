package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eduboost/eduboost-back/internal/excel"
	"github.com/eduboost/eduboost-back/internal/models"
)

const (
	draftTimeout = 45 * time.Second
	answerTTL    = 24 * time.Hour
)

// DraftResponse is the common shape of drafting results. Links is only
// populated for search-grounded tasks.
type DraftResponse struct {
	Text  string                 `json:"text"`
	Links []models.GroundingLink `json:"links,omitempty"`
}

func (s *Server) requireGateway(c *gin.Context) bool {
	if s.gateway == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI drafting is not configured"})
		return false
	}
	return true
}

// draftError answers every gateway failure the same way: one generic notice,
// no retry, no state change.
func draftError(c *gin.Context, err error) {
	log.Println("❌ Drafting failed:", err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "AI 요청에 실패했습니다. 잠시 후 다시 시도해주세요."})
}

// DraftReportCard godoc
// @Summary      Draft a report-card comment
// @Tags         drafting
// @Accept       json
// @Produce      json
// @Success      200 {object} DraftResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/draft/report-card [post]
func (s *Server) DraftReportCard(c *gin.Context) {
	if !s.requireGateway(c) {
		return
	}
	var req struct {
		StudentInfo string `json:"studentInfo"`
		Keywords    string `json:"keywords"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	text, err := s.gateway.ReportComments(ctx, req.StudentInfo, req.Keywords)
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Text: text})
}

// DraftLessonPlan godoc
// @Summary      Draft a lesson plan with reference links
// @Tags         drafting
// @Accept       json
// @Produce      json
// @Success      200 {object} DraftResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/draft/lesson-plan [post]
func (s *Server) DraftLessonPlan(c *gin.Context) {
	if !s.requireGateway(c) {
		return
	}
	var req struct {
		Topic string `json:"topic"`
		Grade string `json:"grade"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	text, links, err := s.gateway.LessonPlan(ctx, req.Topic, req.Grade)
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Text: text, Links: links})
}

// DraftNotice godoc
// @Summary      Draft a parent notice
// @Tags         drafting
// @Accept       json
// @Produce      json
// @Success      200 {object} DraftResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/draft/notice [post]
func (s *Server) DraftNotice(c *gin.Context) {
	if !s.requireGateway(c) {
		return
	}
	var req struct {
		Situation string `json:"situation"`
		Grade     string `json:"grade"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	text, err := s.gateway.ParentNotice(ctx, req.Situation, req.Grade)
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Text: text})
}

// DraftQuiz godoc
// @Summary      Draft a multiple-choice quiz
// @Tags         drafting
// @Accept       json
// @Produce      json
// @Success      200 {object} DraftResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/draft/quiz [post]
func (s *Server) DraftQuiz(c *gin.Context) {
	if !s.requireGateway(c) {
		return
	}
	var req struct {
		Content string `json:"content"`
		Count   int    `json:"count"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if req.Count <= 0 {
		req.Count = 5
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	text, err := s.gateway.Quiz(ctx, req.Content, req.Count)
	if err != nil {
		draftError(c, err)
		return
	}
	c.JSON(http.StatusOK, DraftResponse{Text: text})
}

// DraftCommemoration godoc
// @Summary      Draft commemoration class materials
// @Description  Answers are cached per occasion for a day
// @Tags         drafting
// @Accept       json
// @Produce      json
// @Success      200 {object} DraftResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/draft/commemoration [post]
func (s *Server) DraftCommemoration(c *gin.Context) {
	if !s.requireGateway(c) {
		return
	}
	var req struct {
		Occasion string `json:"occasion"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Occasion == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	s.cachedGroundedDraft(c, "edu_boost_commemoration:"+req.Occasion, func(ctx context.Context) (string, []models.GroundingLink, error) {
		return s.gateway.Commemoration(ctx, req.Occasion)
	})
}

// DraftRecordGuide godoc
// @Summary      Ask the student-record guideline expert
// @Description  Answers are cached per question for a day
// @Tags         drafting
// @Accept       json
// @Produce      json
// @Success      200 {object} DraftResponse
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/draft/record-guide [post]
func (s *Server) DraftRecordGuide(c *gin.Context) {
	if !s.requireGateway(c) {
		return
	}
	var req struct {
		Question string `json:"question"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	s.cachedGroundedDraft(c, "edu_boost_record_guide:"+req.Question, func(ctx context.Context) (string, []models.GroundingLink, error) {
		return s.gateway.RecordGuide(ctx, req.Question)
	})
}

// cachedGroundedDraft serves a grounded drafting call through the cache-aside
// layer. The same occasion or question asked twice costs one model call.
func (s *Server) cachedGroundedDraft(c *gin.Context, key string, draft func(ctx context.Context) (string, []models.GroundingLink, error)) {
	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	if cached, ok := s.cache.Get(ctx, key); ok {
		c.Data(http.StatusOK, "application/json", []byte(cached))
		return
	}

	text, links, err := draft(ctx)
	if err != nil {
		draftError(c, err)
		return
	}

	resp := DraftResponse{Text: text, Links: links}
	if raw, err := json.Marshal(resp); err == nil {
		s.cache.Set(ctx, key, string(raw), answerTTL)
	}
	c.JSON(http.StatusOK, resp)
}

// ImportCalendar godoc
// @Summary      Import calendar events from a file
// @Description  Extracts {date, title} events from an image, an .xlsx sheet or plain text and appends them to the event collection. Zero extracted events is "nothing found", not an error.
// @Tags         calendar
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "Calendar file"
// @Success      200 {object} map[string]interface{}
// @Failure      400 {object} map[string]string
// @Failure      502 {object} map[string]string
// @Security     BearerAuth
// @Router       /api/calendar/import [post]
func (s *Server) ImportCalendar(c *gin.Context) {
	email := c.GetString("email")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Calendar file is required"})
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	extracted, err := s.extractCalendar(file, header.Filename, contentType)
	if err == errNoGateway {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI drafting is not configured"})
		return
	}
	if err != nil {
		draftError(c, err)
		return
	}

	if len(extracted) == 0 {
		c.JSON(http.StatusOK, gin.H{"count": 0, "message": "일정을 추출하지 못했습니다. 파일 내용을 확인해주세요."})
		return
	}

	events, err := s.records.AppendEvents(context.Background(), email, extracted)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save events"})
		return
	}

	log.Printf("✅ Imported %d events for %s", len(extracted), email)
	c.JSON(http.StatusOK, gin.H{"count": len(extracted), "events": events})
}

var errNoGateway = errors.New("gateway not configured")

func (s *Server) extractCalendar(file io.Reader, filename, contentType string) ([]models.SchoolEvent, error) {
	// Spreadsheets parse locally; everything else goes through the gateway.
	if strings.HasSuffix(strings.ToLower(filename), ".xlsx") {
		return excel.ParseEvents(file, s.cfg.DefaultYear)
	}

	if s.gateway == nil {
		return nil, errNoGateway
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), draftTimeout)
	defer cancel()

	if strings.HasPrefix(contentType, "image/") {
		return s.gateway.ExtractEventsFromImage(ctx, data, contentType)
	}
	return s.gateway.ExtractEventsFromText(ctx, string(data))
}
