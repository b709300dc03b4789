package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/eduboost/eduboost-back/docs"
	"github.com/eduboost/eduboost-back/internal/auth"
	"github.com/eduboost/eduboost-back/internal/config"
	"github.com/eduboost/eduboost-back/internal/db"
)

// @title           EduBoost Workspace API
// @version         1.0
// @description     Teacher workspace backend: records, dashboard and AI drafting.
// @host            localhost:8000
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func SetupRouter(cfg *config.Config, s *Server) *gin.Engine {
	auth.InitGoogle(cfg)

	r := gin.Default()

	// Public routes
	r.GET("/health", func(c *gin.Context) {
		if err := db.PingDB(); err != nil {
			c.JSON(500, gin.H{"status": "db_ping_error"})
			return
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Google login
	r.GET("/auth/google/login", auth.GoogleLoginHandler())
	r.GET("/auth/google/callback", auth.GoogleCallbackHandler(cfg))
	r.POST("/auth/refresh", auth.RefreshHandler(cfg))

	// Student quiz view, reachable without an account
	r.GET("/share/quiz", s.SharedQuiz)

	// Protected
	api := r.Group("/api")
	api.Use(auth.AuthMiddleware(cfg))
	s.MountAPI(api)

	return r
}

// MountAPI registers the authenticated workspace routes on group. The group's
// middleware must put the owner email into the context.
func (s *Server) MountAPI(api *gin.RouterGroup) {
	api.GET("/profile", s.GetProfile)
	api.PUT("/profile", s.PutProfile)

	api.GET("/tasks", s.GetTasks)
	api.PUT("/tasks", s.PutTasks)
	api.GET("/events", s.GetEvents)
	api.PUT("/events", s.PutEvents)
	api.GET("/birthdays", s.GetBirthdays)
	api.PUT("/birthdays", s.PutBirthdays)
	api.GET("/attendance", s.GetAttendance)
	api.PUT("/attendance", s.PutAttendance)

	api.GET("/dashboard", s.GetDashboard)
	api.POST("/seating", s.PostSeating)
	api.POST("/quiz/share", s.ShareQuiz)

	api.POST("/draft/report-card", s.DraftReportCard)
	api.POST("/draft/lesson-plan", s.DraftLessonPlan)
	api.POST("/draft/notice", s.DraftNotice)
	api.POST("/draft/quiz", s.DraftQuiz)
	api.POST("/draft/commemoration", s.DraftCommemoration)
	api.POST("/draft/record-guide", s.DraftRecordGuide)

	api.POST("/calendar/import", s.ImportCalendar)
}
