package handler

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nadji40/dolab/internal/di"
	"github.com/nadji40/dolab/internal/middleware"
)

// NewRouter builds the gin engine with all routes and middleware
func NewRouter(c *di.Container, log *zap.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Language())

	events := NewEventHandler(c.Store)
	attendees := NewAttendeeHandler(c.Store)
	tickets := NewTicketHandler(c.Store)
	organizers := NewOrganizerHandler(c.Store)
	team := NewTeamHandler(c.Store)
	dashboard := NewDashboardHandler(c.Store)
	settings := NewSettingsHandler(c.Store)
	health := NewHealthHandler(c.Redis, c.Version)

	router.GET("/health", health.Health)
	router.GET("/ready", health.Ready)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/events", events.List)
		v1.GET("/events/:id", events.Get)
		v1.GET("/events/:id/attendees", events.Attendees)

		v1.GET("/attendees", attendees.List)
		v1.POST("/attendees/:id/checkin", attendees.CheckIn)
		v1.POST("/checkin/scan", attendees.Scan)

		v1.POST("/tickets/purchase", tickets.Purchase)
		v1.GET("/tickets", tickets.List)

		v1.GET("/organizers/:id", organizers.Get)
		v1.GET("/organizers/:id/events", organizers.Events)

		v1.GET("/team", team.List)
		v1.GET("/jobs", team.Jobs)
		v1.POST("/jobs/:id/apply", team.Apply)

		v1.GET("/analytics", dashboard.Analytics)

		v1.GET("/settings", settings.Get)
		v1.PUT("/settings", settings.Update)

		v1.POST("/sync", settings.Sync)
		v1.GET("/sync/last", settings.LastSync)

		v1.POST("/admin/cache/reset", settings.ResetCache)
	}

	return router
}
