package routes

import (
	"net/http"
	"time"

	"attendly/handlers"
	"attendly/middleware"
	"attendly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSyncRoutes registers the session lifecycle endpoints.
func RegisterSyncRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	sync := api.Group("/sync")
	{
		sync.POST("/login", hb.Sync.LoginHandler)
		sync.POST("/logout", hb.Sync.LogoutHandler)
		sync.GET("/export", hb.Sync.ExportHandler)
		sync.POST("/import", hb.Sync.ImportHandler)
	}
}

// RegisterSettingsRoutes registers schedule config and subject registry endpoints.
func RegisterSettingsRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	api.GET("/settings", hb.Settings.GetSettingsHandler)
	api.PUT("/settings", hb.Settings.UpdateSettingsHandler)

	subjects := api.Group("/subjects")
	{
		subjects.GET("", hb.Settings.ListSubjectsHandler)
		subjects.PUT("", hb.Settings.ReplaceSubjectsHandler)
		subjects.POST("", hb.Settings.AddSubjectHandler)
		subjects.PATCH("/:id", hb.Settings.UpdateSubjectHandler)
		subjects.DELETE("/:id", hb.Settings.DeleteSubjectHandler)
	}
}

// RegisterTimetableRoutes registers the weekly assignment endpoints.
func RegisterTimetableRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	tt := api.Group("/timetable")
	{
		tt.GET("", hb.Timetable.GetWeekHandler)
		tt.GET("/:day", hb.Timetable.ListDayHandler)
		tt.POST("/:day", hb.Timetable.AddAssignmentHandler)
		tt.PUT("/:day/:id", hb.Timetable.UpdateAssignmentHandler)
		tt.DELETE("/:day/:id", hb.Timetable.DeleteAssignmentHandler)
		tt.POST("/:day/validate", hb.Timetable.ValidateAssignmentHandler)
		tt.GET("/:day/issues", hb.Timetable.DayIssuesHandler)
		tt.GET("/:day/slots", hb.Timetable.DaySlotsHandler)
	}
}

// RegisterAttendanceRoutes registers ledger and calendar endpoints.
func RegisterAttendanceRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	att := api.Group("/attendance")
	{
		att.GET("", hb.Attendance.ListRecordsHandler)
		att.GET("/:date", hb.Attendance.GetDayHandler)
		att.PUT("/:date", hb.Attendance.SubmitDayHandler)
		att.POST("/:date/holiday", hb.Attendance.MarkHolidayHandler)
		att.DELETE("/:date/holiday", hb.Attendance.UnmarkHolidayHandler)
	}
	api.GET("/calendar/:year/:month", hb.Attendance.MonthHandler)
}

// RegisterStatsRoutes registers statistics and prediction endpoints.
func RegisterStatsRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle) {
	stats := api.Group("/stats")
	{
		stats.GET("", hb.Stats.OverallHandler)
		stats.GET("/subjects", hb.Stats.PerSubjectHandler)
		stats.POST("/predict", hb.Stats.PredictHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		health := utils.GetHealthStatus()
		if !health.CheckedAt.IsZero() && (!health.Local || !health.Remote) {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "stores": health})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "stores": health})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)

	api := r.Group("/api")
	api.Use(middleware.IdentityMiddleware(hb.Identity))
	RegisterSyncRoutes(api, hb)
	RegisterSettingsRoutes(api, hb)
	RegisterTimetableRoutes(api, hb)
	RegisterAttendanceRoutes(api, hb)
	RegisterStatsRoutes(api, hb)
}
