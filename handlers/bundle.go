// File: handlers/bundle.go
package handlers

import (
	"net/http"

	"attendly/middleware"
	"attendly/services/attendance"
	"attendly/services/datasync"
	"attendly/services/timetable"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	Identity middleware.IdentityProvider

	Sync       *SyncHandler
	Settings   *SettingsHandler
	Timetable  *TimetableHandler
	Attendance *AttendanceHandler
	Stats      *StatsHandler
}

// NewHandlerBundle builds every handler over the same session registry.
func NewHandlerBundle(sessions *datasync.Registry, identity middleware.IdentityProvider) *HandlerBundle {
	return &HandlerBundle{
		Identity:   identity,
		Sync:       &SyncHandler{Sessions: sessions},
		Settings:   &SettingsHandler{Sessions: sessions},
		Timetable:  &TimetableHandler{Sessions: sessions},
		Attendance: &AttendanceHandler{Sessions: sessions},
		Stats:      &StatsHandler{Sessions: sessions},
	}
}

// currentUser returns the identity set by IdentityMiddleware, answering 401 when absent.
func currentUser(c *gin.Context) (string, bool) {
	userID := c.GetString("userID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return "", false
	}
	return userID, true
}

// session resolves the caller's coordinator.
func session(c *gin.Context, sessions *datasync.Registry) (*datasync.Coordinator, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	return sessions.Session(userID), true
}

func timetableService(c *gin.Context, store timetable.Store) *timetable.DefaultTimetableService {
	return timetable.NewTimetableService(store, getLogger(c))
}

func registryService(c *gin.Context, store timetable.Store) *timetable.DefaultRegistryService {
	return timetable.NewRegistryService(store, getLogger(c))
}

func attendanceService(c *gin.Context, store attendance.Store) *attendance.DefaultAttendanceService {
	return attendance.NewAttendanceService(store, getLogger(c))
}
