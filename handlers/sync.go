package handlers

import (
	"net/http"

	"attendly/models"
	"attendly/services/datasync"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SyncHandler exposes the session lifecycle: pull on login, clear on logout,
// export and import.
type SyncHandler struct {
	Sessions *datasync.Registry
}

func (h *SyncHandler) LoginHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	report := h.Sessions.Login(c.Request.Context(), userID)
	c.JSON(http.StatusOK, gin.H{"message": "Session ready", "pull": report})
}

func (h *SyncHandler) LogoutHandler(c *gin.Context) {
	userID, ok := currentUser(c)
	if !ok {
		return
	}
	if err := h.Sessions.Logout(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Local data cleared"})
}

func (h *SyncHandler) ExportHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	snap, err := coord.Export()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snap)
}

// ImportHandler writes every aggregate present in the body. Attendance
// records are checked before anything is written.
func (h *SyncHandler) ImportHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var snap models.Snapshot
	if err := c.ShouldBindJSON(&snap); err != nil {
		badRequest(c, err)
		return
	}
	for _, rec := range snap.Attendance {
		if err := rec.Validate(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid attendance record", "message": err.Error()})
			return
		}
	}
	written, err := coord.Import(snap)
	getLogger(c).Info("Imported aggregates", zap.Int("count", len(written)))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"imported": written})
}
