package handlers

import (
	"net/http"

	"attendly/models"
	"attendly/services/datasync"
	"attendly/services/timetable"

	"github.com/gin-gonic/gin"
)

// SettingsHandler serves the schedule config and the subject registry.
type SettingsHandler struct {
	Sessions *datasync.Registry
}

func (h *SettingsHandler) GetSettingsHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	settings, err := registryService(c, coord).Settings()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"settings": settings})
}

// UpdateSettingsHandler saves the schedule config and reports every weekday
// whose classes no longer fit.
func (h *SettingsHandler) UpdateSettingsHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req models.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := registryService(c, coord).UpdateSettings(req)
	if err != nil {
		respondError(c, err)
		return
	}

	tt := timetableService(c, coord)
	issues := []timetable.DayIssues{}
	for _, day := range models.Weekdays {
		di, err := tt.Issues(day)
		if err != nil {
			respondError(c, err)
			return
		}
		if len(di.Errors) > 0 {
			issues = append(issues, *di)
		}
	}
	c.JSON(http.StatusOK, gin.H{"settings": saved, "issues": issues})
}

func (h *SettingsHandler) ListSubjectsHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	subjects, err := registryService(c, coord).Subjects()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *SettingsHandler) ReplaceSubjectsHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req struct {
		Subjects []models.Subject `json:"subjects"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	saved, err := registryService(c, coord).ReplaceSubjects(req.Subjects)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": saved})
}

func (h *SettingsHandler) AddSubjectHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req models.Subject
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	subj, err := registryService(c, coord).AddSubject(req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"subject": subj})
}

func (h *SettingsHandler) UpdateSubjectHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req models.Subject
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	subj, err := registryService(c, coord).UpdateSubject(c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subject": subj})
}

func (h *SettingsHandler) DeleteSubjectHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	if err := registryService(c, coord).DeleteSubject(c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Subject deleted"})
}
