package handlers

import (
	"fmt"
	"net/http"

	"attendly/models"
	"attendly/services/datasync"
	"attendly/services/timetable"

	"github.com/gin-gonic/gin"
)

// TimetableHandler serves the weekly class assignment table.
type TimetableHandler struct {
	Sessions *datasync.Registry
}

// assignmentRequest is the editable part of a class assignment.
type assignmentRequest struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subjectId"`
	StartPeriod int    `json:"startPeriod"`
	Duration    int    `json:"duration"`
}

func (r assignmentRequest) toModel() models.ClassAssignment {
	return models.ClassAssignment{
		ID:          r.ID,
		SubjectID:   r.SubjectID,
		StartPeriod: r.StartPeriod,
		Duration:    r.Duration,
	}
}

func dayParam(c *gin.Context) (models.Weekday, bool) {
	day, err := models.ParseWeekday(c.Param("day"))
	if err != nil {
		respondError(c, fmt.Errorf("%w: %v", timetable.ErrInvalidWeekday, err))
		return "", false
	}
	return day, true
}

func (h *TimetableHandler) GetWeekHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	svc := timetableService(c, coord)
	week, err := svc.Week()
	if err != nil {
		respondError(c, err)
		return
	}
	done, err := svc.SetupComplete()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"timetable":     week,
		"setupComplete": done,
	})
}

func (h *TimetableHandler) ListDayHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	svc := timetableService(c, coord)
	entries, err := svc.ListDay(day)
	if err != nil {
		respondError(c, err)
		return
	}
	settings, err := coord.Settings()
	if err != nil {
		respondError(c, err)
		return
	}
	full, err := svc.IsDayFull(day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"day":          day,
		"totalPeriods": settings.TotalPeriods(day),
		"isFull":       full,
		"assignments":  entries,
	})
}

func (h *TimetableHandler) AddAssignmentHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	created, err := timetableService(c, coord).AddAssignment(day, req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"assignment": created})
}

func (h *TimetableHandler) UpdateAssignmentHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	updated, err := timetableService(c, coord).UpdateAssignment(day, c.Param("id"), req.toModel())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"assignment": updated})
}

func (h *TimetableHandler) DeleteAssignmentHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	if err := timetableService(c, coord).DeleteAssignment(day, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Class deleted"})
}

// ValidateAssignmentHandler checks a candidate without saving it.
func (h *TimetableHandler) ValidateAssignmentHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req assignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := timetableService(c, coord).Validate(day, req.toModel()); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *TimetableHandler) DayIssuesHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	issues, err := timetableService(c, coord).Issues(day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, issues)
}

func (h *TimetableHandler) DaySlotsHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	day, ok := dayParam(c)
	if !ok {
		return
	}
	slots, err := timetableService(c, coord).Slots(day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day, "slots": slots})
}
