package handlers

import (
	"errors"
	"net/http"

	"attendly/models"
	"attendly/services/attendance"
	"attendly/services/datasync"
	"attendly/services/timetable"
	"attendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps service errors onto HTTP answers.
func respondError(c *gin.Context, err error) {
	var verr *timetable.ValidationError
	if errors.As(err, &verr) {
		status := http.StatusBadRequest
		if errors.Is(err, timetable.ErrOverlapConflict) {
			status = http.StatusConflict
		}
		body := gin.H{"error": verr.Message, "code": verr.Code()}
		if verr.MaxPeriod > 0 {
			body["maxPeriod"] = verr.MaxPeriod
		}
		if verr.ConflictID != "" {
			body["conflict"] = gin.H{
				"id":    verr.ConflictID,
				"start": verr.ConflictStart,
				"end":   verr.ConflictEnd,
			}
		}
		c.JSON(status, body)
		return
	}

	var serr *timetable.SettingsError
	if errors.As(err, &serr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": serr.Error(), "fields": serr.Fields})
		return
	}

	switch {
	case errors.Is(err, timetable.ErrAssignmentNotFound),
		errors.Is(err, timetable.ErrSubjectNotFound),
		errors.Is(err, attendance.ErrNotHoliday):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, timetable.ErrDayFull),
		errors.Is(err, timetable.ErrDuplicateAssignment):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, timetable.ErrInvalidWeekday),
		errors.Is(err, timetable.ErrDayHoliday),
		errors.Is(err, models.ErrInvalidDate),
		errors.Is(err, attendance.ErrInvalidStatus),
		errors.Is(err, attendance.ErrInvalidSlot),
		errors.Is(err, attendance.ErrIncompleteMarks),
		errors.Is(err, attendance.ErrNoPeriods),
		errors.Is(err, attendance.ErrNegativeProjection):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, datasync.ErrLocalUnavailable):
		getLogger(c).Error("Local store unavailable", zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, "Local store unavailable", err.Error())
	default:
		getLogger(c).Error("Request failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", err.Error())
	}
}

// badRequest answers a payload that failed to bind.
func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
}
