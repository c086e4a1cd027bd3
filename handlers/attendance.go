package handlers

import (
	"net/http"
	"strconv"
	"time"

	"attendly/models"
	"attendly/services/datasync"

	"github.com/gin-gonic/gin"
)

// AttendanceHandler serves the ledger: day views, marking, holidays and the calendar.
type AttendanceHandler struct {
	Sessions *datasync.Registry
}

func (h *AttendanceHandler) ListRecordsHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	records, err := attendanceService(c, coord).Records()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

func (h *AttendanceHandler) GetDayHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	view, err := attendanceService(c, coord).Day(c.Param("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitDayHandler records present/absent marks for every resolved period of a date.
func (h *AttendanceHandler) SubmitDayHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req struct {
		Periods map[string]models.AttendanceStatus `json:"periods"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	result, err := attendanceService(c, coord).Submit(c.Param("date"), req.Periods)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *AttendanceHandler) MarkHolidayHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req struct {
		Reason string `json:"reason"`
	}
	// The body is optional; an empty reason falls back to the default.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, err)
			return
		}
	}
	rec, err := attendanceService(c, coord).MarkHoliday(c.Param("date"), req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"record": rec})
}

func (h *AttendanceHandler) UnmarkHolidayHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	if err := attendanceService(c, coord).UnmarkHoliday(c.Param("date")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Holiday removed"})
}

func (h *AttendanceHandler) MonthHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid month"})
		return
	}
	days, err := attendanceService(c, coord).Month(year, time.Month(month))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"year": year, "month": month, "days": days})
}
