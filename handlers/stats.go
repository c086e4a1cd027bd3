package handlers

import (
	"net/http"

	"attendly/services/datasync"

	"github.com/gin-gonic/gin"
)

// StatsHandler serves overall and per-subject figures and the predictor.
type StatsHandler struct {
	Sessions *datasync.Registry
}

func (h *StatsHandler) OverallHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	stats, err := attendanceService(c, coord).Overall()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *StatsHandler) PerSubjectHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	subjects, err := attendanceService(c, coord).PerSubject()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *StatsHandler) PredictHandler(c *gin.Context) {
	coord, ok := session(c, h.Sessions)
	if !ok {
		return
	}
	var req struct {
		FutureAttend int `json:"futureAttend"`
		FutureMiss   int `json:"futureMiss"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	svc := attendanceService(c, coord)
	prediction, err := svc.Predict(req.FutureAttend, req.FutureMiss)
	if err != nil {
		respondError(c, err)
		return
	}
	current, err := svc.Overall()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"current": current, "prediction": prediction})
}
