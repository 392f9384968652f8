package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/repository/sheets"
	"github.com/arsathrahman00-arsath/fpda/internal/service/planning"
)

// PlanningHandler serves the day-requirement screen: lookup, preview and
// compute-and-save.
type PlanningHandler struct {
	planner  *planning.Planner
	exporter sheets.Exporter
	logger   *zap.Logger
}

// NewPlanningHandler constructs the HTTP handler adapter. A nil exporter
// disables report export.
func NewPlanningHandler(planner *planning.Planner, exporter sheets.Exporter, logger *zap.Logger) *PlanningHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PlanningHandler{planner: planner, exporter: exporter, logger: logger}
}

// DayRequirementByDate returns the saved day requirement for a date.
func (h *PlanningHandler) DayRequirementByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	header, lines, err := h.planner.Lookup(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if header == nil {
		c.JSON(http.StatusOK, gin.H{"data": nil})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": gin.H{"header": header, "lines": lines}})
}

// PreviewDayRequirement computes the date's plans without saving, so the
// kitchen can review the multiplier before committing.
func (h *PlanningHandler) PreviewDayRequirement(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	plans, err := h.planner.ComputeForDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plans})
}

type computeRequest struct {
	Date string `json:"date" binding:"required"`
}

// ComputeDayRequirement computes and persists the date's plans, then mirrors
// them to the report sheet.
func (h *PlanningHandler) ComputeDayRequirement(c *gin.Context) {
	var req computeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return
	}

	plans, err := h.planner.ComputeAndSave(c.Request.Context(), req.Date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if h.exporter != nil {
		for _, plan := range plans {
			if err := h.exporter.AppendDayRequirement(c.Request.Context(), plan.Header, plan.Lines); err != nil {
				h.logger.Warn("failed to export day requirement", zap.Error(err))
			}
		}
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "data": plans})
}
