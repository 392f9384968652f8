package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/domain/models"
	"github.com/arsathrahman00-arsath/fpda/internal/repository/sheets"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
)

const dateLayout = "2006-01-02"

// WorkflowHandler serves the operational screens: scheduling, requirements,
// material receipt, packing, allocation and delivery.
type WorkflowHandler struct {
	client   *fpda.Client
	exporter sheets.Exporter
	logger   *zap.Logger
}

// NewWorkflowHandler constructs the HTTP handler adapter. A nil exporter
// disables report export.
func NewWorkflowHandler(client *fpda.Client, exporter sheets.Exporter, logger *zap.Logger) *WorkflowHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WorkflowHandler{client: client, exporter: exporter, logger: logger}
}

// dateParam validates the ?date query used by every by-date lookup.
func dateParam(c *gin.Context) (string, bool) {
	date := strings.TrimSpace(c.Query("date"))
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date is required"})
		return "", false
	}
	if _, err := time.Parse(dateLayout, date); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return "", false
	}
	return date, true
}

// CreateSchedule plans a recipe type for a date.
func (h *WorkflowHandler) CreateSchedule(c *gin.Context) {
	var s models.DeliverySchedule
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schd_date and recipe_type are required"})
		return
	}
	if _, err := time.Parse(dateLayout, s.SchdDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "schd_date must be YYYY-MM-DD"})
		return
	}

	if err := h.client.CreateSchedule(c.Request.Context(), s); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// SchedulesByDate lists the schedule for a date.
func (h *WorkflowHandler) SchedulesByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	schedules, err := h.client.SchedulesByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": schedules})
}

// CreateRequirement records one location's requirement for a date.
func (h *WorkflowHandler) CreateRequirement(c *gin.Context) {
	var r models.DeliveryRequirement
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "req_date and masjid_name are required"})
		return
	}
	if _, err := time.Parse(dateLayout, r.ReqDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "req_date must be YYYY-MM-DD"})
		return
	}

	if err := h.client.CreateRequirement(c.Request.Context(), r); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// RequirementsByDate lists per-location requirements for a date.
func (h *WorkflowHandler) RequirementsByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	reqs, err := h.client.RequirementsByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": reqs})
}

// MaterialReceiptOptions returns the dropdown data for the receipt form.
func (h *WorkflowHandler) MaterialReceiptOptions(c *gin.Context) {
	opts, err := h.client.MaterialReceiptOptions(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": opts})
}

// CreateMaterialReceipt records received raw material.
func (h *WorkflowHandler) CreateMaterialReceipt(c *gin.Context) {
	var r models.MaterialReceipt
	if err := c.ShouldBindJSON(&r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "mat_rec_date, sup_name and item_name are required"})
		return
	}

	if err := h.client.CreateMaterialReceipt(c.Request.Context(), r); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// CreatePacking records a packing row.
func (h *WorkflowHandler) CreatePacking(c *gin.Context) {
	var p models.Packing
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pack_date and recipe_type are required"})
		return
	}

	if err := h.client.CreatePacking(c.Request.Context(), p); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// PackingsByDate lists packing rows for a date.
func (h *WorkflowHandler) PackingsByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	packings, err := h.client.PackingsByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": packings})
}

// CreateAllocation assigns packed quantity to a location.
func (h *WorkflowHandler) CreateAllocation(c *gin.Context) {
	var a models.Allocation
	if err := c.ShouldBindJSON(&a); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "alloc_date and masjid_name are required"})
		return
	}

	if err := h.client.CreateAllocation(c.Request.Context(), a); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// AllocationsByDate lists allocation rows for a date.
func (h *WorkflowHandler) AllocationsByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	allocations, err := h.client.AllocationsByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": allocations})
}

// CreateDelivery confirms a hand-over and mirrors it to the report sheet.
func (h *WorkflowHandler) CreateDelivery(c *gin.Context) {
	var d models.Delivery
	if err := c.ShouldBindJSON(&d); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "location and delivery_date are required"})
		return
	}

	if d.DeliveryBy == "" {
		d.DeliveryBy = currentUser(c).UserName
	}

	if err := h.client.CreateDelivery(c.Request.Context(), d); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if h.exporter != nil {
		if err := h.exporter.AppendDelivery(c.Request.Context(), d); err != nil {
			// The delivery is already recorded; losing the report row is not fatal.
			h.logger.Warn("failed to export delivery row", zap.Error(err))
		}
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success"})
}

// DeliveriesByDate lists confirmed deliveries for a date.
func (h *WorkflowHandler) DeliveriesByDate(c *gin.Context) {
	date, ok := dateParam(c)
	if !ok {
		return
	}

	deliveries, err := h.client.DeliveriesByDate(c.Request.Context(), date)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": deliveries})
}
