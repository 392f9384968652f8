package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/service/media"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
)

// MediaHandler accepts cooking and cleaning captures from the dashboard.
type MediaHandler struct {
	svc    *media.Service
	logger *zap.Logger
}

// NewMediaHandler constructs the HTTP handler adapter.
func NewMediaHandler(svc *media.Service, logger *zap.Logger) *MediaHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MediaHandler{svc: svc, logger: logger}
}

// UploadCooking forwards a cooking-log capture.
func (h *MediaHandler) UploadCooking(c *gin.Context) {
	h.upload(c, h.svc.SubmitCooking)
}

// UploadCleaning forwards a cleaning-log capture.
func (h *MediaHandler) UploadCleaning(c *gin.Context) {
	h.upload(c, h.svc.SubmitCleaning)
}

func (h *MediaHandler) upload(c *gin.Context, submit func(ctx context.Context, up fpda.MediaUpload) error) {
	up := fpda.MediaUpload{
		CaptureDate: c.PostForm("capture_date"),
		CapturedBy:  currentUser(c).UserName,
		Notes:       c.PostForm("notes"),
	}

	fileHeader, err := c.FormFile("media_file")
	if err == nil && fileHeader != nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unable to read uploaded file"})
			return
		}
		defer file.Close()

		up.Reader = file
		up.FileName = fileHeader.Filename
		up.ContentType = fileHeader.Header.Get("Content-Type")
		up.Size = fileHeader.Size
	}
	// A missing file is a dismissed picker: accepted, nothing forwarded.

	if err := submit(c.Request.Context(), up); err != nil {
		respondError(c, h.logger, err)
		return
	}

	if up.Reader == nil {
		c.JSON(http.StatusOK, gin.H{"status": "success", "uploaded": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"status": "success", "uploaded": true})
}
