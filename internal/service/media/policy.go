// Package media enforces the upload policy for cooking and cleaning captures
// and forwards accepted files to the backend. Camera and QR capture happen on
// the device; this side only sees the resulting file, and an absent file
// (picker dismissed) is a no-op, not an error.
package media

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/arsathrahman00-arsath/fpda/internal/config"
	"github.com/arsathrahman00-arsath/fpda/pkg/clients/fpda"
)

// ErrTooLarge marks an upload over the configured size cap for its kind.
var ErrTooLarge = errors.New("file exceeds size limit")

// ErrUnsupportedType marks a mime type that is neither image nor video.
var ErrUnsupportedType = errors.New("unsupported media type")

const bytesPerMB = int64(1 << 20)

// Policy holds the per-kind byte limits.
type Policy struct {
	maxImageBytes int64
	maxVideoBytes int64
}

// NewPolicy derives byte limits from configuration.
func NewPolicy(cfg config.MediaConfig) Policy {
	return Policy{
		maxImageBytes: cfg.MaxImageMB * bytesPerMB,
		maxVideoBytes: cfg.MaxVideoMB * bytesPerMB,
	}
}

// Check validates a candidate upload against the policy.
func (p Policy) Check(contentType string, size int64) error {
	var limit int64
	switch {
	case strings.HasPrefix(contentType, "image/"):
		limit = p.maxImageBytes
	case strings.HasPrefix(contentType, "video/"):
		limit = p.maxVideoBytes
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedType, contentType)
	}

	if size > limit {
		return fmt.Errorf("%w: %d bytes over %d byte cap for %s", ErrTooLarge, size, limit, contentType)
	}
	return nil
}

// Uploader is the slice of the API client this service needs.
type Uploader interface {
	UploadCookingMedia(ctx context.Context, up fpda.MediaUpload) error
	UploadCleaningMedia(ctx context.Context, up fpda.MediaUpload) error
}

// Service gates captures through the policy before forwarding them.
type Service struct {
	policy   Policy
	uploader Uploader
	logger   *zap.Logger
}

// NewService wires a media service instance.
func NewService(policy Policy, uploader Uploader, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{policy: policy, uploader: uploader, logger: logger}
}

// SubmitCooking forwards a cooking-log capture. A nil reader (no file picked)
// succeeds without touching the backend.
func (s *Service) SubmitCooking(ctx context.Context, up fpda.MediaUpload) error {
	return s.submit(ctx, up, s.uploader.UploadCookingMedia)
}

// SubmitCleaning forwards a cleaning-log capture.
func (s *Service) SubmitCleaning(ctx context.Context, up fpda.MediaUpload) error {
	return s.submit(ctx, up, s.uploader.UploadCleaningMedia)
}

func (s *Service) submit(ctx context.Context, up fpda.MediaUpload, send func(context.Context, fpda.MediaUpload) error) error {
	if up.Reader == nil {
		s.logger.Debug("media submission without file, nothing to upload")
		return nil
	}

	if err := s.policy.Check(up.ContentType, up.Size); err != nil {
		return err
	}

	return send(ctx, up)
}
