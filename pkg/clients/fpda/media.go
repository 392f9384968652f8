package fpda

import (
	"context"
	"io"
)

// MediaUpload is a captured photo or video forwarded to the backend. A nil
// Reader means the user dismissed the picker and there is nothing to send.
type MediaUpload struct {
	Reader      io.Reader
	FileName    string
	ContentType string
	Size        int64
	CaptureDate string
	CapturedBy  string
	Notes       string
}

// UploadCookingMedia posts a cooking-log capture.
func (c *Client) UploadCookingMedia(ctx context.Context, up MediaUpload) error {
	return c.uploadMedia(ctx, "cooking_media_upload", up)
}

// UploadCleaningMedia posts a cleaning-log capture.
func (c *Client) UploadCleaningMedia(ctx context.Context, up MediaUpload) error {
	return c.uploadMedia(ctx, "cleaning_media_upload", up)
}

func (c *Client) uploadMedia(ctx context.Context, path string, up MediaUpload) error {
	if up.Reader == nil {
		return nil
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("media_file", up.FileName, up.Reader).
		SetMultipartFormData(map[string]string{
			"capture_date": up.CaptureDate,
			"captured_by":  up.CapturedBy,
			"notes":        up.Notes,
		}).
		Post(path)

	return c.decode(path, resp, err, nil)
}
