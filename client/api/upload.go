package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"hospital-ops/client/models"
)

// MaxUploadSize is the attachment size cap enforced before any network call.
const MaxUploadSize = 10 * 1024 * 1024

// Upload POSTs a file as multipart form data, bypassing the JSON path.
// Oversized files are rejected here so no request is ever issued for them.
func (c *Client) Upload(ctx context.Context, path, field, filename string, r io.Reader, size int64) error {
	if size > MaxUploadSize {
		return fmt.Errorf("%s: %w", filename, models.ErrFileTooLarge)
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := io.Copy(part, r); err != nil {
		return fmt.Errorf("copy file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http error: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}
	return nil
}
