package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

// File is one part of a multipart upload.
type File struct {
	Content io.Reader
	Field   string
	Name    string
}

// Upload performs a multipart/form-data POST. onProgress, when non-nil, is
// invoked with 0-100 integers as the body is transmitted. Same normalization
// and error taxonomy as the JSON verbs.
func (c *Client) Upload(ctx context.Context, path string, fields map[string]string, files []File, onProgress func(percent int)) *api.Response {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := writer.WriteField(name, value); err != nil {
			return localFailure(fmt.Errorf("failed to write form field %q: %w", name, err))
		}
	}
	for _, file := range files {
		part, err := writer.CreateFormFile(file.Field, file.Name)
		if err != nil {
			return localFailure(fmt.Errorf("failed to create form file %q: %w", file.Name, err))
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return localFailure(fmt.Errorf("failed to read file %q: %w", file.Name, err))
		}
	}
	if err := writer.Close(); err != nil {
		return localFailure(fmt.Errorf("failed to finalize multipart body: %w", err))
	}

	body := io.Reader(&buf)
	if onProgress != nil {
		body = &progressReader{r: body, total: int64(buf.Len()), onProgress: onProgress}
	}

	return c.do(ctx, "POST", path, nil, body, writer.FormDataContentType())
}

// progressReader reports transmission progress as whole percent steps.
type progressReader struct {
	r          io.Reader
	onProgress func(percent int)
	total      int64
	sent       int64
	last       int
}

func (p *progressReader) Read(b []byte) (int, error) {
	n, err := p.r.Read(b)
	if n > 0 {
		p.sent += int64(n)
		percent := 100
		if p.total > 0 {
			percent = int(p.sent * 100 / p.total)
		}
		if percent > 100 {
			percent = 100
		}
		if percent != p.last {
			p.last = percent
			p.onProgress(percent)
		}
	}
	return n, err
}
