package api

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Transport-level sentinel statuses used in Response.Status when no HTTP
// response was produced at all.
const (
	// StatusNetworkError marks a request that never reached the server
	// (timeout, DNS failure, connection refused).
	StatusNetworkError = 0

	// StatusLocalError marks a request that failed before dispatch
	// (request construction or body encoding fault).
	StatusLocalError = -1
)

// ValidationDetail is one field-level validation failure reported by the server.
type ValidationDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the envelope every backend endpoint returns. The request
// pipeline hands it to callers as-is on success and fills it from the error
// taxonomy otherwise, so consumers branch on Success and never need to
// handle a transport error separately.
type Response struct {
	Data    json.RawMessage    `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
	Error   string             `json:"error,omitempty"`
	Details []ValidationDetail `json:"details,omitempty"`
	// Status is the HTTP status of the reply, or one of the sentinel
	// statuses above. Not part of the wire format.
	Status  int  `json:"-"`
	Success bool `json:"success"`
}

// DecodeData unmarshals the Data payload into v.
func (r *Response) DecodeData(v any) error {
	if len(r.Data) == 0 {
		return fmt.Errorf("response has no data")
	}
	if err := json.Unmarshal(r.Data, v); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

// NetworkFailure reports whether the request never reached the server.
func (r *Response) NetworkFailure() bool {
	return r.Status == StatusNetworkError
}

// ErrorText builds user-facing failure text from the envelope. Field-level
// details take priority because they carry the specifics; Message and Error
// are usually generic ("Validation failed").
func (r *Response) ErrorText() string {
	if len(r.Details) > 0 {
		parts := make([]string, 0, len(r.Details))
		for _, d := range r.Details {
			parts = append(parts, fmt.Sprintf("%s: %s", d.Field, d.Message))
		}
		return strings.Join(parts, "\n")
	}
	if r.Message != "" {
		return r.Message
	}
	if r.Error != "" {
		return r.Error
	}
	return "Error desconocido"
}
