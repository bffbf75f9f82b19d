package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/petcare-cl/petcare-cli/pkg/api"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 30 * time.Second

// User-facing fallback messages, matching what the backend itself emits.
const (
	msgNoConnection = "No se pudo conectar con el servidor"
	msgRequestError = "Error en la petición"
)

// Sessions is the slice of the session store the pipeline needs: the token
// to attach, the device ID to report, and the purge hook for 401 replies.
type Sessions interface {
	Token(ctx context.Context) string
	DeviceID(ctx context.Context) string
	PurgeCredentials(ctx context.Context) bool
}

// Client is the single funnel for every call to the backend. It attaches the
// bearer token, normalizes every outcome into an api.Response and never
// returns an error: callers branch on Response.Success.
type Client struct {
	httpClient *http.Client
	sessions   Sessions
	baseURL    string
}

// NewClient creates the request pipeline. sessions may be nil for a purely
// unauthenticated client (public QR scans, legal content).
func NewClient(baseURL string, timeout time.Duration, sessions Sessions) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL:  baseURL,
		sessions: sessions,
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Keep the bearer header across redirects.
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// Get performs a GET request with optional query parameters.
func (c *Client) Get(ctx context.Context, path string, query url.Values) *api.Response {
	return c.do(ctx, http.MethodGet, path, query, nil, "")
}

// Post performs a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) *api.Response {
	return c.doJSON(ctx, http.MethodPost, path, body)
}

// Put performs a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body any) *api.Response {
	return c.doJSON(ctx, http.MethodPut, path, body)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) *api.Response {
	return c.do(ctx, http.MethodDelete, path, nil, nil, "")
}

func (c *Client) doJSON(ctx context.Context, method, path string, body any) *api.Response {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return localFailure(fmt.Errorf("failed to marshal request body: %w", err))
		}
		reader = bytes.NewReader(data)
	}
	return c.do(ctx, method, path, nil, reader, "application/json")
}

// do dispatches one request and normalizes the outcome. The error taxonomy:
// HTTP error status -> server envelope or generic message (401 also purges
// the stored credentials); no response at all -> StatusNetworkError; fault
// before dispatch -> StatusLocalError.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body io.Reader, contentType string) *api.Response {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, body)
	if err != nil {
		return localFailure(fmt.Errorf("failed to create request: %w", err))
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	c.authorize(ctx, req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return networkFailure(method, path, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return networkFailure(method, path, err)
	}

	if resp.StatusCode == http.StatusUnauthorized && c.sessions != nil {
		// Session invalid on the server: drop the local credentials. The
		// published auth state stays with the lifecycle controller, which
		// observes the purge on its next validation.
		if !c.sessions.PurgeCredentials(ctx) {
			slog.Warn("failed to purge credentials after 401", "path", path)
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return normalizeError(resp.StatusCode, respBody)
	}

	return normalizeSuccess(resp.StatusCode, respBody)
}

// authorize attaches the bearer token and device ID of the current session.
func (c *Client) authorize(ctx context.Context, req *http.Request) {
	if c.sessions == nil {
		return
	}
	attachBearer(req, c.sessions.Token(ctx))
	if deviceID := c.sessions.DeviceID(ctx); deviceID != "" {
		req.Header.Set("X-Device-ID", deviceID)
	}
}

// attachBearer sets the Authorization header when a token is present. An
// absent token sends the request unauthenticated; the server decides
// whether that is allowed.
func attachBearer(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// normalizeSuccess returns the envelope the backend sent. An empty body on a
// 2xx reply (e.g. 204) counts as a bare success.
func normalizeSuccess(status int, body []byte) *api.Response {
	if len(bytes.TrimSpace(body)) == 0 {
		return &api.Response{Success: true, Status: status}
	}
	var out api.Response
	if err := json.Unmarshal(body, &out); err != nil {
		slog.Warn("unparseable success body", "status", status, "error", err)
		return &api.Response{Status: status, Message: msgRequestError}
	}
	out.Status = status
	return &out
}

// normalizeError builds the failed envelope for an HTTP error status,
// preferring whatever the backend said over the generic fallback.
func normalizeError(status int, body []byte) *api.Response {
	var out api.Response
	if err := json.Unmarshal(body, &out); err == nil &&
		(out.Message != "" || out.Error != "" || len(out.Details) > 0) {
		out.Success = false
		out.Status = status
		return &out
	}
	return &api.Response{
		Status:  status,
		Message: fmt.Sprintf("%s (%d)", msgRequestError, status),
	}
}

// networkFailure: the request left but no response arrived.
func networkFailure(method, path string, err error) *api.Response {
	slog.Debug("request transport failure", "method", method, "path", path, "error", err)
	return &api.Response{Status: api.StatusNetworkError, Message: msgNoConnection}
}

// localFailure: the request could not even be constructed.
func localFailure(err error) *api.Response {
	return &api.Response{Status: api.StatusLocalError, Message: err.Error()}
}
