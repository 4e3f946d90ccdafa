package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"coachbooking/internal/config"
	"coachbooking/internal/domain"
	"coachbooking/internal/session"

	"go.uber.org/zap"
)

// Client talks JSON to the reservation API under /api/v1. Requests carry the
// bearer token from the session store when one is present; without a token
// the request goes out anonymous.
type Client struct {
	BaseURL string
	HTTP    *http.Client
	Session *session.Store
	Log     *zap.Logger
}

func NewClient(env config.Env, store *session.Store, log *zap.Logger) *Client {
	return &Client{
		BaseURL: env.UpstreamURL,
		HTTP:    &http.Client{Timeout: env.HTTPTimeout},
		Session: store,
		Log:     log,
	}
}

// errorEnvelope is the upstream error payload shape.
type errorEnvelope struct {
	Message string `json:"message"`
}

// Do issues one request and decodes the JSON response into out when out is
// non-nil. Upstream failures come back as domain errors keyed by status.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return domain.InternalError{Msg: "failed to encode request body", Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return domain.InternalError{Msg: "failed to build request", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if c.Session != nil {
		if token := c.Session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return domain.UpstreamError{Msg: "reservation service unreachable", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.statusError(resp)
	}
	if out == nil {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return domain.UpstreamError{Status: resp.StatusCode, Msg: "failed to decode response", Err: err}
	}
	return nil
}

func (c *Client) statusError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var env errorEnvelope
	msg := ""
	if json.Unmarshal(raw, &env) == nil {
		msg = strings.TrimSpace(env.Message)
	}
	if c.Log != nil {
		c.Log.Warn("upstream request failed",
			zap.Int("status", resp.StatusCode),
			zap.String("url", resp.Request.URL.Path),
			zap.String("message", msg),
		)
	}
	switch resp.StatusCode {
	case http.StatusBadRequest:
		return domain.ValidationError{Msg: msg, Err: fmt.Errorf("status %d", resp.StatusCode)}
	case http.StatusUnauthorized, http.StatusForbidden:
		return domain.UnauthorizedError{Msg: msg, Err: fmt.Errorf("status %d", resp.StatusCode)}
	case http.StatusNotFound:
		return domain.NotFoundError{Resource: msg}
	case http.StatusConflict:
		return domain.ConflictError{Msg: msg}
	default:
		return domain.UpstreamError{Status: resp.StatusCode, Msg: msg}
	}
}
