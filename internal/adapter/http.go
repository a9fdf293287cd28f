package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/universal-workshop/syncagent/internal/config"
	"github.com/universal-workshop/syncagent/internal/logger"
	"github.com/universal-workshop/syncagent/internal/utils"
	"github.com/universal-workshop/syncagent/models"
)

type httpRemoteAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPRemoteAdapter constructs the HTTP/JSON implementation of
// [RemoteAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPRemoteAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (RemoteAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	h := &httpRemoteAdapter{client: client, logger: logger}
	h.SetToken(appCfg.SessionToken)

	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [RemoteAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpRemoteAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [RemoteAdapter].
func (h *httpRemoteAdapter) Token() string {
	return h.token
}

// Call implements [RemoteAdapter]. It POSTs the replayed operation to
// POST /api/method/{method_name}. The expiry claim of the session token is
// checked locally first; an expired session short-circuits with
// ErrSessionExpired before any network traffic.
func (h *httpRemoteAdapter) Call(ctx context.Context, req models.RPCRequest) (models.RPCResponse, error) {
	if h.token != "" && utils.TokenExpired(h.token, time.Now()) {
		return models.RPCResponse{}, ErrSessionExpired
	}

	var result models.RPCResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetAuthToken(h.token).
		SetBody(map[string]any{"arguments": req.Arguments}).
		SetResult(&result).
		Post("/api/method/" + url.PathEscape(req.Method))
	if err != nil {
		// resty errors here are network-level: DNS, refused, timeout
		return models.RPCResponse{}, fmt.Errorf("%w: call %s: %w", ErrTransient, req.Method, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RPCResponse{}, fmt.Errorf("call %s: %w", req.Method, err)
	}

	if !result.Success {
		// 2xx with success=false is the endpoint rejecting the payload
		return result, fmt.Errorf("%w: call %s: %s", ErrPermanent, req.Method, result.Error)
	}

	return result, nil
}

// Ping implements [RemoteAdapter]. It GETs /api/ping with the configured
// timeout; any failure is reported as transient since the probe only answers
// "is the endpoint reachable right now".
func (h *httpRemoteAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/ping")
	if err != nil {
		return fmt.Errorf("%w: ping: %w", ErrTransient, err)
	}
	if resp.IsError() {
		return fmt.Errorf("%w: ping: http %d", ErrTransient, resp.StatusCode())
	}

	return nil
}
