package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-grocery-sync/internal/config"
	"github.com/MKhiriev/go-grocery-sync/internal/logger"
	"github.com/MKhiriev/go-grocery-sync/internal/utils"
	"github.com/MKhiriev/go-grocery-sync/models"
	"github.com/go-resty/resty/v2"
)

// Server endpoints.
const (
	PathSync         = "/api/sync"
	PathSignIn       = "/api/auth/signin"
	PathRefreshToken = "/api/auth/refreshtoken"
)

// RequestIDHeader carries the sync run id of an outbound request.
const RequestIDHeader = "X-Request-ID"

type httpSyncAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPSyncAdapter constructs an HTTP/REST implementation of [SyncAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with it and the request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPSyncAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (SyncAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpSyncAdapter{client: client, logger: logger}, nil
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

// SetToken implements [SyncAdapter]. The token is whitespace-trimmed.
func (h *httpSyncAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [SyncAdapter].
func (h *httpSyncAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Synchronize implements [SyncAdapter] with POST /api/sync.
func (h *httpSyncAdapter) Synchronize(ctx context.Context, req models.SyncRequest) (models.SyncResponse, error) {
	log := h.requestLogger(ctx)

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(PathSync)
	if err != nil {
		log.Err(err).Str("func", "httpSyncAdapter.Synchronize").Msg("sync request failed")
		return models.SyncResponse{}, fmt.Errorf("%w: sync request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		log.Err(err).Str("func", "httpSyncAdapter.Synchronize").Int("status", resp.StatusCode()).Msg("sync rejected")
		return models.SyncResponse{}, err
	}

	var syncResp models.SyncResponse
	if err = decodeBody(resp, &syncResp); err != nil {
		log.Err(err).Str("func", "httpSyncAdapter.Synchronize").Msg("unusable sync response")
		return models.SyncResponse{}, err
	}

	log.Debug().Str("func", "httpSyncAdapter.Synchronize").
		Int("lists", len(syncResp.ShoppingLists)).
		Int("items", len(syncResp.ShoppingItems)).
		Int("stores", len(syncResp.StoreLocations)).
		Msg("sync response received")

	return syncResp, nil
}

// RefreshToken implements [SyncAdapter] with POST /api/auth/refreshtoken.
func (h *httpSyncAdapter) RefreshToken(ctx context.Context, refreshToken string) (models.TokenRefreshResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TokenRefreshRequest{RefreshToken: refreshToken}).
		Post(PathRefreshToken)
	if err != nil {
		return models.TokenRefreshResponse{}, fmt.Errorf("%w: refresh token request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TokenRefreshResponse{}, err
	}

	var refreshed models.TokenRefreshResponse
	if err = decodeBody(resp, &refreshed); err != nil {
		return models.TokenRefreshResponse{}, err
	}
	if refreshed.AccessToken == "" {
		return models.TokenRefreshResponse{}, fmt.Errorf("%w: no access token", ErrMalformedResponse)
	}

	return refreshed, nil
}

// SignIn implements [SyncAdapter] with POST /api/auth/signin. On success the
// returned access token is stored via SetToken.
func (h *httpSyncAdapter) SignIn(ctx context.Context, req models.SignInRequest) (models.JwtResponse, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(PathSignIn)
	if err != nil {
		return models.JwtResponse{}, fmt.Errorf("%w: sign in request: %w", ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.JwtResponse{}, err
	}

	var jwtResp models.JwtResponse
	if err = decodeBody(resp, &jwtResp); err != nil {
		return models.JwtResponse{}, err
	}
	if jwtResp.Token == "" {
		return models.JwtResponse{}, fmt.Errorf("%w: no access token", ErrMalformedResponse)
	}

	h.SetToken(jwtResp.Token)
	return jwtResp, nil
}

func (h *httpSyncAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		req.SetHeader(RequestIDHeader, runID)
	}
	return req
}

func (h *httpSyncAdapter) requestLogger(ctx context.Context) *logger.Logger {
	if runID, ok := utils.GetRunIDFromContext(ctx); ok {
		return &logger.Logger{Logger: h.logger.With().Str("run_id", runID).Logger()}
	}
	return h.logger
}

func decodeBody(resp *resty.Response, v any) error {
	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return ErrEmptyResponse
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	return nil
}
