package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-collab-client/internal/config"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/utils"
	"github.com/MKhiriev/go-collab-client/models"
)

const (
	pathRegister      = "/api/auth/register/"
	pathToken         = "/api/token/"
	pathTokenRefresh  = "/api/token/refresh/"
	pathMe            = "/api/auth/me/"
	pathDeleteAccount = "/api/auth/delete/"

	pathCollaborationSend     = "/api/papers/collaboration/send/"
	pathCollaborationSent     = "/api/papers/collaboration/sent/"
	pathCollaborationReceived = "/api/papers/collaboration/received/"
	pathCollaborationUpdate   = "/api/papers/collaboration/update/%d/"

	pathResearchers      = "/api/papers/researcher/"
	pathResearcher       = "/api/papers/researcher/%d/"
	pathResearcherCreate = "/api/papers/researcher/create/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	ids    *utils.UUIDGenerator

	mu     sync.RWMutex
	tokens TokenSource

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		ids:    utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
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

// SetTokenSource implements [ServerAdapter]. src is consulted on every
// authenticated request, so a renewed access secret is picked up without
// re-registering. A nil source sends no Authorization header.
func (h *httpServerAdapter) SetTokenSource(src TokenSource) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.tokens = src
}

func (h *httpServerAdapter) accessSecret() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.tokens == nil {
		return ""
	}
	return h.tokens.AccessSecret()
}

// call describes one backend request.
type call struct {
	op          string
	method      string
	path        string
	requireAuth bool
	multipart   bool
	body        any
	form        map[string]string
}

// do sends c and applies the response contract, decoding a 2xx body into out.
func (h *httpServerAdapter) do(ctx context.Context, c call, out any) error {
	requestID := h.ids.ForContext(ctx)

	req := h.client.R().
		SetContext(ctx).
		SetHeaders(buildHeaders(h.accessSecret(), c.requireAuth, c.multipart)).
		SetHeader(headerRequestID, requestID)

	switch {
	case c.multipart:
		req.SetMultipartFormData(c.form)
	case c.body != nil:
		req.SetBody(c.body)
	}

	resp, err := req.Execute(c.method, c.path)
	if err != nil {
		h.logger.Debug().
			Str("request_id", requestID).
			Str("op", c.op).
			Err(err).
			Msg("request failed")
		return fmt.Errorf("%s request: %w: %w", c.op, ErrNetworkFailure, err)
	}

	if err = interpret(resp, out); err != nil {
		h.logger.Debug().
			Str("request_id", requestID).
			Str("op", c.op).
			Int("status", resp.StatusCode()).
			Msg("request rejected")
		return err
	}

	return nil
}

// Register implements [ServerAdapter]. It POSTs the new account to
// POST /api/auth/register/ without a bearer credential. The response body is
// ignored; registration does not log in. A rejected registration returns an
// [*HTTPError] wrapping [ErrBadRequest] whose text is the server's detail.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) error {
	return h.do(ctx, call{op: "register", method: http.MethodPost, path: pathRegister, body: req}, nil)
}

// ObtainTokens implements [ServerAdapter]. It POSTs username and password to
// POST /api/token/ without a bearer credential and returns the access/refresh
// pair. Wrong credentials come back as [ErrUnauthorized]. A 2xx reply missing
// either half of the pair returns [ErrMalformedResponse].
func (h *httpServerAdapter) ObtainTokens(ctx context.Context, req models.LoginRequest) (models.CredentialPair, error) {
	var pair models.CredentialPair
	if err := h.do(ctx, call{op: "token", method: http.MethodPost, path: pathToken, body: req}, &pair); err != nil {
		return models.CredentialPair{}, err
	}
	if !pair.HasAccess() || !pair.HasRefresh() {
		return models.CredentialPair{}, fmt.Errorf("%w: token response without credential pair", ErrMalformedResponse)
	}

	return pair, nil
}

// RefreshAccess implements [ServerAdapter]. It POSTs refreshSecret to
// POST /api/token/refresh/ and returns the new access secret. The refresh
// secret travels only in the body, never as a bearer. An expired or revoked
// refresh secret comes back as [ErrUnauthorized]; a 2xx reply without an
// access value returns [ErrMalformedResponse].
func (h *httpServerAdapter) RefreshAccess(ctx context.Context, refreshSecret string) (string, error) {
	var refreshed models.RefreshResponse
	err := h.do(ctx, call{
		op:     "refresh",
		method: http.MethodPost,
		path:   pathTokenRefresh,
		body:   models.RefreshRequest{RefreshSecret: refreshSecret},
	}, &refreshed)
	if err != nil {
		return "", err
	}
	if refreshed.AccessSecret == "" {
		return "", fmt.Errorf("%w: refresh response without access secret", ErrMalformedResponse)
	}

	return refreshed.AccessSecret, nil
}

// Me implements [ServerAdapter]. It GETs /api/auth/me/ under the current
// bearer credential and returns the server-asserted identity. An expired or
// missing access secret comes back as [ErrUnauthorized].
func (h *httpServerAdapter) Me(ctx context.Context) (models.Identity, error) {
	var identity models.Identity
	if err := h.do(ctx, call{op: "me", method: http.MethodGet, path: pathMe, requireAuth: true}, &identity); err != nil {
		return models.Identity{}, err
	}

	return identity, nil
}

// DeleteAccount implements [ServerAdapter]. It sends
// DELETE /api/auth/delete/ under the current bearer credential. Local state is
// not touched here; the session manager clears it whatever the outcome.
func (h *httpServerAdapter) DeleteAccount(ctx context.Context) error {
	return h.do(ctx, call{op: "delete account", method: http.MethodDelete, path: pathDeleteAccount, requireAuth: true}, nil)
}

// SendCollaboration implements [ServerAdapter]. It POSTs the request to
// POST /api/papers/collaboration/send/ under the bearer credential and returns
// the created record, normally pending. Duplicate or invalid requests come
// back as [ErrBadRequest] with the server's detail text.
func (h *httpServerAdapter) SendCollaboration(ctx context.Context, req models.SendCollaborationRequest) (models.CollaborationRequest, error) {
	var created models.CollaborationRequest
	err := h.do(ctx, call{
		op:          "send collaboration",
		method:      http.MethodPost,
		path:        pathCollaborationSend,
		requireAuth: true,
		body:        req,
	}, &created)
	if err != nil {
		return models.CollaborationRequest{}, err
	}

	return created, nil
}

// ListSent implements [ServerAdapter]. It GETs
// /api/papers/collaboration/sent/ under the bearer credential. The slice keeps
// the backend order and is never nil on success.
func (h *httpServerAdapter) ListSent(ctx context.Context) ([]models.CollaborationRequest, error) {
	return h.listCollaborations(ctx, "list sent", pathCollaborationSent)
}

// ListReceived implements [ServerAdapter]. It GETs
// /api/papers/collaboration/received/ under the bearer credential. Accounts
// without a researcher profile get [ErrForbidden] or an empty list, depending
// on the backend.
func (h *httpServerAdapter) ListReceived(ctx context.Context) ([]models.CollaborationRequest, error) {
	return h.listCollaborations(ctx, "list received", pathCollaborationReceived)
}

func (h *httpServerAdapter) listCollaborations(ctx context.Context, op, path string) ([]models.CollaborationRequest, error) {
	requests := make([]models.CollaborationRequest, 0)
	if err := h.do(ctx, call{op: op, method: http.MethodGet, path: path, requireAuth: true}, &requests); err != nil {
		return nil, err
	}

	return requests, nil
}

// UpdateCollaborationStatus implements [ServerAdapter]. It PATCHes status
// to /api/papers/collaboration/update/{id}/ under the bearer credential and
// returns the server's record. A caller who is not the addressed researcher
// gets [ErrForbidden]; an unknown id gets [ErrNotFound].
func (h *httpServerAdapter) UpdateCollaborationStatus(ctx context.Context, id int64, status models.CollaborationStatus) (models.CollaborationRequest, error) {
	var updated models.CollaborationRequest
	err := h.do(ctx, call{
		op:          "update collaboration " + strconv.FormatInt(id, 10),
		method:      http.MethodPatch,
		path:        fmt.Sprintf(pathCollaborationUpdate, id),
		requireAuth: true,
		body:        models.UpdateCollaborationRequest{Status: status},
	}, &updated)
	if err != nil {
		return models.CollaborationRequest{}, err
	}

	return updated, nil
}

// ListResearchers implements [ServerAdapter]. It GETs the public directory
// at /api/papers/researcher/; no bearer credential is required.
func (h *httpServerAdapter) ListResearchers(ctx context.Context) ([]models.ResearcherProfile, error) {
	profiles := make([]models.ResearcherProfile, 0)
	if err := h.do(ctx, call{op: "list researchers", method: http.MethodGet, path: pathResearchers}, &profiles); err != nil {
		return nil, err
	}

	return profiles, nil
}

// GetResearcher implements [ServerAdapter]. It GETs the public profile at
// /api/papers/researcher/{id}/ including its papers. An unknown id returns
// [ErrNotFound].
func (h *httpServerAdapter) GetResearcher(ctx context.Context, id int64) (models.ResearcherProfile, error) {
	var profile models.ResearcherProfile
	if err := h.do(ctx, call{op: "get researcher", method: http.MethodGet, path: fmt.Sprintf(pathResearcher, id)}, &profile); err != nil {
		return models.ResearcherProfile{}, err
	}

	return profile, nil
}

// CreateResearcherProfile implements [ServerAdapter]. It POSTs the profile as
// multipart form fields to /api/papers/researcher/create/ under the bearer
// credential and returns the stored profile. Missing fields come back as
// [ErrBadRequest]; an account that already has a profile or is not a
// researcher gets the backend's rejection verbatim.
func (h *httpServerAdapter) CreateResearcherProfile(ctx context.Context, req models.CreateProfileRequest) (models.ResearcherProfile, error) {
	var profile models.ResearcherProfile
	err := h.do(ctx, call{
		op:          "create researcher profile",
		method:      http.MethodPost,
		path:        pathResearcherCreate,
		requireAuth: true,
		multipart:   true,
		form:        req.FormData(),
	}, &profile)
	if err != nil {
		return models.ResearcherProfile{}, err
	}

	return profile, nil
}
