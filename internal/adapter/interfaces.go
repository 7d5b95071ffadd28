// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the request client used to talk to the
// researcher-collaboration backend.
//
// The primary abstraction is [ServerAdapter], which decouples the service layer
// from REST details. The package ships an HTTP implementation
// ([NewHTTPServerAdapter]) built on resty.
//
// Every non-2xx response is turned into an [*HTTPError] whose message is the
// server's own detail text. HTTPError unwraps to the sentinel values defined
// in errors.go so that callers can use [errors.Is] for status-agnostic handling
// (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400). Transport
// failures wrap [ErrNetworkFailure].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-collab-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// TokenSource supplies the access secret attached as the bearer credential.
// An empty string means no credential is held and no Authorization header is
// sent.
type TokenSource interface {
	AccessSecret() string
}

// ServerAdapter defines communication with the collaboration backend.
// Implementations are responsible for serialisation, header construction and
// mapping failures to the error contract of this package.
type ServerAdapter interface {
	// SetTokenSource installs the provider of the bearer credential. Requests
	// that require authentication read it at send time.
	SetTokenSource(src TokenSource)

	// Register creates a new account. The response body is ignored; callers
	// log in afterwards.
	Register(ctx context.Context, req models.RegisterRequest) error

	// ObtainTokens exchanges username and password for a credential pair.
	ObtainTokens(ctx context.Context, req models.LoginRequest) (models.CredentialPair, error)

	// RefreshAccess posts refreshSecret to the refresh endpoint and returns the
	// new access secret. The refresh secret is never sent as a bearer value.
	RefreshAccess(ctx context.Context, refreshSecret string) (string, error)

	// Me fetches the identity bound to the current access secret.
	Me(ctx context.Context) (models.Identity, error)

	// DeleteAccount removes the account bound to the current access secret.
	DeleteAccount(ctx context.Context) error

	// SendCollaboration creates a pending request addressed to a researcher.
	SendCollaboration(ctx context.Context, req models.SendCollaborationRequest) (models.CollaborationRequest, error)

	// ListSent returns the caller's outgoing requests in backend order.
	ListSent(ctx context.Context) ([]models.CollaborationRequest, error)

	// ListReceived returns requests addressed to the caller in backend order.
	ListReceived(ctx context.Context) ([]models.CollaborationRequest, error)

	// UpdateCollaborationStatus resolves a pending request and returns the
	// server's authoritative record.
	UpdateCollaborationStatus(ctx context.Context, id int64, status models.CollaborationStatus) (models.CollaborationRequest, error)

	// ListResearchers returns the public researcher directory.
	ListResearchers(ctx context.Context) ([]models.ResearcherProfile, error)

	// GetResearcher returns one researcher profile.
	GetResearcher(ctx context.Context, id int64) (models.ResearcherProfile, error)

	// CreateResearcherProfile submits the profile as multipart form fields.
	CreateResearcherProfile(ctx context.Context, req models.CreateProfileRequest) (models.ResearcherProfile, error)
}
