// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-collab-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// SessionManager owns the credential pair and the cached identity. It is the
// only writer of session state; every other component reads it through
// Session, AccessSecret or Subscribe.
type SessionManager interface {
	// Boot restores the session from local storage. It renews the access
	// secret at most once and always leaves the Loading state.
	Boot(ctx context.Context) models.Session

	// Login obtains a credential pair and resolves only after the identity
	// fetch completes. On failure the prior session is left untouched.
	Login(ctx context.Context, username, password string) error

	// Register creates an account and logs in with the same credentials.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Logout clears secrets and identity without contacting the backend.
	Logout()

	// DeleteAccount deletes the remote account and always logs out locally.
	// A remote failure is returned after the local logout.
	DeleteAccount(ctx context.Context) error

	// Session returns a snapshot of the current state.
	Session() models.Session

	// Subscribe registers fn for every state change. fn runs synchronously on
	// the writer's goroutine and must not block.
	Subscribe(fn func(models.Session)) (unsubscribe func())

	// AccessSecret returns the current bearer credential or "".
	AccessSecret() string
}

// CollaborationService runs the requester/researcher workflow over
// collaboration requests. It keeps local copies of the sent and received
// lists for the current identity.
type CollaborationService interface {
	Send(ctx context.Context, toResearcherID int64, message string) (models.CollaborationRequest, error)
	ListSent(ctx context.Context) ([]models.CollaborationRequest, error)
	// ListReceived returns an empty list without a network call for
	// non-researcher identities.
	ListReceived(ctx context.Context) ([]models.CollaborationRequest, error)
	// UpdateStatus applies status optimistically and reconciles it with the
	// server's record, restoring the prior status on failure.
	UpdateStatus(ctx context.Context, id int64, status models.CollaborationStatus) (models.CollaborationRequest, error)
	// Refresh fetches both lists in parallel.
	Refresh(ctx context.Context) error

	Sent() []models.CollaborationRequest
	Received() []models.CollaborationRequest
	PendingReceivedCount() int
}

// ResearcherService reads the public researcher directory and creates the
// caller's own researcher profile.
type ResearcherService interface {
	List(ctx context.Context) ([]models.ResearcherProfile, error)
	Get(ctx context.Context, id int64) (models.ResearcherProfile, error)
	CreateProfile(ctx context.Context, req models.CreateProfileRequest) (models.ResearcherProfile, error)
}
