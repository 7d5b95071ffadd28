// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the session's credential pair in a local sqlite
// database. The credential pair is the only state the client keeps on disk.
package store

import (
	"context"

	"github.com/MKhiriev/go-collab-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_repository_mock.go -package=mock

// CredentialRepository stores the access and refresh secrets under fixed keys.
type CredentialRepository interface {
	// Load returns the stored pair. Missing keys yield empty halves, never an
	// error.
	Load(ctx context.Context) (models.CredentialPair, error)

	// SavePair replaces both secrets in one transaction.
	SavePair(ctx context.Context, pair models.CredentialPair) error

	// SaveAccess replaces the access secret only, keeping the refresh secret.
	SaveAccess(ctx context.Context, accessSecret string) error

	// Clear removes both secrets.
	Clear(ctx context.Context) error
}
