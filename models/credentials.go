// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Fixed storage keys under which the credential pair is persisted locally.
const (
	AccessSecretKey  = "access"
	RefreshSecretKey = "refresh"
)

// CredentialPair holds the two opaque bearer secrets issued by the token
// endpoint.
//
// AccessSecret is short-lived and is attached as a bearer credential to
// authenticated requests. RefreshSecret is exchanged only for a new
// AccessSecret and is never sent as a bearer credential itself.
type CredentialPair struct {
	// AccessSecret is the short-lived bearer credential.
	AccessSecret string `json:"access"`

	// RefreshSecret is the longer-lived renewal credential.
	RefreshSecret string `json:"refresh"`
}

// HasAccess reports whether an access secret is present.
func (c CredentialPair) HasAccess() bool {
	return c.AccessSecret != ""
}

// HasRefresh reports whether a refresh secret is present.
func (c CredentialPair) HasRefresh() bool {
	return c.RefreshSecret != ""
}

// IsEmpty reports whether neither secret is present.
func (c CredentialPair) IsEmpty() bool {
	return !c.HasAccess() && !c.HasRefresh()
}

// LoginRequest is the body of POST /api/token/.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest is the body of POST /api/token/refresh/.
type RefreshRequest struct {
	RefreshSecret string `json:"refresh"`
}

// RefreshResponse is the body returned by POST /api/token/refresh/.
type RefreshResponse struct {
	AccessSecret string `json:"access"`
}
