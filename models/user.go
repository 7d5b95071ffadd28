// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Identity is the server-asserted profile of the current account, returned
// by GET /api/auth/me/.
//
// It is always derived from the backend using the current access secret and
// is never constructed from user input on the client side.
type Identity struct {
	// ID is the backend account identifier.
	ID int64 `json:"id"`

	// Username is the unique account login.
	Username string `json:"username"`

	// Email is the account contact address.
	Email string `json:"email"`

	// IsResearcher is fixed at registration. It decides whether the received
	// collaboration view and researcher profile creation are available.
	IsResearcher bool `json:"is_researcher"`
}

// RegisterRequest is the body of POST /api/auth/register/.
type RegisterRequest struct {
	Username     string `json:"username"`
	Email        string `json:"email"`
	Password     string `json:"password"`
	IsResearcher bool   `json:"is_researcher,omitempty"`
}

// LoginRequest returns the credentials used for the automatic login that
// follows a successful registration.
func (r RegisterRequest) LoginRequest() LoginRequest {
	return LoginRequest{Username: r.Username, Password: r.Password}
}
