// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SessionState enumerates the lifecycle states of the client session.
type SessionState int

const (
	// SessionLoading is the initial state while boot is in progress.
	SessionLoading SessionState = iota
	// SessionUnauthenticated means no credential pair is held.
	SessionUnauthenticated
	// SessionAuthenticated means a valid pair and a fetched identity are held.
	SessionAuthenticated
	// SessionInvalid means credentials could not be confirmed or denied,
	// e.g. boot was interrupted or local storage could not be read.
	SessionInvalid
)

// String returns a lower-case name of the state for logs and UI.
func (s SessionState) String() string {
	switch s {
	case SessionLoading:
		return "loading"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	case SessionInvalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Session is an immutable snapshot of the session published to readers.
// Identity is non-nil only in [SessionAuthenticated].
type Session struct {
	State    SessionState
	Identity *Identity
}

// IsAuthenticated reports whether the snapshot carries a confirmed identity.
func (s Session) IsAuthenticated() bool {
	return s.State == SessionAuthenticated && s.Identity != nil
}

// IsResearcher reports whether the snapshot belongs to a researcher account.
func (s Session) IsResearcher() bool {
	return s.IsAuthenticated() && s.Identity.IsResearcher
}
