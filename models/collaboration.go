// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"strconv"
	"time"
)

// CollaborationStatus is the lifecycle status of a collaboration request.
type CollaborationStatus string

const (
	StatusPending  CollaborationStatus = "pending"
	StatusAccepted CollaborationStatus = "accepted"
	StatusRejected CollaborationStatus = "rejected"
)

// IsTerminal reports whether no further transition is allowed from s.
func (s CollaborationStatus) IsTerminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// IsResolution reports whether s is a valid target of a status update.
func (s CollaborationStatus) IsResolution() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CollaborationRequest is a proposal from one account to a researcher.
//
// Status starts at pending and transitions at most once, to accepted or
// rejected. The backend is the source of truth for the status.
type CollaborationRequest struct {
	ID           int64               `json:"id"`
	FromUser     int64               `json:"from_user"`
	ToResearcher int64               `json:"to_researcher"`
	Message      string              `json:"message"`
	Status       CollaborationStatus `json:"status"`
	CreatedAt    time.Time           `json:"created_at"`

	// Display names, sent by the backend when it has them.
	ToResearcherName string `json:"to_researcher_name,omitempty"`
	FromUserUsername string `json:"from_user_username,omitempty"`

	// Unconfirmed marks a status applied locally while the update request
	// is still in flight. Never serialised.
	Unconfirmed bool `json:"-"`
}

// RecipientLabel names the addressed researcher, falling back to the profile id.
func (r CollaborationRequest) RecipientLabel() string {
	if r.ToResearcherName != "" {
		return r.ToResearcherName
	}
	return "#" + strconv.FormatInt(r.ToResearcher, 10)
}

// SenderLabel names the requesting account, falling back to the account id.
func (r CollaborationRequest) SenderLabel() string {
	if r.FromUserUsername != "" {
		return r.FromUserUsername
	}
	return "#" + strconv.FormatInt(r.FromUser, 10)
}

// SendCollaborationRequest is the body of POST /api/papers/collaboration/send/.
type SendCollaborationRequest struct {
	ToResearcher int64  `json:"to_researcher"`
	Message      string `json:"message"`
}

// UpdateCollaborationRequest is the body of
// PATCH /api/papers/collaboration/update/{id}/.
type UpdateCollaborationRequest struct {
	Status CollaborationStatus `json:"status"`
}
