// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ResearchPaper is a paper attached to a researcher profile.
type ResearchPaper struct {
	ID         int64     `json:"id"`
	File       string    `json:"file"`
	Title      string    `json:"title"`
	UploadedAt time.Time `json:"uploaded_at"`
}

// ResearcherProfile is the public profile of a researcher account. User is
// the owning account ID and ID is the profile ID that collaboration requests
// are addressed to.
type ResearcherProfile struct {
	ID             int64           `json:"id"`
	User           int64           `json:"user"`
	FullName       string          `json:"full_name"`
	Qualifications string          `json:"qualifications"`
	Institution    string          `json:"institution"`
	ContactEmail   string          `json:"contact_email"`
	Bio            string          `json:"bio"`
	Photo          string          `json:"photo,omitempty"`
	Papers         []ResearchPaper `json:"papers,omitempty"`
}

// CreateProfileRequest holds the text fields of the multipart form posted to
// /api/papers/researcher/create/.
type CreateProfileRequest struct {
	FullName       string
	Qualifications string
	Institution    string
	ContactEmail   string
	Bio            string
}

// FormData returns the request as multipart form fields.
func (r CreateProfileRequest) FormData() map[string]string {
	return map[string]string{
		"full_name":      r.FullName,
		"qualifications": r.Qualifications,
		"institution":    r.Institution,
		"contact_email":  r.ContactEmail,
		"bio":            r.Bio,
	}
}
