// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-collab-client/internal/service"
)

// humanizeError turns a service error into the one line shown to the user.
// Backend rejections already carry readable text and are shown as is.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, service.ErrServerUnreachable) {
		return "No network or the server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
