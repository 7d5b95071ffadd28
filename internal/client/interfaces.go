// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run restores the session and blocks until the user exits.
	Run(ctx context.Context) error
}

var _ Client = (*App)(nil)
