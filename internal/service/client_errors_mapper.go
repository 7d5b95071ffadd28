// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-collab-client/internal/adapter"
)

// reasonError shows reason to the user while keeping cause reachable through
// errors.Is and errors.As.
type reasonError struct {
	reason error
	cause  error
}

func (e *reasonError) Error() string {
	return e.reason.Error()
}

func (e *reasonError) Unwrap() []error {
	return []error{e.reason, e.cause}
}

// mapAdapterError collapses adapter failures into one human-readable error.
// Backend rejections already carry the server's detail text and pass through.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var httpErr *adapter.HTTPError
	switch {
	case errors.As(err, &httpErr):
		return err
	case errors.Is(err, adapter.ErrNetworkFailure):
		return &reasonError{reason: ErrServerUnreachable, cause: err}
	case errors.Is(err, adapter.ErrMalformedResponse):
		return &reasonError{reason: ErrUnexpectedReply, cause: err}
	default:
		return err
	}
}
