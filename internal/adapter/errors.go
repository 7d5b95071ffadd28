package adapter

import (
	"errors"
	"net/http"
)

var (
	ErrNetworkFailure      = errors.New("network failure")
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrBadGateway          = errors.New("bad gateway")
	ErrInternalServerError = errors.New("internal server error")
	ErrMalformedResponse   = errors.New("malformed response body")
)

// HTTPError is a non-2xx backend response.
//
// Error returns Detail unchanged so it can be shown to the user verbatim.
// Unwrap exposes the sentinel matching Status, if any.
type HTTPError struct {
	Status int
	Detail string
}

func (e *HTTPError) Error() string {
	return e.Detail
}

func (e *HTTPError) Unwrap() error {
	return kindForStatus(e.Status)
}

func kindForStatus(status int) error {
	switch status {
	case http.StatusBadRequest:
		return ErrBadRequest
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusBadGateway:
		return ErrBadGateway
	}
	if status >= http.StatusInternalServerError {
		return ErrInternalServerError
	}
	return nil
}
