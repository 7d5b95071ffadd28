package service

import "errors"

var (
	ErrNotAuthenticated = errors.New("you need to log in first")
	ErrNotResearcher    = errors.New("only researcher accounts can do this")

	ErrEmptyMessage           = errors.New("message must not be empty")
	ErrInvalidStatus          = errors.New("status must be accepted or rejected")
	ErrRequestAlreadyResolved = errors.New("this request has already been resolved")
	ErrIncompleteProfile      = errors.New("full name and contact email are required")

	ErrPersistCredentials = errors.New("failed to save credentials")

	ErrServerUnreachable = errors.New("cannot reach the server, check your connection")
	ErrUnexpectedReply   = errors.New("the server sent an unexpected response")
)
