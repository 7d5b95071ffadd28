package config

import "errors"

// Validation errors returned by [ClientConfig.validate].
var (
	// ErrInvalidAdapterConfigs indicates an unusable backend address or a
	// non-positive request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an in-memory DSN, which cannot keep
	// the credential pair across restarts.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a non-positive boot timeout.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
