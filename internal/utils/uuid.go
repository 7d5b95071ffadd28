package utils

import (
	"context"

	"github.com/google/uuid"
)

// UUIDGenerator produces request identifiers for the X-Request-ID header.
type UUIDGenerator struct{}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7, falling back to a random v4.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// ForContext returns the request ID carried by ctx, or a fresh one.
func (g *UUIDGenerator) ForContext(ctx context.Context) string {
	if id, ok := GetRequestIDFromContext(ctx); ok {
		return id
	}
	return g.Generate()
}
