package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/migrations"
)

// DB is the client's sqlite handle.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the credential schema up to date.
func (db *DB) Migrate(ctx context.Context) error {
	if err := migrations.Migrate(ctx, db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("credential schema migration failed")
		return fmt.Errorf("migrate credential schema: %w", err)
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("credential schema is up to date")
	return nil
}
