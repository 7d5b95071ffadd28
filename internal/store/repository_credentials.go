package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/models"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *credentialRepository) Load(ctx context.Context) (models.CredentialPair, error) {
	log := logger.FromContext(ctx)

	rows, err := r.DB.QueryContext(ctx, loadCredentials, models.AccessSecretKey, models.RefreshSecretKey)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.Load").Msg("failed to query credentials")
		return models.CredentialPair{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var pair models.CredentialPair
	for rows.Next() {
		var key, value string
		if err = rows.Scan(&key, &value); err != nil {
			log.Err(err).Str("func", "credentialRepository.Load").Msg("failed to scan credential row")
			return models.CredentialPair{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		switch key {
		case models.AccessSecretKey:
			pair.AccessSecret = value
		case models.RefreshSecretKey:
			pair.RefreshSecret = value
		}
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "credentialRepository.Load").Msg("failed to iterate credential rows")
		return models.CredentialPair{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return pair, nil
}

func (r *credentialRepository) SavePair(ctx context.Context, pair models.CredentialPair) error {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "credentialRepository.SavePair").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for _, kv := range [...][2]string{
		{models.AccessSecretKey, pair.AccessSecret},
		{models.RefreshSecretKey, pair.RefreshSecret},
	} {
		if _, err = tx.ExecContext(ctx, upsertCredential, kv[0], kv[1]); err != nil {
			log.Err(err).
				Str("func", "credentialRepository.SavePair").
				Str("key", kv[0]).
				Msg("failed to upsert credential")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "credentialRepository.SavePair").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *credentialRepository) SaveAccess(ctx context.Context, accessSecret string) error {
	if _, err := r.DB.ExecContext(ctx, upsertCredential, models.AccessSecretKey, accessSecret); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "credentialRepository.SaveAccess").Msg("failed to upsert access secret")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *credentialRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, clearCredentials); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "credentialRepository.Clear").Msg("failed to clear credentials")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
