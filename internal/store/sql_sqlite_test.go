package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/MKhiriev/go-collab-client/internal/config"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLocalDBFileIfNotExists_CreatesWithOwnerOnlyMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "client.db")

	require.NoError(t, createLocalDBFileIfNotExists(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestCreateLocalDBFileIfNotExists_KeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.db")
	require.NoError(t, os.WriteFile(path, []byte("existing"), 0o600))

	require.NoError(t, createLocalDBFileIfNotExists(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "existing", string(data))
}

func TestClientStorages_CloseNil(t *testing.T) {
	var s *ClientStorages
	assert.NoError(t, s.Close())
}

func TestNewClientStorages_PairSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}}

	s, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, s.Credentials.SavePair(ctx, models.CredentialPair{AccessSecret: "A1", RefreshSecret: "R1"}))
	require.NoError(t, s.Credentials.SaveAccess(ctx, "A2"))
	require.NoError(t, s.Close())

	reopened, err := NewClientStorages(ctx, cfg, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	pair, err := reopened.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.CredentialPair{AccessSecret: "A2", RefreshSecret: "R1"}, pair)

	require.NoError(t, reopened.Credentials.Clear(ctx))
	pair, err = reopened.Credentials.Load(ctx)
	require.NoError(t, err)
	assert.True(t, pair.IsEmpty())
}
