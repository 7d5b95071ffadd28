package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-collab-client/internal/adapter"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/internal/store"
	"github.com/MKhiriev/go-collab-client/internal/utils"
	"github.com/MKhiriev/go-collab-client/models"
)

// identityResult is the outcome of one identity fetch.
type identityResult int

const (
	identityOK identityResult = iota
	// identityExpired means the backend refused the access secret.
	identityExpired
	// identityFailed covers every other failure.
	identityFailed
)

type sessionManager struct {
	adapter     adapter.ServerAdapter
	credentials store.CredentialRepository
	logger      *logger.Logger
	now         func() time.Time

	mu       sync.RWMutex
	pair     models.CredentialPair
	session  models.Session
	subs     map[int]func(models.Session)
	nextSubs int
}

// NewSessionManager creates a manager in the Loading state and installs it as
// the adapter's bearer credential source.
func NewSessionManager(serverAdapter adapter.ServerAdapter, credentials store.CredentialRepository, logger *logger.Logger) SessionManager {
	m := &sessionManager{
		adapter:     serverAdapter,
		credentials: credentials,
		logger:      logger,
		now:         time.Now,
		session:     models.Session{State: models.SessionLoading},
		subs:        make(map[int]func(models.Session)),
	}
	serverAdapter.SetTokenSource(m)

	return m
}

func (m *sessionManager) AccessSecret() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.pair.AccessSecret
}

func (m *sessionManager) Session() models.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return snapshot(m.session)
}

func (m *sessionManager) Subscribe(fn func(models.Session)) func() {
	m.mu.Lock()
	id := m.nextSubs
	m.nextSubs++
	m.subs[id] = fn
	m.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
		})
	}
}

func (m *sessionManager) Boot(ctx context.Context) models.Session {
	log := m.logger.GetChildLogger()
	m.publish(models.CredentialPair{}, models.Session{State: models.SessionLoading}, false)

	pair, err := m.credentials.Load(ctx)
	if err != nil {
		log.Err(err).Str("func", "sessionManager.Boot").Msg("failed to read stored credentials")
		return m.invalidate()
	}

	if !pair.HasAccess() {
		log.Debug().Str("func", "sessionManager.Boot").Msg("no stored access secret")
		return m.clear(ctx)
	}
	m.setPair(pair)

	result := identityExpired
	var identity models.Identity
	if expired, ok := utils.AccessSecretExpired(pair.AccessSecret, m.now()); ok && expired {
		log.Debug().Str("func", "sessionManager.Boot").Msg("stored access secret expired, skipping identity fetch")
	} else {
		identity, result, err = m.fetchIdentity(ctx)
		if result == identityOK {
			return m.authenticate(pair, identity)
		}
		log.Info().Err(err).Str("func", "sessionManager.Boot").Msg("identity fetch failed, trying renewal")
	}

	if ctx.Err() != nil {
		return m.invalidate()
	}

	if !pair.HasRefresh() {
		log.Info().Str("func", "sessionManager.Boot").Msg("no refresh secret, clearing session")
		return m.clear(ctx)
	}

	access, err := m.adapter.RefreshAccess(ctx, pair.RefreshSecret)
	if err != nil {
		if ctx.Err() != nil {
			return m.invalidate()
		}
		log.Info().Err(err).Str("func", "sessionManager.Boot").Msg("renewal failed, clearing session")
		return m.clear(ctx)
	}

	pair.AccessSecret = access
	m.setPair(pair)
	if err = m.credentials.SaveAccess(ctx, access); err != nil {
		log.Warn().Err(err).Str("func", "sessionManager.Boot").Msg("renewed access secret kept in memory only")
	}

	identity, result, err = m.fetchIdentity(ctx)
	if result == identityOK {
		log.Info().Str("func", "sessionManager.Boot").Msg("session restored after renewal")
		return m.authenticate(pair, identity)
	}
	if ctx.Err() != nil {
		return m.invalidate()
	}

	log.Info().Err(err).Str("func", "sessionManager.Boot").Msg("identity fetch failed after renewal, clearing session")
	return m.clear(ctx)
}

func (m *sessionManager) Login(ctx context.Context, username, password string) error {
	pair, err := m.adapter.ObtainTokens(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return mapAdapterError(err)
	}

	// the identity fetch must carry the new bearer, the published session
	// stays on the prior state until it succeeds
	prior := m.stagePair(pair)

	identity, err := m.adapter.Me(ctx)
	if err != nil {
		m.setPair(prior)
		return mapAdapterError(err)
	}

	if err = m.credentials.SavePair(ctx, pair); err != nil {
		m.setPair(prior)
		m.logger.Err(err).Str("func", "sessionManager.Login").Msg("failed to persist credential pair")
		return fmt.Errorf("%w: %w", ErrPersistCredentials, err)
	}

	m.authenticate(pair, identity)
	m.logger.Info().Str("func", "sessionManager.Login").Int64("user_id", identity.ID).Msg("logged in")

	return nil
}

func (m *sessionManager) Register(ctx context.Context, req models.RegisterRequest) error {
	if err := m.adapter.Register(ctx, req); err != nil {
		return mapAdapterError(err)
	}

	login := req.LoginRequest()
	return m.Login(ctx, login.Username, login.Password)
}

func (m *sessionManager) Logout() {
	m.publish(models.CredentialPair{}, models.Session{State: models.SessionUnauthenticated}, true)

	if err := m.credentials.Clear(context.Background()); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.Logout").Msg("failed to clear stored credentials")
	}
}

func (m *sessionManager) DeleteAccount(ctx context.Context) error {
	if m.AccessSecret() == "" {
		m.Logout()
		return ErrNotAuthenticated
	}

	err := m.adapter.DeleteAccount(ctx)
	if err != nil {
		m.logger.Warn().Err(err).Str("func", "sessionManager.DeleteAccount").Msg("remote account deletion failed, logging out anyway")
	}

	m.Logout()

	return mapAdapterError(err)
}

// fetchIdentity performs one GET /me with the current access secret.
func (m *sessionManager) fetchIdentity(ctx context.Context) (models.Identity, identityResult, error) {
	identity, err := m.adapter.Me(ctx)
	switch {
	case err == nil:
		return identity, identityOK, nil
	case errors.Is(err, adapter.ErrUnauthorized):
		return models.Identity{}, identityExpired, err
	default:
		return models.Identity{}, identityFailed, err
	}
}

func (m *sessionManager) authenticate(pair models.CredentialPair, identity models.Identity) models.Session {
	return m.publish(pair, models.Session{State: models.SessionAuthenticated, Identity: &identity}, true)
}

// clear forgets both secrets in memory and on disk.
func (m *sessionManager) clear(ctx context.Context) models.Session {
	s := m.publish(models.CredentialPair{}, models.Session{State: models.SessionUnauthenticated}, true)
	if err := m.credentials.Clear(ctx); err != nil {
		m.logger.Err(err).Str("func", "sessionManager.clear").Msg("failed to clear stored credentials")
	}
	return s
}

// invalidate leaves stored secrets in place; the user can log in again.
func (m *sessionManager) invalidate() models.Session {
	return m.publish(models.CredentialPair{}, models.Session{State: models.SessionInvalid}, true)
}

func (m *sessionManager) setPair(pair models.CredentialPair) {
	m.mu.Lock()
	m.pair = pair
	m.mu.Unlock()
}

func (m *sessionManager) stagePair(pair models.CredentialPair) models.CredentialPair {
	m.mu.Lock()
	defer m.mu.Unlock()
	prior := m.pair
	m.pair = pair
	return prior
}

// publish replaces the session and notifies subscribers outside the lock.
// When setPair is false the held credential pair is kept.
func (m *sessionManager) publish(pair models.CredentialPair, s models.Session, setPair bool) models.Session {
	m.mu.Lock()
	if setPair {
		m.pair = pair
	}
	m.session = s
	subs := make([]func(models.Session), 0, len(m.subs))
	for _, fn := range m.subs {
		subs = append(subs, fn)
	}
	m.mu.Unlock()

	for _, fn := range subs {
		fn(snapshot(s))
	}

	return snapshot(s)
}

func snapshot(s models.Session) models.Session {
	if s.Identity != nil {
		identity := *s.Identity
		s.Identity = &identity
	}
	return s
}
