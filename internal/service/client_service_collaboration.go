package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-collab-client/internal/adapter"
	"github.com/MKhiriev/go-collab-client/internal/logger"
	"github.com/MKhiriev/go-collab-client/models"
)

// pendingUpdate tracks the last confirmed record of a request whose status is
// being changed.
type pendingUpdate struct {
	confirmed models.CollaborationRequest
	inFlight  int
}

type collaborationService struct {
	adapter adapter.ServerAdapter
	session SessionManager
	logger  *logger.Logger

	mu       sync.Mutex
	ownerID  int64
	gen      uint64
	sent     []models.CollaborationRequest
	received []models.CollaborationRequest
	updates  map[int64]*pendingUpdate
	// resolved holds ids confirmed terminal by this account's own updates.
	resolved map[int64]models.CollaborationStatus
}

// NewCollaborationService creates the workflow and ties its cached lists to
// the session: they are dropped whenever the session stops being
// authenticated or changes account.
func NewCollaborationService(serverAdapter adapter.ServerAdapter, session SessionManager, logger *logger.Logger) CollaborationService {
	s := &collaborationService{
		adapter:  serverAdapter,
		session:  session,
		logger:   logger,
		updates:  make(map[int64]*pendingUpdate),
		resolved: make(map[int64]models.CollaborationStatus),
	}
	session.Subscribe(s.onSession)

	return s
}

func (s *collaborationService) onSession(session models.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if session.IsAuthenticated() && session.Identity.ID == s.ownerID {
		return
	}

	s.sent = nil
	s.received = nil
	s.updates = make(map[int64]*pendingUpdate)
	s.resolved = make(map[int64]models.CollaborationStatus)
	s.gen++
	s.ownerID = 0
	if session.IsAuthenticated() {
		s.ownerID = session.Identity.ID
	}
}

// generation identifies the cache owner a call starts under. Results that
// come back after the owner changed are not cached.
func (s *collaborationService) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

func (s *collaborationService) identity() (models.Session, error) {
	session := s.session.Session()
	if !session.IsAuthenticated() {
		return session, ErrNotAuthenticated
	}
	return session, nil
}

func (s *collaborationService) Send(ctx context.Context, toResearcherID int64, message string) (models.CollaborationRequest, error) {
	if _, err := s.identity(); err != nil {
		return models.CollaborationRequest{}, err
	}
	if strings.TrimSpace(message) == "" {
		return models.CollaborationRequest{}, ErrEmptyMessage
	}

	gen := s.generation()
	created, err := s.adapter.SendCollaboration(ctx, models.SendCollaborationRequest{
		ToResearcher: toResearcherID,
		Message:      message,
	})
	if err != nil {
		return models.CollaborationRequest{}, mapAdapterError(err)
	}

	s.mu.Lock()
	if s.gen == gen {
		if i := indexOf(s.sent, created.ID); i >= 0 {
			s.sent[i] = created
		} else {
			s.sent = append(s.sent, created)
		}
	}
	s.mu.Unlock()

	return created, nil
}

func (s *collaborationService) ListSent(ctx context.Context) ([]models.CollaborationRequest, error) {
	if _, err := s.identity(); err != nil {
		return nil, err
	}

	gen := s.generation()
	sent, err := s.adapter.ListSent(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	s.mu.Lock()
	if s.gen == gen {
		s.sent = slices.Clone(sent)
	}
	s.mu.Unlock()

	return sent, nil
}

func (s *collaborationService) ListReceived(ctx context.Context) ([]models.CollaborationRequest, error) {
	session, err := s.identity()
	if err != nil {
		return nil, err
	}

	if !session.IsResearcher() {
		s.mu.Lock()
		s.received = nil
		s.mu.Unlock()
		return []models.CollaborationRequest{}, nil
	}

	gen := s.generation()
	received, err := s.adapter.ListReceived(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	s.mu.Lock()
	if s.gen == gen {
		s.received = slices.Clone(received)
	}
	s.mu.Unlock()

	return received, nil
}

func (s *collaborationService) UpdateStatus(ctx context.Context, id int64, status models.CollaborationStatus) (models.CollaborationRequest, error) {
	if !status.IsResolution() {
		return models.CollaborationRequest{}, ErrInvalidStatus
	}

	session, err := s.identity()
	if err != nil {
		return models.CollaborationRequest{}, err
	}
	if !session.IsResearcher() {
		return models.CollaborationRequest{}, ErrNotResearcher
	}

	gen, err := s.applyTentative(id, status)
	if err != nil {
		return models.CollaborationRequest{}, err
	}

	updated, err := s.adapter.UpdateCollaborationStatus(ctx, id, status)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		if err != nil {
			return models.CollaborationRequest{}, mapAdapterError(err)
		}
		return updated, nil
	}

	if err != nil {
		s.revert(id)
		s.logger.Debug().Err(err).Str("func", "collaborationService.UpdateStatus").Int64("request_id", id).Msg("status update reverted")
		return models.CollaborationRequest{}, mapAdapterError(err)
	}

	s.confirm(updated)
	return updated, nil
}

// applyTentative marks the local copy with the intended status and returns
// the cache generation it was applied under. Requests not in the local list
// are dispatched without a local change unless this account already resolved
// them.
func (s *collaborationService) applyTentative(id int64, status models.CollaborationStatus) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(s.received, id)
	if i < 0 {
		if _, ok := s.resolved[id]; ok {
			return 0, ErrRequestAlreadyResolved
		}
		return s.gen, nil
	}

	item := s.received[i]
	if item.Status.IsTerminal() && !item.Unconfirmed {
		return 0, ErrRequestAlreadyResolved
	}

	pending, ok := s.updates[id]
	if !ok {
		pending = &pendingUpdate{confirmed: item}
		s.updates[id] = pending
	}
	pending.inFlight++

	item.Status = status
	item.Unconfirmed = true
	s.received[i] = item

	return s.gen, nil
}

// revert restores the last confirmed record once no other update for id is in
// flight. A list refreshed in the meantime is left as fetched.
func (s *collaborationService) revert(id int64) {
	pending, ok := s.updates[id]
	if !ok {
		return
	}

	pending.inFlight--
	if pending.inFlight > 0 {
		return
	}
	delete(s.updates, id)

	if i := indexOf(s.received, id); i >= 0 && s.received[i].Unconfirmed {
		s.received[i] = pending.confirmed
	}
}

func (s *collaborationService) confirm(updated models.CollaborationRequest) {
	updated.Unconfirmed = false
	if updated.Status.IsTerminal() {
		s.resolved[updated.ID] = updated.Status
	}

	if pending, ok := s.updates[updated.ID]; ok {
		pending.confirmed = updated
		pending.inFlight--
		if pending.inFlight <= 0 {
			delete(s.updates, updated.ID)
		}
	}

	if i := indexOf(s.received, updated.ID); i >= 0 {
		s.received[i] = updated
	}
}

func (s *collaborationService) Refresh(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.ListSent(gCtx)
		return err
	})
	g.Go(func() error {
		_, err := s.ListReceived(gCtx)
		return err
	})

	return g.Wait()
}

func (s *collaborationService) Sent() []models.CollaborationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.sent)
}

func (s *collaborationService) Received() []models.CollaborationRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.received)
}

func (s *collaborationService) PendingReceivedCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, r := range s.received {
		if r.Status == models.StatusPending {
			count++
		}
	}
	return count
}

func indexOf(list []models.CollaborationRequest, id int64) int {
	return slices.IndexFunc(list, func(r models.CollaborationRequest) bool {
		return r.ID == id
	})
}
